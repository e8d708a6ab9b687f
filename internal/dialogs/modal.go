package dialogs

const (
	// DefaultWidth is the width hint every condition dialog is opened with
	DefaultWidth = 400

	// DialogClass tags modals built by this package
	DialogClass = "succ-dialog"
)

// Form field ids read by the dialogs
const (
	FieldSelectedTrait    = "selected_trait"
	FieldWeapon           = "weapon"
	FieldDamageBonus      = "damageBonus"
	FieldProtectionAmount = "protectionAmount"
)

// FieldKind tells the presenter which input widget to draw
type FieldKind string

const (
	FieldSelect FieldKind = "select"
	FieldNumber FieldKind = "number"
	FieldText   FieldKind = "text"
)

// Option is one choice of a select field
type Option struct {
	Value string
	Label string
}

// Field is a form input shown in a modal
type Field struct {
	ID      string
	Label   string
	Kind    FieldKind
	Options []Option
	Default string
}

// Action is a button on a modal. Inputs lists the field ids the action reads.
type Action struct {
	ID     string
	Label  string
	Inputs []string
}

// Modal is everything a presenter needs to show one dialog
type Modal struct {
	Title   string
	Width   int
	Content string
	Classes []string
	Fields  []Field
	Actions []Action

	// RejectClose false means closing the modal without picking an action
	// is reported as a dismissal rather than an error.
	RejectClose bool
}

// Field returns the field with the given id
func (m *Modal) Field(id string) (Field, bool) {
	for _, f := range m.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// Action returns the action with the given id
func (m *Modal) Action(id string) (Action, bool) {
	for _, a := range m.Actions {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

// Form holds the submitted field values keyed by field id
type Form map[string]string

// Value returns the value of a field, or "" when it was not submitted
func (f Form) Value(id string) string {
	if f == nil {
		return ""
	}
	return f[id]
}

// Choice is what the user picked: an action and the form state at the time
type Choice struct {
	Action string
	Form   Form
}
