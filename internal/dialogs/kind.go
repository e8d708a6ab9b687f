package dialogs

// Kind identifies one of the condition dialogs
type Kind int

const (
	KindBoostLower Kind = iota + 1
	KindSmite
	KindProtection
	KindDeflection
	KindNumb
)

var kindNames = map[Kind]string{
	KindBoostLower: "boost-lower",
	KindSmite:      "smite",
	KindProtection: "protection",
	KindDeflection: "deflection",
	KindNumb:       "numb",
}

// templatePaths maps each dialog to the template that renders its body
var templatePaths = map[Kind]string{
	KindBoostLower: "boost-lower-trait.md.tmpl",
	KindSmite:      "smite.md.tmpl",
	KindProtection: "protection.md.tmpl",
	KindDeflection: "deflection.md.tmpl",
	KindNumb:       "numb.md.tmpl",
}

var titleKeys = map[Kind]string{
	KindBoostLower: "ENHANCED_CONDITIONS.Dialog.BoostBuilder.Name",
	KindSmite:      "ENHANCED_CONDITIONS.Dialog.SmiteBuilder.Name",
	KindProtection: "ENHANCED_CONDITIONS.Dialog.ProtectionBuilder.Name",
	KindDeflection: "ENHANCED_CONDITIONS.Dialog.DeflectionBuilder.Name",
	KindNumb:       "ENHANCED_CONDITIONS.Dialog.NumbBuilder.Name",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// TemplatePath returns the template used to render the dialog body
func (k Kind) TemplatePath() string {
	return templatePaths[k]
}

// TitleKey returns the localization key of the dialog title
func (k Kind) TitleKey() string {
	return titleKeys[k]
}
