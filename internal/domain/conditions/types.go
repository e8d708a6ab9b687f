package conditions

import "time"

// ID identifies a status condition in the registry
type ID string

// Savage Worlds status conditions and power effects known to the registry
const (
	Boost      ID = "boost"
	Lower      ID = "lower"
	Smite      ID = "smite"
	Protection ID = "protection"
	Deflection ID = "deflection"
	Numb       ID = "numb"

	Shaken     ID = "shaken"
	Distracted ID = "distracted"
	Vulnerable ID = "vulnerable"
	Stunned    ID = "stunned"
	Entangled  ID = "entangled"
	Bound      ID = "bound"
	Prone      ID = "prone"
	Fatigued   ID = "fatigued"
)

// Condition describes a status effect. It is read-only data handed out
// fresh by the Registry on every lookup.
type Condition struct {
	ID          ID     `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Icon        string `yaml:"icon" json:"icon"`               // Emoji shown next to the name
	Description string `yaml:"description" json:"description"` // Rules summary
	Reference   string `yaml:"reference" json:"reference"`     // Book and page
}

// AppliedCondition records a condition placed on a character together with
// the options the player picked for it.
type AppliedCondition struct {
	ConditionID ID                `json:"condition_id"`
	Options     map[string]string `json:"options,omitempty"`
	AppliedBy   string            `json:"applied_by"` // Discord user ID
	AppliedAt   time.Time         `json:"applied_at"`
}
