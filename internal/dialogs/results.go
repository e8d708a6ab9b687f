package dialogs

import (
	"github.com/KirkDiggler/succ-discord/internal/domain/character"
	"github.com/KirkDiggler/succ-discord/internal/domain/conditions"
)

// BoostLowerType picks between the boost and lower trait conditions
type BoostLowerType string

const (
	Boost BoostLowerType = "boost"
	Lower BoostLowerType = "lower"
)

// Degree is how well the power was cast
type Degree string

const (
	DegreeSuccess Degree = "success"
	DegreeRaise   Degree = "raise"
)

// ProtectionType is what the protection bonus adds to
type ProtectionType string

const (
	ProtectionArmor     ProtectionType = "armor"
	ProtectionToughness ProtectionType = "toughness"
)

// DeflectionType is which attacks are deflected
type DeflectionType string

const (
	DeflectionMelee  DeflectionType = "Melee"
	DeflectionRanged DeflectionType = "Ranged"
	DeflectionRaise  DeflectionType = "Raise"
)

// BoostLowerResult is the outcome of the boost/lower trait dialog
type BoostLowerResult struct {
	Trait  string
	Degree Degree
}

// SmiteResult is the outcome of the smite dialog. Bonus always carries a sign.
type SmiteResult struct {
	Weapon string
	Bonus  string
}

// ProtectionResult is the outcome of the protection dialog
type ProtectionResult struct {
	// Bonus is a whole number of points; SWADE protection never uses fractions
	Bonus int
	Type  ProtectionType
}

// DeflectionResult is the outcome of the deflection dialog
type DeflectionResult struct {
	Type DeflectionType
}

// NumbResult is the outcome of the numb dialog
type NumbResult struct {
	Bonus int
}

// BoostLowerData is passed to the boost/lower template
type BoostLowerData struct {
	Condition    *conditions.Condition
	TraitOptions []character.TraitOption
	Boost        bool
}

// SmiteData is passed to the smite template
type SmiteData struct {
	Condition   *conditions.Condition
	Weapons     []character.Item
	WeaponNames []string
}

// ConditionData is passed to templates that only show the condition
type ConditionData struct {
	Condition *conditions.Condition
}
