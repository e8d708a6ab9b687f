package character

import (
	"strings"

	"github.com/KirkDiggler/succ-discord/internal/domain/conditions"
)

// Attribute is one of the five Savage Worlds attributes
type Attribute string

const (
	Agility  Attribute = "agility"
	Smarts   Attribute = "smarts"
	Spirit   Attribute = "spirit"
	Strength Attribute = "strength"
	Vigor    Attribute = "vigor"
)

// Attributes lists the attributes in sheet order
var Attributes = []Attribute{Agility, Smarts, Spirit, Strength, Vigor}

// ParseAttribute matches an attribute name case-insensitively
func ParseAttribute(s string) (Attribute, bool) {
	candidate := Attribute(strings.ToLower(strings.TrimSpace(s)))
	for _, attr := range Attributes {
		if attr == candidate {
			return attr, true
		}
	}
	return "", false
}

// Label returns the display name of the attribute
func (a Attribute) Label() string {
	if a == "" {
		return ""
	}
	return strings.ToUpper(string(a[:1])) + string(a[1:])
}

// Die is a trait die size (4, 6, 8, 10, 12)
type Die int

// ValidDie reports whether sides is a legal trait die
func ValidDie(sides int) bool {
	switch sides {
	case 4, 6, 8, 10, 12:
		return true
	}
	return false
}

// ItemType categorises gear. Only weapons matter to the dialogs.
type ItemType string

const (
	ItemWeapon     ItemType = "weapon"
	ItemArmor      ItemType = "armor"
	ItemShield     ItemType = "shield"
	ItemGear       ItemType = "gear"
	ItemConsumable ItemType = "consumable"
)

// Skill is a learned trait linked to an attribute
type Skill struct {
	Name      string    `json:"name"`
	Attribute Attribute `json:"attribute"`
	Die       Die       `json:"die"`
}

// Item is a piece of owned gear
type Item struct {
	ID   string   `json:"id"`
	Name string   `json:"name"`
	Type ItemType `json:"type"`
}

// Character is a player's Savage Worlds character
type Character struct {
	ID         string                         `json:"id"`
	OwnerID    string                         `json:"owner_id"` // Discord user ID
	RealmID    string                         `json:"realm_id"` // Discord guild ID
	Name       string                         `json:"name"`
	Attributes map[Attribute]Die              `json:"attributes"`
	Skills     []Skill                        `json:"skills,omitempty"`
	Items      []Item                         `json:"items,omitempty"`
	Conditions []*conditions.AppliedCondition `json:"conditions,omitempty"`
}

// New creates a character with every attribute at d4
func New(id, ownerID, realmID, name string) *Character {
	attrs := make(map[Attribute]Die, len(Attributes))
	for _, attr := range Attributes {
		attrs[attr] = 4
	}

	return &Character{
		ID:         id,
		OwnerID:    ownerID,
		RealmID:    realmID,
		Name:       name,
		Attributes: attrs,
	}
}

// Weapons returns the items of type weapon, in inventory order
func (c *Character) Weapons() []Item {
	var weapons []Item
	for _, item := range c.Items {
		if item.Type == ItemWeapon {
			weapons = append(weapons, item)
		}
	}
	return weapons
}

// SetSkill adds a skill or replaces the die of an existing one
func (c *Character) SetSkill(skill Skill) {
	for i := range c.Skills {
		if strings.EqualFold(c.Skills[i].Name, skill.Name) {
			c.Skills[i] = skill
			return
		}
	}
	c.Skills = append(c.Skills, skill)
}

// AddItem appends an item to the inventory
func (c *Character) AddItem(item Item) {
	c.Items = append(c.Items, item)
}

// ApplyCondition records a condition, replacing an earlier instance of the
// same condition
func (c *Character) ApplyCondition(applied *conditions.AppliedCondition) {
	for i, existing := range c.Conditions {
		if existing.ConditionID == applied.ConditionID {
			c.Conditions[i] = applied
			return
		}
	}
	c.Conditions = append(c.Conditions, applied)
}

// HasCondition reports whether the condition is currently applied
func (c *Character) HasCondition(id conditions.ID) bool {
	for _, existing := range c.Conditions {
		if existing.ConditionID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so stored characters are not shared with callers
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	out := *c
	out.Attributes = make(map[Attribute]Die, len(c.Attributes))
	for k, v := range c.Attributes {
		out.Attributes[k] = v
	}
	out.Skills = append([]Skill(nil), c.Skills...)
	out.Items = append([]Item(nil), c.Items...)
	if c.Conditions != nil {
		out.Conditions = make([]*conditions.AppliedCondition, len(c.Conditions))
		for i, applied := range c.Conditions {
			cp := *applied
			if applied.Options != nil {
				cp.Options = make(map[string]string, len(applied.Options))
				for k, v := range applied.Options {
					cp.Options[k] = v
				}
			}
			out.Conditions[i] = &cp
		}
	}
	return &out
}
