package character

import (
	"sort"
	"strings"
)

// TraitOption is one entry of a trait picker. Value is what the picker
// returns; Label is what the player reads.
type TraitOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// TraitOptions lists the traits that can be boosted or lowered: the five
// attributes in sheet order followed by the character's skills by name.
func TraitOptions(c *Character) []TraitOption {
	options := make([]TraitOption, 0, len(Attributes)+len(c.Skills))
	for _, attr := range Attributes {
		options = append(options, TraitOption{
			Value: string(attr),
			Label: attr.Label(),
		})
	}

	skills := make([]Skill, len(c.Skills))
	copy(skills, c.Skills)
	sort.SliceStable(skills, func(i, j int) bool {
		return strings.ToLower(skills[i].Name) < strings.ToLower(skills[j].Name)
	})

	for _, skill := range skills {
		options = append(options, TraitOption{
			Value: skill.Name,
			Label: skill.Name,
		})
	}

	return options
}
