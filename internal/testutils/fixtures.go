package testutils

import (
	"github.com/KirkDiggler/succ-discord/internal/domain/character"
)

// CreateTestCharacter creates a character with a couple of skills and a
// weapon, enough to drive every dialog
func CreateTestCharacter(id, ownerID, realmID, name string) *character.Character {
	char := character.New(id, ownerID, realmID, name)
	char.Attributes[character.Agility] = 8
	char.Attributes[character.Vigor] = 6
	char.SetSkill(character.Skill{Name: "Fighting", Attribute: character.Agility, Die: 8})
	char.SetSkill(character.Skill{Name: "Notice", Attribute: character.Smarts, Die: 6})
	char.AddItem(character.Item{ID: id + "-sword", Name: "Long Sword", Type: character.ItemWeapon})
	char.AddItem(character.Item{ID: id + "-jacket", Name: "Leather Jacket", Type: character.ItemArmor})
	return char
}

// CreateUnarmedCharacter creates a character without weapons
func CreateUnarmedCharacter(id, ownerID, realmID, name string) *character.Character {
	char := character.New(id, ownerID, realmID, name)
	char.AddItem(character.Item{ID: id + "-rope", Name: "Rope", Type: character.ItemGear})
	return char
}
