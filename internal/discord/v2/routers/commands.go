package routers

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/succ-discord/internal/discord/v2/handlers"
	"github.com/KirkDiggler/succ-discord/internal/domain/character"
)

// CommandCreator is the part of the Discord session used to register commands
type CommandCreator interface {
	ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
}

// Commands returns the slash commands served by the routers
func Commands() []*discordgo.ApplicationCommand {
	characterOption := &discordgo.ApplicationCommandOption{
		Name:        handlers.CharacterParam,
		Description: "Which of your characters (defaults to your only one)",
		Type:        discordgo.ApplicationCommandOptionString,
	}

	conditionSub := func(name, description string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Name:        name,
			Description: description,
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Options:     []*discordgo.ApplicationCommandOption{characterOption},
		}
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        ConditionCommand,
			Description: "Put a character under an enhanced condition",
			Options: []*discordgo.ApplicationCommandOption{
				conditionSub("boost", "Boost a trait"),
				conditionSub("lower", "Lower a trait"),
				conditionSub("smite", "Smite a weapon"),
				conditionSub("protection", "Grant armor or toughness"),
				conditionSub("deflection", "Deflect melee or ranged attacks"),
				conditionSub("numb", "Ignore wound and fatigue penalties"),
			},
		},
		{
			Name:        CharacterCommand,
			Description: "Manage your Savage Worlds characters",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "create",
					Description: "Create a new character",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        handlers.NameParam,
							Description: "Character name",
							Type:        discordgo.ApplicationCommandOptionString,
							Required:    true,
						},
					},
				},
				{
					Name:        "attribute",
					Description: "Set an attribute die",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						attributeOption(),
						dieOption(),
						characterOption,
					},
				},
				{
					Name:        "skill",
					Description: "Add or change a skill",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        handlers.SkillParam,
							Description: "Skill name",
							Type:        discordgo.ApplicationCommandOptionString,
							Required:    true,
						},
						dieOption(),
						attributeOption(),
						characterOption,
					},
				},
				{
					Name:        "item",
					Description: "Add gear",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        handlers.ItemParam,
							Description: "Item name",
							Type:        discordgo.ApplicationCommandOptionString,
							Required:    true,
						},
						{
							Name:        handlers.ItemTypeParam,
							Description: "Kind of item",
							Type:        discordgo.ApplicationCommandOptionString,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Weapon", Value: string(character.ItemWeapon)},
								{Name: "Armor", Value: string(character.ItemArmor)},
								{Name: "Shield", Value: string(character.ItemShield)},
								{Name: "Gear", Value: string(character.ItemGear)},
								{Name: "Consumable", Value: string(character.ItemConsumable)},
							},
						},
						characterOption,
					},
				},
				{
					Name:        "show",
					Description: "Show a character sheet",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options:     []*discordgo.ApplicationCommandOption{characterOption},
				},
				{
					Name:        "list",
					Description: "List your characters",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
			},
		},
	}
}

func attributeOption() *discordgo.ApplicationCommandOption {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, len(character.Attributes))
	for i, attr := range character.Attributes {
		choices[i] = &discordgo.ApplicationCommandOptionChoice{Name: attr.Label(), Value: string(attr)}
	}

	return &discordgo.ApplicationCommandOption{
		Name:        handlers.AttributeParam,
		Description: "Attribute",
		Type:        discordgo.ApplicationCommandOptionString,
		Required:    true,
		Choices:     choices,
	}
}

func dieOption() *discordgo.ApplicationCommandOption {
	var choices []*discordgo.ApplicationCommandOptionChoice
	for sides := 4; sides <= 12; sides += 2 {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: fmt.Sprintf("d%d", sides), Value: sides})
	}

	return &discordgo.ApplicationCommandOption{
		Name:        handlers.DieParam,
		Description: "Die type",
		Type:        discordgo.ApplicationCommandOptionInteger,
		Required:    true,
		Choices:     choices,
	}
}

// RegisterCommands creates the slash commands for the application. An
// empty guildID registers them globally.
func RegisterCommands(s CommandCreator, appID, guildID string) error {
	for _, cmd := range Commands() {
		if _, err := s.ApplicationCommandCreate(appID, guildID, cmd); err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		log.Printf("[Discord] Registered command: %s", cmd.Name)
	}
	return nil
}
