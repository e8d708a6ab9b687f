package handlers

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/succ-discord/internal/dialogs"
	"github.com/KirkDiggler/succ-discord/internal/discord/v2/builders"
	"github.com/KirkDiggler/succ-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/succ-discord/internal/domain/character"
	"github.com/KirkDiggler/succ-discord/internal/domain/conditions"
	characterService "github.com/KirkDiggler/succ-discord/internal/services/character"
)

// Command options of /character
const (
	NameParam      = "name"
	AttributeParam = "attribute"
	DieParam       = "die"
	SkillParam     = "skill"
	ItemParam      = "item"
	ItemTypeParam  = "type"
)

// CharacterHandler manages characters from slash commands
type CharacterHandler struct {
	service    characterService.Service
	conditions dialogs.ConditionRegistry
}

// CharacterHandlerConfig holds the configuration
type CharacterHandlerConfig struct {
	Service    characterService.Service
	Conditions dialogs.ConditionRegistry
}

// NewCharacterHandler creates a new character handler
func NewCharacterHandler(cfg *CharacterHandlerConfig) (*CharacterHandler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Service == nil {
		return nil, fmt.Errorf("service is required")
	}
	if cfg.Conditions == nil {
		return nil, fmt.Errorf("conditions are required")
	}

	return &CharacterHandler{
		service:    cfg.Service,
		conditions: cfg.Conditions,
	}, nil
}

// HandleCreate handles /character create
func (h *CharacterHandler) HandleCreate(ic *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := h.service.CreateCharacter(ic.Context, &characterService.CreateCharacterInput{
		OwnerID: ic.UserID,
		RealmID: ic.GuildID,
		Name:    ic.GetStringParam(NameParam),
	})
	if err != nil {
		return nil, err
	}

	embed := builders.SuccessEmbed("Character Created", fmt.Sprintf("**%s** starts at d4 in every attribute.", char.Name)).Build()
	return &core.HandlerResult{Response: core.NewEmbedResponse(embed).AsEphemeral()}, nil
}

// HandleAttribute handles /character attribute
func (h *CharacterHandler) HandleAttribute(ic *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := h.service.ResolveCharacter(ic.Context, ic.UserID, ic.GetStringParam(CharacterParam))
	if err != nil {
		return nil, err
	}

	attribute := ic.GetStringParam(AttributeParam)
	die := ic.GetIntParam(DieParam)
	if _, err := h.service.SetAttribute(ic.Context, char.ID, attribute, die); err != nil {
		return nil, err
	}

	attr, _ := character.ParseAttribute(attribute)
	return updated(char.Name, fmt.Sprintf("%s is now d%d.", attr.Label(), die)), nil
}

// HandleSkill handles /character skill
func (h *CharacterHandler) HandleSkill(ic *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := h.service.ResolveCharacter(ic.Context, ic.UserID, ic.GetStringParam(CharacterParam))
	if err != nil {
		return nil, err
	}

	input := &characterService.SetSkillInput{
		CharacterID: char.ID,
		Name:        ic.GetStringParam(SkillParam),
		Attribute:   ic.GetStringParam(AttributeParam),
		Die:         ic.GetIntParam(DieParam),
	}
	if _, err := h.service.SetSkill(ic.Context, input); err != nil {
		return nil, err
	}

	return updated(char.Name, fmt.Sprintf("%s is now d%d.", strings.TrimSpace(input.Name), input.Die)), nil
}

// HandleItem handles /character item
func (h *CharacterHandler) HandleItem(ic *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := h.service.ResolveCharacter(ic.Context, ic.UserID, ic.GetStringParam(CharacterParam))
	if err != nil {
		return nil, err
	}

	name := ic.GetStringParam(ItemParam)
	if _, err := h.service.AddItem(ic.Context, &characterService.AddItemInput{
		CharacterID: char.ID,
		Name:        name,
		Type:        ic.GetStringParam(ItemTypeParam),
	}); err != nil {
		return nil, err
	}

	return updated(char.Name, fmt.Sprintf("Added %s.", strings.TrimSpace(name))), nil
}

// HandleShow handles /character show
func (h *CharacterHandler) HandleShow(ic *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := h.service.ResolveCharacter(ic.Context, ic.UserID, ic.GetStringParam(CharacterParam))
	if err != nil {
		return nil, err
	}

	return &core.HandlerResult{Response: core.NewEmbedResponse(h.sheet(char))}, nil
}

// HandleList handles /character list
func (h *CharacterHandler) HandleList(ic *core.InteractionContext) (*core.HandlerResult, error) {
	chars, err := h.service.ListCharacters(ic.Context, ic.UserID)
	if err != nil {
		return nil, err
	}

	if len(chars) == 0 {
		embed := builders.InfoEmbed("No Characters", "Use `/character create` to make one.").Build()
		return &core.HandlerResult{Response: core.NewEmbedResponse(embed).AsEphemeral()}, nil
	}

	lines := make([]string, len(chars))
	for i, char := range chars {
		lines[i] = fmt.Sprintf("• **%s**", char.Name)
		if n := len(char.Conditions); n > 0 {
			lines[i] += fmt.Sprintf(" (%d active)", n)
		}
	}

	embed := builders.InfoEmbed("Your Characters", strings.Join(lines, "\n")).Build()
	return &core.HandlerResult{Response: core.NewEmbedResponse(embed).AsEphemeral()}, nil
}

func updated(name, change string) *core.HandlerResult {
	embed := builders.SuccessEmbed(name, change).Build()
	return &core.HandlerResult{Response: core.NewEmbedResponse(embed).AsEphemeral()}
}

// sheet renders a character as an embed
func (h *CharacterHandler) sheet(char *character.Character) *discordgo.MessageEmbed {
	attrs := make([]string, 0, len(character.Attributes))
	for _, attr := range character.Attributes {
		attrs = append(attrs, fmt.Sprintf("%s d%d", attr.Label(), char.Attributes[attr]))
	}

	skills := make([]string, len(char.Skills))
	for i, skill := range char.Skills {
		skills[i] = fmt.Sprintf("%s d%d", skill.Name, skill.Die)
	}
	sort.Strings(skills)

	items := make([]string, len(char.Items))
	for i, item := range char.Items {
		items[i] = item.Name
		if item.Type == character.ItemWeapon {
			items[i] = "⚔️ " + item.Name
		}
	}

	active := make([]string, len(char.Conditions))
	for i, applied := range char.Conditions {
		active[i] = h.describeCondition(applied.ConditionID, applied.Options)
	}

	return builders.NewEmbed().
		Title(char.Name).
		Color(builders.ColorPrimary).
		List("Attributes", attrs, true).
		List("Skills", skills, true).
		List("Gear", items, false).
		List("Conditions", active, false).
		Build()
}

// describeCondition shows a condition with its options in key order, e.g.
// "⬆️ Boost Trait (degree: raise, trait: Shooting)"
func (h *CharacterHandler) describeCondition(id conditions.ID, options map[string]string) string {
	label := string(id)
	if cond, err := h.conditions.LookupConditionByID(id); err == nil {
		label = strings.TrimSpace(cond.Icon + " " + cond.Name)
	} else {
		log.Printf("[CHARACTER] No descriptor for condition %s: %v", id, err)
	}

	if len(options) == 0 {
		return label
	}

	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + options[k]
	}
	return fmt.Sprintf("%s (%s)", label, strings.Join(parts, ", "))
}
