package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/succ-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/succ-discord/internal/domain/character"
	"github.com/KirkDiggler/succ-discord/internal/domain/conditions"
	apperr "github.com/KirkDiggler/succ-discord/internal/errors"
	characterService "github.com/KirkDiggler/succ-discord/internal/services/character"
	mockcharacter "github.com/KirkDiggler/succ-discord/internal/services/character/mock"
)

func newCharacterHandler(t *testing.T) (*CharacterHandler, *mockcharacter.MockService) {
	ctrl := gomock.NewController(t)
	service := mockcharacter.NewMockService(ctrl)

	registry, err := conditions.DefaultRegistry()
	require.NoError(t, err)

	h, err := NewCharacterHandler(&CharacterHandlerConfig{Service: service, Conditions: registry})
	require.NoError(t, err)
	return h, service
}

func characterCommand(sub string, options ...*discordgo.ApplicationCommandInteractionDataOption) *core.InteractionContext {
	i := core.NewCommandInteraction("user-1", "character", core.SubcommandOption(sub, options...))
	return core.NewTestContext(context.Background(), i, core.NewMockResponder())
}

func pip() *character.Character {
	char := character.New("char-1", "user-1", "test-guild", "Pip")
	char.Attributes[character.Agility] = 8
	char.SetSkill(character.Skill{Name: "Shooting", Attribute: character.Agility, Die: 8})
	char.SetSkill(character.Skill{Name: "Fighting", Attribute: character.Agility, Die: 6})
	char.AddItem(character.Item{ID: "item-1", Name: "Bow", Type: character.ItemWeapon})
	char.AddItem(character.Item{ID: "item-2", Name: "Rope", Type: character.ItemGear})
	char.ApplyCondition(&conditions.AppliedCondition{
		ConditionID: conditions.Boost,
		Options:     map[string]string{"trait": "Shooting", "degree": "raise"},
		AppliedBy:   "user-1",
		AppliedAt:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	return char
}

func TestCharacterHandler_Create(t *testing.T) {
	h, service := newCharacterHandler(t)
	service.EXPECT().
		CreateCharacter(gomock.Any(), &characterService.CreateCharacterInput{OwnerID: "user-1", RealmID: "test-guild", Name: "Pip"}).
		Return(character.New("char-1", "user-1", "test-guild", "Pip"), nil)

	result, err := h.HandleCreate(characterCommand("create", core.StringOption(NameParam, "Pip")))
	require.NoError(t, err)
	require.Len(t, result.Response.Embeds, 1)
	assert.Contains(t, result.Response.Embeds[0].Description, "**Pip**")
	assert.True(t, result.Response.Ephemeral)
}

func TestCharacterHandler_CreateDuplicate(t *testing.T) {
	h, service := newCharacterHandler(t)
	service.EXPECT().
		CreateCharacter(gomock.Any(), gomock.Any()).
		Return(nil, apperr.AlreadyExistsf("you already have a character named %s", "Pip"))

	_, err := h.HandleCreate(characterCommand("create", core.StringOption(NameParam, "Pip")))
	assert.True(t, apperr.IsAlreadyExists(err))
}

func TestCharacterHandler_Attribute(t *testing.T) {
	h, service := newCharacterHandler(t)
	char := pip()
	service.EXPECT().ResolveCharacter(gomock.Any(), "user-1", "").Return(char, nil)
	service.EXPECT().SetAttribute(gomock.Any(), "char-1", "vigor", 8).Return(char, nil)

	result, err := h.HandleAttribute(characterCommand("attribute",
		core.StringOption(AttributeParam, "vigor"),
		core.IntegerOption(DieParam, 8),
	))
	require.NoError(t, err)
	assert.Equal(t, "Vigor is now d8.", result.Response.Embeds[0].Description)
}

func TestCharacterHandler_Skill(t *testing.T) {
	h, service := newCharacterHandler(t)
	char := pip()
	service.EXPECT().ResolveCharacter(gomock.Any(), "user-1", "Pip").Return(char, nil)
	service.EXPECT().
		SetSkill(gomock.Any(), &characterService.SetSkillInput{CharacterID: "char-1", Name: "Notice", Attribute: "smarts", Die: 6}).
		Return(char, nil)

	result, err := h.HandleSkill(characterCommand("skill",
		core.StringOption(SkillParam, "Notice"),
		core.StringOption(AttributeParam, "smarts"),
		core.IntegerOption(DieParam, 6),
		core.StringOption(CharacterParam, "Pip"),
	))
	require.NoError(t, err)
	assert.Equal(t, "Notice is now d6.", result.Response.Embeds[0].Description)
}

func TestCharacterHandler_Item(t *testing.T) {
	h, service := newCharacterHandler(t)
	char := pip()
	service.EXPECT().ResolveCharacter(gomock.Any(), "user-1", "").Return(char, nil)
	service.EXPECT().
		AddItem(gomock.Any(), &characterService.AddItemInput{CharacterID: "char-1", Name: "Sword", Type: "weapon"}).
		Return(char, nil)

	result, err := h.HandleItem(characterCommand("item",
		core.StringOption(ItemParam, "Sword"),
		core.StringOption(ItemTypeParam, "weapon"),
	))
	require.NoError(t, err)
	assert.Equal(t, "Added Sword.", result.Response.Embeds[0].Description)
}

func TestCharacterHandler_Show(t *testing.T) {
	h, service := newCharacterHandler(t)
	service.EXPECT().ResolveCharacter(gomock.Any(), "user-1", "").Return(pip(), nil)

	result, err := h.HandleShow(characterCommand("show"))
	require.NoError(t, err)
	assert.False(t, result.Response.Ephemeral)

	embed := result.Response.Embeds[0]
	assert.Equal(t, "Pip", embed.Title)

	fields := map[string]string{}
	for _, f := range embed.Fields {
		fields[f.Name] = f.Value
	}
	assert.Contains(t, fields["Attributes"], "Agility d8")
	assert.Contains(t, fields["Attributes"], "Vigor d4")
	assert.Equal(t, "Fighting d6\nShooting d8", fields["Skills"])
	assert.Equal(t, "⚔️ Bow\nRope", fields["Gear"])
	assert.Equal(t, "⬆️ Boost Trait (degree: raise, trait: Shooting)", fields["Conditions"])
}

func TestCharacterHandler_List(t *testing.T) {
	h, service := newCharacterHandler(t)

	service.EXPECT().ListCharacters(gomock.Any(), "user-1").Return(nil, nil)
	empty, err := h.HandleList(characterCommand("list"))
	require.NoError(t, err)
	assert.Contains(t, empty.Response.Embeds[0].Title, "No Characters")

	service.EXPECT().ListCharacters(gomock.Any(), "user-1").Return([]*character.Character{pip()}, nil)
	listed, err := h.HandleList(characterCommand("list"))
	require.NoError(t, err)
	assert.Equal(t, "• **Pip** (1 active)", listed.Response.Embeds[0].Description)
}
