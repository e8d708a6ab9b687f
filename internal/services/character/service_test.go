package character_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/succ-discord/internal/domain/character"
	"github.com/KirkDiggler/succ-discord/internal/domain/conditions"
	apperr "github.com/KirkDiggler/succ-discord/internal/errors"
	mockcharacters "github.com/KirkDiggler/succ-discord/internal/repositories/characters/mock"
	characterService "github.com/KirkDiggler/succ-discord/internal/services/character"
	"github.com/KirkDiggler/succ-discord/internal/testutils"
	"github.com/KirkDiggler/succ-discord/internal/uuid"
)

func setup(t *testing.T) (characterService.Service, *mockcharacters.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := mockcharacters.NewMockRepository(ctrl)
	svc := characterService.NewService(&characterService.ServiceConfig{
		Repository:    repo,
		UUIDGenerator: uuid.NewStaticGenerator("char-1", "item-1"),
	})
	return svc, repo
}

func TestNewService_RequiresRepository(t *testing.T) {
	assert.Panics(t, func() {
		characterService.NewService(&characterService.ServiceConfig{})
	})
}

func TestCreateCharacter(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	repo.EXPECT().ListByOwner(ctx, "user-1").Return(nil, nil)
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, char *character.Character) error {
		assert.Equal(t, "char-1", char.ID)
		assert.Equal(t, "Red", char.Name)
		assert.Equal(t, character.Die(4), char.Attributes[character.Spirit])
		return nil
	})

	char, err := svc.CreateCharacter(ctx, &characterService.CreateCharacterInput{
		OwnerID: "user-1",
		RealmID: "guild-1",
		Name:    "  Red ",
	})
	require.NoError(t, err)
	assert.Equal(t, "char-1", char.ID)
	assert.Equal(t, "guild-1", char.RealmID)
}

func TestCreateCharacter_DuplicateName(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	repo.EXPECT().ListByOwner(ctx, "user-1").Return([]*character.Character{
		testutils.CreateTestCharacter("char-0", "user-1", "guild-1", "Red"),
	}, nil)

	_, err := svc.CreateCharacter(ctx, &characterService.CreateCharacterInput{OwnerID: "user-1", Name: "red"})
	require.Error(t, err)
	assert.True(t, apperr.IsAlreadyExists(err))
}

func TestCreateCharacter_Validation(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.CreateCharacter(context.Background(), &characterService.CreateCharacterInput{OwnerID: "user-1"})
	assert.True(t, apperr.IsInvalidArgument(err))

	_, err = svc.CreateCharacter(context.Background(), &characterService.CreateCharacterInput{Name: "Red"})
	assert.True(t, apperr.IsInvalidArgument(err))

	_, err = svc.CreateCharacter(context.Background(), nil)
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestResolveCharacter(t *testing.T) {
	ctx := context.Background()
	red := testutils.CreateTestCharacter("char-1", "user-1", "guild-1", "Red")
	blue := testutils.CreateTestCharacter("char-2", "user-1", "guild-1", "Blue")

	tests := []struct {
		name     string
		owned    []*character.Character
		query    string
		wantID   string
		wantCode apperr.Code
	}{
		{name: "only character", owned: []*character.Character{red}, wantID: "char-1"},
		{name: "by name", owned: []*character.Character{blue, red}, query: "RED", wantID: "char-1"},
		{name: "ambiguous", owned: []*character.Character{blue, red}, wantCode: apperr.CodeInvalidArgument},
		{name: "none", wantCode: apperr.CodeNotFound},
		{name: "unknown name", owned: []*character.Character{red}, query: "Green", wantCode: apperr.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := setup(t)
			repo.EXPECT().ListByOwner(ctx, "user-1").Return(tt.owned, nil)

			char, err := svc.ResolveCharacter(ctx, "user-1", tt.query)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, apperr.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, char.ID)
		})
	}
}

func TestSetSkill(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()
	char := testutils.CreateTestCharacter("char-1", "user-1", "guild-1", "Red")

	repo.EXPECT().Get(ctx, "char-1").Return(char, nil)
	repo.EXPECT().Update(ctx, char).Return(nil)

	updated, err := svc.SetSkill(ctx, &characterService.SetSkillInput{
		CharacterID: "char-1",
		Name:        "Shooting",
		Attribute:   "Agility",
		Die:         10,
	})
	require.NoError(t, err)

	var found bool
	for _, skill := range updated.Skills {
		if skill.Name == "Shooting" {
			found = true
			assert.Equal(t, character.Die(10), skill.Die)
		}
	}
	assert.True(t, found)
}

func TestSetSkill_InvalidDie(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.SetSkill(context.Background(), &characterService.SetSkillInput{
		CharacterID: "char-1",
		Name:        "Shooting",
		Attribute:   "agility",
		Die:         7,
	})
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestSetAttribute(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()
	char := testutils.CreateTestCharacter("char-1", "user-1", "guild-1", "Red")

	repo.EXPECT().Get(ctx, "char-1").Return(char, nil)
	repo.EXPECT().Update(ctx, char).Return(nil)

	updated, err := svc.SetAttribute(ctx, "char-1", "Strength", 12)
	require.NoError(t, err)
	assert.Equal(t, character.Die(12), updated.Attributes[character.Strength])

	_, err = svc.SetAttribute(ctx, "char-1", "luck", 6)
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestAddItem_DefaultsToGear(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()
	char := character.New("char-1", "user-1", "guild-1", "Red")

	repo.EXPECT().Get(ctx, "char-1").Return(char, nil)
	repo.EXPECT().Update(ctx, char).Return(nil)

	updated, err := svc.AddItem(ctx, &characterService.AddItemInput{CharacterID: "char-1", Name: "Torch"})
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, character.ItemGear, updated.Items[0].Type)
	assert.Equal(t, "char-1", updated.Items[0].ID)
}

func TestApplyCondition(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()
	char := testutils.CreateTestCharacter("char-1", "user-1", "guild-1", "Red")

	repo.EXPECT().Get(ctx, "char-1").Return(char, nil)
	repo.EXPECT().Update(ctx, char).Return(nil)

	updated, err := svc.ApplyCondition(ctx, "char-1", &conditions.AppliedCondition{
		ConditionID: conditions.Smite,
		Options:     map[string]string{"weapon": "Long Sword", "bonus": "+2"},
		AppliedBy:   "user-1",
	})
	require.NoError(t, err)
	assert.True(t, updated.HasCondition(conditions.Smite))
}

func TestApplyCondition_UpdateFails(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()
	char := testutils.CreateTestCharacter("char-1", "user-1", "guild-1", "Red")

	repo.EXPECT().Get(ctx, "char-1").Return(char, nil)
	repo.EXPECT().Update(ctx, char).Return(errors.New("redis down"))

	_, err := svc.ApplyCondition(ctx, "char-1", &conditions.AppliedCondition{ConditionID: conditions.Numb})
	assert.ErrorContains(t, err, "redis down")
}

func TestApplyCondition_NotFound(t *testing.T) {
	svc, repo := setup(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, "missing").Return(nil, apperr.NotFound("character not found"))

	_, err := svc.ApplyCondition(ctx, "missing", &conditions.AppliedCondition{ConditionID: conditions.Numb})
	assert.True(t, apperr.IsNotFound(err))
}

func TestTraitOptions(t *testing.T) {
	svc, _ := setup(t)
	char := testutils.CreateTestCharacter("char-1", "user-1", "guild-1", "Red")

	options, err := svc.TraitOptions(context.Background(), char)
	require.NoError(t, err)
	require.Len(t, options, 7)
	assert.Equal(t, "agility", options[0].Value)
	assert.Equal(t, "Fighting", options[5].Value)
	assert.Equal(t, "Notice", options[6].Value)

	_, err = svc.TraitOptions(context.Background(), nil)
	assert.Error(t, err)
}
