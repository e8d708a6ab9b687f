//go:build integration
// +build integration

package characters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/succ-discord/internal/domain/conditions"
	apperr "github.com/KirkDiggler/succ-discord/internal/errors"
	"github.com/KirkDiggler/succ-discord/internal/repositories/characters"
	"github.com/KirkDiggler/succ-discord/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	repo := characters.NewRedisRepository(&characters.RedisRepoConfig{Client: client})
	ctx := context.Background()

	t.Run("create and retrieve character", func(t *testing.T) {
		char := testutils.CreateTestCharacter("char-1", "user-1", "guild-1", "Red")
		require.NoError(t, repo.Create(ctx, char))

		got, err := repo.Get(ctx, char.ID)
		require.NoError(t, err)
		assert.Equal(t, char.Name, got.Name)
		assert.Equal(t, char.Attributes, got.Attributes)
		assert.Len(t, got.Weapons(), 1)
	})

	t.Run("create duplicate character fails", func(t *testing.T) {
		char := testutils.CreateTestCharacter("char-2", "user-1", "guild-1", "Blue")
		require.NoError(t, repo.Create(ctx, char))

		err := repo.Create(ctx, char)
		assert.True(t, apperr.IsAlreadyExists(err))
	})

	t.Run("update keeps applied conditions", func(t *testing.T) {
		char := testutils.CreateTestCharacter("char-3", "user-2", "guild-1", "Green")
		require.NoError(t, repo.Create(ctx, char))

		char.ApplyCondition(&conditions.AppliedCondition{
			ConditionID: conditions.Protection,
			Options:     map[string]string{"bonus": "4", "type": "armor"},
		})
		require.NoError(t, repo.Update(ctx, char))

		got, err := repo.Get(ctx, char.ID)
		require.NoError(t, err)
		assert.True(t, got.HasCondition(conditions.Protection))
	})

	t.Run("list and delete by owner", func(t *testing.T) {
		chars, err := repo.ListByOwner(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, chars, 2)
		assert.Equal(t, "Blue", chars[0].Name)

		require.NoError(t, repo.Delete(ctx, "char-2"))

		chars, err = repo.ListByOwner(ctx, "user-1")
		require.NoError(t, err)
		assert.Len(t, chars, 1)
	})
}
