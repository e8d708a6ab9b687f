package character_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/succ-discord/internal/domain/character"
	"github.com/KirkDiggler/succ-discord/internal/repositories/characters"
	characterService "github.com/KirkDiggler/succ-discord/internal/services/character"
)

const seedYAML = `
characters:
  - owner_id: user-1
    realm_id: guild-1
    name: Red
    attributes:
      agility: 8
      vigor: 6
    skills:
      - name: Fighting
        attribute: agility
        die: 8
    items:
      - name: Long Sword
        type: weapon
  - owner_id: user-2
    name: Blue
`

func TestImportSeed(t *testing.T) {
	ctx := context.Background()
	svc := characterService.NewService(&characterService.ServiceConfig{
		Repository: characters.NewInMemoryRepository(),
	})

	created, err := characterService.ImportSeed(ctx, svc, strings.NewReader(seedYAML))
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	red, err := svc.ResolveCharacter(ctx, "user-1", "")
	require.NoError(t, err)
	assert.Equal(t, character.Die(8), red.Attributes[character.Agility])
	assert.Equal(t, character.Die(4), red.Attributes[character.Smarts])
	require.Len(t, red.Weapons(), 1)
	assert.Equal(t, "Long Sword", red.Weapons()[0].Name)

	// a second import skips what already exists
	created, err = characterService.ImportSeed(ctx, svc, strings.NewReader(seedYAML))
	require.NoError(t, err)
	assert.Equal(t, 0, created)
}

func TestImportSeed_Empty(t *testing.T) {
	svc := characterService.NewService(&characterService.ServiceConfig{
		Repository: characters.NewInMemoryRepository(),
	})

	created, err := characterService.ImportSeed(context.Background(), svc, strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, created)
}

func TestImportSeed_BadDie(t *testing.T) {
	svc := characterService.NewService(&characterService.ServiceConfig{
		Repository: characters.NewInMemoryRepository(),
	})

	_, err := characterService.ImportSeed(context.Background(), svc, strings.NewReader(`
characters:
  - owner_id: user-1
    name: Red
    attributes:
      agility: 7
`))
	assert.Error(t, err)
}

func TestImportSeedFile_NoPath(t *testing.T) {
	created, err := characterService.ImportSeedFile(context.Background(), nil, "")
	require.NoError(t, err)
	assert.Zero(t, created)
}
