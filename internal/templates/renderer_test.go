package templates_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/succ-discord/internal/dialogs"
	"github.com/KirkDiggler/succ-discord/internal/domain/character"
	"github.com/KirkDiggler/succ-discord/internal/domain/conditions"
	apperr "github.com/KirkDiggler/succ-discord/internal/errors"
	"github.com/KirkDiggler/succ-discord/internal/templates"
)

type keyLocalizer struct{}

func (keyLocalizer) Localize(key string) string { return "<" + key + ">" }

func condition(id conditions.ID) *conditions.Condition {
	return &conditions.Condition{ID: id, Name: "Smite", Icon: "⚔️", Reference: "SWADE p. 171"}
}

func TestRenderer_EveryDialogTemplate(t *testing.T) {
	renderer, err := templates.NewRenderer(keyLocalizer{})
	require.NoError(t, err)

	cond := condition(conditions.Numb)
	data := map[dialogs.Kind]any{
		dialogs.KindBoostLower: &dialogs.BoostLowerData{Condition: cond, Boost: true},
		dialogs.KindSmite:      &dialogs.SmiteData{Condition: cond, WeaponNames: []string{"Axe"}},
		dialogs.KindProtection: &dialogs.ConditionData{Condition: cond},
		dialogs.KindDeflection: &dialogs.ConditionData{Condition: cond},
		dialogs.KindNumb:       &dialogs.ConditionData{Condition: cond},
	}

	for kind, d := range data {
		t.Run(kind.String(), func(t *testing.T) {
			out, err := renderer.Render(context.Background(), kind.TemplatePath(), d)
			require.NoError(t, err)
			assert.Contains(t, out, "⚔️ **Smite**")
			assert.Contains(t, out, "-# SWADE p. 171")
		})
	}
}

func TestRenderer_BoostLowerText(t *testing.T) {
	renderer, err := templates.NewRenderer(keyLocalizer{})
	require.NoError(t, err)

	boost, err := renderer.Render(context.Background(), "boost-lower-trait.md.tmpl", &dialogs.BoostLowerData{
		Condition: condition(conditions.Boost),
		Boost:     true,
	})
	require.NoError(t, err)
	assert.Contains(t, boost, "<ENHANCED_CONDITIONS.Dialog.BoostBuilder.Boost>")

	lower, err := renderer.Render(context.Background(), "boost-lower-trait.md.tmpl", &dialogs.BoostLowerData{
		Condition: condition(conditions.Lower),
	})
	require.NoError(t, err)
	assert.Contains(t, lower, "<ENHANCED_CONDITIONS.Dialog.BoostBuilder.Lower>")
}

func TestRenderer_SmiteJoinsWeapons(t *testing.T) {
	renderer, err := templates.NewRenderer(keyLocalizer{})
	require.NoError(t, err)

	out, err := renderer.Render(context.Background(), "smite.md.tmpl", &dialogs.SmiteData{
		Condition:   condition(conditions.Smite),
		Weapons:     []character.Item{{Name: "Axe"}, {Name: "Bow"}},
		WeaponNames: []string{"Axe", "Bow"},
	})
	require.NoError(t, err)
	assert.Contains(t, out, "**<ENHANCED_CONDITIONS.Dialog.Weapon>:** Axe, Bow")
	assert.NotContains(t, out, "undefined")
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	renderer, err := templates.NewRenderer(keyLocalizer{})
	require.NoError(t, err)

	_, err = renderer.Render(context.Background(), "petrify.md.tmpl", nil)
	assert.True(t, apperr.IsNotFound(err))
}

func TestRenderer_ExecuteError(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.md.tmpl": {Data: []byte("{{ .Missing.Field }}")},
	}
	renderer, err := templates.NewRendererFS(keyLocalizer{}, fsys, "*.md.tmpl")
	require.NoError(t, err)

	_, err = renderer.Render(context.Background(), "broken.md.tmpl", &dialogs.ConditionData{})
	assert.Error(t, err)
}

func TestRenderer_CancelledContext(t *testing.T) {
	renderer, err := templates.NewRenderer(keyLocalizer{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = renderer.Render(ctx, "numb.md.tmpl", &dialogs.ConditionData{Condition: condition(conditions.Numb)})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewRenderer_RequiresLocalizer(t *testing.T) {
	_, err := templates.NewRenderer(nil)
	assert.Error(t, err)
}
