package dialogs

//go:generate mockgen -destination=mocks/mock_interfaces.go -package=mocks -source=interfaces.go

import (
	"context"

	"github.com/KirkDiggler/succ-discord/internal/domain/character"
	"github.com/KirkDiggler/succ-discord/internal/domain/conditions"
)

// ConditionRegistry looks up condition descriptors
type ConditionRegistry interface {
	LookupConditionByID(id conditions.ID) (*conditions.Condition, error)
}

// TraitSource lists the traits of an actor that a dialog may offer
type TraitSource interface {
	TraitOptions(ctx context.Context, actor *character.Character) ([]character.TraitOption, error)
}

// Renderer renders a dialog body template
type Renderer interface {
	Render(ctx context.Context, path string, data any) (string, error)
}

// Presenter shows a modal and blocks until the user answers it. A nil
// choice with a nil error means the modal was dismissed.
type Presenter interface {
	Present(ctx context.Context, modal *Modal) (*Choice, error)
}

// Localizer resolves message keys to display text
type Localizer interface {
	Localize(key string) string
}

// Notifier shows short notices to the user
type Notifier interface {
	Warn(ctx context.Context, message string) error
}
