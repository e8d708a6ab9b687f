package dialogs

import (
	"context"
	"fmt"
	"log"

	apperr "github.com/KirkDiggler/succ-discord/internal/errors"
)

// actionSpec binds a button to the function that turns the form into a
// result. A nil resolve cancels the dialog.
type actionSpec[T any] struct {
	id       string
	labelKey string
	inputs   []string
	resolve  func(Form) (*T, error)
}

type request[T any] struct {
	kind    Kind
	data    any
	fields  []Field
	actions []actionSpec[T]
}

func cancelAction[T any]() actionSpec[T] {
	return actionSpec[T]{id: ActionCancel, labelKey: "ENHANCED_CONDITIONS.Dialog.Cancel"}
}

// run renders the dialog body, presents the modal and maps the answer
func run[T any](ctx context.Context, p *Provider, req *request[T]) (*T, error) {
	path := req.kind.TemplatePath()
	if path == "" {
		return nil, apperr.Internalf("no template for %s dialog", req.kind)
	}

	content, err := p.renderer.Render(ctx, path, req.data)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s dialog: %w", req.kind, err)
	}

	modal := &Modal{
		Title:       p.localizer.Localize(req.kind.TitleKey()),
		Width:       DefaultWidth,
		Content:     content,
		Classes:     []string{DialogClass},
		Fields:      preselect(req.fields),
		RejectClose: false,
	}
	for _, spec := range req.actions {
		modal.Actions = append(modal.Actions, Action{
			ID:     spec.id,
			Label:  p.localizer.Localize(spec.labelKey),
			Inputs: spec.inputs,
		})
	}

	choice, err := p.presenter.Present(ctx, modal)
	if err != nil {
		return nil, fmt.Errorf("failed to present %s dialog: %w", req.kind, err)
	}
	if choice == nil {
		log.Printf("[DIALOG] %s dialog dismissed", req.kind)
		return nil, nil
	}

	for _, spec := range req.actions {
		if spec.id != choice.Action {
			continue
		}
		if spec.resolve == nil {
			log.Printf("[DIALOG] %s dialog cancelled", req.kind)
			return nil, nil
		}
		return spec.resolve(choice.Form)
	}

	return nil, apperr.InvalidArgumentf("unknown action %q for %s dialog", choice.Action, req.kind)
}

// preselect makes the first option the default of select fields that have
// none, so a resolving action always has a value to read
func preselect(fields []Field) []Field {
	out := make([]Field, len(fields))
	for i, field := range fields {
		if field.Kind == FieldSelect && field.Default == "" && len(field.Options) > 0 {
			field.Default = field.Options[0].Value
		}
		out[i] = field
	}
	return out
}
