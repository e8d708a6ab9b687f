package routers

import (
	"errors"

	"github.com/KirkDiggler/succ-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/succ-discord/internal/discord/v2/handlers"
)

// DialogRouter routes the buttons, menus and text inputs of open dialogs
type DialogRouter struct {
	router  *core.Router
	handler *handlers.DialogHandler
}

// DialogRouterConfig holds the router dependencies
type DialogRouterConfig struct {
	Pipeline *core.Pipeline
	Handler  *handlers.DialogHandler
}

// Validate checks the config
func (c *DialogRouterConfig) Validate() error {
	if c == nil {
		return errors.New("config is required")
	}
	if c.Pipeline == nil {
		return errors.New("pipeline is required")
	}
	if c.Handler == nil {
		return errors.New("handler is required")
	}
	return nil
}

// NewDialogRouter creates the router and registers it with the pipeline
func NewDialogRouter(cfg *DialogRouterConfig) (*DialogRouter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dr := &DialogRouter{
		router:  core.NewRouter(handlers.DialogDomain, cfg.Pipeline),
		handler: cfg.Handler,
	}

	dr.router.
		Component(handlers.DialogActionSelect, dr.handler.HandleSelect).
		Component(handlers.DialogActionButton, dr.handler.HandleAction).
		Modal(handlers.DialogActionSubmit, dr.handler.HandleSubmit)

	dr.router.Register()
	return dr, nil
}
