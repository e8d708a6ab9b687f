package routers

import (
	"errors"

	"github.com/KirkDiggler/succ-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/succ-discord/internal/discord/v2/handlers"
)

// ConditionCommand is the slash command that opens condition dialogs
const ConditionCommand = "condition"

// ConditionRouter handles /condition commands
type ConditionRouter struct {
	router  *core.Router
	handler *handlers.ConditionHandler
}

// ConditionRouterConfig holds the router dependencies
type ConditionRouterConfig struct {
	Pipeline *core.Pipeline
	Handler  *handlers.ConditionHandler
}

// Validate checks the config
func (c *ConditionRouterConfig) Validate() error {
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

// NewConditionRouter creates the router and registers it with the pipeline
func NewConditionRouter(cfg *ConditionRouterConfig) (*ConditionRouter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cr := &ConditionRouter{
		router:  core.NewRouter(ConditionCommand, cfg.Pipeline),
		handler: cfg.Handler,
	}

	cr.router.
		Subcommand("boost", cr.handler.HandleBoost).
		Subcommand("lower", cr.handler.HandleLower).
		Subcommand("smite", cr.handler.HandleSmite).
		Subcommand("protection", cr.handler.HandleProtection).
		Subcommand("deflection", cr.handler.HandleDeflection).
		Subcommand("numb", cr.handler.HandleNumb)

	cr.router.Register()
	return cr, nil
}
