package routers

import (
	"errors"

	"github.com/KirkDiggler/succ-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/succ-discord/internal/discord/v2/handlers"
)

// CharacterCommand is the slash command that manages characters
const CharacterCommand = "character"

// CharacterRouter handles /character commands
type CharacterRouter struct {
	router  *core.Router
	handler *handlers.CharacterHandler
}

// CharacterRouterConfig holds the router dependencies
type CharacterRouterConfig struct {
	Pipeline *core.Pipeline
	Handler  *handlers.CharacterHandler
}

// Validate checks the config
func (c *CharacterRouterConfig) Validate() error {
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

// NewCharacterRouter creates the router and registers it with the pipeline
func NewCharacterRouter(cfg *CharacterRouterConfig) (*CharacterRouter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cr := &CharacterRouter{
		router:  core.NewRouter(CharacterCommand, cfg.Pipeline),
		handler: cfg.Handler,
	}

	cr.router.
		Subcommand("create", cr.handler.HandleCreate).
		Subcommand("attribute", cr.handler.HandleAttribute).
		Subcommand("skill", cr.handler.HandleSkill).
		Subcommand("item", cr.handler.HandleItem).
		Subcommand("show", cr.handler.HandleShow).
		Subcommand("list", cr.handler.HandleList)

	cr.router.Register()
	return cr, nil
}
