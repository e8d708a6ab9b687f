package v2

import (
	"context"
	"errors"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/succ-discord/internal/dialogs"
	"github.com/KirkDiggler/succ-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/succ-discord/internal/discord/v2/handlers"
	"github.com/KirkDiggler/succ-discord/internal/discord/v2/middleware"
	"github.com/KirkDiggler/succ-discord/internal/discord/v2/routers"
	characterService "github.com/KirkDiggler/succ-discord/internal/services/character"
	"github.com/KirkDiggler/succ-discord/internal/uuid"
)

// BotConfig holds what the interaction pipeline needs
type BotConfig struct {
	CharacterService characterService.Service
	Conditions       dialogs.ConditionRegistry
	Renderer         dialogs.Renderer
	Localizer        dialogs.Localizer
	UUIDGenerator    uuid.Generator

	// RateLimitPerMinute caps interactions per user. Zero disables it.
	RateLimitPerMinute int

	// AllowedRoles restricts the bot to members holding any of these roles
	AllowedRoles []string

	// Logger replaces the default request logger
	Logger middleware.Logger
}

// Validate checks the config
func (c *BotConfig) Validate() error {
	if c == nil {
		return errors.New("config is required")
	}
	if c.CharacterService == nil {
		return errors.New("character service is required")
	}
	if c.Conditions == nil {
		return errors.New("conditions are required")
	}
	if c.Renderer == nil {
		return errors.New("renderer is required")
	}
	if c.Localizer == nil {
		return errors.New("localizer is required")
	}
	return nil
}

// Bot is the wired interaction pipeline
type Bot struct {
	Pipeline *core.Pipeline
	Dialogs  *handlers.DialogHandler
}

// NewBot builds the pipeline, its middleware and every router
func NewBot(cfg *BotConfig) (*Bot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pipeline := core.NewPipeline()

	logConfig := middleware.DefaultLogConfig()
	if cfg.Logger != nil {
		logConfig.Logger = cfg.Logger
	}

	// Error handling wraps everything so recovered panics and rate limit
	// denials are answered the same way
	pipeline.Use(
		middleware.ErrorMiddleware(middleware.DefaultErrorConfig()),
		middleware.RecoveryMiddleware(middleware.DefaultErrorConfig()),
		middleware.LoggingMiddleware(logConfig),
		middleware.RateLimitMiddleware(&middleware.RateLimitConfig{PerMinute: cfg.RateLimitPerMinute}),
		middleware.AuthorizationMiddleware(&middleware.AuthConfig{
			RequireGuild: true,
			AllowedRoles: cfg.AllowedRoles,
		}),
	)

	dialogHandler := handlers.NewDialogHandler(&handlers.DialogHandlerConfig{
		UUIDGenerator:   cfg.UUIDGenerator,
		CustomIDBuilder: core.NewCustomIDBuilder(handlers.DialogDomain),
	})

	provider, err := dialogs.NewProvider(&dialogs.ProviderConfig{
		Registry:  cfg.Conditions,
		Traits:    cfg.CharacterService,
		Renderer:  cfg.Renderer,
		Presenter: dialogHandler,
		Localizer: cfg.Localizer,
		Notifier:  dialogHandler,
	})
	if err != nil {
		return nil, err
	}

	conditionHandler, err := handlers.NewConditionHandler(&handlers.ConditionHandlerConfig{
		Dialogs:    provider,
		Service:    cfg.CharacterService,
		Conditions: cfg.Conditions,
	})
	if err != nil {
		return nil, err
	}

	characterHandler, err := handlers.NewCharacterHandler(&handlers.CharacterHandlerConfig{
		Service:    cfg.CharacterService,
		Conditions: cfg.Conditions,
	})
	if err != nil {
		return nil, err
	}

	if _, err := routers.NewDialogRouter(&routers.DialogRouterConfig{Pipeline: pipeline, Handler: dialogHandler}); err != nil {
		return nil, err
	}
	if _, err := routers.NewConditionRouter(&routers.ConditionRouterConfig{Pipeline: pipeline, Handler: conditionHandler}); err != nil {
		return nil, err
	}
	if _, err := routers.NewCharacterRouter(&routers.CharacterRouterConfig{Pipeline: pipeline, Handler: characterHandler}); err != nil {
		return nil, err
	}

	return &Bot{
		Pipeline: pipeline,
		Dialogs:  dialogHandler,
	}, nil
}

// Attach routes the session's interactions through the pipeline. ctx bounds
// every interaction, so cancelling it dismisses open dialogs.
func (b *Bot) Attach(ctx context.Context, dg *discordgo.Session) {
	dg.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if err := b.Pipeline.Execute(ctx, s, i); err != nil {
			log.Printf("[Pipeline] Handler error: %v", err)
		}
	})
	dg.AddHandler(b.Dialogs.HandleMessageDelete)
}
