package middleware

import (
	"errors"
	"fmt"
	"log"
	"runtime/debug"

	"github.com/KirkDiggler/succ-discord/internal/discord/v2/core"
)

// ErrorConfig configures error handling behavior
type ErrorConfig struct {
	// LogErrors controls whether errors are logged
	LogErrors bool

	// IncludeStackTrace logs the stack of recovered panics
	IncludeStackTrace bool

	// ErrorLogger allows custom logging
	ErrorLogger ErrorLogger
}

// ErrorLogger logs errors
type ErrorLogger func(ctx *core.InteractionContext, err *core.HandlerError)

// DefaultErrorConfig returns sensible defaults
func DefaultErrorConfig() *ErrorConfig {
	return &ErrorConfig{
		LogErrors:   true,
		ErrorLogger: defaultErrorLogger,
	}
}

// ErrorMiddleware turns handler errors into ephemeral replies. Coded
// application errors keep their message; anything else is reported as an
// internal error.
func ErrorMiddleware(config *ErrorConfig) core.Middleware {
	if config == nil {
		config = DefaultErrorConfig()
	}

	return func(next core.Handler) core.Handler {
		return core.Wrap(next, func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			result, err := next.Handle(ctx)
			if err == nil {
				return result, nil
			}

			handlerErr := core.FromError(err)
			if config.LogErrors && config.ErrorLogger != nil {
				config.ErrorLogger(ctx, handlerErr)
			}

			response := core.NewEphemeralResponse(handlerErr.UserMessage)
			// A deferred or dialog-owning interaction can only take a follow-up
			if ctx.Responder != nil && ctx.Responder.HasResponded() {
				response.AsFollowUp()
			}

			return &core.HandlerResult{Response: response}, nil
		})
	}
}

// RecoveryMiddleware recovers from panics
func RecoveryMiddleware(config *ErrorConfig) core.Middleware {
	if config == nil {
		config = DefaultErrorConfig()
	}

	return func(next core.Handler) core.Handler {
		return core.Wrap(next, func(ctx *core.InteractionContext) (result *core.HandlerResult, err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[Discord] Panic recovered in handler: %v", r)
					if config.IncludeStackTrace {
						log.Printf("[Discord] %s", debug.Stack())
					}

					switch v := r.(type) {
					case error:
						err = v
					case string:
						err = errors.New(v)
					default:
						err = fmt.Errorf("panic: %v", r)
					}

					result = nil
					err = core.NewInternalError(err)
				}
			}()

			return next.Handle(ctx)
		})
	}
}

// defaultErrorLogger logs server errors with their interaction context.
// User mistakes are expected and stay quiet.
func defaultErrorLogger(ctx *core.InteractionContext, err *core.HandlerError) {
	if err.Code < core.ErrorCodeInternal {
		return
	}

	logCtx := map[string]interface{}{
		"user_id":    ctx.UserID,
		"guild_id":   ctx.GuildID,
		"channel_id": ctx.ChannelID,
	}

	if ctx.IsCommand() {
		logCtx["command"] = ctx.GetCommandName()
		logCtx["subcommand"] = ctx.GetSubcommand()
	} else if ctx.IsComponent() {
		if customID, parseErr := core.ParseCustomID(ctx.GetCustomID()); parseErr == nil {
			logCtx["domain"] = customID.Domain
			logCtx["action"] = customID.Action
		}
	} else if ctx.IsModal() {
		logCtx["modal_id"] = ctx.GetCustomID()
	}

	log.Printf("[Discord] Handler error: %v, context: %+v", err, logCtx)
}
