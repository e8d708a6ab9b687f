package middleware

import (
	"log"
	"time"

	"github.com/KirkDiggler/succ-discord/internal/discord/v2/core"
)

// LogConfig configures logging behavior
type LogConfig struct {
	// LogRequests logs incoming interactions
	LogRequests bool

	// LogResponses logs outgoing responses with their duration
	LogResponses bool

	// LogDuration logs handler execution time
	LogDuration bool

	// LogErrors logs errors that reach this middleware
	LogErrors bool

	// Logger allows custom logging implementation
	Logger Logger

	// RequestFilter filters which requests to log
	RequestFilter func(*core.InteractionContext) bool
}

// Logger is a custom logging interface
type Logger interface {
	LogRequest(ctx *core.InteractionContext)
	LogResponse(ctx *core.InteractionContext, result *core.HandlerResult, duration time.Duration)
	LogError(ctx *core.InteractionContext, err error)
}

// DefaultLogConfig returns sensible defaults
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		LogRequests:  true,
		LogResponses: false,
		LogDuration:  true,
		LogErrors:    true,
		Logger:       &defaultLogger{},
	}
}

// LoggingMiddleware provides request/response logging
func LoggingMiddleware(config *LogConfig) core.Middleware {
	if config == nil {
		config = DefaultLogConfig()
	}

	return func(next core.Handler) core.Handler {
		return core.Wrap(next, func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			// Check filter
			if config.RequestFilter != nil && !config.RequestFilter(ctx) {
				return next.Handle(ctx)
			}

			// Log request
			if config.LogRequests && config.Logger != nil {
				config.Logger.LogRequest(ctx)
			}

			// Track start time
			start := time.Now()

			// Call next handler
			result, err := next.Handle(ctx)

			// Calculate duration
			duration := time.Since(start)

			// Log error
			if err != nil && config.LogErrors && config.Logger != nil {
				config.Logger.LogError(ctx, err)
			}

			// Log response
			if config.LogResponses && config.Logger != nil {
				config.Logger.LogResponse(ctx, result, duration)
			} else if config.LogDuration {
				// Just log duration
				logDuration(ctx, duration)
			}

			return result, err
		})
	}
}

// defaultLogger logs through the standard logger
type defaultLogger struct{}

func (l *defaultLogger) LogRequest(ctx *core.InteractionContext) {
	log.Printf("[Discord] %s, User: %s (%s), Guild: %s",
		describe(ctx),
		ctx.UserName,
		ctx.UserID,
		ctx.GuildID,
	)
}

func (l *defaultLogger) LogResponse(ctx *core.InteractionContext, result *core.HandlerResult, duration time.Duration) {
	status := "success"
	switch {
	case result == nil || result.Response == nil:
		status = "no_response"
	case result.Response.Ephemeral:
		status = "ephemeral"
	case result.Response.FollowUp:
		status = "follow_up"
	}

	log.Printf("[Discord] %s responded %s in %v", describe(ctx), status, duration)
}

func (l *defaultLogger) LogError(ctx *core.InteractionContext, err error) {
	log.Printf("[Discord] Error in %s: %v", describe(ctx), err)
}

func logDuration(ctx *core.InteractionContext, duration time.Duration) {
	log.Printf("[Discord] %s completed in %v", describe(ctx), duration)
}

// describe names the interaction as "Command: condition/smite",
// "Component: dialog:action" or "Modal: dialog:submit"
func describe(ctx *core.InteractionContext) string {
	switch {
	case ctx.IsCommand():
		name := ctx.GetCommandName()
		if sub := ctx.GetSubcommand(); sub != "" {
			name += "/" + sub
		}
		return "Command: " + name
	case ctx.IsComponent():
		return "Component: " + routeName(ctx.GetCustomID())
	case ctx.IsModal():
		return "Modal: " + routeName(ctx.GetCustomID())
	default:
		return "unknown"
	}
}

func routeName(customID string) string {
	parsed, err := core.ParseCustomID(customID)
	if err != nil {
		return customID
	}
	return parsed.Domain + ":" + parsed.Action
}
