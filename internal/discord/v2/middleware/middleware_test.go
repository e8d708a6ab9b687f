package middleware_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/succ-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/succ-discord/internal/discord/v2/middleware"
	apperr "github.com/KirkDiggler/succ-discord/internal/errors"
)

type routedHandler struct {
	canHandle bool
	fn        core.HandlerFunc
}

func (h *routedHandler) CanHandle(*core.InteractionContext) bool { return h.canHandle }

func (h *routedHandler) Handle(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	return h.fn(ctx)
}

func failing(err error) core.Handler {
	return &routedHandler{canHandle: true, fn: func(*core.InteractionContext) (*core.HandlerResult, error) {
		return nil, err
	}}
}

func ok(content string) core.Handler {
	return &routedHandler{canHandle: true, fn: func(*core.InteractionContext) (*core.HandlerResult, error) {
		return &core.HandlerResult{Response: core.NewResponse(content)}, nil
	}}
}

func commandContext(userID string) (*core.InteractionContext, *core.MockResponder) {
	responder := core.NewMockResponder()
	i := core.NewCommandInteraction(userID, "condition", core.SubcommandOption("smite"))
	return core.NewTestContext(context.Background(), i, responder), responder
}

func TestErrorMiddleware_UserMessageFromCodedError(t *testing.T) {
	ctx, _ := commandContext("user-1")
	handler := middleware.ErrorMiddleware(nil)(failing(
		apperr.Wrap(apperr.NotFound("no character named Red"), "failed to resolve character"),
	))

	result, err := handler.Handle(ctx)
	require.NoError(t, err)
	require.NotNil(t, result.Response)
	assert.Equal(t, "no character named Red", result.Response.Content)
	assert.True(t, result.Response.Ephemeral)
	assert.False(t, result.Response.FollowUp)
}

func TestErrorMiddleware_InternalErrorHidesDetail(t *testing.T) {
	ctx, _ := commandContext("user-1")

	var logged *core.HandlerError
	handler := middleware.ErrorMiddleware(&middleware.ErrorConfig{
		LogErrors: true,
		ErrorLogger: func(_ *core.InteractionContext, err *core.HandlerError) {
			logged = err
		},
	})(failing(errors.New("redis: connection refused")))

	result, err := handler.Handle(ctx)
	require.NoError(t, err)
	assert.NotContains(t, result.Response.Content, "redis")
	require.NotNil(t, logged)
	assert.Equal(t, core.ErrorCodeInternal, logged.Code)
}

func TestErrorMiddleware_FollowUpAfterDefer(t *testing.T) {
	ctx, responder := commandContext("user-1")
	require.NoError(t, responder.Defer(false))

	handler := middleware.ErrorMiddleware(nil)(failing(apperr.Validationf("%q is not a whole number", "x")))

	result, err := handler.Handle(ctx)
	require.NoError(t, err)
	assert.True(t, result.Response.FollowUp)
}

func TestErrorMiddleware_KeepsRouting(t *testing.T) {
	ctx, _ := commandContext("user-1")
	inner := &routedHandler{canHandle: false}

	assert.False(t, middleware.ErrorMiddleware(nil)(inner).CanHandle(ctx))
}

func TestRecoveryMiddleware(t *testing.T) {
	ctx, _ := commandContext("user-1")
	panicking := &routedHandler{canHandle: true, fn: func(*core.InteractionContext) (*core.HandlerResult, error) {
		panic("boom")
	}}

	handler := middleware.ErrorMiddleware(nil)(middleware.RecoveryMiddleware(nil)(panicking))

	result, err := handler.Handle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "An internal error occurred. Please try again later.", result.Response.Content)
}

func TestRateLimitMiddleware(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	handler := middleware.RateLimitMiddleware(&middleware.RateLimitConfig{
		PerMinute: 2,
		Now:       func() time.Time { return now },
	})(ok("done"))

	userCtx, _ := commandContext("user-1")
	otherCtx, _ := commandContext("user-2")

	for i := 0; i < 2; i++ {
		result, err := handler.Handle(userCtx)
		require.NoError(t, err)
		assert.Equal(t, "done", result.Response.Content)
	}

	limited, err := handler.Handle(userCtx)
	require.NoError(t, err)
	assert.Contains(t, limited.Response.Content, "too fast")
	assert.True(t, limited.Response.Ephemeral)

	other, err := handler.Handle(otherCtx)
	require.NoError(t, err)
	assert.Equal(t, "done", other.Response.Content)

	now = now.Add(30 * time.Second)
	refilled, err := handler.Handle(userCtx)
	require.NoError(t, err)
	assert.Equal(t, "done", refilled.Response.Content)
}

func TestRateLimitMiddleware_Disabled(t *testing.T) {
	inner := ok("done")
	assert.Same(t, inner, middleware.RateLimitMiddleware(&middleware.RateLimitConfig{})(inner))
}

func TestAuthorizationMiddleware(t *testing.T) {
	dm := func() *core.InteractionContext {
		i := core.NewCommandInteraction("user-1", "character")
		i.GuildID = ""
		return core.NewTestContext(context.Background(), i, core.NewMockResponder())
	}
	withRoles := func(roles ...string) *core.InteractionContext {
		i := core.NewCommandInteraction("user-1", "character")
		i.Member = &discordgo.Member{User: &discordgo.User{ID: "user-1"}, Roles: roles}
		return core.NewTestContext(context.Background(), i, core.NewMockResponder())
	}

	tests := []struct {
		name    string
		config  *middleware.AuthConfig
		ctx     *core.InteractionContext
		allowed bool
	}{
		{name: "guild required in DM", config: &middleware.AuthConfig{RequireGuild: true}, ctx: dm(), allowed: false},
		{name: "guild required in guild", config: &middleware.AuthConfig{RequireGuild: true}, ctx: withRoles(), allowed: true},
		{name: "role missing", config: &middleware.AuthConfig{AllowedRoles: []string{"gm"}}, ctx: withRoles("player"), allowed: false},
		{name: "role present", config: &middleware.AuthConfig{AllowedRoles: []string{"gm"}}, ctx: withRoles("player", "gm"), allowed: true},
		{name: "blacklisted", config: &middleware.AuthConfig{BlockedUsers: []string{"user-1"}}, ctx: withRoles(), allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := middleware.AuthorizationMiddleware(tt.config)(ok("done")).Handle(tt.ctx)
			require.NoError(t, err)
			if tt.allowed {
				assert.Equal(t, "done", result.Response.Content)
			} else {
				assert.Contains(t, result.Response.Content, "❌")
				assert.True(t, result.Response.Ephemeral)
			}
		})
	}
}

func TestLoggingMiddleware_PassesThrough(t *testing.T) {
	ctx, _ := commandContext("user-1")
	wantErr := errors.New("boom")

	handler := middleware.LoggingMiddleware(&middleware.LogConfig{LogRequests: true, LogErrors: true, LogResponses: true, Logger: &recordingLogger{}})(failing(wantErr))

	_, err := handler.Handle(ctx)
	assert.ErrorIs(t, err, wantErr)
}

type recordingLogger struct {
	requests, responses, errs int
}

func (l *recordingLogger) LogRequest(*core.InteractionContext) { l.requests++ }

func (l *recordingLogger) LogResponse(*core.InteractionContext, *core.HandlerResult, time.Duration) {
	l.responses++
}

func (l *recordingLogger) LogError(*core.InteractionContext, error) { l.errs++ }

func TestLoggingMiddleware_CallsLogger(t *testing.T) {
	ctx, _ := commandContext("user-1")
	logger := &recordingLogger{}

	handler := middleware.LoggingMiddleware(&middleware.LogConfig{
		LogRequests:  true,
		LogResponses: true,
		LogErrors:    true,
		Logger:       logger,
	})(ok("done"))

	_, err := handler.Handle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, logger.requests)
	assert.Equal(t, 1, logger.responses)
	assert.Equal(t, 0, logger.errs)
}
