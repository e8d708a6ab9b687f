package middleware

import (
	"log"
	"slices"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/succ-discord/internal/discord/v2/core"
)

// AuthConfig decides who may use the bot
type AuthConfig struct {
	// RequireGuild rejects direct messages. Characters belong to a server,
	// so nothing works outside one.
	RequireGuild bool

	// AllowedRoles admits only members holding one of these role IDs.
	// Empty admits everyone.
	AllowedRoles []string

	// BlockedUsers are user IDs that are always refused
	BlockedUsers []string
}

// AuthorizationMiddleware answers refused interactions with an ephemeral
// notice instead of running the handler
func AuthorizationMiddleware(config *AuthConfig) core.Middleware {
	if config == nil {
		config = &AuthConfig{}
	}

	return func(next core.Handler) core.Handler {
		return core.Wrap(next, func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			if reason := config.refuse(ctx); reason != "" {
				log.Printf("[Auth] Refused user %s in guild %q: %s", ctx.UserID, ctx.GuildID, reason)
				return &core.HandlerResult{
					Response: core.NewEphemeralResponse("❌ " + reason),
				}, nil
			}
			return next.Handle(ctx)
		})
	}
}

// refuse returns why ctx may not proceed, or "" when it may
func (c *AuthConfig) refuse(ctx *core.InteractionContext) string {
	switch {
	case slices.Contains(c.BlockedUsers, ctx.UserID):
		return "You are not authorized to use this command."
	case c.RequireGuild && ctx.GuildID == "":
		return "This command can only be used in a server."
	case len(c.AllowedRoles) > 0 && !c.hasAllowedRole(ctx.Member):
		return "You don't have the required role to use this command."
	}
	return ""
}

func (c *AuthConfig) hasAllowedRole(member *discordgo.Member) bool {
	return member != nil && slices.ContainsFunc(member.Roles, func(role string) bool {
		return slices.Contains(c.AllowedRoles, role)
	})
}
