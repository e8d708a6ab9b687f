package middleware

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/KirkDiggler/succ-discord/internal/discord/v2/core"
)

// RateLimitConfig configures rate limiting behavior
type RateLimitConfig struct {
	// PerMinute is the sustained number of interactions allowed per key
	PerMinute int

	// Burst is how many interactions may arrive at once. Defaults to PerMinute.
	Burst int

	// KeyFunc extracts the rate limit key from context
	KeyFunc func(*core.InteractionContext) string

	// Message shown when rate limited
	Message string

	// Now is the clock used for limiter decisions
	Now func() time.Time
}

// defaultKeyFunc uses user ID as the rate limit key
func defaultKeyFunc(ctx *core.InteractionContext) string {
	return ctx.UserID
}

// RateLimitMiddleware applies a token bucket per key. A non-positive
// PerMinute disables limiting.
func RateLimitMiddleware(config *RateLimitConfig) core.Middleware {
	if config == nil || config.PerMinute <= 0 {
		return func(next core.Handler) core.Handler { return next }
	}

	if config.KeyFunc == nil {
		config.KeyFunc = defaultKeyFunc
	}
	if config.Message == "" {
		config.Message = "You're doing that too fast! Please wait a moment before trying again."
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	burst := config.Burst
	if burst <= 0 {
		burst = config.PerMinute
	}

	limiters := newLimiterSet(rate.Every(time.Minute/time.Duration(config.PerMinute)), burst)

	return func(next core.Handler) core.Handler {
		return core.Wrap(next, func(ctx *core.InteractionContext) (*core.HandlerResult, error) {
			key := config.KeyFunc(ctx)
			if key == "" {
				return next.Handle(ctx)
			}

			if !limiters.allow(key, config.Now()) {
				return &core.HandlerResult{
					Response: core.NewEphemeralResponse("⏱️ " + config.Message),
				}, nil
			}

			return next.Handle(ctx)
		})
	}
}

// limiterIdle is how long an unused limiter is kept
const limiterIdle = 10 * time.Minute

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterSet holds one limiter per key
type limiterSet struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	entries   map[string]*limiterEntry
	lastSweep time.Time
}

func newLimiterSet(limit rate.Limit, burst int) *limiterSet {
	return &limiterSet{
		limit:   limit,
		burst:   burst,
		entries: make(map[string]*limiterEntry),
	}
}

func (s *limiterSet) allow(key string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep(now)

	entry, ok := s.entries[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.entries[key] = entry
	}
	entry.lastSeen = now

	return entry.limiter.AllowN(now, 1)
}

// sweep drops idle limiters; caller holds mu
func (s *limiterSet) sweep(now time.Time) {
	if now.Sub(s.lastSweep) < limiterIdle {
		return
	}
	s.lastSweep = now

	for key, entry := range s.entries {
		if now.Sub(entry.lastSeen) > limiterIdle {
			delete(s.entries, key)
		}
	}
}
