package core

import (
	"strings"
)

// Router groups the handlers of one domain. For slash commands the domain
// is the command name; for buttons, menus and modals it is the first part of
// the custom ID.
type Router struct {
	domain     string
	routes     map[string]Handler
	middleware []Middleware
	customIDs  *CustomIDBuilder
	pipeline   *Pipeline
}

// NewRouter creates a router that registers itself with pipeline
func NewRouter(domain string, pipeline *Pipeline) *Router {
	return &Router{
		domain:    domain,
		routes:    make(map[string]Handler),
		customIDs: NewCustomIDBuilder(domain),
		pipeline:  pipeline,
	}
}

// Use adds middleware to the routes registered after it
func (r *Router) Use(middleware ...Middleware) *Router {
	r.middleware = append(r.middleware, middleware...)
	return r
}

// Handle registers a handler for a route pattern such as
// "cmd:condition:smite", "component:select" or "modal:*"
func (r *Router) Handle(pattern string, handler Handler) *Router {
	for i := len(r.middleware) - 1; i >= 0; i-- {
		handler = r.middleware[i](handler)
	}
	r.routes[pattern] = handler
	return r
}

// Command handles the domain's slash command when it has no subcommand
func (r *Router) Command(fn HandlerFunc) *Router {
	return r.Handle(commandPattern(r.domain, ""), fn)
}

// Subcommand handles /<domain> <sub>
func (r *Router) Subcommand(sub string, fn HandlerFunc) *Router {
	return r.Handle(commandPattern(r.domain, sub), fn)
}

// Component handles buttons and select menus with custom ID <domain>:<action>:...
func (r *Router) Component(action string, fn HandlerFunc) *Router {
	return r.Handle("component:"+action, fn)
}

// Modal handles modal submits with custom ID <domain>:<action>:...
func (r *Router) Modal(action string, fn HandlerFunc) *Router {
	return r.Handle("modal:"+action, fn)
}

// Build creates a single handler from all registered routes
func (r *Router) Build() Handler {
	return &routerHandler{domain: r.domain, routes: r.routes}
}

// Register adds the router to its pipeline
func (r *Router) Register() {
	if r.pipeline != nil {
		r.pipeline.Register(r.Build())
	}
}

// CustomIDs builds custom IDs that route back to this router
func (r *Router) CustomIDs() *CustomIDBuilder {
	return r.customIDs
}

func commandPattern(command, sub string) string {
	if sub == "" {
		return "cmd:" + command
	}
	return "cmd:" + command + ":" + sub
}

type routerHandler struct {
	domain string
	routes map[string]Handler
}

func (h *routerHandler) CanHandle(ctx *InteractionContext) bool {
	return h.match(ctx) != nil
}

func (h *routerHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	handler := h.match(ctx)
	if handler == nil {
		return nil, NewNotFoundError("handler")
	}
	return handler.Handle(ctx)
}

// match finds the exact pattern, then the longest wildcard pattern
func (h *routerHandler) match(ctx *InteractionContext) Handler {
	pattern := h.pattern(ctx)
	if pattern == "" {
		return nil
	}

	if handler, ok := h.routes[pattern]; ok {
		return handler
	}

	parts := strings.Split(pattern, ":")
	for i := len(parts); i > 0; i-- {
		if handler, ok := h.routes[strings.Join(parts[:i], ":")+":*"]; ok {
			return handler
		}
	}
	return nil
}

// pattern is the route an interaction asks for, or "" when it belongs to
// another domain
func (h *routerHandler) pattern(ctx *InteractionContext) string {
	switch {
	case ctx.IsCommand():
		if ctx.GetCommandName() != h.domain {
			return ""
		}
		return commandPattern(h.domain, ctx.GetSubcommand())

	case ctx.IsComponent(), ctx.IsModal():
		customID, err := ParseCustomID(ctx.GetCustomID())
		if err != nil || customID.Domain != h.domain {
			return ""
		}
		kind := "component:"
		if ctx.IsModal() {
			kind = "modal:"
		}
		return kind + customID.Action
	}
	return ""
}
