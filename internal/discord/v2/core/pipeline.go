package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Pipeline manages handler registration and execution
type Pipeline struct {
	// Handlers registered in the pipeline
	handlers []Handler

	// Middleware to apply to all handlers
	middleware []Middleware

	// Error handler for uncaught errors
	errorHandler ErrorHandler

	// Builds the responder for each interaction
	newResponder ResponderFactory

	// Whether to stop on first handler that can handle
	stopOnFirst bool

	// Mutex for thread-safe handler registration
	mu sync.RWMutex
}

// Middleware is a function that wraps a handler
type Middleware func(Handler) Handler

// ErrorHandler handles errors that occur during pipeline execution
type ErrorHandler func(ctx *InteractionContext, err error) *HandlerResult

// ResponderFactory creates the responder for one interaction
type ResponderFactory func(s *discordgo.Session, i *discordgo.InteractionCreate) InteractionResponder

// NewPipeline creates a new handler pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{
		handlers:     make([]Handler, 0),
		middleware:   make([]Middleware, 0),
		errorHandler: defaultErrorHandler,
		newResponder: func(s *discordgo.Session, i *discordgo.InteractionCreate) InteractionResponder {
			return NewDiscordResponder(s, i)
		},
		stopOnFirst: true,
	}
}

// Register adds handlers to the pipeline
func (p *Pipeline) Register(handlers ...Handler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, h := range handlers {
		// Apply all middleware to the handler
		wrapped := h
		for i := len(p.middleware) - 1; i >= 0; i-- {
			wrapped = p.middleware[i](wrapped)
		}
		p.handlers = append(p.handlers, wrapped)
	}
}

// Use adds middleware to the pipeline. Only handlers registered afterwards
// are wrapped.
func (p *Pipeline) Use(middleware ...Middleware) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.middleware = append(p.middleware, middleware...)
}

// SetErrorHandler sets a custom error handler
func (p *Pipeline) SetErrorHandler(handler ErrorHandler) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.errorHandler = handler
}

// SetResponderFactory replaces how responders are built
func (p *Pipeline) SetResponderFactory(factory ResponderFactory) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.newResponder = factory
}

// SetStopOnFirst configures whether to stop after the first handler that can handle
func (p *Pipeline) SetStopOnFirst(stop bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopOnFirst = stop
}

// snapshot copies what Execute needs so handlers run without the lock
type snapshot struct {
	handlers     []Handler
	stopOnFirst  bool
	errorHandler ErrorHandler
	newResponder ResponderFactory
}

func (p *Pipeline) snapshot() snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return snapshot{
		handlers:     slices.Clone(p.handlers),
		stopOnFirst:  p.stopOnFirst,
		errorHandler: p.errorHandler,
		newResponder: p.newResponder,
	}
}

// Execute runs the pipeline for an interaction. A handler running a dialog
// blocks here until the dialog resolves, so callers run each interaction
// on its own goroutine.
func (p *Pipeline) Execute(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	snap := p.snapshot()

	interactionCtx := NewInteractionContext(ctx, s, i)
	responder := snap.newResponder(s, i)
	interactionCtx.Responder = responder
	interactionCtx.Context = ContextWithInteraction(ctx, interactionCtx)

	handled := false
	for _, handler := range snap.handlers {
		if !handler.CanHandle(interactionCtx) {
			continue
		}
		handled = true

		result, err := handler.Handle(interactionCtx)
		if err != nil {
			result = snap.errorHandler(interactionCtx, err)
		}

		if result != nil && result.Response != nil {
			if err := sendResponse(responder, result); err != nil {
				return fmt.Errorf("failed to send response: %w", err)
			}
		}

		if snap.stopOnFirst || (result != nil && result.StopPropagation) {
			break
		}
	}

	if handled || responder.HasResponded() {
		return nil
	}

	log.Printf("[Pipeline] No handler for command %q custom id %q",
		interactionCtx.GetCommandName(), interactionCtx.GetCustomID())
	return sendResponse(responder, &HandlerResult{
		Response: NewEphemeralResponse("I don't know how to handle that command."),
	})
}

// sendResponse picks how a result reaches Discord. A deferred reply keeps
// the visibility it was deferred with, so an ephemeral follow-up to it
// also removes the public original.
func sendResponse(responder InteractionResponder, result *HandlerResult) error {
	response := result.Response

	switch {
	case response.FollowUp && responder.HasResponded():
		if _, err := responder.FollowUp(response); err != nil {
			return err
		}
		if response.Ephemeral && responder.IsDeferred() {
			if err := responder.DeleteOriginal(); err != nil {
				log.Printf("[Pipeline] Failed to delete original response: %v", err)
			}
		}
		return nil
	case result.Deferred || responder.IsDeferred():
		return responder.Edit(response)
	case response.Update:
		return responder.Update(response)
	default:
		return responder.Respond(response)
	}
}

// Clear removes all handlers from the pipeline
func (p *Pipeline) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.handlers = make([]Handler, 0)
}

// HandlerCount returns the number of registered handlers
func (p *Pipeline) HandlerCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.handlers)
}

// defaultErrorHandler is the default error handler
func defaultErrorHandler(ctx *InteractionContext, err error) *HandlerResult {
	var handlerErr *HandlerError
	if errors.As(err, &handlerErr) && handlerErr.ShowToUser {
		return &HandlerResult{
			Response: NewEphemeralResponse(handlerErr.UserMessage),
		}
	}

	log.Printf("[Pipeline] Unhandled error: %v", err)
	return &HandlerResult{
		Response: NewEphemeralResponse("An error occurred while processing your request."),
	}
}
