package core

import (
	"github.com/bwmarrin/discordgo"
)

// Handler defines the interface for all interaction handlers
type Handler interface {
	// CanHandle determines if this handler should process the interaction
	CanHandle(ctx *InteractionContext) bool

	// Handle processes the interaction and returns a result
	Handle(ctx *InteractionContext) (*HandlerResult, error)
}

// HandlerFunc allows functions to implement the Handler interface
type HandlerFunc func(ctx *InteractionContext) (*HandlerResult, error)

// CanHandle for HandlerFunc always returns true
func (f HandlerFunc) CanHandle(ctx *InteractionContext) bool {
	return true
}

// Handle calls the function
func (f HandlerFunc) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	return f(ctx)
}

// Wrap builds a middleware handler around next. Routing still asks next
// whether it can handle the interaction.
func Wrap(next Handler, fn HandlerFunc) Handler {
	return &wrappedHandler{next: next, fn: fn}
}

type wrappedHandler struct {
	next Handler
	fn   HandlerFunc
}

func (w *wrappedHandler) CanHandle(ctx *InteractionContext) bool {
	return w.next.CanHandle(ctx)
}

func (w *wrappedHandler) Handle(ctx *InteractionContext) (*HandlerResult, error) {
	return w.fn(ctx)
}

// HandlerResult contains the response and metadata from a handler. A nil
// Response means the handler already answered through the responder.
type HandlerResult struct {
	// Response to send to Discord
	Response *Response

	// Whether the response was already deferred
	Deferred bool

	// Whether to stop processing further handlers
	StopPropagation bool
}

// Response represents a Discord-agnostic response
type Response struct {
	// Text content of the response
	Content string

	// Discord embeds
	Embeds []*discordgo.MessageEmbed

	// Interactive components (buttons, select menus, etc)
	Components []discordgo.MessageComponent

	// Whether this response should be ephemeral (only visible to the user)
	Ephemeral bool

	// File attachments
	Files []*discordgo.File

	// Whether to update the message a component was clicked on
	Update bool

	// Whether to post as a new follow-up message instead of editing the
	// original response
	FollowUp bool

	// Allowed mentions configuration
	AllowedMentions *discordgo.MessageAllowedMentions
}

// NewResponse creates a new response with the given content
func NewResponse(content string) *Response {
	return &Response{
		Content: content,
	}
}

// NewEphemeralResponse creates a new ephemeral response
func NewEphemeralResponse(content string) *Response {
	return &Response{
		Content:   content,
		Ephemeral: true,
	}
}

// NewEmbedResponse creates a response with an embed
func NewEmbedResponse(embed *discordgo.MessageEmbed) *Response {
	return &Response{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
}

// WithComponents adds components to the response
func (r *Response) WithComponents(components ...discordgo.MessageComponent) *Response {
	r.Components = components
	return r
}

// WithEmbeds adds embeds to the response
func (r *Response) WithEmbeds(embeds ...*discordgo.MessageEmbed) *Response {
	r.Embeds = embeds
	return r
}

// AsEphemeral sets the response to be ephemeral
func (r *Response) AsEphemeral() *Response {
	r.Ephemeral = true
	return r
}

// AsUpdate sets the response to update the original message
func (r *Response) AsUpdate() *Response {
	r.Update = true
	return r
}

// AsFollowUp sends the response as a follow-up message
func (r *Response) AsFollowUp() *Response {
	r.FollowUp = true
	return r
}
