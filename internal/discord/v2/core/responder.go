package core

import (
	"errors"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// InteractionResponder provides an abstraction over Discord's interaction response API
type InteractionResponder interface {
	// Defer sends a deferred response, optionally ephemeral
	Defer(ephemeral bool) error

	// DeferUpdate acknowledges a component interaction without changing the message
	DeferUpdate() error

	// Respond sends an immediate response
	Respond(response *Response) error

	// Update replaces the message a component or modal submit came from
	Update(response *Response) error

	// Modal opens a Discord modal as the initial response
	Modal(data *discordgo.InteractionResponseData) error

	// Edit updates a previous response (after defer or respond)
	Edit(response *Response) error

	// FollowUp sends an additional message after the initial response
	FollowUp(response *Response) (*discordgo.Message, error)

	// DeleteOriginal deletes the original response
	DeleteOriginal() error

	// Original fetches the original response message
	Original() (*discordgo.Message, error)

	HasResponded() bool
	IsDeferred() bool
}

// Responder errors
var (
	ErrAlreadyResponded = errors.New("interaction already responded to")
	ErrNotResponded     = errors.New("interaction has no response yet")
)

// responseState tracks what Discord has seen for an interaction
type responseState int

const (
	stateFresh responseState = iota
	stateDeferred
	stateResponded
)

// DiscordResponder implements InteractionResponder using Discord's API. A
// dialog holds its command's responder while other interactions are
// handled, so it is safe for concurrent use.
type DiscordResponder struct {
	session     *discordgo.Session
	interaction *discordgo.InteractionCreate

	mu    sync.Mutex
	state responseState
}

// NewDiscordResponder creates a new Discord responder
func NewDiscordResponder(s *discordgo.Session, i *discordgo.InteractionCreate) *DiscordResponder {
	return &DiscordResponder{
		session:     s,
		interaction: i,
	}
}

// respond sends the initial response and moves to next on success
func (r *DiscordResponder) respond(typ discordgo.InteractionResponseType, data *discordgo.InteractionResponseData, next responseState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != stateFresh {
		return ErrAlreadyResponded
	}

	err := r.session.InteractionRespond(r.interaction.Interaction, &discordgo.InteractionResponse{
		Type: typ,
		Data: data,
	})
	if err == nil {
		r.state = next
	}
	return err
}

// Defer shows "thinking..." until the response is edited in
func (r *DiscordResponder) Defer(ephemeral bool) error {
	return r.respond(discordgo.InteractionResponseDeferredChannelMessageWithSource,
		&discordgo.InteractionResponseData{Flags: flags(ephemeral)}, stateDeferred)
}

// DeferUpdate acknowledges a component interaction without changing its message
func (r *DiscordResponder) DeferUpdate() error {
	return r.respond(discordgo.InteractionResponseDeferredMessageUpdate, nil, stateResponded)
}

// Respond sends a new message, or edits the response when one was already sent
func (r *DiscordResponder) Respond(response *Response) error {
	if r.HasResponded() {
		return r.Edit(response)
	}
	return r.respond(discordgo.InteractionResponseChannelMessageWithSource, responseData(response), stateResponded)
}

// Update replaces the message a component or modal submit came from
func (r *DiscordResponder) Update(response *Response) error {
	if r.HasResponded() {
		return r.Edit(response)
	}
	return r.respond(discordgo.InteractionResponseUpdateMessage, responseData(response), stateResponded)
}

// Modal opens a Discord modal. It has to be the first response.
func (r *DiscordResponder) Modal(data *discordgo.InteractionResponseData) error {
	return r.respond(discordgo.InteractionResponseModal, data, stateResponded)
}

// Edit replaces the response. An empty, non-nil Components removes every
// component from the message.
func (r *DiscordResponder) Edit(response *Response) error {
	if !r.HasResponded() {
		return ErrNotResponded
	}

	_, err := r.session.InteractionResponseEdit(r.interaction.Interaction, &discordgo.WebhookEdit{
		Content:         &response.Content,
		Embeds:          &response.Embeds,
		Components:      &response.Components,
		Files:           response.Files,
		AllowedMentions: response.AllowedMentions,
	})
	return err
}

// FollowUp sends an additional message after the initial response
func (r *DiscordResponder) FollowUp(response *Response) (*discordgo.Message, error) {
	if !r.HasResponded() {
		return nil, ErrNotResponded
	}

	return r.session.FollowupMessageCreate(r.interaction.Interaction, true, &discordgo.WebhookParams{
		Content:         response.Content,
		Embeds:          response.Embeds,
		Components:      response.Components,
		Files:           response.Files,
		AllowedMentions: response.AllowedMentions,
		Flags:           flags(response.Ephemeral),
	})
}

// DeleteOriginal deletes the original response
func (r *DiscordResponder) DeleteOriginal() error {
	return r.session.InteractionResponseDelete(r.interaction.Interaction)
}

// Original fetches the original response, e.g. to learn its message ID
func (r *DiscordResponder) Original() (*discordgo.Message, error) {
	return r.session.InteractionResponse(r.interaction.Interaction)
}

func (r *DiscordResponder) HasResponded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state != stateFresh
}

func (r *DiscordResponder) IsDeferred() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == stateDeferred
}

func responseData(response *Response) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Content:         response.Content,
		Embeds:          response.Embeds,
		Components:      response.Components,
		Files:           response.Files,
		AllowedMentions: response.AllowedMentions,
		Flags:           flags(response.Ephemeral),
	}
}

func flags(ephemeral bool) discordgo.MessageFlags {
	if ephemeral {
		return discordgo.MessageFlagsEphemeral
	}
	return 0
}
