package core

import (
	"context"
	"sync"

	"github.com/bwmarrin/discordgo"
)

// NewCommandInteraction builds a slash command interaction for tests
func NewCommandInteraction(userID, name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:      "interaction-" + name,
			Type:    discordgo.InteractionApplicationCommand,
			GuildID: "test-guild",
			Member:  &discordgo.Member{User: &discordgo.User{ID: userID, Username: userID}},
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
		},
	}
}

// SubcommandOption wraps options into a subcommand option
func SubcommandOption(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    name,
		Type:    discordgo.ApplicationCommandOptionSubCommand,
		Options: options,
	}
}

// StringOption builds a string command option
func StringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

// IntegerOption builds an integer command option. Discord delivers numbers
// as float64.
func IntegerOption(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

// NewComponentInteraction builds a button or select menu interaction for tests
func NewComponentInteraction(userID, messageID, customID string, values ...string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:      "interaction-" + customID,
			Type:    discordgo.InteractionMessageComponent,
			GuildID: "test-guild",
			Member:  &discordgo.Member{User: &discordgo.User{ID: userID, Username: userID}},
			Message: &discordgo.Message{ID: messageID},
			Data: discordgo.MessageComponentInteractionData{
				CustomID: customID,
				Values:   values,
			},
		},
	}
}

// NewModalInteraction builds a modal submit interaction for tests
func NewModalInteraction(userID, messageID, customID string, inputs map[string]string) *discordgo.InteractionCreate {
	rows := make([]discordgo.MessageComponent, 0, len(inputs))
	for id, value := range inputs {
		rows = append(rows, &discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: id, Value: value},
			},
		})
	}

	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:      "interaction-" + customID,
			Type:    discordgo.InteractionModalSubmit,
			GuildID: "test-guild",
			Member:  &discordgo.Member{User: &discordgo.User{ID: userID, Username: userID}},
			Message: &discordgo.Message{ID: messageID},
			Data: discordgo.ModalSubmitInteractionData{
				CustomID:   customID,
				Components: rows,
			},
		},
	}
}

// NewTestContext builds an InteractionContext answered by responder
func NewTestContext(ctx context.Context, i *discordgo.InteractionCreate, responder InteractionResponder) *InteractionContext {
	ic := NewInteractionContext(ctx, nil, i)
	ic.Responder = responder
	ic.Context = ContextWithInteraction(ctx, ic)
	return ic
}

// MockResponder is a test implementation of InteractionResponder. It is
// safe for concurrent use.
type MockResponder struct {
	mu sync.Mutex

	DeferCalls   []bool // Track ephemeral flags
	DeferUpdates int
	Responses    []*Response
	Updates      []*Response
	Modals       []*discordgo.InteractionResponseData
	Edits        []*Response
	FollowUps    []*Response
	Deleted      bool

	DeferError    error
	RespondError  error
	EditError     error
	FollowUpError error

	// OriginalID is the message ID Original reports
	OriginalID string

	// OnEdit runs after every Edit
	OnEdit func(*Response)

	Deferred  bool
	Responded bool
}

// NewMockResponder creates a new mock responder
func NewMockResponder() *MockResponder {
	return &MockResponder{OriginalID: "test-message-123"}
}

func (m *MockResponder) Defer(ephemeral bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeferCalls = append(m.DeferCalls, ephemeral)
	m.Deferred = true
	m.Responded = true
	return m.DeferError
}

func (m *MockResponder) DeferUpdate() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeferUpdates++
	m.Responded = true
	return nil
}

func (m *MockResponder) Respond(response *Response) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses = append(m.Responses, response)
	m.Responded = true
	return m.RespondError
}

func (m *MockResponder) Update(response *Response) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Updates = append(m.Updates, response)
	m.Responded = true
	return nil
}

func (m *MockResponder) Modal(data *discordgo.InteractionResponseData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Modals = append(m.Modals, data)
	m.Responded = true
	return nil
}

func (m *MockResponder) Edit(response *Response) error {
	m.mu.Lock()
	m.Edits = append(m.Edits, response)
	onEdit := m.OnEdit
	err := m.EditError
	m.mu.Unlock()

	if onEdit != nil {
		onEdit(response)
	}
	return err
}

func (m *MockResponder) FollowUp(response *Response) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FollowUps = append(m.FollowUps, response)
	if m.FollowUpError != nil {
		return nil, m.FollowUpError
	}
	return &discordgo.Message{ID: "test-followup-123"}, nil
}

func (m *MockResponder) DeleteOriginal() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deleted = true
	return nil
}

func (m *MockResponder) Original() (*discordgo.Message, error) {
	return &discordgo.Message{ID: m.OriginalID}, nil
}

func (m *MockResponder) HasResponded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Responded
}

func (m *MockResponder) IsDeferred() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Deferred
}

// LastResponse returns the last response sent
func (m *MockResponder) LastResponse() *Response {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Responses) > 0 {
		return m.Responses[len(m.Responses)-1]
	}
	if len(m.Edits) > 0 {
		return m.Edits[len(m.Edits)-1]
	}
	return nil
}

// EditCount returns how many edits were made
func (m *MockResponder) EditCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Edits)
}
