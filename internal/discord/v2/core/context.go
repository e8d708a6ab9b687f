package core

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

type contextKey int

const interactionKey contextKey = iota

// ContextWithInteraction stores ic in ctx so code that only receives a
// context.Context can still answer the interaction
func ContextWithInteraction(ctx context.Context, ic *InteractionContext) context.Context {
	return context.WithValue(ctx, interactionKey, ic)
}

// InteractionFromContext returns the interaction stored by the pipeline
func InteractionFromContext(ctx context.Context) (*InteractionContext, bool) {
	ic, ok := ctx.Value(interactionKey).(*InteractionContext)
	return ic, ok && ic != nil
}

// InteractionContext wraps a Discord interaction with useful helpers and context
type InteractionContext struct {
	// Core Discord objects
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate

	// Responder answers this interaction
	Responder InteractionResponder

	// Extracted common fields for convenience
	UserID    string
	UserName  string
	GuildID   string
	ChannelID string
	Member    *discordgo.Member

	// Context for cancellation and values
	Context context.Context

	// Parsed interaction data
	params map[string]interface{}
	values []string
	inputs map[string]string
}

// NewInteractionContext creates a new InteractionContext from a Discord interaction
func NewInteractionContext(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) *InteractionContext {
	ic := &InteractionContext{
		Session:     s,
		Interaction: i,
		Context:     ctx,
		params:      make(map[string]interface{}),
		inputs:      make(map[string]string),
	}

	// Extract common fields
	if i.Member != nil && i.Member.User != nil {
		ic.Member = i.Member
		ic.UserID = i.Member.User.ID
		ic.UserName = i.Member.User.Username
	} else if i.User != nil {
		ic.UserID = i.User.ID
		ic.UserName = i.User.Username
	}

	ic.GuildID = i.GuildID
	ic.ChannelID = i.ChannelID

	// Parse parameters based on interaction type
	ic.parseParams()

	return ic
}

// parseParams extracts parameters from different interaction types
func (ic *InteractionContext) parseParams() {
	switch ic.Interaction.Type {
	case discordgo.InteractionApplicationCommand:
		ic.parseOptions(ic.Interaction.ApplicationCommandData().Options)
	case discordgo.InteractionMessageComponent:
		ic.values = ic.Interaction.MessageComponentData().Values
	case discordgo.InteractionModalSubmit:
		ic.parseModalParams()
	}
}

// parseOptions recursively extracts command options
func (ic *InteractionContext) parseOptions(options []*discordgo.ApplicationCommandInteractionDataOption) {
	for _, opt := range options {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionSubCommand, discordgo.ApplicationCommandOptionSubCommandGroup:
			ic.params["subcommand"] = opt.Name
			ic.parseOptions(opt.Options)
		default:
			ic.params[opt.Name] = opt.Value
		}
	}
}

// parseModalParams extracts modal submit text inputs
func (ic *InteractionContext) parseModalParams() {
	for _, comp := range ic.Interaction.ModalSubmitData().Components {
		row, ok := comp.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, inner := range row.Components {
			if input, ok := inner.(*discordgo.TextInput); ok {
				ic.inputs[input.CustomID] = input.Value
			}
		}
	}
}

// GetParam retrieves a parameter by name
func (ic *InteractionContext) GetParam(name string) interface{} {
	return ic.params[name]
}

// GetStringParam retrieves a string parameter or returns empty string
func (ic *InteractionContext) GetStringParam(name string) string {
	if val, ok := ic.params[name]; ok {
		if strVal, ok := val.(string); ok {
			return strVal
		}
	}
	return ""
}

// GetIntParam retrieves an int parameter or returns 0
func (ic *InteractionContext) GetIntParam(name string) int {
	if val, ok := ic.params[name]; ok {
		switch v := val.(type) {
		case float64:
			return int(v)
		case int:
			return v
		case int64:
			return int(v)
		}
	}
	return 0
}

// GetValues returns the values picked in a select menu
func (ic *InteractionContext) GetValues() []string {
	return ic.values
}

// GetInputs returns the text inputs of a modal submit keyed by custom ID
func (ic *InteractionContext) GetInputs() map[string]string {
	return ic.inputs
}

// IsCommand checks if this is a slash command interaction
func (ic *InteractionContext) IsCommand() bool {
	return ic.Interaction.Type == discordgo.InteractionApplicationCommand
}

// IsComponent checks if this is a message component interaction
func (ic *InteractionContext) IsComponent() bool {
	return ic.Interaction.Type == discordgo.InteractionMessageComponent
}

// IsModal checks if this is a modal submit interaction
func (ic *InteractionContext) IsModal() bool {
	return ic.Interaction.Type == discordgo.InteractionModalSubmit
}

// GetCustomID returns the custom ID for component and modal interactions
func (ic *InteractionContext) GetCustomID() string {
	if ic.IsComponent() {
		return ic.Interaction.MessageComponentData().CustomID
	}
	if ic.IsModal() {
		return ic.Interaction.ModalSubmitData().CustomID
	}
	return ""
}

// GetMessageID returns the ID of the message a component was used on
func (ic *InteractionContext) GetMessageID() string {
	if ic.Interaction.Message != nil {
		return ic.Interaction.Message.ID
	}
	return ""
}

// GetCommandName returns the command name for slash commands
func (ic *InteractionContext) GetCommandName() string {
	if ic.IsCommand() {
		return ic.Interaction.ApplicationCommandData().Name
	}
	return ""
}

// GetSubcommand returns the subcommand name if present
func (ic *InteractionContext) GetSubcommand() string {
	return ic.GetStringParam("subcommand")
}
