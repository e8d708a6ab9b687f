package builders

import (
	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/succ-discord/internal/discord/v2/core"
)

const (
	// MaxRowComponents is Discord's limit of buttons per action row
	MaxRowComponents = 5

	// MaxRows is Discord's limit of action rows per message
	MaxRows = 5

	// MaxSelectOptions is Discord's limit of options per select menu
	MaxSelectOptions = 25

	MaxButtonLabel   = 80
	MaxOptionLabel   = 100
	MaxModalTitle    = 45
	MaxTextInputName = 45
)

// ComponentBuilder builds Discord message components
type ComponentBuilder struct {
	rows            []discordgo.MessageComponent
	currentRow      []discordgo.MessageComponent
	customIDBuilder *core.CustomIDBuilder
}

// NewComponentBuilder creates a new component builder
func NewComponentBuilder(customIDBuilder *core.CustomIDBuilder) *ComponentBuilder {
	if customIDBuilder == nil {
		customIDBuilder = core.NewCustomIDBuilder("default")
	}
	return &ComponentBuilder{
		rows:            make([]discordgo.MessageComponent, 0),
		currentRow:      make([]discordgo.MessageComponent, 0, MaxRowComponents),
		customIDBuilder: customIDBuilder,
	}
}

// Button adds a button to the current row
func (b *ComponentBuilder) Button(label string, style discordgo.ButtonStyle, action, target string, args ...string) *ComponentBuilder {
	b.addComponent(discordgo.Button{
		Label:    Truncate(label, MaxButtonLabel),
		Style:    style,
		CustomID: b.customIDBuilder.Button(action, target, args...),
	})
	return b
}

// EmojiButton adds a button with emoji
func (b *ComponentBuilder) EmojiButton(label, emoji string, style discordgo.ButtonStyle, action, target string, args ...string) *ComponentBuilder {
	b.addComponent(discordgo.Button{
		Label:    Truncate(label, MaxButtonLabel),
		Style:    style,
		CustomID: b.customIDBuilder.Button(action, target, args...),
		Emoji: &discordgo.ComponentEmoji{
			Name: emoji,
		},
	})
	return b
}

// SelectMenu adds a single-choice select menu on its own row. Options past
// the Discord limit are dropped.
func (b *ComponentBuilder) SelectMenu(placeholder, action, target string, options []SelectOption, args ...string) *ComponentBuilder {
	if len(options) > MaxSelectOptions {
		options = options[:MaxSelectOptions]
	}

	discordOptions := make([]discordgo.SelectMenuOption, len(options))
	for i, opt := range options {
		discordOptions[i] = discordgo.SelectMenuOption{
			Label:       Truncate(opt.Label, MaxOptionLabel),
			Value:       opt.Value,
			Description: Truncate(opt.Description, MaxOptionLabel),
			Default:     opt.Default,
		}
		if opt.Emoji != "" {
			discordOptions[i].Emoji = &discordgo.ComponentEmoji{
				Name: opt.Emoji,
			}
		}
	}

	one := 1
	selectMenu := discordgo.SelectMenu{
		MenuType:    discordgo.StringSelectMenu,
		CustomID:    b.customIDBuilder.Button(action, target, args...),
		Placeholder: placeholder,
		Options:     discordOptions,
		MinValues:   &one,
		MaxValues:   1,
	}

	// A select menu fills a whole row
	b.NewRow()
	b.currentRow = append(b.currentRow, selectMenu)
	b.NewRow()
	return b
}

// NewRow starts a new action row
func (b *ComponentBuilder) NewRow() *ComponentBuilder {
	if len(b.currentRow) > 0 {
		b.rows = append(b.rows, discordgo.ActionsRow{
			Components: b.currentRow,
		})
		b.currentRow = make([]discordgo.MessageComponent, 0, MaxRowComponents)
	}
	return b
}

// Build returns the built components
func (b *ComponentBuilder) Build() []discordgo.MessageComponent {
	b.NewRow()
	return b.rows
}

// addComponent adds a component to the current row
func (b *ComponentBuilder) addComponent(component discordgo.MessageComponent) {
	if len(b.currentRow) >= MaxRowComponents {
		b.NewRow()
	}

	b.currentRow = append(b.currentRow, component)
}

// SelectOption represents an option in a select menu
type SelectOption struct {
	Label       string
	Value       string
	Description string
	Emoji       string
	Default     bool
}

// ModalBuilder builds a Discord modal made of text inputs
type ModalBuilder struct {
	data *discordgo.InteractionResponseData
}

// NewModal creates a modal builder. Long titles are cut to fit.
func NewModal(customID, title string) *ModalBuilder {
	return &ModalBuilder{
		data: &discordgo.InteractionResponseData{
			CustomID:   customID,
			Title:      Truncate(title, MaxModalTitle),
			Components: make([]discordgo.MessageComponent, 0, MaxRows),
		},
	}
}

// TextInput adds a single-line text input. Inputs past the Discord row
// limit are ignored.
func (b *ModalBuilder) TextInput(customID, label, value string, required bool) *ModalBuilder {
	if len(b.data.Components) >= MaxRows {
		return b
	}

	b.data.Components = append(b.data.Components, discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID: customID,
				Label:    Truncate(label, MaxTextInputName),
				Style:    discordgo.TextInputShort,
				Value:    value,
				Required: required,
			},
		},
	})
	return b
}

// Build returns the modal response data
func (b *ModalBuilder) Build() *discordgo.InteractionResponseData {
	return b.data
}
