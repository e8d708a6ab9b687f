package builders

import (
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// Discord embed limits, counted in characters
const (
	MaxEmbedTitle       = 256
	MaxEmbedDescription = 4096
	MaxEmbedFields      = 25
	MaxFieldName        = 256
	MaxFieldValue       = 1024
	MaxFooterText       = 2048
)

// Embed colors
const (
	ColorSuccess = 0x00ff00
	ColorError   = 0xff0000
	ColorWarning = 0xffaa00
	ColorInfo    = 0x0099ff
	ColorPrimary = 0x7289da // Discord Blurple
)

// EmbedBuilder builds Discord embeds, cutting text that would go over
// Discord's limits instead of letting the API reject the message
type EmbedBuilder struct {
	embed *discordgo.MessageEmbed
}

// NewEmbed creates a new embed builder
func NewEmbed() *EmbedBuilder {
	return &EmbedBuilder{
		embed: &discordgo.MessageEmbed{
			Type:   discordgo.EmbedTypeRich,
			Fields: make([]*discordgo.MessageEmbedField, 0),
		},
	}
}

func (b *EmbedBuilder) Title(title string) *EmbedBuilder {
	b.embed.Title = Truncate(title, MaxEmbedTitle)
	return b
}

func (b *EmbedBuilder) Description(description string) *EmbedBuilder {
	b.embed.Description = Truncate(description, MaxEmbedDescription)
	return b
}

func (b *EmbedBuilder) Color(color int) *EmbedBuilder {
	b.embed.Color = color
	return b
}

func (b *EmbedBuilder) Timestamp(timestamp time.Time) *EmbedBuilder {
	b.embed.Timestamp = timestamp.Format(time.RFC3339)
	return b
}

func (b *EmbedBuilder) Footer(text string) *EmbedBuilder {
	b.embed.Footer = &discordgo.MessageEmbedFooter{Text: Truncate(text, MaxFooterText)}
	return b
}

// Field adds a field. Fields past the 25th are dropped.
func (b *EmbedBuilder) Field(name, value string, inline bool) *EmbedBuilder {
	if len(b.embed.Fields) >= MaxEmbedFields {
		return b
	}
	b.embed.Fields = append(b.embed.Fields, &discordgo.MessageEmbedField{
		Name:   Truncate(name, MaxFieldName),
		Value:  Truncate(value, MaxFieldValue),
		Inline: inline,
	})
	return b
}

// List adds a field with one line per entry, or nothing when lines is empty
func (b *EmbedBuilder) List(name string, lines []string, inline bool) *EmbedBuilder {
	if len(lines) == 0 {
		return b
	}
	return b.Field(name, strings.Join(lines, "\n"), inline)
}

// Build returns the constructed embed
func (b *EmbedBuilder) Build() *discordgo.MessageEmbed {
	return b.embed
}

func styled(icon, title, description string, color int) *EmbedBuilder {
	return NewEmbed().
		Title(icon + " " + title).
		Description(description).
		Color(color).
		Timestamp(time.Now())
}

// SuccessEmbed creates a pre-styled success embed
func SuccessEmbed(title, description string) *EmbedBuilder {
	return styled("✅", title, description, ColorSuccess)
}

// ErrorEmbed creates a pre-styled error embed
func ErrorEmbed(title, description string) *EmbedBuilder {
	return styled("❌", title, description, ColorError)
}

// WarningEmbed creates a pre-styled warning embed
func WarningEmbed(title, description string) *EmbedBuilder {
	return styled("⚠️", title, description, ColorWarning)
}

// InfoEmbed creates a pre-styled info embed
func InfoEmbed(title, description string) *EmbedBuilder {
	return styled("ℹ️", title, description, ColorInfo)
}

// Truncate shortens s to max characters, ending with an ellipsis when cut
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
