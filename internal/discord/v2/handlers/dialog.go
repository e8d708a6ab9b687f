package handlers

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/succ-discord/internal/dialogs"
	"github.com/KirkDiggler/succ-discord/internal/discord/v2/builders"
	"github.com/KirkDiggler/succ-discord/internal/discord/v2/core"
	apperr "github.com/KirkDiggler/succ-discord/internal/errors"
	"github.com/KirkDiggler/succ-discord/internal/uuid"
)

// DialogDomain is the custom id domain of dialog components
const DialogDomain = "dialog"

// Dialog component actions
const (
	DialogActionSelect = "select"
	DialogActionButton = "action"
	DialogActionSubmit = "submit"
)

// ExpiredDialogMessage answers clicks on a dialog nobody is waiting for
const ExpiredDialogMessage = "This dialog has expired."

// DialogHandler shows condition dialogs as Discord messages and collects
// the answers. It implements dialogs.Presenter and dialogs.Notifier.
type DialogHandler struct {
	ids             uuid.Generator
	customIDBuilder *core.CustomIDBuilder

	mu        sync.Mutex
	pending   map[string]*pendingDialog
	byMessage map[string]string
}

// DialogHandlerConfig holds the configuration
type DialogHandlerConfig struct {
	UUIDGenerator   uuid.Generator
	CustomIDBuilder *core.CustomIDBuilder
}

// NewDialogHandler creates a new dialog handler
func NewDialogHandler(cfg *DialogHandlerConfig) *DialogHandler {
	if cfg == nil {
		cfg = &DialogHandlerConfig{}
	}

	ids := cfg.UUIDGenerator
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}

	customIDBuilder := cfg.CustomIDBuilder
	if customIDBuilder == nil {
		customIDBuilder = core.NewCustomIDBuilder(DialogDomain)
	}

	return &DialogHandler{
		ids:             ids,
		customIDBuilder: customIDBuilder,
		pending:         make(map[string]*pendingDialog),
		byMessage:       make(map[string]string),
	}
}

// pendingDialog is a dialog waiting for its opener to answer
type pendingDialog struct {
	id        string
	ownerID   string
	messageID string
	modal     *dialogs.Modal

	// typed holds select fields with too many options for the message;
	// they are asked for in the Discord modal instead
	typed map[string]bool

	mu   sync.Mutex
	form dialogs.Form

	answer chan *dialogs.Choice
	once   sync.Once
}

// finish delivers the answer once; nil means dismissed
func (d *pendingDialog) finish(choice *dialogs.Choice) {
	d.once.Do(func() {
		d.answer <- choice
	})
}

func (d *pendingDialog) set(field, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.form[field] = value
}

func (d *pendingDialog) snapshot() dialogs.Form {
	d.mu.Lock()
	defer d.mu.Unlock()

	form := make(dialogs.Form, len(d.form))
	for k, v := range d.form {
		form[k] = v
	}
	return form
}

// Present posts the dialog on the interaction carried by ctx and blocks
// until the opener picks an action, the dialog message is deleted or ctx
// ends. The last two count as a dismissal.
func (h *DialogHandler) Present(ctx context.Context, modal *dialogs.Modal) (*dialogs.Choice, error) {
	ic, ok := core.InteractionFromContext(ctx)
	if !ok || ic.Responder == nil {
		return nil, apperr.Internalf("no interaction to show the %q dialog on", modal.Title)
	}

	d := &pendingDialog{
		id:      h.ids.New(),
		ownerID: ic.UserID,
		modal:   modal,
		form:    make(dialogs.Form, len(modal.Fields)),
		typed:   make(map[string]bool),
		answer:  make(chan *dialogs.Choice, 1),
	}
	for _, field := range modal.Fields {
		d.form[field.ID] = field.Default
	}

	components := h.dialogComponents(d)

	h.track(d)
	defer h.forget(d)

	response := &core.Response{
		Embeds:     []*discordgo.MessageEmbed{h.dialogEmbed(modal, "")},
		Components: components,
	}

	var err error
	if ic.Responder.HasResponded() {
		err = ic.Responder.Edit(response)
	} else {
		err = ic.Responder.Respond(response)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to show dialog: %w", err)
	}

	if msg, err := ic.Responder.Original(); err == nil && msg != nil {
		h.bindMessage(d, msg.ID)
	} else if err != nil {
		log.Printf("[DIALOG] Could not fetch message of dialog %s: %v", d.id, err)
	}

	log.Printf("[DIALOG] Waiting on %q dialog %s for user %s", modal.Title, d.id, d.ownerID)

	select {
	case choice := <-d.answer:
		return choice, nil
	case <-ctx.Done():
		log.Printf("[DIALOG] Dialog %s closed: %v", d.id, ctx.Err())
		closed := &core.Response{
			Embeds:     []*discordgo.MessageEmbed{h.dialogEmbed(modal, "")},
			Components: []discordgo.MessageComponent{},
		}
		if err := ic.Responder.Edit(closed); err != nil {
			log.Printf("[DIALOG] Failed to close dialog %s: %v", d.id, err)
		}
		return nil, nil
	}
}

// Warn tells the user something went wrong without raising an error. A
// deferred "thinking" reply is replaced by the warning.
func (h *DialogHandler) Warn(ctx context.Context, message string) error {
	ic, ok := core.InteractionFromContext(ctx)
	if !ok || ic.Responder == nil {
		log.Printf("[DIALOG] Warning with no interaction: %s", message)
		return nil
	}

	response := core.NewEphemeralResponse("⚠️ " + message)

	if !ic.Responder.HasResponded() {
		return ic.Responder.Respond(response)
	}

	if _, err := ic.Responder.FollowUp(response); err != nil {
		return fmt.Errorf("failed to send warning: %w", err)
	}
	if ic.Responder.IsDeferred() {
		if err := ic.Responder.DeleteOriginal(); err != nil {
			log.Printf("[DIALOG] Failed to remove deferred reply: %v", err)
		}
	}
	return nil
}

// HandleSelect stores a select menu value in the dialog form
func (h *DialogHandler) HandleSelect(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	d, customID, result, err := h.lookup(ctx)
	if d == nil {
		return result, err
	}

	field := customID.Arg(0)
	if _, ok := d.modal.Field(field); !ok {
		return nil, apperr.InvalidArgumentf("dialog has no field %q", field)
	}

	values := ctx.GetValues()
	if len(values) > 0 {
		d.set(field, values[0])
	}

	if err := ctx.Responder.DeferUpdate(); err != nil {
		return nil, fmt.Errorf("failed to acknowledge selection: %w", err)
	}
	return &core.HandlerResult{}, nil
}

// HandleAction answers a dialog button. Actions that read text or number
// fields open a Discord modal first.
func (h *DialogHandler) HandleAction(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	d, customID, result, err := h.lookup(ctx)
	if d == nil {
		return result, err
	}

	action, ok := d.modal.Action(customID.Arg(0))
	if !ok {
		return nil, apperr.InvalidArgumentf("dialog has no action %q", customID.Arg(0))
	}

	if inputs := h.textInputs(d, action); len(inputs) > 0 {
		form := d.snapshot()
		modal := builders.NewModal(
			h.customIDBuilder.Modal(DialogActionSubmit, d.id, action.ID),
			d.modal.Title,
		)
		for _, field := range inputs {
			modal.TextInput(field.ID, field.Label, form.Value(field.ID), false)
		}

		if err := ctx.Responder.Modal(modal.Build()); err != nil {
			return nil, fmt.Errorf("failed to open dialog inputs: %w", err)
		}
		return &core.HandlerResult{}, nil
	}

	return h.resolve(d, action, d.snapshot())
}

// HandleSubmit answers a dialog from the text inputs of its Discord modal
func (h *DialogHandler) HandleSubmit(ctx *core.InteractionContext) (*core.HandlerResult, error) {
	d, customID, result, err := h.lookup(ctx)
	if d == nil {
		return result, err
	}

	action, ok := d.modal.Action(customID.Arg(0))
	if !ok {
		return nil, apperr.InvalidArgumentf("dialog has no action %q", customID.Arg(0))
	}

	for id, value := range ctx.GetInputs() {
		field, known := d.modal.Field(id)
		if !known {
			continue
		}
		if d.typed[id] {
			option, ok := matchOption(field, value)
			if !ok {
				return nil, apperr.Validationf("%q is not one of the %s choices", strings.TrimSpace(value), field.Label)
			}
			value = option.Value
		}
		d.set(id, value)
	}

	return h.resolve(d, action, d.snapshot())
}

// HandleMessageDelete dismisses the dialog shown on a deleted message
func (h *DialogHandler) HandleMessageDelete(_ *discordgo.Session, m *discordgo.MessageDelete) {
	if m == nil || m.Message == nil {
		return
	}

	h.mu.Lock()
	id, ok := h.byMessage[m.ID]
	d := h.pending[id]
	h.mu.Unlock()

	if ok && d != nil {
		log.Printf("[DIALOG] Dialog %s message deleted", d.id)
		d.finish(nil)
	}
}

// Pending reports how many dialogs are waiting for an answer
func (h *DialogHandler) Pending() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.pending)
}

// lookup finds the dialog a component belongs to. A nil dialog comes back
// with the result or error to return.
func (h *DialogHandler) lookup(ctx *core.InteractionContext) (*pendingDialog, *core.CustomID, *core.HandlerResult, error) {
	customID, err := core.ParseCustomID(ctx.GetCustomID())
	if err != nil {
		return nil, nil, nil, apperr.InvalidArgumentf("malformed dialog id %q", ctx.GetCustomID())
	}

	h.mu.Lock()
	d := h.pending[customID.Target]
	h.mu.Unlock()

	if d == nil {
		return nil, nil, &core.HandlerResult{
			Response: core.NewEphemeralResponse(ExpiredDialogMessage),
		}, nil
	}

	if d.ownerID != ctx.UserID {
		return nil, nil, nil, apperr.PermissionDenied("Only the player who opened this dialog can answer it.")
	}

	return d, customID, nil, nil
}

// resolve hands the choice to the waiting dialog and closes the message
func (h *DialogHandler) resolve(d *pendingDialog, action dialogs.Action, form dialogs.Form) (*core.HandlerResult, error) {
	d.finish(&dialogs.Choice{Action: action.ID, Form: form})

	response := &core.Response{
		Embeds:     []*discordgo.MessageEmbed{h.dialogEmbed(d.modal, action.Label)},
		Components: []discordgo.MessageComponent{},
	}
	return &core.HandlerResult{Response: response.AsUpdate()}, nil
}

func (h *DialogHandler) track(d *pendingDialog) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.pending[d.id] = d
}

func (h *DialogHandler) bindMessage(d *pendingDialog, messageID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	d.messageID = messageID
	h.byMessage[messageID] = d.id
}

func (h *DialogHandler) forget(d *pendingDialog) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.pending, d.id)
	if d.messageID != "" {
		delete(h.byMessage, d.messageID)
	}
}

func (h *DialogHandler) dialogEmbed(modal *dialogs.Modal, chosen string) *discordgo.MessageEmbed {
	embed := builders.NewEmbed().
		Title(modal.Title).
		Description(modal.Content).
		Color(builders.ColorPrimary)
	if chosen != "" {
		embed.Footer("➜ " + chosen)
	}
	return embed.Build()
}

// dialogComponents draws select fields as menus and actions as buttons.
// A select field with more options than one menu holds is split over
// several menus; one that would not fit the message at all is typed in.
// Text and number fields are asked for when an action needs them.
func (h *DialogHandler) dialogComponents(d *pendingDialog) []discordgo.MessageComponent {
	components := builders.NewComponentBuilder(h.customIDBuilder)

	// the last row holds the buttons
	rowsLeft := builders.MaxRows - 1
	for _, field := range d.modal.Fields {
		if field.Kind != dialogs.FieldSelect {
			continue
		}

		pages := (len(field.Options) + builders.MaxSelectOptions - 1) / builders.MaxSelectOptions
		if pages > rowsLeft {
			log.Printf("[DIALOG] %d %s options do not fit dialog %s, asking for it as text", len(field.Options), field.ID, d.id)
			d.typed[field.ID] = true
			continue
		}
		rowsLeft -= max(pages, 1)

		if pages <= 1 {
			components.SelectMenu(field.Label, DialogActionSelect, d.id, selectOptions(field, field.Options), field.ID)
			continue
		}

		page := 0
		for chunk := range slices.Chunk(field.Options, builders.MaxSelectOptions) {
			placeholder := fmt.Sprintf("%s (%d/%d)", field.Label, page+1, pages)
			components.SelectMenu(placeholder, DialogActionSelect, d.id, selectOptions(field, chunk), field.ID, strconv.Itoa(page))
			page++
		}
	}

	for _, action := range d.modal.Actions {
		style := discordgo.PrimaryButton
		if action.ID == dialogs.ActionCancel {
			style = discordgo.SecondaryButton
		}
		components.Button(action.Label, style, DialogActionButton, d.id, action.ID)
	}

	return components.Build()
}

func selectOptions(field dialogs.Field, options []dialogs.Option) []builders.SelectOption {
	out := make([]builders.SelectOption, len(options))
	for i, opt := range options {
		out[i] = builders.SelectOption{
			Label:   opt.Label,
			Value:   opt.Value,
			Default: opt.Value == field.Default,
		}
	}
	return out
}

// matchOption finds the option a typed answer names, by value or label
func matchOption(field dialogs.Field, typed string) (dialogs.Option, bool) {
	typed = strings.TrimSpace(typed)
	for _, opt := range field.Options {
		if strings.EqualFold(opt.Value, typed) || strings.EqualFold(opt.Label, typed) {
			return opt, true
		}
	}
	return dialogs.Option{}, false
}

// textInputs lists the fields an action reads that have no menu
func (h *DialogHandler) textInputs(d *pendingDialog, action dialogs.Action) []dialogs.Field {
	var inputs []dialogs.Field
	for _, field := range d.modal.Fields {
		if (field.Kind == dialogs.FieldSelect && !d.typed[field.ID]) || !slices.Contains(action.Inputs, field.ID) {
			continue
		}
		inputs = append(inputs, field)
	}
	return inputs
}
