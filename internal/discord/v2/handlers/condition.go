package handlers

//go:generate mockgen -destination=mock/mock_condition_dialogs.go -package=mockhandlers -source=condition.go

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/KirkDiggler/succ-discord/internal/dialogs"
	"github.com/KirkDiggler/succ-discord/internal/discord/v2/core"
	"github.com/KirkDiggler/succ-discord/internal/domain/character"
	"github.com/KirkDiggler/succ-discord/internal/domain/conditions"
	characterService "github.com/KirkDiggler/succ-discord/internal/services/character"
)

// CharacterParam is the command option naming the character to act on
const CharacterParam = "character"

// ConditionDialogs asks the player for the options of a condition
type ConditionDialogs interface {
	RequestBoostLowerTrait(ctx context.Context, actor *character.Character, typ dialogs.BoostLowerType) (*dialogs.BoostLowerResult, error)
	RequestSmite(ctx context.Context, actor *character.Character) (*dialogs.SmiteResult, error)
	RequestProtection(ctx context.Context) (*dialogs.ProtectionResult, error)
	RequestDeflection(ctx context.Context) (*dialogs.DeflectionResult, error)
	RequestNumb(ctx context.Context) (*dialogs.NumbResult, error)
}

// ConditionHandler runs a condition dialog for one of the user's
// characters and records the outcome on it
type ConditionHandler struct {
	dialogs    ConditionDialogs
	service    characterService.Service
	conditions dialogs.ConditionRegistry
	now        func() time.Time
}

// ConditionHandlerConfig holds the configuration
type ConditionHandlerConfig struct {
	Dialogs    ConditionDialogs
	Service    characterService.Service
	Conditions dialogs.ConditionRegistry
	Now        func() time.Time
}

// NewConditionHandler creates a new condition handler
func NewConditionHandler(cfg *ConditionHandlerConfig) (*ConditionHandler, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Dialogs == nil {
		return nil, fmt.Errorf("dialogs are required")
	}
	if cfg.Service == nil {
		return nil, fmt.Errorf("service is required")
	}
	if cfg.Conditions == nil {
		return nil, fmt.Errorf("conditions are required")
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &ConditionHandler{
		dialogs:    cfg.Dialogs,
		service:    cfg.Service,
		conditions: cfg.Conditions,
		now:        now,
	}, nil
}

// HandleBoost handles /condition boost
func (h *ConditionHandler) HandleBoost(ic *core.InteractionContext) (*core.HandlerResult, error) {
	return h.boostLower(ic, dialogs.Boost, conditions.Boost)
}

// HandleLower handles /condition lower
func (h *ConditionHandler) HandleLower(ic *core.InteractionContext) (*core.HandlerResult, error) {
	return h.boostLower(ic, dialogs.Lower, conditions.Lower)
}

func (h *ConditionHandler) boostLower(ic *core.InteractionContext, typ dialogs.BoostLowerType, id conditions.ID) (*core.HandlerResult, error) {
	char, err := h.start(ic)
	if err != nil {
		return nil, err
	}

	result, err := h.dialogs.RequestBoostLowerTrait(ic.Context, char, typ)
	if err != nil || result == nil {
		return &core.HandlerResult{}, err
	}

	return h.apply(ic, char, id, map[string]string{
		"trait":  result.Trait,
		"degree": string(result.Degree),
	}, fmt.Sprintf("%s (%s)", result.Trait, result.Degree))
}

// HandleSmite handles /condition smite
func (h *ConditionHandler) HandleSmite(ic *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := h.start(ic)
	if err != nil {
		return nil, err
	}

	result, err := h.dialogs.RequestSmite(ic.Context, char)
	if err != nil || result == nil {
		return &core.HandlerResult{}, err
	}

	return h.apply(ic, char, conditions.Smite, map[string]string{
		"weapon": result.Weapon,
		"bonus":  result.Bonus,
	}, fmt.Sprintf("%s %s damage", result.Weapon, result.Bonus))
}

// HandleProtection handles /condition protection
func (h *ConditionHandler) HandleProtection(ic *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := h.start(ic)
	if err != nil {
		return nil, err
	}

	result, err := h.dialogs.RequestProtection(ic.Context)
	if err != nil || result == nil {
		return &core.HandlerResult{}, err
	}

	return h.apply(ic, char, conditions.Protection, map[string]string{
		"bonus": strconv.Itoa(result.Bonus),
		"type":  string(result.Type),
	}, fmt.Sprintf("%+d %s", result.Bonus, result.Type))
}

// HandleDeflection handles /condition deflection
func (h *ConditionHandler) HandleDeflection(ic *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := h.start(ic)
	if err != nil {
		return nil, err
	}

	result, err := h.dialogs.RequestDeflection(ic.Context)
	if err != nil || result == nil {
		return &core.HandlerResult{}, err
	}

	return h.apply(ic, char, conditions.Deflection, map[string]string{
		"type": string(result.Type),
	}, string(result.Type))
}

// HandleNumb handles /condition numb
func (h *ConditionHandler) HandleNumb(ic *core.InteractionContext) (*core.HandlerResult, error) {
	char, err := h.start(ic)
	if err != nil {
		return nil, err
	}

	result, err := h.dialogs.RequestNumb(ic.Context)
	if err != nil || result == nil {
		return &core.HandlerResult{}, err
	}

	return h.apply(ic, char, conditions.Numb, map[string]string{
		"bonus": strconv.Itoa(result.Bonus),
	}, fmt.Sprintf("ignores %d point(s) of penalty", result.Bonus))
}

// start resolves the character and holds the interaction open for the
// dialog, which may take longer than Discord's reply window
func (h *ConditionHandler) start(ic *core.InteractionContext) (*character.Character, error) {
	char, err := h.service.ResolveCharacter(ic.Context, ic.UserID, ic.GetStringParam(CharacterParam))
	if err != nil {
		return nil, err
	}

	if err := ic.Responder.Defer(false); err != nil {
		return nil, core.NewInternalError(fmt.Errorf("failed to defer: %w", err))
	}
	return char, nil
}

func (h *ConditionHandler) apply(ic *core.InteractionContext, char *character.Character, id conditions.ID, options map[string]string, summary string) (*core.HandlerResult, error) {
	_, err := h.service.ApplyCondition(ic.Context, char.ID, &conditions.AppliedCondition{
		ConditionID: id,
		Options:     options,
		AppliedBy:   ic.UserID,
		AppliedAt:   h.now(),
	})
	if err != nil {
		return nil, err
	}

	name, icon := string(id), ""
	if cond, err := h.conditions.LookupConditionByID(id); err == nil {
		name, icon = cond.Name, cond.Icon+" "
	} else {
		log.Printf("[CONDITION] No descriptor for %s: %v", id, err)
	}

	content := fmt.Sprintf("%s**%s** is under **%s**: %s", icon, char.Name, name, summary)
	return &core.HandlerResult{Response: core.NewResponse(content).AsFollowUp()}, nil
}
