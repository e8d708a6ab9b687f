// Package dialogs builds the condition dialogs (boost/lower trait, smite,
// protection, deflection and numb), hands them to a Presenter and maps the
// user's answer to a typed result.
//
// Every Request method returns a nil result with a nil error when the user
// cancels or dismisses the dialog.
package dialogs

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/KirkDiggler/succ-discord/internal/domain/character"
	"github.com/KirkDiggler/succ-discord/internal/domain/conditions"
	apperr "github.com/KirkDiggler/succ-discord/internal/errors"
)

// Action ids
const (
	ActionSuccess   = "success"
	ActionRaise     = "raise"
	ActionCancel    = "cancel"
	ActionApply     = "apply"
	ActionArmor     = "armor"
	ActionToughness = "toughness"
	ActionMelee     = "Melee"
	ActionRanged    = "Ranged"
	ActionDeflRaise = "Raise"
)

// ProviderConfig holds the provider's collaborators. All are required.
type ProviderConfig struct {
	Registry  ConditionRegistry
	Traits    TraitSource
	Renderer  Renderer
	Presenter Presenter
	Localizer Localizer
	Notifier  Notifier
}

// Validate reports the first missing collaborator
func (c *ProviderConfig) Validate() error {
	if c == nil {
		return apperr.InvalidArgument("provider config is required")
	}
	if c.Registry == nil {
		return apperr.InvalidArgument("registry is required")
	}
	if c.Traits == nil {
		return apperr.InvalidArgument("trait source is required")
	}
	if c.Renderer == nil {
		return apperr.InvalidArgument("renderer is required")
	}
	if c.Presenter == nil {
		return apperr.InvalidArgument("presenter is required")
	}
	if c.Localizer == nil {
		return apperr.InvalidArgument("localizer is required")
	}
	if c.Notifier == nil {
		return apperr.InvalidArgument("notifier is required")
	}
	return nil
}

// Provider runs the condition dialogs
type Provider struct {
	registry  ConditionRegistry
	traits    TraitSource
	renderer  Renderer
	presenter Presenter
	localizer Localizer
	notifier  Notifier
}

// NewProvider creates a Provider
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Provider{
		registry:  cfg.Registry,
		traits:    cfg.Traits,
		renderer:  cfg.Renderer,
		presenter: cfg.Presenter,
		localizer: cfg.Localizer,
		notifier:  cfg.Notifier,
	}, nil
}

// RequestBoostLowerTrait asks which trait to boost or lower and how well
// the power was cast
func (p *Provider) RequestBoostLowerTrait(ctx context.Context, actor *character.Character, typ BoostLowerType) (*BoostLowerResult, error) {
	if typ != Boost && typ != Lower {
		return nil, apperr.InvalidArgumentf("unknown boost/lower type %q", typ)
	}
	if actor == nil {
		return nil, apperr.InvalidArgument("actor is required")
	}

	cond, err := p.lookup(conditions.ID(typ))
	if err != nil {
		return nil, err
	}

	traits, err := p.traits.TraitOptions(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("failed to get trait options: %w", err)
	}

	options := make([]Option, 0, len(traits))
	for _, trait := range traits {
		options = append(options, Option{Value: trait.Value, Label: trait.Label})
	}

	degree := func(d Degree) func(Form) (*BoostLowerResult, error) {
		return func(form Form) (*BoostLowerResult, error) {
			trait := form.Value(FieldSelectedTrait)
			if trait == "" {
				return nil, apperr.Validationf("no trait selected")
			}
			return &BoostLowerResult{Trait: trait, Degree: d}, nil
		}
	}

	return run(ctx, p, &request[BoostLowerResult]{
		kind: KindBoostLower,
		data: &BoostLowerData{
			Condition:    cond,
			TraitOptions: traits,
			Boost:        typ == Boost,
		},
		fields: []Field{{
			ID:      FieldSelectedTrait,
			Label:   p.localizer.Localize("ENHANCED_CONDITIONS.Dialog.Trait"),
			Kind:    FieldSelect,
			Options: options,
		}},
		actions: []actionSpec[BoostLowerResult]{
			{id: ActionSuccess, labelKey: "ENHANCED_CONDITIONS.Dialog.Success", inputs: []string{FieldSelectedTrait}, resolve: degree(DegreeSuccess)},
			{id: ActionRaise, labelKey: "ENHANCED_CONDITIONS.Dialog.Raise", inputs: []string{FieldSelectedTrait}, resolve: degree(DegreeRaise)},
			cancelAction[BoostLowerResult](),
		},
	})
}

// RequestSmite asks which weapon to smite and its damage bonus. An actor
// without weapons gets a warning instead of a dialog; the result is then nil
// and the error is whatever the notifier returned.
func (p *Provider) RequestSmite(ctx context.Context, actor *character.Character) (*SmiteResult, error) {
	if actor == nil {
		return nil, apperr.InvalidArgument("actor is required")
	}

	cond, err := p.lookup(conditions.Smite)
	if err != nil {
		return nil, err
	}

	weapons := actor.Weapons()
	if len(weapons) == 0 {
		log.Printf("[DIALOG] %s has no weapons, skipping smite dialog", actor.Name)
		return nil, p.notifier.Warn(ctx, p.localizer.Localize("ENHANCED_CONDITIONS.Dialog.NoWeapons"))
	}

	names := make([]string, 0, len(weapons))
	options := make([]Option, 0, len(weapons))
	seen := make(map[string]bool, len(weapons))
	for _, weapon := range weapons {
		names = append(names, weapon.Name)
		if seen[weapon.Name] {
			continue
		}
		seen[weapon.Name] = true
		options = append(options, Option{Value: weapon.Name, Label: weapon.Name})
	}

	return run(ctx, p, &request[SmiteResult]{
		kind: KindSmite,
		data: &SmiteData{
			Condition:   cond,
			Weapons:     weapons,
			WeaponNames: names,
		},
		fields: []Field{
			{
				ID:      FieldWeapon,
				Label:   p.localizer.Localize("ENHANCED_CONDITIONS.Dialog.Weapon"),
				Kind:    FieldSelect,
				Options: options,
			},
			{
				ID:    FieldDamageBonus,
				Label: p.localizer.Localize("ENHANCED_CONDITIONS.Dialog.DamageBonus"),
				Kind:  FieldText,
			},
		},
		actions: []actionSpec[SmiteResult]{
			{
				id:       ActionApply,
				labelKey: "ENHANCED_CONDITIONS.Dialog.Apply",
				inputs:   []string{FieldWeapon, FieldDamageBonus},
				resolve: func(form Form) (*SmiteResult, error) {
					weapon := form.Value(FieldWeapon)
					if weapon == "" {
						return nil, apperr.Validationf("no weapon selected")
					}
					return &SmiteResult{
						Weapon: weapon,
						Bonus:  SignedBonus(form.Value(FieldDamageBonus)),
					}, nil
				},
			},
			cancelAction[SmiteResult](),
		},
	})
}

// RequestProtection asks for a protection amount and whether it adds to
// armor or toughness
func (p *Provider) RequestProtection(ctx context.Context) (*ProtectionResult, error) {
	cond, err := p.lookup(conditions.Protection)
	if err != nil {
		return nil, err
	}

	protect := func(typ ProtectionType) func(Form) (*ProtectionResult, error) {
		return func(form Form) (*ProtectionResult, error) {
			bonus, err := ParseAmount(form.Value(FieldProtectionAmount))
			if err != nil {
				return nil, err
			}
			return &ProtectionResult{Bonus: bonus, Type: typ}, nil
		}
	}

	inputs := []string{FieldProtectionAmount}
	return run(ctx, p, &request[ProtectionResult]{
		kind: KindProtection,
		data: &ConditionData{Condition: cond},
		fields: []Field{{
			ID:    FieldProtectionAmount,
			Label: p.localizer.Localize("ENHANCED_CONDITIONS.Dialog.ProtectionAmount"),
			Kind:  FieldNumber,
		}},
		actions: []actionSpec[ProtectionResult]{
			{id: ActionArmor, labelKey: "SWADE.Armor", inputs: inputs, resolve: protect(ProtectionArmor)},
			{id: ActionToughness, labelKey: "SWADE.Tough", inputs: inputs, resolve: protect(ProtectionToughness)},
			cancelAction[ProtectionResult](),
		},
	})
}

// RequestDeflection asks which attacks are deflected
func (p *Provider) RequestDeflection(ctx context.Context) (*DeflectionResult, error) {
	cond, err := p.lookup(conditions.Deflection)
	if err != nil {
		return nil, err
	}

	deflect := func(typ DeflectionType) func(Form) (*DeflectionResult, error) {
		return func(Form) (*DeflectionResult, error) {
			return &DeflectionResult{Type: typ}, nil
		}
	}

	return run(ctx, p, &request[DeflectionResult]{
		kind: KindDeflection,
		data: &ConditionData{Condition: cond},
		actions: []actionSpec[DeflectionResult]{
			{id: ActionMelee, labelKey: "ENHANCED_CONDITIONS.Dialog.DeflectionBuilder.Melee", resolve: deflect(DeflectionMelee)},
			{id: ActionRanged, labelKey: "ENHANCED_CONDITIONS.Dialog.DeflectionBuilder.Ranged", resolve: deflect(DeflectionRanged)},
			{id: ActionDeflRaise, labelKey: "ENHANCED_CONDITIONS.Dialog.DeflectionBuilder.Raise", resolve: deflect(DeflectionRaise)},
			cancelAction[DeflectionResult](),
		},
	})
}

// RequestNumb asks whether numb was cast with a success (bonus 1) or a
// raise (bonus 2)
func (p *Provider) RequestNumb(ctx context.Context) (*NumbResult, error) {
	cond, err := p.lookup(conditions.Numb)
	if err != nil {
		return nil, err
	}

	numb := func(bonus int) func(Form) (*NumbResult, error) {
		return func(Form) (*NumbResult, error) {
			return &NumbResult{Bonus: bonus}, nil
		}
	}

	return run(ctx, p, &request[NumbResult]{
		kind: KindNumb,
		data: &ConditionData{Condition: cond},
		actions: []actionSpec[NumbResult]{
			{id: ActionSuccess, labelKey: "ENHANCED_CONDITIONS.Dialog.Success", resolve: numb(1)},
			{id: ActionRaise, labelKey: "ENHANCED_CONDITIONS.Dialog.Raise", resolve: numb(2)},
			cancelAction[NumbResult](),
		},
	})
}

func (p *Provider) lookup(id conditions.ID) (*conditions.Condition, error) {
	cond, err := p.registry.LookupConditionByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up condition %s: %w", id, err)
	}
	return cond, nil
}

// SignedBonus gives an unsigned damage bonus a leading '+'. Values that
// already carry a sign are returned as entered.
func SignedBonus(bonus string) string {
	bonus = strings.TrimSpace(bonus)
	if strings.HasPrefix(bonus, "+") || strings.HasPrefix(bonus, "-") {
		return bonus
	}
	return "+" + bonus
}

// ParseAmount parses a numeric form value as a whole number. Blank counts as
// zero; decimals such as "2.5" are a validation error.
func ParseAmount(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	amount, err := strconv.Atoi(value)
	if err != nil {
		return 0, apperr.WrapWithCode(err, apperr.CodeValidation, fmt.Sprintf("%q is not a whole number", value))
	}
	return amount, nil
}
