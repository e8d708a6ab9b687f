package character

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacter -source=service.go

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/succ-discord/internal/domain/character"
	"github.com/KirkDiggler/succ-discord/internal/domain/conditions"
	apperr "github.com/KirkDiggler/succ-discord/internal/errors"
	"github.com/KirkDiggler/succ-discord/internal/repositories/characters"
	"github.com/KirkDiggler/succ-discord/internal/uuid"
)

// Service manages player characters and the conditions applied to them
type Service interface {
	// CreateCharacter creates a new character at d4 in every attribute
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*character.Character, error)

	// GetCharacter retrieves a character by ID
	GetCharacter(ctx context.Context, id string) (*character.Character, error)

	// ListCharacters lists a user's characters
	ListCharacters(ctx context.Context, ownerID string) ([]*character.Character, error)

	// ResolveCharacter finds the character a command refers to: by name when
	// given, otherwise the user's only character
	ResolveCharacter(ctx context.Context, ownerID, name string) (*character.Character, error)

	// SetAttribute changes one attribute die
	SetAttribute(ctx context.Context, characterID, attribute string, die int) (*character.Character, error)

	// SetSkill adds or updates a skill
	SetSkill(ctx context.Context, input *SetSkillInput) (*character.Character, error)

	// AddItem adds gear to the inventory
	AddItem(ctx context.Context, input *AddItemInput) (*character.Character, error)

	// ApplyCondition records a resolved dialog on the character
	ApplyCondition(ctx context.Context, characterID string, applied *conditions.AppliedCondition) (*character.Character, error)

	// TraitOptions lists the traits offered by the boost/lower dialog
	TraitOptions(ctx context.Context, char *character.Character) ([]character.TraitOption, error)
}

// CreateCharacterInput holds the fields for a new character
type CreateCharacterInput struct {
	OwnerID string
	RealmID string
	Name    string
}

// SetSkillInput sets one skill on a character
type SetSkillInput struct {
	CharacterID string
	Name        string
	Attribute   string
	Die         int
}

// AddItemInput adds one item to a character
type AddItemInput struct {
	CharacterID string
	Name        string
	Type        string
}

// ServiceConfig holds the dependencies for the service
type ServiceConfig struct {
	Repository    characters.Repository // Required
	UUIDGenerator uuid.Generator        // Optional, defaults to google uuid
}

type service struct {
	repository    characters.Repository
	uuidGenerator uuid.Generator
}

// NewService creates a new character service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		uuidGenerator: cfg.UUIDGenerator,
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

func (s *service) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*character.Character, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input is required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperr.InvalidArgument("character name is required")
	}
	if input.OwnerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	existing, err := s.repository.ListByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list characters")
	}
	for _, char := range existing {
		if strings.EqualFold(char.Name, name) {
			return nil, apperr.AlreadyExistsf("you already have a character named %s", char.Name)
		}
	}

	char := character.New(s.uuidGenerator.New(), input.OwnerID, input.RealmID, name)
	if err := s.repository.Create(ctx, char); err != nil {
		return nil, apperr.Wrap(err, "failed to create character").
			WithMeta("operation", "CreateCharacter")
	}

	log.Printf("[CHARACTER] Created %s (%s) for user %s", char.Name, char.ID, char.OwnerID)
	return char, nil
}

func (s *service) GetCharacter(ctx context.Context, id string) (*character.Character, error) {
	char, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get character %s", id)
	}
	return char, nil
}

func (s *service) ListCharacters(ctx context.Context, ownerID string) ([]*character.Character, error) {
	chars, err := s.repository.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Wrap(err, "failed to list characters")
	}
	return chars, nil
}

func (s *service) ResolveCharacter(ctx context.Context, ownerID, name string) (*character.Character, error) {
	chars, err := s.ListCharacters(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name != "" {
		for _, char := range chars {
			if strings.EqualFold(char.Name, name) {
				return char, nil
			}
		}
		return nil, apperr.NotFoundf("no character named %s", name)
	}

	switch len(chars) {
	case 0:
		return nil, apperr.NotFound("you have no characters yet, use /character create")
	case 1:
		return chars[0], nil
	default:
		return nil, apperr.InvalidArgumentf("you have %d characters, pick one with the character option", len(chars))
	}
}

func (s *service) SetAttribute(ctx context.Context, characterID, attribute string, die int) (*character.Character, error) {
	attr, ok := character.ParseAttribute(attribute)
	if !ok {
		return nil, apperr.InvalidArgumentf("unknown attribute %q", attribute)
	}
	if !character.ValidDie(die) {
		return nil, apperr.InvalidArgumentf("d%d is not a trait die", die)
	}

	return s.update(ctx, characterID, func(char *character.Character) {
		char.Attributes[attr] = character.Die(die)
	})
}

func (s *service) SetSkill(ctx context.Context, input *SetSkillInput) (*character.Character, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, apperr.InvalidArgument("skill name is required")
	}
	attr, ok := character.ParseAttribute(input.Attribute)
	if !ok {
		return nil, apperr.InvalidArgumentf("unknown attribute %q", input.Attribute)
	}
	if !character.ValidDie(input.Die) {
		return nil, apperr.InvalidArgumentf("d%d is not a trait die", input.Die)
	}

	return s.update(ctx, input.CharacterID, func(char *character.Character) {
		char.SetSkill(character.Skill{
			Name:      strings.TrimSpace(input.Name),
			Attribute: attr,
			Die:       character.Die(input.Die),
		})
	})
}

func (s *service) AddItem(ctx context.Context, input *AddItemInput) (*character.Character, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, apperr.InvalidArgument("item name is required")
	}
	itemType := character.ItemType(strings.ToLower(strings.TrimSpace(input.Type)))
	if itemType == "" {
		itemType = character.ItemGear
	}

	return s.update(ctx, input.CharacterID, func(char *character.Character) {
		char.AddItem(character.Item{
			ID:   s.uuidGenerator.New(),
			Name: strings.TrimSpace(input.Name),
			Type: itemType,
		})
	})
}

func (s *service) ApplyCondition(ctx context.Context, characterID string, applied *conditions.AppliedCondition) (*character.Character, error) {
	if applied == nil || applied.ConditionID == "" {
		return nil, apperr.InvalidArgument("condition is required")
	}

	char, err := s.update(ctx, characterID, func(char *character.Character) {
		char.ApplyCondition(applied)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[CONDITION] Applied %s to %s with %v", applied.ConditionID, char.Name, applied.Options)
	return char, nil
}

func (s *service) TraitOptions(ctx context.Context, char *character.Character) ([]character.TraitOption, error) {
	if char == nil {
		return nil, apperr.InvalidArgument("character is required")
	}
	return character.TraitOptions(char), nil
}

func (s *service) update(ctx context.Context, id string, mutate func(*character.Character)) (*character.Character, error) {
	char, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get character %s", id)
	}

	mutate(char)

	if err := s.repository.Update(ctx, char); err != nil {
		return nil, fmt.Errorf("failed to save character %s: %w", id, err)
	}
	return char, nil
}
