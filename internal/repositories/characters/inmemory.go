package characters

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/succ-discord/internal/domain/character"
	apperr "github.com/KirkDiggler/succ-discord/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the character repository.
// Used when no Redis is configured and in tests.
type InMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*character.Character
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		characters: make(map[string]*character.Character),
	}
}

// Create stores a new character
func (r *InMemoryRepository) Create(ctx context.Context, char *character.Character) error {
	if err := validate(char); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[char.ID]; exists {
		return apperr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	r.characters[char.ID] = char.Clone()
	return nil
}

// Get retrieves a character by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*character.Character, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	char, exists := r.characters[id]
	if !exists {
		return nil, apperr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	return char.Clone(), nil
}

// ListByOwner retrieves all characters for an owner, sorted by name
func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*character.Character
	for _, char := range r.characters {
		if char.OwnerID == ownerID {
			out = append(out, char.Clone())
		}
	}
	sortByName(out)

	return out, nil
}

// Update replaces an existing character
func (r *InMemoryRepository) Update(ctx context.Context, char *character.Character) error {
	if err := validate(char); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[char.ID]; !exists {
		return apperr.NotFoundf("character with ID '%s' not found", char.ID).
			WithMeta("character_id", char.ID)
	}

	r.characters[char.ID] = char.Clone()
	return nil
}

// Delete removes a character
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.characters[id]; !exists {
		return apperr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	delete(r.characters, id)
	return nil
}

func validate(char *character.Character) error {
	if char == nil {
		return apperr.InvalidArgument("character cannot be nil")
	}
	if char.ID == "" {
		return apperr.InvalidArgument("character ID is required")
	}
	if char.OwnerID == "" {
		return apperr.InvalidArgument("character owner ID is required")
	}
	return nil
}

func sortByName(chars []*character.Character) {
	sort.Slice(chars, func(i, j int) bool {
		return chars[i].Name < chars[j].Name
	})
}
