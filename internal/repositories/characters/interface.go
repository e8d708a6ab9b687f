package characters

//go:generate mockgen -destination=mock/mock.go -package=mockcharacters -source=interface.go

import (
	"context"
	"time"

	"github.com/KirkDiggler/succ-discord/internal/domain/character"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Create stores a new character
	Create(ctx context.Context, char *character.Character) error

	// Get retrieves a character by ID
	Get(ctx context.Context, id string) (*character.Character, error)

	// ListByOwner retrieves all characters for a Discord user
	ListByOwner(ctx context.Context, ownerID string) ([]*character.Character, error)

	// Update replaces an existing character
	Update(ctx context.Context, char *character.Character) error

	// Delete removes a character
	Delete(ctx context.Context, id string) error
}

// TimeProvider supplies timestamps for stored records
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider returns the wall clock in UTC
type RealTimeProvider struct{}

func (r *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
