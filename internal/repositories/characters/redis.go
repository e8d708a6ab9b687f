package characters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/succ-discord/internal/domain/character"
	"github.com/KirkDiggler/succ-discord/internal/domain/conditions"
	apperr "github.com/KirkDiggler/succ-discord/internal/errors"
)

// Data represents the serialized form of a character in Redis
type Data struct {
	ID         string                                 `json:"id"`
	OwnerID    string                                 `json:"owner_id"`
	RealmID    string                                 `json:"realm_id"`
	Name       string                                 `json:"name"`
	Attributes map[character.Attribute]character.Die `json:"attributes"`
	Skills     []character.Skill                      `json:"skills,omitempty"`
	Items      []character.Item                       `json:"items,omitempty"`
	Conditions []*conditions.AppliedCondition         `json:"conditions,omitempty"`
	CreatedAt  time.Time                              `json:"created_at"`
	UpdatedAt  time.Time                              `json:"updated_at"`
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: timeProvider,
	}
}

func characterKey(id string) string {
	return fmt.Sprintf("character:%s", id)
}

func ownerCharactersKey(ownerID string) string {
	return fmt.Sprintf("owner:%s:characters", ownerID)
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, char *character.Character) error {
	if err := validate(char); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, characterKey(char.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists > 0 {
		return apperr.AlreadyExistsf("character with ID '%s' already exists", char.ID).
			WithMeta("character_id", char.ID)
	}

	now := r.timeProvider.Now()
	return r.write(ctx, toData(char, now, now))
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*character.Character, error) {
	data, err := r.getData(ctx, id)
	if err != nil {
		return nil, err
	}
	return fromData(data), nil
}

// ListByOwner retrieves all characters for a specific owner
func (r *redisRepo) ListByOwner(ctx context.Context, ownerID string) ([]*character.Character, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, ownerCharactersKey(ownerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list character IDs: %w", err)
	}

	chars := make([]*character.Character, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			char, err := r.Get(gctx, id)
			if err != nil {
				return fmt.Errorf("failed to get character %s: %w", id, err)
			}
			chars[i] = char
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortByName(chars)
	return chars, nil
}

// Update replaces an existing character, keeping its creation time
func (r *redisRepo) Update(ctx context.Context, char *character.Character) error {
	if err := validate(char); err != nil {
		return err
	}

	existing, err := r.getData(ctx, char.ID)
	if err != nil {
		return err
	}

	return r.write(ctx, toData(char, existing.CreatedAt, r.timeProvider.Now()))
}

// Delete removes a character and its owner index entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	data, err := r.getData(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, characterKey(id))
	pipe.SRem(ctx, ownerCharactersKey(data.OwnerID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	return nil
}

func (r *redisRepo) getData(ctx context.Context, id string) (*Data, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, characterKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var data Data
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal character: %w", err)
	}
	return &data, nil
}

func (r *redisRepo) write(ctx context.Context, data *Data) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal character: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, characterKey(data.ID), string(jsonData), 0)
	pipe.SAdd(ctx, ownerCharactersKey(data.OwnerID), data.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store character: %w", err)
	}

	return nil
}

func toData(char *character.Character, createdAt, updatedAt time.Time) *Data {
	return &Data{
		ID:         char.ID,
		OwnerID:    char.OwnerID,
		RealmID:    char.RealmID,
		Name:       char.Name,
		Attributes: char.Attributes,
		Skills:     char.Skills,
		Items:      char.Items,
		Conditions: char.Conditions,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}

func fromData(data *Data) *character.Character {
	return &character.Character{
		ID:         data.ID,
		OwnerID:    data.OwnerID,
		RealmID:    data.RealmID,
		Name:       data.Name,
		Attributes: data.Attributes,
		Skills:     data.Skills,
		Items:      data.Items,
		Conditions: data.Conditions,
	}
}
