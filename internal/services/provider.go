package services

import (
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/succ-discord/internal/repositories/characters"
	characterService "github.com/KirkDiggler/succ-discord/internal/services/character"
	"github.com/KirkDiggler/succ-discord/internal/uuid"
)

// Provider holds all service instances
type Provider struct {
	CharacterService characterService.Service
}

// ProviderConfig picks where characters are stored. An explicit
// CharacterRepository wins over RedisClient; with neither, characters live
// in memory and are lost on restart.
type ProviderConfig struct {
	CharacterRepository characters.Repository
	RedisClient         redis.UniversalClient
	UUIDGenerator       uuid.Generator
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	if cfg == nil {
		cfg = &ProviderConfig{}
	}

	return &Provider{
		CharacterService: characterService.NewService(&characterService.ServiceConfig{
			Repository:    characterRepository(cfg),
			UUIDGenerator: cfg.UUIDGenerator,
		}),
	}
}

func characterRepository(cfg *ProviderConfig) characters.Repository {
	switch {
	case cfg.CharacterRepository != nil:
		return cfg.CharacterRepository
	case cfg.RedisClient != nil:
		log.Println("Using Redis for character persistence")
		return characters.NewRedisRepository(&characters.RedisRepoConfig{Client: cfg.RedisClient})
	default:
		log.Println("Using in-memory character repository")
		return characters.NewInMemoryRepository()
	}
}
