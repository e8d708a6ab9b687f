package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	Discord    DiscordConfig
	Redis      RedisConfig
	Conditions ConditionsConfig

	// Locale picks the translation catalog, e.g. en-US or de-DE
	Locale string

	// CharacterSeedPath is an optional YAML file of characters imported at startup
	CharacterSeedPath string
}

// DiscordConfig holds Discord-specific configuration
type DiscordConfig struct {
	Token   string
	AppID   string
	GuildID string // Optional: for guild-specific commands

	// RateLimitPerMinute caps interactions per user. Zero disables it.
	RateLimitPerMinute int

	// AllowedRoles restricts the bot to members with any of these role IDs
	AllowedRoles []string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// URL is empty when characters should be kept in memory
	URL string
}

// ConditionsConfig points at an alternate conditions data file
type ConditionsConfig struct {
	Path string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	rateLimit, err := getEnvAsIntOrDefault("RATE_LIMIT_PER_MINUTE", 60)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Discord: DiscordConfig{
			Token:              os.Getenv("DISCORD_TOKEN"),
			AppID:              os.Getenv("DISCORD_APP_ID"),
			GuildID:            os.Getenv("DISCORD_GUILD_ID"),
			RateLimitPerMinute: rateLimit,
			AllowedRoles:       getEnvAsList("ALLOWED_ROLES"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Conditions: ConditionsConfig{
			Path: os.Getenv("CONDITIONS_PATH"),
		},
		Locale:            getEnvOrDefault("LOCALE", "en-US"),
		CharacterSeedPath: os.Getenv("CHARACTER_SEED_PATH"),
	}

	// Validate required fields
	if cfg.Discord.Token == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}
	if cfg.Discord.AppID == "" {
		return nil, fmt.Errorf("DISCORD_APP_ID is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number, got %q", key, value)
	}
	return intValue, nil
}

// getEnvAsList splits a comma separated value, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
