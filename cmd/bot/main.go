package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/succ-discord/internal/config"
	v2 "github.com/KirkDiggler/succ-discord/internal/discord/v2"
	"github.com/KirkDiggler/succ-discord/internal/discord/v2/routers"
	"github.com/KirkDiggler/succ-discord/internal/domain/conditions"
	"github.com/KirkDiggler/succ-discord/internal/i18n"
	"github.com/KirkDiggler/succ-discord/internal/services"
	characterService "github.com/KirkDiggler/succ-discord/internal/services/character"
	"github.com/KirkDiggler/succ-discord/internal/templates"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	registry, err := loadConditions(cfg.Conditions.Path)
	if err != nil {
		log.Fatalf("Failed to load conditions: %v", err)
	}

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}
	localizer := bundle.Localizer(cfg.Locale)
	log.Printf("Using locale %s", localizer.Locale())

	renderer, err := templates.NewRenderer(localizer)
	if err != nil {
		log.Fatalf("Failed to load dialog templates: %v", err)
	}

	// Keep Redis client for cleanup
	redisClient := connectRedis(ctx, cfg.Redis.URL)

	providerConfig := &services.ProviderConfig{}
	if redisClient != nil {
		providerConfig.RedisClient = redisClient
	}
	serviceProvider := services.NewProvider(providerConfig)

	if cfg.CharacterSeedPath != "" {
		n, seedErr := characterService.ImportSeedFile(ctx, serviceProvider.CharacterService, cfg.CharacterSeedPath)
		if seedErr != nil {
			log.Fatalf("Failed to import characters from %s: %v", cfg.CharacterSeedPath, seedErr)
		}
		log.Printf("Imported %d characters from %s", n, cfg.CharacterSeedPath)
	}

	bot, err := v2.NewBot(&v2.BotConfig{
		CharacterService:   serviceProvider.CharacterService,
		Conditions:         registry,
		Renderer:           renderer,
		Localizer:          localizer,
		RateLimitPerMinute: cfg.Discord.RateLimitPerMinute,
		AllowedRoles:       cfg.Discord.AllowedRoles,
	})
	if err != nil {
		log.Fatalf("Failed to set up handlers: %v", err)
	}

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot.Attach(ctx, dg)

	// Open connection to Discord
	if err := dg.Open(); err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		if clientErr := dg.Close(); clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := routers.RegisterCommands(dg, cfg.Discord.AppID, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	<-ctx.Done()
	fmt.Println("Shutting down...")

	// Clean up Redis connection if we have one
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}
}

// loadConditions reads the conditions file at path, or the built in list
// when path is empty
func loadConditions(path string) (*conditions.Registry, error) {
	if path == "" {
		return conditions.DefaultRegistry()
	}

	log.Printf("Loading conditions from %s", path)
	return conditions.LoadRegistry(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// connectRedis returns nil when no URL is set or Redis is unreachable, in
// which case characters stay in memory
func connectRedis(ctx context.Context, redisURL string) *redis.Client {
	if redisURL == "" {
		log.Println("No REDIS_URL found, using in-memory repositories")
		return nil
	}

	log.Printf("Connecting to Redis at: %s", redisURL)
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory repositories")
		return nil
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory repositories")
		_ = client.Close()
		return nil
	}

	log.Println("Successfully connected to Redis")
	return client
}
