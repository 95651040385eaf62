package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/chronolens/backend/config"
	httpDelivery "github.com/chronolens/backend/internal/delivery/http"
	"github.com/chronolens/backend/internal/domain"
	"github.com/chronolens/backend/internal/infrastructure/cache"
	"github.com/chronolens/backend/internal/infrastructure/embedding"
	"github.com/chronolens/backend/internal/infrastructure/pgvector"
	"github.com/chronolens/backend/internal/infrastructure/serp"
	"github.com/chronolens/backend/internal/observability"
	"github.com/chronolens/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting ChronoLens Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)

	ctx := context.Background()
	observability.Register()

	// Initialize infrastructure dependencies
	var priceCache domain.CacheRepository
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(ctx, cfg.Cache.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
		priceCache = redisCache
	default:
		priceCache = cache.NewMemoryCache(cfg.Cache.Capacity)
	}
	log.Printf("Cache TTL: %s, capacity: %d", cfg.Cache.TTL, cfg.Cache.Capacity)

	embedder := embedding.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.EmbeddingModel)

	pool, err := pgvector.Connect(ctx, cfg.Vector.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to catalog database: %v", err)
	}
	defer pool.Close()
	index := pgvector.NewIndex(pool, cfg.Vector.Table)

	searchClient := serp.NewClient(cfg.Search.APIKey, cfg.Search.BaseURL, cfg.Search.Timeout)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		searchClient.SetDebug(true)
		log.Printf("Search client debug mode enabled")
	}

	// Initialize usecase layer
	catalogService := usecase.NewCatalogService(embedder, index, usecase.CatalogServiceConfig{
		TopK: cfg.Vector.TopK,
	})
	priceService := usecase.NewPriceService(priceCache, searchClient, usecase.PriceServiceConfig{
		CacheTTL:      cfg.Cache.TTL,
		SearchTimeout: cfg.Search.Timeout,
	})
	intentClassifier := usecase.NewIntentClassifier(cfg.Intent.ExtraPriceTerms)

	conciergeService := usecase.NewConciergeService(catalogService, priceService, intentClassifier)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(conciergeService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
