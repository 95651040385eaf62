package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("CHRONOLENS_SERVER_PORT")
		os.Unsetenv("CHRONOLENS_SERVER_ENVIRONMENT")
		os.Unsetenv("CHRONOLENS_OPENAI_API_KEY")
		os.Unsetenv("CHRONOLENS_OPENAI_EMBEDDING_MODEL")
		os.Unsetenv("CHRONOLENS_VECTOR_DATABASE_URL")
		os.Unsetenv("CHRONOLENS_VECTOR_TABLE")
		os.Unsetenv("CHRONOLENS_VECTOR_TOP_K")
		os.Unsetenv("CHRONOLENS_SEARCH_API_KEY")
		os.Unsetenv("CHRONOLENS_SEARCH_BASE_URL")
		os.Unsetenv("CHRONOLENS_SEARCH_TIMEOUT")
		os.Unsetenv("CHRONOLENS_CACHE_TYPE")
		os.Unsetenv("CHRONOLENS_CACHE_REDIS_URL")
		os.Unsetenv("CHRONOLENS_CACHE_TTL")
		os.Unsetenv("CHRONOLENS_CACHE_CAPACITY")
		os.Unsetenv("CHRONOLENS_RATELIMIT_PER_IP")
	}

	setRequired := func() {
		os.Setenv("CHRONOLENS_OPENAI_API_KEY", "test-openai-key")
		os.Setenv("CHRONOLENS_VECTOR_DATABASE_URL", "postgres://localhost/catalog")
		os.Setenv("CHRONOLENS_SEARCH_API_KEY", "test-search-key")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		setRequired()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.OpenAI.EmbeddingModel != "text-embedding-3-small" {
			t.Errorf("OpenAI.EmbeddingModel = %s, want text-embedding-3-small", cfg.OpenAI.EmbeddingModel)
		}
		if cfg.Vector.Table != "watch_catalog" {
			t.Errorf("Vector.Table = %s, want watch_catalog", cfg.Vector.Table)
		}
		if cfg.Vector.TopK != 3 {
			t.Errorf("Vector.TopK = %d, want 3", cfg.Vector.TopK)
		}
		if cfg.Search.BaseURL != "https://serpapi.com" {
			t.Errorf("Search.BaseURL = %s, want https://serpapi.com", cfg.Search.BaseURL)
		}
		if cfg.Search.Timeout != 10*time.Second {
			t.Errorf("Search.Timeout = %v, want 10s", cfg.Search.Timeout)
		}
		if cfg.Cache.Type != "memory" {
			t.Errorf("Cache.Type = %s, want memory", cfg.Cache.Type)
		}
		if cfg.Cache.TTL != 5*time.Minute {
			t.Errorf("Cache.TTL = %v, want 5m", cfg.Cache.TTL)
		}
		if cfg.Cache.Capacity != 1024 {
			t.Errorf("Cache.Capacity = %d, want 1024", cfg.Cache.Capacity)
		}
		if cfg.RateLimit.PerIP != 100 {
			t.Errorf("RateLimit.PerIP = %d, want 100", cfg.RateLimit.PerIP)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		setRequired()
		os.Setenv("CHRONOLENS_SERVER_PORT", "9090")
		os.Setenv("CHRONOLENS_SERVER_ENVIRONMENT", "production")
		os.Setenv("CHRONOLENS_VECTOR_TOP_K", "5")
		os.Setenv("CHRONOLENS_SEARCH_BASE_URL", "https://custom.search.example")
		os.Setenv("CHRONOLENS_CACHE_TYPE", "redis")
		os.Setenv("CHRONOLENS_CACHE_REDIS_URL", "redis://localhost:6379")
		os.Setenv("CHRONOLENS_CACHE_TTL", "10m")
		os.Setenv("CHRONOLENS_RATELIMIT_PER_IP", "200")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Vector.TopK != 5 {
			t.Errorf("Vector.TopK = %d, want 5", cfg.Vector.TopK)
		}
		if cfg.Search.BaseURL != "https://custom.search.example" {
			t.Errorf("Search.BaseURL = %s, want custom", cfg.Search.BaseURL)
		}
		if cfg.Cache.Type != "redis" {
			t.Errorf("Cache.Type = %s, want redis", cfg.Cache.Type)
		}
		if cfg.Cache.RedisURL != "redis://localhost:6379" {
			t.Errorf("Cache.RedisURL = %s, want redis://localhost:6379", cfg.Cache.RedisURL)
		}
		if cfg.Cache.TTL != 10*time.Minute {
			t.Errorf("Cache.TTL = %v, want 10m", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 200 {
			t.Errorf("RateLimit.PerIP = %d, want 200", cfg.RateLimit.PerIP)
		}
	})

	t.Run("fails without OpenAI API key", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("CHRONOLENS_VECTOR_DATABASE_URL", "postgres://localhost/catalog")
		os.Setenv("CHRONOLENS_SEARCH_API_KEY", "test-search-key")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for missing OpenAI key")
		}
	})

	t.Run("fails without catalog database URL", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("CHRONOLENS_OPENAI_API_KEY", "test-openai-key")
		os.Setenv("CHRONOLENS_SEARCH_API_KEY", "test-search-key")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for missing database URL")
		}
	})

	t.Run("fails without search API key", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("CHRONOLENS_OPENAI_API_KEY", "test-openai-key")
		os.Setenv("CHRONOLENS_VECTOR_DATABASE_URL", "postgres://localhost/catalog")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for missing search key")
		}
	})

	t.Run("fails on invalid cache type", func(t *testing.T) {
		cleanupEnv()
		setRequired()
		os.Setenv("CHRONOLENS_CACHE_TYPE", "memcached")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for invalid cache type")
		}
	})

	t.Run("fails on redis cache without redis URL", func(t *testing.T) {
		cleanupEnv()
		setRequired()
		os.Setenv("CHRONOLENS_CACHE_TYPE", "redis")
		defer cleanupEnv()

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for missing redis URL")
		}
	})
}
