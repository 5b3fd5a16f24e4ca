package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Generation GenerationConfig
	Cache      CacheConfig
	Matching   MatchingConfig
	Recommend  RecommendConfig
	Store      StoreConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GenerationConfig holds generation-service (LLM) configuration
type GenerationConfig struct {
	APIKey            string        `mapstructure:"api_key"`
	BaseURL           string        `mapstructure:"base_url"`
	Model             string        `mapstructure:"model"`
	Timeout           time.Duration `mapstructure:"timeout"`
	MaxRetries        int           `mapstructure:"max_retries"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// MatchingConfig holds product matching thresholds
type MatchingConfig struct {
	FuzzyThreshold    float64 `mapstructure:"fuzzy_threshold"`
	CategoryThreshold float64 `mapstructure:"category_threshold"`
	TieEpsilon        float64 `mapstructure:"tie_epsilon"`
}

// RecommendConfig holds recommendation engine weights
type RecommendConfig struct {
	SelectionWeight  float64 `mapstructure:"selection_weight"`
	PurchaseWeight   float64 `mapstructure:"purchase_weight"`
	CookWeight       float64 `mapstructure:"cook_weight"`
	FavoriteLimit    int     `mapstructure:"favorite_limit"`
	PopularityWeight float64 `mapstructure:"popularity_weight"`
}

// StoreConfig holds feedback persistence configuration
type StoreConfig struct {
	Path string `mapstructure:"path"` // empty disables persistence
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/foodplan/")

	// Environment variable settings
	v.SetEnvPrefix("FOODPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Generation defaults. The empty api_key default keeps the key visible to
	// viper so the environment variable binds during Unmarshal.
	v.SetDefault("generation.api_key", "")
	v.SetDefault("generation.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("generation.model", "meta-llama/llama-3.1-8b-instruct")
	v.SetDefault("generation.timeout", "30s")
	v.SetDefault("generation.max_retries", 3)
	v.SetDefault("generation.requests_per_second", 0.5)

	// Cache defaults. The empty redis_url default keeps the key visible to
	// viper so the environment variable binds during Unmarshal.
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.ttl", "24h")

	// Matching defaults
	v.SetDefault("matching.fuzzy_threshold", 0.70)
	v.SetDefault("matching.category_threshold", 0.50)
	v.SetDefault("matching.tie_epsilon", 0.01)

	// Recommendation defaults
	v.SetDefault("recommend.selection_weight", 1.0)
	v.SetDefault("recommend.purchase_weight", 2.0)
	v.SetDefault("recommend.cook_weight", 3.0)
	v.SetDefault("recommend.favorite_limit", 3)
	v.SetDefault("recommend.popularity_weight", 0.1)

	// Store defaults
	v.SetDefault("store.path", "foodplan.db")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Generation.APIKey == "" {
		return fmt.Errorf("generation API key is required (set FOODPLAN_GENERATION_API_KEY)")
	}

	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when cache type is 'redis'")
	}

	if config.Matching.FuzzyThreshold <= config.Matching.CategoryThreshold {
		return fmt.Errorf("fuzzy threshold must be above category threshold")
	}

	return nil
}
