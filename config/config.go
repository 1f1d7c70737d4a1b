package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Firestore FirestoreConfig
	Cache     CacheConfig
	Matching  MatchingConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// FirestoreConfig holds catalog store configuration
type FirestoreConfig struct {
	ProjectID string `mapstructure:"project_id"`
	APIKey    string `mapstructure:"api_key"`
	BaseURL   string `mapstructure:"base_url"`
}

// CacheConfig holds catalog snapshot cache configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// MatchingConfig holds voice-order matching configuration
type MatchingConfig struct {
	MaxEditDistance    int  `mapstructure:"max_edit_distance"`
	EnableDebugLogging bool `mapstructure:"enable_debug_logging"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/rasoilink/")

	v.SetEnvPrefix("RASOILINK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional - env vars and defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

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
	v.SetDefault("server.allowed_origins", []string{"http://localhost:5173"})

	// Firestore defaults; empty defaults register the keys so env-only
	// values survive Unmarshal
	v.SetDefault("firestore.project_id", "")
	v.SetDefault("firestore.api_key", "")
	v.SetDefault("firestore.base_url", "https://firestore.googleapis.com/v1")
	v.SetDefault("cache.redis_url", "")

	// Cache defaults: catalog snapshots go stale fast, keep the TTL short
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "5m")

	// Matching defaults
	v.SetDefault("matching.max_edit_distance", 2)
	v.SetDefault("matching.enable_debug_logging", false)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 60)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Firestore.ProjectID == "" {
		return fmt.Errorf("Firestore project id is required (set RASOILINK_FIRESTORE_PROJECT_ID)")
	}

	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when cache type is 'redis'")
	}

	if config.Matching.MaxEditDistance < 0 {
		return fmt.Errorf("matching.max_edit_distance must not be negative")
	}

	return nil
}
