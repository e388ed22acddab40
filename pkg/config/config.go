// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, generation, and embed settings

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Replicate contains image generation configuration
	Replicate ReplicateConfig

	// RateLimit contains per-IP throttling configuration
	RateLimit RateLimitConfig

	// History contains generation history configuration
	History HistoryConfig

	// Embed contains image-change notifier configuration
	Embed EmbedConfig

	// Log contains logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// AllowedOrigin is the single origin allowed to call and embed the app
	AllowedOrigin string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (redis/memory/sqlite)
	Type string

	// TTLSeconds is the TTL for generated moodboards
	TTLSeconds int

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file path
	Path string
}

// ReplicateConfig holds image generation configuration
type ReplicateConfig struct {
	// Token is the Replicate API token
	Token string

	// Model is the model identifier in owner/name form
	Model string
}

// RateLimitConfig holds per-IP throttling configuration
type RateLimitConfig struct {
	// Requests is the number of requests allowed per window
	Requests int

	// WindowSeconds is the throttle window length
	WindowSeconds int
}

// HistoryConfig holds generation history configuration
type HistoryConfig struct {
	// Backend specifies where history is stored (sqlite/redis)
	Backend string

	// SQLitePath is the history database file path
	SQLitePath string
}

// EmbedConfig holds image-change notifier configuration
type EmbedConfig struct {
	// TargetOrigin is the one origin notifications are addressed to
	TargetOrigin string

	// PayloadField is the message field carrying the URL (dataUrl/src)
	PayloadField string

	// RequireEmbedded suppresses notifications when no parent is attached
	RequireEmbedded bool

	// RequireDataURI restricts notifications to data: URLs
	RequireDataURI bool

	// Selector names the watched image element
	Selector string
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum log level (debug/info/warn/error)
	Level string

	// FilePath enables rotated file logging when set
	FilePath string

	// JSONFormat switches output to JSON
	JSONFormat bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:          getEnvOrDefault("PORT", "8000"),
			AllowedOrigin: getEnvOrDefault("ALLOWED_ORIGIN", ""),
		},
		Cache: CacheConfig{
			Type:       getEnvOrDefault("CACHE_TYPE", "memory"),
			TTLSeconds: getEnvAsIntOrDefault("CACHE_TTL_SECONDS", 86400),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "moodboard-cache.db"),
			},
		},
		Replicate: ReplicateConfig{
			Token: getEnvOrDefault("REPLICATE_API_TOKEN", ""),
			Model: getEnvOrDefault("REPLICATE_MODEL", "black-forest-labs/flux-schnell"),
		},
		RateLimit: RateLimitConfig{
			Requests:      getEnvAsIntOrDefault("RATE_LIMIT_REQUESTS", 1),
			WindowSeconds: getEnvAsIntOrDefault("RATE_LIMIT_SECONDS", 10),
		},
		History: HistoryConfig{
			Backend:    getEnvOrDefault("HISTORY_BACKEND", "sqlite"),
			SQLitePath: getEnvOrDefault("HISTORY_SQLITE_PATH", "moodboard-history.db"),
		},
		Embed: EmbedConfig{
			TargetOrigin:    getEnvOrDefault("EMBED_TARGET_ORIGIN", ""),
			PayloadField:    getEnvOrDefault("EMBED_PAYLOAD_FIELD", "dataUrl"),
			RequireEmbedded: getEnvAsBoolOrDefault("EMBED_REQUIRE_EMBEDDED", true),
			RequireDataURI:  getEnvAsBoolOrDefault("EMBED_REQUIRE_DATA_URI", true),
			Selector:        getEnvOrDefault("EMBED_SELECTOR", "img.previewImg"),
		},
		Log: LogConfig{
			Level:      getEnvOrDefault("LOG_LEVEL", "info"),
			FilePath:   getEnvOrDefault("LOG_FILE", ""),
			JSONFormat: getEnvAsBoolOrDefault("LOG_JSON", false),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Cache.Type != "redis" && c.Cache.Type != "memory" && c.Cache.Type != "sqlite" {
		return errors.New("cache type must be 'redis', 'memory', or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Replicate.Token == "" {
		return errors.New("replicate API token is required")
	}

	if !strings.Contains(c.Replicate.Model, "/") {
		return errors.New("replicate model must be in owner/name form")
	}

	if c.RateLimit.Requests < 1 || c.RateLimit.WindowSeconds < 1 {
		return errors.New("rate limit requests and window must be at least 1")
	}

	if c.History.Backend != "sqlite" && c.History.Backend != "redis" && c.History.Backend != "none" {
		return errors.New("history backend must be 'sqlite', 'redis', or 'none'")
	}

	if c.Embed.TargetOrigin == "*" {
		return errors.New("embed target origin cannot be the wildcard origin")
	}

	if c.Embed.PayloadField != "dataUrl" && c.Embed.PayloadField != "src" {
		return errors.New("embed payload field must be 'dataUrl' or 'src'")
	}

	return nil
}
