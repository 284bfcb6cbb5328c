// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, AI, locale, logging and rate limiting

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// AI contains the remote model configuration
	AI AIConfig

	// Locale selects the user-facing text
	Locale LocaleConfig

	// Log contains logging configuration
	Log LogConfig

	// RateLimit contains per-client rate limiting configuration
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// AIConfig holds the generative AI configuration
type AIConfig struct {
	// APIKey is the Gemini API credential
	APIKey string

	// Model is the model id
	Model string

	// TimeoutSeconds bounds each remote call
	TimeoutSeconds int
}

// Timeout returns the per-call deadline
func (a AIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// LocaleConfig holds locale selection
type LocaleConfig struct {
	// Code is the catalog code (tr, en)
	Code string

	// File is an optional TOML file overriding catalog keys
	File string
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is the minimum level (debug, info, warn, error)
	Level string

	// Format is text or json
	Format string

	// File, when set, also writes rotated logs to this path
	File string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// Limit is the number of requests per window per client, 0 disables
	Limit int

	// WindowSeconds is the window length
	WindowSeconds int

	// Backend specifies the limiter backend (memory/redis)
	Backend string

	// Redis contains Redis-specific configuration
	Redis RedisConfig
}

// Window returns the limiting window
func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

// Enabled reports whether requests are limited at all
func (r RateLimitConfig) Enabled() bool {
	return r.Limit > 0
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

// Load reads envFile into the process environment, without overriding
// variables that are already set, and then loads the configuration.
// A missing envFile is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return LoadFromEnv()
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		AI: AIConfig{
			APIKey:         getEnvOrDefault("GEMINI_API_KEY", os.Getenv("API_KEY")),
			Model:          getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
			TimeoutSeconds: getEnvAsIntOrDefault("AI_TIMEOUT_SECONDS", 60),
		},
		Locale: LocaleConfig{
			Code: getEnvOrDefault("LOCALE", "tr"),
			File: getEnvOrDefault("LOCALE_FILE", ""),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
		RateLimit: RateLimitConfig{
			Limit:         getEnvAsIntOrDefault("RATE_LIMIT", 30),
			WindowSeconds: getEnvAsIntOrDefault("RATE_WINDOW_SECONDS", 60),
			Backend:       getEnvOrDefault("RATE_LIMIT_BACKEND", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
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

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.AI.APIKey == "" {
		return errors.New("GEMINI_API_KEY (or API_KEY) must be set")
	}

	if c.AI.Model == "" {
		return errors.New("model cannot be empty")
	}

	if c.AI.TimeoutSeconds < 1 {
		return errors.New("AI timeout must be at least 1 second")
	}

	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		return errors.New("log format must be 'text' or 'json'")
	}

	if c.RateLimit.Limit < 0 {
		return errors.New("rate limit cannot be negative")
	}

	if c.RateLimit.Enabled() {
		if c.RateLimit.WindowSeconds < 1 {
			return errors.New("rate window must be at least 1 second")
		}

		if c.RateLimit.Backend != "redis" && c.RateLimit.Backend != "memory" {
			return errors.New("rate limit backend must be 'redis' or 'memory'")
		}

		if c.RateLimit.Backend == "redis" && c.RateLimit.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis rate limiting")
		}
	}

	return nil
}
