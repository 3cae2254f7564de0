// ABOUTME: Configuration management with environment variable support
// ABOUTME: Also reads search credentials from an optional local file

package config

import (
	"bufio"
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

	// Search contains search provider credentials
	Search SearchConfig

	// Model contains model inference service configuration
	Model ModelConfig

	// LogLevel sets the logging verbosity (debug/info/warn/error)
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

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

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the database file path
	Path string
}

// SearchConfig holds search provider credentials. Both fields empty means
// verification runs in its fail-open neutral mode.
type SearchConfig struct {
	// APIKey is the Google API key
	APIKey string

	// CSEID is the custom search engine identifier
	CSEID string
}

// ModelConfig holds model inference service configuration
type ModelConfig struct {
	// URL is the inference endpoint for plausibility scoring
	URL string
}

// LoadFromEnv loads configuration from environment variables. Search
// credentials missing from the environment are looked up in the credentials
// file named by CREDENTIALS_FILE (default "credentials.txt") when it exists;
// absent credentials are not an error.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_CACHE_PATH", "cache.db"),
			},
		},
		Search: SearchConfig{
			APIKey: getEnvOrDefault("GOOGLE_API_KEY", ""),
			CSEID:  getEnvOrDefault("GOOGLE_CSE_ID", ""),
		},
		Model: ModelConfig{
			URL: getEnvOrDefault("MODEL_URL", "http://localhost:8501/predict"),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}

	if cfg.Search.APIKey == "" || cfg.Search.CSEID == "" {
		credsPath := getEnvOrDefault("CREDENTIALS_FILE", "credentials.txt")
		if creds, err := loadCredentialsFile(credsPath); err == nil {
			if cfg.Search.APIKey == "" {
				cfg.Search.APIKey = creds["GOOGLE_API_KEY"]
			}
			if cfg.Search.CSEID == "" {
				cfg.Search.CSEID = creds["GOOGLE_CSE_ID"]
			}
		}
	}

	return cfg, nil
}

// loadCredentialsFile parses a simple KEY=VALUE file, one pair per line.
// Lines without '=' are skipped.
func loadCredentialsFile(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	creds := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		creds[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return creds, scanner.Err()
}

// HasSearchCredentials reports whether search can be attempted at all.
func (c *Config) HasSearchCredentials() bool {
	return c.Search.APIKey != "" && c.Search.CSEID != ""
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

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis', or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Model.URL == "" {
		return errors.New("model URL cannot be empty")
	}

	return nil
}
