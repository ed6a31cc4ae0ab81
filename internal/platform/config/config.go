// Package config loads application configuration from environment variables.
// All variables use the STUDYPAL_ prefix.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Cache      CacheConfig
	Catalog    CatalogConfig
	Classifier ClassifierConfig
	Log        LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int
	Host string
}

// DatabaseConfig holds PostgreSQL connection settings. An empty URL runs the
// progress store in memory.
type DatabaseConfig struct {
	URL      string
	MaxConns int
	MinConns int
}

// CacheConfig holds Redis connection settings. An empty URL disables the
// profile cache.
type CacheConfig struct {
	URL string
}

// CatalogConfig holds resource catalog settings.
type CatalogConfig struct {
	Dir      string
	Clusters int
	Seed     int64
}

// ClassifierConfig holds difficulty classifier settings.
type ClassifierConfig struct {
	ArtifactPath string
	DatasetPath  string
	Seed         int64
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with STUDYPAL_ prefix.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: envInt("STUDYPAL_SERVER_PORT", 8080),
			Host: envStr("STUDYPAL_SERVER_HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			URL:      envStr("STUDYPAL_DATABASE_URL", ""),
			MaxConns: envInt("STUDYPAL_DATABASE_MAX_CONNS", 25),
			MinConns: envInt("STUDYPAL_DATABASE_MIN_CONNS", 5),
		},
		Cache: CacheConfig{
			URL: envStr("STUDYPAL_CACHE_URL", ""),
		},
		Catalog: CatalogConfig{
			Dir:      envStr("STUDYPAL_CATALOG_DIR", "./data/resources"),
			Clusters: envInt("STUDYPAL_CATALOG_CLUSTERS", 5),
			Seed:     envInt64("STUDYPAL_CATALOG_SEED", 1),
		},
		Classifier: ClassifierConfig{
			ArtifactPath: envStr("STUDYPAL_CLASSIFIER_ARTIFACT", "./data/models/difficulty.json"),
			DatasetPath:  envStr("STUDYPAL_CLASSIFIER_DATASET", ""),
			Seed:         envInt64("STUDYPAL_CLASSIFIER_SEED", 42),
		},
		Log: LogConfig{
			Level:  envStr("STUDYPAL_LOG_LEVEL", "info"),
			Format: envStr("STUDYPAL_LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

// Validate checks that required configuration is present and coherent.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("STUDYPAL_SERVER_PORT must be in 1..65535, got %d", c.Server.Port)
	}
	if c.Catalog.Clusters <= 0 {
		return fmt.Errorf("STUDYPAL_CATALOG_CLUSTERS must be positive, got %d", c.Catalog.Clusters)
	}
	if c.Database.URL != "" && c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("STUDYPAL_DATABASE_MIN_CONNS (%d) exceeds max (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}
	return nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}
