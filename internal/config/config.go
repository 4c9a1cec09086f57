// Package config loads process configuration from the environment.
//
// The ingestor is configured entirely through environment variables; there
// is no config file and no flags:
//
//	MONGODB_ATLAS_URI             connection string for the document store (required)
//	MONGODB_ATLAS_DB_NAME         database name (required)
//	MONGODB_ATLAS_COLLECTION_NAME collection name (required)
//	GITHUB_TOKEN                  API access token (required)
//	LOG_LEVEL                     zap level, default "info"
//	LOG_FORMAT                    "json" or "console", default "json"
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds the process configuration.
type Config struct {
	// MongoURI is the document store connection string.
	MongoURI string

	// Database is the document store database name.
	Database string

	// Collection is the corpus collection name.
	Collection string

	// GithubToken is the API access token.
	GithubToken string

	// LogLevel is the zap log level.
	LogLevel string

	// LogFormat selects the log encoder ("json" or "console").
	LogFormat string
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{
		MongoURI:    k.String("mongodb_atlas_uri"),
		Database:    k.String("mongodb_atlas_db_name"),
		Collection:  k.String("mongodb_atlas_collection_name"),
		GithubToken: k.String("github_token"),
		LogLevel:    k.String("log_level"),
		LogFormat:   k.String("log_format"),
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all required values are present.
func (c *Config) Validate() error {
	var missing []string
	if c.MongoURI == "" {
		missing = append(missing, "MONGODB_ATLAS_URI")
	}
	if c.Database == "" {
		missing = append(missing, "MONGODB_ATLAS_DB_NAME")
	}
	if c.Collection == "" {
		missing = append(missing, "MONGODB_ATLAS_COLLECTION_NAME")
	}
	if c.GithubToken == "" {
		missing = append(missing, "GITHUB_TOKEN")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
