package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MONGODB_ATLAS_URI", "mongodb+srv://example.mongodb.net")
	t.Setenv("MONGODB_ATLAS_DB_NAME", "thoth")
	t.Setenv("MONGODB_ATLAS_COLLECTION_NAME", "code_corpus")
	t.Setenv("GITHUB_TOKEN", "ghp_example")
}

func TestLoad(t *testing.T) {
	t.Run("reads required values from the environment", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "mongodb+srv://example.mongodb.net", cfg.MongoURI)
		assert.Equal(t, "thoth", cfg.Database)
		assert.Equal(t, "code_corpus", cfg.Collection)
		assert.Equal(t, "ghp_example", cfg.GithubToken)
	})

	t.Run("defaults logging knobs", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("LOG_FORMAT", "")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("honours logging overrides", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "console")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "console", cfg.LogFormat)
	})

	t.Run("reports every missing variable", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("GITHUB_TOKEN", "")
		t.Setenv("MONGODB_ATLAS_DB_NAME", "")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "GITHUB_TOKEN")
		assert.Contains(t, err.Error(), "MONGODB_ATLAS_DB_NAME")
		assert.NotContains(t, err.Error(), "MONGODB_ATLAS_URI")
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("accepts a complete config", func(t *testing.T) {
		cfg := &Config{
			MongoURI:    "mongodb://localhost",
			Database:    "db",
			Collection:  "col",
			GithubToken: "tok",
		}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("rejects an empty config", func(t *testing.T) {
		assert.Error(t, (&Config{}).Validate())
	})
}
