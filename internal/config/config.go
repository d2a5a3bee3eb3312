// Package config loads runtime settings from the environment, with an
// optional .env file for local development. Commands validate only the
// settings they actually use, so the classifier runs without R2 credentials
// and the pipeline without an Anthropic key.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the full environment surface of the voyo binary.
type Config struct {
	SupabaseURL string `envconfig:"SUPABASE_URL"`
	SupabaseKey string `envconfig:"SUPABASE_KEY"`

	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY"`

	R2AccountID string `envconfig:"R2_ACCOUNT_ID"`
	R2AccessKey string `envconfig:"R2_ACCESS_KEY"`
	R2SecretKey string `envconfig:"R2_SECRET_KEY"`
	R2Bucket    string `envconfig:"R2_BUCKET" default:"voyo-audio"`
	R2PublicURL string `envconfig:"R2_PUBLIC_URL"`

	CatalogPath string `envconfig:"VOYO_CATALOG" default:"data/voyo.db"`
	TempDir     string `envconfig:"VOYO_TEMP_DIR"`
}

// Load reads the .env file if present, then the process environment.
func Load() (Config, error) {
	// A missing .env is the normal case outside development.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("config: loading .env: %w", err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// RequireSupabase fails unless the track store settings are present.
func (c Config) RequireSupabase() error {
	if c.SupabaseURL == "" || c.SupabaseKey == "" {
		return fmt.Errorf("config: SUPABASE_URL and SUPABASE_KEY must be set")
	}
	return nil
}

// RequireR2 fails unless the object store settings are present.
func (c Config) RequireR2() error {
	if c.R2AccountID == "" || c.R2AccessKey == "" || c.R2SecretKey == "" {
		return fmt.Errorf("config: R2_ACCOUNT_ID, R2_ACCESS_KEY and R2_SECRET_KEY must be set")
	}
	return nil
}
