package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration of the server.
type Config struct {
	ServerPort int

	// Storage selection: Postgres when DATABASE_URL is set, otherwise a
	// local SQLite file when SQLITE_PATH is set, otherwise in-memory.
	DatabaseURL string
	SQLitePath  string

	// Points awarded per match result in the standings table.
	WinPoints  int
	LossPoints int

	// Optional snapshot archive (S3-compatible / Cloudflare R2). Enabled
	// only when every field is present.
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// Load reads configuration from environment variables, optionally loading a
// .env file first for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		SQLitePath:        os.Getenv("SQLITE_PATH"),
		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	port, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}
	cfg.ServerPort = port

	if cfg.WinPoints, err = intEnv("SCORING_WIN_POINTS", 2); err != nil {
		return nil, err
	}
	if cfg.LossPoints, err = intEnv("SCORING_LOSS_POINTS", 0); err != nil {
		return nil, err
	}
	if cfg.WinPoints <= cfg.LossPoints {
		return nil, fmt.Errorf("SCORING_WIN_POINTS (%d) must exceed SCORING_LOSS_POINTS (%d)", cfg.WinPoints, cfg.LossPoints)
	}

	return cfg, nil
}

// ArchiveEnabled reports whether every R2 credential is configured.
func (c *Config) ArchiveEnabled() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" &&
		c.R2BucketName != "" && c.R2PublicBaseURL != ""
}

func intEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return value, nil
}
