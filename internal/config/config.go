package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Database
	DatabasePath string

	// Remote generation backend (optional; the local template engine is
	// used when unset)
	BackendURL     string
	BackendTimeout time.Duration

	// Generation
	GenerationDelay time.Duration // simulated latency, 0 disables
	DefaultStyle    string
	DefaultTone     int // slider value, 0-100
	Language        string

	// HTTP server
	ServeAddr   string
	CORSOrigins []string

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		DatabasePath: getEnv("DATABASE_PATH", "data/amoraverse.db"),
		BackendURL:   getEnv("BACKEND_URL", ""),
		DefaultStyle: getEnv("DEFAULT_STYLE", "free-verse"),
		Language:     getEnv("LANGUAGE", "English"),
		ServeAddr:    getEnv("SERVE_ADDR", ":8001"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}

	if origins := getEnv("CORS_ORIGINS", "*"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			cfg.CORSOrigins = append(cfg.CORSOrigins, strings.TrimSpace(o))
		}
	}

	// Parse durations
	var err error
	cfg.BackendTimeout, err = time.ParseDuration(getEnv("BACKEND_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKEND_TIMEOUT: %w", err)
	}

	cfg.GenerationDelay, err = time.ParseDuration(getEnv("GENERATION_DELAY", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid GENERATION_DELAY: %w", err)
	}

	// Parse integers
	tone, err := strconv.Atoi(getEnv("DEFAULT_TONE", "50"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_TONE: %w", err)
	}
	cfg.DefaultTone = tone

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.DefaultTone < 0 || c.DefaultTone > 100 {
		return fmt.Errorf("DEFAULT_TONE must be between 0 and 100")
	}
	return nil
}

// ValidateForBackend checks configuration needed to call the remote
// generation backend.
func (c *Config) ValidateForBackend() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.BackendURL == "" {
		return fmt.Errorf("BACKEND_URL is required")
	}
	return nil
}

// ValidateForServe checks configuration needed for serve mode.
func (c *Config) ValidateForServe() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ServeAddr == "" {
		return fmt.Errorf("SERVE_ADDR is required")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
