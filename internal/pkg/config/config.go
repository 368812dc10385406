package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config defines runtime inputs for the client.
type Config struct {
	BaseURL        string        `env:"GREETUSER_BASE_URL" envDefault:"http://localhost:8080"`
	SessionDir     string        `env:"GREETUSER_SESSION_DIR"`
	RequestTimeout time.Duration `env:"GREETUSER_REQUEST_TIMEOUT" envDefault:"15s"`
	Environment    string        `env:"GREETUSER_ENV" envDefault:"development"`
	LogLevel       string        `env:"GREETUSER_LOG_LEVEL" envDefault:"info"`
}

// Load reads environment variables with sensible defaults for local use.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SessionDir == "" {
		cfg.SessionDir = defaultSessionDir()
	}
	return cfg, nil
}

func defaultSessionDir() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".cache", "greetuser")
	}
	return filepath.Join(os.TempDir(), "greetuser")
}
