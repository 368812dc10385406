package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080", cfg.BaseURL)
	require.Equal(t, 15*time.Second, cfg.RequestTimeout)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, "info", cfg.LogLevel)
	require.NotEmpty(t, cfg.SessionDir)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GREETUSER_BASE_URL", "http://api.example.com")
	t.Setenv("GREETUSER_SESSION_DIR", "/tmp/greetuser-test")
	t.Setenv("GREETUSER_REQUEST_TIMEOUT", "3s")
	t.Setenv("GREETUSER_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://api.example.com", cfg.BaseURL)
	require.Equal(t, "/tmp/greetuser-test", cfg.SessionDir)
	require.Equal(t, 3*time.Second, cfg.RequestTimeout)
	require.Equal(t, "production", cfg.Environment)
}
