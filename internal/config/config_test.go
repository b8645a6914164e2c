package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "local", cfg.App.Env)
	require.Equal(t, ":8080", cfg.App.HTTPAddr)
	require.Equal(t, 24*time.Hour, cfg.Auth.JWTAccessTTL)
	require.Equal(t, "medilink-admin", cfg.Auth.JWTIssuer)
	require.Equal(t, "localhost", cfg.Postgres.Host)
	require.Equal(t, "5432", cfg.Postgres.Port)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	require.Equal(t, 30, cfg.RateLimit.LoginPerMinute)
	require.Equal(t, 90*24*time.Hour, cfg.Jobs.SearchHistoryRetention)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_ACCESS_TTL", "2h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("ENV", "prod")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 2*time.Hour, cfg.Auth.JWTAccessTTL)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	require.Equal(t, "prod", cfg.App.Env)
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("JWT_ACCESS_TTL", "soon")

	_, err := Load()
	require.Error(t, err)
}
