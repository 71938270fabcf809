package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/harborline/portal/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.New()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.GetPort())
	require.Equal(t, "Harborline Portal", cfg.GetAppName())
	require.Equal(t, "./data/session.json", cfg.GetSessionFile())
	require.Equal(t, "./data/principals.json", cfg.GetPrincipalsFile())
	require.Equal(t, 800*time.Millisecond, cfg.GetLoginLatency())
	require.Equal(t, 5*time.Minute, cfg.GetPrincipalCacheTTL())
	require.Empty(t, cfg.GetRedisAddr())
}

func TestPortGetsColonPrefix(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := config.New()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.GetPort())
}

func TestExplicitFilesWin(t *testing.T) {
	t.Setenv("SESSION_FILE", "/var/lib/portal/session.json")
	t.Setenv("PRINCIPALS_FILE", "/var/lib/portal/principals.json")

	cfg, err := config.New()
	require.NoError(t, err)
	require.Equal(t, "/var/lib/portal/session.json", cfg.GetSessionFile())
	require.Equal(t, "/var/lib/portal/principals.json", cfg.GetPrincipalsFile())
}

func TestAllowedOrigins(t *testing.T) {
	t.Setenv("ALLOWED_ORIGINS", "https://portal.acme.com, https://portal.nordic-supply.se")

	cfg, err := config.New()
	require.NoError(t, err)

	origins := cfg.GetAllowedOrigins()
	require.True(t, origins.IsAllowedOrigin("https://portal.acme.com"))
	require.True(t, origins.IsAllowedOrigin("https://portal.nordic-supply.se"))
	require.False(t, origins.IsAllowedOrigin("https://evil.example.com"))
}

func TestLoginLatencyOverride(t *testing.T) {
	t.Setenv("LOGIN_LATENCY", "10ms")

	cfg, err := config.New()
	require.NoError(t, err)
	require.Equal(t, 10*time.Millisecond, cfg.GetLoginLatency())
}
