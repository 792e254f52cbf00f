package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"DATABASE_URL", "API_PORT", "PORT", "ENVIRONMENT", "ROSTER_FILE",
		"BALANCE_MAX_PASSES", "BALANCE_STRICT_ROSTER_SIZE", "BALANCE_TRIALS",
		"BALANCE_WORKERS", "RATE_LIMIT_WINDOW", "CORS_ALLOW_ORIGINS", "DB_POOL_MAX_CONNS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 8000, cfg.APIPort)
	require.Equal(t, "development", cfg.Environment)
	require.True(t, cfg.StrictRosterSize)
	require.Equal(t, 1000, cfg.BalanceMaxPasses)
	require.Equal(t, 1, cfg.BalanceTrials)
	require.Equal(t, 60*time.Second, cfg.RateLimitWindow)
	require.True(t, cfg.UseDatabase())
	require.False(t, cfg.IsProduction())
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/league")
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("BALANCE_STRICT_ROSTER_SIZE", "false")
	t.Setenv("BALANCE_TRIALS", "8")
	t.Setenv("ROSTER_FILE", "roster.yaml")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("DB_POOL_MAX_CONNS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.APIPort)
	require.True(t, cfg.IsProduction())
	require.False(t, cfg.StrictRosterSize)
	require.Equal(t, 8, cfg.BalanceTrials)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
	require.Equal(t, 10, cfg.DBPoolMaxConns, "invalid ints fall back to the default")
	require.False(t, cfg.UseDatabase())
	require.NoError(t, cfg.RequireDatabase())
}

func TestLoad_InvalidTrials(t *testing.T) {
	clearEnv(t)
	t.Setenv("BALANCE_TRIALS", "0")
	_, err := Load()
	require.ErrorContains(t, err, "BALANCE_TRIALS")
}

func TestRequireDatabase(t *testing.T) {
	cfg := &Config{}
	require.ErrorContains(t, cfg.RequireDatabase(), "DATABASE_URL")
}
