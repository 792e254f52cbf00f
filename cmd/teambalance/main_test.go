package main

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	info := newLogger(&buf, false)
	require.False(t, info.Enabled(context.Background(), slog.LevelDebug))
	info.Debug("Balancing pass complete", "pass", 1)
	require.Empty(t, buf.String())

	debug := newLogger(&buf, true)
	require.True(t, debug.Enabled(context.Background(), slog.LevelDebug))
	debug.Debug("Balancing pass complete", "pass", 1)
	require.Contains(t, buf.String(), "level=DEBUG")
	require.Contains(t, buf.String(), "pass=1")
}

func TestLoadConfig_Debug(t *testing.T) {
	saved := logger
	t.Cleanup(func() { logger = saved })

	t.Setenv("DEBUG", "true")
	cfg, err := loadConfig()
	require.NoError(t, err)
	require.True(t, cfg.Debug)
	require.True(t, logger.Enabled(context.Background(), slog.LevelDebug))

	t.Setenv("DEBUG", "false")
	_, err = loadConfig()
	require.NoError(t, err)
	require.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestLoadConfig_Invalid(t *testing.T) {
	saved := logger
	t.Cleanup(func() { logger = saved })

	t.Setenv("BALANCE_WORKERS", "0")
	_, err := loadConfig()
	require.ErrorContains(t, err, "load config")
}
