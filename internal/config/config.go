// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/teambalance.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Table names: the roster lives in the users table, scoped to players
// --------------------------------------------------------------------------

const (
	UsersTable = "users"
	PlayerType = "player"
)

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Database
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Balancing
	BalanceMaxPasses int
	StrictRosterSize bool
	BalanceTrials    int
	BalanceWorkers   int
	BalanceMaxTrials int

	// Roster source: a file path, or the database when empty
	RosterFile string

	// Cache
	CacheEnabled bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:    envOr("DATABASE_URL", ""),
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		BalanceMaxPasses: envInt("BALANCE_MAX_PASSES", 1000),
		StrictRosterSize: envBool("BALANCE_STRICT_ROSTER_SIZE", true),
		BalanceTrials:    envInt("BALANCE_TRIALS", 1),
		BalanceWorkers:   envInt("BALANCE_WORKERS", 4),
		BalanceMaxTrials: envInt("BALANCE_MAX_TRIALS", 32),

		RosterFile: envOr("ROSTER_FILE", ""),

		CacheEnabled: envBool("CACHE_ENABLED", true),
	}

	if cfg.BalanceTrials < 1 {
		return nil, fmt.Errorf("BALANCE_TRIALS must be at least 1, got %d", cfg.BalanceTrials)
	}
	if cfg.BalanceWorkers < 1 {
		return nil, fmt.Errorf("BALANCE_WORKERS must be at least 1, got %d", cfg.BalanceWorkers)
	}
	return cfg, nil
}

// RequireDatabase returns an error when the roster must come from Postgres
// but no connection string is configured.
func (c *Config) RequireDatabase() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must be set when ROSTER_FILE is empty")
	}
	return nil
}

// UseDatabase reports whether the roster is read from Postgres.
func (c *Config) UseDatabase() bool {
	return c.RosterFile == ""
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
