// Package db provides a pgxpool-based connection pool with prepared statement
// registration and health checking.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albapepper/rosterbalance/internal/config"
)

// Prepared statement names.
const (
	StmtHealthCheck   = "health_check"
	StmtRosterCount   = "roster_count"
	StmtRosterAverage = "roster_average"
	StmtRosterSummary = "roster_summary"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, StmtHealthCheck).Scan(&n)
}

// PreparedStatements returns the statements registered on every connection.
// The eligible roster is every users row with user_type = 'player'.
func PreparedStatements() map[string]string {
	scope := " FROM " + config.UsersTable + " WHERE user_type = '" + config.PlayerType + "'"
	return map[string]string{
		StmtHealthCheck: "SELECT 1",

		// Roster aggregates
		StmtRosterCount:   "SELECT count(*)" + scope,
		StmtRosterAverage: "SELECT COALESCE(avg(ranking), 0)::float8" + scope,
		StmtRosterSummary: "SELECT count(*), count(*) FILTER (WHERE can_play_goalie), " +
			"count(*) FILTER (WHERE is_goalie), COALESCE(avg(ranking), 0)::float8" + scope,
	}
}

func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	for name, sql := range PreparedStatements() {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
