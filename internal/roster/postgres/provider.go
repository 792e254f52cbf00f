// Package postgres serves the roster from the users table through pgx. Only
// rows with user_type = 'player' are eligible.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/albapepper/rosterbalance/internal/config"
	"github.com/albapepper/rosterbalance/internal/db"
	"github.com/albapepper/rosterbalance/internal/roster"
)

const playerColumns = "id, full_name, ranking::float8, is_goalie, can_play_goalie"

// querier is the part of *pgxpool.Pool the provider uses.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// Provider implements roster.Source over a pgx pool.
type Provider struct {
	db     querier
	logger *slog.Logger
}

// New creates a Provider. The pool must have been created by db.New so the
// roster statements are prepared.
func New(pool *pgxpool.Pool, logger *slog.Logger) *Provider {
	return newProvider(pool, logger)
}

func newProvider(q querier, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{db: q, logger: logger}
}

// Count implements roster.Provider.
func (p *Provider) Count(ctx context.Context) (int, error) {
	var n int
	if err := p.db.QueryRow(ctx, db.StmtRosterCount).Scan(&n); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return n, nil
}

// AverageRanking implements roster.Provider.
func (p *Provider) AverageRanking(ctx context.Context) (float64, error) {
	var avg float64
	if err := p.db.QueryRow(ctx, db.StmtRosterAverage).Scan(&avg); err != nil {
		return 0, fmt.Errorf("average ranking: %w", err)
	}
	return avg, nil
}

// Describe implements roster.Describer.
func (p *Provider) Describe(ctx context.Context) (roster.Summary, error) {
	var s roster.Summary
	err := p.db.QueryRow(ctx, db.StmtRosterSummary).Scan(
		&s.Players, &s.GoalieCapable, &s.Goalies, &s.AverageRanking,
	)
	if err != nil {
		return roster.Summary{}, fmt.Errorf("roster summary: %w", err)
	}
	return s, nil
}

// Find implements roster.Provider. Random order counts the matches and picks
// an offset with q.Rand over id order, so a fixed seed and table give a fixed
// pick. Both statements run in one read-only REPEATABLE READ transaction so
// the offset always lands inside the counted set.
func (p *Provider) Find(ctx context.Context, q roster.Query) (roster.Player, bool, error) {
	where, args := whereClause(q)

	if q.Order == roster.Random {
		if q.Rand == nil {
			return roster.Player{}, false, roster.ErrRandRequired
		}
		return p.findRandom(ctx, where, args, q.Rand)
	}
	return scanPlayer(p.db.QueryRow(ctx, selectSQL(where, orderClause(q.Order)+" LIMIT 1"), args...))
}

func (p *Provider) findRandom(ctx context.Context, where string, args []any, rng *rand.Rand) (roster.Player, bool, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return roster.Player{}, false, fmt.Errorf("begin snapshot: %w", err)
	}
	defer tx.Rollback(ctx)

	var n int
	if err := tx.QueryRow(ctx, "SELECT count(*) FROM "+config.UsersTable+" WHERE "+where, args...).Scan(&n); err != nil {
		return roster.Player{}, false, fmt.Errorf("count candidates: %w", err)
	}
	if n == 0 {
		return roster.Player{}, false, nil
	}
	args = append(args, rng.IntN(n))
	return scanPlayer(tx.QueryRow(ctx, selectSQL(where, fmt.Sprintf("ORDER BY id OFFSET $%d LIMIT 1", len(args))), args...))
}

func scanPlayer(row pgx.Row) (roster.Player, bool, error) {
	var pl roster.Player
	err := row.Scan(&pl.ID, &pl.FullName, &pl.Ranking, &pl.IsGoalie, &pl.CanPlayGoalie)
	if errors.Is(err, pgx.ErrNoRows) {
		return roster.Player{}, false, nil
	}
	if err != nil {
		return roster.Player{}, false, fmt.Errorf("find player: %w", err)
	}
	return pl, true, nil
}

// whereClause builds the filter for q. $1 is always the excluded id array.
func whereClause(q roster.Query) (string, []any) {
	args := []any{q.Exclude.IDs()}
	conds := []string{
		"user_type = '" + config.PlayerType + "'",
		"id <> ALL($1::bigint[])",
	}

	if q.Ranking.Op != roster.Any {
		args = append(args, q.Ranking.Value)
		conds = append(conds, fmt.Sprintf("ranking::float8 %s $%d::float8", q.Ranking.Op, len(args)))
	}
	if q.GoalieOnly {
		conds = append(conds, "can_play_goalie")
	}
	return strings.Join(conds, " AND "), args
}

func orderClause(o roster.Order) string {
	switch o {
	case roster.RankingAsc:
		return "ORDER BY ranking ASC, id ASC"
	case roster.RankingDesc:
		return "ORDER BY ranking DESC, id ASC"
	default:
		return "ORDER BY id ASC"
	}
}

func selectSQL(where, tail string) string {
	return "SELECT " + playerColumns + " FROM " + config.UsersTable + " WHERE " + where + " " + tail
}
