package balance

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/albapepper/rosterbalance/internal/roster"
)

// DefaultMaxPasses bounds the balancing loop when Options.MaxPasses is unset.
const DefaultMaxPasses = 1000

// Stats counts what the balancing loop did.
type Stats struct {
	Passes       int `json:"passes"`
	ExactMatches int `json:"exact_matches"`
	Fallbacks    int `json:"fallbacks"`
	CatchUps     int `json:"catch_ups"`
	Skips        int `json:"skips"`
}

// LoopConfig is the input to Distribute that stays fixed across passes.
type LoopConfig struct {
	Total         int     // eligible players in the pool
	GlobalAverage float64 // computed once over the whole pool
	MaxPasses     int
	// MaxTeamSize, when set, marks teams of that size as full and lets a
	// team with no candidate on its side take the nearest player on the
	// other side, so team sizes never drift more than one apart.
	MaxTeamSize int
	Rand        *rand.Rand
	Logger      *slog.Logger
}

type pickKind int

const (
	pickNone pickKind = iota
	pickExact
	pickFallback
	pickCatchUp
)

// Distribute assigns the remaining players pass by pass. In each pass every
// team, in order, looks for a player ranked at its target (see TargetRanking);
// failing an exact match it takes the nearest player on the side that moves
// its average toward the global one. A team with no candidate is skipped for
// the pass unless cfg.MaxTeamSize is set.
func Distribute(ctx context.Context, p roster.Provider, teams []*Team, assigned roster.AssignedSet, cfg LoopConfig) (Stats, error) {
	var stats Stats
	if cfg.MaxPasses <= 0 {
		cfg.MaxPasses = DefaultMaxPasses
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	for assigned.Len() < cfg.Total {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if stats.Passes >= cfg.MaxPasses {
			return stats, fmt.Errorf("%w: %d players unassigned after %d passes",
				ErrBalancingStalled, cfg.Total-assigned.Len(), stats.Passes)
		}
		stats.Passes++

		placed := 0
		for _, t := range teams {
			if assigned.Len() >= cfg.Total {
				break
			}
			if cfg.MaxTeamSize > 0 && t.Size() >= cfg.MaxTeamSize {
				stats.Skips++
				continue
			}
			player, kind, err := nextPlayer(ctx, p, t, assigned, cfg.GlobalAverage, cfg.MaxTeamSize > 0, cfg.Rand)
			if err != nil {
				return stats, fmt.Errorf("pass %d, team %q: %w", stats.Passes, t.Name, err)
			}
			switch kind {
			case pickExact:
				stats.ExactMatches++
			case pickFallback:
				stats.Fallbacks++
			case pickCatchUp:
				stats.CatchUps++
			default:
				stats.Skips++
				continue
			}
			t.add(player, false)
			assigned.Add(player.ID)
			placed++
		}

		cfg.Logger.Debug("Balancing pass complete",
			"pass", stats.Passes, "placed", placed,
			"remaining", cfg.Total-assigned.Len())

		// Nothing changed, so every later pass would repeat this one.
		if placed == 0 && assigned.Len() < cfg.Total {
			return stats, fmt.Errorf("%w: no team could take any of the %d remaining players (pass %d)",
				ErrBalancingStalled, cfg.Total-assigned.Len(), stats.Passes)
		}
	}
	return stats, nil
}

// TargetRanking returns round(currentAverage*(size+1) - sum), rounded half
// away from zero. With the team's own average this is the ranking that keeps
// the average where it is; the pull toward the global average comes from the
// fallback pick.
func TargetRanking(currentAverage float64, size int, sum float64) float64 {
	return math.Round(currentAverage*float64(size+1) - sum)
}

func nextPlayer(ctx context.Context, p roster.Provider, t *Team, assigned roster.AssignedSet, globalAverage float64, catchUp bool, rng *rand.Rand) (roster.Player, pickKind, error) {
	current := t.Average()
	target := TargetRanking(current, t.Size(), t.Sum())

	player, ok, err := p.Find(ctx, roster.Query{
		Ranking: roster.Comparison{Op: roster.Equal, Value: target},
		Exclude: assigned,
		Order:   roster.Random,
		Rand:    rng,
	})
	if err != nil {
		return roster.Player{}, pickNone, fmt.Errorf("exact match for %v: %w", target, err)
	}
	if ok {
		return player, pickExact, nil
	}

	// Pull the average down with the highest ranking below it, or up with the
	// lowest ranking above it.
	q := roster.Query{Exclude: assigned}
	if current >= globalAverage {
		q.Ranking = roster.Comparison{Op: roster.Below, Value: current}
		q.Order = roster.RankingDesc
	} else {
		q.Ranking = roster.Comparison{Op: roster.Above, Value: current}
		q.Order = roster.RankingAsc
	}
	player, ok, err = p.Find(ctx, q)
	if err != nil {
		return roster.Player{}, pickNone, fmt.Errorf("nearest %s %v: %w", q.Ranking.Op, current, err)
	}
	if ok {
		return player, pickFallback, nil
	}
	if !catchUp {
		return roster.Player{}, pickNone, nil
	}

	// Nobody is left on the preferred side, so everyone remaining sits on the
	// other one; take whoever is closest to the current average.
	q = roster.Query{Exclude: assigned, Order: roster.RankingAsc}
	if current < globalAverage {
		q.Order = roster.RankingDesc
	}
	player, ok, err = p.Find(ctx, q)
	if err != nil {
		return roster.Player{}, pickNone, fmt.Errorf("catch-up pick: %w", err)
	}
	if !ok {
		return roster.Player{}, pickNone, nil
	}
	return player, pickCatchUp, nil
}
