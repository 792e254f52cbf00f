// Package balance splits a roster into an even number of skill-balanced teams.
//
// A run has three phases that share one assigned-player set:
//
//  1. BuildTeams derives the team count from the pool size and names the teams.
//  2. SeedGoalies gives every team one goalie-capable player.
//  3. Distribute hands out the rest. Each team looks for a player ranked at
//     its own average, and otherwise takes the nearest player that pulls it
//     toward the pool's average.
//
// The result is best-effort: the loop is a greedy mean-matching heuristic, not
// an optimal assignment.
package balance

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"

	"github.com/albapepper/rosterbalance/internal/roster"
)

// Options configures a Balancer. The zero value is lenient about roster size;
// use DefaultOptions for the 18-22 check.
type Options struct {
	// Seed fixes the random source. Zero picks a random seed, reported in Result.
	Seed uint64
	// MaxPasses caps the balancing loop. Zero means DefaultMaxPasses.
	MaxPasses int
	// StrictRosterSize rejects pools whose even split is outside 18-22 per
	// team, caps teams at MaxTeamSize during the loop and fails any run that
	// still ends with a team outside that range.
	StrictRosterSize bool
	// Names generates team display names. Nil means FakerNames.
	Names  NameSource
	Logger *slog.Logger
}

// DefaultOptions returns the production settings.
func DefaultOptions() Options {
	return Options{
		MaxPasses:        DefaultMaxPasses,
		StrictRosterSize: true,
	}
}

// Result is the outcome of a successful run.
type Result struct {
	Teams         []*Team       `json:"teams"`
	Seed          uint64        `json:"seed"`
	GlobalAverage float64       `json:"global_average"`
	Stats         Stats         `json:"stats"`
	Duration      time.Duration `json:"-"`
}

// Players returns the number of players placed across all teams.
func (r *Result) Players() int {
	n := 0
	for _, t := range r.Teams {
		n += t.Size()
	}
	return n
}

// Spread returns the gap between the highest and lowest team average.
func (r *Result) Spread() float64 {
	if len(r.Teams) == 0 {
		return 0
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, t := range r.Teams {
		avg := t.Average()
		lo = min(lo, avg)
		hi = max(hi, avg)
	}
	return hi - lo
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"teams=%d players=%d avg=%.2f spread=%.2f passes=%d exact=%d fallback=%d catch_up=%d skips=%d seed=%d dur=%s",
		len(r.Teams), r.Players(), r.GlobalAverage, r.Spread(),
		r.Stats.Passes, r.Stats.ExactMatches, r.Stats.Fallbacks, r.Stats.CatchUps, r.Stats.Skips,
		r.Seed, r.Duration.Round(time.Millisecond),
	)
}

// CheckTeamSizes returns ErrTeamSizeOutOfRange for the first team whose size
// is outside [MinTeamSize, MaxTeamSize].
func CheckTeamSizes(teams []*Team) error {
	for i, t := range teams {
		if n := t.Size(); n < MinTeamSize || n > MaxTeamSize {
			return fmt.Errorf("%w: team %d (%s) has %d players, want %d-%d",
				ErrTeamSizeOutOfRange, i+1, t.Name, n, MinTeamSize, MaxTeamSize)
		}
	}
	return nil
}

// Balancer runs balancing against one roster provider. It holds no per-run
// state, so one Balancer may serve concurrent runs.
type Balancer struct {
	provider roster.Provider
	opts     Options
	logger   *slog.Logger
}

// New creates a Balancer over provider.
func New(provider roster.Provider, opts Options) *Balancer {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Balancer{provider: provider, opts: opts, logger: logger}
}

// Balance runs Builder, Seeder and Loop with a fresh assigned set. On failure
// no teams are returned.
func (b *Balancer) Balance(ctx context.Context) (*Result, error) {
	start := time.Now()

	seed := b.opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	total, err := b.provider.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count players: %w", err)
	}

	teamCount, err := CheckRosterSize(total, b.opts.StrictRosterSize)
	if err != nil {
		return nil, fmt.Errorf("build teams: %w", err)
	}
	teams, err := BuildTeams(teamCount, rng, b.opts.Names)
	if err != nil {
		return nil, fmt.Errorf("build teams: %w", err)
	}
	b.logger.Debug("Teams built", "players", total, "teams", teamCount, "seed", seed)

	assigned := roster.NewAssignedSet(total)
	if err := SeedGoalies(ctx, b.provider, teams, assigned, rng); err != nil {
		return nil, fmt.Errorf("seed goalies: %w", err)
	}

	globalAverage, err := b.provider.AverageRanking(ctx)
	if err != nil {
		return nil, fmt.Errorf("average ranking: %w", err)
	}

	loop := LoopConfig{
		Total:         total,
		GlobalAverage: globalAverage,
		MaxPasses:     b.opts.MaxPasses,
		Rand:          rng,
		Logger:        b.logger,
	}
	if b.opts.StrictRosterSize {
		loop.MaxTeamSize = MaxTeamSize
	}
	stats, err := Distribute(ctx, b.provider, teams, assigned, loop)
	if err != nil {
		return nil, fmt.Errorf("balance loop: %w", err)
	}
	if b.opts.StrictRosterSize {
		if err := CheckTeamSizes(teams); err != nil {
			return nil, fmt.Errorf("check team sizes: %w", err)
		}
	}

	res := &Result{
		Teams:         teams,
		Seed:          seed,
		GlobalAverage: globalAverage,
		Stats:         stats,
		Duration:      time.Since(start),
	}
	b.logger.Info("Balance complete", "summary", res.Summary())
	return res, nil
}
