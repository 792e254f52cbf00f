package balance

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"

	"github.com/albapepper/rosterbalance/internal/roster"
)

// BestOf runs trials independent balances on up to workers goroutines and
// returns the successful one with the smallest Spread. Trial i uses seed
// opts.Seed+i, skipping zero. It fails only when every trial fails.
func BestOf(ctx context.Context, p roster.Provider, opts Options, trials, workers int) (*Result, error) {
	if trials <= 1 {
		return New(p, opts).Balance(ctx)
	}
	if workers < 1 {
		workers = 1
	}

	base := opts.Seed
	for base == 0 {
		base = rand.Uint64()
	}

	results := make([]*Result, trials)
	errs := make([]error, trials)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range trials {
		trialOpts := opts
		trialOpts.Seed = trialSeed(base, i)
		g.Go(func() error {
			results[i], errs[i] = New(p, trialOpts).Balance(ctx)
			return nil
		})
	}
	_ = g.Wait()

	var best *Result
	for _, r := range results {
		if r != nil && (best == nil || r.Spread() < best.Spread()) {
			best = r
		}
	}
	if best == nil {
		return nil, fmt.Errorf("all %d trials failed: %w", trials, errors.Join(errs...))
	}
	return best, nil
}

// trialSeed returns base+i. A sequence that wraps past the top of uint64
// continues at 1, since a zero seed would make Balance pick its own.
func trialSeed(base uint64, i int) uint64 {
	seed := base + uint64(i)
	if seed < base {
		seed++
	}
	return seed
}
