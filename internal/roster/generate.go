package roster

import (
	"fmt"
	"math/rand/v2"

	"github.com/brianvoe/gofakeit/v7"
)

// GenerateOptions controls a synthetic roster.
type GenerateOptions struct {
	Players       int
	GoalieCapable int // players flagged can_play_goalie
	Goalies       int // subset of GoalieCapable also flagged is_goalie
	MinRanking    int
	MaxRanking    int
	Seed          uint64
}

// Generate builds a synthetic roster with fake names and uniform integer
// rankings. Ids run from 1 to Players.
func Generate(opts GenerateOptions) ([]Player, error) {
	switch {
	case opts.Players <= 0:
		return nil, fmt.Errorf("players must be positive, got %d", opts.Players)
	case opts.GoalieCapable < 0 || opts.GoalieCapable > opts.Players:
		return nil, fmt.Errorf("goalie-capable count %d out of range [0,%d]", opts.GoalieCapable, opts.Players)
	case opts.Goalies < 0 || opts.Goalies > opts.GoalieCapable:
		return nil, fmt.Errorf("goalie count %d out of range [0,%d]", opts.Goalies, opts.GoalieCapable)
	case opts.MinRanking > opts.MaxRanking:
		return nil, fmt.Errorf("min ranking %d above max ranking %d", opts.MinRanking, opts.MaxRanking)
	}

	faker := gofakeit.New(opts.Seed)
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	players := make([]Player, opts.Players)
	for i := range players {
		players[i] = Player{
			ID:       int64(i + 1),
			FullName: faker.Name(),
			Ranking:  float64(faker.IntRange(opts.MinRanking, opts.MaxRanking)),
		}
	}

	// The first GoalieCapable indices of a permutation can play goalie; the
	// first Goalies of those are regular goalies.
	for n, idx := range rng.Perm(opts.Players)[:opts.GoalieCapable] {
		players[idx].CanPlayGoalie = true
		players[idx].IsGoalie = n < opts.Goalies
	}
	return players, nil
}
