package balance

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/albapepper/rosterbalance/internal/roster"
)

// SeedGoalies gives each team, in order, one randomly drawn unassigned
// goalie-capable player as its first member and records the id in assigned.
func SeedGoalies(ctx context.Context, p roster.Provider, teams []*Team, assigned roster.AssignedSet, rng *rand.Rand) error {
	for i, t := range teams {
		player, ok, err := p.Find(ctx, roster.Query{
			GoalieOnly: true,
			Exclude:    assigned,
			Order:      roster.Random,
			Rand:       rng,
		})
		if err != nil {
			return fmt.Errorf("find goalie for team %d: %w", i+1, err)
		}
		if !ok {
			return fmt.Errorf("%w: no goalie-capable player left for team %d of %d (%s)",
				ErrPoolExhausted, i+1, len(teams), t.Name)
		}
		t.add(player, true)
		assigned.Add(player.ID)
	}
	return nil
}
