package roster

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrRandRequired is returned by Find when a Random query has no Rand.
var ErrRandRequired = errors.New("random order requires a random source")

// Memory is an in-memory roster. It is read-only after construction and safe
// for concurrent use.
type Memory struct {
	players []Player // sorted by id
	average float64
}

// NewMemory builds a roster from players. Ids must be unique.
func NewMemory(players []Player) (*Memory, error) {
	sorted := make([]Player, len(players))
	copy(sorted, players)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	var sum float64
	for i, p := range sorted {
		if i > 0 && sorted[i-1].ID == p.ID {
			return nil, fmt.Errorf("duplicate player id %d", p.ID)
		}
		sum += p.Ranking
	}

	m := &Memory{players: sorted}
	if len(sorted) > 0 {
		m.average = sum / float64(len(sorted))
	}
	return m, nil
}

// Players returns a copy of the roster ordered by id.
func (m *Memory) Players() []Player {
	out := make([]Player, len(m.players))
	copy(out, m.players)
	return out
}

// Count implements Provider.
func (m *Memory) Count(context.Context) (int, error) {
	return len(m.players), nil
}

// AverageRanking implements Provider.
func (m *Memory) AverageRanking(context.Context) (float64, error) {
	return m.average, nil
}

// Find implements Provider.
func (m *Memory) Find(_ context.Context, q Query) (Player, bool, error) {
	if q.Order == Random && q.Rand == nil {
		return Player{}, false, ErrRandRequired
	}

	var (
		matches []Player
		best    Player
		found   bool
	)
	for _, p := range m.players {
		if !q.Matches(p) {
			continue
		}
		switch q.Order {
		case Random:
			matches = append(matches, p)
		case RankingAsc:
			// players are id-ordered, so strict comparison keeps the lowest id
			if !found || p.Ranking < best.Ranking {
				best, found = p, true
			}
		case RankingDesc:
			if !found || p.Ranking > best.Ranking {
				best, found = p, true
			}
		}
	}

	if q.Order == Random {
		if len(matches) == 0 {
			return Player{}, false, nil
		}
		return matches[q.Rand.IntN(len(matches))], true, nil
	}
	return best, found, nil
}

// Summary describes a roster for display.
type Summary struct {
	Players        int     `json:"players"`
	GoalieCapable  int     `json:"goalie_capable"`
	Goalies        int     `json:"goalies"`
	AverageRanking float64 `json:"average_ranking"`
}

// Describe implements Describer.
func (m *Memory) Describe(context.Context) (Summary, error) {
	s := Summary{Players: len(m.players), AverageRanking: m.average}
	for _, p := range m.players {
		if p.CanPlayGoalie {
			s.GoalieCapable++
		}
		if p.IsGoalie {
			s.Goalies++
		}
	}
	return s, nil
}
