package roster

import (
	"context"
	"math/rand/v2"
)

// Provider is the read capability the balancer needs from a roster.
type Provider interface {
	// Count returns the number of eligible players.
	Count(ctx context.Context) (int, error)
	// AverageRanking returns the mean ranking of all eligible players.
	AverageRanking(ctx context.Context) (float64, error)
	// Find returns the first player matching q, or false if none does.
	Find(ctx context.Context, q Query) (Player, bool, error)
}

// Describer reports roster-wide counts.
type Describer interface {
	Describe(ctx context.Context) (Summary, error)
}

// Source is a Provider that can also describe itself.
type Source interface {
	Provider
	Describer
}

// Op is a ranking comparison operator.
type Op int

const (
	// Any applies no ranking filter.
	Any Op = iota
	// Equal matches Ranking == Value.
	Equal
	// Below matches Ranking < Value.
	Below
	// Above matches Ranking > Value.
	Above
)

func (o Op) String() string {
	switch o {
	case Equal:
		return "="
	case Below:
		return "<"
	case Above:
		return ">"
	default:
		return "any"
	}
}

// Comparison filters players by ranking.
type Comparison struct {
	Op    Op
	Value float64
}

// Match reports whether ranking satisfies the comparison.
func (c Comparison) Match(ranking float64) bool {
	switch c.Op {
	case Equal:
		return ranking == c.Value
	case Below:
		return ranking < c.Value
	case Above:
		return ranking > c.Value
	default:
		return true
	}
}

// Order selects which of several matching players Find returns.
type Order int

const (
	// Random picks uniformly among matches using Query.Rand.
	Random Order = iota
	// RankingAsc picks the lowest ranking, lowest id on ties.
	RankingAsc
	// RankingDesc picks the highest ranking, lowest id on ties.
	RankingDesc
)

// Query describes one player lookup.
type Query struct {
	Ranking    Comparison
	GoalieOnly bool
	Exclude    AssignedSet
	Order      Order
	// Rand is required when Order is Random.
	Rand *rand.Rand
}

// Matches reports whether p passes the query's filters.
func (q Query) Matches(p Player) bool {
	if q.Exclude.Has(p.ID) {
		return false
	}
	if q.GoalieOnly && !p.CanPlayGoalie {
		return false
	}
	return q.Ranking.Match(p.Ranking)
}
