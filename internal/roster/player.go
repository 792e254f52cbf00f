// Package roster holds the player pool the balancer draws from and the
// providers that serve it: an in-memory roster (file or generated) and a
// Postgres-backed roster in the postgres subpackage.
package roster

import "sort"

// Player is one eligible player. Providers return copies; the balancer never
// mutates them.
type Player struct {
	ID            int64   `json:"id" yaml:"id"`
	FullName      string  `json:"full_name" yaml:"full_name"`
	Ranking       float64 `json:"ranking" yaml:"ranking"`
	IsGoalie      bool    `json:"is_goalie" yaml:"is_goalie"`
	CanPlayGoalie bool    `json:"can_play_goalie" yaml:"can_play_goalie"`
}

// AssignedSet tracks the player ids already placed on a team during one
// balancing run. A fresh set must be created for every run.
type AssignedSet map[int64]struct{}

// NewAssignedSet returns an empty set sized for n players.
func NewAssignedSet(n int) AssignedSet {
	return make(AssignedSet, n)
}

// Add marks id as assigned.
func (s AssignedSet) Add(id int64) {
	s[id] = struct{}{}
}

// Has reports whether id has been assigned.
func (s AssignedSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of assigned ids.
func (s AssignedSet) Len() int {
	return len(s)
}

// IDs returns the assigned ids in ascending order.
func (s AssignedSet) IDs() []int64 {
	ids := make([]int64, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
