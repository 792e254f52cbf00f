package balance

import "github.com/albapepper/rosterbalance/internal/roster"

// Member is a player as placed on a team.
type Member struct {
	PlayerID int64   `json:"player_id"`
	Name     string  `json:"name"`
	Ranking  float64 `json:"ranking"`
	Goalie   bool    `json:"goalie"`
}

// Team is an ordered list of members. The seeded goalie is always first.
type Team struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Members []Member `json:"members"`
}

func (t *Team) add(p roster.Player, seededGoalie bool) {
	t.Members = append(t.Members, Member{
		PlayerID: p.ID,
		Name:     p.FullName,
		Ranking:  p.Ranking,
		Goalie:   p.IsGoalie || seededGoalie,
	})
}

// Size returns the number of members.
func (t *Team) Size() int {
	return len(t.Members)
}

// Sum returns the total ranking of all members.
func (t *Team) Sum() float64 {
	var sum float64
	for _, m := range t.Members {
		sum += m.Ranking
	}
	return sum
}

// Average returns the mean member ranking, or 0 for an empty team.
func (t *Team) Average() float64 {
	if len(t.Members) == 0 {
		return 0
	}
	return t.Sum() / float64(len(t.Members))
}

// HasGoalie reports whether any member is flagged as a goalie.
func (t *Team) HasGoalie() bool {
	for _, m := range t.Members {
		if m.Goalie {
			return true
		}
	}
	return false
}
