package balance

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

// Team size bounds for a fully distributed roster.
const (
	MinTeamSize = 18
	MaxTeamSize = 22
)

// TeamCount returns floor(n/MinTeamSize), rounded up to the next even number.
// Teams are scheduled in pairs, so the count must be even.
func TeamCount(n int) int {
	count := n / MinTeamSize
	if count%2 != 0 {
		count++
	}
	return count
}

// CheckRosterSize returns the team count for n players, or
// ErrInvalidRosterSize when no team can be formed. In strict mode it also
// rejects pools whose even split falls outside [MinTeamSize, MaxTeamSize].
func CheckRosterSize(n int, strict bool) (int, error) {
	teams := TeamCount(n)
	if teams == 0 {
		return 0, fmt.Errorf("%w: %d players cannot fill a team of %d", ErrInvalidRosterSize, n, MinTeamSize)
	}
	if strict {
		smallest := n / teams
		largest := (n + teams - 1) / teams
		if smallest < MinTeamSize || largest > MaxTeamSize {
			return 0, fmt.Errorf("%w: %d players over %d teams gives %d-%d per team, want %d-%d",
				ErrInvalidRosterSize, n, teams, smallest, largest, MinTeamSize, MaxTeamSize)
		}
	}
	return teams, nil
}

// BuildTeams creates count empty teams with generated names and ids. Ids are
// drawn from rng so a fixed seed reproduces them.
func BuildTeams(count int, rng *rand.Rand, names NameSource) ([]*Team, error) {
	if names == nil {
		names = FakerNames
	}

	var key [32]byte
	for i := 0; i < len(key); i += 8 {
		binary.LittleEndian.PutUint64(key[i:], rng.Uint64())
	}
	idSource := rand.NewChaCha8(key)

	labels := names(count, rng)
	if len(labels) != count {
		return nil, fmt.Errorf("name source returned %d names, want %d", len(labels), count)
	}

	teams := make([]*Team, count)
	for i := range teams {
		id, err := uuid.NewRandomFromReader(idSource)
		if err != nil {
			return nil, fmt.Errorf("team id: %w", err)
		}
		teams[i] = &Team{
			ID:      id.String(),
			Name:    labels[i],
			Members: make([]Member, 0, MaxTeamSize),
		}
	}
	return teams, nil
}
