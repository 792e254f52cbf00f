package balance

import "errors"

// Sentinel errors returned by a balancing run. They are wrapped with the phase
// that failed; match with errors.Is.
var (
	// ErrInvalidRosterSize is returned when the eligible pool cannot form an
	// even number of teams within the allowed team size.
	ErrInvalidRosterSize = errors.New("invalid roster size")

	// ErrPoolExhausted is returned when seeding finds no goalie-capable player
	// left for a team.
	ErrPoolExhausted = errors.New("player pool exhausted")

	// ErrBalancingStalled is returned when a pass places nobody while players
	// remain, or the pass limit is reached.
	ErrBalancingStalled = errors.New("balancing stalled")

	// ErrTeamSizeOutOfRange is returned in strict mode when a finished run
	// leaves a team outside [MinTeamSize, MaxTeamSize].
	ErrTeamSizeOutOfRange = errors.New("team size out of range")
)
