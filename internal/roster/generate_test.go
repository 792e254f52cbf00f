package roster

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	opts := GenerateOptions{
		Players:       360,
		GoalieCapable: 40,
		Goalies:       20,
		MinRanking:    1,
		MaxRanking:    100,
		Seed:          42,
	}
	players, err := Generate(opts)
	require.NoError(t, err)
	require.Len(t, players, 360)

	var capable, goalies int
	for i, p := range players {
		require.Equal(t, int64(i+1), p.ID)
		require.NotEmpty(t, p.FullName)
		require.GreaterOrEqual(t, p.Ranking, 1.0)
		require.LessOrEqual(t, p.Ranking, 100.0)
		if p.CanPlayGoalie {
			capable++
		}
		if p.IsGoalie {
			require.True(t, p.CanPlayGoalie)
			goalies++
		}
	}
	require.Equal(t, 40, capable)
	require.Equal(t, 20, goalies)

	again, err := Generate(opts)
	require.NoError(t, err)
	require.Equal(t, players, again)
}

func TestGenerate_Invalid(t *testing.T) {
	tests := []struct {
		name string
		opts GenerateOptions
		want string
	}{
		{"no players", GenerateOptions{}, "players must be positive"},
		{"too many goalie-capable", GenerateOptions{Players: 5, GoalieCapable: 6}, "goalie-capable count"},
		{"goalies exceed capable", GenerateOptions{Players: 5, GoalieCapable: 2, Goalies: 3}, "goalie count"},
		{"inverted rankings", GenerateOptions{Players: 5, MinRanking: 10, MaxRanking: 1}, "min ranking"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.opts)
			require.ErrorContains(t, err, tt.want)
		})
	}
}
