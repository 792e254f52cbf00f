package balance

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTeamCount(t *testing.T) {
	tests := []struct {
		players int
		want    int
	}{
		{0, 0},
		{17, 0},
		{18, 2},
		{35, 2},
		{36, 2},
		{54, 4},
		{342, 20},
		{360, 20},
		{377, 20},
		{378, 22},
	}
	for _, tt := range tests {
		got := TeamCount(tt.players)
		require.Equal(t, tt.want, got, "players=%d", tt.players)
		require.Zero(t, got%2)
	}
}

func TestCheckRosterSize(t *testing.T) {
	tests := []struct {
		name    string
		players int
		strict  bool
		want    int
		wantErr bool
	}{
		{"empty", 0, false, 0, true},
		{"below one team", 17, false, 0, true},
		{"two small teams lenient", 20, false, 2, false},
		{"two small teams strict", 20, true, 0, true},
		{"exact minimum", 36, true, 2, false},
		{"oversized split", 53, true, 0, true},
		{"oversized split lenient", 53, false, 2, false},
		{"360 players", 360, true, 20, false},
		{"342 players strict", 342, true, 0, true},
		{"342 players lenient", 342, false, 20, false},
		{"22 per team", 440, true, 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckRosterSize(tt.players, tt.strict)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidRosterSize)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestBuildTeams(t *testing.T) {
	teams, err := BuildTeams(20, rand.New(rand.NewPCG(1, 1)), nil)
	require.NoError(t, err)
	require.Len(t, teams, 20)

	ids := make(map[string]bool)
	for _, team := range teams {
		require.Empty(t, team.Members)
		require.True(t, strings.HasPrefix(team.Name, "The "), team.Name)
		require.False(t, ids[team.ID])
		ids[team.ID] = true
	}

	again, err := BuildTeams(20, rand.New(rand.NewPCG(1, 1)), nil)
	require.NoError(t, err)
	require.Equal(t, teams, again, "same seed must give the same names and ids")
}

func TestBuildTeams_NameSourceMismatch(t *testing.T) {
	short := func(n int, _ *rand.Rand) []string { return []string{"Only One"} }

	_, err := BuildTeams(4, rand.New(rand.NewPCG(1, 1)), short)
	require.ErrorContains(t, err, "returned 1 names, want 4")
}

func TestFakerNames_Unique(t *testing.T) {
	names := FakerNames(200, rand.New(rand.NewPCG(3, 3)))
	require.Len(t, names, 200)

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		require.True(t, strings.HasPrefix(name, "The "), name)
		require.False(t, seen[name], "duplicate %q", name)
		seen[name] = true
	}
}

func TestRoman(t *testing.T) {
	require.Equal(t, "II", roman(2))
	require.Equal(t, "IV", roman(4))
	require.Equal(t, "IX", roman(9))
	require.Equal(t, "XIV", roman(14))
	require.Equal(t, "XL", roman(40))
}
