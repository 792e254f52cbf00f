package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/albapepper/rosterbalance/internal/balance"
)

func sampleResult() *balance.Result {
	return &balance.Result{
		Seed:          42,
		GlobalAverage: 50,
		Stats:         balance.Stats{Passes: 1, ExactMatches: 2},
		Teams: []*balance.Team{
			{ID: "a", Name: "The Port Mikeland Architects", Members: []balance.Member{
				{PlayerID: 1, Name: "Avery Diaz", Ranking: 48, Goalie: true},
				{PlayerID: 3, Name: "Casey Moss", Ranking: 52},
			}},
			{ID: "b", Name: "The North Leeside Plumbers", Members: []balance.Member{
				{PlayerID: 2, Name: "Blake Hart", Ranking: 51, Goalie: true},
				{PlayerID: 4, Name: "Dana Cole", Ranking: 50},
			}},
		},
	}
}

func TestFromResult(t *testing.T) {
	r := FromResult(sampleResult())

	require.Equal(t, uint64(42), r.Seed)
	require.InDelta(t, 0.5, r.Spread, 1e-9)
	require.Len(t, r.Teams, 2)
	require.Equal(t, 2, r.Teams[0].Players)
	require.InDelta(t, 50.0, r.Teams[0].AverageRanking, 1e-9)
	require.InDelta(t, 50.5, r.Teams[1].AverageRanking, 1e-9)

	data, err := r.JSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	teams := decoded["teams"].([]any)
	first := teams[0].(map[string]any)
	require.Equal(t, "The Port Mikeland Architects", first["name"])
	member := first["members"].([]any)[0].(map[string]any)
	require.Equal(t, map[string]any{"player_id": 1.0, "name": "Avery Diaz", "ranking": 48.0, "goalie": true}, member)
}

func TestWriteTables(t *testing.T) {
	var b strings.Builder
	require.NoError(t, FromResult(sampleResult()).WriteTables(&b))
	out := b.String()

	require.Contains(t, out, "The Port Mikeland Architects")
	require.Contains(t, out, "Players: 2  Average Ranking: 50")
	require.Contains(t, out, "Average Ranking: 50.5")
	require.Contains(t, out, "Avery Diaz")
	require.Contains(t, out, "✓")
	require.Contains(t, out, "seed=42 global_average=50 spread=0.5 passes=1")
}
