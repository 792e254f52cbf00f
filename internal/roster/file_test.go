package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteAndLoadFile(t *testing.T) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "roster"+ext)
			require.NoError(t, WriteFile(path, samplePlayers()))

			m, err := LoadFile(path)
			require.NoError(t, err)
			require.Len(t, m.Players(), 5)
			require.Equal(t, Player{ID: 1, FullName: "Avery Diaz", Ranking: 40, CanPlayGoalie: true, IsGoalie: true}, m.Players()[0])
		})
	}
}

func TestLoadFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	doc := `players:
  - id: 10
    full_name: Jordan Reyes
    ranking: 72.5
    is_goalie: true
    can_play_goalie: true
  - id: 11
    full_name: Riley Park
    ranking: 41
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	m, err := LoadFile(path)
	require.NoError(t, err)
	summary, err := m.Describe(t.Context())
	require.NoError(t, err)
	require.Equal(t, Summary{Players: 2, GoalieCapable: 1, Goalies: 1, AverageRanking: 56.75}, summary)
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		return path
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "nope.json"), "read roster"},
		{"unknown extension", write("roster.csv", "id,name"), "unsupported roster format"},
		{"bad json", write("bad.json", "{"), "decode roster"},
		{"missing name", write("anon.json", `{"players":[{"id":1,"ranking":5}]}`), "full_name is required"},
		{"duplicate id", write("dup.json", `{"players":[{"id":1,"full_name":"A"},{"id":1,"full_name":"B"}]}`), "duplicate player id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(tt.path)
			require.ErrorContains(t, err, tt.want)
		})
	}
}
