// Package report renders balancing results for the API and the CLI.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/albapepper/rosterbalance/internal/balance"
)

// Team is one team with its headline figures.
type Team struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Players        int              `json:"players"`
	AverageRanking float64          `json:"average_ranking"`
	Members        []balance.Member `json:"members"`
}

// Report is the JSON document for a balancing run.
type Report struct {
	Seed          uint64        `json:"seed"`
	GlobalAverage float64       `json:"global_average"`
	Spread        float64       `json:"spread"`
	Stats         balance.Stats `json:"stats"`
	Teams         []Team        `json:"teams"`
}

// FromResult builds a Report from a successful run.
func FromResult(res *balance.Result) Report {
	r := Report{
		Seed:          res.Seed,
		GlobalAverage: res.GlobalAverage,
		Spread:        res.Spread(),
		Stats:         res.Stats,
		Teams:         make([]Team, 0, len(res.Teams)),
	}
	for _, t := range res.Teams {
		r.Teams = append(r.Teams, Team{
			ID:             t.ID,
			Name:           t.Name,
			Players:        t.Size(),
			AverageRanking: t.Average(),
			Members:        t.Members,
		})
	}
	return r
}

// JSON marshals the report.
func (r Report) JSON() ([]byte, error) {
	return json.Marshal(r)
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

// WriteTables prints one table per team: name, player count and average,
// then Name | Ranking | Goalie rows.
func (r Report) WriteTables(w io.Writer) error {
	var b strings.Builder
	for i, t := range r.Teams {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(titleStyle.Render(t.Name))
		fmt.Fprintf(&b, "\nPlayers: %d  Average Ranking: %s\n", t.Players, formatRanking(t.AverageRanking))

		tbl := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("Name", "Ranking", "Goalie").
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})
		for _, m := range t.Members {
			goalie := ""
			if m.Goalie {
				goalie = "✓"
			}
			tbl.Row(m.Name, formatRanking(m.Ranking), goalie)
		}
		b.WriteString(tbl.Render())
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nseed=%d global_average=%s spread=%s passes=%d\n",
		r.Seed, formatRanking(r.GlobalAverage), formatRanking(r.Spread), r.Stats.Passes)

	_, err := io.WriteString(w, b.String())
	return err
}

func formatRanking(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
