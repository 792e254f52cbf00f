package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/albapepper/rosterbalance/internal/config"
	"github.com/albapepper/rosterbalance/internal/listener"
	"github.com/albapepper/rosterbalance/internal/roster"
)

var upsertPlayerSQL = `
	INSERT INTO ` + config.UsersTable + ` (
		id, full_name, ranking, is_goalie, can_play_goalie, user_type
	) VALUES ($1, $2, $3, $4, $5, '` + config.PlayerType + `')
	ON CONFLICT (id) DO UPDATE SET
		full_name = EXCLUDED.full_name,
		ranking = EXCLUDED.ranking,
		is_goalie = EXCLUDED.is_goalie,
		can_play_goalie = EXCLUDED.can_play_goalie,
		user_type = EXCLUDED.user_type`

// Upsert writes players to the users table in one batch and returns how many
// rows were written before the first failure. A successful batch ends with a
// roster_changed notification so running API servers drop cached balances.
func (p *Provider) Upsert(ctx context.Context, players []roster.Player) (int, error) {
	batch := &pgx.Batch{}
	for _, pl := range players {
		batch.Queue(upsertPlayerSQL, pl.ID, pl.FullName, pl.Ranking, pl.IsGoalie, pl.CanPlayGoalie)
	}
	payload := fmt.Sprintf(`{"players":%d,"ts":%d}`, len(players), time.Now().Unix())
	batch.Queue("SELECT pg_notify($1, $2)", listener.Channel, payload)

	br := p.db.SendBatch(ctx, batch)
	defer br.Close()

	for i, pl := range players {
		if _, err := br.Exec(); err != nil {
			return i, fmt.Errorf("upsert player %d: %w", pl.ID, err)
		}
	}
	if _, err := br.Exec(); err != nil {
		return len(players), fmt.Errorf("notify %s: %w", listener.Channel, err)
	}
	p.logger.Info("Roster imported", "players", len(players))
	return len(players), nil
}
