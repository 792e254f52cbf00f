// Package listener provides a Postgres LISTEN/NOTIFY consumer for roster
// changes. It holds a dedicated pgx connection (not from the pool) listening
// on the `roster_changed` channel, and purges cached responses whenever the
// roster is rewritten so seeded balances are recomputed.
package listener

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
)

// Channel is the NOTIFY channel written by postgres.Provider.Upsert.
const Channel = "roster_changed"

const (
	reconnectBackoff = 5 * time.Second
	maxReconnect     = 30 * time.Second
)

// RosterEvent is the JSON payload from pg_notify('roster_changed', ...).
type RosterEvent struct {
	Players   int   `json:"players"`
	Timestamp int64 `json:"ts"`
}

// Purger drops cached state derived from the roster.
type Purger interface {
	Purge() int
}

// Start opens a dedicated connection and listens on the roster_changed
// channel. It reconnects automatically on connection loss. Blocks until ctx
// is cancelled. Intended to be called with `go`.
func Start(ctx context.Context, dbURL string, purger Purger, logger *slog.Logger) {
	backoff := reconnectBackoff

	for {
		err := listenLoop(ctx, dbURL, purger, logger)
		if ctx.Err() != nil {
			logger.Info("Roster listener stopped (context cancelled)")
			return
		}

		logger.Error("Roster listener disconnected, reconnecting...",
			"error", err, "backoff", backoff)

		select {
		case <-time.After(backoff):
			backoff = min(backoff*2, maxReconnect)
		case <-ctx.Done():
			return
		}
	}
}

// listenLoop runs a single listen session. Returns when the connection drops
// or the context is cancelled.
func listenLoop(ctx context.Context, dbURL string, purger Purger, logger *slog.Logger) error {
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+Channel); err != nil {
		return fmt.Errorf("LISTEN %s: %w", Channel, err)
	}
	logger.Info("Roster listener connected", "channel", Channel)

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}
		handle(notification.Payload, purger, logger)
	}
}

// handle purges the cache for one notification. A malformed payload still
// purges; the roster changed either way.
func handle(payload string, purger Purger, logger *slog.Logger) {
	var event RosterEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		logger.Warn("Failed to parse roster event", "payload", payload, "error", err)
	}
	purged := purger.Purge()
	logger.Info("Roster changed, cache purged",
		"players", event.Players,
		"purged_keys", purged)
}
