// Package historian persists finished games and their event logs to
// Postgres. The engine hands over a complete, ordered event log; the
// historian is the external writer the engine knows nothing about.
package historian

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/openmonopoly/monopoly-server-go/internal/game"
)

// Historian writes game history through a pgx connection pool.
type Historian struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// New connects to the database at url. logger may be nil.
func New(ctx context.Context, url string, logger *zap.Logger) (*Historian, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &Historian{pool: pool, logger: logger}, nil
}

// Close releases the connection pool.
func (h *Historian) Close() {
	h.pool.Close()
}

// EnsureSchema creates the history tables if they do not exist.
func (h *Historian) EnsureSchema(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS games (
			id UUID PRIMARY KEY,
			seed BIGINT NOT NULL,
			players TEXT[] NOT NULL,
			winner INT,
			turns INT NOT NULL,
			finished BOOL NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS game_events (
			game_id UUID NOT NULL REFERENCES games(id),
			seq INT NOT NULL,
			event_type TEXT NOT NULL,
			player_id INT,
			details JSONB,
			PRIMARY KEY (game_id, seq)
		);
	`
	if _, err := h.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// RecordGame stores a finished game and its full event log in one
// transaction.
func (h *Historian) RecordGame(ctx context.Context, gameID uuid.UUID, g *game.GameState, playerNames []string) error {
	events := g.Events.Events()

	err := pgx.BeginTxFunc(ctx, h.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
		const insertGame = `
			INSERT INTO games (id, seed, players, winner, turns, finished)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE SET winner=$4, turns=$5, finished=$6
		`
		winner := any(nil)
		if g.Winner != game.NoPlayer {
			winner = g.Winner
		}
		if _, err := tx.Exec(ctx, insertGame, gameID, g.Seed, playerNames, winner, g.TurnNumber, g.GameOver); err != nil {
			return err
		}

		batch := &pgx.Batch{}
		const insertEvent = `
			INSERT INTO game_events (game_id, seq, event_type, player_id, details)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (game_id, seq) DO NOTHING
		`
		for _, ev := range events {
			details, err := json.Marshal(ev.Details)
			if err != nil {
				return fmt.Errorf("marshaling event %d details: %w", ev.Seq, err)
			}
			playerID := any(nil)
			if ev.PlayerID != game.NoPlayer {
				playerID = ev.PlayerID
			}
			batch.Queue(insertEvent, gameID, ev.Seq, string(ev.Type), playerID, details)
		}
		return tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return fmt.Errorf("recording game %s: %w", gameID, err)
	}

	if h.logger != nil {
		h.logger.Info("game recorded",
			zap.String("game_id", gameID.String()),
			zap.Int("events", len(events)))
	}
	return nil
}
