package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

// Event tables. Every row carries the global sequence number and a
// millisecond timestamp.
const (
	challengeEventsTable = "challenge_events"
	rewardEventsTable    = "reward_events"
	sessionEventsTable   = "session_events"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS challenge_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		timestamp INTEGER NOT NULL,
		challenge_date TEXT NOT NULL,
		challenge_type TEXT NOT NULL,
		total_questions INTEGER NOT NULL,
		concepts TEXT NOT NULL,
		payload BLOB
	)`,
	`CREATE INDEX IF NOT EXISTS idx_challenge_events_date ON challenge_events (challenge_date)`,
	`CREATE TABLE IF NOT EXISTS reward_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		timestamp INTEGER NOT NULL,
		challenge_date TEXT NOT NULL,
		challenge_type TEXT NOT NULL,
		accuracy REAL NOT NULL,
		time_taken_secs INTEGER NOT NULL,
		streak INTEGER NOT NULL,
		bonus_stars INTEGER NOT NULL,
		bonus_coins INTEGER NOT NULL,
		perfect_score INTEGER NOT NULL,
		speed_bonus INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS session_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence INTEGER NOT NULL UNIQUE,
		timestamp INTEGER NOT NULL,
		session_id TEXT NOT NULL,
		operation TEXT NOT NULL,
		level TEXT NOT NULL,
		questions_served INTEGER NOT NULL,
		correct_answers INTEGER NOT NULL,
		best_streak INTEGER NOT NULL,
		duration_secs INTEGER NOT NULL
	)`,
}

// migrate creates the event tables if they do not exist.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	for _, stmt := range schema {
		if err := drv.Exec(ctx, stmt, []any{}, nil); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
