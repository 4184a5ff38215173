// Package persistence provides SQLite-backed storage for the event
// catalog, saved games, and the leaderboard.
package persistence

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a named save does not exist.
var ErrNotFound = errors.New("persistence: no such save")

// DB wraps a SQLite connection for game state persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	// Timestamps are unix milliseconds, supplied by the caller rather than
	// defaulted in SQL, so ordering is testable and the engine stays free
	// of wall-clock reads.
	schema := `
	CREATE TABLE IF NOT EXISTS game_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		category TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		options_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS game_sessions (
		save_name TEXT PRIMARY KEY,
		country_name TEXT NOT NULL,
		current_year INTEGER NOT NULL,
		current_turn INTEGER NOT NULL,
		economy INTEGER NOT NULL,
		happiness INTEGER NOT NULL,
		stability INTEGER NOT NULL,
		relations INTEGER NOT NULL,
		military_power INTEGER NOT NULL,
		environment INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS high_scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		player_name TEXT NOT NULL,
		country_name TEXT NOT NULL,
		years_survived INTEGER NOT NULL,
		turns_survived INTEGER NOT NULL,
		final_economy INTEGER NOT NULL,
		final_happiness INTEGER NOT NULL,
		final_stability INTEGER NOT NULL,
		final_relations INTEGER NOT NULL,
		final_military_power INTEGER NOT NULL,
		final_environment INTEGER NOT NULL,
		cause_of_downfall TEXT NOT NULL,
		achieved_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_updated ON game_sessions(updated_at);
	CREATE INDEX IF NOT EXISTS idx_scores_rank ON high_scores(years_survived, turns_survived);
	`
	_, err := db.conn.Exec(schema)
	return err
}
