package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Avyayamishra/NationCraft/internal/engine"
	"github.com/Avyayamishra/NationCraft/internal/nation"
)

// SessionSummary is one row of the saved-games listing.
type SessionSummary struct {
	SaveName    string    `json:"save_name"`
	CountryName string    `json:"country_name"`
	Year        int       `json:"current_year"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SaveSession upserts the session under its save name. An existing save of
// the same name is replaced, never rejected, and its modification timestamp
// refreshed.
func (db *DB) SaveSession(s engine.Session, updatedAt time.Time) error {
	_, err := db.conn.Exec(`INSERT INTO game_sessions
		(save_name, country_name, current_year, current_turn,
		 economy, happiness, stability, relations, military_power, environment,
		 updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(save_name) DO UPDATE SET
			country_name=excluded.country_name,
			current_year=excluded.current_year,
			current_turn=excluded.current_turn,
			economy=excluded.economy,
			happiness=excluded.happiness,
			stability=excluded.stability,
			relations=excluded.relations,
			military_power=excluded.military_power,
			environment=excluded.environment,
			updated_at=excluded.updated_at`,
		s.SaveName, s.CountryName, s.Year, s.Turn,
		s.Stats.Economy, s.Stats.Happiness, s.Stats.Stability,
		s.Stats.Relations, s.Stats.MilitaryPower, s.Stats.Environment,
		updatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save session %q: %w", s.SaveName, err)
	}
	return nil
}

// LoadSession returns the session saved under the given name, or
// ErrNotFound.
func (db *DB) LoadSession(saveName string) (engine.Session, error) {
	var row struct {
		SaveName      string `db:"save_name"`
		CountryName   string `db:"country_name"`
		CurrentYear   int    `db:"current_year"`
		CurrentTurn   int    `db:"current_turn"`
		Economy       int    `db:"economy"`
		Happiness     int    `db:"happiness"`
		Stability     int    `db:"stability"`
		Relations     int    `db:"relations"`
		MilitaryPower int    `db:"military_power"`
		Environment   int    `db:"environment"`
	}
	err := db.conn.Get(&row,
		`SELECT save_name, country_name, current_year, current_turn,
		        economy, happiness, stability, relations, military_power, environment
		 FROM game_sessions WHERE save_name = ?`, saveName)
	if errors.Is(err, sql.ErrNoRows) {
		return engine.Session{}, fmt.Errorf("%w: %q", ErrNotFound, saveName)
	}
	if err != nil {
		return engine.Session{}, fmt.Errorf("load session %q: %w", saveName, err)
	}

	return engine.Session{
		SaveName:    row.SaveName,
		CountryName: row.CountryName,
		Year:        row.CurrentYear,
		Turn:        row.CurrentTurn,
		Stats: nation.Stats{
			Economy:       row.Economy,
			Happiness:     row.Happiness,
			Stability:     row.Stability,
			Relations:     row.Relations,
			MilitaryPower: row.MilitaryPower,
			Environment:   row.Environment,
		},
	}, nil
}

// Sessions lists all saved games, most recently updated first.
func (db *DB) Sessions() ([]SessionSummary, error) {
	var rows []struct {
		SaveName    string `db:"save_name"`
		CountryName string `db:"country_name"`
		CurrentYear int    `db:"current_year"`
		UpdatedAt   int64  `db:"updated_at"`
	}
	err := db.conn.Select(&rows,
		`SELECT save_name, country_name, current_year, updated_at
		 FROM game_sessions ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	summaries := make([]SessionSummary, len(rows))
	for i, r := range rows {
		summaries[i] = SessionSummary{
			SaveName:    r.SaveName,
			CountryName: r.CountryName,
			Year:        r.CurrentYear,
			UpdatedAt:   time.UnixMilli(r.UpdatedAt),
		}
	}
	return summaries, nil
}
