package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/Avyayamishra/NationCraft/internal/crisis"
)

// SeedEvents inserts the given events in one transaction. Idempotency is
// the catalog's concern; this is a plain append.
func (db *DB) SeedEvents(events []crisis.Event) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT INTO game_events
		(category, title, description, options_json)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range events {
		optionsJSON, err := json.Marshal(e.Options)
		if err != nil {
			return fmt.Errorf("marshal options for %q: %w", e.Title, err)
		}
		if _, err := stmt.Exec(e.Category, e.Title, e.Description, string(optionsJSON)); err != nil {
			return fmt.Errorf("insert event %q: %w", e.Title, err)
		}
	}

	return tx.Commit()
}

// EventCount returns the number of stored events.
func (db *DB) EventCount() (int, error) {
	var n int
	if err := db.conn.Get(&n, "SELECT COUNT(*) FROM game_events"); err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return n, nil
}

// EventAt returns the event at the given offset in insertion order.
func (db *DB) EventAt(offset int) (crisis.Event, error) {
	var row struct {
		ID          int64  `db:"id"`
		Category    string `db:"category"`
		Title       string `db:"title"`
		Description string `db:"description"`
		OptionsJSON string `db:"options_json"`
	}
	err := db.conn.Get(&row,
		`SELECT id, category, title, description, options_json
		 FROM game_events ORDER BY id LIMIT 1 OFFSET ?`, offset)
	if err != nil {
		return crisis.Event{}, fmt.Errorf("select event at %d: %w", offset, err)
	}

	ev := crisis.Event{
		ID:          row.ID,
		Category:    row.Category,
		Title:       row.Title,
		Description: row.Description,
	}
	if err := json.Unmarshal([]byte(row.OptionsJSON), &ev.Options); err != nil {
		return crisis.Event{}, fmt.Errorf("unmarshal options for event %d: %w", row.ID, err)
	}
	return ev, nil
}
