// Package crisis holds the authored crisis events a president must answer
// and the catalog they are drawn from.
package crisis

import (
	"errors"
	"fmt"

	"github.com/Avyayamishra/NationCraft/internal/nation"
)

// ErrEmptyCatalog is returned when a draw is attempted against a catalog
// holding no events. Recoverable: reseed the catalog and retry.
var ErrEmptyCatalog = errors.New("crisis: no events in catalog")

// Option is one selectable response to an event. Reason is surfaced only
// after the decision is applied, never before.
type Option struct {
	Text    string         `json:"text"`
	Effects nation.Effects `json:"effects"`
	Reason  string         `json:"reason"`
}

// Event is an immutable catalog entry: a crisis scenario with at least two
// decision options.
type Event struct {
	ID          int64    `json:"id,omitempty"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Options     []Option `json:"options"`
}

// Validate checks an event before it is admitted to the catalog: a title,
// two or more options, and every effect key naming one of the six stats.
// Malformed seed data is rejected here, eagerly, rather than tolerated at
// apply time.
func (e Event) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("event has no title")
	}
	if len(e.Options) < 2 {
		return fmt.Errorf("event %q has %d options, need at least 2", e.Title, len(e.Options))
	}
	for i, opt := range e.Options {
		if opt.Text == "" {
			return fmt.Errorf("event %q option %d has no text", e.Title, i)
		}
		for st := range opt.Effects {
			if !nation.Known(st) {
				return fmt.Errorf("event %q option %d references unknown stat %q", e.Title, i, st)
			}
		}
	}
	return nil
}
