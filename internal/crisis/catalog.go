package crisis

import (
	"fmt"
	"log/slog"

	"github.com/Avyayamishra/NationCraft/internal/entropy"
)

// Store is the durable backing for authored events.
type Store interface {
	SeedEvents(events []Event) error
	EventCount() (int, error)
	EventAt(offset int) (Event, error)
}

// Catalog exposes uniform random draws over the events held in a Store.
// Draws are with replacement; immediate repeats are possible.
type Catalog struct {
	store Store
	src   entropy.Source
}

// NewCatalog wraps a store with the given randomness source.
func NewCatalog(store Store, src entropy.Source) *Catalog {
	return &Catalog{store: store, src: src}
}

// SeedIfEmpty populates the store with the given events only when it holds
// none, so repeated startups never duplicate or overwrite authored or
// player-added events. Every event is validated before any is written.
func (c *Catalog) SeedIfEmpty(events []Event) error {
	for _, e := range events {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("invalid seed event: %w", err)
		}
	}

	n, err := c.store.EventCount()
	if err != nil {
		return fmt.Errorf("count events: %w", err)
	}
	if n > 0 {
		return nil
	}

	if err := c.store.SeedEvents(events); err != nil {
		return fmt.Errorf("seed events: %w", err)
	}
	slog.Info("event catalog seeded", "events", len(events))
	return nil
}

// DrawRandom returns one event chosen uniformly from the store,
// independent of any prior draw. Returns ErrEmptyCatalog when no events
// exist.
func (c *Catalog) DrawRandom() (Event, error) {
	n, err := c.store.EventCount()
	if err != nil {
		return Event{}, fmt.Errorf("count events: %w", err)
	}
	if n == 0 {
		return Event{}, ErrEmptyCatalog
	}

	ev, err := c.store.EventAt(c.src.Intn(n))
	if err != nil {
		return Event{}, fmt.Errorf("fetch event: %w", err)
	}
	return ev, nil
}
