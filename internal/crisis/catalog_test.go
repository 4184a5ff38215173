package crisis

import (
	"errors"
	"testing"

	"github.com/Avyayamishra/NationCraft/internal/entropy"
	"github.com/Avyayamishra/NationCraft/internal/nation"
)

// memStore is an in-memory Store for catalog tests.
type memStore struct {
	events []Event
}

func (m *memStore) SeedEvents(events []Event) error {
	m.events = append(m.events, events...)
	return nil
}

func (m *memStore) EventCount() (int, error) {
	return len(m.events), nil
}

func (m *memStore) EventAt(offset int) (Event, error) {
	return m.events[offset], nil
}

func TestSeedIfEmptyIsIdempotent(t *testing.T) {
	store := &memStore{}
	cat := NewCatalog(store, entropy.NewSeeded(1))

	seed := DefaultEvents()
	if err := cat.SeedIfEmpty(seed); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := cat.SeedIfEmpty(seed); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	if n := len(store.events); n != len(seed) {
		t.Errorf("store holds %d events after double seed, want %d", n, len(seed))
	}
}

func TestSeedIfEmptyRejectsUnknownStat(t *testing.T) {
	store := &memStore{}
	cat := NewCatalog(store, entropy.NewSeeded(1))

	bad := []Event{{
		Category:    "test",
		Title:       "Bad Event",
		Description: "effects reference a stat that does not exist",
		Options: []Option{
			{Text: "a", Effects: nation.Effects{"morale": 5}},
			{Text: "b", Effects: nation.Effects{nation.StatEconomy: 5}},
		},
	}}

	if err := cat.SeedIfEmpty(bad); err == nil {
		t.Fatal("expected seed-time rejection of unknown effect key")
	}
	if n := len(store.events); n != 0 {
		t.Errorf("store holds %d events after rejected seed, want 0", n)
	}
}

func TestDrawRandomEmptyCatalog(t *testing.T) {
	cat := NewCatalog(&memStore{}, entropy.NewSeeded(1))
	if _, err := cat.DrawRandom(); !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("draw from empty catalog: err = %v, want ErrEmptyCatalog", err)
	}
}

func TestDrawRandomCoversCatalog(t *testing.T) {
	store := &memStore{}
	cat := NewCatalog(store, entropy.NewSeeded(7))
	if err := cat.SeedIfEmpty(DefaultEvents()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Draws are with replacement; over enough draws every event should
	// appear at least once.
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		ev, err := cat.DrawRandom()
		if err != nil {
			t.Fatalf("draw %d: %v", i, err)
		}
		seen[ev.Title] = true
	}
	if len(seen) != len(store.events) {
		t.Errorf("500 draws reached %d distinct events, want %d", len(seen), len(store.events))
	}
}

func TestDefaultEventsAreValid(t *testing.T) {
	events := DefaultEvents()
	if len(events) != 7 {
		t.Fatalf("DefaultEvents() returned %d events, want 7", len(events))
	}
	for _, e := range events {
		if err := e.Validate(); err != nil {
			t.Errorf("seed event %q invalid: %v", e.Title, err)
		}
		for i, opt := range e.Options {
			if opt.Reason == "" {
				t.Errorf("seed event %q option %d has no reason", e.Title, i)
			}
		}
	}
}

func TestValidateRequiresTwoOptions(t *testing.T) {
	e := Event{
		Title:   "Lonely Choice",
		Options: []Option{{Text: "only option"}},
	}
	if err := e.Validate(); err == nil {
		t.Error("expected validation failure for a single-option event")
	}
}
