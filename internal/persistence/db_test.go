package persistence

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Avyayamishra/NationCraft/internal/crisis"
	"github.com/Avyayamishra/NationCraft/internal/engine"
	"github.com/Avyayamishra/NationCraft/internal/entropy"
	"github.com/Avyayamishra/NationCraft/internal/nation"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCatalogSeedIsIdempotentOverSQLite(t *testing.T) {
	db := openTestDB(t)
	cat := crisis.NewCatalog(db, entropy.NewSeeded(1))

	seed := crisis.DefaultEvents()
	if err := cat.SeedIfEmpty(seed); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := cat.SeedIfEmpty(seed); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	n, err := db.EventCount()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != len(seed) {
		t.Errorf("event count = %d after double seed, want %d", n, len(seed))
	}
}

func TestEventRoundTrip(t *testing.T) {
	db := openTestDB(t)
	seed := crisis.DefaultEvents()
	if err := db.SeedEvents(seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := db.EventAt(0)
	if err != nil {
		t.Fatalf("EventAt(0): %v", err)
	}
	want := seed[0]
	if got.Title != want.Title || got.Category != want.Category {
		t.Errorf("event = %q/%q, want %q/%q", got.Category, got.Title, want.Category, want.Title)
	}
	if len(got.Options) != len(want.Options) {
		t.Fatalf("options = %d, want %d", len(got.Options), len(want.Options))
	}
	if got.Options[0].Reason != want.Options[0].Reason {
		t.Errorf("option reason lost in round trip")
	}
	if got.Options[0].Effects[nation.StatEconomy] != want.Options[0].Effects[nation.StatEconomy] {
		t.Errorf("option effects lost in round trip")
	}
}

func TestSaveSessionUpserts(t *testing.T) {
	db := openTestDB(t)
	t0 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	a := engine.Session{SaveName: "alpha", CountryName: "Freedonia", Year: 2025, Turn: 4, Stats: nation.NewStats()}
	if err := db.SaveSession(a, t0); err != nil {
		t.Fatalf("save A: %v", err)
	}

	b := a
	b.Year = 2027
	b.Turn = 13
	b.Stats.Economy = 9
	if err := db.SaveSession(b, t0.Add(time.Hour)); err != nil {
		t.Fatalf("save B over A: %v", err)
	}

	got, err := db.LoadSession("alpha")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != b {
		t.Errorf("loaded %+v, want overwrite %+v", got, b)
	}

	sums, err := db.Sessions()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sums) != 1 {
		t.Fatalf("have %d sessions after upsert, want 1", len(sums))
	}
	if !sums[0].UpdatedAt.Equal(t0.Add(time.Hour)) {
		t.Errorf("updated_at = %v, want refreshed %v", sums[0].UpdatedAt, t0.Add(time.Hour))
	}
}

func TestLoadSessionNotFound(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.LoadSession("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("load miss err = %v, want ErrNotFound", err)
	}
}

func TestSessionsOrderedByLastUpdated(t *testing.T) {
	db := openTestDB(t)
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	for i, name := range []string{"old", "mid", "new"} {
		s := engine.Session{SaveName: name, CountryName: "Freedonia", Year: 2024, Stats: nation.NewStats()}
		if err := db.SaveSession(s, base.Add(time.Duration(i)*time.Hour)); err != nil {
			t.Fatalf("save %q: %v", name, err)
		}
	}

	sums, err := db.Sessions()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"new", "mid", "old"}
	for i, w := range want {
		if sums[i].SaveName != w {
			t.Errorf("sessions[%d] = %q, want %q (most recent first)", i, sums[i].SaveName, w)
		}
	}
}

func TestTopScoresOrdering(t *testing.T) {
	db := openTestDB(t)
	at := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	insert := func(player string, years, turns int) {
		t.Helper()
		rec := engine.ScoreRecord{
			PlayerName:      player,
			CountryName:     "Freedonia",
			YearsSurvived:   years,
			TurnsSurvived:   turns,
			FinalStats:      nation.Stats{Happiness: 1},
			CauseOfDownfall: "economic collapse",
		}
		if err := db.RecordScore(rec, at); err != nil {
			t.Fatalf("record %q: %v", player, err)
		}
	}

	insert("carol", 2, 9)
	insert("alice", 5, 20)
	insert("dave", 2, 11)
	insert("bob", 5, 22)
	insert("erin", 1, 4)

	top, err := db.TopScores(3)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("TopScores(3) returned %d rows", len(top))
	}

	want := []string{"bob", "alice", "dave"}
	for i, w := range want {
		if top[i].PlayerName != w {
			t.Errorf("rank %d = %q, want %q", i+1, top[i].PlayerName, w)
		}
	}
}

func TestTopScoresTiesBreakByInsertionOrder(t *testing.T) {
	db := openTestDB(t)
	at := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	for _, player := range []string{"first", "second"} {
		rec := engine.ScoreRecord{
			PlayerName:      player,
			CountryName:     "Freedonia",
			YearsSurvived:   3,
			TurnsSurvived:   12,
			CauseOfDownfall: "revolution",
		}
		if err := db.RecordScore(rec, at); err != nil {
			t.Fatalf("record %q: %v", player, err)
		}
	}

	top, err := db.TopScores(2)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if top[0].PlayerName != "first" || top[1].PlayerName != "second" {
		t.Errorf("tie order = [%q, %q], want earlier insert first", top[0].PlayerName, top[1].PlayerName)
	}
}

func TestScoreRecorderStampsClock(t *testing.T) {
	db := openTestDB(t)
	fixed := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)

	rec := ScoreRecorder{DB: db, Now: func() time.Time { return fixed }}
	err := rec.Record(engine.ScoreRecord{
		PlayerName:      "rufus",
		CountryName:     "Freedonia",
		YearsSurvived:   1,
		TurnsSurvived:   5,
		CauseOfDownfall: "invasion",
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	top, err := db.TopScores(1)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("have %d scores, want 1", len(top))
	}
	if !top[0].AchievedAt.Equal(fixed) {
		t.Errorf("achieved_at = %v, want %v", top[0].AchievedAt, fixed)
	}
}
