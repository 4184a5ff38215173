package api

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Avyayamishra/NationCraft/internal/crisis"
	"github.com/Avyayamishra/NationCraft/internal/engine"
	"github.com/Avyayamishra/NationCraft/internal/persistence"
)

func newTestServer(t *testing.T) (*Server, *persistence.DB) {
	t.Helper()
	db, err := persistence.Open(filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return &Server{DB: db}, db
}

func TestStatusEndpoint(t *testing.T) {
	srv, db := newTestServer(t)
	if err := db.SeedEvents(crisis.DefaultEvents()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/v1/status", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body struct {
		Events int `json:"events"`
		Saves  int `json:"saves"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Events != 7 || body.Saves != 0 {
		t.Errorf("status = %+v, want 7 events / 0 saves", body)
	}
}

func TestLeaderboardEndpoint(t *testing.T) {
	srv, db := newTestServer(t)
	rec := engine.ScoreRecord{
		PlayerName:      "rufus",
		CountryName:     "Freedonia",
		YearsSurvived:   3,
		TurnsSurvived:   14,
		CauseOfDownfall: "revolution",
	}
	if err := db.RecordScore(rec, time.Now()); err != nil {
		t.Fatalf("record: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/v1/leaderboard?limit=5", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != 200 {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var scores []persistence.RankedScore
	if err := json.NewDecoder(w.Body).Decode(&scores); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(scores) != 1 || scores[0].PlayerName != "rufus" {
		t.Errorf("leaderboard = %+v, want single rufus entry", scores)
	}
}

func TestLeaderboardRejectsBadLimit(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest("GET", "/api/v1/leaderboard?limit=zero", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Code != 400 {
		t.Errorf("status = %d, want 400", w.Code)
	}
}
