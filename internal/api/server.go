// Package api provides a read-only HTTP surface over the stores: the
// leaderboard, the saved-games listing, and a status endpoint. It carries
// no game rules; the engine never depends on it.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Avyayamishra/NationCraft/internal/persistence"
)

const defaultLeaderboardLimit = 10

// Server serves store contents over HTTP.
type Server struct {
	DB   *persistence.DB
	Port int
}

// Handler builds the route table. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/leaderboard", s.handleLeaderboard)
	mux.HandleFunc("/api/v1/saves", s.handleSaves)
	return mux
}

// Start begins serving in a goroutine.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr)

	go func() {
		if err := http.ListenAndServe(addr, s.Handler()); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	events, err := s.DB.EventCount()
	if err != nil {
		httpError(w, err)
		return
	}
	saves, err := s.DB.Sessions()
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, map[string]any{
		"events": events,
		"saves":  len(saves),
	})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := defaultLeaderboardLimit
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	scores, err := s.DB.TopScores(limit)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, scores)
}

func (s *Server) handleSaves(w http.ResponseWriter, r *http.Request) {
	saves, err := s.DB.Sessions()
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, saves)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func httpError(w http.ResponseWriter, err error) {
	slog.Error("store query failed", "error", err)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
