// Package engine runs a presidential term as a turn-based state machine:
// draw a crisis, apply the chosen option's effects, advance the calendar,
// check for collapse.
package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Avyayamishra/NationCraft/internal/crisis"
	"github.com/Avyayamishra/NationCraft/internal/nation"
)

// Calendar constants: a run starts in StartYear and the year advances once
// every TurnsPerYear decisions.
const (
	StartYear    = 2024
	TurnsPerYear = 4
)

var (
	// ErrNoActiveRun is returned when a decision is attempted outside an
	// active run.
	ErrNoActiveRun = errors.New("engine: no decision pending")

	// ErrInvalidOption is returned when the chosen option index is outside
	// the current event's option range. Recoverable: re-prompt and retry.
	ErrInvalidOption = errors.New("engine: option index out of range")
)

// State is the engine's position in the run lifecycle.
type State int

const (
	NotStarted State = iota
	AwaitingDecision
	Terminated
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not_started"
	case AwaitingDecision:
		return "awaiting_decision"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// Catalog supplies random crisis events.
type Catalog interface {
	DrawRandom() (crisis.Event, error)
}

// Recorder persists the outcome of a finished run. The adapter stamps the
// achievement timestamp; the engine itself never reads the clock.
type Recorder interface {
	Record(rec ScoreRecord) error
}

// TurnView is what the presentation shell may show before a choice is made.
// Option effects and reasons are withheld until after Decide, so outcomes
// are never telegraphed.
type TurnView struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Options     []string     `json:"options"`
	Year        int          `json:"year"`
	Turn        int          `json:"turn"`
	Stats       nation.Stats `json:"stats"`
}

// Outcome is returned from Decide for display.
type Outcome struct {
	ChosenOption   string         `json:"chosen_option"`
	AppliedEffects nation.Effects `json:"applied_effects"`
	Reason         string         `json:"reason"`
	Stats          nation.Stats   `json:"stats"`
	Terminal       bool           `json:"terminal"`
	Cause          nation.Stat    `json:"cause,omitempty"`
	CauseText      string         `json:"cause_text,omitempty"`
}

// Engine is the turn state machine for a single run. It is designed for
// one synchronous caller; operations must not be invoked concurrently.
type Engine struct {
	catalog Catalog
	scores  Recorder

	state   State
	runID   string
	country string
	player  string
	year    int
	turn    int
	stats   nation.Stats
	current crisis.Event
}

// New creates an engine over the given catalog. scores may be nil when no
// leaderboard is wired (outcomes are then simply not recorded).
func New(catalog Catalog, scores Recorder) *Engine {
	return &Engine{catalog: catalog, scores: scores}
}

// Start begins a fresh run: all stats at their starting value, year 2024,
// turn 0, first event drawn. Valid from any state; in-progress state is
// discarded without persisting, so callers wanting to keep it must save
// first.
func (e *Engine) Start(countryName, playerName string) error {
	ev, err := e.catalog.DrawRandom()
	if err != nil {
		return fmt.Errorf("draw first event: %w", err)
	}

	e.state = AwaitingDecision
	e.runID = uuid.NewString()
	e.country = countryName
	e.player = playerName
	e.year = StartYear
	e.turn = 0
	e.stats = nation.NewStats()
	e.current = ev

	slog.Info("run started", "run_id", e.runID, "country", e.country, "player", e.player)
	return nil
}

// Resume restores a saved session and continues it as a live run: stats,
// calendar and country come from the snapshot, a new event is drawn.
func (e *Engine) Resume(s Session, playerName string) error {
	ev, err := e.catalog.DrawRandom()
	if err != nil {
		return fmt.Errorf("draw event: %w", err)
	}

	e.state = AwaitingDecision
	e.runID = uuid.NewString()
	e.country = s.CountryName
	e.player = playerName
	e.year = s.Year
	e.turn = s.Turn
	e.stats = s.Stats
	e.current = ev

	slog.Info("run resumed", "run_id", e.runID, "save", s.SaveName, "year", e.year, "turn", e.turn)
	return nil
}

// CurrentTurn returns the pre-decision view of the pending event. If the
// last draw failed (for example against an emptied catalog), it retries the
// draw, so reseeding the catalog is enough to recover.
func (e *Engine) CurrentTurn() (TurnView, error) {
	if e.state != AwaitingDecision {
		return TurnView{}, ErrNoActiveRun
	}

	if len(e.current.Options) == 0 {
		ev, err := e.catalog.DrawRandom()
		if err != nil {
			return TurnView{}, fmt.Errorf("draw event: %w", err)
		}
		e.current = ev
	}

	texts := make([]string, len(e.current.Options))
	for i, opt := range e.current.Options {
		texts[i] = opt.Text
	}
	return TurnView{
		Title:       e.current.Title,
		Description: e.current.Description,
		Options:     texts,
		Year:        e.year,
		Turn:        e.turn,
		Stats:       e.stats,
	}, nil
}

// Decide applies the chosen option: effects, turn and year counters, then
// the termination check. On a terminal turn the run's outcome is recorded
// once and the engine moves to Terminated; otherwise the next event is
// drawn. Invalid indexes leave the run untouched.
func (e *Engine) Decide(optionIndex int) (Outcome, error) {
	if e.state != AwaitingDecision {
		return Outcome{}, ErrNoActiveRun
	}
	if optionIndex < 0 || optionIndex >= len(e.current.Options) {
		return Outcome{}, fmt.Errorf("%w: %d (event has %d options)",
			ErrInvalidOption, optionIndex, len(e.current.Options))
	}

	opt := e.current.Options[optionIndex]
	e.stats.Apply(opt.Effects)
	e.turn++
	if e.turn%TurnsPerYear == 0 {
		e.year++
	}

	out := Outcome{
		ChosenOption:   opt.Text,
		AppliedEffects: opt.Effects,
		Reason:         opt.Reason,
		Stats:          e.stats,
	}

	if cause, terminal := e.stats.TerminalCause(); terminal {
		e.state = Terminated
		out.Terminal = true
		out.Cause = cause
		out.CauseText = nation.DownfallText(cause)
		slog.Info("run terminated",
			"run_id", e.runID,
			"cause", cause,
			"years", e.YearsSurvived(),
			"turns", e.turn,
		)

		if e.scores != nil {
			if err := e.scores.Record(e.scoreRecord(out.CauseText)); err != nil {
				return out, fmt.Errorf("record score: %w", err)
			}
		}
		return out, nil
	}

	ev, err := e.catalog.DrawRandom()
	if err != nil {
		// The decision stands; CurrentTurn redraws once the catalog
		// is usable again.
		e.current = crisis.Event{}
		return out, fmt.Errorf("draw next event: %w", err)
	}
	e.current = ev
	return out, nil
}

func (e *Engine) scoreRecord(causeText string) ScoreRecord {
	return ScoreRecord{
		PlayerName:      e.player,
		CountryName:     e.country,
		YearsSurvived:   e.YearsSurvived(),
		TurnsSurvived:   e.turn,
		FinalStats:      e.stats,
		CauseOfDownfall: causeText,
	}
}

// YearsSurvived returns how many full years the run has lasted.
func (e *Engine) YearsSurvived() int {
	return e.year - StartYear
}

// Snapshot captures the run under the given save name for persistence.
func (e *Engine) Snapshot(saveName string) Session {
	return Session{
		SaveName:    saveName,
		CountryName: e.country,
		Year:        e.year,
		Turn:        e.turn,
		Stats:       e.stats,
	}
}

// State returns the engine's lifecycle state.
func (e *Engine) State() State { return e.state }

// Stats returns the current stat vector.
func (e *Engine) Stats() nation.Stats { return e.stats }

// Year returns the current in-game year.
func (e *Engine) Year() int { return e.year }

// Turn returns the number of decisions taken this run.
func (e *Engine) Turn() int { return e.turn }

// Country returns the name of the governed nation.
func (e *Engine) Country() string { return e.country }

// Player returns the player's name for this run.
func (e *Engine) Player() string { return e.player }
