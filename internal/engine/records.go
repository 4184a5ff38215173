package engine

import "github.com/Avyayamishra/NationCraft/internal/nation"

// Session is a restorable snapshot of a run in progress. save_name uniquely
// identifies at most one stored snapshot; saving under an existing name
// overwrites it.
type Session struct {
	SaveName    string       `json:"save_name"`
	CountryName string       `json:"country_name"`
	Year        int          `json:"current_year"`
	Turn        int          `json:"current_turn"`
	Stats       nation.Stats `json:"stats"`
}

// ScoreRecord is the append-only outcome of a completed run. Immutable once
// recorded; the store stamps the achievement timestamp.
type ScoreRecord struct {
	PlayerName      string       `json:"player_name"`
	CountryName     string       `json:"country_name"`
	YearsSurvived   int          `json:"years_survived"`
	TurnsSurvived   int          `json:"turns_survived"`
	FinalStats      nation.Stats `json:"final_stats"`
	CauseOfDownfall string       `json:"cause_of_downfall"`
}
