package persistence

import (
	"fmt"
	"time"

	"github.com/Avyayamishra/NationCraft/internal/engine"
	"github.com/Avyayamishra/NationCraft/internal/nation"
)

// RankedScore is a leaderboard entry: a recorded outcome plus the
// store-assigned achievement timestamp.
type RankedScore struct {
	engine.ScoreRecord
	AchievedAt time.Time `json:"achieved_at"`
}

// RecordScore appends a completed run's outcome. Records are never updated
// or deleted.
func (db *DB) RecordScore(rec engine.ScoreRecord, achievedAt time.Time) error {
	_, err := db.conn.Exec(`INSERT INTO high_scores
		(player_name, country_name, years_survived, turns_survived,
		 final_economy, final_happiness, final_stability, final_relations,
		 final_military_power, final_environment, cause_of_downfall, achieved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.PlayerName, rec.CountryName, rec.YearsSurvived, rec.TurnsSurvived,
		rec.FinalStats.Economy, rec.FinalStats.Happiness, rec.FinalStats.Stability,
		rec.FinalStats.Relations, rec.FinalStats.MilitaryPower, rec.FinalStats.Environment,
		rec.CauseOfDownfall, achievedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record score for %q: %w", rec.PlayerName, err)
	}
	return nil
}

// TopScores returns the best n outcomes: years survived descending, then
// turns survived descending, then insertion order (earlier achievement
// ranks higher).
func (db *DB) TopScores(n int) ([]RankedScore, error) {
	var rows []struct {
		PlayerName         string `db:"player_name"`
		CountryName        string `db:"country_name"`
		YearsSurvived      int    `db:"years_survived"`
		TurnsSurvived      int    `db:"turns_survived"`
		FinalEconomy       int    `db:"final_economy"`
		FinalHappiness     int    `db:"final_happiness"`
		FinalStability     int    `db:"final_stability"`
		FinalRelations     int    `db:"final_relations"`
		FinalMilitaryPower int    `db:"final_military_power"`
		FinalEnvironment   int    `db:"final_environment"`
		CauseOfDownfall    string `db:"cause_of_downfall"`
		AchievedAt         int64  `db:"achieved_at"`
	}
	err := db.conn.Select(&rows,
		`SELECT player_name, country_name, years_survived, turns_survived,
		        final_economy, final_happiness, final_stability, final_relations,
		        final_military_power, final_environment, cause_of_downfall, achieved_at
		 FROM high_scores
		 ORDER BY years_survived DESC, turns_survived DESC, id ASC
		 LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}

	scores := make([]RankedScore, len(rows))
	for i, r := range rows {
		scores[i] = RankedScore{
			ScoreRecord: engine.ScoreRecord{
				PlayerName:    r.PlayerName,
				CountryName:   r.CountryName,
				YearsSurvived: r.YearsSurvived,
				TurnsSurvived: r.TurnsSurvived,
				FinalStats: nation.Stats{
					Economy:       r.FinalEconomy,
					Happiness:     r.FinalHappiness,
					Stability:     r.FinalStability,
					Relations:     r.FinalRelations,
					MilitaryPower: r.FinalMilitaryPower,
					Environment:   r.FinalEnvironment,
				},
				CauseOfDownfall: r.CauseOfDownfall,
			},
			AchievedAt: time.UnixMilli(r.AchievedAt),
		}
	}
	return scores, nil
}

// ScoreRecorder adapts DB to the engine's Recorder interface, stamping each
// record with the adapter's clock.
type ScoreRecorder struct {
	DB  *DB
	Now func() time.Time // defaults to time.Now
}

// Record persists the outcome with the current time as achievement
// timestamp.
func (r ScoreRecorder) Record(rec engine.ScoreRecord) error {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	return r.DB.RecordScore(rec, now().UTC())
}
