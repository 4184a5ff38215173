// Package nation defines the bounded six-stat vector describing a nation's
// health and the rules for its collapse.
// This package is PURE and must NOT import any infrastructure packages.
package nation

// Stat names one of the six national statistics.
type Stat string

const (
	StatEconomy       Stat = "economy"
	StatHappiness     Stat = "happiness"
	StatStability     Stat = "stability"
	StatRelations     Stat = "relations"
	StatMilitaryPower Stat = "military_power"
	StatEnvironment   Stat = "environment"
)

// CanonicalOrder is the fixed iteration order over the six stats.
// Terminal-cause reporting depends on it: when several stats reach 0 on the
// same turn, the earliest entry here is reported as the cause.
var CanonicalOrder = [6]Stat{
	StatEconomy,
	StatHappiness,
	StatStability,
	StatRelations,
	StatMilitaryPower,
	StatEnvironment,
}

// Effects maps stats to signed deltas. Stats absent from the map are
// unaffected when applied.
type Effects map[Stat]int

const (
	// MinStat and MaxStat bound every stat value at all times.
	MinStat = 0
	MaxStat = 100

	// StartValue is the level every stat begins at on a new run.
	StartValue = 50
)

// Stats is the six-dimensional nation-state record. Every value stays
// within [MinStat, MaxStat].
type Stats struct {
	Economy       int `json:"economy"`
	Happiness     int `json:"happiness"`
	Stability     int `json:"stability"`
	Relations     int `json:"relations"`
	MilitaryPower int `json:"military_power"`
	Environment   int `json:"environment"`
}

// NewStats returns a fresh vector with every stat at StartValue.
func NewStats() Stats {
	return Stats{
		Economy:       StartValue,
		Happiness:     StartValue,
		Stability:     StartValue,
		Relations:     StartValue,
		MilitaryPower: StartValue,
		Environment:   StartValue,
	}
}

// Clamp maps any integer into [MinStat, MaxStat].
func Clamp(v int) int {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}

// Get returns the value of the named stat, or 0 for an unknown name.
func (s Stats) Get(st Stat) int {
	switch st {
	case StatEconomy:
		return s.Economy
	case StatHappiness:
		return s.Happiness
	case StatStability:
		return s.Stability
	case StatRelations:
		return s.Relations
	case StatMilitaryPower:
		return s.MilitaryPower
	case StatEnvironment:
		return s.Environment
	}
	return 0
}

func (s *Stats) set(st Stat, v int) {
	switch st {
	case StatEconomy:
		s.Economy = v
	case StatHappiness:
		s.Happiness = v
	case StatStability:
		s.Stability = v
	case StatRelations:
		s.Relations = v
	case StatMilitaryPower:
		s.MilitaryPower = v
	case StatEnvironment:
		s.Environment = v
	}
}

// Apply adds each delta to its stat and clamps the result. Each key mutates
// an independent field, so application is order-independent. Keys that name
// no known stat are ignored; seed-time validation rejects them before they
// can reach a live run.
func (s *Stats) Apply(effects Effects) {
	for st, delta := range effects {
		if !Known(st) {
			continue
		}
		s.set(st, Clamp(s.Get(st)+delta))
	}
}

// Known reports whether st names one of the six stats.
func Known(st Stat) bool {
	switch st {
	case StatEconomy, StatHappiness, StatStability,
		StatRelations, StatMilitaryPower, StatEnvironment:
		return true
	}
	return false
}

// IsTerminal reports whether any stat has reached 0. Only the lower bound
// ends a run; a stat at 100 is not terminal.
func (s Stats) IsTerminal() bool {
	_, ok := s.TerminalCause()
	return ok
}

// TerminalCause returns the first stat in CanonicalOrder found at 0, and
// whether any stat is at 0 at all.
func (s Stats) TerminalCause() (Stat, bool) {
	for _, st := range CanonicalOrder {
		if s.Get(st) == MinStat {
			return st, true
		}
	}
	return "", false
}

// downfalls narrates the collapse for each terminal stat.
var downfalls = map[Stat]string{
	StatEconomy:       "Economic collapse! The nation's economy has completely failed, leading to widespread poverty and chaos.",
	StatHappiness:     "Revolution! The people have risen against the government in a massive uprising.",
	StatStability:     "Military coup! Army generals have seized power and removed the president from office.",
	StatRelations:     "International isolation! The country has become a pariah state with no allies.",
	StatMilitaryPower: "Invasion! Enemy forces have conquered the nation through its weakened defenses.",
	StatEnvironment:   "Environmental catastrophe! The nation has become uninhabitable due to ecological collapse.",
}

// DownfallText returns the narrative recorded as cause_of_downfall when the
// given stat ends a run.
func DownfallText(st Stat) string {
	return downfalls[st]
}
