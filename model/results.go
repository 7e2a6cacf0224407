package model

// MatchResult holds the mean per-round payoff for each of the three
// seats in one match, in seat order (A, B, C).
type MatchResult struct {
	MeanScores [3]float64
	Rounds     int
}

// TournamentResult is the outcome of one full round-robin tournament.
type TournamentResult struct {
	// Totals holds the accumulated mean-match payoffs per roster index.
	// Totals, not averages: every match a roster entry played in adds
	// its mean score for that seat.
	Totals []float64

	// Ranking maps rank position (0 = first place) to roster index.
	// Descending by total; exact ties keep the earlier roster entry
	// ahead.
	Ranking []int

	Matches int
}

// RankOf returns the 1-based rank achieved by a roster index.
func (r *TournamentResult) RankOf(rosterIndex int) int {
	for pos, idx := range r.Ranking {
		if idx == rosterIndex {
			return pos + 1
		}
	}
	return 0
}

// PlayerAggregate collects one roster entry's results across a batch
// of tournament runs.
type PlayerAggregate struct {
	Name string

	// Scores is the per-run total score, in run order.
	Scores []float64

	// RankCounts[i] is the number of runs finished at rank i+1.
	// The counts always sum to the number of runs executed.
	RankCounts []int

	Summary ScoreSummary
}

// ScoreSummary condenses a score sequence for reporting.
type ScoreSummary struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

// AggregateStatistics is the full batch outcome, one entry per roster
// index in roster order.
type AggregateStatistics struct {
	Players []PlayerAggregate
	Runs    int
}
