package game

import "dilemma-sim/model"

// Agent is one seat's decision maker. Implementations may keep private
// state across rounds of a single match but must never mutate the
// histories they are handed.
type Agent interface {
	// SelectAction is called once per round with the rounds completed
	// so far (n) and read-only views of all three histories, own first.
	SelectAction(n int, own, opp1, opp2 HistoryView) Action
	Name() string
}

// PlayMatch drives a fixed-length repeated game between three agents
// and returns the mean per-round payoff of each seat.
//
// Each round every agent observes the histories of rounds strictly
// before the current one, with the opponent seats rotated so that seat
// A sees (A,B,C), seat B sees (B,C,A) and seat C sees (C,A,B). Payoffs
// are computed with the same rotation, which preserves the table's
// opponent symmetry. Actions are appended only after all three payoffs
// for the round are scored.
func PlayMatch(table PayoffTable, a, b, c Agent, rounds int) model.MatchResult {
	histA := NewHistory(rounds)
	histB := NewHistory(rounds)
	histC := NewHistory(rounds)

	var scoreA, scoreB, scoreC float64

	for i := 0; i < rounds; i++ {
		va, vb, vc := histA.View(), histB.View(), histC.View()

		playA := a.SelectAction(i, va, vb, vc)
		playB := b.SelectAction(i, vb, vc, va)
		playC := c.SelectAction(i, vc, va, vb)

		scoreA += table.Payoff(playA, playB, playC)
		scoreB += table.Payoff(playB, playC, playA)
		scoreC += table.Payoff(playC, playA, playB)

		histA.Append(playA)
		histB.Append(playB)
		histC.Append(playC)
	}

	r := float64(rounds)
	return model.MatchResult{
		MeanScores: [3]float64{scoreA / r, scoreB / r, scoreC / r},
		Rounds:     rounds,
	}
}
