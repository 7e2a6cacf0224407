// Package game implements the three-player iterated Prisoner's Dilemma
// primitives: actions, the payoff model, per-match histories, and the
// match loop.
package game

import "fmt"

// Action is one player's choice in a single round.
type Action uint8

const (
	Cooperate Action = iota
	Defect
)

func (a Action) String() string {
	if a == Cooperate {
		return "C"
	}
	return "D"
}

// PayoffTable maps an action triple to the payoff of the first
// position. The three-player game is built to resemble the two-player
// dilemma whenever one response is fixed, with symmetry between the
// two opponent positions, which forces the unique ordering
//
//	U(DCC) > U(CCC) > U(DDC) > U(CDC) > U(DDD) > U(CDD)
type PayoffTable struct {
	cells [2][2][2]float64
}

// DefaultPayoffTable returns the standard table:
// 8 > 6 > 5 > 3 > 2 > 0 over the ordering above.
func DefaultPayoffTable() PayoffTable {
	return PayoffTable{cells: [2][2][2]float64{
		{{6, 3}, // self cooperates, first opponent cooperates
			{3, 0}}, // self cooperates, first opponent defects
		{{8, 5}, // self defects, first opponent cooperates
			{5, 2}}, // self defects, first opponent defects
	}}
}

// Payoff returns the payoff for the "self" position given the two
// opponents' actions. Pure lookup, no side effects.
func (t PayoffTable) Payoff(self, opp1, opp2 Action) float64 {
	return t.cells[self][opp1][opp2]
}

// Validate checks the structural invariants: symmetry under swapping
// the two opponent positions, and the strict dilemma ordering. A table
// failing validation must abort the run before any simulation work.
func (t PayoffTable) Validate() error {
	for s := Cooperate; s <= Defect; s++ {
		if t.cells[s][0][1] != t.cells[s][1][0] {
			return fmt.Errorf("payoff table not symmetric in opponents for self=%s", s)
		}
	}
	ordering := []struct {
		name string
		v    float64
	}{
		{"U(DCC)", t.Payoff(Defect, Cooperate, Cooperate)},
		{"U(CCC)", t.Payoff(Cooperate, Cooperate, Cooperate)},
		{"U(DDC)", t.Payoff(Defect, Defect, Cooperate)},
		{"U(CDC)", t.Payoff(Cooperate, Defect, Cooperate)},
		{"U(DDD)", t.Payoff(Defect, Defect, Defect)},
		{"U(CDD)", t.Payoff(Cooperate, Defect, Defect)},
	}
	for i := 1; i < len(ordering); i++ {
		prev, cur := ordering[i-1], ordering[i]
		if prev.v <= cur.v {
			return fmt.Errorf("payoff ordering violated: %s (%.1f) must exceed %s (%.1f)",
				prev.name, prev.v, cur.name, cur.v)
		}
	}
	return nil
}
