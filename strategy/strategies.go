package strategy

import (
	"golang.org/x/exp/rand"

	"dilemma-sim/game"
)

// Cooperator always cooperates.
type Cooperator struct{}

func (Cooperator) Name() string { return "Cooperator" }

func (Cooperator) SelectAction(n int, own, opp1, opp2 game.HistoryView) game.Action {
	return game.Cooperate
}

// Defector always defects.
type Defector struct{}

func (Defector) Name() string { return "Defector" }

func (Defector) SelectAction(n int, own, opp1, opp2 game.HistoryView) game.Action {
	return game.Defect
}

// Random cooperates or defects with equal probability each round,
// independent draws.
type Random struct {
	rng *rand.Rand
}

func NewRandom(rng *rand.Rand) *Random { return &Random{rng: rng} }

func (*Random) Name() string { return "Random" }

func (r *Random) SelectAction(n int, own, opp1, opp2 game.HistoryView) game.Action {
	if r.rng.Intn(2) == 0 {
		return game.Cooperate
	}
	return game.Defect
}

// Tolerant counts cooperations and defections across both opponents'
// full histories and defects only when defections strictly outnumber
// cooperations. An empty history resolves toward cooperation.
type Tolerant struct{}

func (Tolerant) Name() string { return "Tolerant" }

func (Tolerant) SelectAction(n int, own, opp1, opp2 game.HistoryView) game.Action {
	defect := opp1.Defections() + opp2.Defections()
	coop := opp1.Cooperations() + opp2.Cooperations()
	if defect > coop {
		return game.Defect
	}
	return game.Cooperate
}

// RandomMimic plays tit-for-tat against a randomly chosen opponent:
// it cooperates on round 0 and thereafter replays the immediately
// preceding action of one of the two opponents, picked uniformly each
// round.
type RandomMimic struct {
	rng *rand.Rand
}

func NewRandomMimic(rng *rand.Rand) *RandomMimic { return &RandomMimic{rng: rng} }

func (*RandomMimic) Name() string { return "RandomMimic" }

func (m *RandomMimic) SelectAction(n int, own, opp1, opp2 game.HistoryView) game.Action {
	if n == 0 {
		return game.Cooperate
	}
	if m.rng.Intn(2) == 0 {
		return opp1.At(n - 1)
	}
	return opp2.At(n - 1)
}

// FixedRandom flips one coin at construction and commits to that
// action for the whole match. The non-trivial constructor is the
// point: the draw is match-scoped state and must never leak into the
// next match.
type FixedRandom struct {
	action game.Action
}

func NewFixedRandom(rng *rand.Rand) *FixedRandom {
	a := game.Cooperate
	if rng.Intn(2) == 1 {
		a = game.Defect
	}
	return &FixedRandom{action: a}
}

func (*FixedRandom) Name() string { return "FixedRandom" }

func (f *FixedRandom) SelectAction(n int, own, opp1, opp2 game.HistoryView) game.Action {
	return f.action
}
