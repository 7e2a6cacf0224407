package strategy

import "dilemma-sim/game"

// Adaptive is the tournament-winning strategy. It opens with
// cooperation, retaliates immediately whenever either opponent
// defected in the previous round, and defects unconditionally from the
// late-game threshold on. In quiet rounds it alternates between two
// judgements: on odd rounds it applies the Tolerant rule over both
// opponents' full histories; on even rounds it compares its own total
// defection count to each opponent's and cooperates only while it is
// not behind either of them.
type Adaptive struct {
	lateThreshold int
}

func NewAdaptive(p Params) *Adaptive {
	return &Adaptive{lateThreshold: p.LateGameThreshold}
}

func (*Adaptive) Name() string { return "Adaptive" }

func (a *Adaptive) SelectAction(n int, own, opp1, opp2 game.HistoryView) game.Action {
	if n == 0 {
		return game.Cooperate
	}

	if opp1.At(n-1) == game.Defect || opp2.At(n-1) == game.Defect || n >= a.lateThreshold {
		return game.Defect
	}

	if n%2 != 0 {
		// Odd rounds: the Tolerant judgement.
		defect := opp1.Defections() + opp2.Defections()
		coop := opp1.Cooperations() + opp2.Cooperations()
		if defect > coop {
			return game.Defect
		}
		return game.Cooperate
	}

	// Even rounds: cooperate while not behind either opponent in
	// defections; guilt keeps the score honest.
	mine := own.Defections()
	if mine >= opp1.Defections() && mine >= opp2.Defections() {
		return game.Cooperate
	}
	return game.Defect
}

// ForgivingAdaptive extends Adaptive with bounded forgiveness. When a
// retaliation is triggered it marks the round; a fixed delay later it
// samples a short window of both opponents' recent play and, if both
// show majority cooperation in that window and cooperated in the
// immediately preceding round, forces cooperation for a few
// consecutive rounds before resuming normal logic. Otherwise it
// commits to defection for the rest of the match.
//
// All of this state is scoped to one match; the factory builds a fresh
// instance per match so nothing carries over.
type ForgivingAdaptive struct {
	lateThreshold     int
	forgivenessRounds int

	retaliationRound int // round the current retaliation started, -1 if none
	forgiveUntil     int // exclusive end of a forced-cooperation run, -1 if none
	committed        bool
}

func NewForgivingAdaptive(p Params) *ForgivingAdaptive {
	return &ForgivingAdaptive{
		lateThreshold:     p.LateGameThreshold,
		forgivenessRounds: p.ForgivenessRounds,
		retaliationRound:  -1,
		forgiveUntil:      -1,
	}
}

func (*ForgivingAdaptive) Name() string { return "ForgivingAdaptive" }

func (f *ForgivingAdaptive) SelectAction(n int, own, opp1, opp2 game.HistoryView) game.Action {
	if n == 0 {
		return game.Cooperate
	}
	if n >= f.lateThreshold {
		// The endgame is never forgiven.
		return game.Defect
	}
	if f.committed {
		return game.Defect
	}

	if f.forgiveUntil >= 0 {
		if n < f.forgiveUntil {
			return game.Cooperate
		}
		f.forgiveUntil = -1
	}

	if f.retaliationRound >= 0 && n >= f.retaliationRound+ObservationDelay {
		if f.opponentsReconciled(n, opp1, opp2) {
			f.retaliationRound = -1
			f.forgiveUntil = n + f.forgivenessRounds
			return game.Cooperate
		}
		f.committed = true
		return game.Defect
	}

	if opp1.At(n-1) == game.Defect || opp2.At(n-1) == game.Defect {
		if f.retaliationRound < 0 {
			f.retaliationRound = n
		}
		return game.Defect
	}

	if f.retaliationRound >= 0 {
		// Still inside the observation delay: keep retaliating.
		return game.Defect
	}

	if n%2 != 0 {
		defect := opp1.Defections() + opp2.Defections()
		coop := opp1.Cooperations() + opp2.Cooperations()
		if defect > coop {
			return game.Defect
		}
		return game.Cooperate
	}

	mine := own.Defections()
	if mine >= opp1.Defections() && mine >= opp2.Defections() {
		return game.Cooperate
	}
	return game.Defect
}

// opponentsReconciled samples the trailing observation window of both
// opponents: both must show majority cooperation in the window and
// have cooperated in the immediately preceding round.
func (f *ForgivingAdaptive) opponentsReconciled(n int, opp1, opp2 game.HistoryView) bool {
	if opp1.At(n-1) != game.Cooperate || opp2.At(n-1) != game.Cooperate {
		return false
	}
	window := ObservationWindow
	if window > n {
		window = n
	}
	return majorityCooperation(opp1, n, window) && majorityCooperation(opp2, n, window)
}

func majorityCooperation(v game.HistoryView, n, window int) bool {
	coop := 0
	for i := n - window; i < n; i++ {
		if v.At(i) == game.Cooperate {
			coop++
		}
	}
	return coop*2 > window
}
