// Package strategy implements the fixed roster of decision rules that
// compete in the tournament, plus the factory that builds fresh agent
// instances per match.
package strategy

// Tuning constants for the adaptive strategies. Baselines come from the
// tournament the Adaptive strategy was originally tuned in (roughly
// 100-round matches, so the late-game trigger sits just short of the
// maximum match length).
const (
	// DefaultLateGameThreshold is the round index from which the
	// adaptive strategies defect unconditionally: with matches drawn
	// from 90-110 rounds there is no future left to protect.
	DefaultLateGameThreshold = 109

	// ObservationDelay is how many rounds after marking a retaliation
	// the forgiving variant waits before judging whether the opponents
	// have returned to cooperation.
	ObservationDelay = 4

	// ObservationWindow is how many trailing rounds of each opponent
	// the forgiving variant samples when judging them.
	ObservationWindow = 3

	// DefaultForgivenessRounds is how many consecutive rounds of forced
	// cooperation a successful reconciliation buys before normal logic
	// resumes.
	DefaultForgivenessRounds = 2
)

// Params carries the configurable knobs shared by the adaptive
// strategies.
type Params struct {
	LateGameThreshold int
	ForgivenessRounds int
}

// DefaultParams returns the tuning the original tournament ran with.
func DefaultParams() Params {
	return Params{
		LateGameThreshold: DefaultLateGameThreshold,
		ForgivenessRounds: DefaultForgivenessRounds,
	}
}
