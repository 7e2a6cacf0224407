package strategy

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"dilemma-sim/game"
)

// ID identifies a strategy type in roster configuration.
type ID string

const (
	IDCooperator        ID = "cooperator"
	IDDefector          ID = "defector"
	IDRandom            ID = "random"
	IDTolerant          ID = "tolerant"
	IDRandomMimic       ID = "random_mimic"
	IDFixedRandom       ID = "fixed_random"
	IDAdaptive          ID = "adaptive"
	IDForgivingAdaptive ID = "forgiving_adaptive"
)

// ErrUnknownStrategy reports a roster identifier the factory does not
// recognise. This is a configuration error and aborts before any
// simulation work; there is no silent default.
var ErrUnknownStrategy = errors.New("unknown strategy")

// New builds a fresh agent instance for one match. Randomized
// strategies draw from rng, which the caller owns; a fresh instance
// per match is what keeps per-match state (FixedRandom's coin,
// ForgivingAdaptive's retaliation bookkeeping) from leaking between
// matches.
func New(id ID, rng *rand.Rand, p Params) (game.Agent, error) {
	switch id {
	case IDCooperator:
		return Cooperator{}, nil
	case IDDefector:
		return Defector{}, nil
	case IDRandom:
		return NewRandom(rng), nil
	case IDTolerant:
		return Tolerant{}, nil
	case IDRandomMimic:
		return NewRandomMimic(rng), nil
	case IDFixedRandom:
		return NewFixedRandom(rng), nil
	case IDAdaptive:
		return NewAdaptive(p), nil
	case IDForgivingAdaptive:
		return NewForgivingAdaptive(p), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, id)
}

// displayNames mirrors the Name() of each variant. A static table
// rather than a throwaway instance: FixedRandom draws its coin in the
// constructor, so building instances just to read names would need a
// live random source.
var displayNames = map[ID]string{
	IDCooperator:        "Cooperator",
	IDDefector:          "Defector",
	IDRandom:            "Random",
	IDTolerant:          "Tolerant",
	IDRandomMimic:       "RandomMimic",
	IDFixedRandom:       "FixedRandom",
	IDAdaptive:          "Adaptive",
	IDForgivingAdaptive: "ForgivingAdaptive",
}

// Name returns the display name of a strategy type without building an
// instance, for reporting and export headers.
func Name(id ID) (string, error) {
	name, ok := displayNames[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, id)
	}
	return name, nil
}

// Roster is the ordered list of strategy types competing in a
// tournament batch. Order matters: it is the tie-break for rankings
// and the row order of every export.
type Roster []ID

// DefaultRoster mirrors the original seven-player tournament.
func DefaultRoster() Roster {
	return Roster{
		IDCooperator,
		IDDefector,
		IDRandom,
		IDTolerant,
		IDFixedRandom,
		IDRandomMimic,
		IDAdaptive,
	}
}

// Validate confirms every roster entry is constructible.
func (r Roster) Validate() error {
	if len(r) == 0 {
		return fmt.Errorf("roster must not be empty")
	}
	for i, id := range r {
		if _, err := Name(id); err != nil {
			return fmt.Errorf("roster entry %d: %w", i, err)
		}
	}
	return nil
}

// Names resolves the roster to display names, in roster order.
func (r Roster) Names() ([]string, error) {
	names := make([]string, len(r))
	for i, id := range r {
		name, err := Name(id)
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	return names, nil
}
