package tournament

import (
	"golang.org/x/sync/errgroup"

	"dilemma-sim/model"
)

// playParallel runs combinations concurrently. Each combination has
// its own pre-drawn seed and its own agents, and writes only its own
// slot of the results slice, so there are no shared updates to lose.
// The caller merges the slots in ascending enumeration order, which
// keeps totals bit-for-bit identical to sequential execution.
func (s *Scheduler) playParallel(combos []combination, seeds []uint64) ([]model.MatchResult, error) {
	results := make([]model.MatchResult, len(combos))

	var g errgroup.Group
	g.SetLimit(s.parallelism)
	for ci, combo := range combos {
		ci, combo := ci, combo
		g.Go(func() error {
			res, err := s.playCombination(combo, seeds[ci])
			if err != nil {
				return err
			}
			results[ci] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
