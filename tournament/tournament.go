// Package tournament schedules round-robin matches over a strategy
// roster and aggregates rankings across repeated tournament runs.
package tournament

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"dilemma-sim/game"
	"dilemma-sim/model"
	"dilemma-sim/strategy"
)

// Options configures a Scheduler.
type Options struct {
	Roster strategy.Roster
	Params strategy.Params

	// MinRounds and MaxRounds bound the per-match round count, drawn
	// uniformly inclusive per match.
	MinRounds int
	MaxRounds int

	// Parallelism > 1 runs combinations of one tournament concurrently.
	// Results are identical to sequential execution for the same seed.
	Parallelism int

	Logger *zap.Logger
}

// Scheduler runs one full tournament: every multiset triple of roster
// indices plays one match.
type Scheduler struct {
	table  game.PayoffTable
	roster strategy.Roster
	names  []string
	params strategy.Params

	minRounds   int
	maxRounds   int
	parallelism int

	log *zap.Logger
}

// NewScheduler validates the options and the payoff table up front so
// a misconfigured batch aborts before any simulation work.
func NewScheduler(opts Options) (*Scheduler, error) {
	if err := opts.Roster.Validate(); err != nil {
		return nil, fmt.Errorf("invalid roster: %w", err)
	}
	if opts.MinRounds <= 0 || opts.MaxRounds < opts.MinRounds {
		return nil, fmt.Errorf("invalid round bounds [%d, %d]", opts.MinRounds, opts.MaxRounds)
	}
	table := game.DefaultPayoffTable()
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid payoff table: %w", err)
	}
	names, err := opts.Roster.Names()
	if err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}
	return &Scheduler{
		table:       table,
		roster:      opts.Roster,
		names:       names,
		params:      opts.Params,
		minRounds:   opts.MinRounds,
		maxRounds:   opts.MaxRounds,
		parallelism: parallelism,
		log:         log.Named("tournament"),
	}, nil
}

// combination is one scheduled match: roster indices i <= j <= k.
type combination [3]int

// combinations enumerates every multiset triple over r roster indices
// in ascending order. Duplicates are deliberate: two copies of a
// strategy play each other strategy once, and three copies play once.
func combinations(r int) []combination {
	combos := make([]combination, 0, CombinationCount(r))
	for i := 0; i < r; i++ {
		for j := i; j < r; j++ {
			for k := j; k < r; k++ {
				combos = append(combos, combination{i, j, k})
			}
		}
	}
	return combos
}

// CombinationCount returns C(r+2, 3), the number of matches in one
// tournament over r roster entries.
func CombinationCount(r int) int {
	return r * (r + 1) * (r + 2) / 6
}

// Run plays one full tournament. All randomness flows from rng: one
// seed per combination is drawn up front in enumeration order, so
// sequential and parallel execution consume the caller's source
// identically and produce identical results.
func (s *Scheduler) Run(rng *rand.Rand) (*model.TournamentResult, error) {
	combos := combinations(len(s.roster))
	seeds := make([]uint64, len(combos))
	for ci := range combos {
		seeds[ci] = rng.Uint64()
	}

	var (
		results []model.MatchResult
		err     error
	)
	if s.parallelism > 1 {
		results, err = s.playParallel(combos, seeds)
	} else {
		results, err = s.playSequential(combos, seeds)
	}
	if err != nil {
		return nil, err
	}

	totals := make([]float64, len(s.roster))
	// Fixed final-merge order: ascending combination enumeration order,
	// so floating-point sums are reproducible regardless of scheduling.
	for ci, combo := range combos {
		res := results[ci]
		totals[combo[0]] += res.MeanScores[0]
		totals[combo[1]] += res.MeanScores[1]
		totals[combo[2]] += res.MeanScores[2]

		s.log.Debug("match complete",
			zap.Int("combination", ci+1),
			zap.String("a", s.names[combo[0]]),
			zap.String("b", s.names[combo[1]]),
			zap.String("c", s.names[combo[2]]),
			zap.Int("rounds", res.Rounds),
			zap.Float64s("mean_scores", res.MeanScores[:]),
		)
	}

	return &model.TournamentResult{
		Totals:  totals,
		Ranking: rankIndices(totals),
		Matches: len(combos),
	}, nil
}

// playSequential plays the combinations strictly in order.
func (s *Scheduler) playSequential(combos []combination, seeds []uint64) ([]model.MatchResult, error) {
	results := make([]model.MatchResult, len(combos))
	for ci, combo := range combos {
		res, err := s.playCombination(combo, seeds[ci])
		if err != nil {
			return nil, err
		}
		results[ci] = res
	}
	return results, nil
}

// playCombination runs one match on its own seeded source: the round
// count draw, agent construction and in-round randomness are all
// isolated from other combinations.
func (s *Scheduler) playCombination(combo combination, seed uint64) (model.MatchResult, error) {
	matchRNG := rand.New(rand.NewSource(seed))
	rounds := s.minRounds + matchRNG.Intn(s.maxRounds-s.minRounds+1)

	agents := make([]game.Agent, 3)
	for slot, idx := range combo {
		// A fresh instance per seat, even when the same type repeats:
		// per-match state must never be shared between seats either.
		agent, err := strategy.New(s.roster[idx], matchRNG, s.params)
		if err != nil {
			return model.MatchResult{}, fmt.Errorf("building agent for roster index %d: %w", idx, err)
		}
		agents[slot] = agent
	}

	return game.PlayMatch(s.table, agents[0], agents[1], agents[2], rounds), nil
}

// rankIndices orders roster indices by descending total score. The
// stable sort keeps the earlier-declared roster entry ahead on exact
// ties.
func rankIndices(totals []float64) []int {
	order := make([]int, len(totals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return totals[order[a]] > totals[order[b]]
	})
	return order
}
