package tournament

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"dilemma-sim/model"
)

// Aggregator repeats tournament runs and collects per-type score
// sequences and rank-count histograms.
type Aggregator struct {
	sched *Scheduler
	log   *zap.Logger
}

func NewAggregator(sched *Scheduler, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{sched: sched, log: logger.Named("aggregator")}
}

// RunAll executes runs independent tournaments. Each run starts from
// fresh totals; the only cross-run state is the two accumulators per
// roster entry: its score sequence and its rank-count histogram.
func (a *Aggregator) RunAll(rng *rand.Rand, runs int) (*model.AggregateStatistics, error) {
	if runs <= 0 {
		return nil, fmt.Errorf("run count must be positive, got %d", runs)
	}

	size := len(a.sched.roster)
	players := make([]model.PlayerAggregate, size)
	for i := range players {
		players[i] = model.PlayerAggregate{
			Name:       a.sched.names[i],
			Scores:     make([]float64, 0, runs),
			RankCounts: make([]int, size),
		}
	}

	for run := 0; run < runs; run++ {
		result, err := a.sched.Run(rng)
		if err != nil {
			return nil, fmt.Errorf("tournament run %d: %w", run+1, err)
		}

		for i := range players {
			players[i].Scores = append(players[i].Scores, result.Totals[i])
		}
		for pos, idx := range result.Ranking {
			players[idx].RankCounts[pos]++
		}

		podium := result.Ranking
		if len(podium) > 3 {
			podium = podium[:3]
		}
		topNames := make([]string, len(podium))
		topTotals := make([]float64, len(podium))
		for pos, idx := range podium {
			topNames[pos] = a.sched.names[idx]
			topTotals[pos] = result.Totals[idx]
		}

		a.log.Info("tournament run complete",
			zap.Int("run", run+1),
			zap.Int("matches", result.Matches),
			zap.Strings("top_players", topNames),
			zap.Float64s("top_totals", topTotals),
		)
	}

	for i := range players {
		players[i].Summary = summarize(players[i].Scores)
	}

	return &model.AggregateStatistics{Players: players, Runs: runs}, nil
}

// summarize condenses a per-run score sequence for reporting. StdDev
// is the sample standard deviation and is zero for a single run.
func summarize(scores []float64) model.ScoreSummary {
	s := model.ScoreSummary{
		Mean: stat.Mean(scores, nil),
		Min:  floats.Min(scores),
		Max:  floats.Max(scores),
	}
	if len(scores) > 1 {
		s.StdDev = stat.StdDev(scores, nil)
	}
	return s
}
