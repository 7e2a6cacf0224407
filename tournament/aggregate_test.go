package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/exp/rand"

	"dilemma-sim/strategy"
)

func TestRunAllCollectsScoresAndRankCounts(t *testing.T) {
	const runs = 12
	sched := newTestScheduler(t, strategy.DefaultRoster(), 1)
	stats, err := NewAggregator(sched, nil).RunAll(rand.New(rand.NewSource(5)), runs)
	require.NoError(t, err)

	require.Equal(t, runs, stats.Runs)
	require.Len(t, stats.Players, 7)

	for _, p := range stats.Players {
		assert.Len(t, p.Scores, runs, "%s must have one score per run", p.Name)

		total := 0
		for _, count := range p.RankCounts {
			total += count
		}
		assert.Equal(t, runs, total, "%s rank counts must sum to the run count", p.Name)
	}

	// Every run assigns each rank exactly once across the roster.
	for pos := range stats.Players {
		atPos := 0
		for _, p := range stats.Players {
			atPos += p.RankCounts[pos]
		}
		assert.Equal(t, runs, atPos, "rank %d must be assigned once per run", pos+1)
	}
}

func TestRunAllSummaryStatistics(t *testing.T) {
	sched := newTestScheduler(t, strategy.DefaultRoster(), 1)
	stats, err := NewAggregator(sched, nil).RunAll(rand.New(rand.NewSource(5)), 20)
	require.NoError(t, err)

	for _, p := range stats.Players {
		s := p.Summary
		assert.LessOrEqual(t, s.Min, s.Mean, "%s", p.Name)
		assert.LessOrEqual(t, s.Mean, s.Max, "%s", p.Name)
		assert.GreaterOrEqual(t, s.StdDev, 0.0, "%s", p.Name)
	}
}

func TestRunAllIsDeterministicForAFixedSeed(t *testing.T) {
	first, err := NewAggregator(newTestScheduler(t, strategy.DefaultRoster(), 1), nil).
		RunAll(rand.New(rand.NewSource(21)), 5)
	require.NoError(t, err)
	second, err := NewAggregator(newTestScheduler(t, strategy.DefaultRoster(), 4), nil).
		RunAll(rand.New(rand.NewSource(21)), 5)
	require.NoError(t, err)

	for i := range first.Players {
		assert.Equal(t, first.Players[i].Scores, second.Players[i].Scores)
		assert.Equal(t, first.Players[i].RankCounts, second.Players[i].RankCounts)
	}
}

func TestRunAllLogsTopThreePerRun(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sched := newTestScheduler(t, strategy.DefaultRoster(), 1)
	_, err := NewAggregator(sched, zap.New(core)).RunAll(rand.New(rand.NewSource(9)), 2)
	require.NoError(t, err)

	entries := logs.FilterMessage("tournament run complete").All()
	require.Len(t, entries, 2)
	for _, entry := range entries {
		fields := entry.ContextMap()
		topPlayers, ok := fields["top_players"].([]interface{})
		require.True(t, ok, "top_players field missing")
		assert.Len(t, topPlayers, 3)
		topTotals, ok := fields["top_totals"].([]interface{})
		require.True(t, ok, "top_totals field missing")
		require.Len(t, topTotals, 3)
		first, ok := topTotals[0].(float64)
		require.True(t, ok)
		second, ok := topTotals[1].(float64)
		require.True(t, ok)
		third, ok := topTotals[2].(float64)
		require.True(t, ok)
		assert.GreaterOrEqual(t, first, second)
		assert.GreaterOrEqual(t, second, third)
	}
}

func TestRunAllRejectsNonPositiveRunCounts(t *testing.T) {
	sched := newTestScheduler(t, strategy.DefaultRoster(), 1)
	_, err := NewAggregator(sched, nil).RunAll(rand.New(rand.NewSource(1)), 0)
	assert.Error(t, err)
}

func TestNamesFollowRosterOrder(t *testing.T) {
	sched := newTestScheduler(t, strategy.Roster{strategy.IDAdaptive, strategy.IDTolerant}, 1)
	stats, err := NewAggregator(sched, nil).RunAll(rand.New(rand.NewSource(1)), 2)
	require.NoError(t, err)
	require.Len(t, stats.Players, 2)
	assert.Equal(t, "Adaptive", stats.Players[0].Name)
	assert.Equal(t, "Tolerant", stats.Players[1].Name)
}
