package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/exp/rand"

	"dilemma-sim/strategy"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestCombinationCount(t *testing.T) {
	cases := []struct {
		roster, matches int
	}{
		{1, 1},
		{2, 4},
		{3, 10},
		{6, 56},
		{7, 84},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.matches, CombinationCount(tc.roster), "roster size %d", tc.roster)
		assert.Len(t, combinations(tc.roster), tc.matches)
	}
}

func TestCombinationsAreOrderedMultisets(t *testing.T) {
	combos := combinations(4)
	seen := map[combination]bool{}
	for _, c := range combos {
		assert.LessOrEqual(t, c[0], c[1])
		assert.LessOrEqual(t, c[1], c[2])
		assert.False(t, seen[c], "combination %v enumerated twice", c)
		seen[c] = true
	}
	// Self-play triples are deliberate.
	assert.True(t, seen[combination{2, 2, 2}])
	assert.True(t, seen[combination{0, 0, 3}])
}

func newTestScheduler(t *testing.T, roster strategy.Roster, parallelism int) *Scheduler {
	t.Helper()
	sched, err := NewScheduler(Options{
		Roster:      roster,
		Params:      strategy.DefaultParams(),
		MinRounds:   90,
		MaxRounds:   110,
		Parallelism: parallelism,
	})
	require.NoError(t, err)
	return sched
}

func TestSchedulerRejectsBadOptions(t *testing.T) {
	_, err := NewScheduler(Options{Roster: strategy.Roster{"nope"}, MinRounds: 90, MaxRounds: 110})
	require.Error(t, err)
	assert.ErrorIs(t, err, strategy.ErrUnknownStrategy)

	_, err = NewScheduler(Options{Roster: strategy.DefaultRoster(), MinRounds: 110, MaxRounds: 90})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "round bounds")

	_, err = NewScheduler(Options{Roster: strategy.Roster{}, MinRounds: 90, MaxRounds: 110})
	assert.Error(t, err)
}

func TestCooperatorDefectorDuelIsAnExactTie(t *testing.T) {
	// With a two-entry roster every match is deterministic and the
	// totals work out to exactly 24 points each, independent of round
	// counts: (0,0,0) gives 18/0, (0,0,1) gives 6/8, (0,1,1) gives
	// 0/10 and (1,1,1) gives 0/6. The tie must resolve to the earlier
	// roster entry.
	sched := newTestScheduler(t, strategy.Roster{strategy.IDCooperator, strategy.IDDefector}, 1)
	res, err := sched.Run(rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	require.Equal(t, 4, res.Matches)
	assert.InDelta(t, 24.0, res.Totals[0], 1e-9)
	assert.InDelta(t, 24.0, res.Totals[1], 1e-9)
	assert.Equal(t, []int{0, 1}, res.Ranking)
	assert.Equal(t, 1, res.RankOf(0))
	assert.Equal(t, 2, res.RankOf(1))
}

func TestRankingIsATotalOrderWithoutGaps(t *testing.T) {
	sched := newTestScheduler(t, strategy.DefaultRoster(), 1)
	res, err := sched.Run(rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	require.Equal(t, 84, res.Matches)
	require.Len(t, res.Ranking, 7)
	seen := make([]bool, 7)
	for _, idx := range res.Ranking {
		require.False(t, seen[idx], "roster index %d ranked twice", idx)
		seen[idx] = true
	}
	for pos := 1; pos < len(res.Ranking); pos++ {
		assert.GreaterOrEqual(t,
			res.Totals[res.Ranking[pos-1]], res.Totals[res.Ranking[pos]],
			"ranking must be descending by total")
	}
}

func TestRunIsDeterministicForAFixedSeed(t *testing.T) {
	first, err := newTestScheduler(t, strategy.DefaultRoster(), 1).Run(rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	second, err := newTestScheduler(t, strategy.DefaultRoster(), 1).Run(rand.New(rand.NewSource(99)))
	require.NoError(t, err)

	assert.Equal(t, first.Totals, second.Totals)
	assert.Equal(t, first.Ranking, second.Ranking)
}

func TestParallelRunMatchesSequentialBitForBit(t *testing.T) {
	sequential, err := newTestScheduler(t, strategy.DefaultRoster(), 1).Run(rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	parallel, err := newTestScheduler(t, strategy.DefaultRoster(), 8).Run(rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.Equal(t, sequential.Totals, parallel.Totals)
	assert.Equal(t, sequential.Ranking, parallel.Ranking)
}

func TestRankIndicesStableOnTies(t *testing.T) {
	order := rankIndices([]float64{5, 9, 5, 1, 9})
	assert.Equal(t, []int{1, 4, 0, 2, 3}, order)
}
