package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ethz-coss/learning-in-games/qtable"
)

func newTable(t *testing.T, data []float64, agents, states,
	actions int) *qtable.Table {
	t.Helper()
	table, err := qtable.FromSlice(data, agents, states, actions)
	require.NoError(t, err)
	return table
}

func TestEGreedyZeroEpsilonIsGreedy(t *testing.T) {
	// Three agents with known (first-occurrence) maxima
	table := newTable(t, []float64{
		0, 1, 0, // agent 0: max at 1
		2, 2, 0, // agent 1: tie, first occurrence at 0
		0, 0, 5, // agent 2: max at 2
	}, 3, 1, 3)

	selector := NewEGreedy(14)
	states := []int{0, 0, 0}

	for i := 0; i < 100; i++ {
		actions := selector.SelectActions(table, states, 0)
		assert.Equal(t, []int{1, 0, 2}, actions)
	}
}

func TestEGreedyFullEpsilonIsUniform(t *testing.T) {
	table := newTable(t, []float64{0, 100, 0}, 1, 1, 3)
	selector := NewEGreedy(101)

	const draws = 6000
	counts := make([]float64, 3)
	for i := 0; i < draws; i++ {
		actions := selector.SelectActions(table, []int{0}, 1)
		counts[actions[0]]++
	}

	// Chi-square goodness of fit against the uniform distribution
	expected := float64(draws) / 3
	chi2 := 0.0
	for _, count := range counts {
		chi2 += (count - expected) * (count - expected) / expected
	}

	chiDist := distuv.ChiSquared{K: 2}
	assert.Less(t, chiDist.CDF(chi2), 0.999,
		"action counts %v are not uniform", counts)
}

func TestEGreedyDrawsIndependentOfTableContents(t *testing.T) {
	// The same seed must yield the same draw sequence no matter what
	// the table holds, since both random draws are consumed on every
	// round
	tableA := newTable(t, []float64{5, 0, 0}, 1, 1, 3)
	tableB := newTable(t, []float64{0, 0, 5}, 1, 1, 3)

	p1 := NewEGreedy(77)
	p2 := NewEGreedy(77)

	for i := 0; i < 50; i++ {
		a := p1.SelectActions(tableA, []int{0}, 1)
		b := p2.SelectActions(tableB, []int{0}, 1)
		assert.Equal(t, a, b)
	}
}

func TestEGreedyRandomTieBreak(t *testing.T) {
	// Two exactly tied maxima: each must be selected with near-equal
	// frequency and the non-maximal action never
	table := newTable(t, []float64{1, 1, 0}, 1, 1, 3)
	selector := NewEGreedyRandomTieBreak(3)

	const draws = 4000
	counts := make([]int, 3)
	for i := 0; i < draws; i++ {
		actions := selector.SelectActions(table, []int{0}, 0)
		counts[actions[0]]++
	}

	assert.Zero(t, counts[2])
	assert.InDelta(t, draws/2, counts[0], 300)
	assert.InDelta(t, draws/2, counts[1], 300)
}

func TestEGreedyRandomTieBreakExplores(t *testing.T) {
	table := newTable(t, []float64{1, 0}, 1, 1, 2)
	selector := NewEGreedyRandomTieBreak(9)

	// With full exploration the non-maximal action must appear
	seen := make(map[int]bool)
	for i := 0; i < 200; i++ {
		actions := selector.SelectActions(table, []int{0}, 1)
		seen[actions[0]] = true
	}
	assert.True(t, seen[0])
	assert.True(t, seen[1])
}
