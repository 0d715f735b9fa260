// Package policy implements the action-selection policies of
// independent tabular learners
package policy

import (
	"golang.org/x/exp/rand"

	"github.com/ethz-coss/learning-in-games/qtable"
	"github.com/ethz-coss/learning-in-games/utils/floatutils"
)

// EGreedy implements an ε-greedy selection policy. With probability ε
// an agent takes a uniformly random action; otherwise it takes the
// action with the maximal value in its current state, breaking ties
// by first occurrence.
type EGreedy struct {
	rng *rand.Rand
}

// NewEGreedy returns a new EGreedy selector drawing from a generator
// seeded with seed
func NewEGreedy(seed uint64) *EGreedy {
	return &EGreedy{rng: rand.New(rand.NewSource(seed))}
}

// SelectActions selects one action per agent with exploration rate
// param. One uniform draw and one random action index are consumed
// per agent regardless of which branch is taken, so that a fixed seed
// produces the same draw sequence whatever the table contents.
func (p *EGreedy) SelectActions(table *qtable.Table, states []int,
	param float64) []int {

	actions := make([]int, len(states))
	for i, state := range states {
		u := p.rng.Float64()
		random := p.rng.Intn(table.NumActions())

		if u >= param {
			actions[i] = floatutils.ArgMax(table.ActionValues(i, state))
		} else {
			actions[i] = random
		}
	}
	return actions
}

// EGreedyRandomTieBreak implements an ε-greedy selection policy whose
// exploit branch selects uniformly at random among all actions whose
// value is within floating tolerance of the row maximum, instead of
// always taking the first.
type EGreedyRandomTieBreak struct {
	rng *rand.Rand
}

// NewEGreedyRandomTieBreak returns a new EGreedyRandomTieBreak
// selector drawing from a generator seeded with seed
func NewEGreedyRandomTieBreak(seed uint64) *EGreedyRandomTieBreak {
	return &EGreedyRandomTieBreak{rng: rand.New(rand.NewSource(seed))}
}

// SelectActions selects one action per agent with exploration rate
// param, sampling uniformly from the tie set of maximal actions when
// exploiting
func (p *EGreedyRandomTieBreak) SelectActions(table *qtable.Table,
	states []int, param float64) []int {

	actions := make([]int, len(states))
	for i, state := range states {
		u := p.rng.Float64()
		random := p.rng.Intn(table.NumActions())

		if u >= param {
			maxima := floatutils.CloseMaxima(table.ActionValues(i, state))
			actions[i] = maxima[p.rng.Intn(len(maxima))]
		} else {
			actions[i] = random
		}
	}
	return actions
}
