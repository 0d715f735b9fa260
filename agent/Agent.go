// Package agent defines the shared pieces of independent tabular
// learners: action selection, per-agent learning and discount rates,
// and exploration scheduling.
package agent

import "github.com/ethz-coss/learning-in-games/qtable"

// Selector chooses one action per agent each round.
//
// Selectors read the value row of each agent at that agent's current
// state and produce a joint action vector with one entry per agent.
// The param argument is the policy parameter for the current round:
// the exploration rate for ε-greedy selectors and the temperature for
// softmax-based selectors. Its per-round value is produced by a
// Schedule, independently of the Selector.
type Selector interface {
	SelectActions(table *qtable.Table, states []int, param float64) []int
}
