// Package qlearning implements the one-step Bellman update for
// independent tabular Q-learning
package qlearning

import (
	"math"

	"github.com/ethz-coss/learning-in-games/agent"
	"github.com/ethz-coss/learning-in-games/qtable"
)

// QLearner performs the Bellman update for all agents at once. Its
// learning rates and discount factors are fixed at construction.
type QLearner struct {
	alpha agent.Rates
	gamma agent.Rates
}

// New creates a new QLearner with per-agent learning rates alpha and
// discount factors gamma
func New(alpha, gamma agent.Rates) *QLearner {
	return &QLearner{alpha: alpha, gamma: gamma}
}

// Step updates the value table toward the Bellman target for every
// agent i:
//
//	target  = R[i] + γ[i] * max_a' table[i, next[i], a']
//	δ[i]    = α[i] * (target - table[i, states[i], actions[i]])
//
// and adds δ[i] to the entry of the taken action. Step mutates the
// table in place; the caller owns the table and sees the mutation
// through its own handle. The returned value is Σ_i |δ[i]|, a
// convergence diagnostic.
//
// A nil next vector indicates a stateless game with no transition:
// each agent's current state is then treated as its own successor.
func (q *QLearner) Step(table *qtable.Table, states, actions []int,
	rewards []float64, next []int) float64 {

	if next == nil {
		next = states
	}

	total := 0.0
	for i := range states {
		target := rewards[i] + q.gamma.At(i)*table.MaxValue(i, next[i])
		current := table.At(i, states[i], actions[i])
		delta := q.alpha.At(i) * (target - current)

		table.Set(i, states[i], actions[i], current+delta)
		total += math.Abs(delta)
	}
	return total
}
