package policy

import (
	"golang.org/x/exp/rand"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ethz-coss/learning-in-games/qtable"
	"github.com/ethz-coss/learning-in-games/utils/floatutils"
)

// Boltzmann implements a softmax selection policy. Each agent samples
// an action from the categorical distribution
//
//	p_a = exp(Q_a / T) / Σ_a' exp(Q_a' / T)
//
// over its value row, where the temperature T is the per-round policy
// parameter. As T approaches 0 the distribution approaches an argmax;
// as T grows it approaches uniform.
//
// Very low temperatures drive the exponentials to overflow or NaN.
// The policy does not correct this: it logs a warning and samples from
// the non-finite distribution as-is, leaving post-run validation to
// the caller.
type Boltzmann struct {
	src rand.Source
}

// NewBoltzmann returns a new Boltzmann selector sampling from a source
// seeded with seed
func NewBoltzmann(seed uint64) *Boltzmann {
	return &Boltzmann{src: rand.NewSource(seed)}
}

// SelectActions samples one action per agent at temperature param
func (p *Boltzmann) SelectActions(table *qtable.Table, states []int,
	param float64) []int {

	actions := make([]int, len(states))
	for i, state := range states {
		probs := floatutils.Softmax(table.ActionValues(i, state), param)
		if !floatutils.AllFinite(probs) {
			log.Warn().
				Int("agent", i).
				Float64("temperature", param).
				Msg("boltzmann: non-finite action probabilities")
		}

		dist := distuv.NewCategorical(probs, p.src)
		actions[i] = int(dist.Rand())
	}
	return actions
}

// RegularizedLeader implements the follow-the-regularized-leader
// selection policy: the softmax regularization term of each agent's
// value row is subtracted element-wise from the raw row, and the
// action is the first-occurrence argmax of the regularized row.
//
// Selection is deterministic: identical table and state inputs always
// produce identical action vectors.
type RegularizedLeader struct{}

// NewRegularizedLeader returns a new RegularizedLeader selector
func NewRegularizedLeader() *RegularizedLeader {
	return &RegularizedLeader{}
}

// SelectActions selects one action per agent at temperature param
func (p *RegularizedLeader) SelectActions(table *qtable.Table,
	states []int, param float64) []int {

	actions := make([]int, len(states))
	for i, state := range states {
		values := table.ActionValues(i, state)
		regularization := floatutils.Softmax(values, param)

		regularized := make([]float64, len(values))
		for a := range values {
			regularized[a] = values[a] - regularization[a]
		}
		actions[i] = floatutils.ArgMax(regularized)
	}
	return actions
}
