// Package minority implements minority games, where agents are
// rewarded for joining the smaller of two groups
package minority

import (
	"fmt"

	"github.com/ethz-coss/learning-in-games/environment"
)

// Threshold is a minority game where the minority group is determined
// by a threshold on the fraction of agents taking action 0. Members of
// the minority group receive reward 1, all others 0.
type Threshold struct {
	config    environment.Config
	threshold float64
}

// NewThreshold creates a new Threshold minority game
func NewThreshold(config environment.Config,
	threshold float64) (*Threshold, error) {
	if config.NActions != 2 {
		return nil, fmt.Errorf("threshold: need 2 actions, have %d",
			config.NActions)
	}
	return &Threshold{config, threshold}, nil
}

// Config returns the game's configuration
func (t *Threshold) Config() environment.Config {
	return t.config
}

// Evaluate rewards the minority group. The game is stateless.
func (t *Threshold) Evaluate(actions []int) ([]float64, []int) {
	n := float64(t.config.NAgents)
	up := float64(environment.Count(actions, 0))

	payoffs := []float64{0, 1}
	if n*t.threshold >= up { // up is the minority
		payoffs = []float64{1, 0}
	}

	rewards := make([]float64, len(actions))
	for i, a := range actions {
		rewards[i] = payoffs[a]
	}
	return rewards, nil
}

// ZeroSum is a minority game variant where each group's payoff is
// 1 - 2 * (fraction of agents in the group), so the average payoff
// over all agents is always zero.
type ZeroSum struct {
	config environment.Config
}

// NewZeroSum creates a new ZeroSum minority game
func NewZeroSum(config environment.Config) (*ZeroSum, error) {
	if config.NActions != 2 {
		return nil, fmt.Errorf("zeroSum: need 2 actions, have %d",
			config.NActions)
	}
	return &ZeroSum{config}, nil
}

// Config returns the game's configuration
func (z *ZeroSum) Config() environment.Config {
	return z.config
}

// Evaluate rewards agents in proportion to how small their group is.
// The game is stateless.
func (z *ZeroSum) Evaluate(actions []int) ([]float64, []int) {
	n := float64(z.config.NAgents)
	fractionA := float64(environment.Count(actions, 0)) / n
	fractionB := 1 - fractionA

	payoffs := []float64{1 - 2*fractionA, 1 - 2*fractionB}

	rewards := make([]float64, len(actions))
	for i, a := range actions {
		rewards[i] = payoffs[a]
	}
	return rewards, nil
}

// ElFarolBar is the El Farol bar game. Staying home (0) always pays a
// fixed amount, while going to the bar (1) pays well only while the
// fraction of agents at the bar stays below the threshold.
type ElFarolBar struct {
	config    environment.Config
	threshold float64
}

// NewElFarolBar creates a new ElFarolBar game with the given crowding
// threshold
func NewElFarolBar(config environment.Config,
	threshold float64) (*ElFarolBar, error) {
	if config.NActions != 2 {
		return nil, fmt.Errorf("elFarolBar: need 2 actions, have %d",
			config.NActions)
	}
	return &ElFarolBar{config, threshold}, nil
}

// Config returns the game's configuration
func (e *ElFarolBar) Config() environment.Config {
	return e.config
}

// Evaluate returns the negated payoffs of staying home or going to
// the bar. The game is stateless.
func (e *ElFarolBar) Evaluate(actions []int) ([]float64, []int) {
	n := float64(len(actions))
	pct := float64(environment.Count(actions, 1)) / n

	barPayoff := 4*pct - 2
	if pct > e.threshold {
		barPayoff = 2 - 4*pct
	}
	payoffs := []float64{-1, -barPayoff}

	rewards := make([]float64, len(actions))
	for i, a := range actions {
		rewards[i] = payoffs[a]
	}
	return rewards, nil
}
