// Package social implements two-player and population games drawn
// from the economics literature
package social

import (
	"fmt"
	"math"

	"github.com/ethz-coss/learning-in-games/environment"
)

// Duopoly is a two-player pricing game. Each player posts a price
// equal to its action index divided by the number of actions; the
// cheaper player captures the whole market. The next state of each
// player is the previous action of its opponent, so the game is
// stateful and needs at least as many states as actions.
type Duopoly struct {
	config environment.Config
}

// NewDuopoly creates a new Duopoly game
func NewDuopoly(config environment.Config) (*Duopoly, error) {
	if config.NAgents != 2 {
		return nil, fmt.Errorf("duopoly: need 2 agents, have %d",
			config.NAgents)
	}
	if config.NStates < config.NActions {
		return nil, fmt.Errorf("duopoly: need at least %d states, have %d",
			config.NActions, config.NStates)
	}
	return &Duopoly{config}, nil
}

// Config returns the game's configuration
func (d *Duopoly) Config() environment.Config {
	return d.config
}

// Evaluate returns each player's profit and swaps the actions into
// the next-state vector
func (d *Duopoly) Evaluate(actions []int) ([]float64, []int) {
	a1, a2 := actions[0], actions[1]

	p1 := float64(a1) / float64(d.config.NActions)
	p2 := float64(a2) / float64(d.config.NActions)

	var r1, r2 float64
	switch {
	case p1 < p2:
		r1 = (1 - p1) * p1
	case p1 == p2:
		r1 = 0.5 * (1 - p1)
		r2 = r1
	default:
		r2 = (1 - p2) * p2
	}

	return []float64{r1, r2}, []int{a2, a1}
}

// PrisonersDilemma is the prisoner's dilemma parameterized by the
// reward payoff for mutual cooperation and the sucker's payoff for
// unilateral cooperation. Action 0 cooperates, action 1 defects. The
// next state of both players is the number of cooperating players, so
// the game needs at least 3 states.
type PrisonersDilemma struct {
	config  environment.Config
	reward  float64
	suckers float64
}

// NewPrisonersDilemma creates a new PrisonersDilemma game
func NewPrisonersDilemma(config environment.Config, reward,
	suckers float64) (*PrisonersDilemma, error) {
	if config.NAgents != 2 {
		return nil, fmt.Errorf("prisonersDilemma: need 2 agents, have %d",
			config.NAgents)
	}
	if config.NActions != 2 {
		return nil, fmt.Errorf("prisonersDilemma: need 2 actions, have %d",
			config.NActions)
	}
	if config.NStates < 3 {
		return nil, fmt.Errorf("prisonersDilemma: need at least 3 states, "+
			"have %d", config.NStates)
	}
	return &PrisonersDilemma{config, reward, suckers}, nil
}

// Config returns the game's configuration
func (p *PrisonersDilemma) Config() environment.Config {
	return p.config
}

// Evaluate returns each player's payoff and the joint-cooperation
// state
func (p *PrisonersDilemma) Evaluate(actions []int) ([]float64, []int) {
	a1, a2 := actions[0], actions[1]

	var r1, r2 float64
	switch {
	case a1 == 0 && a2 == 0:
		r1, r2 = p.reward, p.reward
	case a1 == 0 && a2 == 1:
		r1, r2 = -p.suckers, 1
	case a1 == 1 && a2 == 0:
		r1, r2 = 1, -p.suckers
	default:
		r1, r2 = 0, 0
	}

	state := a1 + a2
	return []float64{r1, r2}, []int{state, state}
}

// Population is the population game from "Catastrophe by Design in
// Population Games: A Mechanism to Destabilize Inefficient Locked-in
// Technologies" (https://doi.org/10.1145/3583782). Agents choose
// between a weak technology (0) carrying an adoption cost and a
// strong technology (1), with network-effect utilities.
type Population struct {
	config   environment.Config
	v        float64
	k        float64
	exponent float64
	cost     float64
}

// NewPopulation creates a new Population game
func NewPopulation(config environment.Config, v, k, exponent,
	cost float64) (*Population, error) {
	if config.NActions != 2 {
		return nil, fmt.Errorf("population: need 2 actions, have %d",
			config.NActions)
	}
	return &Population{config, v, k, exponent, cost}, nil
}

// Config returns the game's configuration
func (p *Population) Config() environment.Config {
	return p.config
}

// Evaluate returns each agent's technology utility. The game is
// stateless.
func (p *Population) Evaluate(actions []int) ([]float64, []int) {
	n := float64(len(actions))
	fractionWeak := float64(environment.Count(actions, 0)) / n
	fractionStrong := float64(environment.Count(actions, 1)) / n

	utilities := []float64{
		p.v*math.Pow(fractionWeak*p.k, p.exponent-1) - p.cost,
		p.v * math.Pow(fractionStrong*p.k, p.exponent-1),
	}

	rewards := make([]float64, len(actions))
	for i, a := range actions {
		rewards[i] = utilities[a]
	}
	return rewards, nil
}

// PublicGoods is a public goods game. Each agent contributes its
// normalized action to a common pot, which is scaled by the
// multiplier and redistributed; beta controls the slope of marginal
// contributions.
type PublicGoods struct {
	config     environment.Config
	multiplier float64
	beta       float64
}

// NewPublicGoods creates a new PublicGoods game
func NewPublicGoods(config environment.Config, multiplier,
	beta float64) (*PublicGoods, error) {
	if config.NActions < 2 {
		return nil, fmt.Errorf("publicGoods: need at least 2 actions, "+
			"have %d", config.NActions)
	}
	return &PublicGoods{config, multiplier, beta}, nil
}

// Config returns the game's configuration
func (p *PublicGoods) Config() environment.Config {
	return p.config
}

// Evaluate returns what each agent keeps plus its share of the pot.
// The game is stateless.
func (p *PublicGoods) Evaluate(actions []int) ([]float64, []int) {
	pot := 0.0
	normalized := make([]float64, len(actions))
	for i, a := range actions {
		normalized[i] = float64(a) / float64(p.config.NActions)
		pot += math.Pow(normalized[i], p.beta)
	}
	pot *= p.multiplier

	rewards := make([]float64, len(actions))
	for i := range actions {
		rewards[i] = 1 - normalized[i] + pot
	}
	return rewards, nil
}
