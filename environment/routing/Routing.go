// Package routing implements congestion games on small road networks.
// Rewards are negated travel times, so higher is better.
package routing

import (
	"fmt"

	"github.com/ethz-coss/learning-in-games/environment"
)

// BraessAugmented is the network from the Braess paradox with the
// added zero-cost crossing link. Actions are up (0), down (1), and
// cross (2). The Nash equilibrium average travel time is 2, while the
// optimal average travel time of 1.5 has no player take the crossing
// link.
type BraessAugmented struct {
	config environment.Config
	cost   float64
}

// NewBraessAugmented creates a new BraessAugmented game, where cost is
// the fixed cost of the crossing link
func NewBraessAugmented(config environment.Config,
	cost float64) (*BraessAugmented, error) {
	if config.NActions != 3 {
		return nil, fmt.Errorf("braessAugmented: need 3 actions, have %d",
			config.NActions)
	}
	return &BraessAugmented{config, cost}, nil
}

// Config returns the game's configuration
func (b *BraessAugmented) Config() environment.Config {
	return b.config
}

// Evaluate returns the negated travel time of each agent's chosen
// route. The game is stateless.
func (b *BraessAugmented) Evaluate(actions []int) ([]float64, []int) {
	n := float64(b.config.NAgents)
	up := float64(environment.Count(actions, 0))
	down := float64(environment.Count(actions, 1))
	cross := float64(environment.Count(actions, 2))

	times := []float64{
		1 + (up+cross)/n,
		1 + (down+cross)/n,
		(up+cross)/n + (down+cross)/n + b.cost,
	}

	rewards := make([]float64, len(actions))
	for i, a := range actions {
		rewards[i] = -times[a]
	}
	return rewards, nil
}

// BraessInitial is the Braess network without the added link. Players
// split over the up (0) and down (1) routes; the Nash equilibrium and
// the optimum coincide at an average travel time of 1.5 with an even
// split.
type BraessInitial struct {
	config environment.Config
}

// NewBraessInitial creates a new BraessInitial game
func NewBraessInitial(config environment.Config) (*BraessInitial, error) {
	if config.NActions != 2 {
		return nil, fmt.Errorf("braessInitial: need 2 actions, have %d",
			config.NActions)
	}
	return &BraessInitial{config}, nil
}

// Config returns the game's configuration
func (b *BraessInitial) Config() environment.Config {
	return b.config
}

// Evaluate returns the negated travel time of each agent's chosen
// route. The game is stateless.
func (b *BraessInitial) Evaluate(actions []int) ([]float64, []int) {
	n := float64(b.config.NAgents)
	up := float64(environment.Count(actions, 0))
	down := float64(environment.Count(actions, 1))

	times := []float64{1 + up/n, 1 + down/n}

	rewards := make([]float64, len(actions))
	for i, a := range actions {
		rewards[i] = -times[a]
	}
	return rewards, nil
}

// TwoRoute is a two-path routing game whose cost parameter morphs the
// network between a Pigou-like network at one extreme and a network
// whose Nash equilibrium is optimal at the other.
type TwoRoute struct {
	config environment.Config
	cost   float64
}

// NewTwoRoute creates a new TwoRoute game
func NewTwoRoute(config environment.Config, cost float64) (*TwoRoute, error) {
	if config.NActions != 2 {
		return nil, fmt.Errorf("twoRoute: need 2 actions, have %d",
			config.NActions)
	}
	return &TwoRoute{config, cost}, nil
}

// Config returns the game's configuration
func (t *TwoRoute) Config() environment.Config {
	return t.config
}

// Evaluate returns the negated travel time of each agent's chosen
// route. The game is stateless.
func (t *TwoRoute) Evaluate(actions []int) ([]float64, []int) {
	n := float64(t.config.NAgents)
	up := float64(environment.Count(actions, 0))

	times := []float64{
		up/n + t.cost,
		(1 - up/n) + (1 - t.cost),
	}

	rewards := make([]float64, len(actions))
	for i, a := range actions {
		rewards[i] = -times[a]
	}
	return rewards, nil
}

// Pigou is the classic Pigou network: one path with a fixed cost and
// one whose cost equals the fraction of players taking it. The classic
// game has a fixed cost of 1.
type Pigou struct {
	config environment.Config
	cost   float64
}

// NewPigou creates a new Pigou game with the given fixed cost
func NewPigou(config environment.Config, cost float64) (*Pigou, error) {
	if config.NActions != 2 {
		return nil, fmt.Errorf("pigou: need 2 actions, have %d",
			config.NActions)
	}
	return &Pigou{config, cost}, nil
}

// Config returns the game's configuration
func (p *Pigou) Config() environment.Config {
	return p.config
}

// Evaluate returns the negated travel time of each agent's chosen
// route. The game is stateless.
func (p *Pigou) Evaluate(actions []int) ([]float64, []int) {
	n := float64(p.config.NAgents)
	down := float64(environment.Count(actions, 1))

	times := []float64{p.cost, down / n}

	rewards := make([]float64, len(actions))
	for i, a := range actions {
		rewards[i] = -times[a]
	}
	return rewards, nil
}

// Pigou3 is a Pigou network with three paths: two fixed-cost paths and
// one variable-cost path whose cost equals the fraction of players
// taking it.
type Pigou3 struct {
	config environment.Config
}

// NewPigou3 creates a new Pigou3 game
func NewPigou3(config environment.Config) (*Pigou3, error) {
	if config.NActions != 3 {
		return nil, fmt.Errorf("pigou3: need 3 actions, have %d",
			config.NActions)
	}
	return &Pigou3{config}, nil
}

// Config returns the game's configuration
func (p *Pigou3) Config() environment.Config {
	return p.config
}

// Evaluate returns the negated travel time of each agent's chosen
// route. The game is stateless.
func (p *Pigou3) Evaluate(actions []int) ([]float64, []int) {
	n := float64(p.config.NAgents)
	up := float64(environment.Count(actions, 0))

	times := []float64{up / n, 1, 1}

	rewards := make([]float64, len(actions))
	for i, a := range actions {
		rewards[i] = -times[a]
	}
	return rewards, nil
}
