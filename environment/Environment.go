// Package environment outlines the interface and configuration shared
// by the game environments that learning agents play in
package environment

// Config holds the minimal parameters specifying a repeated game,
// excluding the payoff function itself. It is the shape contract that
// a run's value table must match.
type Config struct {
	NAgents  int
	NActions int
	NStates  int
	NIter    int
}

// Environment evaluates the joint actions of all agents into
// per-agent rewards and next states.
//
// Environments are pure collaborators of the learning core: they hold
// no learning state and their Evaluate method has no side effects on
// the agents.
type Environment interface {
	// Evaluate maps a joint action vector (one action index per
	// agent) to one reward per agent and the next state of each
	// agent. Stateless games return a nil next-state vector,
	// meaning no state transition occurs.
	Evaluate(actions []int) (rewards []float64, next []int)

	// Config returns the game's configuration
	Config() Config
}

// Count returns the number of agents that took the given action
func Count(actions []int, action int) int {
	n := 0
	for _, a := range actions {
		if a == action {
			n++
		}
	}
	return n
}
