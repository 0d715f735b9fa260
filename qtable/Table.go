// Package qtable implements the action-value tables used by
// independent tabular learners in repeated games.
//
// A Table holds one value row per (agent, state) pair. The table is
// created once at simulation start by one of the initialization
// policies in this package and is then mutated in place by a learner
// on every round.
package qtable

import (
	"gonum.org/v1/gonum/floats"
	"gorgonia.org/tensor"
)

// Table is a dense action-value store indexed by (agent, state,
// action). Its shape is fixed for the lifetime of a simulation run.
type Table struct {
	data    *tensor.Dense
	agents  int
	states  int
	actions int
}

// newTable wraps a backing slice of length agents*states*actions in a
// Table. The Table aliases the backing slice.
func newTable(backing []float64, agents, states, actions int) *Table {
	data := tensor.New(
		tensor.WithShape(agents, states, actions),
		tensor.WithBacking(backing),
	)
	return &Table{data, agents, states, actions}
}

// NumAgents returns the number of agents the table holds values for
func (t *Table) NumAgents() int {
	return t.agents
}

// NumStates returns the number of states the table holds values for
func (t *Table) NumStates() int {
	return t.states
}

// NumActions returns the number of actions in each value row
func (t *Table) NumActions() int {
	return t.actions
}

// Dense returns the underlying tensor holding the table's values. The
// tensor shares storage with the Table.
func (t *Table) Dense() *tensor.Dense {
	return t.data
}

func (t *Table) raw() []float64 {
	return t.data.Data().([]float64)
}

func (t *Table) rowIndex(agent, state int) int {
	return (agent*t.states + state) * t.actions
}

// At returns the value of action in state for agent
func (t *Table) At(agent, state, action int) float64 {
	return t.raw()[t.rowIndex(agent, state)+action]
}

// Set sets the value of action in state for agent
func (t *Table) Set(agent, state, action int, value float64) {
	t.raw()[t.rowIndex(agent, state)+action] = value
}

// ActionValues returns the value row for agent in state. The returned
// slice is a view into the table's backing storage, not a copy:
// writing to it writes to the table.
func (t *Table) ActionValues(agent, state int) []float64 {
	i := t.rowIndex(agent, state)
	return t.raw()[i : i+t.actions]
}

// MaxValue returns the maximum action value for agent in state
func (t *Table) MaxValue(agent, state int) float64 {
	return floats.Max(t.ActionValues(agent, state))
}

// Clone returns a deep copy of the table
func (t *Table) Clone() *Table {
	backing := make([]float64, len(t.raw()))
	copy(backing, t.raw())
	return newTable(backing, t.agents, t.states, t.actions)
}

// Validate returns an error if the table's shape does not match the
// required (agents, states, actions) shape. Mismatches are caller
// errors and are never recovered internally.
func (t *Table) Validate(agents, states, actions int) error {
	if t.agents != agents || t.states != states || t.actions != actions {
		return &Error{Op: "validate", Err: errBadShape}
	}
	return nil
}
