package qtable

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/stat/distuv"
)

// TemplateKind selects one of the fixed hand-authored value templates
type TemplateKind int

const (
	// Aligned assigns each state's preferred action along the
	// diagonal: the matching action gets -1, all others -2
	Aligned TemplateKind = iota

	// Misaligned assigns each state's preferred action off the
	// diagonal
	Misaligned
)

func (k TemplateKind) String() string {
	switch k {
	case Aligned:
		return "Aligned"
	case Misaligned:
		return "Misaligned"
	default:
		return "Unknown"
	}
}

// Fixed templates, one value row per state. Rows are indexed by
// state modulo the number of actions.
var (
	aligned2    = [][]float64{{-1, -2}, {-2, -1}}
	aligned3    = [][]float64{{-1, -2, -2}, {-2, -1, -2}, {-2, -2, -1}}
	misaligned2 = [][]float64{{-2, -1}, {-1, -2}}
	misaligned3 = [][]float64{{-2, -2, -1}, {-1, -2, -2}, {-2, -1, -2}}
)

// FromSlice creates a Table that aliases data, which must hold exactly
// agents*states*actions values laid out with actions varying fastest.
// The Table takes ownership of the slice.
func FromSlice(data []float64, agents, states, actions int) (*Table, error) {
	if len(data) != agents*states*actions {
		return nil, &Error{Op: "fromSlice", Err: errBadShape}
	}
	return newTable(data, agents, states, actions), nil
}

// FromMatrix creates a Table by broadcasting the transpose of m
// against an all-ones table of the target shape. After transposing,
// the matrix rows must match the number of states (or be 1) and the
// matrix columns must match the number of actions (or be 1). Any other
// shape fails.
func FromMatrix(m mat.Matrix, agents, states, actions int) (*Table, error) {
	rows, cols := m.Dims()

	// The transpose of m has shape (cols, rows), which must
	// broadcast against (states, actions)
	if cols != states && cols != 1 {
		return nil, &Error{Op: "fromMatrix", Err: errBadShape}
	}
	if rows != actions && rows != 1 {
		return nil, &Error{Op: "fromMatrix", Err: errBadShape}
	}

	backing := make([]float64, agents*states*actions)
	i := 0
	for agent := 0; agent < agents; agent++ {
		for state := 0; state < states; state++ {
			// Singleton dims of the transpose broadcast, so index
			// into m only along dims that match the target
			stateIdx := 0
			if cols == states {
				stateIdx = state
			}
			for action := 0; action < actions; action++ {
				actionIdx := 0
				if rows == actions {
					actionIdx = action
				}
				backing[i] = m.At(actionIdx, stateIdx)
				i++
			}
		}
	}
	return newTable(backing, agents, states, actions), nil
}

// FromRandom creates a Table with every entry drawn independently and
// uniformly from [bounds.Min, bounds.Max)
func FromRandom(agents, states, actions int, bounds r1.Interval,
	src rand.Source) *Table {

	dist := distuv.Uniform{Min: bounds.Min, Max: bounds.Max, Src: src}

	backing := make([]float64, agents*states*actions)
	for i := range backing {
		backing[i] = dist.Rand()
	}
	return newTable(backing, agents, states, actions)
}

// FromTemplate creates a Table from one of the fixed templates,
// broadcast across all agents and states. The value row for state s is
// template row s modulo the number of actions, so with a single state
// every row is the template's first row. Templates exist for 2 and 3
// actions only; any other action count fails.
func FromTemplate(kind TemplateKind, agents, states,
	actions int) (*Table, error) {

	var template [][]float64
	switch {
	case kind == Aligned && actions == 2:
		template = aligned2
	case kind == Aligned && actions == 3:
		template = aligned3
	case kind == Misaligned && actions == 2:
		template = misaligned2
	case kind == Misaligned && actions == 3:
		template = misaligned3
	default:
		return nil, &Error{Op: "fromTemplate", Err: errUnsupportedActions}
	}

	backing := make([]float64, 0, agents*states*actions)
	for agent := 0; agent < agents; agent++ {
		for state := 0; state < states; state++ {
			backing = append(backing, template[state%actions]...)
		}
	}
	return newTable(backing, agents, states, actions), nil
}

// Config describes a value-table initialization policy. A Config is
// resolved into a concrete Table exactly once, at simulation start.
type Config interface {
	// Create returns the Table that the Config describes
	Create(agents, states, actions int, src rand.Source) (*Table, error)
}

// UniformConfig describes uniform random initialization over Bounds
type UniformConfig struct {
	Bounds r1.Interval
}

// Create returns a Table with iid uniform entries
func (u UniformConfig) Create(agents, states, actions int,
	src rand.Source) (*Table, error) {
	return FromRandom(agents, states, actions, u.Bounds, src), nil
}

// TemplateConfig describes initialization from a fixed template
type TemplateConfig struct {
	Kind TemplateKind
}

// Create returns a Table filled from the template
func (t TemplateConfig) Create(agents, states, actions int,
	_ rand.Source) (*Table, error) {
	return FromTemplate(t.Kind, agents, states, actions)
}

// SliceConfig describes initialization from an explicit, fully-shaped
// backing slice
type SliceConfig struct {
	Data []float64
}

// Create returns a Table aliasing the config's data
func (s SliceConfig) Create(agents, states, actions int,
	_ rand.Source) (*Table, error) {
	return FromSlice(s.Data, agents, states, actions)
}

// MatrixConfig describes initialization by transpose-and-broadcast of
// a 2-dimensional matrix
type MatrixConfig struct {
	M mat.Matrix
}

// Create returns a Table broadcast from the config's matrix
func (m MatrixConfig) Create(agents, states, actions int,
	_ rand.Source) (*Table, error) {
	return FromMatrix(m.M, agents, states, actions)
}
