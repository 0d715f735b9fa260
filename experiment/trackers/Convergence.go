package trackers

// Convergence tracks the per-round summed absolute value-table update
// magnitude. A decaying series indicates that the agents' value
// tables are settling.
type Convergence struct {
	deltas   []float64
	filename string
}

// NewConvergence creates and returns a new *Convergence Tracker that
// saves to filename
func NewConvergence(filename string) Tracker {
	return &Convergence{filename: filename}
}

// Track records the round's update magnitude
func (c *Convergence) Track(r Round) {
	c.deltas = append(c.deltas, r.Delta)
}

// Save saves the data tracked by the Convergence Tracker to disk
func (c *Convergence) Save() {
	save(c.filename, c.deltas)
}
