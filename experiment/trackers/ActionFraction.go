package trackers

// ActionFraction tracks the fraction of agents that took a given
// action on each round, e.g. the fraction of drivers taking the
// crossing link in a Braess network.
type ActionFraction struct {
	action    int
	fractions []float64
	filename  string
}

// NewActionFraction creates and returns a new *ActionFraction Tracker
// for the given action index, saving to filename
func NewActionFraction(action int, filename string) Tracker {
	return &ActionFraction{action: action, filename: filename}
}

// Track records the fraction of agents that took the tracked action
func (a *ActionFraction) Track(r Round) {
	count := 0
	for _, action := range r.Actions {
		if action == a.action {
			count++
		}
	}
	a.fractions = append(a.fractions, float64(count)/float64(len(r.Actions)))
}

// Save saves the data tracked by the ActionFraction Tracker to disk
func (a *ActionFraction) Save() {
	save(a.filename, a.fractions)
}
