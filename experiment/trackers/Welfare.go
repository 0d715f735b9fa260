package trackers

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// WelfareType selects how a reward vector is collapsed into a single
// social-welfare value
type WelfareType string

const (
	Average WelfareType = "AVERAGE" // mean reward over agents
	Min     WelfareType = "MIN"     // reward of the worst-off agent
	Max     WelfareType = "MAX"     // reward of the best-off agent
)

// Welfare tracks and saves the social welfare of every round in an
// experiment
type Welfare struct {
	welfareType WelfareType
	values      []float64
	filename    string
}

// NewWelfare creates and returns a new *Welfare Tracker that saves to
// filename. Welfare panics on an unknown WelfareType.
func NewWelfare(welfareType WelfareType, filename string) Tracker {
	switch welfareType {
	case Average, Min, Max:
	default:
		panic(fmt.Sprintf("newWelfare: no such welfare type %v", welfareType))
	}
	return &Welfare{welfareType: welfareType, filename: filename}
}

// Track records the welfare of the round's reward vector
func (w *Welfare) Track(r Round) {
	var value float64
	switch w.welfareType {
	case Average:
		value = floats.Sum(r.Rewards) / float64(len(r.Rewards))
	case Min:
		value = floats.Min(r.Rewards)
	case Max:
		value = floats.Max(r.Rewards)
	}
	w.values = append(w.values, value)
}

// Save saves the data tracked by the Welfare Tracker to disk
func (w *Welfare) Save() {
	save(w.filename, w.values)
}
