package agent

import "math"

// Schedule produces a time-varying exploration parameter, used as the
// ε of an ε-greedy selector or the temperature of a softmax selector.
// The schedule follows
//
//	value(t) = end + (start - end) * exp(-t / decay)
//
// with start, end, and decay fixed at construction.
type Schedule struct {
	start float64
	end   float64
	decay float64
}

// NewConstantSchedule returns a Schedule that produces value for all
// t. With start == end the exponential term cancels regardless of the
// decay constant, so decay is fixed at 1.
func NewConstantSchedule(value float64) Schedule {
	return Schedule{start: value, end: value, decay: 1}
}

// NewDecayedSchedule returns a Schedule decaying from 1 toward 0 with
// a time constant of nIter / 8, where nIter is the total number of
// rounds in the run.
func NewDecayedSchedule(nIter int) Schedule {
	return Schedule{start: 1, end: 0, decay: float64(nIter) / 8}
}

// ValueAt returns the schedule's value at round t
func (s Schedule) ValueAt(t int) float64 {
	return s.end + (s.start-s.end)*math.Exp(-float64(t)/s.decay)
}
