// Package experiment implements functionality for running an
// experiment: the per-round pipeline of action selection, game
// evaluation, and value-table update.
package experiment

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ethz-coss/learning-in-games/agent"
	"github.com/ethz-coss/learning-in-games/agent/qlearning"
	"github.com/ethz-coss/learning-in-games/environment"
	"github.com/ethz-coss/learning-in-games/experiment/trackers"
	"github.com/ethz-coss/learning-in-games/qtable"
	"github.com/ethz-coss/learning-in-games/utils/progressbar"
)

// Online runs a single simulation: one environment, one value table,
// and one selector shared by all agents, stepped synchronously for
// the environment's configured number of rounds.
//
// Each round is a strict sequential pipeline: the selector reads the
// value table and current states, the environment evaluates the joint
// actions, and the learner writes the value table using the returned
// rewards and next states. The exploration schedule is advanced once
// per round, independently of the other components.
type Online struct {
	env      environment.Environment
	selector agent.Selector
	learner  *qlearning.QLearner
	schedule agent.Schedule

	table  *qtable.Table
	states []int

	trackers []trackers.Tracker
	progress bool
}

// NewOnline creates a new online experiment. The table's shape must
// match the environment's configuration; a mismatch fails immediately.
// All agents start in state 0.
func NewOnline(env environment.Environment, selector agent.Selector,
	learner *qlearning.QLearner, schedule agent.Schedule,
	table *qtable.Table, t ...trackers.Tracker) (*Online, error) {

	config := env.Config()
	err := table.Validate(config.NAgents, config.NStates, config.NActions)
	if err != nil {
		return nil, err
	}

	return &Online{
		env:      env,
		selector: selector,
		learner:  learner,
		schedule: schedule,
		table:    table,
		states:   make([]int, config.NAgents),
		trackers: t,
	}, nil
}

// Register registers a Tracker with the experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t trackers.Tracker) {
	o.trackers = append(o.trackers, t)
}

// ShowProgress enables a terminal progress bar during Run
func (o *Online) ShowProgress() {
	o.progress = true
}

// Table returns the experiment's value table. The table is mutated by
// every round; callers inspecting it mid-run see the live values.
func (o *Online) Table() *qtable.Table {
	return o.table
}

// RunRound runs a single round at iteration t and returns the summed
// absolute update magnitude
func (o *Online) RunRound(t int) float64 {
	param := o.schedule.ValueAt(t)

	actions := o.selector.SelectActions(o.table, o.states, param)
	rewards, next := o.env.Evaluate(actions)
	delta := o.learner.Step(o.table, o.states, actions, rewards, next)

	o.track(trackers.Round{
		Iteration: t,
		Actions:   actions,
		Rewards:   rewards,
		Delta:     delta,
		Param:     param,
	})

	if next != nil {
		o.states = next
	}
	return delta
}

// Run runs the experiment for the environment's configured number of
// rounds
func (o *Online) Run() {
	config := o.env.Config()

	log.Info().
		Int("agents", config.NAgents).
		Int("actions", config.NActions).
		Int("states", config.NStates).
		Int("rounds", config.NIter).
		Msg("starting experiment")

	var bar *progressbar.ProgressBar
	if o.progress {
		bar = progressbar.New(40, config.NIter, time.Second)
	}

	for t := 0; t < config.NIter; t++ {
		o.RunRound(t)
		if bar != nil {
			bar.Increment()
		}
	}

	if bar != nil {
		bar.Close()
	}
	log.Info().Msg("experiment finished")
}

// Save saves all the data cached by the experiment's Trackers to disk
func (o *Online) Save() {
	for _, tracker := range o.trackers {
		tracker.Save()
	}
}

// track sends the round to each registered Tracker
func (o *Online) track(r trackers.Round) {
	for _, tracker := range o.trackers {
		tracker.Track(r)
	}
}
