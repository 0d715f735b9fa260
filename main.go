package main

import (
	"fmt"
	"os"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/spatial/r1"

	"github.com/ethz-coss/learning-in-games/agent"
	"github.com/ethz-coss/learning-in-games/agent/policy"
	"github.com/ethz-coss/learning-in-games/agent/qlearning"
	"github.com/ethz-coss/learning-in-games/environment"
	"github.com/ethz-coss/learning-in-games/environment/routing"
	"github.com/ethz-coss/learning-in-games/experiment"
	"github.com/ethz-coss/learning-in-games/experiment/trackers"
	"github.com/ethz-coss/learning-in-games/qtable"
)

func main() {
	var seed uint64 = 192382

	// Create the augmented Braess network with 100 drivers
	config := environment.Config{
		NAgents:  100,
		NActions: 3,
		NStates:  1,
		NIter:    10000,
	}
	env, err := routing.NewBraessAugmented(config, 0)
	if err != nil {
		panic(err)
	}

	// Initialize every driver's value table uniformly in [0, 1)
	table, err := qtable.UniformConfig{
		Bounds: r1.Interval{Min: 0, Max: 1},
	}.Create(config.NAgents, config.NStates, config.NActions,
		rand.NewSource(seed))
	if err != nil {
		panic(err)
	}

	// ε-greedy drivers with exploration decaying over the run
	selector := policy.NewEGreedy(seed)
	schedule := agent.NewDecayedSchedule(config.NIter)

	// All drivers learn with the same rates
	alpha := agent.NewConstantRates(0.1, config.NAgents)
	gamma := agent.NewConstantRates(0, config.NAgents)
	learner := qlearning.New(alpha, gamma)

	if err := os.MkdirAll("data", 0755); err != nil {
		panic(err)
	}

	exp, err := experiment.NewOnline(env, selector, learner, schedule, table,
		trackers.NewWelfare(trackers.Average, "data/welfare.bin"),
		trackers.NewConvergence("data/convergence.bin"),
		trackers.NewActionFraction(2, "data/cross.bin"),
	)
	if err != nil {
		panic(err)
	}

	exp.ShowProgress()
	exp.Run()
	exp.Save()

	// The Nash equilibrium sends everyone over the crossing link
	// for an average travel time of 2
	welfare := trackers.LoadData("data/welfare.bin")
	fmt.Printf("final average welfare: %.3f\n", welfare[len(welfare)-1])
}
