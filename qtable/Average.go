package qtable

// AverageRolled returns the element-wise mean of neighborhood cyclic
// rotations of the table along the agent axis, with shifts
// 0 .. neighborhood-1. It is used to let each agent's effective value
// table be a running average with its cyclic neighbors.
//
// The input table is not mutated. A neighborhood of 1 returns an
// identical copy of the input.
func AverageRolled(t *Table, neighborhood int) (*Table, error) {
	if neighborhood < 1 {
		return nil, &Error{Op: "averageRolled", Err: errNonPositiveNeighborhood}
	}

	agents := t.NumAgents()
	rowLen := t.NumStates() * t.NumActions()
	in := t.raw()

	backing := make([]float64, len(in))
	for shift := 0; shift < neighborhood; shift++ {
		for agent := 0; agent < agents; agent++ {
			// Rolling by shift moves agent (agent-shift) into
			// position agent
			src := ((agent-shift)%agents + agents) % agents
			for j := 0; j < rowLen; j++ {
				backing[agent*rowLen+j] += in[src*rowLen+j]
			}
		}
	}

	for i := range backing {
		backing[i] /= float64(neighborhood)
	}
	return newTable(backing, agents, t.NumStates(), t.NumActions()), nil
}
