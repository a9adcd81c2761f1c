package winding

import (
	"fmt"

	"github.com/edp1096/sparse"
	"github.com/openmagnetics-go/mkf/pkg/merr"
)

// ParallelNetwork models one winding's parallel-conductor assembly as an
// actual resistor network: each parallel's series-accumulated turn
// resistance is one branch between the winding's two terminal nodes, and
// the network's equivalent resistance is found the same way
// pkg/reluctance solves a magnetic circuit, both built directly on
// github.com/edp1096/sparse.
type ParallelNetwork struct {
	parallelResistances []float64 // series-accumulated turn resistance, per parallel
}

// NewParallelNetwork starts an empty network.
func NewParallelNetwork() *ParallelNetwork { return &ParallelNetwork{} }

// AddParallel appends one parallel conductor's total series resistance
// (the sum of its turns' per-turn resistances).
func (n *ParallelNetwork) AddParallel(seriesResistance float64) error {
	if seriesResistance <= 0 {
		return fmt.Errorf("winding: ParallelNetwork.AddParallel: resistance must be positive: %w", merr.InvalidInput)
	}
	n.parallelResistances = append(n.parallelResistances, seriesResistance)
	return nil
}

// EquivalentResistance solves the network (node 1 = the shared node all
// parallels connect start and end to, node 0 = ground) for the equivalent
// resistance of all parallels combined: every parallel stamps its own
// conductance into the matrix as its own branch, and the aggregate
// R = (sum 1/R_parallel)^-1 falls out of the solve rather than being
// precomputed and handed to a matrix that would only reproduce it.
func (n *ParallelNetwork) EquivalentResistance() (float64, error) {
	if len(n.parallelResistances) == 0 {
		return 0, fmt.Errorf("winding: ParallelNetwork.EquivalentResistance: no parallels added: %w", merr.InvalidInput)
	}
	if len(n.parallelResistances) == 1 {
		return n.parallelResistances[0], nil
	}

	config := &sparse.Configuration{
		Real:           true,
		Expandable:     true,
		ModifiedNodal:  true,
		TiesMultiplier: 5,
	}
	matrix, err := sparse.Create(int64(1), config)
	if err != nil {
		return 0, fmt.Errorf("winding: ParallelNetwork.EquivalentResistance: creating matrix: %w", err)
	}
	defer matrix.Destroy()

	for _, r := range n.parallelResistances {
		if r <= 0 {
			return 0, fmt.Errorf("winding: ParallelNetwork.EquivalentResistance: resistance must be positive: %w", merr.InvalidInput)
		}
		matrix.GetElement(int64(1), int64(1)).Real += 1 / r
	}

	rhs := []float64{0, 1}
	if err := matrix.Factor(); err != nil {
		return 0, fmt.Errorf("winding: ParallelNetwork.EquivalentResistance: factor: %w", err)
	}
	solution, err := matrix.Solve(rhs)
	if err != nil {
		return 0, fmt.Errorf("winding: ParallelNetwork.EquivalentResistance: solve: %w", err)
	}
	return solution[1], nil
}

// CurrentDivider returns each parallel's share of the winding's total
// current. It reuses EquivalentResistance's unit-current network solve to
// get the shared node's voltage under totalCurrent (V = R_eq * I), then
// reads each branch's own current straight off Ohm's law, V/R_parallel —
// the same solve backing both methods, rather than a second closed form
// that only happens to agree with it.
func (n *ParallelNetwork) CurrentDivider(totalCurrent float64) ([]float64, error) {
	if len(n.parallelResistances) == 0 {
		return nil, fmt.Errorf("winding: ParallelNetwork.CurrentDivider: no parallels added: %w", merr.InvalidInput)
	}
	equivalent, err := n.EquivalentResistance()
	if err != nil {
		return nil, err
	}
	nodeVoltage := equivalent * totalCurrent

	currents := make([]float64, len(n.parallelResistances))
	for i, r := range n.parallelResistances {
		currents[i] = nodeVoltage / r
	}
	return currents, nil
}
