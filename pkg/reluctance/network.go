package reluctance

import (
	"fmt"

	"github.com/edp1096/sparse"
	"github.com/openmagnetics-go/mkf/pkg/merr"
)

// Network is a topology of magnetic-circuit nodes joined by scalar
// reluctances, solved as a DC conductance network under the magnetic
// duality permeance<->conductance, MMF<->voltage, flux<->current, the
// same way a SPICE-style matrix solver treats node 0 as the implicit
// reference (ground) node, never stamped into the matrix.
//
// Use this in place of the closed-form Series/Parallel helpers whenever
// the magnetic circuit's topology is irregular (asymmetric multi-leg
// cores, shared gaps between legs) rather than a clean series-of-parallel
// tree.
type Network struct {
	numNodes int
	branches []branch
}

type branch struct {
	from, to  int
	reluctance float64
}

// NewNetwork returns an empty network. Node 0 is the reference node.
func NewNetwork() *Network {
	return &Network{numNodes: 1}
}

// AddNode allocates a new non-reference node and returns its id.
func (n *Network) AddNode() int {
	n.numNodes++
	return n.numNodes - 1
}

// Ground returns the reference node's id (always 0).
func (n *Network) Ground() int { return 0 }

// AddBranch connects from and to with the given scalar reluctance.
func (n *Network) AddBranch(from, to int, reluctanceValue float64) error {
	if reluctanceValue <= 0 {
		return fmt.Errorf("reluctance: Network.AddBranch: reluctance must be positive: %w", merr.InvalidInput)
	}
	n.branches = append(n.branches, branch{from: from, to: to, reluctance: reluctanceValue})
	return nil
}

// EquivalentReluctance injects a unit MMF-equivalent flux source at
// sourceNode (returning to ground) and solves for the resulting nodal
// "magnetic potential" via nodal analysis, the reluctance-network analogue
// of injecting 1A into a resistor network and reading its node voltage as
// the equivalent resistance. Follows the usual sparse-matrix solve
// sequence: build, Factor, Solve, Destroy.
func (n *Network) EquivalentReluctance(sourceNode int) (float64, error) {
	if sourceNode <= 0 || sourceNode >= n.numNodes {
		return 0, fmt.Errorf("reluctance: Network.EquivalentReluctance: node %d out of range: %w", sourceNode, merr.InvalidInput)
	}
	size := n.numNodes - 1 // exclude ground from the matrix
	if size <= 0 {
		return 0, fmt.Errorf("reluctance: Network.EquivalentReluctance: network has no non-reference nodes: %w", merr.InvalidInput)
	}

	config := &sparse.Configuration{
		Real:           true,
		Expandable:     true,
		ModifiedNodal:  true,
		TiesMultiplier: 5,
	}
	matrix, err := sparse.Create(int64(size), config)
	if err != nil {
		return 0, fmt.Errorf("reluctance: Network.EquivalentReluctance: creating matrix: %w", err)
	}
	defer matrix.Destroy()

	stamp := func(i, j int, value float64) {
		if i == 0 || j == 0 {
			return // ground row/column is not part of the reduced system
		}
		matrix.GetElement(int64(i), int64(j)).Real += value
	}

	for _, b := range n.branches {
		permeance := 1 / b.reluctance
		stamp(b.from, b.from, permeance)
		stamp(b.to, b.to, permeance)
		stamp(b.from, b.to, -permeance)
		stamp(b.to, b.from, -permeance)
	}

	rhs := make([]float64, size+1)
	rhs[sourceNode] = 1

	if err := matrix.Factor(); err != nil {
		return 0, fmt.Errorf("reluctance: Network.EquivalentReluctance: factor: %w", err)
	}
	solution, err := matrix.Solve(rhs)
	if err != nil {
		return 0, fmt.Errorf("reluctance: Network.EquivalentReluctance: solve: %w", err)
	}

	return solution[sourceNode], nil
}
