package reluctance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkEquivalentReluctanceMatchesClosedFormParallel(t *testing.T) {
	net := NewNetwork()
	top := net.AddNode()
	require.NoError(t, net.AddBranch(net.Ground(), top, 100))
	require.NoError(t, net.AddBranch(net.Ground(), top, 200))
	require.NoError(t, net.AddBranch(net.Ground(), top, 300))

	got, err := net.EquivalentReluctance(top)
	require.NoError(t, err)

	want, err := Parallel(100, 200, 300)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-9)
}

func TestNetworkAddBranchRejectsNonPositiveReluctance(t *testing.T) {
	net := NewNetwork()
	top := net.AddNode()
	err := net.AddBranch(net.Ground(), top, 0)
	assert.Error(t, err)
}

func TestNetworkEquivalentReluctanceRejectsOutOfRangeNode(t *testing.T) {
	net := NewNetwork()
	_, err := net.EquivalentReluctance(5)
	assert.Error(t, err)
}

func TestNetworkEquivalentReluctanceRejectsGroundNode(t *testing.T) {
	net := NewNetwork()
	net.AddNode()
	_, err := net.EquivalentReluctance(net.Ground())
	assert.Error(t, err)
}
