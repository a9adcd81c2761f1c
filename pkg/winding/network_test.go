package winding

import (
	"errors"
	"testing"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParallelNetworkSingleParallelShortcut(t *testing.T) {
	n := NewParallelNetwork()
	require.NoError(t, n.AddParallel(2.5))
	r, err := n.EquivalentResistance()
	require.NoError(t, err)
	assert.InDelta(t, 2.5, r, 1e-12)
}

func TestParallelNetworkTwoEqualParallels(t *testing.T) {
	n := NewParallelNetwork()
	require.NoError(t, n.AddParallel(4))
	require.NoError(t, n.AddParallel(4))
	r, err := n.EquivalentResistance()
	require.NoError(t, err)
	assert.InDelta(t, 2, r, 1e-9)
}

func TestParallelNetworkUnequalParallels(t *testing.T) {
	n := NewParallelNetwork()
	require.NoError(t, n.AddParallel(2))
	require.NoError(t, n.AddParallel(6))
	r, err := n.EquivalentResistance()
	require.NoError(t, err)
	assert.InDelta(t, 1.5, r, 1e-9)
}

func TestParallelNetworkRejectsNonPositiveResistance(t *testing.T) {
	n := NewParallelNetwork()
	err := n.AddParallel(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, merr.InvalidInput))
}

func TestParallelNetworkEquivalentResistanceRequiresParallels(t *testing.T) {
	n := NewParallelNetwork()
	_, err := n.EquivalentResistance()
	require.Error(t, err)
	assert.True(t, errors.Is(err, merr.InvalidInput))
}

func TestCurrentDividerSplitsByConductance(t *testing.T) {
	n := NewParallelNetwork()
	require.NoError(t, n.AddParallel(1))
	require.NoError(t, n.AddParallel(3))
	currents, err := n.CurrentDivider(4)
	require.NoError(t, err)
	require.Len(t, currents, 2)
	assert.InDelta(t, 3, currents[0], 1e-9)
	assert.InDelta(t, 1, currents[1], 1e-9)
	assert.InDelta(t, 4, currents[0]+currents[1], 1e-9)
}
