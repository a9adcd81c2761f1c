package numeric

import (
	"errors"
	"testing"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRootBracketedFindsRoot(t *testing.T) {
	f := func(x float64) float64 { return x*x - 4 } // root at x=2
	root, err := FindRoot(f, 0, 10, 1e-9)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, root, 1e-6)
}

func TestFindRootExpandsBracketWhenRootOutsideInitialRange(t *testing.T) {
	f := func(x float64) float64 { return x - 100 } // root at x=100, far outside [0,1]
	root, err := FindRoot(f, 0, 1, 1e-6)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, root, 1e-3)
}

func TestFindRootReturnsRootNotFoundWhenFunctionNeverCrossesZero(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 } // always positive
	_, err := FindRoot(f, -1, 1, 1e-6)
	require.Error(t, err)
	assert.True(t, errors.Is(err, merr.RootNotFound))
}

func TestFindRootHandlesSwappedBounds(t *testing.T) {
	f := func(x float64) float64 { return x - 3 }
	root, err := FindRoot(f, 10, 0, 1e-9)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, root, 1e-6)
}
