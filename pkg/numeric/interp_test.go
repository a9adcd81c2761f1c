package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearInterpolateClampsBelowFirstPoint(t *testing.T) {
	x, y := []float64{0, 1, 2}, []float64{10, 20, 30}
	v, err := LinearInterpolate(x, y, -5)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)
}

func TestLinearInterpolateClampsAboveLastPoint(t *testing.T) {
	x, y := []float64{0, 1, 2}, []float64{10, 20, 30}
	v, err := LinearInterpolate(x, y, 50)
	require.NoError(t, err)
	assert.Equal(t, 30.0, v)
}

func TestLinearInterpolateInterpolatesBetweenPoints(t *testing.T) {
	x, y := []float64{0, 1, 2}, []float64{10, 20, 40}
	v, err := LinearInterpolate(x, y, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 15, v, 1e-12)
}

func TestLinearInterpolateSinglePointReturnsItsY(t *testing.T) {
	v, err := LinearInterpolate([]float64{5}, []float64{42}, 1000)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)
}

func TestLinearInterpolateRejectsMismatchedLengths(t *testing.T) {
	_, err := LinearInterpolate([]float64{0, 1}, []float64{0}, 0.5)
	assert.Error(t, err)
}

func TestLinearInterpolateRejectsEmptyInput(t *testing.T) {
	_, err := LinearInterpolate(nil, nil, 0.5)
	assert.Error(t, err)
}

func TestMonotoneCubicRejectsNonIncreasingX(t *testing.T) {
	_, err := NewMonotoneCubic([]float64{0, 1, 1}, []float64{0, 1, 2})
	assert.Error(t, err)
}

func TestMonotoneCubicRejectsTooFewPoints(t *testing.T) {
	_, err := NewMonotoneCubic([]float64{0}, []float64{0})
	assert.Error(t, err)
}

func TestMonotoneCubicClampsAtEnds(t *testing.T) {
	s, err := NewMonotoneCubic([]float64{0, 1, 2}, []float64{0, 1, 4})
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Eval(-10))
	assert.Equal(t, 4.0, s.Eval(10))
}

func TestMonotoneCubicPreservesMonotonicityOfMonotoneData(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0.377, 0.45, 0.55, 0.7, 0.738}
	s, err := NewMonotoneCubic(x, y)
	require.NoError(t, err)

	prev := s.Eval(0)
	for xq := 0.0; xq <= 4; xq += 0.05 {
		v := s.Eval(xq)
		assert.GreaterOrEqualf(t, v, prev-1e-9, "spline dipped at x=%.2f", xq)
		prev = v
	}
}

func TestMonotoneCubicInterpolatesExactlyAtKnots(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 3, 2, 5}
	s, err := NewMonotoneCubic(x, y)
	require.NoError(t, err)
	for i, xq := range x {
		assert.InDelta(t, y[i], s.Eval(xq), 1e-9)
	}
}
