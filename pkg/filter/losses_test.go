package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLossesScoresPositive(t *testing.T) {
	f := LossesFilter{}
	ctx := Context{Temperature: 25, OperatingPoints: sinusoidalOperatingPoints(1, 0.707, 1e5)}
	result, err := f.Evaluate(testMagnetic(), ctx)
	require.NoError(t, err)
	assert.Greater(t, result.Score, 0.0)
	assert.True(t, result.Valid)
}

func TestLossesRequiresPrimaryWaveform(t *testing.T) {
	f := LossesFilter{}
	_, err := f.Evaluate(testMagnetic(), Context{Temperature: 25})
	assert.Error(t, err)
}

func TestLossesRequiresProcessedCore(t *testing.T) {
	f := LossesFilter{}
	m := testMagnetic()
	m.Core.Processed = nil
	ctx := Context{Temperature: 25, OperatingPoints: sinusoidalOperatingPoints(1, 0.707, 1e5)}
	_, err := f.Evaluate(m, ctx)
	assert.Error(t, err)
}
