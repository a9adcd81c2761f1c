package filter

import (
	"testing"

	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnergyStoredScoresPositive(t *testing.T) {
	f := EnergyStoredFilter{}
	ctx := Context{Requirement: testRequirement(), OperatingPoints: sinusoidalOperatingPoints(1, 0.707, 1e5)}
	result, err := f.Evaluate(testMagnetic(), ctx)
	require.NoError(t, err)
	assert.Greater(t, result.Score, 0.0)
}

func TestEnergyStoredIncludesGaps(t *testing.T) {
	f := EnergyStoredFilter{}
	ctx := Context{Requirement: testRequirement(), OperatingPoints: sinusoidalOperatingPoints(1, 0.707, 1e5)}
	withoutGap, err := f.Evaluate(testMagnetic(), ctx)
	require.NoError(t, err)

	gapped := testMagnetic()
	gapped.Core.Gapping = []model.CoreGap{{Type: model.GapAdditive, Length: 1e-3}}
	withGap, err := f.Evaluate(gapped, ctx)
	require.NoError(t, err)

	assert.Less(t, withGap.Score, withoutGap.Score)
}

func TestEnergyStoredRequiresSaturationPoint(t *testing.T) {
	f := EnergyStoredFilter{}
	m := testMagnetic()
	m.Core.Material.Saturation = nil
	ctx := Context{Requirement: testRequirement(), OperatingPoints: sinusoidalOperatingPoints(1, 0.707, 1e5)}
	_, err := f.Evaluate(m, ctx)
	assert.Error(t, err)
}
