package filter

import (
	"testing"

	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAreaProductValidWhenWindowLarge(t *testing.T) {
	f := AreaProductFilter{UtilizationFactor: 0.3, CurrentDensityVariationFactor: 1, MaximumFluxDensity: 0.3, MaximumCurrentDensity: 5e6}
	ctx := Context{Requirement: testRequirement(), OperatingPoints: sinusoidalOperatingPoints(1, 0.707, 1e5)}
	result, err := f.Evaluate(testMagnetic(), ctx)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Greater(t, result.Score, 0.0)
}

func TestAreaProductRejectsNonPositiveConstants(t *testing.T) {
	f := AreaProductFilter{}
	_, err := f.Evaluate(testMagnetic(), Context{Requirement: testRequirement()})
	assert.Error(t, err)
}

func TestAreaProductRequiresProcessedCore(t *testing.T) {
	f := AreaProductFilter{UtilizationFactor: 0.3, CurrentDensityVariationFactor: 1, MaximumFluxDensity: 0.3, MaximumCurrentDensity: 5e6}
	_, err := f.Evaluate(model.Magnetic{}, Context{Requirement: testRequirement()})
	assert.Error(t, err)
}
