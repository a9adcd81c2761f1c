package filter

import (
	"testing"

	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostScalesWithMass(t *testing.T) {
	f := CostFilter{}
	light := testMagnetic()
	heavy := testMagnetic()
	heavy.Core.Processed.Mass *= 2

	lightResult, err := f.Evaluate(light, Context{})
	require.NoError(t, err)
	heavyResult, err := f.Evaluate(heavy, Context{})
	require.NoError(t, err)

	assert.InDelta(t, 2*lightResult.Score, heavyResult.Score, 1e-9)
}

func TestCostOverrideTakesPrecedence(t *testing.T) {
	f := CostFilter{CostOverride: map[model.MaterialFamily]float64{model.MaterialFerrite: 100}}
	result, err := f.Evaluate(testMagnetic(), Context{})
	require.NoError(t, err)
	assert.InDelta(t, 100*testMagnetic().Core.Processed.Mass, result.Score, 1e-9)
}

func TestCostRejectsUnknownMaterialFamily(t *testing.T) {
	f := CostFilter{}
	m := testMagnetic()
	m.Core.Material.Family = "unobtainium"
	_, err := f.Evaluate(m, Context{})
	assert.Error(t, err)
}

func TestCostRequiresProcessedCore(t *testing.T) {
	f := CostFilter{}
	_, err := f.Evaluate(model.Magnetic{}, Context{})
	assert.Error(t, err)
}
