package filter

import (
	"testing"

	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func windingTestMagnetic() model.Magnetic {
	m := testMagnetic()
	wire := model.Wire{
		Type:               model.WireRound,
		OuterDiameter:      6e-4,
		ConductingDiameter: 5e-4,
	}
	m.Coil.Turns = []model.Turn{
		{WindingName: "primary", Length: 0.05, Wire: wire},
		{WindingName: "primary", Length: 0.05, Wire: wire},
	}
	return m
}

func TestMinimumImpedanceSkippedWhenNoRequirement(t *testing.T) {
	f := MinimumImpedanceFilter{}
	result, err := f.Evaluate(testMagnetic(), Context{})
	require.NoError(t, err)
	assert.True(t, result.Valid)
}

func TestMinimumImpedanceEvaluatesBands(t *testing.T) {
	f := MinimumImpedanceFilter{}
	ctx := Context{
		Temperature: 25,
		Requirement: model.DesignRequirement{
			MinimumImpedance: []model.ImpedancePoint{{Frequency: 1e5, MinimumImpedance: 1}},
		},
		WireResistivity: []model.ResistivityPoint{{Value: 1.7e-8, Temperature: 25}},
	}
	result, err := f.Evaluate(windingTestMagnetic(), ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Score, 0.0)
}

func TestMinimumImpedanceRequiresTurns(t *testing.T) {
	f := MinimumImpedanceFilter{}
	ctx := Context{
		Requirement: model.DesignRequirement{
			MinimumImpedance: []model.ImpedancePoint{{Frequency: 1e5, MinimumImpedance: 1}},
		},
	}
	_, err := f.Evaluate(testMagnetic(), ctx)
	assert.Error(t, err)
}
