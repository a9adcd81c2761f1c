package winding

import (
	"testing"

	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/openmagnetics-go/mkf/pkg/tempcoef"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundCopperWire(diameter float64) model.Wire {
	return model.Wire{Type: model.WireRound, ConductingDiameter: diameter}
}

func TestDCResistancePerMeter(t *testing.T) {
	wire := roundCopperWire(1e-3)
	r, err := DCResistancePerMeter(wire, tempcoef.CopperResistivityPoints, 20)
	require.NoError(t, err)
	assert.Greater(t, r, 0.0)
}

func TestDCResistancePerMeterRejectsZeroArea(t *testing.T) {
	_, err := DCResistancePerMeter(model.Wire{Type: model.WireRound}, tempcoef.CopperResistivityPoints, 20)
	assert.Error(t, err)
}

func TestEffectiveResistancePerMeterAtDCMatchesDCResistance(t *testing.T) {
	wire := roundCopperWire(1e-3)
	dc, err := DCResistancePerMeter(wire, tempcoef.CopperResistivityPoints, 20)
	require.NoError(t, err)
	eff, err := EffectiveResistancePerMeter(wire, tempcoef.CopperResistivityPoints, 0, 20)
	require.NoError(t, err)
	assert.InDelta(t, dc, eff, 1e-9)
}

func TestEffectiveResistancePerMeterIncreasesWithFrequency(t *testing.T) {
	wire := roundCopperWire(2e-3)
	low, err := EffectiveResistancePerMeter(wire, tempcoef.CopperResistivityPoints, 1e3, 20)
	require.NoError(t, err)
	high, err := EffectiveResistancePerMeter(wire, tempcoef.CopperResistivityPoints, 1e6, 20)
	require.NoError(t, err)
	assert.Greater(t, high, low)
}

func TestEffectiveResistancePerMeterLitzDividesByStrandCount(t *testing.T) {
	strand := roundCopperWire(0.1e-3)
	litz := model.Wire{Type: model.WireLitz, Strand: &strand, NumberStrands: 100}
	strandR, err := EffectiveResistancePerMeter(strand, tempcoef.CopperResistivityPoints, 1e4, 20)
	require.NoError(t, err)
	litzR, err := EffectiveResistancePerMeter(litz, tempcoef.CopperResistivityPoints, 1e4, 20)
	require.NoError(t, err)
	assert.InDelta(t, strandR/100, litzR, 1e-9)
}

func TestEffectiveResistancePerMeterLitzRequiresStrand(t *testing.T) {
	litz := model.Wire{Type: model.WireLitz, NumberStrands: 10}
	_, err := EffectiveResistancePerMeter(litz, tempcoef.CopperResistivityPoints, 1e4, 20)
	assert.Error(t, err)
}
