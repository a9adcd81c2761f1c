package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBesselI0AtZeroIsOne(t *testing.T) {
	assert.InDelta(t, 1.0, BesselI0(0), 1e-12)
}

func TestBesselI1AtZeroIsZero(t *testing.T) {
	assert.InDelta(t, 0.0, BesselI1(0), 1e-12)
}

func TestBesselI0KnownValue(t *testing.T) {
	// I0(1) = 1.2660658777520084
	assert.InDelta(t, 1.2660658777520084, BesselI0(1), 1e-9)
}

func TestBesselI1KnownValue(t *testing.T) {
	// I1(1) = 0.5651591039924851
	assert.InDelta(t, 0.5651591039924851, BesselI1(1), 1e-9)
}

func TestBesselJ0AtZeroIsOne(t *testing.T) {
	assert.InDelta(t, 1.0, BesselJ0(0), 1e-12)
}

func TestBesselJ0KnownValue(t *testing.T) {
	// J0(1) = 0.7651976865579666
	assert.InDelta(t, 0.7651976865579666, BesselJ0(1), 1e-9)
}

func TestKelvinBer0AtZeroIsOne(t *testing.T) {
	assert.InDelta(t, 1.0, KelvinBer0(0), 1e-12)
}

func TestKelvinBei0AtZeroIsZero(t *testing.T) {
	assert.InDelta(t, 0.0, KelvinBei0(0), 1e-12)
}

func TestKelvinBer1AtZeroIsZero(t *testing.T) {
	assert.InDelta(t, 0.0, KelvinBer1(0), 1e-12)
}

func TestKelvinBei1AtZeroIsZero(t *testing.T) {
	assert.InDelta(t, 0.0, KelvinBei1(0), 1e-12)
}

func TestSkinEffectResistanceRatioAtZeroIsOne(t *testing.T) {
	assert.InDelta(t, 1.0, SkinEffectResistanceRatio(0), 1e-12)
}

func TestSkinEffectResistanceRatioGrowsWithFrequency(t *testing.T) {
	small := SkinEffectResistanceRatio(1)
	large := SkinEffectResistanceRatio(10)
	assert.Greater(t, large, small)
	assert.GreaterOrEqual(t, small, 1.0)
}
