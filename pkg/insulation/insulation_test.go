package insulation

import (
	"testing"

	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseParameters() Parameters {
	return Parameters{
		Frequency:   50,
		PeakVoltage: 400,
		RMSVoltage:  230,
		Altitude:    model.Fixed(0),
		Requirements: model.InsulationRequirements{
			Standards:          []model.InsulationStandard{model.StandardIEC60664},
			OvervoltageCategory: model.OVCII,
			PollutionDegree:     model.PollutionDegree2,
			CTI:                 model.CTIGroupII,
			InsulationType:      model.InsulationBasic,
		},
	}
}

func TestClearanceIncreasesWithOvervoltageCategory(t *testing.T) {
	low := baseParameters()
	low.Requirements.OvervoltageCategory = model.OVCI
	high := baseParameters()
	high.Requirements.OvervoltageCategory = model.OVCIV

	lowClearance, err := Clearance(model.StandardIEC60664, low)
	require.NoError(t, err)
	highClearance, err := Clearance(model.StandardIEC60664, high)
	require.NoError(t, err)
	assert.Greater(t, highClearance, lowClearance)
}

func TestCreepageIncreasesAbove30kHz(t *testing.T) {
	p := baseParameters()
	lowFreq := p
	lowFreq.Frequency = 50
	highFreq := p
	highFreq.Frequency = 1e6

	low, err := CreepageDistance(model.StandardIEC60664, lowFreq)
	require.NoError(t, err)
	high, err := CreepageDistance(model.StandardIEC60664, highFreq)
	require.NoError(t, err)
	assert.Greater(t, high, low)
}

func TestClearanceScalesWithAltitude(t *testing.T) {
	lowAltitude := baseParameters()
	lowAltitude.Altitude = model.Fixed(0)
	highAltitude := baseParameters()
	highAltitude.Altitude = model.Fixed(5000)

	low, err := Clearance(model.StandardIEC60664, lowAltitude)
	require.NoError(t, err)
	high, err := Clearance(model.StandardIEC60664, highAltitude)
	require.NoError(t, err)
	assert.Greater(t, high, low)
}

func TestCoordinateTakesMaximumAcrossStandards(t *testing.T) {
	single := baseParameters()
	single.Requirements.Standards = []model.InsulationStandard{model.StandardIEC60664}
	both := baseParameters()
	both.Requirements.Standards = []model.InsulationStandard{model.StandardIEC60664, model.StandardIEC60335}

	singleResult, err := Coordinate(single)
	require.NoError(t, err)
	bothResult, err := Coordinate(both)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, bothResult.CreepageDistance, singleResult.CreepageDistance)
}

func TestCoordinateRequiresAtLeastOneStandard(t *testing.T) {
	p := baseParameters()
	p.Requirements.Standards = nil
	_, err := Coordinate(p)
	assert.Error(t, err)
}

func TestCoilSectionInterfaceMechanicalWhenCoatingAlreadySufficient(t *testing.T) {
	wire := model.Wire{Coating: model.Coating{Type: model.CoatingEnamelled, BreakdownVoltage: 10000}}
	required := CoordinatedRequirement{Clearance: 1e-3, CreepageDistance: 1e-3, DistanceThroughInsulation: 0.1e-3}
	result := CoilSectionInterface(wire, wire, 1000, 0.05e-3, required, 400)
	assert.Equal(t, PurposeMechanical, result.Purpose)
	assert.Equal(t, 1, result.NumberLayers)
}

func TestCoilSectionInterfaceAddsLayersWhenCoatingInsufficient(t *testing.T) {
	bare := model.Wire{Coating: model.Coating{Type: model.CoatingBare}}
	required := CoordinatedRequirement{Clearance: 1e-3, CreepageDistance: 1e-3, DistanceThroughInsulation: 0.1e-3}
	result := CoilSectionInterface(bare, bare, 1000, 0.05e-3, required, 400)
	assert.Equal(t, PurposeInsulating, result.Purpose)
	assert.GreaterOrEqual(t, result.NumberLayers, 1)
}

func TestCoilSectionInterfaceFallsBackToMarginTape(t *testing.T) {
	bare := model.Wire{Coating: model.Coating{Type: model.CoatingBare}}
	required := CoordinatedRequirement{Clearance: 1e-3, CreepageDistance: 1e-3, DistanceThroughInsulation: 0.1e-3}
	result := CoilSectionInterface(bare, bare, 10, 1e-6, required, 1e6)
	assert.Greater(t, result.MarginTapeDistance, 0.0)
}
