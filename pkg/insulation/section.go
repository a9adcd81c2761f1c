package insulation

import "github.com/openmagnetics-go/mkf/pkg/model"

// SectionInterfacePurpose is {INSULATING, MECHANICAL}
// classification of a layer added between two adjacent sections.
type SectionInterfacePurpose int

const (
	PurposeInsulating SectionInterfacePurpose = iota
	PurposeMechanical
)

// SectionInterfaceResult is the CoilSectionInterface solver's output: how
// many insulating layers, how much margin tape, and why.
type SectionInterfaceResult struct {
	NumberLayers       int
	MarginTapeDistance float64
	Purpose            SectionInterfacePurpose
}

// safetyFactor is the margin the coordinated breakdown voltage and
// distance-through-insulation must exceed the requirement by before the
// solver accepts a construction, per "exceed... by the
// standard's safety factor."
const safetyFactor = 1.25

// wireBreakdownVoltage returns the insulation breakdown voltage a wire's
// own coating already provides, 0 for BARE/SERVED/TAPED coatings that
// provide no dielectric margin of their own.
func wireBreakdownVoltage(w model.Wire) float64 {
	switch w.Coating.Type {
	case model.CoatingEnamelled, model.CoatingInsulated:
		return w.Coating.BreakdownVoltage
	default:
		return 0
	}
}

// CoilSectionInterface solves pairwise section interface:
// given two adjacent sections' wires and a chosen insulation material's
// per-layer thickness/breakdown voltage, decide how many insulating
// layers (1-3) and how much margin tape the interface needs to meet the
// coordinated requirement with the standard's safety factor.
func CoilSectionInterface(wireA, wireB model.Wire, insulationMaterialBreakdownVoltage, insulationMaterialThicknessPerLayer float64, required CoordinatedRequirement, peakVoltage float64) SectionInterfaceResult {
	higherRated := wireBreakdownVoltage(wireA)
	if other := wireBreakdownVoltage(wireB); other > higherRated {
		higherRated = other
	}

	if higherRated >= peakVoltage*safetyFactor {
		return SectionInterfaceResult{NumberLayers: 1, Purpose: PurposeMechanical}
	}

	remainingVoltage := peakVoltage*safetyFactor - higherRated
	requiredThickness := required.DistanceThroughInsulation * safetyFactor

	layers := 0
	var cumulativeBreakdown, cumulativeThickness float64
	for layers < 3 && (cumulativeBreakdown < remainingVoltage || cumulativeThickness < requiredThickness) {
		layers++
		cumulativeBreakdown += insulationMaterialBreakdownVoltage
		cumulativeThickness += insulationMaterialThicknessPerLayer
	}
	if layers == 0 {
		layers = 1
	}

	marginTape := 0.0
	if cumulativeBreakdown < remainingVoltage || cumulativeThickness < requiredThickness {
		// Three layers alone can't close the gap (thin film, low
		// breakdown material): fall back to margin tape sized off the
		// coordinated creepage distance directly.
		marginTape = required.CreepageDistance * safetyFactor
	}

	return SectionInterfaceResult{
		NumberLayers:       layers,
		MarginTapeDistance: marginTape,
		Purpose:            PurposeInsulating,
	}
}
