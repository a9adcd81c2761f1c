package coil

import (
	"fmt"
	"math"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
)

// PlanTurns places turns within a single layer along its axial extent,
// honoring turnsAlignment. Turns are assigned to parallels round-robin,
// starting at startParallel, across the winding's declared parallel count so every
// parallel gets an even share of turns across layers.
func PlanTurns(layer model.Layer, windingName string, wire model.Wire, count, parallels int, turnsAlignment model.Alignment, startParallel int) ([]model.Turn, error) {
	axialExtent, _ := wireOuterExtent(wire)
	if axialExtent <= 0 {
		return nil, fmt.Errorf("coil: PlanTurns: winding %q wire has no axial extent: %w", windingName, merr.InvalidInput)
	}
	if count <= 0 {
		return nil, nil
	}

	span := float64(count) * axialExtent
	if span > layer.Height+1e-12 {
		return nil, fmt.Errorf("coil: PlanTurns: %d turns do not fit layer height %g: %w", count, layer.Height, merr.CalculationInvalid)
	}

	var start float64
	switch turnsAlignment {
	case model.AlignInnerOrTop:
		start = layer.CoordinatesXYZ[1] - layer.Height/2
	case model.AlignOuterOrBottom:
		start = layer.CoordinatesXYZ[1] + layer.Height/2 - span
	case model.AlignCentered:
		start = layer.CoordinatesXYZ[1] - span/2
	default: // AlignSpread
		start = layer.CoordinatesXYZ[1] - layer.Height/2
		if count > 1 {
			axialExtent = layer.Height / float64(count)
		}
	}

	turns := make([]model.Turn, count)
	for i := 0; i < count; i++ {
		turns[i] = model.Turn{
			WindingName:    windingName,
			Parallel:       (startParallel + i) % parallels,
			Wire:           wire,
			CoordinatesXYZ: [3]float64{layer.CoordinatesXYZ[0], start + axialExtent*(float64(i)+0.5), layer.CoordinatesXYZ[2]},
		}
	}
	return turns, nil
}

// ToroidalTurns places turns at equal angular spacing around a toroidal
// winding window, the angular analogue of PlanTurns.
func ToroidalTurns(window model.WindingWindow, windingName string, wire model.Wire, count, parallels int) ([]model.Turn, error) {
	if window.AngularHeight == nil {
		return nil, fmt.Errorf("coil: ToroidalTurns: window has no angular height: %w", merr.InvalidInput)
	}
	if count <= 0 {
		return nil, nil
	}
	step := *window.AngularHeight / float64(count)
	turns := make([]model.Turn, count)
	for i := 0; i < count; i++ {
		angle := step * (float64(i) + 0.5)
		turns[i] = model.Turn{
			WindingName:    windingName,
			Parallel:       i % parallels,
			Wire:           wire,
			AngleDegrees:   floatPtr(angle * 180 / math.Pi),
			CoordinatesXYZ: window.CoordinatesXYZ,
		}
	}
	return turns, nil
}

func floatPtr(v float64) *float64 { return &v }
