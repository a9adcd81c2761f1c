package coil

import (
	"fmt"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
)

// wireOuterExtent returns the outer extent a single wire occupies along
// the axial (turn-to-turn, within a layer) and radial (layer-to-layer,
// within a section) axes.
func wireOuterExtent(w model.Wire) (axial, radial float64) {
	switch w.Type {
	case model.WireRound:
		return w.OuterDiameter, w.OuterDiameter
	case model.WireLitz:
		if w.Strand == nil {
			return 0, 0
		}
		a, r := wireOuterExtent(*w.Strand)
		// A litz bundle's own outer envelope isn't the strand's extent
		// times strand count in either axis alone; approximate the round
		// bundle envelope by strand area scaling, the same approximation
		// fringing-factor "equivalent radius" family uses
		// for irregular cross-sections.
		scale := float64(w.NumberStrands)
		return a * scale, r * scale
	default:
		return w.OuterHeight, w.OuterWidth
	}
}

// PlanLayers lays turns of a single winding's occurrence (already
// isolated to one section by pattern split) into radially
// stacked layers, each spanning the section's axial extent, following
// layersOrientation the same way PlanSections follows section
// orientation: OVERLAPPING layers are packed tight radially, CONTIGUOUS
// layers leave a winding-diameter gap as distributed self-insulation.
func PlanLayers(section model.Section, fd model.CoilFunctionalDescription, instancesNeeded int, layersOrientation model.SectionOrientation) ([]model.Layer, error) {
	axialExtent, radialExtent := wireOuterExtent(fd.Wire)
	if axialExtent <= 0 || radialExtent <= 0 {
		return nil, fmt.Errorf("coil: PlanLayers: winding %q wire has no outer dimensions: %w", fd.Name, merr.InvalidInput)
	}

	turnsPerLayer := int(section.Height / axialExtent)
	if turnsPerLayer <= 0 {
		return nil, fmt.Errorf("coil: PlanLayers: winding %q turns do not fit the section's axial extent: %w", fd.Name, merr.CalculationInvalid)
	}

	layerPitch := radialExtent
	if layersOrientation == model.SectionContiguous {
		layerPitch *= 2
	}

	var layers []model.Layer
	remaining := instancesNeeded
	radialCursor := section.CoordinatesXYZ[0] - section.Width/2 + radialExtent/2
	for remaining > 0 {
		if radialCursor+radialExtent/2 > section.CoordinatesXYZ[0]+section.Width/2 {
			return nil, fmt.Errorf("coil: PlanLayers: winding %q does not fit within section width: %w", fd.Name, merr.CalculationInvalid)
		}
		count := turnsPerLayer
		if count > remaining {
			count = remaining
		}
		layers = append(layers, model.Layer{
			SectionName:    section.Name,
			CoordinatesXYZ: [3]float64{radialCursor, section.CoordinatesXYZ[1], section.CoordinatesXYZ[2]},
			Width:          radialExtent,
			Height:         float64(count) * axialExtent,
		})
		remaining -= count
		radialCursor += layerPitch
	}
	return layers, nil
}
