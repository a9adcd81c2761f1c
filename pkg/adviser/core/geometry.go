// Package coreadviser implements core adviser: weighted
// multi-filter selection of catalogue cores against a design requirement.
package coreadviser

import (
	"fmt"
	"math"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
)

// densityByFamily is a representative bulk density table, kg/m^3, standing
// in for the manufacturer density data the retrieved catalogue format does
// not carry (model.CoreMaterial has no density field, the same gap
// pkg/filter's cost table documents). Figures are order-of-magnitude typical
// values, not a per-material lookup.
var densityByFamily = map[model.MaterialFamily]float64{
	model.MaterialFerrite:         4800,
	model.MaterialPowder:          6500,
	model.MaterialAmorphous:       7300,
	model.MaterialNanocrystalline: 7400,
	model.MaterialSiliconSteel:    7650,
}

// fillFraction approximates the fraction of a core's outer bounding box
// that is actually ferromagnetic material, used only for the mass
// approximation below.
const fillFraction = 0.6

// dimension reads a named dimension, nominal preferred, falling back to
// def when absent so an incompletely specified shape still processes.
func dimension(shape model.CoreShape, key string, def float64) float64 {
	bv, ok := shape.Dimensions[key]
	if !ok {
		return def
	}
	v, err := model.GetRequirementValue(bv, model.DimensionalNominal)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// ProcessShape derives a CoreProcessedDescription from a shape's raw
// dimensions and a material, following the catalogue's A=outer width,
// B=outer height dimension-key convention pkg/catalog.shapeScale already
// established, extended here with C=outer depth, D=central column width,
// E=window width, F=window height for two-piece-set families, and
// A=outer diameter, B=inner (hole) diameter, C=height for toroids. This is
// an explicitly approximate geometry model: no geometricUtils-equivalent
// source survived into original_source (see DESIGN.md), so shapes are
// treated as idealized rectangular-window two-piece sets or idealized
// annuli rather than per-family exact outlines.
func ProcessShape(shape model.CoreShape, material model.CoreMaterial, stacks int) (model.CoreProcessedDescription, error) {
	if stacks <= 0 {
		stacks = 1
	}
	density := densityByFamily[material.Family]
	if density <= 0 {
		density = densityByFamily[model.MaterialFerrite]
	}

	if shape.MagneticCircuit == model.CircuitClosed && isToroidalFamily(shape) {
		return processToroid(shape, density, stacks)
	}
	return processTwoPieceSet(shape, density, stacks)
}

func isToroidalFamily(shape model.CoreShape) bool {
	return shape.Family == model.FamilyT
}

func processToroid(shape model.CoreShape, density float64, stacks int) (model.CoreProcessedDescription, error) {
	outerDiameter := dimension(shape, "A", 0)
	innerDiameter := dimension(shape, "B", 0)
	height := dimension(shape, "C", 0)
	if outerDiameter <= 0 || innerDiameter <= 0 || height <= 0 || innerDiameter >= outerDiameter {
		return model.CoreProcessedDescription{}, fmt.Errorf("coreadviser: ProcessShape: toroid %q has unusable dimensions: %w", shape.Name, merr.InvalidInput)
	}

	radialBuild := (outerDiameter - innerDiameter) / 2
	area := radialBuild * height * float64(stacks)
	meanDiameter := (outerDiameter + innerDiameter) / 2
	length := math.Pi * meanDiameter
	volume := area * length
	radius := innerDiameter / 2

	return model.CoreProcessedDescription{
		Columns: []model.CoreColumn{
			{Type: "central", Area: area, Height: length, Width: radialBuild, Depth: height},
		},
		WindingWindows: []model.WindingWindow{
			{Radius: &radius, AngularHeight: ptr(2 * math.Pi), Area: math.Pi * radius * radius},
		},
		EffectiveArea:   area,
		EffectiveLength: length,
		EffectiveVolume: volume,
		MinimumArea:     area,
		Height:          height,
		Width:           outerDiameter,
		Depth:           outerDiameter,
		Mass:            volume * density,
	}, nil
}

func processTwoPieceSet(shape model.CoreShape, density float64, stacks int) (model.CoreProcessedDescription, error) {
	width := dimension(shape, "A", 0)
	height := dimension(shape, "B", 0)
	if width <= 0 || height <= 0 {
		return model.CoreProcessedDescription{}, fmt.Errorf("coreadviser: ProcessShape: shape %q has unusable outer dimensions: %w", shape.Name, merr.InvalidInput)
	}
	depth := dimension(shape, "C", width)
	centralLegWidth := dimension(shape, "D", width/3)
	windowWidth := dimension(shape, "E", (width-3*centralLegWidth)/2)
	windowHeight := dimension(shape, "F", height-2*centralLegWidth)
	if windowWidth <= 0 {
		windowWidth = width / 4
	}
	if windowHeight <= 0 {
		windowHeight = height / 3
	}

	centralArea := centralLegWidth * depth * float64(stacks)
	lateralArea := centralArea / 2
	centralHeight := windowHeight + centralLegWidth
	lateralHeight := centralHeight

	effectiveLength := 2 * (windowHeight + centralLegWidth + windowWidth/2)
	effectiveArea := centralArea
	effectiveVolume := effectiveArea * effectiveLength

	boundingVolume := width * height * depth * float64(stacks)
	mass := boundingVolume * fillFraction * density

	return model.CoreProcessedDescription{
		Columns: []model.CoreColumn{
			{Type: "central", Area: centralArea, Height: centralHeight, Width: centralLegWidth, Depth: depth},
			{Type: "lateral", Area: lateralArea, Height: lateralHeight, Width: centralLegWidth / 2, Depth: depth},
			{Type: "lateral", Area: lateralArea, Height: lateralHeight, Width: centralLegWidth / 2, Depth: depth},
		},
		WindingWindows: []model.WindingWindow{
			{Width: windowWidth, Height: windowHeight, Area: windowWidth * windowHeight},
		},
		EffectiveArea:   effectiveArea,
		EffectiveLength: effectiveLength,
		EffectiveVolume: effectiveVolume,
		MinimumArea:     effectiveArea,
		Height:          height,
		Width:           width,
		Depth:           depth * float64(stacks),
		Mass:            mass,
	}, nil
}

func ptr(v float64) *float64 { return &v }
