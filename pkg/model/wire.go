package model

import "math"

// WireType is the tagged-variant discriminant of Wire.
type WireType int

const (
	WireRound WireType = iota
	WireRectangular
	WireFoil
	WirePlanar
	WireLitz
)

// CoatingType is the tagged-variant discriminant for a wire's insulation
// coating.
type CoatingType int

const (
	CoatingBare CoatingType = iota
	CoatingEnamelled
	CoatingInsulated
	CoatingServed
	CoatingTaped
)

// EnamelGrade is the grade of an ENAMELLED coating (1..3).
type EnamelGrade int

// Coating is Wire coating variant.
type Coating struct {
	Type             CoatingType
	EnamelGrade      EnamelGrade                 // valid when Type == CoatingEnamelled
	InsulationLayers int                         // valid when Type == CoatingInsulated
	ThicknessPerLayer float64
	InsulationMaterial string
	BreakdownVoltage float64
}

// WireStandard names a wire dimensional standard.
type WireStandard string

const (
	StandardIEC60317  WireStandard = "IEC 60317"
	StandardNEMAMW1000 WireStandard = "NEMA MW 1000 C"
)

// Wire is the shared wire record: common attributes plus a LITZ reference to a
// strand wire when Type == WireLitz.
type Wire struct {
	Name             string
	Type             WireType
	Material         string
	Standard         WireStandard
	Coating          Coating

	// Outer and conducting dimensions, in meters. Round wires use
	// OuterDiameter/ConductingDiameter; rectangular/foil/planar use
	// OuterWidth/OuterHeight and ConductingWidth/ConductingHeight.
	OuterDiameter      float64
	ConductingDiameter float64
	OuterWidth         float64
	OuterHeight        float64
	ConductingWidth    float64
	ConductingHeight   float64

	// Strand is set, with NumberStrands > 0, when Type == WireLitz.
	Strand        *Wire
	NumberStrands int
}

// ConductingArea returns the conducting cross-sectional area of a single
// (non-litz) wire, or the aggregate strand area for a litz bundle.
func (w Wire) ConductingArea() float64 {
	switch w.Type {
	case WireRound:
		r := w.ConductingDiameter / 2
		return math.Pi * r * r
	case WireFoil, WirePlanar, WireRectangular:
		return w.ConductingWidth * w.ConductingHeight
	case WireLitz:
		if w.Strand == nil {
			return 0
		}
		return float64(w.NumberStrands) * w.Strand.ConductingArea()
	default:
		return 0
	}
}

// OuterArea mirrors ConductingArea using the outer (insulated) dimensions.
func (w Wire) OuterArea() float64 {
	switch w.Type {
	case WireRound:
		r := w.OuterDiameter / 2
		return math.Pi * r * r
	case WireFoil, WirePlanar, WireRectangular:
		return w.OuterWidth * w.OuterHeight
	case WireLitz:
		if w.Strand == nil {
			return 0
		}
		return float64(w.NumberStrands) * w.Strand.OuterArea()
	default:
		return 0
	}
}
