// Package winding implements the winding-ohmic and effective-resistance
// model: per-wire DC and skin-effect-corrected resistance, and the
// per-turn/per-parallel/per-winding assembly that combines them through a
// conductance network solved the same way pkg/reluctance solves a magnetic
// circuit, both built on github.com/edp1096/sparse for a network that needs
// no electrical-to-magnetic translation: it is an actual resistor network,
// not an analogy.
package winding

import (
	"fmt"
	"math"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/openmagnetics-go/mkf/pkg/numeric"
	"github.com/openmagnetics-go/mkf/pkg/tempcoef"
)

// DCResistancePerMeter is rho(T) / A_conducting.
func DCResistancePerMeter(wire model.Wire, resistivityPoints []model.ResistivityPoint, temperature float64) (float64, error) {
	area := wire.ConductingArea()
	if area <= 0 {
		return 0, fmt.Errorf("winding: DCResistancePerMeter: wire has no conducting area: %w", merr.InvalidInput)
	}
	rho, err := tempcoef.Resistivity(resistivityPoints, temperature)
	if err != nil {
		return 0, err
	}
	return rho / area, nil
}

// EffectiveResistancePerMeter is rho(T) / A_effective(f,T); for ROUND
// wires A_effective derives from Kelvin-function skin-effect
// ratio, litz wires divide their strand's effective resistance by the
// strand count, and every other wire type falls back to the DC area. No
// proximity-effect correction is applied.
func EffectiveResistancePerMeter(wire model.Wire, resistivityPoints []model.ResistivityPoint, frequency, temperature float64) (float64, error) {
	rho, err := tempcoef.Resistivity(resistivityPoints, temperature)
	if err != nil {
		return 0, err
	}

	switch wire.Type {
	case model.WireRound:
		dcResistancePerMeter := rho / wire.ConductingArea()
		if frequency <= 0 {
			return dcResistancePerMeter, nil
		}
		ratio := numeric.SkinEffectResistanceRatio(skinEffectArgument(wire, rho, frequency))
		return dcResistancePerMeter * ratio, nil
	case model.WireLitz:
		if wire.Strand == nil {
			return 0, fmt.Errorf("winding: EffectiveResistancePerMeter: litz wire has no strand: %w", merr.InvalidInput)
		}
		strandR, err := EffectiveResistancePerMeter(*wire.Strand, resistivityPoints, frequency, temperature)
		if err != nil {
			return 0, err
		}
		return strandR / float64(wire.NumberStrands), nil
	default:
		area := wire.ConductingArea()
		if area <= 0 {
			return 0, fmt.Errorf("winding: EffectiveResistancePerMeter: wire has no conducting area: %w", merr.InvalidInput)
		}
		return rho / area, nil
	}
}

// skinEffectArgument is the dimensionless x the classical Kelvin-function
// skin-effect ratio is evaluated at: the wire radius scaled by the
// reciprocal skin depth.
func skinEffectArgument(wire model.Wire, resistivity, frequency float64) float64 {
	radius := wire.ConductingDiameter / 2
	return math.Sqrt2 * radius / SkinDepth(resistivity, frequency)
}

// SkinDepth is the classical skin depth δ = sqrt(ρ / (π f μ0)), exported
// for wire adviser's skin-depth-headroom score, which needs the
// same quantity this package's resistance model computes internally.
func SkinDepth(resistivity, frequency float64) float64 {
	const mu0 = 4 * math.Pi * 1e-7
	if frequency <= 0 {
		return math.Inf(1)
	}
	return math.Sqrt(resistivity / (math.Pi * frequency * mu0))
}
