// Package reluctance implements magnetic-circuit reluctance
// model: per-column reluctance, the gap fringing-factor family, and a
// sparse-matrix network solver for combining columns and gaps in
// series/parallel. The network solver is built directly on
// github.com/edp1096/sparse and solves nodal equations the same way a
// resistor network would, because a reluctance network is exactly a DC
// conductance network under the magnetic/electric duality (permeance <->
// conductance, MMF <-> voltage, flux <-> current).
package reluctance

import (
	"fmt"
	"math"

	"github.com/openmagnetics-go/mkf/internal/constants"
	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
)

// Column returns the reluctance of one ungapped magnetic-path column:
// l_e / (mu0 * mu_i * A_e).
func Column(effectiveLength, effectiveArea, initialPermeability float64) (float64, error) {
	if effectiveArea <= 0 || initialPermeability <= 0 {
		return 0, fmt.Errorf("reluctance: Column: area and permeability must be positive: %w", merr.InvalidInput)
	}
	r := effectiveLength / (constants.VacuumPermeability * initialPermeability * effectiveArea)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, fmt.Errorf("reluctance: Column: %w", merr.NaNResult)
	}
	return r, nil
}

// Gap returns the base reluctance of a single gap of the given length and
// area under fringing factor f (>= 1): g / (mu0 * F * A_g).
func Gap(length, area, fringingFactor float64) (float64, error) {
	if area <= 0 {
		return 0, fmt.Errorf("reluctance: Gap: area must be positive: %w", merr.InvalidInput)
	}
	if fringingFactor < 1 {
		return 0, fmt.Errorf("reluctance: Gap: fringing factor must be >= 1: %w", merr.InvalidInput)
	}
	if length <= 0 {
		length = constants.ResidualGap
	}
	r := length / (constants.VacuumPermeability * fringingFactor * area)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, fmt.Errorf("reluctance: Gap: %w", merr.NaNResult)
	}
	return r, nil
}

// Series sums reluctances placed end to end along the same flux path.
func Series(values ...float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// Parallel combines reluctances of legs that share the same flux source
// (the lateral columns of an E-core splitting the central column's flux).
func Parallel(values ...float64) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("reluctance: Parallel: no values given: %w", merr.InvalidInput)
	}
	var sumInverse float64
	for _, v := range values {
		if v <= 0 {
			return 0, fmt.Errorf("reluctance: Parallel: all values must be positive: %w", merr.InvalidInput)
		}
		sumInverse += 1 / v
	}
	if sumInverse == 0 {
		return 0, fmt.Errorf("reluctance: Parallel: %w", merr.NaNResult)
	}
	return 1 / sumInverse, nil
}

// TotalMagneticCircuit combines a central column's reluctance, its series
// gaps and the parallel combination of lateral legs (each already reduced
// to a scalar reluctance, gaps included).
func TotalMagneticCircuit(centralColumn float64, gaps []float64, lateralLegs []float64) (float64, error) {
	total := centralColumn
	total += Series(gaps...)
	if len(lateralLegs) > 0 {
		lateral, err := Parallel(lateralLegs...)
		if err != nil {
			return 0, err
		}
		total += lateral
	}
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, fmt.Errorf("reluctance: TotalMagneticCircuit: %w", merr.NaNResult)
	}
	return total, nil
}

// GapsFromCore copies every gap declared on a core, residual ones
// included, filling a missing gap area with the column area: the inputs
// the fringing-factor models and TotalMagneticCircuit need.
func GapsFromCore(gaps []model.CoreGap, columnArea float64) []model.CoreGap {
	out := make([]model.CoreGap, len(gaps))
	for i, g := range gaps {
		out[i] = g
		if out[i].Area == nil {
			area := columnArea
			out[i].Area = &area
		}
	}
	return out
}
