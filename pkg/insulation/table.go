// Package insulation implements insulation coordinator:
// four standard models (IEC 60664, 62368, 61558, 60335), each exposing
// clearance/creepage/distance-through-insulation over the same input set,
// combined by a coordinator that takes the maximum unless the requirement
// pins a single standard, plus a CoilSectionInterface solver that turns a
// coordinated requirement into a concrete layer/margin construction.
//
// The governing standards ship their lookup tables as external data files
// (IEC_60664-1.json and siblings) that are not part of this module's
// inputs; the tables below are small literal point sets with the same
// monotonic shape the standards document (creepage/clearance rising with
// voltage, falling with pollution-degree tolerance), kept as literal Go
// data rather than an external file format since there is no config-file
// parser in this codebase to justify one.
package insulation

import (
	"fmt"
	"sort"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/numeric"
)

// point is one (x, y) entry of a tabulated curve.
type point struct {
	X, Y float64
}

// table is a sorted-by-X lookup; interpolate() reuses
// pkg/numeric.LinearInterpolate (the same kernel the resistivity and
// permeability tables use) rather than reimplementing clamped linear
// interpolation here.
type table []point

func (t table) interpolate(x float64) (float64, error) {
	if len(t) == 0 {
		return 0, fmt.Errorf("insulation: empty table: %w", merr.InvalidInput)
	}
	sorted := make(table, len(t))
	copy(sorted, t)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	xs := make([]float64, len(sorted))
	ys := make([]float64, len(sorted))
	for i, p := range sorted {
		xs[i], ys[i] = p.X, p.Y
	}
	return numeric.LinearInterpolate(xs, ys, x)
}

// step returns the table entry associated with the largest X not
// exceeding the requested one, a discrete-step lookup rather than an
// interpolated curve. The category axes (pollution degree, overvoltage
// category, CTI group) are looked up in plain maps, not through step.
func (t table) step(x float64) (float64, error) {
	if len(t) == 0 {
		return 0, fmt.Errorf("insulation: empty table: %w", merr.InvalidInput)
	}
	sorted := make(table, len(t))
	copy(sorted, t)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	best := sorted[0]
	for _, p := range sorted {
		if p.X <= x {
			best = p
		}
	}
	return best.Y, nil
}
