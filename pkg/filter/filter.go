// Package filter implements the magnetic filters: pure functions
// evaluate(Magnetic, Inputs) -> (valid, score) plus the population-level
// score normalization the core adviser runs them through. Modeled on a
// dispatch over interchangeable models behind one interface, generalized
// from per-timestep stamping to a single scalar verdict per candidate.
package filter

import (
	"math"
	"sort"

	"github.com/openmagnetics-go/mkf/pkg/model"
)

// Name identifies one of the six canonical filters.
type Name string

const (
	AreaProduct      Name = "AreaProduct"
	EnergyStored     Name = "EnergyStored"
	Cost             Name = "Cost"
	Losses           Name = "Losses"
	Dimensions       Name = "Dimensions"
	MinimumImpedance Name = "MinimumImpedance"
)

// Priority is the fixed tie-break order used when more than one filter
// shares the maximum configured weight.
var Priority = []Name{AreaProduct, EnergyStored, Cost, Losses, Dimensions, MinimumImpedance}

// Context bundles everything a filter needs beyond the candidate itself:
// the requirement the candidate is being screened against, the operating
// points it must survive, and the ambient temperature process_data() was
// run at.
type Context struct {
	Requirement     model.DesignRequirement
	OperatingPoints []model.OperatingPoint
	Temperature     float64

	// WireResistivity is the provisional coil's conductor resistivity
	// curve, needed only by MinimumImpedance to estimate AC resistance.
	WireResistivity []model.ResistivityPoint
}

// Result is one filter's verdict on one candidate: whether it passes at
// all, and a raw score where, for every filter defined in this package,
// lower is better (the population normalization step below is what turns
// that into the final descending-is-better aggregate).
type Result struct {
	Valid bool
	Score float64
}

// Filter is the common shape every canonical filter implements.
type Filter interface {
	Name() Name
	Evaluate(candidate model.Magnetic, ctx Context) (Result, error)
}

// Weighting is one filter's entry in the adviser's weight map: its weight
// in the aggregate sum, and the two optional score transforms available
// (log-scale before min-max, invert after).
type Weighting struct {
	Weight float64
	Log    bool
	Invert bool
}

// Normalize implements population-level score rule:
// min-max to [0,1] across raw, optionally log-scaled first, optionally
// inverted (1-x) afterward, then weight-multiplied. A degenerate
// population (every candidate scored identically) normalizes to 0 for
// every entry, since there is nothing to discriminate on.
func Normalize(raw []float64, w Weighting) []float64 {
	out := make([]float64, len(raw))
	if len(raw) == 0 {
		return out
	}

	values := make([]float64, len(raw))
	copy(values, raw)
	if w.Log {
		for i, v := range values {
			values[i] = logScale(v)
		}
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	span := max - min
	for i, v := range values {
		var n float64
		if span > 0 {
			n = (v - min) / span
		}
		if w.Invert {
			n = 1 - n
		}
		out[i] = n * w.Weight
	}
	return out
}

// logScale maps a non-negative raw score onto a log scale while staying
// defined at zero, matching the spirit of a log-log area-product/cost
// sweep without diverging on a zero-cost or zero-loss candidate.
func logScale(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Log1p(v)
}

// Ranked is one candidate carried alongside its running aggregate score
// through the adviser pipeline.
type Ranked struct {
	Magnetic model.Magnetic
	Score    float64
}

// SortDescending orders by aggregate score, ties broken by catalogue order
// (a stable sort preserves the input order of ties).
func SortDescending(ranked []Ranked) {
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
}
