package reluctance

import (
	"fmt"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
)

// CoreTotalReluctance assembles a processed core's total magnetic-circuit
// reluctance: its central column(s) in series with the declared gaps
// (assumed to sit in the central leg, the common case for E/ETD/U/T-style
// shapes), combined with any lateral legs in parallel. It is the
// convenience wiring inductance solver and filters both
// need instead of re-deriving Column/Gap/TotalMagneticCircuit by hand.
//
// A processed core normally carries exactly one central column, handled by
// the closed-form series-of-parallel TotalMagneticCircuit. Some real cores
// (multi-aperture planar cores, matrix-transformer stacks) decompose into
// more than one central column sharing the same pair of lateral return
// legs — a topology the closed form can't reduce to a single scalar
// without double-counting or silently dropping a leg, so that case is
// solved as a real conductance network instead.
func CoreTotalReluctance(core model.Core, fm FringingModel, initialPermeability, frequency float64) (float64, error) {
	if core.Processed == nil {
		return 0, fmt.Errorf("reluctance: CoreTotalReluctance: %w", merr.NotProcessed)
	}

	var centralReluctances []float64
	var centralArea float64
	var lateralReluctances []float64
	for _, col := range core.Processed.Columns {
		r, err := Column(col.Height, col.Area, initialPermeability)
		if err != nil {
			return 0, err
		}
		if col.Type == "central" {
			centralReluctances = append(centralReluctances, r)
			centralArea = col.Area
			continue
		}
		lateralReluctances = append(lateralReluctances, r)
	}
	if len(centralReluctances) == 0 {
		return 0, fmt.Errorf("reluctance: CoreTotalReluctance: core has no central column: %w", merr.InvalidInput)
	}

	gaps := GapsFromCore(core.Gapping, centralArea)
	gapReluctances := make([]float64, 0, len(gaps))
	for _, g := range gaps {
		r, err := GapWithFringing(fm, g, centralArea, frequency)
		if err != nil {
			return 0, err
		}
		gapReluctances = append(gapReluctances, r)
	}

	if len(centralReluctances) == 1 {
		return TotalMagneticCircuit(centralReluctances[0], gapReluctances, lateralReluctances)
	}
	return multiLegReluctance(centralReluctances, gapReluctances, lateralReluctances)
}

// multiLegReluctance handles a core with more than one central column: each
// central leg carries the core's gap reluctance in series, each lateral leg
// carries none, and all legs land as parallel branches between the same two
// nodes (the split point and the return point), solved with Network rather
// than a hand-derived N-way parallel formula so that adding a genuinely
// irregular branch (a gap bridging two non-adjacent legs) only means
// calling AddBranch again, not rederiving a closed form.
func multiLegReluctance(centralReluctances, gapReluctances, lateralReluctances []float64) (float64, error) {
	seriesGap := Series(gapReluctances...)

	net := NewNetwork()
	top := net.AddNode()
	for _, central := range centralReluctances {
		if err := net.AddBranch(net.Ground(), top, central+seriesGap); err != nil {
			return 0, fmt.Errorf("reluctance: multiLegReluctance: %w", err)
		}
	}
	for _, lateral := range lateralReluctances {
		if err := net.AddBranch(net.Ground(), top, lateral); err != nil {
			return 0, fmt.Errorf("reluctance: multiLegReluctance: %w", err)
		}
	}

	return net.EquivalentReluctance(top)
}
