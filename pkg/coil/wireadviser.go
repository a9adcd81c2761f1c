package coil

import (
	"fmt"
	"math"
	"sort"

	"github.com/openmagnetics-go/mkf/pkg/catalog"
	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/openmagnetics-go/mkf/pkg/winding"
)

// WireAdviserRequest is the per-winding input to wire adviser.
type WireAdviserRequest struct {
	WindingName          string
	IsolationSide        model.IsolationSide
	RMSCurrent           float64
	EffectiveFrequency   float64
	Resistivity          float64
	MaximumCurrentDensity float64 // J_max, A/m^2
	MaximumParallels     int
	AllowedTypes         []model.WireType // empty means all types allowed
	MaximumResults       int
}

// WireCandidate pairs a scored wire with the CoilFunctionalDescription it
// would produce for this winding.
type WireCandidate struct {
	Score       float64
	Description model.CoilFunctionalDescription
}

// AdviseWires implements wire adviser: enumerate
// catalogue wires, keep those whose conducting area (times the parallel
// count needed to satisfy J_max) stays within MaximumParallels, score by
// area margin / skin-depth headroom / catalogue order, and return the
// best MaximumResults each already paired with a populated
// CoilFunctionalDescription.
func AdviseWires(facade *catalog.Facade, turnsRequired int, req WireAdviserRequest) ([]WireCandidate, error) {
	if req.RMSCurrent <= 0 {
		return nil, fmt.Errorf("coil: AdviseWires: RMS current must be positive: %w", merr.InvalidInput)
	}
	if req.MaximumCurrentDensity <= 0 {
		return nil, fmt.Errorf("coil: AdviseWires: maximum current density must be positive: %w", merr.InvalidInput)
	}

	allowed := make(map[model.WireType]bool, len(req.AllowedTypes))
	for _, t := range req.AllowedTypes {
		allowed[t] = true
	}

	skinDepth := winding.SkinDepth(req.Resistivity, req.EffectiveFrequency)

	var candidates []WireCandidate
	for catalogIndex, wire := range facade.Wires() {
		if len(allowed) > 0 && !allowed[wire.Type] {
			continue
		}
		area := wire.ConductingArea()
		if area <= 0 {
			continue
		}

		requiredArea := req.RMSCurrent / req.MaximumCurrentDensity
		parallels := int(math.Ceil(requiredArea / area))
		if parallels < 1 {
			parallels = 1
		}
		if parallels > req.MaximumParallels {
			continue
		}

		achievedArea := float64(parallels) * area
		areaMargin := achievedArea / requiredArea

		var skinHeadroom float64
		if wire.Type == model.WireRound && !math.IsInf(skinDepth, 1) {
			skinHeadroom = skinDepth / (wire.ConductingDiameter / 2)
		} else {
			skinHeadroom = 1
		}

		catalogPreference := 1 / float64(catalogIndex+1)
		score := 0.5/areaMargin + 0.3*clampScore(skinHeadroom) + 0.2*catalogPreference

		candidates = append(candidates, WireCandidate{
			Score: score,
			Description: model.CoilFunctionalDescription{
				Name:          req.WindingName,
				IsolationSide: req.IsolationSide,
				Turns:         turnsRequired,
				Parallels:     parallels,
				Wire:          wire,
			},
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Score > candidates[j].Score })

	if req.MaximumResults > 0 && len(candidates) > req.MaximumResults {
		candidates = candidates[:req.MaximumResults]
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("coil: AdviseWires: winding %q: %w", req.WindingName, merr.NoWireFits)
	}
	return candidates, nil
}

func clampScore(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}
