package filter

import (
	"fmt"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
)

// AreaProductFilter implements AreaProduct filter:
// Ap_req = L*I_peak*I_rms / (k_u*k_J*B_max*J_max); Ap = A_w*A_e; valid iff
// Ap >= Ap_req; score = Ap_req/Ap.
type AreaProductFilter struct {
	UtilizationFactor            float64 // k_u, window fill fraction a real winding achieves
	CurrentDensityVariationFactor float64 // k_J, derating for non-uniform current distribution
	MaximumFluxDensity           float64 // B_max
	MaximumCurrentDensity        float64 // J_max
}

func (AreaProductFilter) Name() Name { return AreaProduct }

func (f AreaProductFilter) Evaluate(candidate model.Magnetic, ctx Context) (Result, error) {
	if f.UtilizationFactor <= 0 || f.CurrentDensityVariationFactor <= 0 || f.MaximumFluxDensity <= 0 || f.MaximumCurrentDensity <= 0 {
		return Result{}, fmt.Errorf("filter: AreaProduct: constants must be positive: %w", merr.InvalidInput)
	}
	if candidate.Core.Processed == nil {
		return Result{}, fmt.Errorf("filter: AreaProduct: %w", merr.NotProcessed)
	}
	if len(candidate.Core.Processed.WindingWindows) == 0 {
		return Result{}, fmt.Errorf("filter: AreaProduct: core has no winding window: %w", merr.NotProcessed)
	}

	inductance, err := model.GetRequirementValue(ctx.Requirement.MagnetizingInductance, model.DimensionalNominal)
	if err != nil {
		return Result{}, fmt.Errorf("filter: AreaProduct: %w", err)
	}
	peak, rms, err := primaryPeakAndRMSCurrent(ctx.OperatingPoints)
	if err != nil {
		return Result{}, fmt.Errorf("filter: AreaProduct: %w", err)
	}

	requiredAp := (inductance * peak * rms) / (f.UtilizationFactor * f.CurrentDensityVariationFactor * f.MaximumFluxDensity * f.MaximumCurrentDensity)

	windowArea := candidate.Core.Processed.WindingWindows[0].Area
	achievedAp := windowArea * candidate.Core.Processed.EffectiveArea
	if achievedAp <= 0 {
		return Result{Valid: false}, nil
	}

	return Result{
		Valid: achievedAp >= requiredAp,
		Score: requiredAp / achievedAp,
	}, nil
}

// primaryPeakAndRMSCurrent reads the peak/RMS current of the primary
// winding across every declared operating point, returning the worst
// (largest) of each since the area-product requirement must hold for
// every operating condition the magnetic is specified against.
func primaryPeakAndRMSCurrent(ops []model.OperatingPoint) (peak, rms float64, err error) {
	found := false
	for _, op := range ops {
		if len(op.Excitations) == 0 {
			continue
		}
		exc := op.Excitations[0]
		sig := exc.Current
		if sig == nil {
			sig = exc.MagnetizingCurrent
		}
		if sig == nil || sig.Processed == nil {
			continue
		}
		found = true
		if sig.Processed.Peak > peak {
			peak = sig.Processed.Peak
		}
		if sig.Processed.RMS > rms {
			rms = sig.Processed.RMS
		}
	}
	if !found {
		return 0, 0, fmt.Errorf("no processed primary current excitation: %w", merr.InvalidInput)
	}
	return peak, rms, nil
}
