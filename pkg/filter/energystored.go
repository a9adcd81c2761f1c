package filter

import (
	"fmt"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/openmagnetics-go/mkf/pkg/permeability"
	"github.com/openmagnetics-go/mkf/pkg/reluctance"
)

// EnergyStoredFilter implements EnergyStored filter: the
// core's maximum storable magnetic energy (ungapped volume plus every
// declared gap) against the 1/2*L*I_peak^2 the requirement demands.
type EnergyStoredFilter struct{}

func (EnergyStoredFilter) Name() Name { return EnergyStored }

func (EnergyStoredFilter) Evaluate(candidate model.Magnetic, ctx Context) (Result, error) {
	core := candidate.Core
	if core.Processed == nil {
		return Result{}, fmt.Errorf("filter: EnergyStored: %w", merr.NotProcessed)
	}
	if len(core.Material.Saturation) == 0 {
		return Result{}, fmt.Errorf("filter: EnergyStored: material %q declares no saturation point: %w", core.Material.Name, merr.InvalidInput)
	}
	bSat := core.Material.Saturation[0].MagneticFluxDensity

	mu, err := permeability.Initial(core.Material, permeability.Conditions{})
	if err != nil {
		return Result{}, err
	}
	achieved, err := reluctance.CoreMaximumStoredEnergy(core.Processed.EffectiveVolume, mu, bSat)
	if err != nil {
		return Result{}, err
	}
	for _, gap := range core.Gapping {
		area := core.Processed.EffectiveArea
		if gap.Area != nil {
			area = *gap.Area
		}
		length := gap.Length
		if length <= 0 {
			continue
		}
		gapEnergy, err := reluctance.GapMaximumStoredEnergy(length, area, bSat)
		if err != nil {
			return Result{}, err
		}
		achieved += gapEnergy
	}

	inductance, err := model.GetRequirementValue(ctx.Requirement.MagnetizingInductance, model.DimensionalNominal)
	if err != nil {
		return Result{}, fmt.Errorf("filter: EnergyStored: %w", err)
	}
	peak, _, err := primaryPeakAndRMSCurrent(ctx.OperatingPoints)
	if err != nil {
		return Result{}, fmt.Errorf("filter: EnergyStored: %w", err)
	}
	required := reluctance.StoredEnergy(inductance, peak)

	if achieved <= 0 {
		return Result{Valid: false}, nil
	}
	return Result{
		Valid: achieved >= required,
		Score: required / achieved,
	}, nil
}
