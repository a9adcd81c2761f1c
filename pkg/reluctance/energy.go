package reluctance

import (
	"fmt"

	"github.com/openmagnetics-go/mkf/internal/constants"
	"github.com/openmagnetics-go/mkf/pkg/merr"
)

// StoredEnergy returns the classical inductor energy 0.5*L*I^2, the
// closed-form most callers want once L and the peak current are known.
func StoredEnergy(inductance, peakCurrent float64) float64 {
	return 0.5 * inductance * peakCurrent * peakCurrent
}

// GapMaximumStoredEnergy implements the original tool's
// get_gap_maximum_magnetic_energy: the energy a single gap can hold before
// the adjoining core material saturates, 0.5 * B_sat^2/mu0 * gapVolume,
// since essentially all stored energy in a gapped core sits in its gaps
// (original_source/src/MagneticEnergy.h).
func GapMaximumStoredEnergy(gapLength, gapArea, saturationFluxDensity float64) (float64, error) {
	if gapLength <= 0 || gapArea <= 0 {
		return 0, fmt.Errorf("reluctance: GapMaximumStoredEnergy: length and area must be positive: %w", merr.InvalidInput)
	}
	volume := gapLength * gapArea
	energy := 0.5 * saturationFluxDensity * saturationFluxDensity / constants.VacuumPermeability * volume
	return energy, nil
}

// CoreMaximumStoredEnergy is the ungapped-core analogue: energy density
// B_sat^2 / (2*mu0*mu_i) times the core's effective volume.
func CoreMaximumStoredEnergy(effectiveVolume, initialPermeability, saturationFluxDensity float64) (float64, error) {
	if effectiveVolume <= 0 || initialPermeability <= 0 {
		return 0, fmt.Errorf("reluctance: CoreMaximumStoredEnergy: volume and permeability must be positive: %w", merr.InvalidInput)
	}
	energy := saturationFluxDensity * saturationFluxDensity / (2 * constants.VacuumPermeability * initialPermeability) * effectiveVolume
	return energy, nil
}
