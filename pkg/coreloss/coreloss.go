// Package coreloss implements the core-losses model family: a uniform
// {core_losses, volumetric_losses, frequency_from_losses,
// magnetic_flux_density_from_losses} interface behind ten interchangeable
// algorithms, selected by a material's declared or preferred method. This
// mirrors a dispatch over several interchangeable inductor core models
// (linear, Jiles-Atherton) behind one interface, generalized here to
// loss-density rather than B-H behaviour.
package coreloss

import (
	"fmt"
	"math"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/openmagnetics-go/mkf/pkg/numeric"
)

// Origin distinguishes a volumetric-loss result computed per unit volume
// from one carried as mass losses (Magnetec-style tape cores).
type Origin int

const (
	OriginVolumetric Origin = iota
	OriginMass
)

// Result is core_losses' output: total losses, the method actually used,
// and whether it came from a volumetric or mass-loss data source.
type Result struct {
	Losses     float64
	MethodUsed model.CoreLossesMethod
	Origin     Origin
}

// selectData picks the VolumetricLossesData to use: the material's
// PreferredModel if present and available, else the first declared
// method, preferring VolumetricLosses data over MassLosses.
func selectData(material model.CoreMaterial) (model.VolumetricLossesData, Origin, error) {
	pick := func(list []model.VolumetricLossesData) (model.VolumetricLossesData, bool) {
		if material.PreferredModel != nil {
			for _, d := range list {
				if d.Method == *material.PreferredModel {
					return d, true
				}
			}
		}
		if len(list) > 0 {
			return list[0], true
		}
		return model.VolumetricLossesData{}, false
	}

	if d, ok := pick(material.VolumetricLosses); ok {
		return d, OriginVolumetric, nil
	}
	if d, ok := pick(material.MassLosses); ok {
		return d, OriginMass, nil
	}
	return model.VolumetricLossesData{}, OriginVolumetric, fmt.Errorf("coreloss: material %q declares no loss data: %w", material.Name, merr.InvalidInput)
}

// VolumetricLosses returns the power density (W/m^3, or W/kg when Origin
// is OriginMass) a material dissipates under the given excitation and
// temperature, dispatching to the method's implementation.
func VolumetricLosses(material model.CoreMaterial, excitation model.OperatingPointExcitation, temperature float64) (float64, model.CoreLossesMethod, Origin, error) {
	data, origin, err := selectData(material)
	if err != nil {
		return 0, "", origin, err
	}

	var losses float64
	switch data.Method {
	case model.MethodSteinmetz:
		losses, err = steinmetzLosses(data.SteinmetzRanges, excitation, temperature)
	case model.MethodAlbach:
		losses, err = albachLosses(data.SteinmetzRanges, excitation, temperature)
	case model.MethodNSE:
		losses, err = nseLosses(data.SteinmetzRanges, excitation, temperature)
	case model.MethodMSE:
		losses, err = mseLosses(data.SteinmetzRanges, excitation, temperature)
	case model.MethodIGSE:
		losses, err = igseLosses(data.SteinmetzRanges, excitation, temperature)
	case model.MethodGSE:
		losses, err = gseLosses(data.SteinmetzRanges, excitation, temperature)
	case model.MethodBarg:
		losses, err = bargLosses(data.SteinmetzRanges, excitation, temperature)
	case model.MethodRoshen:
		losses, err = roshenLosses(data.Roshen, material.Resistivity, excitation, temperature)
	case model.MethodLossFactor:
		losses, err = lossFactorLosses(material, excitation)
	case model.MethodProprietary:
		losses, err = proprietaryLosses(data.ProprietaryFormula, excitation, temperature)
	default:
		return 0, data.Method, origin, fmt.Errorf("coreloss: unknown method %q: %w", data.Method, merr.InvalidInput)
	}
	if err != nil {
		return 0, data.Method, origin, err
	}
	if math.IsNaN(losses) || math.IsInf(losses, 0) {
		return 0, data.Method, origin, fmt.Errorf("coreloss: %w", merr.NaNResult)
	}
	return losses, data.Method, origin, nil
}

// CoreLosses scales a material's volumetric (or mass) losses by the core's
// effective volume (or mass) to obtain total dissipated power.
func CoreLosses(core model.Core, excitation model.OperatingPointExcitation, temperature float64) (Result, error) {
	if core.Processed == nil {
		return Result{}, fmt.Errorf("coreloss: CoreLosses: %w", merr.NotProcessed)
	}
	density, method, origin, err := VolumetricLosses(core.Material, excitation, temperature)
	if err != nil {
		return Result{}, err
	}

	var total float64
	switch origin {
	case OriginMass:
		total = density * core.Processed.Mass
	default:
		total = density * core.Processed.EffectiveVolume
	}
	return Result{Losses: total, MethodUsed: method, Origin: origin}, nil
}

// FrequencyFromLosses inverts volumetric_losses for frequency, holding B
// and T fixed, root finder over the model's forward function.
func FrequencyFromLosses(core model.Core, peakFluxDensity, temperature, targetLosses float64) (float64, error) {
	forward := func(f float64) float64 {
		d, _, _, err := VolumetricLosses(core.Material, sinusoidalExcitation(f, peakFluxDensity), temperature)
		if err != nil {
			return math.NaN()
		}
		scaled := d * volumeOrMass(core)
		return scaled - targetLosses
	}
	return numeric.FindRoot(forward, 1e3, 1e7, targetLosses*1e-4)
}

// MagneticFluxDensityFromLosses inverts volumetric_losses for peak flux
// density, holding f and T fixed.
func MagneticFluxDensityFromLosses(core model.Core, frequency, temperature, targetLosses float64) (float64, error) {
	forward := func(b float64) float64 {
		d, _, _, err := VolumetricLosses(core.Material, sinusoidalExcitation(frequency, b), temperature)
		if err != nil {
			return math.NaN()
		}
		scaled := d * volumeOrMass(core)
		return scaled - targetLosses
	}
	return numeric.FindRoot(forward, 1e-4, 2.0, targetLosses*1e-4)
}

func volumeOrMass(core model.Core) float64 {
	if core.Processed == nil {
		return 0
	}
	// selectData falls back to mass-loss data (W/kg) only when the material
	// declares no volumetric data.
	if len(core.Material.VolumetricLosses) == 0 && len(core.Material.MassLosses) > 0 {
		return core.Processed.Mass
	}
	return core.Processed.EffectiveVolume
}

// sinusoidalExcitation builds a minimal OperatingPointExcitation carrying
// only a processed peak-to-peak magnetizing-current descriptor, the
// smallest input the forward models below need to evaluate at a trial
// (f, B).
func sinusoidalExcitation(frequency, peakFluxDensity float64) model.OperatingPointExcitation {
	pp := 2 * peakFluxDensity
	return model.OperatingPointExcitation{
		Frequency: frequency,
		MagnetizingCurrent: &model.SignalDescriptor{
			Processed: &model.Processed{
				Label:      model.LabelSinusoidal,
				Peak:       peakFluxDensity,
				PeakToPeak: pp,
			},
		},
	}
}
