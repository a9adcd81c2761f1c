// Package tempcoef resolves how resistivity and winding temperature vary
// with operating temperature, the two small lookups the original tool kept
// in separate headers (Resistivity.h, Temperature.h) rather than folding
// into the winding-losses or core-losses models that consume them.
package tempcoef

import (
	"fmt"
	"sort"

	"github.com/openmagnetics-go/mkf/internal/constants"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/openmagnetics-go/mkf/pkg/numeric"
)

// Resistivity interpolates a material's {value, temperature} table at the
// requested temperature, clamping to the nearest endpoint outside the
// table's range, the same clamped-linear behaviour numeric.LinearInterpolate
// already gives the rest of the module for waveform resampling.
func Resistivity(points []model.ResistivityPoint, temperature float64) (float64, error) {
	if len(points) == 0 {
		return 0, fmt.Errorf("tempcoef: no resistivity points provided")
	}
	if len(points) == 1 {
		return points[0].Value, nil
	}

	sorted := append([]model.ResistivityPoint(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Temperature < sorted[j].Temperature })

	xs := make([]float64, len(sorted))
	ys := make([]float64, len(sorted))
	for i, p := range sorted {
		xs[i] = p.Temperature
		ys[i] = p.Value
	}
	return numeric.LinearInterpolate(xs, ys, temperature)
}

// ResistivityFactor is the ratio rho(T)/rho(T0) used by the winding-losses
// model to scale a wire's reference DC resistance to operating temperature
// without a second absolute resistivity lookup.
func ResistivityFactor(points []model.ResistivityPoint, temperature, referenceTemperature float64) (float64, error) {
	rhoT, err := Resistivity(points, temperature)
	if err != nil {
		return 0, err
	}
	rho0, err := Resistivity(points, referenceTemperature)
	if err != nil {
		return 0, err
	}
	if rho0 == 0 {
		return 0, fmt.Errorf("tempcoef: reference resistivity is zero at %g C", referenceTemperature)
	}
	return rhoT / rho0, nil
}

// CopperResistivityPoints is the default annealed-copper resistivity table
// used when a wire material carries none of its own, linear over the range
// power magnetics normally operate in.
var CopperResistivityPoints = []model.ResistivityPoint{
	{Value: 1.678e-8, Temperature: 20},
	{Value: 1.724e-8, Temperature: 25},
	{Value: 2.257e-8, Temperature: 100},
	{Value: 3.332e-8, Temperature: 200},
}

// FromThermalResistance implements the original tool's
// Temperature::calculate_temperature_from_core_thermal_resistance: a
// lumped-element temperature rise, ambient plus the product of thermal
// resistance and total dissipated losses.
func FromThermalResistance(thermalResistance, totalLosses float64) float64 {
	return constants.AmbientTemperatureNominal + thermalResistance*totalLosses
}
