package coreloss

import (
	"fmt"
	"math"

	"github.com/openmagnetics-go/mkf/internal/constants"
	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/openmagnetics-go/mkf/pkg/numeric"
)

// lossFactorLosses implements the loss-tangent model
// P_v = (tan(delta)/mu_i) * omega * B^2/mu0.
func lossFactorLosses(material model.CoreMaterial, excitation model.OperatingPointExcitation) (float64, error) {
	var tangentModifier *model.PermeabilityModifier
	for _, d := range material.VolumetricLosses {
		if d.Method == model.MethodLossFactor && d.LossTangent != nil {
			tangentModifier = d.LossTangent
			break
		}
	}
	if tangentModifier == nil {
		return 0, fmt.Errorf("coreloss: material %q has no loss-tangent data: %w", material.Name, merr.InvalidInput)
	}

	b, f, err := peakFluxDensity(excitation)
	if err != nil {
		return 0, err
	}
	if material.Permeability.Value <= 0 {
		return 0, fmt.Errorf("coreloss: material %q has no initial permeability: %w", material.Name, merr.InvalidInput)
	}

	tanDelta, err := evaluateModifierAt(*tangentModifier, f)
	if err != nil {
		return 0, err
	}

	omega := 2 * math.Pi * f
	return (tanDelta / material.Permeability.Value) * omega * b * b / constants.VacuumPermeability, nil
}

// evaluateModifierAt mirrors the permeability package's polynomial/table
// dispatch over the single loss-tangent modifier this model needs.
func evaluateModifierAt(m model.PermeabilityModifier, x float64) (float64, error) {
	if m.Method == model.ModifierTabulated {
		return numeric.LinearInterpolate(m.TableX, m.TableY, x)
	}
	var value, power float64 = 0, 1
	for _, coeff := range m.Polynomial {
		value += coeff * power
		power *= x
	}
	return value, nil
}
