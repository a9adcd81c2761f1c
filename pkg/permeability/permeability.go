// Package permeability implements the initial-permeability model: three
// independent multiplicative correction factors (temperature, DC bias,
// frequency) applied to a material's nominal initial permeability, each
// evaluated either from a Magnetics-style closed-form polynomial or from
// a tabulated interpolation, the same closed-form-or-tabulated choice a
// Jiles-Atherton core model makes for its B-H behaviour.
package permeability

import (
	"fmt"
	"math"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/openmagnetics-go/mkf/pkg/numeric"
)

// Kind names one of the three modifiers, used by HasDependency.
type Kind int

const (
	KindTemperature Kind = iota
	KindDCBias
	KindFrequency
)

// HasDependency reports whether material declares a modifier of the given
// kind at all, letting callers skip evaluating an irrelevant factor.
func HasDependency(material model.CoreMaterial, kind Kind) bool {
	switch kind {
	case KindTemperature:
		return material.Permeability.Temperature != nil
	case KindDCBias:
		return material.Permeability.DCBias != nil
	case KindFrequency:
		return material.Permeability.Frequency != nil
	default:
		return false
	}
}

// Conditions bundles the optional evaluation point; a nil pointer means
// "evaluate at the reference condition for that factor" (25C, H_dc=0,
// f=0) which always yields a factor of 1.
type Conditions struct {
	Temperature *float64
	DCBias      *float64
	Frequency   *float64
}

// Initial returns mu_i(material, T?, H_dc?, f?): the material's nominal
// initial permeability times the product of the temperature, DC-bias and
// frequency factors that apply.
func Initial(material model.CoreMaterial, cond Conditions) (float64, error) {
	mu := material.Permeability.Value
	if mu <= 0 {
		return 0, fmt.Errorf("permeability: material %q has no initial permeability: %w", material.Name, merr.InvalidInput)
	}

	if cond.Temperature != nil && HasDependency(material, KindTemperature) {
		f, err := evaluateTemperature(*material.Permeability.Temperature, *cond.Temperature)
		if err != nil {
			return 0, err
		}
		mu *= f
	}
	if cond.DCBias != nil && HasDependency(material, KindDCBias) {
		f, err := evaluateDCBias(*material.Permeability.DCBias, *cond.DCBias)
		if err != nil {
			return 0, err
		}
		mu *= f
	}
	if cond.Frequency != nil && HasDependency(material, KindFrequency) {
		f, err := evaluateFrequency(*material.Permeability.Frequency, *cond.Frequency)
		if err != nil {
			return 0, err
		}
		mu *= f
	}

	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return 0, fmt.Errorf("permeability: %w", merr.NaNResult)
	}
	return mu, nil
}

// evaluateTemperature applies the a+bT+cT^2+dT^3+eT^4 polynomial, or a
// tabulated interpolation, depending on the modifier's declared method.
func evaluateTemperature(m model.PermeabilityModifier, temperature float64) (float64, error) {
	return evaluatePolynomialOrTable(m, temperature)
}

// evaluateFrequency mirrors evaluateTemperature: same polynomial-or-table
// shape, different evaluation variable.
func evaluateFrequency(m model.PermeabilityModifier, frequency float64) (float64, error) {
	return evaluatePolynomialOrTable(m, frequency)
}

func evaluatePolynomialOrTable(m model.PermeabilityModifier, x float64) (float64, error) {
	if m.Method == model.ModifierTabulated {
		return numeric.LinearInterpolate(m.TableX, m.TableY, x)
	}
	if len(m.Polynomial) == 0 {
		return 0, fmt.Errorf("permeability: modifier has no polynomial coefficients: %w", merr.InvalidInput)
	}
	var value, power float64 = 0, 1
	for _, coeff := range m.Polynomial {
		value += coeff * power
		power *= x
	}
	return value, nil
}

// evaluateDCBias applies the Magnetics DC-bias form 1/(1+a*H_dc^c)^b, with
// the triple packed into Polynomial[0..2], or a tabulated interpolation.
func evaluateDCBias(m model.PermeabilityModifier, hDC float64) (float64, error) {
	if m.Method == model.ModifierTabulated {
		return numeric.LinearInterpolate(m.TableX, m.TableY, hDC)
	}
	if len(m.Polynomial) < 3 {
		return 0, fmt.Errorf("permeability: DC-bias modifier needs 3 coefficients: %w", merr.InvalidInput)
	}
	a, b, c := m.Polynomial[0], m.Polynomial[1], m.Polynomial[2]
	if hDC <= 0 {
		return 1, nil
	}
	denom := math.Pow(1+a*math.Pow(hDC, c), b)
	if denom == 0 || math.IsNaN(denom) {
		return 0, fmt.Errorf("permeability: %w", merr.NaNResult)
	}
	return 1 / denom, nil
}

// FrequencyForInitialPermeabilityDrop implements
// calculate_frequency_for_initial_permeability_drop: the smallest
// frequency at which mu_i(f)/mu_i(0) <= 1-p, found with the root
// finder over an initial bracket of [1 Hz, 10 MHz].
func FrequencyForInitialPermeabilityDrop(material model.CoreMaterial, p float64) (float64, error) {
	if !HasDependency(material, KindFrequency) {
		return 0, fmt.Errorf("permeability: material %q has no frequency dependency: %w", material.Name, merr.InvalidInput)
	}
	if p <= 0 || p >= 1 {
		return 0, fmt.Errorf("permeability: drop fraction must be in (0,1): %w", merr.InvalidInput)
	}

	zero := 0.0
	muAtZero, err := evaluateFrequency(*material.Permeability.Frequency, zero)
	if err != nil {
		return 0, err
	}
	if muAtZero == 0 {
		return 0, fmt.Errorf("permeability: %w", merr.NaNResult)
	}
	target := 1 - p

	f := func(freq float64) float64 {
		muAtF, err := evaluateFrequency(*material.Permeability.Frequency, freq)
		if err != nil {
			return math.NaN()
		}
		return muAtF/muAtZero - target
	}

	root, err := numeric.FindRoot(f, 1.0, 1e7, 1e-3)
	if err != nil {
		return 0, fmt.Errorf("permeability: frequency for drop %g: %w", p, err)
	}
	return root, nil
}
