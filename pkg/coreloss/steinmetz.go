package coreloss

import (
	"fmt"
	"math"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
)

// fluxDensityComponents returns the harmonic amplitude/frequency pairs the
// excitation's magnetizing-current descriptor carries as a proxy for B(t)
// (callers of this package supply B already converted to flux density
// units in MagnetizingCurrent, the same field the inductance solver's
// InductanceAndFluxDensity populates). Falls back to a single sinusoidal
// component built from Processed when no harmonic breakdown is present.
func fluxDensityComponents(excitation model.OperatingPointExcitation) ([]float64, []float64, error) {
	sig := excitation.MagnetizingCurrent
	if sig == nil {
		return nil, nil, fmt.Errorf("coreloss: excitation carries no flux-density descriptor: %w", merr.InvalidInput)
	}
	if sig.Harmonics != nil {
		return sig.Harmonics.Amplitudes, sig.Harmonics.Frequencies, nil
	}
	if sig.Processed != nil {
		return []float64{sig.Processed.Peak}, []float64{excitation.Frequency}, nil
	}
	return nil, nil, fmt.Errorf("coreloss: excitation has neither harmonics nor processed flux density: %w", merr.InvalidInput)
}

// peakFluxDensity returns the fundamental's peak amplitude and the
// fundamental frequency, the two values every algebraic Steinmetz variant
// needs when it is not doing full multi-harmonic superposition.
func peakFluxDensity(excitation model.OperatingPointExcitation) (float64, float64, error) {
	amps, freqs, err := fluxDensityComponents(excitation)
	if err != nil {
		return 0, 0, err
	}
	if len(amps) == 0 {
		return 0, 0, fmt.Errorf("coreloss: no flux-density components: %w", merr.InvalidInput)
	}
	idx := 0
	if len(amps) > 1 {
		idx = 1 // amps[0] is DC
	}
	return amps[idx], freqs[idx], nil
}

// rangeFor picks the frequency-segmented Steinmetz triple whose range
// contains f, falling back to the last declared range.
func rangeFor(ranges []model.SteinmetzRange, f float64) (model.SteinmetzRange, error) {
	if len(ranges) == 0 {
		return model.SteinmetzRange{}, fmt.Errorf("coreloss: no Steinmetz ranges declared: %w", merr.InvalidInput)
	}
	for _, r := range ranges {
		if f >= r.MinimumFrequency && f <= r.MaximumFrequency {
			return r, nil
		}
	}
	return ranges[len(ranges)-1], nil
}

// temperatureFactor evaluates tau(T) = c0 - c1*T + c2*T^2 when the range
// declares temperature coefficients, else 1.
func temperatureFactor(r model.SteinmetzRange, temperature float64) float64 {
	if r.CT0 == nil {
		return 1
	}
	tau := *r.CT0
	if r.CT1 != nil {
		tau -= *r.CT1 * temperature
	}
	if r.CT2 != nil {
		tau += *r.CT2 * temperature * temperature
	}
	return tau
}

// steinmetzLosses implements P_v = k * f^alpha * B^beta * tau(T), applied
// per harmonic and linearly superposed.
func steinmetzLosses(ranges []model.SteinmetzRange, excitation model.OperatingPointExcitation, temperature float64) (float64, error) {
	amps, freqs, err := fluxDensityComponents(excitation)
	if err != nil {
		return 0, err
	}
	var total float64
	for i, b := range amps {
		f := freqs[i]
		if f <= 0 || b <= 0 {
			continue
		}
		r, err := rangeFor(ranges, f)
		if err != nil {
			return 0, err
		}
		tau := temperatureFactor(r, temperature)
		total += r.K * math.Pow(f, r.Alpha) * math.Pow(b, r.Beta) * tau
	}
	return total, nil
}

// albachLosses applies Albach's equivalent-frequency correction: each
// harmonic's contribution is weighted by (f_k/f_1) relative to the
// fundamental before the Steinmetz evaluation, approximating the
// waveform-shape sensitivity the plain superposition above ignores.
func albachLosses(ranges []model.SteinmetzRange, excitation model.OperatingPointExcitation, temperature float64) (float64, error) {
	amps, freqs, err := fluxDensityComponents(excitation)
	if err != nil {
		return 0, err
	}
	if len(freqs) < 2 || freqs[1] <= 0 {
		return steinmetzLosses(ranges, excitation, temperature)
	}
	fundamental := freqs[1]

	var total float64
	for i := 1; i < len(amps); i++ {
		f, b := freqs[i], amps[i]
		if f <= 0 || b <= 0 {
			continue
		}
		r, err := rangeFor(ranges, f)
		if err != nil {
			return 0, err
		}
		tau := temperatureFactor(r, temperature)
		weight := f / fundamental
		total += weight * r.K * math.Pow(f, r.Alpha) * math.Pow(b, r.Beta) * tau
	}
	return total, nil
}

// nseLosses is the "natural" Steinmetz-equivalent variant: evaluates at
// the RMS-equivalent frequency derived from the harmonic spectrum instead
// of summing per harmonic.
func nseLosses(ranges []model.SteinmetzRange, excitation model.OperatingPointExcitation, temperature float64) (float64, error) {
	amps, freqs, err := fluxDensityComponents(excitation)
	if err != nil {
		return 0, err
	}
	var numerator, denominator, bRMS float64
	for i := 1; i < len(amps); i++ {
		numerator += amps[i] * amps[i] * freqs[i] * freqs[i]
		denominator += amps[i] * amps[i]
		bRMS += amps[i] * amps[i]
	}
	if denominator == 0 {
		return 0, fmt.Errorf("coreloss: NSE: no AC flux-density components: %w", merr.InvalidInput)
	}
	fEff := math.Sqrt(numerator / denominator)
	bPeak, _, err := peakFluxDensity(excitation)
	if err != nil {
		return 0, err
	}
	r, err := rangeFor(ranges, fEff)
	if err != nil {
		return 0, err
	}
	tau := temperatureFactor(r, temperature)
	return r.K * math.Pow(fEff, r.Alpha) * math.Pow(bPeak, r.Beta) * tau, nil
}

// mseLosses is the "modified" Steinmetz-equivalent variant: the NSE result
// multiplied by (1 + THD) of the magnetizing signal's processed
// descriptor, a stand-in for the waveform's peak-to-average derivative
// ratio. Without a positive THD it returns the NSE result unchanged.
func mseLosses(ranges []model.SteinmetzRange, excitation model.OperatingPointExcitation, temperature float64) (float64, error) {
	base, err := nseLosses(ranges, excitation, temperature)
	if err != nil {
		return 0, err
	}
	sig := excitation.MagnetizingCurrent
	if sig != nil && sig.Processed != nil && sig.Processed.THD > 0 {
		return base * (1 + sig.Processed.THD), nil
	}
	return base, nil
}
