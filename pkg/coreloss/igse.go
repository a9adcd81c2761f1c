package coreloss

import (
	"fmt"
	"math"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/openmagnetics-go/mkf/pkg/signal"
)

// kiFromSteinmetz derives k_i from a Steinmetz {k, alpha, beta} triple by
// the published integral identity
// k_i = k / (2^(beta-1) * pi^(alpha-1) * integral_0^2pi |cos(theta)|^alpha d(theta)),
// with the integral evaluated numerically by a left-rectangle sum over
// 2000 equal steps rather than through a gamma-function closed form.
func kiFromSteinmetz(r model.SteinmetzRange) float64 {
	const steps = 2000
	h := 2 * math.Pi / steps
	var integral float64
	for i := 0; i < steps; i++ {
		theta := float64(i) * h
		integral += math.Pow(math.Abs(math.Cos(theta)), r.Alpha) * h
	}
	denom := math.Pow(2, r.Beta-1) * math.Pow(math.Pi, r.Alpha-1) * integral
	if denom == 0 {
		return 0
	}
	return r.K / denom
}

// waveformFromExcitation requires the caller to have run the inputs/signal
// pipeline so MagnetizingCurrent.Waveform is a sampled one-period flux
// density trace, the form iGSE/GSE/Barg integrate directly rather than
// working from the harmonic breakdown the algebraic models use.
func waveformFromExcitation(excitation model.OperatingPointExcitation) (model.Waveform, float64, error) {
	sig := excitation.MagnetizingCurrent
	if sig == nil || sig.Waveform == nil {
		return model.Waveform{}, 0, fmt.Errorf("coreloss: excitation carries no sampled flux-density waveform: %w", merr.InvalidInput)
	}
	if excitation.Frequency <= 0 {
		return model.Waveform{}, 0, fmt.Errorf("coreloss: excitation frequency must be positive: %w", merr.InvalidInput)
	}
	return *sig.Waveform, excitation.Frequency, nil
}

// igseLosses integrates k_i * |dB/dt|^alpha * (deltaB)^(beta-alpha) over
// one period.
func igseLosses(ranges []model.SteinmetzRange, excitation model.OperatingPointExcitation, temperature float64) (float64, error) {
	w, f, err := waveformFromExcitation(excitation)
	if err != nil {
		return steinmetzLosses(ranges, excitation, temperature)
	}

	_, fundamentalFreq, err := peakFluxDensity(excitation)
	if err != nil {
		fundamentalFreq = f
	}
	r, err := rangeFor(ranges, fundamentalFreq)
	if err != nil {
		return 0, err
	}
	ki := kiFromSteinmetz(r)
	tau := temperatureFactor(r, temperature)

	deriv, err := signal.Derivate(w)
	if err != nil {
		return 0, err
	}
	n := len(w.Data)
	dt := 1 / f / float64(n)

	var peak, trough float64
	peak, trough = w.Data[0], w.Data[0]
	for _, v := range w.Data {
		if v > peak {
			peak = v
		}
		if v < trough {
			trough = v
		}
	}
	deltaB := peak - trough

	var integral float64
	for _, d := range deriv.Data {
		rate := math.Abs(d / dt)
		integral += math.Pow(rate, r.Alpha) * dt
	}
	period := 1 / f
	avgPerCycle := integral / period

	return ki * avgPerCycle * math.Pow(deltaB, r.Beta-r.Alpha) * tau * period * f, nil
}

// gseLosses integrates |dB/dt| * B^(beta-alpha) instead of the iGSE
// combination, retained for comparison .
func gseLosses(ranges []model.SteinmetzRange, excitation model.OperatingPointExcitation, temperature float64) (float64, error) {
	w, f, err := waveformFromExcitation(excitation)
	if err != nil {
		return steinmetzLosses(ranges, excitation, temperature)
	}
	_, fundamentalFreq, err := peakFluxDensity(excitation)
	if err != nil {
		fundamentalFreq = f
	}
	r, err := rangeFor(ranges, fundamentalFreq)
	if err != nil {
		return 0, err
	}
	ki := kiFromSteinmetz(r)
	tau := temperatureFactor(r, temperature)

	deriv, err := signal.Derivate(w)
	if err != nil {
		return 0, err
	}
	n := len(w.Data)
	dt := 1 / f / float64(n)

	var total float64
	for i, d := range deriv.Data {
		rate := math.Abs(d / dt)
		total += rate * math.Pow(math.Abs(w.Data[i]), r.Beta-r.Alpha) * dt
	}
	return ki * total * f * tau, nil
}

// bargLosses is the trapezoidal-waveform variant of iGSE with separate
// transition and dwell contributions: the transition edges (where |dB/dt|
// exceeds half the waveform's peak slew rate) are integrated with the
// iGSE kernel, the dwell segments contribute nothing (dB/dt ~ 0 there).
func bargLosses(ranges []model.SteinmetzRange, excitation model.OperatingPointExcitation, temperature float64) (float64, error) {
	w, f, err := waveformFromExcitation(excitation)
	if err != nil {
		return steinmetzLosses(ranges, excitation, temperature)
	}
	_, fundamentalFreq, err := peakFluxDensity(excitation)
	if err != nil {
		fundamentalFreq = f
	}
	r, err := rangeFor(ranges, fundamentalFreq)
	if err != nil {
		return 0, err
	}
	ki := kiFromSteinmetz(r)
	tau := temperatureFactor(r, temperature)

	deriv, err := signal.Derivate(w)
	if err != nil {
		return 0, err
	}
	n := len(w.Data)
	dt := 1 / f / float64(n)

	var peakSlew float64
	for _, d := range deriv.Data {
		rate := math.Abs(d / dt)
		if rate > peakSlew {
			peakSlew = rate
		}
	}
	threshold := peakSlew / 2

	var peak, trough float64
	peak, trough = w.Data[0], w.Data[0]
	for _, v := range w.Data {
		if v > peak {
			peak = v
		}
		if v < trough {
			trough = v
		}
	}
	deltaB := peak - trough

	var transitionIntegral float64
	for _, d := range deriv.Data {
		rate := math.Abs(d / dt)
		if rate >= threshold {
			transitionIntegral += math.Pow(rate, r.Alpha) * dt
		}
	}

	return ki * transitionIntegral * math.Pow(deltaB, r.Beta-r.Alpha) * tau * f, nil
}
