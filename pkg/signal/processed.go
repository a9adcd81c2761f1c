package signal

import (
	"fmt"
	"math"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
)

// Processed fills sig.Processed from sig.Waveform (offset, peak,
// peak-to-peak, rms) and sig.Harmonics (effective frequency, AC-effective
// frequency, THD), preserving an already-present duty cycle. Both waveform and harmonics must already be populated.
func Processed(sig *model.SignalDescriptor, force bool) error {
	if sig == nil || sig.Waveform == nil || sig.Harmonics == nil {
		return fmt.Errorf("signal: Processed: %w", merr.InvalidInput)
	}
	if sig.Processed != nil && !force {
		return nil
	}

	samples := sig.Waveform.Data
	if len(samples) == 0 {
		return fmt.Errorf("signal: Processed: empty waveform: %w", merr.InvalidInput)
	}

	var sum, sumSquares, peak, min float64
	peak, min = samples[0], samples[0]
	for _, v := range samples {
		sum += v
		sumSquares += v * v
		if v > peak {
			peak = v
		}
		if v < min {
			min = v
		}
	}
	n := float64(len(samples))
	offset := sum / n
	rms := math.Sqrt(sumSquares / n)

	amps := sig.Harmonics.Amplitudes
	freqs := sig.Harmonics.Frequencies

	var numerator, denominator, acNumerator, acDenominator float64
	for i, a := range amps {
		numerator += a * a * freqs[i] * freqs[i]
		denominator += a * a
		if i == 0 {
			continue
		}
		acNumerator += a * a * freqs[i] * freqs[i]
		acDenominator += a * a
	}

	effFreq := 0.0
	if denominator > 0 {
		effFreq = math.Sqrt(numerator / denominator)
	}
	acEffFreq := 0.0
	if acDenominator > 0 {
		acEffFreq = math.Sqrt(acNumerator / acDenominator)
	}

	thd := 0.0
	if len(amps) > 1 && amps[1] > 0 {
		var harmonicSumSquares float64
		for i := 2; i < len(amps); i++ {
			harmonicSumSquares += amps[i] * amps[i]
		}
		thd = math.Sqrt(harmonicSumSquares) / amps[1]
	}

	var duty *float64
	var label model.WaveformLabel
	if sig.Processed != nil {
		duty = sig.Processed.DutyCycle
		label = sig.Processed.Label
	}

	sig.Processed = &model.Processed{
		Label:                label,
		Offset:               offset,
		Peak:                 peak,
		PeakToPeak:           peak - min,
		RMS:                  rms,
		THD:                  thd,
		EffectiveFrequency:   effFreq,
		ACEffectiveFrequency: acEffFreq,
		DutyCycle:            duty,
	}
	return nil
}
