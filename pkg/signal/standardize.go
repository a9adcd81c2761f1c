// Package signal implements three-way conversion between a
// waveform, its harmonic spectrum and its scalar "processed" descriptor,
// the way a transient analysis turns a raw simulation trace into the
// summary statistics its reports print, but generalized to a closed set of
// analytically synthesisable waveform shapes.
package signal

import (
	"fmt"
	"math"

	"github.com/openmagnetics-go/mkf/internal/constants"
	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
)

// Standardize fills sig.Waveform from sig.Processed when the waveform is
// not yet present (or force is true), synthesising one period at frequency
// f according to Processed.Label.
func Standardize(sig *model.SignalDescriptor, f float64, force bool) error {
	if sig == nil {
		return fmt.Errorf("signal: Standardize requires a non-nil descriptor")
	}
	if sig.Waveform != nil && !force {
		return nil
	}
	if sig.Processed == nil {
		return fmt.Errorf("signal: Standardize: %w", merr.InvalidInput)
	}
	if f <= 0 {
		return fmt.Errorf("signal: Standardize: frequency must be positive: %w", merr.InvalidInput)
	}

	p := sig.Processed
	period := 1 / f
	offset := p.Offset
	peakToPeak := p.PeakToPeak
	duty := 0.5
	if p.DutyCycle != nil {
		duty = *p.DutyCycle
	}

	var w model.Waveform
	switch p.Label {
	case model.LabelSinusoidal:
		w = sinusoidal(peakToPeak/2, offset, f)
	case model.LabelTriangular:
		w = triangular(peakToPeak, offset, duty, period)
	case model.LabelSquare:
		w = square(peakToPeak, offset, duty, period)
	case model.LabelSquareWithDeadTime:
		w = squareWithDeadTime(peakToPeak, offset, duty, period)
	default:
		return fmt.Errorf("signal: Standardize: label %v has no samples to pass through: %w", p.Label, merr.InvalidInput)
	}

	sig.Waveform = &w
	return nil
}

func sinusoidal(amplitude, offset, f float64) model.Waveform {
	const n = constants.NumberPointsSampleWaveforms
	period := 1 / f
	times := make([]float64, n)
	data := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n) * period
		times[i] = t
		data[i] = amplitude*math.Sin(2*math.Pi*t*f) + offset
	}
	return model.Waveform{Time: times, Data: data}
}

func triangular(peakToPeak, offset, duty, period float64) model.Waveform {
	half := peakToPeak / 2
	return model.Waveform{
		Time: []float64{0, duty * period, period},
		Data: []float64{-half + offset, half + offset, -half + offset},
	}
}

func square(peakToPeak, offset, duty, period float64) model.Waveform {
	high := peakToPeak * (1 - duty)
	low := -peakToPeak * duty
	t := duty * period
	return model.Waveform{
		Time: []float64{0, t, t, period},
		Data: []float64{high + offset, high + offset, low + offset, low + offset},
	}
}

func squareWithDeadTime(peakToPeak, offset, duty, period float64) model.Waveform {
	half := peakToPeak / 2
	halfWidth := duty * period / 2

	t1 := 0.25*period - halfWidth
	t2 := 0.25*period + halfWidth
	t3 := 0.75*period - halfWidth
	t4 := 0.75*period + halfWidth

	return model.Waveform{
		Time: []float64{0, t1, t1, t2, t2, t3, t3, t4, t4, period},
		Data: []float64{
			offset, offset, half + offset, half + offset, offset,
			offset, -half + offset, -half + offset, offset, offset,
		},
	}
}
