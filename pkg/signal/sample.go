package signal

import (
	"fmt"
	"math"

	"github.com/openmagnetics-go/mkf/internal/constants"
	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/openmagnetics-go/mkf/pkg/numeric"
)

// Sample resamples sig.Waveform to exactly constants.NumberPointsSampleWaveforms
// equidistant points covering one period 1/f, replacing sig.Waveform
// in-place.
func Sample(sig *model.SignalDescriptor, f float64, force bool) error {
	if sig == nil || sig.Waveform == nil {
		return fmt.Errorf("signal: Sample: %w", merr.InvalidInput)
	}
	if f <= 0 {
		return fmt.Errorf("signal: Sample: frequency must be positive: %w", merr.InvalidInput)
	}

	w := sig.Waveform
	const n = constants.NumberPointsSampleWaveforms
	if !force && w.Time == nil && len(w.Data) == n {
		return nil
	}

	period := 1 / f
	x, y, err := periodicSeries(*w, period)
	if err != nil {
		return err
	}

	data := make([]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n) * period
		v, err := numeric.LinearInterpolate(x, y, t)
		if err != nil {
			return fmt.Errorf("signal: Sample: %w", err)
		}
		data[i] = v
	}
	sig.Waveform = &model.Waveform{Data: data}
	return nil
}

// periodicSeries normalizes a waveform (equidistant or explicit-time) into
// strictly increasing (x, y) sample arrays spanning exactly [0, period],
// wrapping the first sample to the end so linear interpolation never
// extrapolates past the final segment.
func periodicSeries(w model.Waveform, period float64) ([]float64, []float64, error) {
	if len(w.Data) == 0 {
		return nil, nil, fmt.Errorf("signal: waveform has no samples: %w", merr.InvalidInput)
	}

	var x, y []float64
	if w.Time == nil {
		n := len(w.Data)
		x = make([]float64, n+1)
		y = make([]float64, n+1)
		for i := 0; i < n; i++ {
			x[i] = float64(i) / float64(n) * period
			y[i] = w.Data[i]
		}
		x[n] = period
		y[n] = w.Data[0]
		return x, y, nil
	}

	if len(w.Time) != len(w.Data) {
		return nil, nil, fmt.Errorf("signal: time/data length mismatch: %w", merr.InvalidInput)
	}
	n := len(w.Time)
	x = append([]float64(nil), w.Time...)
	y = append([]float64(nil), w.Data...)
	if math.Abs(x[n-1]-period) > 1e-12 {
		x = append(x, period)
		y = append(y, w.Data[0])
	}
	return x, y, nil
}
