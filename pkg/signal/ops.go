package signal

import (
	"fmt"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
)

// Derivate returns the cyclic adjacent-difference of w's samples: out[i] =
// data[i] - data[i-1], wrapping out[0] = data[0] - data[n-1]. The time axis, if present, is carried through unchanged.
func Derivate(w model.Waveform) (model.Waveform, error) {
	n := len(w.Data)
	if n == 0 {
		return model.Waveform{}, fmt.Errorf("signal: Derivate: %w", merr.InvalidInput)
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		prev := i - 1
		if prev < 0 {
			prev = n - 1
		}
		out[i] = w.Data[i] - w.Data[prev]
	}
	return model.Waveform{Time: w.Time, Data: out}, nil
}

// Integrate implements magnetizing-current synthesis:
// i[n] = Σ v[n]·Δt/L, DC-removed, then offset by dcCurrent. v is a
// one-period voltage waveform at frequency f, inductance in henries.
func Integrate(v model.Waveform, f, inductance, dcCurrent float64) (model.Waveform, error) {
	n := len(v.Data)
	if n == 0 {
		return model.Waveform{}, fmt.Errorf("signal: Integrate: %w", merr.InvalidInput)
	}
	if inductance <= 0 || f <= 0 {
		return model.Waveform{}, fmt.Errorf("signal: Integrate: frequency and inductance must be positive: %w", merr.InvalidInput)
	}

	dt := 1 / f / float64(n)
	out := make([]float64, n)
	var running, sum float64
	for i, sample := range v.Data {
		running += sample * dt / inductance
		out[i] = running
		sum += running
	}
	mean := sum / float64(n)
	for i := range out {
		out[i] = out[i] - mean + dcCurrent
	}
	return model.Waveform{Time: v.Time, Data: out}, nil
}

// Reflect multiplies every sample of w by ratio: N1/N2 for currents,
// N2/N1 for voltages.
func Reflect(w model.Waveform, ratio float64) model.Waveform {
	out := make([]float64, len(w.Data))
	for i, v := range w.Data {
		out[i] = v * ratio
	}
	return model.Waveform{Time: w.Time, Data: out}
}

// AddOffset shifts excitation's waveform samples by delta and recomputes
// harmonics and processed at frequency f, leaving the frequency-domain
// fields consistent with the shifted waveform.
func AddOffset(excitation *model.SignalDescriptor, delta, f float64) error {
	if excitation == nil || excitation.Waveform == nil {
		return fmt.Errorf("signal: AddOffset: %w", merr.InvalidInput)
	}
	shifted := make([]float64, len(excitation.Waveform.Data))
	for i, v := range excitation.Waveform.Data {
		shifted[i] = v + delta
	}
	excitation.Waveform = &model.Waveform{Time: excitation.Waveform.Time, Data: shifted}
	excitation.Harmonics = nil
	excitation.Processed = nil

	if err := Harmonics(excitation, f, true); err != nil {
		return err
	}
	return Processed(excitation, true)
}
