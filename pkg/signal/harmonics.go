package signal

import (
	"fmt"
	"math"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/openmagnetics-go/mkf/pkg/numeric"
)

// Harmonics runs an FFT over sig.Waveform (already sampled to a power
// of two by Sample) and fills sig.Harmonics: amplitude[0] = |X[0]|/N,
// amplitude[k>=1] = 2|X[k]|/N, frequencies[k] = k*f, for k in [0, N/2].
func Harmonics(sig *model.SignalDescriptor, f float64, force bool) error {
	if sig == nil || sig.Waveform == nil {
		return fmt.Errorf("signal: Harmonics: %w", merr.InvalidInput)
	}
	if sig.Harmonics != nil && !force {
		return nil
	}
	if f <= 0 {
		return fmt.Errorf("signal: Harmonics: frequency must be positive: %w", merr.InvalidInput)
	}

	samples := sig.Waveform.Data
	n := len(samples)
	if n == 0 {
		return fmt.Errorf("signal: Harmonics: empty waveform: %w", merr.InvalidInput)
	}

	complexSamples := make([]complex128, n)
	for i, v := range samples {
		complexSamples[i] = complex(v, 0)
	}
	spectrum, err := numeric.DFT(complexSamples)
	if err != nil {
		return fmt.Errorf("signal: Harmonics: %w", err)
	}

	k := n / 2
	amplitudes := make([]float64, k+1)
	frequencies := make([]float64, k+1)
	for i := 0; i <= k; i++ {
		mag := math.Hypot(real(spectrum[i]), imag(spectrum[i])) / float64(n)
		if i > 0 {
			mag *= 2
		}
		amplitudes[i] = mag
		frequencies[i] = float64(i) * f
	}

	sig.Harmonics = &model.Harmonics{Amplitudes: amplitudes, Frequencies: frequencies}
	return nil
}
