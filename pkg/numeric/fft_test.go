package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDFTRejectsNonPowerOfTwoLength(t *testing.T) {
	_, err := DFT(make([]complex128, 5))
	assert.Error(t, err)
}

func TestDFTRejectsEmptyInput(t *testing.T) {
	_, err := DFT(nil)
	assert.Error(t, err)
}

func TestDFTOfConstantSignalIsAllEnergyAtDC(t *testing.T) {
	samples := make([]complex128, 8)
	for i := range samples {
		samples[i] = complex(1, 0)
	}
	out, err := DFT(samples)
	require.NoError(t, err)

	assert.InDelta(t, 8, real(out[0]), 1e-9)
	for _, bin := range out[1:] {
		assert.InDelta(t, 0, cmplxAbs(bin), 1e-9)
	}
}

func TestDFTOfSingleToneBinMatchesFrequency(t *testing.T) {
	const n = 16
	const k = 3
	samples := make([]complex128, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * k * float64(i) / n
		samples[i] = complex(math.Cos(angle), math.Sin(angle))
	}
	out, err := DFT(samples)
	require.NoError(t, err)

	assert.InDelta(t, n, cmplxAbs(out[k]), 1e-9)
	for i, bin := range out {
		if i == k {
			continue
		}
		assert.InDeltaf(t, 0, cmplxAbs(bin), 1e-6, "bin %d leaked energy", i)
	}
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
