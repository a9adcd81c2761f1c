package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompleteEllipticKAtZeroModulusIsHalfPi(t *testing.T) {
	assert.InDelta(t, 1.5707963267948966, CompleteEllipticK(0), 1e-9)
}

func TestCompleteEllipticEAtZeroModulusIsHalfPi(t *testing.T) {
	assert.InDelta(t, 1.5707963267948966, CompleteEllipticE(0), 1e-9)
}

func TestCompleteEllipticKIncreasesWithModulus(t *testing.T) {
	low := CompleteEllipticK(0.1)
	high := CompleteEllipticK(0.9)
	assert.Greater(t, high, low)
}

func TestCompleteEllipticEDecreasesWithModulus(t *testing.T) {
	low := CompleteEllipticE(0.1)
	high := CompleteEllipticE(0.9)
	assert.Less(t, high, low)
}

func TestCompleteEllipticKKnownValue(t *testing.T) {
	// K(0.5) = 1.6857503548125961
	assert.InDelta(t, 1.6857503548125961, CompleteEllipticK(0.5), 1e-6)
}

func TestCompleteEllipticEKnownValue(t *testing.T) {
	// E(0.5) = 1.4674622093394272
	assert.InDelta(t, 1.4674622093394272, CompleteEllipticE(0.5), 1e-6)
}
