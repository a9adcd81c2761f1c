package numeric

import (
	"fmt"
	"math"
	"math/cmplx"
)

// DFT runs an in-place Cooley-Tukey decimation-in-frequency FFT over a
// power-of-two length complex sequence: a single dense numeric kernel with
// no hidden state, called fresh per invocation.
func DFT(samples []complex128) ([]complex128, error) {
	n := len(samples)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("numeric: DFT requires a power-of-two length, got %d", n)
	}

	out := make([]complex128, n)
	copy(out, samples)
	decimationInFrequency(out)
	bitReverse(out)
	return out, nil
}

// decimationInFrequency performs the butterfly stage of a DIF FFT.
func decimationInFrequency(a []complex128) {
	n := len(a)
	for size := n; size > 1; size /= 2 {
		half := size / 2
		angle := -2 * math.Pi / float64(size)
		for start := 0; start < n; start += size {
			w := complex(1, 0)
			step := cmplx.Exp(complex(0, angle))
			for k := 0; k < half; k++ {
				i, j := start+k, start+k+half
				t := a[i] - a[j]
				a[i] = a[i] + a[j]
				a[j] = t * w
				w *= step
			}
		}
	}
}

func bitReverse(a []complex128) {
	n := len(a)
	bits := int(math.Log2(float64(n)))
	for i := 0; i < n; i++ {
		j := reverseBits(i, bits)
		if j > i {
			a[i], a[j] = a[j], a[i]
		}
	}
}

func reverseBits(x, bits int) int {
	r := 0
	for b := 0; b < bits; b++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}
	return r
}
