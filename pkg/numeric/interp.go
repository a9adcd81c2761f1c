package numeric

import "fmt"

// LinearInterpolate evaluates the piecewise-linear function through
// (x[i], y[i]) (x strictly increasing) at xq, clamping at the ends: it
// never extrapolates.
func LinearInterpolate(x, y []float64, xq float64) (float64, error) {
	if len(x) != len(y) || len(x) == 0 {
		return 0, fmt.Errorf("numeric: LinearInterpolate requires matching, non-empty x/y")
	}
	if len(x) == 1 {
		return y[0], nil
	}
	if xq <= x[0] {
		return y[0], nil
	}
	if xq >= x[len(x)-1] {
		return y[len(y)-1], nil
	}

	lo, hi := 0, len(x)-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if x[mid] <= xq {
			lo = mid
		} else {
			hi = mid
		}
	}

	span := x[hi] - x[lo]
	if span == 0 {
		return y[lo], nil
	}
	t := (xq - x[lo]) / span
	return y[lo] + t*(y[hi]-y[lo]), nil
}

// MonotoneCubic is a Fritsch-Carlson monotone cubic Hermite spline,
// preserving the monotonicity of strictly-monotone input data, as
// needed for empirically tabulated curves (filling factors,
// gap-length search tables).
type MonotoneCubic struct {
	x, y []float64
	m    []float64 // tangents
}

// NewMonotoneCubic fits a monotone cubic Hermite spline through the given
// strictly increasing x and corresponding y.
func NewMonotoneCubic(x, y []float64) (*MonotoneCubic, error) {
	n := len(x)
	if n != len(y) || n < 2 {
		return nil, fmt.Errorf("numeric: MonotoneCubic requires at least 2 matching points")
	}
	for i := 1; i < n; i++ {
		if x[i] <= x[i-1] {
			return nil, fmt.Errorf("numeric: MonotoneCubic requires strictly increasing x")
		}
	}

	delta := make([]float64, n-1)
	slope := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		delta[i] = x[i+1] - x[i]
		slope[i] = (y[i+1] - y[i]) / delta[i]
	}

	m := make([]float64, n)
	m[0] = slope[0]
	m[n-1] = slope[n-2]
	for i := 1; i < n-1; i++ {
		if slope[i-1]*slope[i] <= 0 {
			m[i] = 0
		} else {
			m[i] = (slope[i-1] + slope[i]) / 2
		}
	}

	// Fritsch-Carlson monotonicity correction.
	for i := 0; i < n-1; i++ {
		if slope[i] == 0 {
			m[i], m[i+1] = 0, 0
			continue
		}
		a := m[i] / slope[i]
		b := m[i+1] / slope[i]
		dist := a*a + b*b
		if dist > 9 {
			tau := 3 / dist
			m[i] = tau * a * slope[i]
			m[i+1] = tau * b * slope[i]
		}
	}

	return &MonotoneCubic{x: x, y: y, m: m}, nil
}

// Eval clamps at the ends like LinearInterpolate.
func (s *MonotoneCubic) Eval(xq float64) float64 {
	n := len(s.x)
	if xq <= s.x[0] {
		return s.y[0]
	}
	if xq >= s.x[n-1] {
		return s.y[n-1]
	}

	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if s.x[mid] <= xq {
			lo = mid
		} else {
			hi = mid
		}
	}

	h := s.x[hi] - s.x[lo]
	t := (xq - s.x[lo]) / h
	t2 := t * t
	t3 := t2 * t

	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2

	return h00*s.y[lo] + h10*h*s.m[lo] + h01*s.y[hi] + h11*h*s.m[hi]
}
