package numeric

import (
	"fmt"
	"math"

	"github.com/openmagnetics-go/mkf/internal/constants"
	"github.com/openmagnetics-go/mkf/pkg/merr"
)

// Func1D is the scalar function the root finder brackets.
type Func1D func(float64) float64

// FindRoot brackets f between lo and hi (expanding the bracket up to
// constants.RootFinderMaxBracketDoublings times if f(lo) and f(hi) share a
// sign) and then converges with bisection, falling back to a secant step
// whenever it stays inside the current bracket. Returns
// merr.RootNotFound wrapped with context if no sign change is ever found.
func FindRoot(f Func1D, lo, hi, tol float64) (float64, error) {
	if lo > hi {
		lo, hi = hi, lo
	}

	flo, fhi := f(lo), f(hi)
	doublings := 0
	for flo*fhi > 0 {
		if doublings >= constants.RootFinderMaxBracketDoublings {
			return 0, fmt.Errorf("numeric: %w after %d bracket doublings", merr.RootNotFound, doublings)
		}
		span := hi - lo
		lo -= span / 2
		hi += span / 2
		flo, fhi = f(lo), f(hi)
		doublings++
	}

	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}

	for i := 0; i < 200; i++ {
		if hi-lo < tol {
			return (lo + hi) / 2, nil
		}

		// Secant step, used only when it lands strictly inside the bracket.
		mid := lo - flo*(hi-lo)/(fhi-flo)
		if mid <= lo || mid >= hi || math.IsNaN(mid) {
			mid = (lo + hi) / 2
		}

		fmid := f(mid)
		if math.Abs(fmid) < tol {
			return mid, nil
		}

		if flo*fmid < 0 {
			hi, fhi = mid, fmid
		} else {
			lo, flo = mid, fmid
		}
	}

	return (lo + hi) / 2, nil
}
