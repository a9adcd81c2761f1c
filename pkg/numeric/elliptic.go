package numeric

import (
	"math"

	"github.com/openmagnetics-go/mkf/internal/constants"
)

// CompleteEllipticK and CompleteEllipticE are the complete elliptic
// integrals of the first and second kind, evaluated by the
// arithmetic-geometric mean iteration and terminated on relative change
// below the shared root-finder tolerance, or after 64 iterations. Used by
// the fringing-factor models that
// reduce to elliptic boundary-value problems (e.g. Muehlethaler, Stenglein).
func CompleteEllipticK(k float64) float64 {
	a, b := 1.0, math.Sqrt(1-k*k)
	for i := 0; i < 64; i++ {
		an := (a + b) / 2
		bn := math.Sqrt(a * b)
		if math.Abs(an-a) <= constants.RootFinderRelativeTolerance*an {
			a, b = an, bn
			break
		}
		a, b = an, bn
	}
	return math.Pi / (2 * a)
}

func CompleteEllipticE(k float64) float64 {
	a, b, c := 1.0, math.Sqrt(1-k*k), k
	sum := c * c / 2
	pow2 := 1.0
	for i := 0; i < 64; i++ {
		an := (a + b) / 2
		bn := math.Sqrt(a * b)
		cn := (a - b) / 2
		pow2 *= 2
		sum += pow2 * cn * cn / 2
		if math.Abs(cn) <= constants.RootFinderRelativeTolerance*an {
			a, b = an, bn
			break
		}
		a, b = an, bn
	}
	kVal := math.Pi / (2 * a)
	return kVal * (1 - sum)
}
