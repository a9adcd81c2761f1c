package reluctance

import (
	"fmt"
	"math"

	"github.com/openmagnetics-go/mkf/internal/constants"
	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/openmagnetics-go/mkf/pkg/numeric"
)

// FringingModel names one of the eight interchangeable gap fringing-factor
// algorithms supported.
type FringingModel string

const (
	FringingZhang          FringingModel = "Zhang"
	FringingMcLyman        FringingModel = "McLyman"
	FringingPartridge      FringingModel = "Partridge"
	FringingMuehlethaler   FringingModel = "Muehlethaler"
	FringingClassic        FringingModel = "Classic"
	FringingBalakrishnan   FringingModel = "Balakrishnan"
	FringingEffectiveArea  FringingModel = "EffectiveArea"
	FringingStenglein      FringingModel = "Stenglein"
)

// FringingGeometry bundles the gap geometry every model needs: gap length
// and area, plus the distance to the nearest parallel and normal core
// surfaces.
type FringingGeometry struct {
	GapLength                     float64
	GapArea                       float64
	ClosestNormalSurfaceDistance  float64
	ClosestParallelSurfaceDistance float64
	Frequency                     float64 // only Muehlethaler's variant uses this
	Distributed                   bool
}

// FringingFactor evaluates the named model, clamping the result to
// [MinimumDistributedFringingFactor, MaximumDistributedFringingFactor] when
// g.Distributed is set.
func FringingFactor(model FringingModel, g FringingGeometry) (float64, error) {
	if g.GapLength <= 0 || g.GapArea <= 0 {
		return 0, fmt.Errorf("reluctance: FringingFactor: gap length and area must be positive: %w", merr.InvalidInput)
	}

	var f float64
	switch model {
	case FringingZhang:
		f = fringingZhang(g)
	case FringingMcLyman:
		f = fringingMcLyman(g)
	case FringingPartridge:
		f = fringingPartridge(g)
	case FringingMuehlethaler:
		f = fringingMuehlethaler(g)
	case FringingClassic:
		f = fringingClassic(g)
	case FringingBalakrishnan:
		f = fringingBalakrishnan(g)
	case FringingEffectiveArea:
		f = fringingEffectiveArea(g)
	case FringingStenglein:
		f = fringingStenglein(g)
	default:
		return 0, fmt.Errorf("reluctance: FringingFactor: unknown model %q: %w", model, merr.InvalidInput)
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("reluctance: FringingFactor: %w", merr.NaNResult)
	}
	if f < 1 {
		f = 1
	}
	if g.Distributed {
		if f < constants.MinimumDistributedFringingFactor {
			f = constants.MinimumDistributedFringingFactor
		}
		if f > constants.MaximumDistributedFringingFactor {
			f = constants.MaximumDistributedFringingFactor
		}
	}
	return f, nil
}

// equivalentRadius treats the gap cross-section as a circle of the same
// area, the common simplification every fringing model below starts from.
func equivalentRadius(g FringingGeometry) float64 {
	return math.Sqrt(g.GapArea / math.Pi)
}

// fringingClassic is McLyman's original logarithmic formula,
// F = 1 + (g/sqrt(A)) * ln(2W/g), with W a characteristic winding-window
// width approximated by the distance to the closest parallel surface.
func fringingClassic(g FringingGeometry) float64 {
	w := g.ClosestParallelSurfaceDistance
	if w <= 0 {
		w = equivalentRadius(g)
	}
	return 1 + (g.GapLength/math.Sqrt(g.GapArea))*math.Log(2*w/g.GapLength)
}

// fringingMcLyman refines the classic formula with the normal-surface
// distance as the second logarithm argument.
func fringingMcLyman(g FringingGeometry) float64 {
	d := g.ClosestNormalSurfaceDistance
	if d <= 0 {
		d = equivalentRadius(g)
	}
	base := fringingClassic(g)
	return base * (1 + (g.GapLength/(2*d))*math.Log(d/g.GapLength+1))
}

// fringingPartridge adds a geometric correction proportional to the gap's
// aspect ratio against the equivalent radius.
func fringingPartridge(g FringingGeometry) float64 {
	r := equivalentRadius(g)
	return 1 + (2*g.GapLength)/(math.Pi*r)*math.Atan(r/g.GapLength)
}

// fringingMuehlethaler is the only variant with a frequency term, modeling
// skin-effect confinement of the fringing flux at high frequency.
func fringingMuehlethaler(g FringingGeometry) float64 {
	base := fringingClassic(g)
	if g.Frequency <= 0 {
		return base
	}
	skinFactor := 1 / (1 + math.Sqrt(g.Frequency/1e5))
	return 1 + (base-1)*skinFactor
}

// fringingZhang's empirical fit weights the logarithmic term by the ratio
// of normal to parallel surface distances.
func fringingZhang(g FringingGeometry) float64 {
	ratio := 1.0
	if g.ClosestParallelSurfaceDistance > 0 {
		ratio = g.ClosestNormalSurfaceDistance / g.ClosestParallelSurfaceDistance
	}
	return 1 + 0.5*ratio*(g.GapLength/equivalentRadius(g))
}

// fringingBalakrishnan's conformal-mapping approximation.
func fringingBalakrishnan(g FringingGeometry) float64 {
	r := equivalentRadius(g)
	return 1 + (g.GapLength/(math.Pi*r))*math.Log(1+math.Pi*r/g.GapLength)
}

// fringingEffectiveArea instead inflates the gap's effective area directly
// and reports the equivalent scalar factor on reluctance.
func fringingEffectiveArea(g FringingGeometry) float64 {
	r := equivalentRadius(g)
	effectiveRadius := r + g.GapLength/2
	return (effectiveRadius * effectiveRadius) / (r * r)
}

// fringingStenglein refines Balakrishnan's formula with the conformal-
// mapping correction K(k)/E(k) (complete elliptic integrals of the first
// and second kind), the same ratio Maxwell's conformal-mapping solution
// for a slot field uses to correct a circular-boundary approximation
// toward the true field-line curvature near the gap edge. The elliptic
// modulus k = g/(g+2r) stays small for the common case of a gap much
// smaller than the core's cross-section, where K(k)/E(k) -> 1 and the
// correction vanishes into the Balakrishnan base.
func fringingStenglein(g FringingGeometry) float64 {
	base := fringingBalakrishnan(g)
	r := equivalentRadius(g)
	k := g.GapLength / (g.GapLength + 2*r)
	return base * numeric.CompleteEllipticK(k) / numeric.CompleteEllipticE(k)
}

// GapWithFringing returns the gap reluctance using the chosen fringing
// model, reading the geometry straight off a model.CoreGap (falling back
// to residual-gap defaults when the gap omits surface distances).
func GapWithFringing(fm FringingModel, gap model.CoreGap, columnArea float64, frequency float64) (float64, error) {
	area := columnArea
	if gap.Area != nil {
		area = *gap.Area
	}
	g := FringingGeometry{
		GapLength:   gap.Length,
		GapArea:     area,
		Frequency:   frequency,
		Distributed: gap.Type == model.GapDistributed,
	}
	if gap.ClosestNormalSurfaceDistance != nil {
		g.ClosestNormalSurfaceDistance = *gap.ClosestNormalSurfaceDistance
	}
	if gap.ClosestParallelSurfaceDistance != nil {
		g.ClosestParallelSurfaceDistance = *gap.ClosestParallelSurfaceDistance
	}

	factor, err := FringingFactor(fm, g)
	if err != nil {
		return 0, err
	}
	return Gap(gap.Length, area, factor)
}
