package numeric

import "math"

// BesselI0 and BesselI1 are the modified Bessel functions of the first
// kind, order 0 and 1, via their power series; used by the initial
// permeability DC-bias factor and as building blocks for the Kelvin
// functions below.
func BesselI0(z float64) float64 {
	sum, term := 1.0, 1.0
	halfZSq := (z / 2) * (z / 2)
	for k := 1; k < 200; k++ {
		term *= halfZSq / (float64(k) * float64(k))
		sum += term
		if math.Abs(term) < math.Abs(sum)*1e-15 {
			break
		}
	}
	return sum
}

func BesselI1(z float64) float64 {
	sum, term := z / 2, z / 2
	halfZSq := (z / 2) * (z / 2)
	for k := 1; k < 200; k++ {
		term *= halfZSq / (float64(k) * float64(k+1))
		sum += term
		if math.Abs(term) < math.Abs(sum)*1e-15 {
			break
		}
	}
	return sum
}

// BesselJ0 is the ordinary Bessel function of the first kind, order 0.
func BesselJ0(x float64) float64 {
	sum, term := 1.0, 1.0
	halfXSq := -(x / 2) * (x / 2)
	for k := 1; k < 200; k++ {
		term *= halfXSq / (float64(k) * float64(k))
		sum += term
		if math.Abs(term) < math.Abs(sum)*1e-15 {
			break
		}
	}
	return sum
}

// KelvinBer0 and KelvinBei0 are the real and imaginary parts of J_0(x *
// e^(i*3*pi/4)), the Kelvin functions used by the round-wire skin-effect
// resistance model, evaluated by direct series summation of
// their defining alternating sums.
func KelvinBer0(x float64) float64 {
	sum := 1.0
	xp := x / 2
	term := 1.0
	for k := 1; k < 60; k++ {
		// ber/bei series: term_k = (x/2)^(4k) / ((2k)!)^2 alternating sign
		term *= -(xp * xp * xp * xp) / (float64(2*k-1) * float64(2*k-1) * float64(2*k) * float64(2*k))
		sum += term
		if math.Abs(term) < 1e-15*math.Abs(sum) {
			break
		}
	}
	return sum
}

func KelvinBei0(x float64) float64 {
	xp := x / 2
	sum := xp * xp
	term := xp * xp
	for k := 1; k < 60; k++ {
		term *= -(xp * xp * xp * xp) / (float64(2*k) * float64(2*k) * float64(2*k+1) * float64(2*k+1))
		sum += term
		if math.Abs(term) < 1e-15*math.Abs(sum) {
			break
		}
	}
	return sum
}

// KelvinBer1 and KelvinBei1 are the first derivatives ber0'(x) and
// bei0'(x), used by the skin-effect resistance ratio
// R_ac/R_dc = x/2 * (ber0(x)*bei1(x) - bei0(x)*ber1(x)) / (ber1(x)^2 + bei1(x)^2).
func KelvinBer1(x float64) float64 {
	xp := x / 2
	sum := -xp * xp * xp / 2
	term := sum
	for k := 1; k < 60; k++ {
		term *= -(xp * xp * xp * xp) / (float64(2*k) * float64(2*k+1) * float64(2*k+1) * float64(2*k+2))
		sum += term
		if math.Abs(term) < 1e-15*math.Abs(sum) {
			break
		}
	}
	return sum
}

func KelvinBei1(x float64) float64 {
	xp := x / 2
	sum := xp
	term := xp
	for k := 1; k < 60; k++ {
		term *= -(xp * xp * xp * xp) / (float64(2*k-1) * float64(2*k) * float64(2*k) * float64(2*k+1))
		sum += term
		if math.Abs(term) < 1e-15*math.Abs(sum) {
			break
		}
	}
	return sum
}

// SkinEffectResistanceRatio returns A_dc / A_effective for a round conductor of
// radius r (m) at angular argument x = r*sqrt(2)/skinDepth, via the
// classical Kelvin-function skin-effect resistance ratio.
// The ratio is >= 1; A_effective = A_dc / ratio.
func SkinEffectResistanceRatio(x float64) float64 {
	if x < 1e-6 {
		return 1.0
	}
	ber1, bei1 := KelvinBer1(x), KelvinBei1(x)
	ber0, bei0 := KelvinBer0(x), KelvinBei0(x)
	denom := ber1*ber1 + bei1*bei1
	if denom == 0 {
		return 1.0
	}
	return (x / 2) * (ber0*bei1 - bei0*ber1) / denom
}
