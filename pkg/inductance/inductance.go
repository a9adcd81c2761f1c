// Package inductance implements the magnetizing-inductance solver: the
// closed-form L = N^2/R_total, its two inverses (turns count, gapping),
// and the joint inductance/flux-density waveform helper. Built entirely
// on pkg/reluctance's total-circuit reluctance and pkg/numeric's root
// finder, the same layering a SPICE-style solver uses between its matrix
// solve step and the analysis stage that interprets the solved result.
package inductance

import (
	"fmt"
	"math"

	"github.com/openmagnetics-go/mkf/internal/constants"
	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/openmagnetics-go/mkf/pkg/numeric"
	"github.com/openmagnetics-go/mkf/pkg/signal"
)

// GappingType names the three gapping strategies the gapping search supports.
type GappingType int

const (
	GappingGround GappingType = iota
	GappingDistributed
	GappingSpacer
)

// Inductance computes L = N^2 / R_total for a winding with the given turn
// count and total circuit reluctance, returning a BoundedValue that widens
// around the nominal result when a permeability tolerance is supplied.
func Inductance(turns int, totalReluctance float64, permeabilityTolerancePercent *float64) (model.BoundedValue, error) {
	if turns <= 0 || totalReluctance <= 0 {
		return model.BoundedValue{}, fmt.Errorf("inductance: Inductance: turns and reluctance must be positive: %w", merr.InvalidInput)
	}
	nominal := float64(turns*turns) / totalReluctance
	if math.IsNaN(nominal) || math.IsInf(nominal, 0) {
		return model.BoundedValue{}, fmt.Errorf("inductance: Inductance: %w", merr.NaNResult)
	}
	if permeabilityTolerancePercent == nil {
		return model.Fixed(nominal), nil
	}
	tol := *permeabilityTolerancePercent / 100
	min := nominal * (1 - tol)
	max := nominal * (1 + tol)
	return model.BoundedValue{Nominal: &nominal, Minimum: &min, Maximum: &max}, nil
}

// NumberTurns implements calculate_number_turns: the smallest integer N
// such that N^2/R_total >= L_target, where L_target is resolved from
// inputs' magnetizing-inductance requirement with NOMINAL -> MINIMUM ->
// MAXIMUM preference.
func NumberTurns(requirement model.BoundedValue, totalReluctance float64) (int, error) {
	if totalReluctance <= 0 {
		return 0, fmt.Errorf("inductance: NumberTurns: reluctance must be positive: %w", merr.InvalidInput)
	}
	target, err := numberTurnsTarget(requirement)
	if err != nil {
		return 0, err
	}
	n := math.Sqrt(target * totalReluctance)
	turns := int(math.Ceil(n))
	if turns < 1 {
		turns = 1
	}
	return turns, nil
}

func numberTurnsTarget(requirement model.BoundedValue) (float64, error) {
	if requirement.Nominal != nil {
		return *requirement.Nominal, nil
	}
	if requirement.Minimum != nil {
		return *requirement.Minimum, nil
	}
	if requirement.Maximum != nil {
		return *requirement.Maximum, nil
	}
	return 0, fmt.Errorf("inductance: NumberTurns: %w", merr.InvalidInput)
}

// GappingResult is calculate_gapping's output: the set of gaps to apply
// plus the achieved inductance, which may fall short of the target when
// the search fails.
type GappingResult struct {
	Gaps     []model.CoreGap
	LActual  float64
	Achieved bool
}

// ReluctanceFromGapLength computes the total-circuit reluctance for a
// trial central gap length, given the already-computed ungapped column
// reluctance and lateral-leg reluctance (residual-gapped), so the gapping
// search below can stay generic over which gapping type produced them.
type ReluctanceFromGapLength func(gapLength float64) (float64, error)

// CalculateGapping brackets a single central gap length in
// [constants.InitialGapLengthForSearching, columnHeight-safety] to hit
// L_target = N^2/R_total(gapLength) within 0.1%, via the shared root
// finder. On failure it returns Achieved=false with a residual-only gap
// and the actually reached inductance.
func CalculateGapping(gappingType GappingType, turns int, targetInductance, columnHeight float64, reluctanceAt ReluctanceFromGapLength) (GappingResult, error) {
	if turns <= 0 || targetInductance <= 0 || columnHeight <= 0 {
		return GappingResult{}, fmt.Errorf("inductance: CalculateGapping: %w", merr.InvalidInput)
	}

	safety := columnHeight * 0.1
	hi := columnHeight - safety
	if hi <= constants.InitialGapLengthForSearching {
		hi = constants.InitialGapLengthForSearching * 10
	}

	f := func(gapLength float64) float64 {
		r, err := reluctanceAt(gapLength)
		if err != nil || r <= 0 {
			return math.NaN()
		}
		l := float64(turns*turns) / r
		return l - targetInductance
	}

	root, err := numeric.FindRoot(f, constants.InitialGapLengthForSearching, hi, targetInductance*1e-3)
	if err != nil {
		r, rerr := reluctanceAt(constants.ResidualGap)
		if rerr != nil {
			return GappingResult{}, fmt.Errorf("inductance: CalculateGapping: %w", err)
		}
		achieved := float64(turns*turns) / r
		return GappingResult{
			Gaps:     []model.CoreGap{{Type: model.GapResidual, Length: constants.ResidualGap}},
			LActual:  achieved,
			Achieved: false,
		}, nil
	}

	r, err := reluctanceAt(root)
	if err != nil {
		return GappingResult{}, err
	}
	achieved := float64(turns*turns) / r

	gapType := model.GapSubtractive
	if gappingType == GappingDistributed {
		gapType = model.GapAdditive
	}
	return GappingResult{
		Gaps:     []model.CoreGap{{Type: gapType, Length: root}},
		LActual:  achieved,
		Achieved: true,
	}, nil
}

// InductanceAndFluxDensity implements calculate_inductance_and_magnetic_flux_density:
// B(t) = L*i(t)/(N*A_e), sampled/harmonic-transformed/processed
// consistently with the rest of the signal pipeline.
func InductanceAndFluxDensity(inductance float64, current model.Waveform, turns int, effectiveArea, frequency float64) (model.BoundedValue, model.SignalDescriptor, error) {
	if turns <= 0 || effectiveArea <= 0 {
		return model.BoundedValue{}, model.SignalDescriptor{}, fmt.Errorf("inductance: InductanceAndFluxDensity: %w", merr.InvalidInput)
	}
	scale := inductance / (float64(turns) * effectiveArea)
	data := make([]float64, len(current.Data))
	for i, v := range current.Data {
		data[i] = v * scale
	}
	b := model.Waveform{Time: current.Time, Data: data}
	sig := model.SignalDescriptor{Waveform: &b}

	if err := signal.Sample(&sig, frequency, true); err != nil {
		return model.BoundedValue{}, model.SignalDescriptor{}, err
	}
	if err := signal.Harmonics(&sig, frequency, true); err != nil {
		return model.BoundedValue{}, model.SignalDescriptor{}, err
	}
	if err := signal.Processed(&sig, true); err != nil {
		return model.BoundedValue{}, model.SignalDescriptor{}, err
	}

	return model.Fixed(inductance), sig, nil
}

// AirInductance is the optional closed-form open-air term, a single-layer
// air-core coil approximation (Wheeler's formula) added linearly to the
// computed magnetizing inductance when enabled. Wheeler's r^2*N^2/(9r+10l)
// gives microhenries for r and l in inches; with r and l in meters the
// result is divided by 0.0254 m/inch and scaled to henries.
func AirInductance(numberTurns int, coilRadius, coilLength float64) float64 {
	n := float64(numberTurns)
	return (n * n * coilRadius * coilRadius) / (9*coilRadius + 10*coilLength) / 0.0254 * 1e-6
}
