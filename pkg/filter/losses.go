package filter

import (
	"fmt"

	"github.com/openmagnetics-go/mkf/pkg/coreloss"
	"github.com/openmagnetics-go/mkf/pkg/inductance"
	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/openmagnetics-go/mkf/pkg/permeability"
	"github.com/openmagnetics-go/mkf/pkg/reluctance"
)

// LossesFilter implements Losses/Efficiency filter: a full
// core-losses invocation with a provisional 1-turn winding, the flux
// density it would see derived from the primary excitation's current
// waveform through the candidate's own 1-turn inductance. Lower is better.
type LossesFilter struct {
	FringingModel reluctance.FringingModel
}

func (LossesFilter) Name() Name { return Losses }

func (f LossesFilter) Evaluate(candidate model.Magnetic, ctx Context) (Result, error) {
	core := candidate.Core
	if core.Processed == nil {
		return Result{}, fmt.Errorf("filter: Losses: %w", merr.NotProcessed)
	}

	wf, frequency, err := primaryCurrentWaveform(ctx.OperatingPoints)
	if err != nil {
		return Result{}, fmt.Errorf("filter: Losses: %w", err)
	}

	temperature := ctx.Temperature
	mu, err := permeability.Initial(core.Material, permeability.Conditions{Temperature: &temperature, Frequency: &frequency})
	if err != nil {
		return Result{}, err
	}
	totalReluctance, err := reluctance.CoreTotalReluctance(core, f.FringingModel, mu, frequency)
	if err != nil {
		return Result{}, err
	}
	oneTurnInductance, err := inductance.Inductance(1, totalReluctance, nil)
	if err != nil {
		return Result{}, err
	}
	l1, err := model.GetRequirementValue(oneTurnInductance, model.DimensionalNominal)
	if err != nil {
		return Result{}, err
	}

	_, fluxDensity, err := inductance.InductanceAndFluxDensity(l1, wf, 1, core.Processed.EffectiveArea, frequency)
	if err != nil {
		return Result{}, err
	}

	excitation := model.OperatingPointExcitation{Frequency: frequency, MagnetizingCurrent: &fluxDensity}
	result, err := coreloss.CoreLosses(core, excitation, ctx.Temperature)
	if err != nil {
		return Result{}, err
	}
	return Result{Valid: true, Score: result.Losses}, nil
}

// primaryCurrentWaveform returns the first operating point's primary
// winding current waveform (falling back to its magnetizing current) and
// the excitation frequency it was declared at.
func primaryCurrentWaveform(ops []model.OperatingPoint) (model.Waveform, float64, error) {
	for _, op := range ops {
		if len(op.Excitations) == 0 {
			continue
		}
		exc := op.Excitations[0]
		sig := exc.Current
		if sig == nil {
			sig = exc.MagnetizingCurrent
		}
		if sig == nil || sig.Waveform == nil {
			continue
		}
		return *sig.Waveform, exc.Frequency, nil
	}
	return model.Waveform{}, 0, fmt.Errorf("no primary winding current waveform in operating points: %w", merr.InvalidInput)
}
