package filter

import (
	"fmt"
	"math"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/openmagnetics-go/mkf/pkg/permeability"
	"github.com/openmagnetics-go/mkf/pkg/reluctance"
	"github.com/openmagnetics-go/mkf/pkg/winding"
)

// MinimumImpedanceFilter implements MinimumImpedance
// filter, for filter chokes: it requires mu_i(f) and winding
// model to estimate |Z(f)| = sqrt(R_ac(f)^2 + (2*pi*f*L(f))^2) at every
// frequency band the design requirement declares, and is valid only if
// every band clears its declared minimum.
type MinimumImpedanceFilter struct {
	FringingModel reluctance.FringingModel
}

func (MinimumImpedanceFilter) Name() Name { return MinimumImpedance }

func (f MinimumImpedanceFilter) Evaluate(candidate model.Magnetic, ctx Context) (Result, error) {
	points := ctx.Requirement.MinimumImpedance
	if len(points) == 0 {
		return Result{Valid: true, Score: 0}, nil
	}
	core := candidate.Core
	if core.Processed == nil {
		return Result{}, fmt.Errorf("filter: MinimumImpedance: %w", merr.NotProcessed)
	}
	turns := len(candidate.Coil.Turns)
	if turns == 0 {
		return Result{}, fmt.Errorf("filter: MinimumImpedance: %w", merr.NotProcessed)
	}
	n := float64(turns)

	valid := true
	var shortfallSum float64
	for _, point := range points {
		freq := point.Frequency
		mu, err := permeability.Initial(core.Material, permeability.Conditions{Frequency: &freq, Temperature: &ctx.Temperature})
		if err != nil {
			return Result{}, err
		}
		totalReluctance, err := reluctance.CoreTotalReluctance(core, f.FringingModel, mu, freq)
		if err != nil {
			return Result{}, err
		}
		l := n * n / totalReluctance

		var resistance float64
		for _, turn := range candidate.Coil.Turns {
			rEff, err := winding.EffectiveResistancePerMeter(turn.Wire, ctx.WireResistivity, freq, ctx.Temperature)
			if err != nil {
				return Result{}, err
			}
			resistance += rEff * turn.Length
		}

		reactance := 2 * math.Pi * freq * l
		magnitude := math.Hypot(resistance, reactance)
		if magnitude < point.MinimumImpedance {
			valid = false
		}
		if magnitude > 0 {
			shortfallSum += point.MinimumImpedance / magnitude
		}
	}

	return Result{Valid: valid, Score: shortfallSum / float64(len(points))}, nil
}
