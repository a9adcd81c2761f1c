package winding

import (
	"fmt"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
)

// CalculateOhmicLosses implements calculate_ohmic_losses:
// for an assembled coil, per-turn effective resistance accumulates in
// series within each parallel conductor, the parallels combine into one
// winding resistance through a conductance network, and the RMS current
// divides back across parallels and their turns (turns within a parallel
// carry the same current; parallels split it by conductance). Fails with
// merr.NotProcessed if the coil's turn geometry has not been laid out.
func CalculateOhmicLosses(coil model.Coil, excitations []model.OperatingPointExcitation, resistivityPoints []model.ResistivityPoint, temperature float64) (model.WindingLossesOutput, error) {
	if len(coil.Turns) == 0 {
		return model.WindingLossesOutput{}, fmt.Errorf("winding: CalculateOhmicLosses: %w", merr.NotProcessed)
	}
	if len(excitations) != len(coil.FunctionalDescription) {
		return model.WindingLossesOutput{}, fmt.Errorf(
			"winding: CalculateOhmicLosses: %d excitations for %d windings: %w",
			len(excitations), len(coil.FunctionalDescription), merr.InvalidInput)
	}

	out := model.WindingLossesOutput{
		WindingLosses:              make([]float64, len(coil.FunctionalDescription)),
		DCResistancePerWinding:     make([]float64, len(coil.FunctionalDescription)),
		TurnLosses:                 make([]float64, len(coil.Turns)),
		EffectiveResistancePerTurn: make([]float64, len(coil.Turns)),
		DividedCurrents:            make([]float64, len(coil.Turns)),
	}

	for wi, fd := range coil.FunctionalDescription {
		rmsCurrent := rmsCurrentOf(excitations[wi])

		parallelSeriesResistance := make([]float64, fd.Parallels)
		turnIndices := make([][]int, fd.Parallels)
		for ti, turn := range coil.Turns {
			if turn.WindingName != fd.Name {
				continue
			}
			rEff, err := EffectiveResistancePerMeter(turn.Wire, resistivityPoints, excitations[wi].Frequency, temperature)
			if err != nil {
				return model.WindingLossesOutput{}, err
			}
			turnResistance := rEff * turn.Length
			out.EffectiveResistancePerTurn[ti] = turnResistance

			if turn.Parallel < 0 || turn.Parallel >= fd.Parallels {
				return model.WindingLossesOutput{}, fmt.Errorf(
					"winding: CalculateOhmicLosses: turn references parallel %d, winding %q has %d: %w",
					turn.Parallel, fd.Name, fd.Parallels, merr.InvalidInput)
			}
			parallelSeriesResistance[turn.Parallel] += turnResistance
			turnIndices[turn.Parallel] = append(turnIndices[turn.Parallel], ti)
		}

		network := NewParallelNetwork()
		activeParallels := make([]int, 0, fd.Parallels)
		for p, r := range parallelSeriesResistance {
			if len(turnIndices[p]) == 0 {
				continue
			}
			if err := network.AddParallel(r); err != nil {
				return model.WindingLossesOutput{}, fmt.Errorf("winding: winding %q parallel %d: %w", fd.Name, p, err)
			}
			activeParallels = append(activeParallels, p)
		}
		if len(activeParallels) == 0 {
			return model.WindingLossesOutput{}, fmt.Errorf("winding: winding %q has no conducting parallels: %w", fd.Name, merr.CalculationInvalid)
		}

		windingResistance, err := network.EquivalentResistance()
		if err != nil {
			return model.WindingLossesOutput{}, fmt.Errorf("winding: winding %q: %w", fd.Name, err)
		}
		out.DCResistancePerWinding[wi] = windingResistance
		out.WindingLosses[wi] = rmsCurrent * rmsCurrent * windingResistance

		parallelCurrents, err := network.CurrentDivider(rmsCurrent)
		if err != nil {
			return model.WindingLossesOutput{}, fmt.Errorf("winding: winding %q: %w", fd.Name, err)
		}
		for ni, p := range activeParallels {
			current := parallelCurrents[ni]
			for _, ti := range turnIndices[p] {
				out.DividedCurrents[ti] = current
				out.TurnLosses[ti] = current * current * out.EffectiveResistancePerTurn[ti]
			}
		}
	}

	return out, nil
}

// rmsCurrentOf extracts the RMS current of the winding's current
// excitation, defaulting to the magnetizing current when the winding
// carries no independent load current (the primary of a pure inductor).
func rmsCurrentOf(exc model.OperatingPointExcitation) float64 {
	if exc.Current != nil && exc.Current.Processed != nil {
		return exc.Current.Processed.RMS
	}
	if exc.MagnetizingCurrent != nil && exc.MagnetizingCurrent.Processed != nil {
		return exc.MagnetizingCurrent.Processed.RMS
	}
	return 0
}
