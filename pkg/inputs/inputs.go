// Package inputs implements the construction-time pipeline over
// model.Inputs: defaulting isolation sides, standardizing excitation
// signals, reflecting a missing secondary, and filling magnetizing current
// from the primary voltage. It is the single place callers run before
// handing Inputs to the reluctance/inductance/losses/adviser packages,
// the same kind of normalization pass a circuit simulator runs once over
// a netlist (resolving implicit ground nodes and default element
// parameters) before analysis begins.
package inputs

import (
	"fmt"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/openmagnetics-go/mkf/pkg/signal"
)

// Process runs the full pipeline in place over in, returning
// MISSING_PRIMARY_EXCITATION or AMBIGUOUS_SECONDARY wrapped errors when the
// inputs cannot be completed unambiguously.
func Process(in *model.Inputs) error {
	if in == nil {
		return fmt.Errorf("inputs: Process: %w", merr.InvalidInput)
	}
	if err := defaultIsolationSides(in); err != nil {
		return err
	}
	for i := range in.OperatingPoints {
		if err := processOperatingPoint(in, &in.OperatingPoints[i]); err != nil {
			return fmt.Errorf("inputs: operating point %d: %w", i, err)
		}
	}
	return nil
}

// defaultIsolationSides implements step 1: one isolation-side entry per
// winding, defaulting unset entries to the ordered PRIMARY/SECONDARY/...
// sequence. The winding count is taken from the first operating point's
// excitation slice; every operating point must agree with it.
func defaultIsolationSides(in *model.Inputs) error {
	if len(in.OperatingPoints) == 0 {
		return nil
	}
	numWindings := len(in.OperatingPoints[0].Excitations)
	for i, op := range in.OperatingPoints {
		if len(op.Excitations) != numWindings {
			return fmt.Errorf("inputs: operating point %d has %d windings, expected %d: %w",
				i, len(op.Excitations), numWindings, merr.InvalidInput)
		}
	}

	sides := in.DesignRequirements.IsolationSides
	if len(sides) > numWindings {
		sides = sides[:numWindings]
	}
	for len(sides) < numWindings {
		idx := len(sides)
		if idx < len(model.OrderedIsolationSides) {
			sides = append(sides, model.OrderedIsolationSides[idx])
		} else {
			sides = append(sides, model.IsolationSide(fmt.Sprintf("winding-%d", idx+1)))
		}
	}
	in.DesignRequirements.IsolationSides = sides
	return nil
}

// processOperatingPoint runs steps 2-5 over a single operating point.
func processOperatingPoint(in *model.Inputs, op *model.OperatingPoint) error {
	present := 0
	for i := range op.Excitations {
		exc := &op.Excitations[i]
		if err := standardizeExcitation(exc); err != nil {
			return err
		}
		if exc.Current != nil || exc.Voltage != nil {
			present++
		}
	}
	if present == 0 {
		return fmt.Errorf("inputs: %w", merr.MissingPrimaryExcitation)
	}

	// Step 4 (filling magnetizing current from L_m) needs a magnetizing
	// inductance value, which does not exist until the inductance solver
	// has run; callers invoke FillMagnetizingCurrentWithInductance for that
	// step once L_m is known.
	return reflectMissingSecondary(in, op)
}

// standardizeExcitation runs standardize/sample/harmonics/processed over
// whichever of Current/Voltage/MagnetizingCurrent are present (step 2).
func standardizeExcitation(exc *model.OperatingPointExcitation) error {
	for _, sig := range []*model.SignalDescriptor{exc.Current, exc.Voltage, exc.MagnetizingCurrent} {
		if sig == nil {
			continue
		}
		if err := standardizeSignal(sig, exc.Frequency); err != nil {
			return err
		}
	}
	return nil
}

func standardizeSignal(sig *model.SignalDescriptor, f float64) error {
	if sig.Waveform == nil {
		if err := signal.Standardize(sig, f, false); err != nil {
			return err
		}
	}
	if err := signal.Sample(sig, f, false); err != nil {
		return err
	}
	if err := signal.Harmonics(sig, f, false); err != nil {
		return err
	}
	return signal.Processed(sig, false)
}

// reflectMissingSecondary implements step 3: when exactly one winding
// beyond the primary has no excitation at all, and design-requirements
// declares exactly one turns-ratio, derive the missing excitation by
// reflection. More than one missing secondary is AMBIGUOUS_SECONDARY.
func reflectMissingSecondary(in *model.Inputs, op *model.OperatingPoint) error {
	if len(op.Excitations) < 2 {
		return nil
	}
	primary := &op.Excitations[0]
	if primary.Current == nil && primary.Voltage == nil {
		return nil // nothing to reflect from
	}

	var missing []int
	for i := 1; i < len(op.Excitations); i++ {
		exc := &op.Excitations[i]
		if exc.Current == nil && exc.Voltage == nil {
			missing = append(missing, i)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	if len(missing) > 1 || len(in.DesignRequirements.TurnsRatios) != 1 {
		return fmt.Errorf("inputs: %d secondary windings missing an excitation: %w", len(missing), merr.AmbiguousSecondary)
	}

	ratio, err := model.GetRequirementValue(in.DesignRequirements.TurnsRatios[0], model.DimensionalNominal)
	if err != nil {
		return fmt.Errorf("inputs: turns ratio: %w", err)
	}

	target := &op.Excitations[missing[0]]
	if primary.Current != nil && primary.Current.Waveform != nil {
		reflected := signal.Reflect(*primary.Current.Waveform, ratio)
		target.Current = &model.SignalDescriptor{Waveform: &reflected}
		if err := standardizeSignal(target.Current, target.Frequency); err != nil {
			return err
		}
	}
	if primary.Voltage != nil && primary.Voltage.Waveform != nil {
		reflected := signal.Reflect(*primary.Voltage.Waveform, 1/ratio)
		target.Voltage = &model.SignalDescriptor{Waveform: &reflected}
		if err := standardizeSignal(target.Voltage, target.Frequency); err != nil {
			return err
		}
	}
	return nil
}

// FillMagnetizingCurrentWithInductance implements step 4 of the pipeline,
// as a separate call because L_m is not itself part of model.Inputs until
// the inductance solver (component G) has produced one: callers run
// Process, then call this once per operating point once L_m is known.
func FillMagnetizingCurrentWithInductance(op *model.OperatingPoint, inductance, dcCurrent float64) error {
	if len(op.Excitations) == 0 {
		return fmt.Errorf("inputs: FillMagnetizingCurrentWithInductance: %w", merr.InvalidInput)
	}
	primary := &op.Excitations[0]
	if primary.MagnetizingCurrent != nil {
		return nil
	}
	if primary.Voltage == nil || primary.Voltage.Waveform == nil {
		return fmt.Errorf("inputs: FillMagnetizingCurrentWithInductance: no primary voltage to integrate: %w", merr.InvalidInput)
	}

	w, err := signal.Integrate(*primary.Voltage.Waveform, primary.Frequency, inductance, dcCurrent)
	if err != nil {
		return err
	}
	sig := &model.SignalDescriptor{Waveform: &w}
	if err := standardizeSignal(sig, primary.Frequency); err != nil {
		return err
	}
	primary.MagnetizingCurrent = sig
	return nil
}
