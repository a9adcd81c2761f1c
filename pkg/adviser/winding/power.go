// Package windingadviser implements coil adviser: winding
// patterns x repetitions x wire enumeration over a magnetic whose core is
// already fixed, producing ranked wound Mas results.
package windingadviser

import (
	"fmt"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
)

// minimumShare is the floor every winding's power share is clamped to
// before renormalising, so a lightly loaded winding (e.g. a bias or
// sense winding) still gets a non-trivial wire size.
const minimumShare = 0.05

// windingNames returns the winding order this Mas's coil already commits
// to (the core adviser's provisional functional description), falling
// back to the design requirement's isolation sides when no coil has been
// attached yet.
func windingNames(mas model.Mas) []string {
	if len(mas.Magnetic.Coil.FunctionalDescription) > 0 {
		names := make([]string, len(mas.Magnetic.Coil.FunctionalDescription))
		for i, fd := range mas.Magnetic.Coil.FunctionalDescription {
			names[i] = fd.Name
		}
		return names
	}
	sides := mas.Inputs.DesignRequirements.IsolationSides
	if len(sides) == 0 {
		sides = []model.IsolationSide{model.IsolationPrimary}
	}
	names := make([]string, len(sides))
	for i, s := range sides {
		names[i] = string(s)
	}
	return names
}

// PowerShares computes the instantaneous-power integral of each
// winding's voltage times current, averaged across operating points,
// clamped to minimumShare and renormalised to sum 1.
// Windings whose excitation carries no voltage/current waveform fall
// back to RMS voltage x RMS current.
func PowerShares(mas model.Mas) (map[string]float64, error) {
	names := windingNames(mas)
	if len(names) == 0 {
		return nil, fmt.Errorf("windingadviser: PowerShares: %w", merr.InvalidInput)
	}

	raw := make(map[string]float64, len(names))
	var samples int
	for _, op := range mas.Inputs.OperatingPoints {
		for i, exc := range op.Excitations {
			if i >= len(names) {
				break
			}
			name := names[i]
			raw[name] += instantaneousPower(exc)
			samples++
		}
	}
	if samples == 0 {
		return nil, fmt.Errorf("windingadviser: PowerShares: no operating-point excitations: %w", merr.InvalidInput)
	}

	var total float64
	for _, name := range names {
		if raw[name] < 0 {
			raw[name] = -raw[name]
		}
		total += raw[name]
	}
	shares := make(map[string]float64, len(names))
	if total <= 0 {
		equal := 1.0 / float64(len(names))
		for _, name := range names {
			shares[name] = equal
		}
		return shares, nil
	}

	var clampedTotal float64
	for _, name := range names {
		share := raw[name] / total
		if share < minimumShare {
			share = minimumShare
		}
		shares[name] = share
		clampedTotal += share
	}
	for _, name := range names {
		shares[name] /= clampedTotal
	}
	return shares, nil
}

func instantaneousPower(exc model.OperatingPointExcitation) float64 {
	if exc.Voltage != nil && exc.Current != nil && exc.Voltage.Waveform != nil && exc.Current.Waveform != nil {
		v := exc.Voltage.Waveform.Data
		i := exc.Current.Waveform.Data
		n := len(v)
		if len(i) < n {
			n = len(i)
		}
		if n == 0 {
			return 0
		}
		var sum float64
		for k := 0; k < n; k++ {
			sum += v[k] * i[k]
		}
		return sum / float64(n)
	}
	if exc.Voltage != nil && exc.Current != nil && exc.Voltage.Processed != nil && exc.Current.Processed != nil {
		return exc.Voltage.Processed.RMS * exc.Current.Processed.RMS
	}
	return 0
}
