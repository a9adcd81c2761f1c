// Package constants holds the exact physical and numeric constants the
// physical models and advisers are required to agree on bit-for-bit.
package constants

import "math"

const (
	// VacuumPermeability is mu_0 in H/m.
	VacuumPermeability = 4 * math.Pi * 1e-7

	// ResidualGap is the length, in meters, assigned to a lateral leg that
	// carries no intentional gap (manufacturing residual air gap).
	ResidualGap = 5e-6

	// MinimumNonResidualGap is the smallest gap length, in meters, that the
	// gapping solver will ever propose for an intentional (additive,
	// subtractive, distributed) gap.
	MinimumNonResidualGap = 1e-4

	// NumberPointsSampleWaveforms is the fixed sample count used throughout
	// the signal processor for one period of a waveform.
	NumberPointsSampleWaveforms = 128

	// MinimumDistributedFringingFactor and MaximumDistributedFringingFactor
	// bound the fringing factor of any gap classified as distributed.
	MinimumDistributedFringingFactor = 1.05
	MaximumDistributedFringingFactor = 1.3

	// InitialGapLengthForSearching seeds the gapping root finder.
	InitialGapLengthForSearching = 1e-3

	// RoshenMagneticFieldStrengthStep is the step, in A/m, used when
	// reconstructing the Roshen major hysteresis loop on an H grid.
	RoshenMagneticFieldStrengthStep = 0.1

	// AmbientTemperatureNominal is used whenever a temperature-dependent
	// model is evaluated without an explicit ambient temperature (25 C).
	AmbientTemperatureNominal = 25.0

	// KelvinOffset converts Celsius to Kelvin.
	KelvinOffset = 273.15

	// RootFinderRelativeTolerance is the default relative-change
	// termination criterion for the bracketed root finder and the
	// AGM-based elliptic integral evaluator.
	RootFinderRelativeTolerance = 1e-4

	// RootFinderMaxBracketDoublings bounds the bracket-expansion phase of
	// the root finder before it gives up with RootNotFound.
	RootFinderMaxBracketDoublings = 60

	// MagnetizingInductanceGapSearchTolerance is the relative tolerance the
	// gapping solver must hit on L_target.
	MagnetizingInductanceGapSearchTolerance = 1e-3

	// HarmonicConsistencyTolerance bounds the relative disagreement allowed
	// between waveform, harmonics and processed descriptors derived from the
	// same sample in a single call.
	HarmonicConsistencyTolerance = 1e-6
)
