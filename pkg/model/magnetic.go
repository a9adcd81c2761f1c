package model

// ManufacturerInfo is free-form provenance attached to a Magnetic.
type ManufacturerInfo struct {
	Name      string
	Reference string
}

// Magnetic is the core+coil pairing that physical simulations target.
type Magnetic struct {
	Core             Core
	Coil             Coil
	ManufacturerInfo *ManufacturerInfo
}

// WindingLossesOutput is the per-winding, per-turn ohmic loss result.
type WindingLossesOutput struct {
	WindingLosses     []float64 // per winding, indexed like Coil.FunctionalDescription
	TurnLosses        []float64 // per turn, indexed like Coil.Turns
	DCResistancePerWinding []float64
	EffectiveResistancePerTurn []float64
	DividedCurrents   []float64 // per turn, current-divider result
}

// Output is per-operating-point Outputs.
type Output struct {
	CoreLosses             float64
	WindingLosses          WindingLossesOutput
	MagnetizingInductance  BoundedValue
	LeakageInductance      *BoundedValue
	MagneticFluxDensity    SignalDescriptor
	TemperatureRise        *float64
	Impedance              []ImpedanceResult
}

// ImpedanceResult pairs a frequency with the complex impedance magnitude
// and phase the MinimumImpedance filter and impedance reporting consume.
type ImpedanceResult struct {
	Frequency float64
	Magnitude float64
	PhaseDegrees float64
}

// Mas is Magnetic Analysis Specification.
type Mas struct {
	Inputs   Inputs
	Magnetic Magnetic
	Outputs  []Output // Outputs[i] corresponds to Inputs.OperatingPoints[i]

	// Reference records, for adviser results, a {pattern, repetitions,
	// insulation choice, wire index} provenance string identifying which
	// candidate combination produced this design.
	Reference string
}
