package model

// DesignRequirement is the set of target constraints a design must satisfy.
type DesignRequirement struct {
	MagnetizingInductance BoundedValue
	TurnsRatios           []BoundedValue
	IsolationSides        []IsolationSide
	Insulation            InsulationRequirements
	MaximumDimensions     *Dimensions
	MinimumImpedance      []ImpedancePoint
}

// Dimensions is a height/width/depth envelope, used both by DesignRequirement
// and by the Core's processed description.
type Dimensions struct {
	Height float64
	Width  float64
	Depth  float64
}

// ImpedancePoint is one declared (frequency, minimum |Z|) band for the
// MinimumImpedance filter.
type ImpedancePoint struct {
	Frequency        float64
	MinimumImpedance float64
}

// Inputs is top-level Inputs: {design-requirements,
// operating-points[]}.
type Inputs struct {
	DesignRequirements DesignRequirement
	OperatingPoints    []OperatingPoint
}
