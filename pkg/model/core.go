package model

// CoreShapeFamily is the closed set of named geometric archetypes a core
// shape can belong to.
type CoreShapeFamily string

const (
	FamilyE       CoreShapeFamily = "E"
	FamilyETD     CoreShapeFamily = "ETD"
	FamilyEP      CoreShapeFamily = "EP"
	FamilyEC      CoreShapeFamily = "EC"
	FamilyEFD     CoreShapeFamily = "EFD"
	FamilyER      CoreShapeFamily = "ER"
	FamilyETX     CoreShapeFamily = "ETX"
	FamilyPQ      CoreShapeFamily = "PQ"
	FamilyPM      CoreShapeFamily = "PM"
	FamilyRM      CoreShapeFamily = "RM"
	FamilyU       CoreShapeFamily = "U"
	FamilyUR      CoreShapeFamily = "UR"
	FamilyUI      CoreShapeFamily = "UI"
	FamilyT       CoreShapeFamily = "T"
	FamilyC       CoreShapeFamily = "C"
	FamilyPlanarE CoreShapeFamily = "PLANAR_E"
	FamilyEQ      CoreShapeFamily = "EQ"
)

// MagneticCircuitType distinguishes a closed magnetic path (toroid, most
// two-piece sets when ungapped) from an open one.
type MagneticCircuitType int

const (
	CircuitClosed MagneticCircuitType = iota
	CircuitOpen
)

// CoreShape is the named dimensional record for a core geometry.
type CoreShape struct {
	Name           string
	Aliases        []string
	Family         CoreShapeFamily
	FamilySubtype  string
	MagneticCircuit MagneticCircuitType
	Dimensions     map[string]BoundedValue
}

// MaterialFamily is the broad class of magnetic material.
type MaterialFamily string

const (
	MaterialFerrite        MaterialFamily = "ferrite"
	MaterialPowder         MaterialFamily = "powder"
	MaterialAmorphous      MaterialFamily = "amorphous"
	MaterialNanocrystalline MaterialFamily = "nanocrystalline"
	MaterialSiliconSteel   MaterialFamily = "silicon-steel"
)

// SaturationPoint is one (B_sat, H_sat, T) entry.
type SaturationPoint struct {
	MagneticFluxDensity float64
	MagneticField       float64
	Temperature         float64
}

// ResistivityPoint is one (rho, T) entry.
type ResistivityPoint struct {
	Value       float64
	Temperature float64
}

// PermeabilityModifierMethod selects how a temperature/DC-bias/frequency
// factor is evaluated.
type PermeabilityModifierMethod int

const (
	ModifierMagnetics PermeabilityModifierMethod = iota
	ModifierTabulated
)

// PermeabilityModifier is one factor (temperature, DC bias, or frequency)
// of the initial-permeability model.
type PermeabilityModifier struct {
	Method PermeabilityModifierMethod
	// Polynomial coefficients a..e (order 0..4), used when Method ==
	// ModifierMagnetics, or the Magnetics DC-bias {a,b,c} triple packed
	// into the first three entries.
	Polynomial []float64
	// TableX/TableY are used when Method == ModifierTabulated.
	TableX []float64
	TableY []float64
}

// InitialPermeability bundles the permeability value and its optional
// temperature/DC-bias/frequency modifiers.
type InitialPermeability struct {
	Value           float64
	Temperature     *PermeabilityModifier
	DCBias          *PermeabilityModifier
	Frequency       *PermeabilityModifier
}

// CoreLossesMethod names one core-losses implementation plus the data it needs.
type CoreLossesMethod string

const (
	MethodSteinmetz   CoreLossesMethod = "Steinmetz"
	MethodIGSE        CoreLossesMethod = "iGSE"
	MethodGSE         CoreLossesMethod = "GSE"
	MethodBarg        CoreLossesMethod = "Barg"
	MethodRoshen      CoreLossesMethod = "Roshen"
	MethodAlbach      CoreLossesMethod = "Albach"
	MethodNSE         CoreLossesMethod = "NSE"
	MethodMSE         CoreLossesMethod = "MSE"
	MethodLossFactor  CoreLossesMethod = "LossFactor"
	MethodProprietary CoreLossesMethod = "Proprietary"
)

// SteinmetzRange is one frequency-segmented {k, alpha, beta} triple with
// optional temperature coefficients.
type SteinmetzRange struct {
	MinimumFrequency float64
	MaximumFrequency float64
	K                float64
	Alpha            float64
	Beta             float64
	CT0, CT1, CT2    *float64 // temperature coefficients: tau(T) = c0 - c1*T + c2*T^2
}

// RoshenData is the coefficient set the Roshen model needs beyond
// resistivity.
type RoshenData struct {
	ExcessEddyCoefficient float64 // alpha * N0
	MajorLoopBTop         []float64
	MajorLoopBBottom      []float64
	MajorLoopH            []float64
}

// VolumetricLossesData is the per-method data the material carries.
type VolumetricLossesData struct {
	Method          CoreLossesMethod
	SteinmetzRanges []SteinmetzRange
	Roshen          *RoshenData
	ProprietaryFormula string
	LossTangent     *PermeabilityModifier // tan(delta) vs frequency/temperature, for LossFactor
}

// CoreMaterial is the named magnetic material record.
type CoreMaterial struct {
	Name               string
	Family             MaterialFamily
	ManufacturerName   string
	Type               string
	Saturation         []SaturationPoint
	Permeability       InitialPermeability
	VolumetricLosses   []VolumetricLossesData // empty if the material uses mass losses instead
	MassLosses         []VolumetricLossesData
	Resistivity        []ResistivityPoint
	CurieTemperature   *float64
	Remanence          *float64
	CoerciveForce      *float64
	PreferredModel     *CoreLossesMethod
}

// CoreType distinguishes a one-piece toroid from a gapped two-piece set.
type CoreType int

const (
	CoreToroidal CoreType = iota
	CoreTwoPieceSet
)

// GapType is CoreGap.Type.
type GapType int

const (
	GapResidual GapType = iota
	GapAdditive
	GapSubtractive
	GapDistributed
)

// CoreGap is one gap in a core's magnetic path.
type CoreGap struct {
	Type                         GapType
	Length                       float64
	Area                         *float64
	CoordinatesXYZ               *[3]float64
	ClosestNormalSurfaceDistance  *float64
	ClosestParallelSurfaceDistance *float64
}

// WindingWindow describes one usable winding cavity of a processed core.
type WindingWindow struct {
	Height  float64
	Width   float64
	Area    float64
	CoordinatesXYZ [3]float64
	// Radius and AngularHeight are set instead of Height/Width for toroidal
	// winding windows.
	Radius        *float64
	AngularHeight *float64
}

// CoreColumn is one processed magnetic-path column (central or lateral).
type CoreColumn struct {
	Type   string // "central" or "lateral"
	Area   float64
	Depth  float64
	Height float64
	Width  float64
	CoordinatesXYZ [3]float64
}

// CoreProcessedDescription is the derived geometry: effective area/length/
// volume plus the column/window decomposition.
type CoreProcessedDescription struct {
	Columns           []CoreColumn
	WindingWindows    []WindingWindow
	EffectiveArea     float64
	EffectiveLength   float64
	EffectiveVolume   float64
	MinimumArea       float64
	Height            float64
	Width             float64
	Depth             float64
	Mass              float64
}

// Core is the core entity: functional description plus the processed
// description reluctance and inductance derive from it.
type Core struct {
	Type     CoreType
	Shape    CoreShape
	Material CoreMaterial
	Gapping  []CoreGap
	Stacks   int

	Processed *CoreProcessedDescription
}
