package model

// WaveformLabel is the closed set of shapes the signal processor
// recognizes.
type WaveformLabel int

const (
	LabelUnknown WaveformLabel = iota
	LabelSinusoidal
	LabelTriangular
	LabelSquare
	LabelSquareWithDeadTime
	LabelRectangular
	LabelCustom
)

// Waveform is an ordered sequence of (time, value) samples, or an
// equidistant value series when Time is nil. Invariant: time must be
// strictly nondecreasing; for the equidistant form used by the harmonic
// analyser len(Data) must be a power of two.
type Waveform struct {
	Time []float64 // nil for an equidistant series
	Data []float64
}

// Harmonics holds parallel amplitude/frequency arrays with Frequencies[0]=0
// and Amplitudes[0] the DC term.
type Harmonics struct {
	Amplitudes  []float64
	Frequencies []float64
}

// Processed is the scalar descriptor derived from a sampled waveform.
type Processed struct {
	Label                WaveformLabel
	Offset               float64
	Peak                 float64
	PeakToPeak           float64
	RMS                  float64
	THD                  float64
	EffectiveFrequency   float64
	ACEffectiveFrequency float64
	DutyCycle            *float64
}

// SignalDescriptor is {waveform?, harmonics?, processed?}; at
// least one field must be non-nil.
type SignalDescriptor struct {
	Waveform  *Waveform
	Harmonics *Harmonics
	Processed *Processed
}

// OperatingPointExcitation is one winding's excitation within an operating
// point.
type OperatingPointExcitation struct {
	Frequency         float64
	Current           *SignalDescriptor
	Voltage           *SignalDescriptor
	MagnetizingCurrent *SignalDescriptor
}

// OperatingPointConditions carries the ambient environment an operating
// point is evaluated under.
type OperatingPointConditions struct {
	AmbientTemperature float64
	Cooling            *string
}

// OperatingPoint is {conditions, excitations-per-winding[]}.
type OperatingPoint struct {
	Conditions  OperatingPointConditions
	Excitations []OperatingPointExcitation
}
