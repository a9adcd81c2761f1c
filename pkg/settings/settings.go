// Package settings holds the process-wide configuration bag. It has an
// explicit init-then-read lifecycle, the same shape as a device or circuit
// parameter bag built once at startup: a plain struct built once by the
// caller (or by Default()) and then only read by every downstream package.
// There is no ambient global state; a *Settings is passed explicitly
// wherever it is needed.
package settings

// ReluctanceModel tags which fringing-factor family the
// reluctance/gap package should use.
type ReluctanceModel int

const (
	ReluctanceZhang ReluctanceModel = iota
	ReluctanceMcLyman
	ReluctancePartridge
	ReluctanceMuehlethaler
	ReluctanceClassic
	ReluctanceBalakrishnan
	ReluctanceEffectiveArea
	ReluctanceStenglein
)

func (r ReluctanceModel) String() string {
	switch r {
	case ReluctanceZhang:
		return "Zhang"
	case ReluctanceMcLyman:
		return "McLyman"
	case ReluctancePartridge:
		return "Partridge"
	case ReluctanceMuehlethaler:
		return "Muehlethaler"
	case ReluctanceClassic:
		return "Classic"
	case ReluctanceBalakrishnan:
		return "Balakrishnan"
	case ReluctanceEffectiveArea:
		return "EffectiveArea"
	case ReluctanceStenglein:
		return "Stenglein"
	default:
		return "Unknown"
	}
}

// CoreLossesModel tags one member of core-losses family.
type CoreLossesModel string

const (
	CoreLossesSteinmetz   CoreLossesModel = "Steinmetz"
	CoreLossesIGSE        CoreLossesModel = "iGSE"
	CoreLossesGSE         CoreLossesModel = "GSE"
	CoreLossesBarg        CoreLossesModel = "Barg"
	CoreLossesRoshen      CoreLossesModel = "Roshen"
	CoreLossesAlbach      CoreLossesModel = "Albach"
	CoreLossesNSE         CoreLossesModel = "NSE"
	CoreLossesMSE         CoreLossesModel = "MSE"
	CoreLossesLossFactor  CoreLossesModel = "LossFactor"
	CoreLossesProprietary CoreLossesModel = "Proprietary"
)

// Settings is the configuration surface the advisers and filters read from.
type Settings struct {
	UseToroidalCores  bool
	UseConcentricCores bool
	UseOnlyCoresInStock bool

	CoreAdviserIncludeStacks          bool
	CoreAdviserIncludeDistributedGaps bool

	WireAdviserIncludePlanar      bool
	WireAdviserIncludeFoil        bool
	WireAdviserIncludeRectangular bool
	WireAdviserIncludeLitz        bool
	WireAdviserIncludeRound       bool

	MagnetizingInductanceIncludeAirInductance bool

	CoilAdviserMaximumNumberWires uint32

	// CoreLossesModelNames is an ordered list of core-losses model names.
	// pkg/coreloss does not read it: it uses a material's PreferredModel
	// when that data is present, and otherwise the first declared loss data.
	CoreLossesModelNames []CoreLossesModel

	ReluctanceModel ReluctanceModel

	// CoreAdviserMaximumMagneticsAfterFiltering bounds the population kept
	// after the primary filter pass.
	CoreAdviserMaximumMagneticsAfterFiltering int
}

// Default returns the settings a fresh process would start with: every
// wire/core family enabled, the Zhang fringing-model tag, and the default
// core-losses model preference order below.
func Default() *Settings {
	return &Settings{
		UseToroidalCores:    true,
		UseConcentricCores:  true,
		UseOnlyCoresInStock: false,

		CoreAdviserIncludeStacks:          true,
		CoreAdviserIncludeDistributedGaps: true,

		WireAdviserIncludePlanar:      true,
		WireAdviserIncludeFoil:        true,
		WireAdviserIncludeRectangular: true,
		WireAdviserIncludeLitz:        true,
		WireAdviserIncludeRound:       true,

		MagnetizingInductanceIncludeAirInductance: false,

		CoilAdviserMaximumNumberWires: 3,

		CoreLossesModelNames: []CoreLossesModel{
			CoreLossesProprietary,
			CoreLossesIGSE,
			CoreLossesSteinmetz,
			CoreLossesLossFactor,
		},

		ReluctanceModel: ReluctanceZhang,

		CoreAdviserMaximumMagneticsAfterFiltering: 50,
	}
}
