package filter

import "github.com/openmagnetics-go/mkf/pkg/model"

func testMaterial() model.CoreMaterial {
	return model.CoreMaterial{
		Name:   "3C97",
		Family: model.MaterialFerrite,
		Saturation: []model.SaturationPoint{
			{MagneticFluxDensity: 0.4, MagneticField: 400, Temperature: 25},
		},
		Permeability: model.InitialPermeability{Value: 2000},
		Resistivity:  []model.ResistivityPoint{{Value: 5, Temperature: 25}},
		VolumetricLosses: []model.VolumetricLossesData{
			{
				Method: model.MethodSteinmetz,
				SteinmetzRanges: []model.SteinmetzRange{
					{MinimumFrequency: 0, MaximumFrequency: 1e9, K: 1, Alpha: 1.3, Beta: 2.5},
				},
			},
		},
	}
}

func testCore() model.Core {
	return model.Core{
		Type:     model.CoreTwoPieceSet,
		Material: testMaterial(),
		Processed: &model.CoreProcessedDescription{
			Columns: []model.CoreColumn{
				{Type: "central", Area: 1e-4, Height: 0.02},
				{Type: "lateral", Area: 5e-5, Height: 0.025},
				{Type: "lateral", Area: 5e-5, Height: 0.025},
			},
			WindingWindows: []model.WindingWindow{
				{Height: 0.02, Width: 0.01, Area: 2e-4},
			},
			EffectiveArea:   1e-4,
			EffectiveLength: 0.06,
			EffectiveVolume: 6e-6,
			Height:          0.03,
			Width:           0.03,
			Depth:           0.02,
			Mass:            0.03,
		},
	}
}

func testMagnetic() model.Magnetic {
	return model.Magnetic{Core: testCore()}
}

func sinusoidalOperatingPoints(peak, rms, frequency float64) []model.OperatingPoint {
	data := make([]float64, 8)
	for i := range data {
		data[i] = peak * float64(i%2*2-1)
	}
	return []model.OperatingPoint{
		{
			Excitations: []model.OperatingPointExcitation{
				{
					Frequency: frequency,
					Current: &model.SignalDescriptor{
						Waveform:  &model.Waveform{Data: data},
						Processed: &model.Processed{Peak: peak, RMS: rms},
					},
				},
			},
		},
	}
}

func testRequirement() model.DesignRequirement {
	return model.DesignRequirement{
		MagnetizingInductance: model.Fixed(1e-3),
	}
}
