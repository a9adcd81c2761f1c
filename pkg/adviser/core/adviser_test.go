package coreadviser

import (
	"testing"

	"github.com/openmagnetics-go/mkf/pkg/advlog"
	"github.com/openmagnetics-go/mkf/pkg/catalog"
	"github.com/openmagnetics-go/mkf/pkg/filter"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/openmagnetics-go/mkf/pkg/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settingsWithoutToroids() *settings.Settings {
	s := settings.Default()
	s.UseToroidalCores = false
	return s
}

type mockProvider struct {
	shapes    []model.CoreShape
	materials []model.CoreMaterial
}

func (p mockProvider) CoreShapes() []model.CoreShape                       { return p.shapes }
func (p mockProvider) CoreMaterials() []model.CoreMaterial                 { return p.materials }
func (p mockProvider) Wires() []model.Wire                                 { return nil }
func (p mockProvider) Bobbins() []model.Bobbin                             { return nil }
func (p mockProvider) InsulationMaterials() []catalog.InsulationMaterial   { return nil }
func (p mockProvider) WireMaterials() []catalog.WireMaterial               { return nil }

func testFacade() *catalog.Facade {
	material := model.CoreMaterial{
		Name:         "3C97",
		Family:       model.MaterialFerrite,
		Permeability: model.InitialPermeability{Value: 2000},
		Saturation: []model.SaturationPoint{
			{MagneticFluxDensity: 0.4, MagneticField: 400, Temperature: 25},
		},
		Resistivity: []model.ResistivityPoint{{Value: 5, Temperature: 25}},
		VolumetricLosses: []model.VolumetricLossesData{
			{
				Method: model.MethodSteinmetz,
				SteinmetzRanges: []model.SteinmetzRange{
					{MinimumFrequency: 0, MaximumFrequency: 1e9, K: 1, Alpha: 1.3, Beta: 2.5},
				},
			},
		},
	}
	return catalog.NewFacade(mockProvider{
		shapes:    []model.CoreShape{etdShape(), toroidShape()},
		materials: []model.CoreMaterial{material},
	})
}

func testInputs() model.Inputs {
	frequency := 1e5
	return model.Inputs{
		DesignRequirements: model.DesignRequirement{
			MagnetizingInductance: model.Fixed(1e-3),
			IsolationSides:        []model.IsolationSide{model.IsolationPrimary},
		},
		OperatingPoints: []model.OperatingPoint{
			{
				Conditions: model.OperatingPointConditions{AmbientTemperature: 25},
				Excitations: []model.OperatingPointExcitation{
					{
						Frequency: frequency,
						Current: &model.SignalDescriptor{
							Waveform:  &model.Waveform{Data: []float64{1, -1, 1, -1, 1, -1, 1, -1}},
							Processed: &model.Processed{Peak: 1, RMS: 0.707},
						},
					},
				},
			},
		},
	}
}

func TestAdviseReturnsRankedResults(t *testing.T) {
	req := Request{
		Inputs: testInputs(),
		Weights: map[filter.Name]float64{
			filter.AreaProduct: 1,
			filter.Dimensions:  0.5,
		},
		MaximumResults: 5,
		Log:            advlog.New(),
	}
	results, err := Advise(testFacade(), req)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(results), 5)
	for _, r := range results {
		assert.NotEmpty(t, r.Reference)
	}
}

func TestAdviseRejectsAllZeroWeights(t *testing.T) {
	req := Request{
		Inputs:  testInputs(),
		Weights: map[filter.Name]float64{},
	}
	_, err := Advise(testFacade(), req)
	assert.Error(t, err)
}

func TestAdviseWithAirInductanceStillProducesResults(t *testing.T) {
	s := settings.Default()
	s.MagnetizingInductanceIncludeAirInductance = true
	req := Request{
		Inputs: testInputs(),
		Weights: map[filter.Name]float64{
			filter.AreaProduct: 1,
		},
		Settings:       s,
		MaximumResults: 5,
	}
	results, err := Advise(testFacade(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, results)
	for _, r := range results {
		assert.NotEmpty(t, r.Magnetic.Coil.FunctionalDescription)
	}
}

func TestAdviseRespectsToroidalExclusion(t *testing.T) {
	s := settingsWithoutToroids()
	req := Request{
		Inputs: testInputs(),
		Weights: map[filter.Name]float64{
			filter.AreaProduct: 1,
		},
		Settings:       s,
		MaximumResults: 10,
	}
	results, err := Advise(testFacade(), req)
	require.NoError(t, err)
	for _, r := range results {
		assert.NotEqual(t, model.CoreToroidal, r.Magnetic.Core.Type)
	}
}
