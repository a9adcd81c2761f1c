package windingadviser

import (
	"testing"

	"github.com/openmagnetics-go/mkf/pkg/catalog"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProvider struct {
	wires []model.Wire
}

func (p mockProvider) CoreShapes() []model.CoreShape                       { return nil }
func (p mockProvider) CoreMaterials() []model.CoreMaterial                 { return nil }
func (p mockProvider) Wires() []model.Wire                                 { return p.wires }
func (p mockProvider) Bobbins() []model.Bobbin                             { return nil }
func (p mockProvider) InsulationMaterials() []catalog.InsulationMaterial   { return nil }
func (p mockProvider) WireMaterials() []catalog.WireMaterial               { return nil }

func testWires() []model.Wire {
	return []model.Wire{
		{Name: "AWG26", Type: model.WireRound, OuterDiameter: 0.45e-3, ConductingDiameter: 0.40e-3},
		{Name: "AWG24", Type: model.WireRound, OuterDiameter: 0.55e-3, ConductingDiameter: 0.51e-3},
	}
}

func testFacade() *catalog.Facade {
	return catalog.NewFacade(mockProvider{wires: testWires()})
}

func testProcessedCore() model.CoreProcessedDescription {
	return model.CoreProcessedDescription{
		Columns: []model.CoreColumn{
			{Type: "central", Area: 1e-4, Height: 0.02, Width: 0.01, Depth: 0.01},
		},
		WindingWindows: []model.WindingWindow{
			{Width: 0.012, Height: 0.025},
		},
		EffectiveArea: 1e-4,
	}
}

func testMagnetic() model.Magnetic {
	core := testProcessedCore()
	return model.Magnetic{
		Core: model.Core{
			Shape:     model.CoreShape{Name: "ETD 29"},
			Processed: &core,
		},
		Coil: model.Coil{
			FunctionalDescription: []model.CoilFunctionalDescription{
				{Name: "primary", IsolationSide: model.IsolationPrimary, Turns: 10, Parallels: 1},
				{Name: "secondary", IsolationSide: model.IsolationSecondary, Turns: 5, Parallels: 1},
			},
		},
	}
}

func testInputs() model.Inputs {
	return model.Inputs{
		DesignRequirements: model.DesignRequirement{
			IsolationSides: []model.IsolationSide{model.IsolationPrimary, model.IsolationSecondary},
		},
		OperatingPoints: []model.OperatingPoint{
			{
				Excitations: []model.OperatingPointExcitation{
					{Frequency: 1e5, Current: &model.SignalDescriptor{Processed: &model.Processed{RMS: 0.5}}},
					{Frequency: 1e5, Current: &model.SignalDescriptor{Processed: &model.Processed{RMS: 1.0}}},
				},
			},
		},
	}
}

func TestAdviseProducesWoundResults(t *testing.T) {
	req := Request{
		Inputs:             testInputs(),
		Magnetic:           testMagnetic(),
		SectionOrientation: model.SectionContiguous,
		LayersOrientation:  model.SectionOverlapping,
		SectionAlignment:   model.AlignSpread,
		TurnsAlignment:     model.AlignSpread,
		MaximumResults:     5,
	}
	results, err := Advise(testFacade(), req)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		assert.NotEmpty(t, r.Magnetic.Coil.Turns)
		assert.NotEmpty(t, r.Reference)
	}
}

func TestAdviseRejectsMagneticWithoutFunctionalDescription(t *testing.T) {
	magnetic := testMagnetic()
	magnetic.Coil.FunctionalDescription = nil
	req := Request{Inputs: testInputs(), Magnetic: magnetic}
	_, err := Advise(testFacade(), req)
	assert.Error(t, err)
}

func TestAdviseRejectsMissingCurrent(t *testing.T) {
	inputs := testInputs()
	inputs.OperatingPoints[0].Excitations[0].Current = nil
	req := Request{Inputs: inputs, Magnetic: testMagnetic()}
	_, err := Advise(testFacade(), req)
	assert.Error(t, err)
}
