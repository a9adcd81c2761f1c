package coil

import (
	"testing"

	"github.com/openmagnetics-go/mkf/pkg/catalog"
	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	wires []model.Wire
}

func (p fakeProvider) CoreShapes() []model.CoreShape                      { return nil }
func (p fakeProvider) CoreMaterials() []model.CoreMaterial                { return nil }
func (p fakeProvider) Wires() []model.Wire                                { return p.wires }
func (p fakeProvider) Bobbins() []model.Bobbin                            { return nil }
func (p fakeProvider) InsulationMaterials() []catalog.InsulationMaterial  { return nil }
func (p fakeProvider) WireMaterials() []catalog.WireMaterial              { return nil }

func testWires() []model.Wire {
	return []model.Wire{
		{Name: "awg20", Type: model.WireRound, ConductingDiameter: 0.812e-3, OuterDiameter: 0.9e-3},
		{Name: "awg24", Type: model.WireRound, ConductingDiameter: 0.511e-3, OuterDiameter: 0.6e-3},
		{Name: "awg30", Type: model.WireRound, ConductingDiameter: 0.255e-3, OuterDiameter: 0.3e-3},
	}
}

func TestAdviseWiresReturnsRankedCandidates(t *testing.T) {
	facade := catalog.NewFacade(fakeProvider{wires: testWires()})
	req := WireAdviserRequest{
		WindingName:           "primary",
		RMSCurrent:            1.0,
		EffectiveFrequency:    1e5,
		Resistivity:           1.7e-8,
		MaximumCurrentDensity: 5e6,
		MaximumParallels:      4,
		MaximumResults:        2,
	}
	candidates, err := AdviseWires(facade, 10, req)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(candidates), 2)
	for _, c := range candidates {
		assert.Equal(t, "primary", c.Description.Name)
		assert.Equal(t, 10, c.Description.Turns)
		assert.GreaterOrEqual(t, c.Description.Parallels, 1)
	}
	if len(candidates) == 2 {
		assert.GreaterOrEqual(t, candidates[0].Score, candidates[1].Score)
	}
}

func TestAdviseWiresFailsWhenNoneFit(t *testing.T) {
	facade := catalog.NewFacade(fakeProvider{wires: testWires()})
	req := WireAdviserRequest{
		WindingName:           "primary",
		RMSCurrent:            100,
		EffectiveFrequency:    1e5,
		Resistivity:           1.7e-8,
		MaximumCurrentDensity: 5e6,
		MaximumParallels:      1,
	}
	_, err := AdviseWires(facade, 10, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, merr.NoWireFits)
}

func TestAdviseWiresRejectsNonPositiveCurrent(t *testing.T) {
	facade := catalog.NewFacade(fakeProvider{wires: testWires()})
	req := WireAdviserRequest{RMSCurrent: 0, MaximumCurrentDensity: 1}
	_, err := AdviseWires(facade, 10, req)
	assert.Error(t, err)
}
