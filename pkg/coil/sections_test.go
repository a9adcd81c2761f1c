package coil

import (
	"testing"

	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFunctional() []model.CoilFunctionalDescription {
	wire := model.Wire{Type: model.WireRound, OuterDiameter: 0.5e-3, ConductingDiameter: 0.45e-3}
	return []model.CoilFunctionalDescription{
		{Name: "primary", Turns: 10, Parallels: 1, Wire: wire},
		{Name: "secondary", Turns: 5, Parallels: 1, Wire: wire},
	}
}

func testWindow() model.WindingWindow {
	return model.WindingWindow{Width: 0.01, Height: 0.02, CoordinatesXYZ: [3]float64{0, 0, 0}}
}

func TestPlanSectionsContiguousSplitsHeight(t *testing.T) {
	sections, err := PlanSections(testWindow(), Pattern{"primary", "secondary"}, testFunctional(), model.SectionContiguous, model.AlignSpread, nil)
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.InDelta(t, testWindow().Height, sections[0].Height+sections[1].Height, 1e-12)
	for _, s := range sections {
		assert.InDelta(t, testWindow().Width, s.Width, 1e-12)
	}
}

func TestPlanSectionsOverlappingSplitsWidth(t *testing.T) {
	sections, err := PlanSections(testWindow(), Pattern{"primary", "secondary"}, testFunctional(), model.SectionOverlapping, model.AlignSpread, nil)
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.InDelta(t, testWindow().Width, sections[0].Width+sections[1].Width, 1e-12)
	for _, s := range sections {
		assert.InDelta(t, testWindow().Height, s.Height, 1e-12)
	}
}

func TestPlanSectionsRejectsUnknownWindingInPattern(t *testing.T) {
	_, err := PlanSections(testWindow(), Pattern{"tertiary"}, testFunctional(), model.SectionContiguous, model.AlignSpread, nil)
	assert.Error(t, err)
}

func TestPlanSectionsRejectsEmptyPattern(t *testing.T) {
	_, err := PlanSections(testWindow(), nil, testFunctional(), model.SectionContiguous, model.AlignSpread, nil)
	assert.Error(t, err)
}

func TestAdjacencyGraphConnectsConsecutiveSections(t *testing.T) {
	sections, err := PlanSections(testWindow(), Pattern{"primary", "secondary"}, testFunctional(), model.SectionContiguous, model.AlignSpread, nil)
	require.NoError(t, err)
	g, err := AdjacencyGraph(sections)
	require.NoError(t, err)
	assert.True(t, g.HasEdge(sections[0].Name, sections[1].Name))
}
