package coil

import (
	"testing"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBobbin() model.Bobbin {
	return model.Bobbin{
		Processed: &model.BobbinProcessedDescription{
			ColumnShape:     "round",
			ColumnWidth:     0.008,
			ColumnDepth:     0.008,
			ColumnThickness: 0.0005,
			WallThickness:   0.0005,
			WindingWindows:  []model.WindingWindow{testWindow()},
		},
	}
}

func TestWindRequiresProcessedBobbin(t *testing.T) {
	_, err := Wind(model.Bobbin{}, testFunctional(), Pattern{"primary"}, model.SectionContiguous, model.SectionOverlapping, model.AlignSpread, model.AlignSpread, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, merr.NotProcessed)
}

func TestWindPlacesAllTurns(t *testing.T) {
	functional := []model.CoilFunctionalDescription{
		{Name: "primary", Turns: 6, Parallels: 1, Wire: model.Wire{Type: model.WireRound, OuterDiameter: 1e-3, ConductingDiameter: 0.9e-3}},
	}
	coil, err := Wind(testBobbin(), functional, Pattern{"primary"}, model.SectionContiguous, model.SectionOverlapping, model.AlignSpread, model.AlignSpread, nil)
	require.NoError(t, err)
	assert.Len(t, coil.Turns, 6)
	for _, turn := range coil.Turns {
		assert.Greater(t, turn.Length, 0.0)
	}
}

func TestWindFailsWhenTurnsDoNotFit(t *testing.T) {
	functional := []model.CoilFunctionalDescription{
		{Name: "primary", Turns: 10000, Parallels: 1, Wire: model.Wire{Type: model.WireRound, OuterDiameter: 1e-3, ConductingDiameter: 0.9e-3}},
	}
	_, err := Wind(testBobbin(), functional, Pattern{"primary"}, model.SectionContiguous, model.SectionOverlapping, model.AlignSpread, model.AlignSpread, nil)
	assert.Error(t, err)
}

func TestDelimitAndCompactShrinksToPlacedTurns(t *testing.T) {
	functional := []model.CoilFunctionalDescription{
		{Name: "primary", Turns: 3, Parallels: 1, Wire: model.Wire{Type: model.WireRound, OuterDiameter: 1e-3, ConductingDiameter: 0.9e-3}},
	}
	coil, err := Wind(testBobbin(), functional, Pattern{"primary"}, model.SectionContiguous, model.SectionOverlapping, model.AlignSpread, model.AlignSpread, nil)
	require.NoError(t, err)
	require.Len(t, coil.Sections, 1)
	assert.LessOrEqual(t, coil.Sections[0].Height, testWindow().Height)
	assert.Greater(t, coil.Sections[0].Height, 0.0)
}
