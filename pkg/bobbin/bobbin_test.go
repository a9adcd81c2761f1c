package bobbin

import (
	"testing"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillingFactorAnchors(t *testing.T) {
	low, err := FillingFactor(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.377, low, 1e-9)

	high, err := FillingFactor(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.738, high, 1e-9)
}

func TestFillingFactorClampsOutOfRange(t *testing.T) {
	v, err := FillingFactor(-1, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.738/2+0.377/2, v, 1e-9)
}

func TestQuickRequiresProcessedWindingWindow(t *testing.T) {
	_, err := Quick(model.CoreProcessedDescription{})
	require.Error(t, err)
	assert.ErrorIs(t, err, merr.NotProcessed)
}

func TestQuickTwoPieceSetShrinksUsableArea(t *testing.T) {
	core := model.CoreProcessedDescription{
		Columns: []model.CoreColumn{{Width: 0.01, Depth: 0.01}},
		WindingWindows: []model.WindingWindow{
			{Width: 0.02, Height: 0.03},
		},
	}
	result, err := Quick(core)
	require.NoError(t, err)
	require.Len(t, result.WindingWindows, 1)
	assert.Less(t, result.WindingWindows[0].Width, core.WindingWindows[0].Width)
	assert.Less(t, result.WindingWindows[0].Height, core.WindingWindows[0].Height)
	assert.Greater(t, result.WallThickness, 0.0)
}

func TestQuickToroidalKeepsBareWindow(t *testing.T) {
	radius := 0.01
	core := model.CoreProcessedDescription{
		WindingWindows: []model.WindingWindow{{Radius: &radius}},
	}
	result, err := Quick(core)
	require.NoError(t, err)
	assert.Equal(t, "toroidal", result.ColumnShape)
	assert.Equal(t, 0.0, result.WallThickness)
}
