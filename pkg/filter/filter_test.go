package filter

import (
	"testing"

	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeMinMax(t *testing.T) {
	out := Normalize([]float64{1, 2, 3}, Weighting{Weight: 1})
	assert.InDelta(t, 0, out[0], 1e-12)
	assert.InDelta(t, 0.5, out[1], 1e-12)
	assert.InDelta(t, 1, out[2], 1e-12)
}

func TestNormalizeInvert(t *testing.T) {
	out := Normalize([]float64{1, 2, 3}, Weighting{Weight: 1, Invert: true})
	assert.InDelta(t, 1, out[0], 1e-12)
	assert.InDelta(t, 0, out[2], 1e-12)
}

func TestNormalizeWeightScales(t *testing.T) {
	out := Normalize([]float64{1, 2, 3}, Weighting{Weight: 2})
	assert.InDelta(t, 2.0, out[2], 1e-12)
}

func TestNormalizeDegeneratePopulation(t *testing.T) {
	out := Normalize([]float64{5, 5, 5}, Weighting{Weight: 1})
	for _, v := range out {
		assert.InDelta(t, 0, v, 1e-12)
	}
}

func TestSortDescendingBreaksTiesByInputOrder(t *testing.T) {
	named := func(name string) model.Magnetic {
		return model.Magnetic{Core: model.Core{Shape: model.CoreShape{Name: name}}}
	}
	ranked := []Ranked{{Score: 1, Magnetic: named("first")}, {Score: 2}, {Score: 1, Magnetic: named("third")}}
	SortDescending(ranked)
	assert.Equal(t, 2.0, ranked[0].Score)
	assert.Equal(t, 1.0, ranked[1].Score)
	assert.Equal(t, 1.0, ranked[2].Score)
	assert.Equal(t, "first", ranked[1].Magnetic.Core.Shape.Name)
	assert.Equal(t, "third", ranked[2].Magnetic.Core.Shape.Name)
}
