package reluctance

import (
	"testing"

	"github.com/openmagnetics-go/mkf/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallGapGeometry() FringingGeometry {
	return FringingGeometry{GapLength: 1e-4, GapArea: 1e-4}
}

func TestFringingFactorRejectsNonPositiveGeometry(t *testing.T) {
	_, err := FringingFactor(FringingClassic, FringingGeometry{GapLength: 0, GapArea: 1e-4})
	assert.Error(t, err)
}

func TestFringingFactorRejectsUnknownModel(t *testing.T) {
	_, err := FringingFactor(FringingModel("bogus"), smallGapGeometry())
	assert.Error(t, err)
}

func TestFringingFactorNeverGoesBelowOne(t *testing.T) {
	for _, m := range []FringingModel{
		FringingZhang, FringingMcLyman, FringingPartridge, FringingMuehlethaler,
		FringingClassic, FringingBalakrishnan, FringingEffectiveArea, FringingStenglein,
	} {
		f, err := FringingFactor(m, smallGapGeometry())
		require.NoErrorf(t, err, "model %s", m)
		assert.GreaterOrEqualf(t, f, 1.0, "model %s returned %v", m, f)
	}
}

func TestFringingStengleinConvergesToBalakrishnanForSmallGaps(t *testing.T) {
	g := smallGapGeometry() // gap << equivalent radius: elliptic modulus near 0
	stenglein, err := FringingFactor(FringingStenglein, g)
	require.NoError(t, err)
	balakrishnan, err := FringingFactor(FringingBalakrishnan, g)
	require.NoError(t, err)
	assert.InDelta(t, balakrishnan, stenglein, 1e-3)
}

func TestFringingStengleinExceedsBalakrishnanForWideGaps(t *testing.T) {
	g := FringingGeometry{GapLength: 5e-3, GapArea: 1e-4} // gap comparable to equivalent radius
	stenglein, err := FringingFactor(FringingStenglein, g)
	require.NoError(t, err)
	balakrishnan, err := FringingFactor(FringingBalakrishnan, g)
	require.NoError(t, err)
	assert.Greater(t, stenglein, balakrishnan)
}

func TestFringingDistributedClampsToConfiguredRange(t *testing.T) {
	g := smallGapGeometry()
	g.Distributed = true
	f, err := FringingFactor(FringingClassic, g)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, f, constants.MinimumDistributedFringingFactor)
	assert.LessOrEqual(t, f, constants.MaximumDistributedFringingFactor)
}
