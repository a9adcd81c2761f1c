package windingadviser

import (
	"testing"

	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoWindingMas(primaryRMS, secondaryRMS float64) model.Mas {
	return model.Mas{
		Inputs: model.Inputs{
			DesignRequirements: model.DesignRequirement{
				IsolationSides: []model.IsolationSide{model.IsolationPrimary, model.IsolationSecondary},
			},
			OperatingPoints: []model.OperatingPoint{
				{
					Excitations: []model.OperatingPointExcitation{
						{
							Frequency: 1e5,
							Voltage:   &model.SignalDescriptor{Processed: &model.Processed{RMS: 10}},
							Current:   &model.SignalDescriptor{Processed: &model.Processed{RMS: primaryRMS}},
						},
						{
							Frequency: 1e5,
							Voltage:   &model.SignalDescriptor{Processed: &model.Processed{RMS: 5}},
							Current:   &model.SignalDescriptor{Processed: &model.Processed{RMS: secondaryRMS}},
						},
					},
				},
			},
		},
	}
}

func TestPowerSharesSumToOne(t *testing.T) {
	shares, err := PowerShares(twoWindingMas(1, 2))
	require.NoError(t, err)
	var total float64
	for _, s := range shares {
		total += s
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestPowerSharesReflectsRelativeLoad(t *testing.T) {
	shares, err := PowerShares(twoWindingMas(10, 1))
	require.NoError(t, err)
	assert.Greater(t, shares[string(model.IsolationPrimary)], shares[string(model.IsolationSecondary)])
}

func TestPowerSharesClampsToMinimum(t *testing.T) {
	shares, err := PowerShares(twoWindingMas(1000, 0.001))
	require.NoError(t, err)
	// The secondary is clamped up to minimumShare, then renormalised along
	// with the ~1.0 primary share: 0.05 / 1.05.
	assert.InDelta(t, minimumShare/(1+minimumShare), shares[string(model.IsolationSecondary)], 1e-6)
}

func TestPowerSharesUsesWaveformWhenPresent(t *testing.T) {
	mas := twoWindingMas(1, 1)
	mas.Inputs.OperatingPoints[0].Excitations[0].Voltage.Waveform = &model.Waveform{Data: []float64{10, 10, 10, 10}}
	mas.Inputs.OperatingPoints[0].Excitations[0].Current.Waveform = &model.Waveform{Data: []float64{3, 3, 3, 3}}
	shares, err := PowerShares(mas)
	require.NoError(t, err)
	assert.Greater(t, shares[string(model.IsolationPrimary)], 0.0)
}

func TestPowerSharesRejectsEmptyOperatingPoints(t *testing.T) {
	mas := model.Mas{Inputs: model.Inputs{DesignRequirements: model.DesignRequirement{
		IsolationSides: []model.IsolationSide{model.IsolationPrimary},
	}}}
	_, err := PowerShares(mas)
	assert.Error(t, err)
}
