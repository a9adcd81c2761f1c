package coreloss

import (
	"fmt"
	"math"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/openmagnetics-go/mkf/pkg/tempcoef"
)

// roshenLosses sums the three Roshen contributions:
// hysteresis (major-loop area rescaled to the operating flux excursion),
// classical eddy current (quadratic in f*B/rho), and excess eddy current
// (proportional to (f*B)^1.5/rho, scaled by alpha*N0).
func roshenLosses(data *model.RoshenData, resistivityPoints []model.ResistivityPoint, excitation model.OperatingPointExcitation, temperature float64) (float64, error) {
	if data == nil {
		return 0, fmt.Errorf("coreloss: Roshen model requires RoshenData: %w", merr.InvalidInput)
	}
	rho, err := tempcoef.Resistivity(resistivityPoints, temperature)
	if err != nil {
		return 0, err
	}
	if rho <= 0 {
		return 0, fmt.Errorf("coreloss: Roshen: resistivity must be positive: %w", merr.InvalidInput)
	}

	b, f, err := peakFluxDensity(excitation)
	if err != nil {
		return 0, err
	}

	hysteresis := majorLoopArea(*data, b) * f
	eddy := math.Pow(f*b, 2) / rho
	excess := data.ExcessEddyCoefficient * math.Pow(f*b, 1.5) / rho

	return hysteresis + eddy + excess, nil
}

// majorLoopArea rescales the major B-H loop area (trapezoidal integration
// over the declared {B-top, B-bottom, H} grid) to the smaller excursion
// the operating point actually drives: the minor-loop rescaling step.
func majorLoopArea(data model.RoshenData, excursion float64) float64 {
	n := len(data.MajorLoopH)
	if n < 2 || len(data.MajorLoopBTop) != n || len(data.MajorLoopBBottom) != n {
		return 0
	}

	var area float64
	for i := 1; i < n; i++ {
		dH := data.MajorLoopH[i] - data.MajorLoopH[i-1]
		loopHeight := (data.MajorLoopBTop[i] - data.MajorLoopBBottom[i] +
			data.MajorLoopBTop[i-1] - data.MajorLoopBBottom[i-1]) / 2
		area += loopHeight * dH
	}

	maxB := data.MajorLoopBTop[n-1]
	if maxB <= 0 {
		return 0
	}
	scale := math.Pow(excursion/maxB, 2)
	return area * scale
}
