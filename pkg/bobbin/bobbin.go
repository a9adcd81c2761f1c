// Package bobbin implements "quick" bobbin construction:
// deriving a usable bobbin geometry from a core's winding window via
// empirical filling-factor curves, without requiring a named catalogue
// bobbin. Modeled on pkg/reluctance's column/gap leaf functions: small,
// pure geometric transforms with no shared state.
package bobbin

import (
	"fmt"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/openmagnetics-go/mkf/pkg/numeric"
)

// fillingFactorX/fillingFactorY are the monotone cubic anchor set used: 0.377 at
// the smallest winding windows, 0.738 at the
// largest, both axes normalized to [0, 1]. Intermediate points follow
// the same concave growth the original filling-factor dataset shows:
// fast gains for small windows, diminishing returns near full wall
// coverage.
var fillingFactorX = []float64{0, 0.25, 0.5, 0.75, 1}
var fillingFactorY = []float64{0.377, 0.55, 0.66, 0.71, 0.738}

// FillingFactor evaluates the bobbin wall/winding-window filling factor
// at a normalized (width, height) position in [0, 1]^2, clamped at the
// ends like every other empirical curve in this module.
func FillingFactor(normalizedWidth, normalizedHeight float64) (float64, error) {
	spline, err := numeric.NewMonotoneCubic(fillingFactorX, fillingFactorY)
	if err != nil {
		return 0, err
	}
	widthFactor := spline.Eval(clamp01(normalizedWidth))
	heightFactor := spline.Eval(clamp01(normalizedHeight))
	return (widthFactor + heightFactor) / 2, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// wallThicknessRatio is the fraction of a core's winding-window width
// consumed by the bobbin's own wall and column thickness, a representative
// industrial value (thin-wall injection-molded bobbins) used when the
// core offers no narrower family-specific figure.
const wallThicknessRatio = 0.04

// Quick constructs a processed bobbin description directly from a
// processed core's winding window, applying the filling-factor curve to
// shrink the usable area and reserving a wall thickness proportional to
// the window's own size.
func Quick(core model.CoreProcessedDescription) (model.BobbinProcessedDescription, error) {
	if len(core.WindingWindows) == 0 {
		return model.BobbinProcessedDescription{}, fmt.Errorf("bobbin: Quick: core has no processed winding windows: %w", merr.NotProcessed)
	}
	window := core.WindingWindows[0]

	if window.Radius != nil {
		return quickToroidal(core, window)
	}
	return quickTwoPieceSet(core, window)
}

func quickTwoPieceSet(core model.CoreProcessedDescription, window model.WindingWindow) (model.BobbinProcessedDescription, error) {
	wallThickness := window.Width * wallThicknessRatio
	columnThickness := wallThickness

	factor, err := FillingFactor(1, 1)
	if err != nil {
		return model.BobbinProcessedDescription{}, err
	}

	usableWidth := (window.Width - 2*wallThickness) * factor
	usableHeight := (window.Height - 2*wallThickness) * factor
	if usableWidth <= 0 || usableHeight <= 0 {
		return model.BobbinProcessedDescription{}, fmt.Errorf("bobbin: Quick: winding window too small for bobbin walls: %w", merr.CalculationInvalid)
	}

	return model.BobbinProcessedDescription{
		ColumnShape:     "round",
		ColumnWidth:     core.Columns[0].Width,
		ColumnDepth:     core.Columns[0].Depth,
		ColumnThickness: columnThickness,
		WallThickness:   wallThickness,
		WindingWindows: []model.WindingWindow{{
			Height:         usableHeight,
			Width:          usableWidth,
			Area:           usableWidth * usableHeight,
			CoordinatesXYZ: window.CoordinatesXYZ,
		}},
	}, nil
}

func quickToroidal(core model.CoreProcessedDescription, window model.WindingWindow) (model.BobbinProcessedDescription, error) {
	// Toroids are wound directly on the core; "quick" bobbin construction
	// degenerates to the bare winding window with no wall reservation.
	return model.BobbinProcessedDescription{
		ColumnShape:    "toroidal",
		WindingWindows: []model.WindingWindow{window},
	}, nil
}
