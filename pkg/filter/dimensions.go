package filter

import (
	"fmt"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
)

// DimensionsFilter implements Dimensions filter: a weighted
// sum of height/width/depth, smaller is better. Zero-value weights default
// to an equal 1/3 split across the three axes.
type DimensionsFilter struct {
	WeightHeight, WeightWidth, WeightDepth float64
}

func (DimensionsFilter) Name() Name { return Dimensions }

func (f DimensionsFilter) Evaluate(candidate model.Magnetic, _ Context) (Result, error) {
	if candidate.Core.Processed == nil {
		return Result{}, fmt.Errorf("filter: Dimensions: %w", merr.NotProcessed)
	}
	wh, ww, wd := f.WeightHeight, f.WeightWidth, f.WeightDepth
	if wh == 0 && ww == 0 && wd == 0 {
		wh, ww, wd = 1.0/3, 1.0/3, 1.0/3
	}
	p := candidate.Core.Processed
	score := wh*p.Height + ww*p.Width + wd*p.Depth
	return Result{Valid: true, Score: score}, nil
}
