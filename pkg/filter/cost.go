package filter

import (
	"fmt"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
)

// costPerKilogram is a representative material cost table, standing in for
// the manufacturer pricing data retrieved catalogue format does
// not carry (no price field exists on model.CoreMaterial); figures are
// illustrative order-of-magnitude USD/kg, not vendor quotes.
var costPerKilogram = map[model.MaterialFamily]float64{
	model.MaterialFerrite:         6,
	model.MaterialPowder:          12,
	model.MaterialAmorphous:       18,
	model.MaterialNanocrystalline: 35,
	model.MaterialSiliconSteel:    4,
}

// CostFilter implements Cost filter: per-kg material cost
// times core mass, lower is better. CostOverride, keyed by material
// family, lets a caller supply real pricing without touching this package.
type CostFilter struct {
	CostOverride map[model.MaterialFamily]float64
}

func (CostFilter) Name() Name { return Cost }

func (f CostFilter) Evaluate(candidate model.Magnetic, ctx Context) (Result, error) {
	if candidate.Core.Processed == nil {
		return Result{}, fmt.Errorf("filter: Cost: %w", merr.NotProcessed)
	}
	perKg, ok := f.CostOverride[candidate.Core.Material.Family]
	if !ok {
		perKg, ok = costPerKilogram[candidate.Core.Material.Family]
	}
	if !ok {
		return Result{}, fmt.Errorf("filter: Cost: no cost data for material family %q: %w", candidate.Core.Material.Family, merr.InvalidInput)
	}
	return Result{Valid: true, Score: perKg * candidate.Core.Processed.Mass}, nil
}
