package insulation

import (
	"fmt"

	"github.com/openmagnetics-go/mkf/pkg/merr"
)

// CoordinatedRequirement is the result of combining every standard
// requirement names: the binding clearance/creepage/DTI
// after taking the maximum across standards (or the single named one).
type CoordinatedRequirement struct {
	Clearance                 float64
	CreepageDistance          float64
	DistanceThroughInsulation float64
}

// Coordinate implements coordinator: final =
// max(per_standard) unless the requirement names exactly one standard.
func Coordinate(p Parameters) (CoordinatedRequirement, error) {
	standards := p.Requirements.Standards
	if len(standards) == 0 {
		return CoordinatedRequirement{}, fmt.Errorf("insulation: Coordinate: no standards named: %w", merr.InvalidInput)
	}

	var result CoordinatedRequirement
	for i, name := range standards {
		clearance, err := Clearance(name, p)
		if err != nil {
			return CoordinatedRequirement{}, fmt.Errorf("insulation: Coordinate: %s clearance: %w", name, err)
		}
		creepage, err := CreepageDistance(name, p)
		if err != nil {
			return CoordinatedRequirement{}, fmt.Errorf("insulation: Coordinate: %s creepage: %w", name, err)
		}
		dti, err := DistanceThroughInsulation(name, p)
		if err != nil {
			return CoordinatedRequirement{}, fmt.Errorf("insulation: Coordinate: %s distance through insulation: %w", name, err)
		}

		if i == 0 || clearance > result.Clearance {
			result.Clearance = clearance
		}
		if i == 0 || creepage > result.CreepageDistance {
			result.CreepageDistance = creepage
		}
		if i == 0 || dti > result.DistanceThroughInsulation {
			result.DistanceThroughInsulation = dti
		}
	}
	return result, nil
}
