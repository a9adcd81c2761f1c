package coil

import "github.com/openmagnetics-go/mkf/pkg/model"

// DelimitAndCompact implements delimit_and_compact:
// shrinks each section's bounding box to the tight extent of the turns
// actually placed in it, rather than the full share of the winding
// window it was allotted (describes this as snapping to the
// convex hull of the turns; since turns are laid out as an axis-aligned
// grid here, the convex hull degenerates to the axis-aligned bounding
// box, so no separate hull computation is needed).
func DelimitAndCompact(coil *model.Coil) {
	bySection := make(map[string][]model.Turn)
	for _, l := range coil.Layers {
		bySection[l.SectionName] = append(bySection[l.SectionName], l.Turns...)
	}

	for i := range coil.Sections {
		turns := bySection[coil.Sections[i].Name]
		if len(turns) == 0 {
			continue
		}

		axial, _ := wireOuterExtent(turns[0].Wire)
		minX, maxX := turns[0].CoordinatesXYZ[0], turns[0].CoordinatesXYZ[0]
		minY, maxY := turns[0].CoordinatesXYZ[1], turns[0].CoordinatesXYZ[1]
		for _, t := range turns[1:] {
			if t.CoordinatesXYZ[0] < minX {
				minX = t.CoordinatesXYZ[0]
			}
			if t.CoordinatesXYZ[0] > maxX {
				maxX = t.CoordinatesXYZ[0]
			}
			if t.CoordinatesXYZ[1] < minY {
				minY = t.CoordinatesXYZ[1]
			}
			if t.CoordinatesXYZ[1] > maxY {
				maxY = t.CoordinatesXYZ[1]
			}
		}
		_, radial := wireOuterExtent(turns[0].Wire)
		coil.Sections[i].Width = (maxX - minX) + radial
		coil.Sections[i].Height = (maxY - minY) + axial
		coil.Sections[i].CoordinatesXYZ[0] = (minX + maxX) / 2
		coil.Sections[i].CoordinatesXYZ[1] = (minY + maxY) / 2
	}
}
