package catalog

import (
	"math"
	"sort"

	"github.com/openmagnetics-go/mkf/pkg/model"
)

// CrossReferenceResult pairs a candidate with a dimensionless distance to
// the subject of a cross-reference query, smallest first.
type CrossReferenceResult struct {
	CoreShape *model.CoreShape
	Material  *model.CoreMaterial
	Distance  float64
}

// CrossReferenceShape ranks every catalogued shape other than subject by
// closeness of effective magnetic path length and cross-sectional area,
// the two parameters a drop-in mechanical replacement must preserve. This
// supplements the distilled adviser pipeline with the original tool's
// manufacturer cross-reference lookup, absent from the adviser itself.
func (f *Facade) CrossReferenceShape(subject model.CoreShape, maxResults int) []CrossReferenceResult {
	subjectArea, subjectLen := shapeScale(subject)
	if subjectArea == 0 || subjectLen == 0 {
		return nil
	}

	var out []CrossReferenceResult
	for i := range f.provider.CoreShapes() {
		candidate := f.provider.CoreShapes()[i]
		if candidate.Name == subject.Name {
			continue
		}
		area, length := shapeScale(candidate)
		if area == 0 || length == 0 {
			continue
		}
		d := math.Hypot(
			math.Log(area/subjectArea),
			math.Log(length/subjectLen),
		)
		out = append(out, CrossReferenceResult{CoreShape: &candidate, Distance: d})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	if maxResults > 0 && len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}

// CrossReferenceMaterial ranks every catalogued material other than subject
// by closeness of initial permeability and, when both declare it, Curie
// temperature — the two properties a drop-in material substitution needs
// to preserve for an unchanged inductance factor and thermal margin.
func (f *Facade) CrossReferenceMaterial(subject model.CoreMaterial, maxResults int) []CrossReferenceResult {
	if subject.Permeability.Value == 0 {
		return nil
	}

	var out []CrossReferenceResult
	for i := range f.provider.CoreMaterials() {
		candidate := f.provider.CoreMaterials()[i]
		if candidate.Name == subject.Name || candidate.Permeability.Value == 0 {
			continue
		}
		d := math.Abs(math.Log(candidate.Permeability.Value / subject.Permeability.Value))
		if subject.CurieTemperature != nil && candidate.CurieTemperature != nil {
			d = math.Hypot(d, (*candidate.CurieTemperature-*subject.CurieTemperature)/100)
		}
		out = append(out, CrossReferenceResult{Material: &candidate, Distance: d})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	if maxResults > 0 && len(out) > maxResults {
		out = out[:maxResults]
	}
	return out
}

// shapeScale extracts a representative cross-sectional area and magnetic
// path length from a shape's raw dimensions, nominal value preferred, so
// cross-referencing never needs the processed description to have run.
func shapeScale(s model.CoreShape) (area, length float64) {
	widthBV, okW := s.Dimensions["A"] // outer width, by catalogue convention
	heightBV, okH := s.Dimensions["B"]
	if !okW || !okH {
		return 0, 0
	}
	width, errW := model.GetRequirementValue(widthBV, model.DimensionalNominal)
	height, errH := model.GetRequirementValue(heightBV, model.DimensionalNominal)
	if errW != nil || errH != nil || width == 0 || height == 0 {
		return 0, 0
	}
	return width * height, width + height
}
