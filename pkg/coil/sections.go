// Package coil implements winding engine: laying out
// sections along a bobbin's winding window, then layers within each
// section, then turns within each layer, followed by the
// delimit_and_compact bounding-box tightening pass. Section adjacency
// (which pair of sections shares an interface the insulation coordinator
// must size) is modeled as a graph, the same
// github.com/katalvlaran/lvlath/core usage the pack's examples show for
// adjacency queries over a small named-node graph, generalized here from
// road intersections to wound sections.
package coil

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
)

// Pattern is the winding order along the bobbin:
// one entry per section, naming which winding occupies it. Repeated
// names implement interleaving; each occurrence gets an equal share of
// that winding's turns and parallels.
type Pattern []string

// PlanSections assigns each pattern entry a bounding box within the
// bobbin's winding window, stacking contiguous sections side-by-side
// along the window's axial (height) axis and overlapping sections
// side-by-side along the radial (width) axis — two
// orientations are mirror images of the same band-partition algorithm,
// swapping which axis is shared in full and which is divided.
func PlanSections(window model.WindingWindow, pattern Pattern, functional []model.CoilFunctionalDescription, orientation model.SectionOrientation, alignment model.Alignment, marginTape map[string]float64) ([]model.Section, error) {
	if len(pattern) == 0 {
		return nil, fmt.Errorf("coil: PlanSections: empty pattern: %w", merr.InvalidInput)
	}
	byName := make(map[string]model.CoilFunctionalDescription, len(functional))
	for _, fd := range functional {
		byName[fd.Name] = fd
	}

	weights := make([]float64, len(pattern))
	var totalWeight float64
	for i, name := range pattern {
		fd, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("coil: PlanSections: pattern names unknown winding %q: %w", name, merr.InvalidInput)
		}
		occurrences := countOccurrences(pattern, name)
		w := float64(fd.Turns*fd.Parallels) / float64(occurrences)
		weights[i] = w
		totalWeight += w
	}
	if totalWeight <= 0 {
		return nil, fmt.Errorf("coil: PlanSections: pattern has zero total turns: %w", merr.CalculationInvalid)
	}

	sections := make([]model.Section, len(pattern))
	var cursor float64
	for i, name := range pattern {
		share := weights[i] / totalWeight
		margin := marginTape[name]

		var width, height, originX, originY float64
		switch orientation {
		case model.SectionContiguous:
			width = window.Width
			height = share * window.Height
			originX = window.CoordinatesXYZ[0]
			originY = window.CoordinatesXYZ[1] - window.Height/2 + cursor + height/2
			cursor += height
		default: // SectionOverlapping
			width = share * window.Width
			height = window.Height
			originX = window.CoordinatesXYZ[0] - window.Width/2 + cursor + width/2
			originY = window.CoordinatesXYZ[1]
			cursor += width
		}
		if width <= margin*2 || height <= 0 {
			return nil, fmt.Errorf("coil: PlanSections: section %q has non-positive layout area after margin tape: %w", name, merr.CalculationInvalid)
		}

		sections[i] = model.Section{
			Name:            fmt.Sprintf("%s[%d]", name, i),
			WindingNames:    []string{name},
			Width:           width,
			Height:          height,
			MarginTapeWidth: margin,
			CoordinatesXYZ:  [3]float64{originX, originY, window.CoordinatesXYZ[2]},
		}
	}
	return sections, nil
}

func countOccurrences(pattern Pattern, name string) int {
	n := 0
	for _, p := range pattern {
		if p == name {
			n++
		}
	}
	return n
}

// AdjacencyGraph builds the section-adjacency graph used to find, for
// every pair of physically touching sections, the
// interface the insulation coordinator must size. Sections are adjacent
// when the pattern places them next to each other; edge weight is the
// pattern distance (1 for immediate neighbors), matching how
// core.WithWeighted lets a caller attach a cost without requiring it for
// every edge.
func AdjacencyGraph(sections []model.Section) (*core.Graph, error) {
	g := core.NewGraph(core.WithWeighted())
	for _, s := range sections {
		if err := g.AddVertex(s.Name); err != nil {
			return nil, fmt.Errorf("coil: AdjacencyGraph: %w", err)
		}
	}
	for i := 1; i < len(sections); i++ {
		if _, err := g.AddEdge(sections[i-1].Name, sections[i].Name, 1); err != nil {
			return nil, fmt.Errorf("coil: AdjacencyGraph: %w", err)
		}
	}
	return g, nil
}
