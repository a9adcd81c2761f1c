package coil

import (
	"fmt"
	"math"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
)

// Wind implements full winding engine: section layout,
// layer layout within each section, turn layout within each layer, and
// per-turn wire length from the bobbin column's cross-section, followed
// by DelimitAndCompact. Returns merr.CalculationInvalid (wrapped with
// context) the first time a winding's turns don't fit — the caller
// (the coil adviser, step 2) treats that as "skip this pattern",
// not a hard failure.
func Wind(bobbin model.Bobbin, functional []model.CoilFunctionalDescription, pattern Pattern, sectionOrientation, layersOrientation model.SectionOrientation, sectionAlignment, turnsAlignment model.Alignment, marginTape map[string]float64) (model.Coil, error) {
	if bobbin.Processed == nil || len(bobbin.Processed.WindingWindows) == 0 {
		return model.Coil{}, fmt.Errorf("coil: Wind: bobbin has no processed winding window: %w", merr.NotProcessed)
	}
	window := bobbin.Processed.WindingWindows[0]

	byName := make(map[string]model.CoilFunctionalDescription, len(functional))
	for _, fd := range functional {
		byName[fd.Name] = fd
	}

	if window.Radius != nil {
		return windToroidal(bobbin, functional, byName)
	}

	sections, err := PlanSections(window, pattern, functional, sectionOrientation, sectionAlignment, marginTape)
	if err != nil {
		return model.Coil{}, err
	}

	var allLayers []model.Layer
	var allTurns []model.Turn
	nextParallel := make(map[string]int, len(functional))

	for i, name := range pattern {
		fd := byName[name]
		occurrences := countOccurrences(pattern, name)
		instances := (fd.Turns * fd.Parallels) / occurrences
		if instances <= 0 {
			return model.Coil{}, fmt.Errorf("coil: Wind: winding %q has zero instances to place: %w", name, merr.CalculationInvalid)
		}

		layers, err := PlanLayers(sections[i], fd, instances, layersOrientation)
		if err != nil {
			return model.Coil{}, err
		}

		remaining := instances
		for _, layer := range layers {
			count := int(math.Round(layer.Height / mustAxial(fd.Wire)))
			if count > remaining {
				count = remaining
			}
			turns, err := PlanTurns(layer, name, fd.Wire, count, fd.Parallels, turnsAlignment, nextParallel[name])
			if err != nil {
				return model.Coil{}, err
			}
			for ti := range turns {
				turns[ti].Length = columnLength(bobbin, turns[ti].CoordinatesXYZ[0])
			}
			layer.Turns = turns
			allLayers = append(allLayers, layer)
			allTurns = append(allTurns, turns...)
			nextParallel[name] = (nextParallel[name] + count) % fd.Parallels
			remaining -= count
		}
		sections[i].Layers = layersForSection(allLayers, sections[i].Name)
	}

	coil := model.Coil{
		Bobbin:                 bobbin,
		FunctionalDescription:  functional,
		SectionOrientation:     sectionOrientation,
		LayersOrientation:      layersOrientation,
		TurnsAlignment:         turnsAlignment,
		Sections:               sections,
		Layers:                 allLayers,
		Turns:                  allTurns,
	}
	DelimitAndCompact(&coil)
	return coil, nil
}

func mustAxial(w model.Wire) float64 {
	axial, _ := wireOuterExtent(w)
	if axial <= 0 {
		return 1 // unreachable: PlanLayers already rejected this wire
	}
	return axial
}

func layersForSection(layers []model.Layer, sectionName string) []model.Layer {
	var out []model.Layer
	for _, l := range layers {
		if l.SectionName == sectionName {
			out = append(out, l)
		}
	}
	return out
}

// columnLength is the length of wire one turn consumes going around the
// bobbin column once, at radial offset radialOffset from the column's
// center: a circle's circumference for a round column, the perimeter of
// a rectangular cross-section otherwise.
func columnLength(bobbin model.Bobbin, radialOffset float64) float64 {
	if bobbin.Processed == nil {
		return 0
	}
	switch bobbin.Processed.ColumnShape {
	case "round":
		radius := bobbin.Processed.ColumnWidth/2 + math.Abs(radialOffset)
		return 2 * math.Pi * radius
	default:
		perimeter := 2 * (bobbin.Processed.ColumnWidth + bobbin.Processed.ColumnDepth)
		return perimeter + 8*math.Abs(radialOffset) // four rounded corners' worth of radial growth
	}
}

func windToroidal(bobbin model.Bobbin, functional []model.CoilFunctionalDescription, byName map[string]model.CoilFunctionalDescription) (model.Coil, error) {
	window := bobbin.Processed.WindingWindows[0]
	var allTurns []model.Turn
	for _, fd := range functional {
		turns, err := ToroidalTurns(window, fd.Name, fd.Wire, fd.Turns*fd.Parallels, fd.Parallels)
		if err != nil {
			return model.Coil{}, fmt.Errorf("coil: Wind: toroidal winding %q: %w", fd.Name, err)
		}
		if window.Radius != nil {
			for i := range turns {
				turns[i].Length = 2 * math.Pi * (*window.Radius)
			}
		}
		allTurns = append(allTurns, turns...)
	}
	return model.Coil{
		Bobbin:                bobbin,
		FunctionalDescription: functional,
		Turns:                 allTurns,
	}, nil
}
