// Package catalog is the façade over externally supplied catalogues of
// cores, materials, wires, bobbins and insulation/wire materials.
// Persisting those catalogues is explicitly out of scope; this package
// only defines the Provider interface the core adviser consumes and the
// read-only façade built on top of it, mirroring a device package that
// never opens a netlist file and only consumes the elements handed to it.
package catalog

import (
	"fmt"
	"math"
	"sort"

	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
)

// InsulationMaterial is a named insulation material record.
type InsulationMaterial struct {
	Name                  string
	DielectricStrength    func(temperature float64) float64
	TemperatureClass      float64
}

// WireMaterial is a named wire conductor material record.
type WireMaterial struct {
	Name         string
	Resistivity  []model.ResistivityPoint
	Permeability float64
}

// Provider is the external collaborator the catalogue layer describes:
// a CatalogueProvider returning records by name or iterated by filter.
// Implementations are process-wide, immutable, and loaded once before any
// Façade is constructed; the façade never mutates them.
type Provider interface {
	CoreShapes() []model.CoreShape
	CoreMaterials() []model.CoreMaterial
	Wires() []model.Wire
	Bobbins() []model.Bobbin
	InsulationMaterials() []InsulationMaterial
	WireMaterials() []WireMaterial
}

// Facade wraps a Provider with typed lookups: find by name, find by
// dimension, find wire by dimension. It is built once
// from a Provider (init) and is read-only thereafter.
type Facade struct {
	provider Provider

	shapesByName    map[string]model.CoreShape
	materialsByName map[string]model.CoreMaterial
	wiresByName     map[string]model.Wire
}

// NewFacade indexes the provider's records by name (and by declared alias,
// for shapes) once.
func NewFacade(p Provider) *Facade {
	f := &Facade{
		provider:        p,
		shapesByName:    make(map[string]model.CoreShape),
		materialsByName: make(map[string]model.CoreMaterial),
		wiresByName:     make(map[string]model.Wire),
	}
	for _, s := range p.CoreShapes() {
		f.shapesByName[s.Name] = s
		for _, alias := range s.Aliases {
			f.shapesByName[alias] = s
		}
	}
	for _, m := range p.CoreMaterials() {
		f.materialsByName[m.Name] = m
	}
	for _, w := range p.Wires() {
		f.wiresByName[w.Name] = w
	}
	return f
}

func (f *Facade) CoreShapes() []model.CoreShape             { return f.provider.CoreShapes() }
func (f *Facade) CoreMaterials() []model.CoreMaterial       { return f.provider.CoreMaterials() }
func (f *Facade) Wires() []model.Wire                       { return f.provider.Wires() }
func (f *Facade) Bobbins() []model.Bobbin                   { return f.provider.Bobbins() }
func (f *Facade) InsulationMaterials() []InsulationMaterial { return f.provider.InsulationMaterials() }
func (f *Facade) WireMaterials() []WireMaterial             { return f.provider.WireMaterials() }

// FindCoreShapeByName resolves a shape by name or declared alias.
func (f *Facade) FindCoreShapeByName(name string) (model.CoreShape, error) {
	if s, ok := f.shapesByName[name]; ok {
		return s, nil
	}
	return model.CoreShape{}, fmt.Errorf("catalog: core shape %q: %w", name, merr.NotFound)
}

// FindCoreMaterialByName resolves a material by exact name.
func (f *Facade) FindCoreMaterialByName(name string) (model.CoreMaterial, error) {
	if m, ok := f.materialsByName[name]; ok {
		return m, nil
	}
	return model.CoreMaterial{}, fmt.Errorf("catalog: core material %q: %w", name, merr.NotFound)
}

// FindWireByName resolves a wire by exact name.
func (f *Facade) FindWireByName(name string) (model.Wire, error) {
	if w, ok := f.wiresByName[name]; ok {
		return w, nil
	}
	return model.Wire{}, fmt.Errorf("catalog: wire %q: %w", name, merr.NotFound)
}

// FindWireByDimension returns the catalogue wire with the smallest
// non-negative distance to the requested outer dimension d (meters),
// optionally restricted by type and standard, ties broken by the smallest
// outer dimension.
func (f *Facade) FindWireByDimension(d float64, wireType *model.WireType, standard *model.WireStandard) (model.Wire, error) {
	var best model.Wire
	bestDist := math.Inf(1)
	found := false

	for _, w := range f.provider.Wires() {
		if wireType != nil && w.Type != *wireType {
			continue
		}
		if standard != nil && w.Standard != *standard {
			continue
		}

		dim := outerLinearDimension(w)
		dist := dim - d
		if dist < 0 {
			continue // keep only the smallest *non-negative* distance
		}
		if !found || dist < bestDist || (dist == bestDist && dim < outerLinearDimension(best)) {
			best, bestDist, found = w, dist, true
		}
	}

	if !found {
		return model.Wire{}, fmt.Errorf("catalog: no wire within non-negative distance of %g m: %w", d, merr.NotFound)
	}
	return best, nil
}

func outerLinearDimension(w model.Wire) float64 {
	switch w.Type {
	case model.WireRound:
		return w.OuterDiameter
	case model.WireLitz:
		if w.Strand == nil {
			return 0
		}
		return outerLinearDimension(*w.Strand)
	default:
		return math.Max(w.OuterWidth, w.OuterHeight)
	}
}

// SortedCoreShapeNames is a small convenience used by the advisers' log and
// by tests wanting a deterministic iteration order.
func (f *Facade) SortedCoreShapeNames() []string {
	names := make([]string, 0, len(f.shapesByName))
	for n := range f.shapesByName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
