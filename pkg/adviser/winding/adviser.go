package windingadviser

import (
	"fmt"
	"math"

	"github.com/openmagnetics-go/mkf/pkg/advlog"
	"github.com/openmagnetics-go/mkf/pkg/bobbin"
	"github.com/openmagnetics-go/mkf/pkg/catalog"
	"github.com/openmagnetics-go/mkf/pkg/coil"
	"github.com/openmagnetics-go/mkf/pkg/insulation"
	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/openmagnetics-go/mkf/pkg/settings"
	"github.com/openmagnetics-go/mkf/pkg/tempcoef"
)

// defaultMaximumCurrentDensity is the J_max (A/m^2) coil.AdviseWires uses
// to size a winding's conducting area when the caller leaves it at zero,
// the same order-of-magnitude figure the core adviser's area-product
// constants default to.
const defaultMaximumCurrentDensity = 5e6

// Request is the input to Advise: a core already committed by the core
// adviser, still carrying its provisional
// dummy-wire Coil.FunctionalDescription for turns/parallels counts.
type Request struct {
	Inputs   model.Inputs
	Magnetic model.Magnetic

	Settings *settings.Settings

	InsulationMaterial *catalog.InsulationMaterial

	SectionOrientation model.SectionOrientation
	LayersOrientation  model.SectionOrientation
	SectionAlignment   model.Alignment
	TurnsAlignment     model.Alignment

	MaximumCurrentDensity float64
	MaximumParallels      int
	MaximumRepetitions    int
	MaximumWiresPerWinding int
	MaximumResults        int

	Log *advlog.Log
}

// windingSpec is the per-winding derived input the enumeration loop needs:
// the name, its dummy-wire turns and isolation side, and the
// operating excitation driving its RMS current and effective frequency.
type windingSpec struct {
	name          string
	isolationSide model.IsolationSide
	turns         int
	rmsCurrent    float64
	frequency     float64
	peakVoltage   float64
	rmsVoltage    float64
}

// Advise implements coil adviser: enumerate winding
// patterns and repetitions, advise real catalogue wire per winding,
// Cartesian-product the per-winding candidates, and keep the
// combinations that actually wind (coil.Wind succeeds) against the fixed
// core this request was built around.
func Advise(facade *catalog.Facade, req Request) ([]model.Mas, error) {
	if req.Settings == nil {
		req.Settings = settings.Default()
	}
	log := req.Log
	if log == nil {
		log = advlog.New()
	}
	maxResults := req.MaximumResults
	if maxResults <= 0 {
		maxResults = 10
	}
	maxRepetitions := req.MaximumRepetitions
	if maxRepetitions <= 0 {
		maxRepetitions = 2
	}
	maxParallels := req.MaximumParallels
	if maxParallels <= 0 {
		maxParallels = 4
	}
	maxCurrentDensity := req.MaximumCurrentDensity
	if maxCurrentDensity <= 0 {
		maxCurrentDensity = defaultMaximumCurrentDensity
	}
	wiresPerWinding := req.MaximumWiresPerWinding
	if wiresPerWinding <= 0 {
		wiresPerWinding = int(req.Settings.CoilAdviserMaximumNumberWires)
	}
	if wiresPerWinding <= 0 {
		wiresPerWinding = 3
	}

	if req.Magnetic.Core.Processed == nil {
		return nil, fmt.Errorf("windingadviser: Advise: core has no processed description: %w", merr.NotProcessed)
	}
	processedBobbin, err := bobbin.Quick(*req.Magnetic.Core.Processed)
	if err != nil {
		return nil, fmt.Errorf("windingadviser: Advise: %w", err)
	}
	bob := model.Bobbin{Processed: &processedBobbin}

	specs, err := buildWindingSpecs(req)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = s.name
	}

	allowedTypes := allowedWireTypes(req.Settings)
	resistivity := copperResistivityAt(25)

	perWinding := make([][]coil.WireCandidate, len(specs))
	for i, spec := range specs {
		candidates, err := coil.AdviseWires(facade, spec.turns, coil.WireAdviserRequest{
			WindingName:           spec.name,
			IsolationSide:         spec.isolationSide,
			RMSCurrent:            spec.rmsCurrent,
			EffectiveFrequency:    spec.frequency,
			Resistivity:           resistivity,
			MaximumCurrentDensity: maxCurrentDensity,
			MaximumParallels:      maxParallels,
			AllowedTypes:          allowedTypes,
			MaximumResults:        wiresPerWinding,
		})
		if err != nil {
			return nil, fmt.Errorf("windingadviser: Advise: winding %q: %w", spec.name, err)
		}
		if len(candidates) == 0 {
			return nil, fmt.Errorf("windingadviser: Advise: winding %q: %w", spec.name, merr.NoWireFits)
		}
		perWinding[i] = candidates
		log.Record("CoilAdviser", "winding %q: %d wire candidates", spec.name, len(candidates))
	}

	combinations := cartesianWires(perWinding)
	log.Record("CoilAdviser", "%d wire combinations across %d windings", len(combinations), len(specs))

	patterns := candidatePatterns(names, maxRepetitions)
	log.Record("CoilAdviser", "%d candidate patterns (base patterns x repetitions)", len(patterns))

	var results []model.Mas
	for _, pattern := range patterns {
		for combIdx, combination := range combinations {
			functional := make([]model.CoilFunctionalDescription, len(specs))
			for i, spec := range specs {
				functional[i] = combination[i].Description
				functional[i].Name = spec.name
				functional[i].IsolationSide = spec.isolationSide
			}

			marginTape, err := sectionMarginTape(pattern, specs, combination, req)
			if err != nil {
				log.Record("CoilAdviser", "pattern %v combo %d: margin tape sizing failed: %v", pattern, combIdx, err)
				continue
			}

			wound, err := coil.Wind(bob, functional, pattern, req.SectionOrientation, req.LayersOrientation, req.SectionAlignment, req.TurnsAlignment, marginTape)
			if err != nil {
				log.Record("CoilAdviser", "pattern %v combo %d: %v", pattern, combIdx, err)
				continue
			}

			magnetic := req.Magnetic
			magnetic.Coil = wound
			reference := fmt.Sprintf("pattern=%v/combo=%d", pattern, combIdx)
			magnetic.ManufacturerInfo = &model.ManufacturerInfo{Reference: reference}
			results = append(results, model.Mas{Inputs: req.Inputs, Magnetic: magnetic, Reference: reference})

			if len(results) >= maxResults {
				log.Record("CoilAdviser", "reached maximum results (%d)", maxResults)
				return results, nil
			}
		}
	}

	if len(results) == 0 {
		return nil, fmt.Errorf("windingadviser: Advise: no pattern/wire combination wound successfully: %w", merr.NoWireFits)
	}
	return results, nil
}

func buildWindingSpecs(req Request) ([]windingSpec, error) {
	functional := req.Magnetic.Coil.FunctionalDescription
	if len(functional) == 0 {
		return nil, fmt.Errorf("windingadviser: Advise: magnetic carries no functional description (run the core adviser first): %w", merr.MissingPrimaryExcitation)
	}
	if len(req.Inputs.OperatingPoints) == 0 {
		return nil, fmt.Errorf("windingadviser: Advise: %w", merr.InvalidInput)
	}

	specs := make([]windingSpec, len(functional))
	for i, fd := range functional {
		specs[i] = windingSpec{name: fd.Name, isolationSide: fd.IsolationSide, turns: fd.Turns}
	}

	for _, op := range req.Inputs.OperatingPoints {
		for i, exc := range op.Excitations {
			if i >= len(specs) {
				break
			}
			if exc.Frequency > specs[i].frequency {
				specs[i].frequency = exc.Frequency
			}
			if exc.Current != nil && exc.Current.Processed != nil {
				if rms := exc.Current.Processed.RMS; rms > specs[i].rmsCurrent {
					specs[i].rmsCurrent = rms
				}
			}
			if exc.Voltage != nil && exc.Voltage.Processed != nil {
				if peak := exc.Voltage.Processed.Peak; peak > specs[i].peakVoltage {
					specs[i].peakVoltage = peak
				}
				if rms := exc.Voltage.Processed.RMS; rms > specs[i].rmsVoltage {
					specs[i].rmsVoltage = rms
				}
			}
		}
	}

	for i, s := range specs {
		if s.rmsCurrent <= 0 {
			return nil, fmt.Errorf("windingadviser: Advise: winding %q has no RMS current in any operating point: %w", s.name, merr.InvalidInput)
		}
		if s.frequency <= 0 {
			specs[i].frequency = 1
		}
	}
	return specs, nil
}

// copperResistivityAt returns annealed copper's resistivity at the given
// temperature, falling back to its room-temperature value if the table
// lookup fails for some reason.
func copperResistivityAt(temperature float64) float64 {
	r, err := tempcoef.Resistivity(tempcoef.CopperResistivityPoints, temperature)
	if err != nil {
		return 1.68e-8
	}
	return r
}

func allowedWireTypes(s *settings.Settings) []model.WireType {
	var out []model.WireType
	if s.WireAdviserIncludeRound {
		out = append(out, model.WireRound)
	}
	if s.WireAdviserIncludeLitz {
		out = append(out, model.WireLitz)
	}
	if s.WireAdviserIncludeRectangular {
		out = append(out, model.WireRectangular)
	}
	if s.WireAdviserIncludeFoil {
		out = append(out, model.WireFoil)
	}
	if s.WireAdviserIncludePlanar {
		out = append(out, model.WirePlanar)
	}
	return out
}

// cartesianWires builds the Cartesian product of per-winding wire
// candidates, one combination per element, capped so a design with many
// windings x many candidates each doesn't explode the pattern loop.
const maxCombinations = 64

func cartesianWires(perWinding [][]coil.WireCandidate) [][]coil.WireCandidate {
	if len(perWinding) == 0 {
		return nil
	}
	combos := [][]coil.WireCandidate{{}}
	for _, candidates := range perWinding {
		var next [][]coil.WireCandidate
		for _, combo := range combos {
			for _, c := range candidates {
				extended := append(append([]coil.WireCandidate{}, combo...), c)
				next = append(next, extended)
				if len(next) >= maxCombinations {
					return next
				}
			}
		}
		combos = next
	}
	return combos
}

// sectionMarginTape decides, per winding, how much margin tape
// coil.PlanSections/Wind should reserve in front of that winding's
// sections because an adjacent pattern entry belongs to a different
// isolation side and insulation.CoilSectionInterface finds that neither
// wire's coating nor up to three insulating layers meet the coordinated
// requirement. The film's per-layer thickness is passed as zero, so when
// the coatings fall short the layers never meet the distance-through-
// insulation part and margin tape is reserved, with or without an
// InsulationMaterial on the request.
func sectionMarginTape(pattern coil.Pattern, specs []windingSpec, combination []coil.WireCandidate, req Request) (map[string]float64, error) {
	byName := make(map[string]int, len(specs))
	for i, s := range specs {
		byName[s.name] = i
	}

	sections := make([]model.Section, len(pattern))
	sectionIndex := make(map[string]int, len(pattern))
	for i, name := range pattern {
		sections[i] = model.Section{Name: fmt.Sprintf("%s[%d]", name, i)}
		sectionIndex[sections[i].Name] = i
	}
	graph, err := coil.AdjacencyGraph(sections)
	if err != nil {
		return nil, fmt.Errorf("windingadviser: sectionMarginTape: %w", err)
	}

	margin := make(map[string]float64, len(specs))
	for _, edge := range graph.Edges() {
		i, j := sectionIndex[edge.From], sectionIndex[edge.To]
		leftIdx, rightIdx := byName[pattern[i]], byName[pattern[j]]
		left, right := specs[leftIdx], specs[rightIdx]
		if left.isolationSide == right.isolationSide {
			continue
		}

		peakVoltage := math.Max(left.peakVoltage, right.peakVoltage)
		if peakVoltage <= 0 {
			peakVoltage = math.Max(left.rmsVoltage, right.rmsVoltage) * math.Sqrt2
		}
		if peakVoltage <= 0 {
			continue
		}

		required, err := insulation.Coordinate(insulation.Parameters{
			Frequency:         math.Max(left.frequency, right.frequency),
			PeakVoltage:       peakVoltage,
			RMSVoltage:        math.Max(left.rmsVoltage, right.rmsVoltage),
			MainSupplyVoltage: req.Inputs.DesignRequirements.Insulation.MainSupplyVoltage,
			Altitude:          req.Inputs.DesignRequirements.Insulation.Altitude,
			Requirements:      req.Inputs.DesignRequirements.Insulation,
		})
		if err != nil {
			return nil, err
		}

		var breakdownVoltage, thicknessPerLayer float64
		if req.InsulationMaterial != nil {
			breakdownVoltage = req.InsulationMaterial.DielectricStrength(25)
		}
		result := insulation.CoilSectionInterface(
			combination[leftIdx].Description.Wire,
			combination[rightIdx].Description.Wire,
			breakdownVoltage,
			thicknessPerLayer,
			required,
			peakVoltage,
		)
		if result.MarginTapeDistance > margin[pattern[j]] {
			margin[pattern[j]] = result.MarginTapeDistance
		}
	}
	return margin, nil
}
