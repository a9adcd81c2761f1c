package coreadviser

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/openmagnetics-go/mkf/pkg/advlog"
	"github.com/openmagnetics-go/mkf/pkg/catalog"
	"github.com/openmagnetics-go/mkf/pkg/filter"
	"github.com/openmagnetics-go/mkf/pkg/inductance"
	"github.com/openmagnetics-go/mkf/pkg/merr"
	"github.com/openmagnetics-go/mkf/pkg/model"
	"github.com/openmagnetics-go/mkf/pkg/permeability"
	"github.com/openmagnetics-go/mkf/pkg/reluctance"
	"github.com/openmagnetics-go/mkf/pkg/settings"
	"github.com/openmagnetics-go/mkf/pkg/tempcoef"
	"github.com/openmagnetics-go/mkf/pkg/winding"
)

// stackableFamilies is the family set the core adviser allows stacked
// variants for.
var stackableFamilies = map[model.CoreShapeFamily]bool{
	model.FamilyE:       true,
	model.FamilyPlanarE: true,
	model.FamilyT:       true,
	model.FamilyU:       true,
	model.FamilyC:       true,
}

// AreaProductConstants bundles the AreaProduct filter's (k_u, k_J, B_max,
// J_max) design constants, which are left for the caller to tune;
// DefaultAreaProductConstants gives the rule-of-thumb figures a
// ferrite/copper design commonly uses.
type AreaProductConstants struct {
	UtilizationFactor             float64
	CurrentDensityVariationFactor float64
	MaximumFluxDensity            float64
	MaximumCurrentDensity         float64
}

// DefaultAreaProductConstants: k_u = 0.4 window utilization, k_J = 1 (no
// derating), B_max = 0.3 T (typical ferrite working point well below
// saturation), J_max = 5 A/mm^2.
func DefaultAreaProductConstants() AreaProductConstants {
	return AreaProductConstants{
		UtilizationFactor:             0.4,
		CurrentDensityVariationFactor: 1,
		MaximumFluxDensity:            0.3,
		MaximumCurrentDensity:         5e6,
	}
}

// Request is core adviser's input.
type Request struct {
	Inputs model.Inputs

	// Weights maps a subset of the six pkg/filter names to their weight;
	// a filter absent or weighted <= 0 does not run.
	Weights map[filter.Name]float64

	// Candidates, if non-empty, restricts the search to these shapes
	// rather than the full catalogue.
	Candidates []model.CoreShape

	Settings              *settings.Settings
	FringingModel         reluctance.FringingModel
	AreaProductConstants  AreaProductConstants

	MaximumResults int
	MaximumStacks  int

	Log *advlog.Log
}

type scoredCandidate struct {
	magnetic  model.Magnetic
	reference string
	score     float64
}

// Advise implements eight-step algorithm. No hard
// failures: an empty result is valid, and every cull is recorded on
// req.Log (if provided) rather than returned as an error.
func Advise(facade *catalog.Facade, req Request) ([]model.Mas, error) {
	if req.Settings == nil {
		req.Settings = settings.Default()
	}
	if req.AreaProductConstants == (AreaProductConstants{}) {
		req.AreaProductConstants = DefaultAreaProductConstants()
	}
	log := req.Log
	if log == nil {
		log = advlog.New()
	}
	maxResults := req.MaximumResults
	if maxResults <= 0 {
		maxResults = 10
	}
	maxStacks := req.MaximumStacks
	if maxStacks <= 0 {
		maxStacks = 1
	}

	shapes := req.Candidates
	if len(shapes) == 0 {
		shapes = facade.CoreShapes()
	}

	candidates := buildCandidates(facade, shapes, 1, req, log)
	log.Record("CoreAdviser", "built %d candidates from %d shapes x %d materials", len(candidates), len(shapes), len(facade.CoreMaterials()))

	ranked, err := runFilters(candidates, req, log)
	if err != nil {
		return nil, err
	}

	if len(ranked) < maxResults && req.Settings.CoreAdviserIncludeStacks && maxStacks > 1 {
		var stacked []model.Magnetic
		for stack := 2; stack <= maxStacks; stack++ {
			stacked = append(stacked, buildCandidates(facade, stackableShapes(shapes), stack, req, log)...)
		}
		log.Record("CoreAdviser", "expanding with %d stacked candidates (stacks 2..%d)", len(stacked), maxStacks)
		stackedRanked, err := runFilters(stacked, req, log)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, stackedRanked...)
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > maxResults {
		log.Record("CoreAdviser", "truncating %d ranked candidates to top %d", len(ranked), maxResults)
		ranked = ranked[:maxResults]
	}

	results := make([]model.Mas, 0, len(ranked))
	for _, c := range ranked {
		magnetic := c.magnetic
		magnetic.ManufacturerInfo = &model.ManufacturerInfo{Reference: c.reference}
		results = append(results, model.Mas{
			Inputs:    req.Inputs,
			Magnetic:  magnetic,
			Reference: c.reference,
		})
	}
	return results, nil
}

func stackableShapes(shapes []model.CoreShape) []model.CoreShape {
	var out []model.CoreShape
	for _, s := range shapes {
		if stackableFamilies[s.Family] {
			out = append(out, s)
		}
	}
	return out
}

// buildCandidates implements steps 2-4: skip disallowed shapes, process
// geometry, attach a dummy coil, and assign initial turns.
func buildCandidates(facade *catalog.Facade, shapes []model.CoreShape, stacks int, req Request, log *advlog.Log) []model.Magnetic {
	maxFrequency, maxTemperature := operatingExtremes(req.Inputs)

	var out []model.Magnetic
	for _, shape := range shapes {
		if shape.Family == model.FamilyT && !req.Settings.UseToroidalCores {
			continue
		}
		if shape.MagneticCircuit != model.CircuitClosed && !req.Settings.UseConcentricCores {
			continue
		}
		if req.Inputs.DesignRequirements.MaximumDimensions != nil {
			heightKey := "B"
			if shape.MagneticCircuit == model.CircuitClosed && isToroidalFamily(shape) {
				heightKey = "C"
			}
			if h := dimension(shape, heightKey, 0); h > 0 && h > req.Inputs.DesignRequirements.MaximumDimensions.Height {
				log.Record("CoreAdviser", "culled shape %q: height %.4g exceeds maximum %.4g", shape.Name, h, req.Inputs.DesignRequirements.MaximumDimensions.Height)
				continue
			}
		}

		for _, material := range facade.CoreMaterials() {
			processed, err := ProcessShape(shape, material, stacks)
			if err != nil {
				log.Record("CoreAdviser", "culled %q/%q: %v", shape.Name, material.Name, err)
				continue
			}
			core := model.Core{
				Type:      coreType(shape),
				Shape:     shape,
				Material:  material,
				Stacks:    stacks,
				Processed: &processed,
			}

			coil, err := dummyCoil(core, req.Inputs, maxFrequency, maxTemperature, req.FringingModel, req.Settings)
			if err != nil {
				log.Record("CoreAdviser", "culled %q/%q: %v", shape.Name, material.Name, err)
				continue
			}
			out = append(out, model.Magnetic{Core: core, Coil: coil})
		}
	}
	return out
}

func coreType(shape model.CoreShape) model.CoreType {
	if shape.Family == model.FamilyT {
		return model.CoreToroidal
	}
	return model.CoreTwoPieceSet
}

func operatingExtremes(in model.Inputs) (maxFrequency, maxTemperature float64) {
	maxTemperature = 25
	for _, op := range in.OperatingPoints {
		if op.Conditions.AmbientTemperature > maxTemperature {
			maxTemperature = op.Conditions.AmbientTemperature
		}
		for _, exc := range op.Excitations {
			if exc.Frequency > maxFrequency {
				maxFrequency = exc.Frequency
			}
		}
	}
	if maxFrequency <= 0 {
		maxFrequency = 1
	}
	return maxFrequency, maxTemperature
}

// dummyCoil implements steps 3-4: a single-turn-per-winding round wire
// sized to twice the skin depth at the maximum operating frequency and
// temperature (), with initial turns assigned by at
// DimensionalMinimum and a turns-ratio ladder for additional windings.
// Per-turn lengths are approximated from the processed core's effective
// area, since no bobbin has wound yet at this stage (that is the coil
// adviser's job, ) — good enough for the MinimumImpedance filter's
// resistance estimate.
func dummyCoil(core model.Core, in model.Inputs, maxFrequency, maxTemperature float64, fm reluctance.FringingModel, settings *settings.Settings) (model.Coil, error) {
	resistivity := mustResistivity(maxTemperature)
	skinDepth := winding.SkinDepth(resistivity, maxFrequency)
	diameter := 2 * skinDepth
	if math.IsInf(diameter, 1) || diameter <= 0 {
		diameter = 2e-4
	}
	dummyWire := model.Wire{Type: model.WireRound, OuterDiameter: diameter, ConductingDiameter: diameter}

	mu, err := permeability.Initial(core.Material, permeability.Conditions{Temperature: &maxTemperature, Frequency: &maxFrequency})
	if err != nil {
		return model.Coil{}, err
	}
	totalReluctance, err := reluctance.CoreTotalReluctance(core, fm, mu, maxFrequency)
	if err != nil {
		return model.Coil{}, err
	}
	effectiveReluctance := totalReluctance

	if settings != nil && settings.MagnetizingInductanceIncludeAirInductance {
		radius, length := approxCoilGeometry(core)
		if radius > 0 && length > 0 {
			// AirInductance is quadratic in turns; passing numberTurns=1
			// isolates its per-turn-squared coefficient k, so the core and
			// air contributions combine as parallel inductors (1/totalReluctance + k)
			// without needing the turns count this function is about to solve for.
			k := inductance.AirInductance(1, radius, length)
			if k > 0 {
				effectiveReluctance = 1 / (1/totalReluctance + k)
			}
		}
	}

	primaryTurns, err := inductance.NumberTurns(in.DesignRequirements.MagnetizingInductance, effectiveReluctance)
	if err != nil {
		return model.Coil{}, err
	}
	if primaryTurns < 1 {
		primaryTurns = 1
	}

	sides := in.DesignRequirements.IsolationSides
	if len(sides) == 0 {
		sides = []model.IsolationSide{model.IsolationPrimary}
	}

	turnLength := approxTurnLength(core)
	functional := make([]model.CoilFunctionalDescription, 0, len(sides))
	var turns []model.Turn
	for i, side := range sides {
		windingTurns := primaryTurns
		if i > 0 && i-1 < len(in.DesignRequirements.TurnsRatios) {
			ratio, err := model.GetRequirementValue(in.DesignRequirements.TurnsRatios[i-1], model.DimensionalNominal)
			if err == nil && ratio > 0 {
				windingTurns = int(math.Round(float64(primaryTurns) / ratio))
			}
		}
		if windingTurns < 1 {
			windingTurns = 1
		}
		functional = append(functional, model.CoilFunctionalDescription{
			Name:          string(side),
			IsolationSide: side,
			Turns:         windingTurns,
			Parallels:     1,
			Wire:          dummyWire,
		})
		for t := 0; t < windingTurns; t++ {
			turns = append(turns, model.Turn{WindingName: string(side), Length: turnLength, Wire: dummyWire})
		}
	}

	return model.Coil{FunctionalDescription: functional, Turns: turns}, nil
}

// approxTurnLength estimates one turn's wire length from the core's
// effective cross-sectional area, treating the wound column as round.
func approxTurnLength(core model.Core) float64 {
	if core.Processed == nil || core.Processed.EffectiveArea <= 0 {
		return 0
	}
	radius := math.Sqrt(core.Processed.EffectiveArea / math.Pi)
	return 2 * math.Pi * radius
}

// approxCoilGeometry estimates the radius and axial length Wheeler's
// air-core formula needs from the processed core's effective area and its
// first winding window, the same column/window fields approxTurnLength
// already draws the turn circumference from.
func approxCoilGeometry(core model.Core) (radius, length float64) {
	if core.Processed == nil || core.Processed.EffectiveArea <= 0 {
		return 0, 0
	}
	radius = math.Sqrt(core.Processed.EffectiveArea / math.Pi)
	if len(core.Processed.WindingWindows) > 0 {
		length = core.Processed.WindingWindows[0].Height
	}
	return radius, length
}

func mustResistivity(temperature float64) float64 {
	r, err := tempcoef.Resistivity(tempcoef.CopperResistivityPoints, temperature)
	if err != nil {
		return 1.68e-8
	}
	return r
}

// runFilters implements the filter pipeline: pick the primary filter by
// maximum weight (ties broken by filter.Priority), run it first and cull,
// then run the remaining enabled filters in priority order, accumulating
// an additive normalised+weighted aggregate score per candidate. Scoring
// writes are synchronised since candidate evaluation runs concurrently.
func runFilters(candidates []model.Magnetic, req Request, log *advlog.Log) ([]scoredCandidate, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	active := enabledFilters(req)
	if len(active) == 0 {
		return nil, fmt.Errorf("coreadviser: runFilters: no filter has a positive weight: %w", merr.InvalidInput)
	}
	primary := selectPrimary(active, req.Weights)

	ctx := filter.Context{
		Requirement:     req.Inputs.DesignRequirements,
		OperatingPoints: req.Inputs.OperatingPoints,
		Temperature:     maxTemperatureOf(req.Inputs),
		WireResistivity: tempcoef.CopperResistivityPoints,
	}

	references := referenceCandidates(candidates)
	raw := make(map[filter.Name][]float64, len(active))
	valid := make([]bool, len(candidates))
	for i := range valid {
		valid[i] = true
	}

	evaluateOne := func(f filter.Filter) []float64 {
		scores := make([]float64, len(candidates))
		var mu sync.Mutex
		var wg sync.WaitGroup
		for i, c := range candidates {
			wg.Add(1)
			go func(i int, c model.Magnetic) {
				defer wg.Done()
				result, err := f.Evaluate(c, ctx)
				mu.Lock()
				defer mu.Unlock()
				if err != nil || !result.Valid {
					valid[i] = false
					scores[i] = math.Inf(1)
					return
				}
				scores[i] = result.Score
			}(i, c)
		}
		wg.Wait()
		return scores
	}

	raw[primary.Name()] = evaluateOne(primary)
	survivors := countValid(valid)
	log.Record("CoreAdviser", "primary filter %s: %d of %d candidates valid", primary.Name(), survivors, len(candidates))

	cullTo := req.Settings.CoreAdviserMaximumMagneticsAfterFiltering
	if cullTo > 0 && survivors > cullTo {
		valid = cullToTopN(valid, raw[primary.Name()], cullTo)
		log.Record("CoreAdviser", "culled to top %d candidates after primary filter", cullTo)
	}

	for _, f := range active {
		if f.Name() == primary.Name() {
			continue
		}
		scores := evaluateOne(f)
		raw[f.Name()] = scores
		log.Record("CoreAdviser", "filter %s evaluated %d candidates", f.Name(), len(candidates))
	}

	aggregate := make([]float64, len(candidates))
	for name, scores := range raw {
		// Invalid candidates carry +Inf and are dropped below; they take the
		// worst finite score here so they do not stretch the min-max range.
		worst := math.Inf(-1)
		for _, s := range scores {
			if !math.IsInf(s, 1) && s > worst {
				worst = s
			}
		}
		bounded := make([]float64, len(scores))
		for i, s := range scores {
			bounded[i] = s
			if math.IsInf(s, 1) {
				bounded[i] = worst
			}
		}
		// Raw scores are lower-is-better; inverting makes the best candidate
		// normalise to 1 for the descending sort.
		w := filter.Weighting{Weight: req.Weights[name], Invert: true}
		normalized := filter.Normalize(bounded, w)
		for i, n := range normalized {
			aggregate[i] += n
		}
	}

	var out []scoredCandidate
	for i, c := range candidates {
		if !valid[i] {
			continue
		}
		out = append(out, scoredCandidate{magnetic: c, reference: references[i], score: aggregate[i]})
	}
	return out, nil
}

func countValid(valid []bool) int {
	n := 0
	for _, v := range valid {
		if v {
			n++
		}
	}
	return n
}

func cullToTopN(valid []bool, scores []float64, n int) []bool {
	type idxScore struct {
		i int
		s float64
	}
	var candidates []idxScore
	for i, v := range valid {
		if v {
			candidates = append(candidates, idxScore{i, scores[i]})
		}
	}
	sort.Slice(candidates, func(a, b int) bool { return candidates[a].s < candidates[b].s })
	if len(candidates) <= n {
		return valid
	}
	keep := make(map[int]bool, n)
	for _, c := range candidates[:n] {
		keep[c.i] = true
	}
	out := make([]bool, len(valid))
	for i := range out {
		out[i] = keep[i]
	}
	return out
}

func enabledFilters(req Request) []filter.Filter {
	all := map[filter.Name]filter.Filter{
		filter.AreaProduct: filter.AreaProductFilter{
			UtilizationFactor:             req.AreaProductConstants.UtilizationFactor,
			CurrentDensityVariationFactor: req.AreaProductConstants.CurrentDensityVariationFactor,
			MaximumFluxDensity:            req.AreaProductConstants.MaximumFluxDensity,
			MaximumCurrentDensity:         req.AreaProductConstants.MaximumCurrentDensity,
		},
		filter.EnergyStored:     filter.EnergyStoredFilter{},
		filter.Cost:             filter.CostFilter{},
		filter.Losses:           filter.LossesFilter{FringingModel: req.FringingModel},
		filter.Dimensions:       filter.DimensionsFilter{},
		filter.MinimumImpedance: filter.MinimumImpedanceFilter{FringingModel: req.FringingModel},
	}
	var out []filter.Filter
	for _, name := range filter.Priority {
		if req.Weights[name] > 0 {
			out = append(out, all[name])
		}
	}
	return out
}

func selectPrimary(active []filter.Filter, weights map[filter.Name]float64) filter.Filter {
	best := active[0]
	bestWeight := weights[best.Name()]
	for _, f := range active[1:] {
		if weights[f.Name()] > bestWeight {
			best, bestWeight = f, weights[f.Name()]
		}
	}
	return best
}

func referenceCandidates(candidates []model.Magnetic) []string {
	refs := make([]string, len(candidates))
	for i, c := range candidates {
		refs[i] = fmt.Sprintf("%s/%s/stacks=%d", c.Core.Shape.Name, c.Core.Material.Name, c.Core.Stacks)
	}
	return refs
}

func maxTemperatureOf(in model.Inputs) float64 {
	_, t := operatingExtremes(in)
	return t
}
