package windingadviser

import "github.com/openmagnetics-go/mkf/pkg/coil"

// basePatterns builds the small set of winding orders enumerated for N
// distinct windings: one section per winding in
// declaration order (no interleaving), and — when there are exactly two
// windings — the fully interleaved alternation, the construction most
// transformer designs reach for to pull down leakage inductance.
func basePatterns(names []string) []coil.Pattern {
	patterns := []coil.Pattern{append(coil.Pattern{}, names...)}
	if len(names) == 2 {
		patterns = append(patterns, coil.Pattern{names[0], names[1], names[0]})
	}
	return patterns
}

// repeat tiles a pattern's sections count by the given repetition factor,
// splitting each winding's turns evenly across the repeated occurrences
// — repeating the base order
// rather than widening each section.
func repeat(base coil.Pattern, repetitions int) coil.Pattern {
	if repetitions <= 1 {
		return base
	}
	out := make(coil.Pattern, 0, len(base)*repetitions)
	for i := 0; i < repetitions; i++ {
		out = append(out, base...)
	}
	return out
}

// candidatePatterns enumerates the (pattern, repetitions) combinations
// the adviser tries, bounded by maxRepetitions.
func candidatePatterns(names []string, maxRepetitions int) []coil.Pattern {
	if maxRepetitions < 1 {
		maxRepetitions = 1
	}
	var out []coil.Pattern
	for _, base := range basePatterns(names) {
		for r := 1; r <= maxRepetitions; r++ {
			out = append(out, repeat(base, r))
		}
	}
	return out
}
