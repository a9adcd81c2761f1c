// Package model defines the data model: the entities every other package
// operates on. Fields that are optional are Go pointers so "not yet
// computed" is representable without sentinel values, replacing ad-hoc
// nullability with explicit sum types.
package model

import "fmt"

// BoundedValue is a {nominal?, minimum?, maximum?, exclude-min?,
// exclude-max?}. At least one of Nominal/Minimum/Maximum must be set.
type BoundedValue struct {
	Nominal     *float64
	Minimum     *float64
	Maximum     *float64
	ExcludeMin  bool
	ExcludeMax  bool
}

// Validate enforces the invariants: if both bounds are present min <=
// max (strictly < when ExcludeMin or ExcludeMax narrows that edge), and if
// nominal is present alongside a single bound, nominal lies on the correct
// side of it — strictly on that side when the matching Exclude flag is set,
// since ExcludeMin/ExcludeMax mean that bound itself is not an admissible
// value, only a limit approached but never reached.
func (b BoundedValue) Validate() error {
	if b.Nominal == nil && b.Minimum == nil && b.Maximum == nil {
		return fmt.Errorf("model: BoundedValue must set at least one of nominal/minimum/maximum")
	}
	if b.Minimum != nil && b.Maximum != nil {
		if (b.ExcludeMin || b.ExcludeMax) && *b.Minimum >= *b.Maximum {
			return fmt.Errorf("model: BoundedValue minimum %g is not strictly below maximum %g", *b.Minimum, *b.Maximum)
		}
		if !b.ExcludeMin && !b.ExcludeMax && *b.Minimum > *b.Maximum {
			return fmt.Errorf("model: BoundedValue minimum %g exceeds maximum %g", *b.Minimum, *b.Maximum)
		}
	}
	if b.Nominal != nil {
		if b.Minimum != nil && b.Maximum == nil {
			if b.ExcludeMin && *b.Nominal <= *b.Minimum {
				return fmt.Errorf("model: BoundedValue nominal %g must be strictly above excluded minimum %g", *b.Nominal, *b.Minimum)
			}
			if !b.ExcludeMin && *b.Nominal < *b.Minimum {
				return fmt.Errorf("model: BoundedValue nominal %g below minimum %g", *b.Nominal, *b.Minimum)
			}
		}
		if b.Maximum != nil && b.Minimum == nil {
			if b.ExcludeMax && *b.Nominal >= *b.Maximum {
				return fmt.Errorf("model: BoundedValue nominal %g must be strictly below excluded maximum %g", *b.Nominal, *b.Maximum)
			}
			if !b.ExcludeMax && *b.Nominal > *b.Maximum {
				return fmt.Errorf("model: BoundedValue nominal %g above maximum %g", *b.Nominal, *b.Maximum)
			}
		}
	}
	return nil
}

// DimensionalValues selects which bound GetRequirementValue prefers when no
// nominal is present.
type DimensionalValues int

const (
	DimensionalNominal DimensionalValues = iota
	DimensionalMinimum
	DimensionalMaximum
)

// GetRequirementValue resolves a requirement to a scalar: nominal if
// present, else the midpoint of min/max, else the single bound that is
// present. preference is
// only consulted when there is no nominal and both bounds are present but
// the caller wants an endpoint rather than the midpoint.
func GetRequirementValue(b BoundedValue, preference DimensionalValues) (float64, error) {
	if b.Nominal != nil {
		return *b.Nominal, nil
	}
	switch preference {
	case DimensionalMinimum:
		if b.Minimum != nil {
			return *b.Minimum, nil
		}
	case DimensionalMaximum:
		if b.Maximum != nil {
			return *b.Maximum, nil
		}
	}
	if b.Minimum != nil && b.Maximum != nil {
		return (*b.Minimum + *b.Maximum) / 2, nil
	}
	if b.Minimum != nil {
		return *b.Minimum, nil
	}
	if b.Maximum != nil {
		return *b.Maximum, nil
	}
	return 0, fmt.Errorf("model: BoundedValue has no usable value")
}

// Fixed builds a BoundedValue with only Nominal set, the common case.
func Fixed(v float64) BoundedValue {
	return BoundedValue{Nominal: &v}
}

// Range builds a BoundedValue with Minimum and Maximum set, no nominal.
func Range(min, max float64) BoundedValue {
	return BoundedValue{Minimum: &min, Maximum: &max}
}
