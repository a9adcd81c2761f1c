package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundedValueRequiresAtLeastOneField(t *testing.T) {
	assert.Error(t, BoundedValue{}.Validate())
}

func TestBoundedValueRejectsInvertedRange(t *testing.T) {
	assert.Error(t, Range(5, 1).Validate())
}

func TestBoundedValueAllowsNominalOnBoundary(t *testing.T) {
	min := 1.0
	require.NoError(t, BoundedValue{Nominal: &min, Minimum: &min}.Validate())
}

func TestBoundedValueExcludeMinRejectsNominalOnBoundary(t *testing.T) {
	min := 1.0
	err := BoundedValue{Nominal: &min, Minimum: &min, ExcludeMin: true}.Validate()
	assert.Error(t, err)
}

func TestBoundedValueExcludeMinAcceptsNominalStrictlyAbove(t *testing.T) {
	min, nominal := 1.0, 1.5
	require.NoError(t, BoundedValue{Nominal: &nominal, Minimum: &min, ExcludeMin: true}.Validate())
}

func TestBoundedValueExcludeMaxRejectsNominalOnBoundary(t *testing.T) {
	max := 10.0
	err := BoundedValue{Nominal: &max, Maximum: &max, ExcludeMax: true}.Validate()
	assert.Error(t, err)
}

func TestBoundedValueExcludeFlagsRejectEqualRange(t *testing.T) {
	v := 3.0
	err := BoundedValue{Minimum: &v, Maximum: &v, ExcludeMin: true}.Validate()
	assert.Error(t, err)
}

func TestBoundedValueEqualRangeAllowedWithoutExclude(t *testing.T) {
	v := 3.0
	require.NoError(t, BoundedValue{Minimum: &v, Maximum: &v}.Validate())
}
