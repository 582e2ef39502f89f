package predicate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/constraints/pkg/predicate"
)

func ptr[T any](v T) *T {
	return &v
}

func TestIsNumeric(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"123", "00123", "-00123", "0", "-0", "+123"} {
		assert.True(t, predicate.IsNumeric(s), s)
	}
	for _, s := range []string{"", " ", "123.123", "abc", "1e5"} {
		assert.False(t, predicate.IsNumeric(s), s)
	}
}

func TestIsDecimal(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"123", "00123", "-00123", "0", "-0", "+123", "0.01", ".1", "1.0", "-.25", "-0.5"} {
		assert.True(t, predicate.IsDecimal(s), s)
	}
	for _, s := range []string{"", "..1", "1.1.1", "abc", "1.", "-"} {
		assert.False(t, predicate.IsDecimal(s), s)
	}
}

func TestIsInt(t *testing.T) {
	t.Parallel()

	t.Run("without bounds", func(t *testing.T) {
		assert.True(t, predicate.IsInt("13", predicate.IntOptions{}))
		assert.True(t, predicate.IsInt("-0", predicate.IntOptions{}))
		assert.True(t, predicate.IsInt("+1", predicate.IntOptions{}))
		assert.False(t, predicate.IsInt("01", predicate.IntOptions{}))
		assert.False(t, predicate.IsInt("1.0", predicate.IntOptions{}))
		assert.False(t, predicate.IsInt("", predicate.IntOptions{}))
	})

	t.Run("with bounds", func(t *testing.T) {
		opts := predicate.IntOptions{Min: ptr[int64](10), Max: ptr[int64](15)}
		assert.True(t, predicate.IsInt("10", opts))
		assert.True(t, predicate.IsInt("15", opts))
		assert.False(t, predicate.IsInt("9", opts))
		assert.False(t, predicate.IsInt("16", opts))
	})

	t.Run("overflow", func(t *testing.T) {
		assert.False(t, predicate.IsInt("99999999999999999999", predicate.IntOptions{}))
	})
}

func TestIsFloat(t *testing.T) {
	t.Parallel()

	t.Run("without bounds", func(t *testing.T) {
		for _, s := range []string{"123", "123.123", "-0.22250738585072011e-307", ".5", "+1.5", "1e10"} {
			assert.True(t, predicate.IsFloat(s, predicate.FloatOptions{}), s)
		}
		for _, s := range []string{"", ".", "-", "abc", "1e", "1.2.3"} {
			assert.False(t, predicate.IsFloat(s, predicate.FloatOptions{}), s)
		}
	})

	t.Run("with bounds", func(t *testing.T) {
		opts := predicate.FloatOptions{Min: ptr(3.7), Max: ptr(5.5)}
		assert.True(t, predicate.IsFloat("3.7", opts))
		assert.True(t, predicate.IsFloat("5.5", opts))
		assert.False(t, predicate.IsFloat("3.69", opts))
		assert.False(t, predicate.IsFloat("5.6", opts))
	})
}

func TestIsDivisibleBy(t *testing.T) {
	t.Parallel()

	assert.True(t, predicate.IsDivisibleBy(10, 2))
	assert.True(t, predicate.IsDivisibleBy(-10, 5))
	assert.True(t, predicate.IsDivisibleBy(7.5, 2.5))
	assert.True(t, predicate.IsDivisibleBy(0, 3))
	assert.False(t, predicate.IsDivisibleBy(10, 3))
	assert.False(t, predicate.IsDivisibleBy(10, 0))
}
