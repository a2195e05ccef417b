package conditions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assertkit/assertkit/pkg/check"
	"github.com/assertkit/assertkit/pkg/conditions"
)

func TestInteger(t *testing.T) {
	t.Parallel()

	t.Run("holds for whole numbers of any numeric kind", func(t *testing.T) {
		assert.True(t, check.Assert(5, check.Group{conditions.Integer}))
		assert.True(t, check.Assert(-3, check.Group{conditions.Integer}))
		assert.True(t, check.Assert(uint8(9), check.Group{conditions.Integer}))
		assert.True(t, check.Assert(4.0, check.Group{conditions.Integer}))
	})

	t.Run("fails for fractional numbers", func(t *testing.T) {
		assert.False(t, check.Assert(4.2, check.Group{conditions.Integer}))
		assert.Equal(t, "a floating point number",
			check.MessageIs(4.2, check.Group{conditions.Integer}))
	})

	t.Run("fails for non-numbers without running the predicate", func(t *testing.T) {
		assert.False(t, check.Assert("5", check.Group{conditions.Integer}))
		assert.Equal(t, "a string", check.MessageIs("5", check.Group{conditions.Integer}))
	})
}

func TestPositiveAndNegative(t *testing.T) {
	t.Parallel()

	t.Run("positive excludes zero", func(t *testing.T) {
		assert.True(t, check.Assert(1, check.Group{conditions.Positive}))
		assert.False(t, check.Assert(0, check.Group{conditions.Positive}))
		assert.False(t, check.Assert(-1, check.Group{conditions.Positive}))
	})

	t.Run("negative excludes zero", func(t *testing.T) {
		assert.True(t, check.Assert(-1, check.Group{conditions.Negative}))
		assert.False(t, check.Assert(0, check.Group{conditions.Negative}))
	})

	t.Run("expected message reads as a sentence", func(t *testing.T) {
		assert.Equal(t, "positive number", check.MessageExpected(check.Group{conditions.Positive}))
		assert.Equal(t, "negative integer",
			check.MessageExpected(check.Group{conditions.Negative, conditions.Integer}))
	})
}

func TestDivisibleBy(t *testing.T) {
	t.Parallel()

	t.Run("holds for multiples", func(t *testing.T) {
		by5 := conditions.DivisibleBy(5)
		assert.True(t, check.Assert(30, check.Group{by5}))
		assert.False(t, check.Assert(26, check.Group{by5}))
		assert.Equal(t, "a number not divisible by 5", check.MessageIs(26, check.Group{by5}))
	})

	t.Run("panics for a zero divisor", func(t *testing.T) {
		assert.Panics(t, func() { conditions.DivisibleBy(0) })
	})
}

func TestComparisons(t *testing.T) {
	t.Parallel()

	t.Run("greater than is strict", func(t *testing.T) {
		gt := conditions.GreaterThan(25)
		assert.True(t, check.Assert(26, check.Group{gt}))
		assert.False(t, check.Assert(25, check.Group{gt}))
		assert.Equal(t, "a number less than or equal to 25", check.MessageIs(25, check.Group{gt}))
	})

	t.Run("less than is strict", func(t *testing.T) {
		lt := conditions.LessThan(10)
		assert.True(t, check.Assert(9, check.Group{lt}))
		assert.False(t, check.Assert(10, check.Group{lt}))
		assert.Equal(t, "a number greater than or equal to 10", check.MessageIs(10, check.Group{lt}))
	})

	t.Run("between is inclusive", func(t *testing.T) {
		r := conditions.Between(1, 10)
		assert.True(t, check.Assert(1, check.Group{r}))
		assert.True(t, check.Assert(10, check.Group{r}))
		assert.False(t, check.Assert(11, check.Group{r}))
		require.Equal(t, "number that is between 1 and 10", check.MessageExpected(check.Group{r}))
	})

	t.Run("between rejects an inverted range at construction", func(t *testing.T) {
		assert.Panics(t, func() { conditions.Between(10, 1) })
	})
}
