package conditions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assertkit/assertkit/pkg/check"
	"github.com/assertkit/assertkit/pkg/conditions"
)

// End-to-end diagnostics over the built-in catalog. These pin the full
// sentence output of the engine, including which failing condition gets the
// blame when several could.
func TestDiagnostics(t *testing.T) {
	t.Parallel()

	t.Run("positive integer or string", func(t *testing.T) {
		descriptor := []check.Group{
			{conditions.String},
			{conditions.Positive, conditions.Integer},
		}

		assert.True(t, check.Assert(3, descriptor...))
		assert.True(t, check.Assert("three", descriptor...))
		assert.False(t, check.Assert(-3, descriptor...))

		err := check.Require(-3, descriptor...)
		require.Error(t, err)

		var diag *check.Error
		require.ErrorAs(t, err, &diag)
		assert.Equal(t, "positive integer OR string", diag.Expected)
		assert.Equal(t, "a negative number or 0", diag.Is)
		assert.Equal(t, "Expected positive integer OR string, got a negative number or 0", err.Error())
	})

	t.Run("divisible and greater than", func(t *testing.T) {
		descriptor := []check.Group{
			{conditions.DivisibleBy(5), conditions.GreaterThan(25)},
		}

		assert.True(t, check.Assert(30, descriptor...))

		assert.False(t, check.Assert(25, descriptor...))
		assert.Equal(t, "a number less than or equal to 25", check.MessageIs(25, descriptor...))

		assert.False(t, check.Assert(26, descriptor...))
		assert.Equal(t, "a number not divisible by 5", check.MessageIs(26, descriptor...))

		assert.Equal(t, "number that is divisible by 5 and is greater than 25",
			check.MessageExpected(descriptor...))
	})

	t.Run("shared number gate is counted once", func(t *testing.T) {
		assert.Equal(t, 3, check.PassCount(7, check.Group{conditions.Positive, conditions.Integer}))
	})

	t.Run("blames the gate for a value of the wrong type", func(t *testing.T) {
		descriptor := []check.Group{{conditions.Positive, conditions.Integer}}
		assert.Equal(t, "a string", check.MessageIs("7", descriptor...))
		assert.Equal(t, "an array", check.MessageIs([]int{7}, descriptor...))
	})

	t.Run("nested catalogs compose", func(t *testing.T) {
		scores := conditions.ArrayOf(conditions.Between(0, 100))
		payload := conditions.WithKeys("name", "scores")

		descriptor := []check.Group{{payload}}
		assert.True(t, check.Assert(map[string]any{"name": "x", "scores": 1}, descriptor...))

		assert.True(t, check.Assert([]int{10, 90}, check.Group{scores}))
		assert.False(t, check.Assert([]int{10, 101}, check.Group{scores}))
	})
}
