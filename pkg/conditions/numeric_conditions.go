package conditions

import (
	"fmt"
	"math"
	"reflect"

	"github.com/assertkit/assertkit/pkg/check"
)

// numberGate is the shared prerequisite descriptor of every numeric
// condition. Sharing one instance keeps the gate a single node in the
// condition graph.
var numberGate = check.Descriptor{check.Group{Number}}

// numberOf converts a value that already satisfied the Number gate into a
// float64 for comparison.
func numberOf(value any) float64 {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	default:
		return math.NaN()
	}
}

// Integer holds for numbers without a fractional part.
var Integer = &check.Condition{
	Assert:     func(value any) bool { f := numberOf(value); return math.Trunc(f) == f },
	Conditions: numberGate,
	ShouldBe:   check.ShouldBe{Type: "integer"},
	Is:         check.Is{Text: "a floating point number"},
}

// Positive holds for numbers strictly greater than zero.
var Positive = &check.Condition{
	Assert:     func(value any) bool { return numberOf(value) > 0 },
	Conditions: numberGate,
	ShouldBe:   check.ShouldBe{Before: "positive"},
	Is:         check.Is{Text: "a negative number or 0"},
}

// Negative holds for numbers strictly less than zero.
var Negative = &check.Condition{
	Assert:     func(value any) bool { return numberOf(value) < 0 },
	Conditions: numberGate,
	ShouldBe:   check.ShouldBe{Before: "negative"},
	Is:         check.Is{Text: "a positive number or 0"},
}

// DivisibleBy returns a fresh condition holding for numbers divisible by n.
// It panics when n is zero.
func DivisibleBy(n int) *check.Condition {
	if n == 0 {
		panic("conditions: DivisibleBy requires a non-zero divisor")
	}
	return &check.Condition{
		Assert:     func(value any) bool { return math.Mod(numberOf(value), float64(n)) == 0 },
		Conditions: numberGate,
		ShouldBe:   check.ShouldBe{After: fmt.Sprintf("that is divisible by %d", n)},
		Is:         check.Is{Text: fmt.Sprintf("a number not divisible by %d", n)},
	}
}

// GreaterThan returns a fresh condition holding for numbers strictly greater
// than n.
func GreaterThan(n float64) *check.Condition {
	return &check.Condition{
		Assert:     func(value any) bool { return numberOf(value) > n },
		Conditions: numberGate,
		ShouldBe:   check.ShouldBe{After: fmt.Sprintf("that is greater than %v", n)},
		Is:         check.Is{Text: fmt.Sprintf("a number less than or equal to %v", n)},
	}
}

// LessThan returns a fresh condition holding for numbers strictly less
// than n.
func LessThan(n float64) *check.Condition {
	return &check.Condition{
		Assert:     func(value any) bool { return numberOf(value) < n },
		Conditions: numberGate,
		ShouldBe:   check.ShouldBe{After: fmt.Sprintf("that is less than %v", n)},
		Is:         check.Is{Text: fmt.Sprintf("a number greater than or equal to %v", n)},
	}
}

// Between returns a fresh condition holding for numbers in the inclusive
// range [min, max]. It panics when min is greater than max.
func Between(min, max float64) *check.Condition {
	if min > max {
		panic("conditions: Between requires min <= max")
	}
	return &check.Condition{
		Assert: func(value any) bool {
			f := numberOf(value)
			return f >= min && f <= max
		},
		Conditions: numberGate,
		ShouldBe:   check.ShouldBe{After: fmt.Sprintf("that is between %v and %v", min, max)},
		Is:         check.Is{Text: fmt.Sprintf("a number not between %v and %v", min, max)},
	}
}
