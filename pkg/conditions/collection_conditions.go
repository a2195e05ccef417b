package conditions

import (
	"reflect"

	"github.com/assertkit/assertkit/pkg/check"
)

var arrayGate = check.Descriptor{check.Group{Array}}

// NonEmptyArray holds for slices and arrays with at least one element.
var NonEmptyArray = &check.Condition{
	Assert:     func(value any) bool { return reflect.ValueOf(value).Len() > 0 },
	Conditions: arrayGate,
	ShouldBe:   check.ShouldBe{Before: "non-empty"},
	Is:         check.Is{Text: "an empty array"},
}

// ArrayOf returns a fresh condition holding for slices and arrays whose
// every element satisfies elem. It panics when elem is nil.
func ArrayOf(elem *check.Condition) *check.Condition {
	if elem == nil {
		panic("conditions: ArrayOf requires a non-nil element condition")
	}
	expected := check.MessageExpected(check.Group{elem})
	return &check.Condition{
		Assert: func(value any) bool {
			rv := reflect.ValueOf(value)
			for i := 0; i < rv.Len(); i++ {
				if !check.Assert(rv.Index(i).Interface(), check.Group{elem}) {
					return false
				}
			}
			return true
		},
		Conditions: arrayGate,
		ShouldBe:   check.ShouldBe{After: "of " + expected + " elements"},
		Is:         check.Is{Text: "an array with other elements"},
	}
}
