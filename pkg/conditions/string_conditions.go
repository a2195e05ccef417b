package conditions

import (
	"fmt"
	"regexp"

	"github.com/assertkit/assertkit/pkg/check"
)

var stringGate = check.Descriptor{check.Group{String}}

// NonEmptyString holds for strings with at least one character.
var NonEmptyString = &check.Condition{
	Assert:     func(value any) bool { s, _ := value.(string); return s != "" },
	Conditions: stringGate,
	ShouldBe:   check.ShouldBe{Before: "non-empty"},
	Is:         check.Is{Text: "an empty string"},
}

// Matching returns a fresh condition holding for strings matched by re. It
// panics when re is nil.
func Matching(re *regexp.Regexp) *check.Condition {
	if re == nil {
		panic("conditions: Matching requires a non-nil pattern")
	}
	return &check.Condition{
		Assert: func(value any) bool {
			s, _ := value.(string)
			return re.MatchString(s)
		},
		Conditions: stringGate,
		ShouldBe:   check.ShouldBe{After: fmt.Sprintf("that matches %v", re)},
		Is:         check.Is{Text: fmt.Sprintf("a string not matching %v", re)},
	}
}

// Keyword returns a fresh condition holding for strings equal to one of the
// given words. The expected message enumerates the quoted words. It panics
// when no words are given.
func Keyword(words ...string) *check.Condition {
	if len(words) == 0 {
		panic("conditions: Keyword requires at least one word")
	}
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = fmt.Sprintf("%q", w)
	}
	return &check.Condition{
		Assert: func(value any) bool {
			s, ok := value.(string)
			if !ok {
				return false
			}
			for _, w := range words {
				if s == w {
					return true
				}
			}
			return false
		},
		Conditions: stringGate,
		ShouldBe:   check.ShouldBe{Type: check.Enumerate(quoted...)},
		Is: check.Is{Compute: func(args check.IsArgs) string {
			if args.Type == check.TagString {
				return fmt.Sprintf("%q", args.Value)
			}
			return actualType(args)
		}},
	}
}
