package conditions

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/assertkit/assertkit/pkg/check"
)

var objectGate = check.Descriptor{check.Group{Object}}

// WithKeys returns a fresh condition holding for maps with string keys that
// contain every given key. It panics when no keys are given.
func WithKeys(keys ...string) *check.Condition {
	if len(keys) == 0 {
		panic("conditions: WithKeys requires at least one key")
	}
	noun := "key"
	if len(keys) > 1 {
		noun = "keys"
	}
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = fmt.Sprintf("%q", k)
	}
	return &check.Condition{
		Assert:     func(value any) bool { return len(missingKeys(value, keys)) == 0 },
		Conditions: objectGate,
		ShouldBe:   check.ShouldBe{After: "that has " + noun + " " + joinAnd(quoted)},
		Is: check.Is{Compute: func(args check.IsArgs) string {
			missing := missingKeys(args.Value, keys)
			if len(missing) == 0 {
				return actualType(args)
			}
			q := make([]string, len(missing))
			for i, k := range missing {
				q[i] = fmt.Sprintf("%q", k)
			}
			mnoun := "key"
			if len(missing) > 1 {
				mnoun = "keys"
			}
			return "an object missing the " + mnoun + " " + joinAnd(q)
		}},
	}
}

// joinAnd renders a conjunction: `"a", "b" and "c"`.
func joinAnd(words []string) string {
	if len(words) <= 1 {
		return strings.Join(words, "")
	}
	return strings.Join(words[:len(words)-1], ", ") + " and " + words[len(words)-1]
}

// missingKeys reports which keys are absent from value. A value that is not
// a string-keyed map misses every key.
func missingKeys(value any, keys []string) []string {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return keys
	}
	var missing []string
	for _, k := range keys {
		if !rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).IsValid() {
			missing = append(missing, k)
		}
	}
	return missing
}
