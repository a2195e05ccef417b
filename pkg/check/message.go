package check

import (
	"slices"
	"strings"
)

// typePlaceholder stands in for the type slot of a fragment whose conditions
// never contributed one.
const typePlaceholder = "something"

// Fragment accumulates the pieces of one "should be" sentence. Before and
// After collect every contribution in insertion order; Type keeps the first
// value written and is never overwritten by later merges, so the shallowest
// condition in a prerequisite chain names the type.
type Fragment struct {
	Before []string
	Type   string
	After  []string
}

// merge combines f with a later contribution. Lists concatenate, the
// receiver's Type wins. The result shares no backing storage with either
// input.
func (f Fragment) merge(other Fragment) Fragment {
	m := Fragment{
		Before: concat(f.Before, other.Before),
		Type:   f.Type,
		After:  concat(f.After, other.After),
	}
	if m.Type == "" {
		m.Type = other.Type
	}
	return m
}

func (f Fragment) equal(other Fragment) bool {
	return f.Type == other.Type &&
		slices.Equal(f.Before, other.Before) &&
		slices.Equal(f.After, other.After)
}

func concat(a, b []string) []string {
	if len(a)+len(b) == 0 {
		return nil
	}
	out := make([]string, 0, len(a)+len(b))
	return append(append(out, a...), b...)
}

// String renders the fragment into prose: the Before items joined by ", ",
// the Type (or a placeholder), then the After items. After items starting
// with "that" sort behind the rest, and every "that" after the first is
// rewritten to "and" so chained clauses read as one sentence.
func (f Fragment) String() string {
	var b strings.Builder
	if len(f.Before) > 0 {
		b.WriteString(strings.Join(f.Before, ", "))
		b.WriteByte(' ')
	}
	if f.Type != "" {
		b.WriteString(f.Type)
	} else {
		b.WriteString(typePlaceholder)
	}
	if len(f.After) > 0 {
		b.WriteByte(' ')
		b.WriteString(joinAfter(f.After))
	}
	return b.String()
}

func joinAfter(items []string) string {
	var plain, that []string
	for _, item := range items {
		if strings.HasPrefix(item, "that") {
			that = append(that, item)
		} else {
			plain = append(plain, item)
		}
	}
	for i := 1; i < len(that); i++ {
		that[i] = "and" + strings.TrimPrefix(that[i], "that")
	}
	return strings.Join(append(plain, that...), " ")
}

// MergeExpected folds every condition's ShouldBe fragment along the
// descriptor into one fragment per surviving alternative, structurally
// deduplicated. Groups merge horizontally (each member's Before/After
// appended, first Type wins); each condition's prerequisite descriptor is
// resolved recursively and collapsed into the accumulator, except that a
// prerequisite resolving to several fragments splits the alternative into
// one output per branch. Alternatives are emitted with later descriptor
// entries first, the order diagnostics read best in.
func MergeExpected(descriptor ...Group) []Fragment {
	return mergeExpected(Descriptor(descriptor))
}

func mergeExpected(d Descriptor) []Fragment {
	var out []Fragment
	for i := len(d) - 1; i >= 0; i-- {
		var acc Fragment
		for _, c := range d[i] {
			sb := c.ShouldBe.resolve(acc)
			acc = acc.merge(Fragment{
				Before: single(sb.Before),
				Type:   sb.Type,
				After:  single(sb.After),
			})
		}

		// Prerequisites collapse into the accumulator only after every
		// sibling has contributed, so a shallow Type always beats one
		// inherited from a sibling's prerequisite chain.
		var branches []Fragment
		for _, c := range d[i] {
			if len(c.Conditions) == 0 {
				continue
			}
			subs := mergeExpected(c.Conditions)
			if len(subs) == 1 {
				acc = acc.merge(subs[0])
			} else if len(subs) > 1 {
				branches = append(branches, subs...)
			}
		}
		if len(branches) == 0 {
			out = append(out, acc)
			continue
		}
		for _, branch := range branches {
			out = append(out, acc.merge(branch))
		}
	}
	return dedupFragments(out)
}

func single(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}

func dedupFragments(frags []Fragment) []Fragment {
	out := make([]Fragment, 0, len(frags))
	for _, f := range frags {
		if !slices.ContainsFunc(out, f.equal) {
			out = append(out, f)
		}
	}
	return out
}

// MessageExpected renders the whole descriptor's merged fragments into the
// "expected" half of a diagnostic, alternatives joined by " OR ".
func MessageExpected(descriptor ...Group) string {
	frags := MergeExpected(descriptor...)
	parts := make([]string, len(frags))
	for i, f := range frags {
		parts[i] = f.String()
	}
	return strings.Join(parts, " OR ")
}

// MessageIs renders the "got" half of a diagnostic for a failing value: the
// Is message of the condition FindFailing blames, or the empty string when
// no condition can be blamed.
func MessageIs(value any, descriptor ...Group) string {
	failing := FindFailing(value, descriptor...)
	if failing == nil {
		return ""
	}
	tag := Classify(value)
	return failing.Is.Render(IsArgs{Value: value, Type: tag, Article: Article(string(tag))})
}
