package check

// Condition is a single composable validation unit: a predicate over an
// arbitrary value, an optional descriptor of prerequisite conditions the
// value must satisfy before the predicate is meaningful, and the two message
// fragments used to build diagnostics.
//
// Conditions must not be mutated after first use. They are commonly shared
// by reference between many parents (for example, many numeric conditions
// declare the same number condition as a prerequisite), so the condition
// graph is a DAG rather than a tree; all recursive traversals in this
// package deduplicate by pointer identity.
type Condition struct {
	// Assert reports whether value satisfies the condition. It is only
	// invoked once every prerequisite in Conditions holds for value.
	Assert func(value any) bool

	// Conditions gates Assert: the same value must satisfy this descriptor
	// before Assert is consulted. A nil or empty descriptor means no gating.
	Conditions Descriptor

	// ShouldBe contributes to the "expected" half of a diagnostic.
	ShouldBe ShouldBe

	// Is describes the failure case for the "got" half of a diagnostic.
	Is Is
}

// Group is an AND-group of conditions: every member must hold. A single
// condition is expressed as a one-element group.
type Group []*Condition

// Descriptor is an ordered disjunction of AND-groups: the value satisfies
// the descriptor when any one group fully holds. A descriptor with zero
// groups never asserts.
type Descriptor []Group

// ShouldBe is one condition's contribution to the "should be" sentence.
// Either the literal Before/Type/After parts are set, or Compute is set and
// derives them from the partial fragment accumulated so far; Compute takes
// precedence when non-nil.
type ShouldBe struct {
	Before string
	Type   string
	After  string

	Compute func(partial Fragment) ShouldBe
}

func (s ShouldBe) resolve(partial Fragment) ShouldBe {
	if s.Compute != nil {
		return s.Compute(partial)
	}
	return s
}

// IsArgs carries the inputs available to a computed Is message: the failing
// value, its classified tag and the indefinite article for that tag.
type IsArgs struct {
	Value   any
	Type    Tag
	Article string
}

// Is is the failure-case message of a condition: either the literal Text or,
// when Compute is non-nil, a string derived from the failing value.
type Is struct {
	Text string

	Compute func(args IsArgs) string
}

// Render produces the failure-case message for args. Compute takes
// precedence over Text when non-nil.
func (m Is) Render(args IsArgs) string {
	if m.Compute != nil {
		return m.Compute(args)
	}
	return m.Text
}

// visited is the per-call identity set threaded through every recursive
// accounting pass. Keyed on pointers, never on structure: two distinct
// conditions with identical fields are still scored separately, while one
// condition reachable through several parents is scored once.
type visited map[*Condition]struct{}

func (v visited) seen(c *Condition) bool {
	if _, ok := v[c]; ok {
		return true
	}
	v[c] = struct{}{}
	return false
}
