package check

// Assert reports whether value satisfies the descriptor: some group must
// fully hold (OR over groups, AND within a group, recursively through each
// condition's prerequisites, always against the same value).
//
// Validation failure is not an error here; use Require for a diagnostic.
// A panic inside a condition's predicate propagates to the caller.
func Assert(value any, descriptor ...Group) bool {
	return evaluate(value, descriptor)
}

func evaluate(value any, d Descriptor) bool {
	for _, g := range d {
		if groupHolds(value, g) {
			return true
		}
	}
	return false
}

// groupHolds checks prerequisites for the whole group before invoking any
// member's own predicate, so a prerequisite failure anywhere in the group
// guarantees no predicate in the group runs.
func groupHolds(value any, g Group) bool {
	for _, c := range g {
		if len(c.Conditions) > 0 && !evaluate(value, c.Conditions) {
			return false
		}
	}
	for _, c := range g {
		if !c.Assert(value) {
			return false
		}
	}
	return true
}

// PassCount returns the number of conditions in the descriptor, prerequisites
// included, that value satisfies. Conditions shared by reference are counted
// once per call. A condition whose prerequisites fail is not counted and its
// predicate is not invoked.
func PassCount(value any, descriptor ...Group) int {
	return passCount(value, Descriptor(descriptor), make(visited))
}

func passCount(value any, d Descriptor, seen visited) int {
	n := 0
	for _, g := range d {
		for _, c := range g {
			if seen.seen(c) {
				continue
			}
			gated := len(c.Conditions) > 0
			if gated {
				n += passCount(value, c.Conditions, seen)
			}
			if gated && !evaluate(value, c.Conditions) {
				continue
			}
			if c.Assert(value) {
				n++
			}
		}
	}
	return n
}
