package check

import "math"

// Scoring weights for the relevance search. The pass bonus dominates the
// depth penalty so that the group closest to succeeding gets the blame; the
// penalty only breaks ties between equally close groups in favor of the
// shallowest failure. Test expectations are pinned to these exact values.
const (
	passBonus    = 10
	depthPenalty = 1
)

// FindFailing identifies the single failing condition that best explains why
// value does not satisfy the descriptor, or nil when the value satisfies it
// (or when no specific condition can be blamed, as with an empty
// descriptor). Each call runs with its own identity-visited set, so shared
// condition references are scored once and self-referential graphs
// terminate.
func FindFailing(value any, descriptor ...Group) *Condition {
	d := Descriptor(descriptor)
	if evaluate(value, d) {
		return nil
	}
	_, failing := resolve(value, d, make(visited))
	return failing
}

// resolve scores every group of a failing descriptor and returns the score
// of the best group together with the first failure encountered inside it.
// Each unvisited condition contributes the pass bonus when it holds, becomes
// the group's candidate failure when it does not, and when gated contributes
// its prerequisite descriptor's score less the depth penalty. Within a group
// only the first failure in iteration order is kept; between groups the
// strictly greatest total wins, so earlier groups win ties.
func resolve(value any, d Descriptor, seen visited) (int, *Condition) {
	best := math.MinInt
	var bestFailure *Condition

	for _, g := range d {
		levelScore := 0
		bestChild := math.MinInt
		var firstFailure *Condition

		for _, c := range g {
			if seen.seen(c) {
				continue
			}

			var failure *Condition
			gateHolds := true
			if len(c.Conditions) > 0 {
				var child int
				if evaluate(value, c.Conditions) {
					child = passBonus * passCount(value, c.Conditions, seen)
				} else {
					gateHolds = false
					child, failure = resolve(value, c.Conditions, seen)
				}
				child -= depthPenalty
				if child > bestChild {
					bestChild = child
				}
			}

			if gateHolds && failure == nil {
				if c.Assert(value) {
					levelScore += passBonus
				} else {
					failure = c
				}
			}
			if firstFailure == nil && failure != nil {
				firstFailure = failure
			}
		}

		total := levelScore
		if bestChild != math.MinInt {
			total += bestChild
		}
		if total > best {
			best = total
			bestFailure = firstFailure
		}
	}

	return best, bestFailure
}
