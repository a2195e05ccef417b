// Package check validates arbitrary runtime values against a composable
// graph of named conditions and, when validation fails, selects the single
// failing condition that best explains the failure to render a
// human-readable diagnostic.
//
// A Condition couples a predicate with an optional descriptor of
// prerequisite conditions and two natural-language fragments: ShouldBe (the
// expected case) and Is (the failure case). A Descriptor is an ordered OR of
// AND-groups of conditions, so any validation requirement is expressed as a
// disjunction of conjunctions. Conditions are immutable once built and are
// routinely shared by reference between parents, which makes the condition
// graph a DAG; every recursive pass in this package therefore carries a
// per-call identity-visited set keyed on condition pointers.
//
// # Architecture
//
// One concern per file:
//   - classify.go  – runtime type tagging plus the grammar helpers Article
//     and Enumerate used when composing messages
//   - condition.go – Condition, Group, Descriptor, ShouldBe, Is
//   - evaluate.go  – Assert, the recursive OR-of-AND evaluator, and
//     PassCount
//   - relevance.go – FindFailing, the weighted search that blames one
//     failing condition
//   - message.go   – Fragment merging and rendering for the expected and
//     actual halves of a diagnostic
//   - check.go     – Require, the diagnostic entry point
//
// # Usage
//
//	ok := check.Assert(30,
//	    check.Group{conditions.DivisibleBy(5), conditions.GreaterThan(25)},
//	)
//
//	if err := check.Require(-3,
//	    check.Group{conditions.String},
//	    check.Group{conditions.Positive, conditions.Integer},
//	); err != nil {
//	    // err.Error() == "Expected positive integer OR string,
//	    //                 got a negative number or 0"
//	}
//
// # Error Handling
//
// Ordinary validation failure is not an error: Assert returns false.
// Require wraps a failure into *Error carrying the derived Expected and Is
// strings; detect it with errors.As. A panic raised by a condition's Assert
// or Is callback propagates unchanged — the engine never recovers on behalf
// of a broken condition.
//
// # Concurrency
//
// The package is stateless. Every top-level call builds its own visited set,
// so concurrent calls over shared condition graphs are safe as long as the
// conditions themselves are never mutated after construction.
package check
