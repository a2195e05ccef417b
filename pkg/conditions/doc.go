// Package conditions provides the built-in condition catalog for the check
// engine: plain type conditions plus numeric, string, collection and object
// conditions layered on top of them.
//
// Every entry here is ordinary data built on check.Condition; nothing in the
// engine knows about this catalog, and custom catalogs are built the same
// way. Type gates (Number, String, Array, Object) are shared singletons
// referenced as prerequisites by the other conditions, so descriptors built
// from this package form DAGs and the engine's diagnostics score each gate
// once per validation.
//
// # Usage
//
//	check.Assert(v, check.Group{conditions.Positive, conditions.Integer})
//
//	even := conditions.DivisibleBy(2)
//	check.Require(items, check.Group{conditions.ArrayOf(even)})
//
// # Error Handling
//
// Factory functions validate their arguments eagerly and panic on misuse
// (nil condition, zero divisor, empty key list) so that a malformed catalog
// entry fails at construction time, long before any value is validated.
package conditions
