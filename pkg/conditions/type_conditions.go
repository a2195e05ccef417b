package conditions

import "github.com/assertkit/assertkit/pkg/check"

// actualType renders the failure case shared by all plain type conditions:
// the classified type of the actual value, with its indefinite article.
func actualType(args check.IsArgs) string {
	return args.Article + " " + string(args.Type)
}

func typeCondition(tag check.Tag) *check.Condition {
	return &check.Condition{
		Assert:   func(value any) bool { return check.Classify(value) == tag },
		ShouldBe: check.ShouldBe{Type: string(tag)},
		Is:       check.Is{Compute: actualType},
	}
}

// The plain type conditions. These are shared singletons: every condition in
// this package that needs a type gate references the same instance, so the
// resulting condition graphs are DAGs and the engine scores each gate once
// per call.
var (
	String   = typeCondition(check.TagString)
	Number   = typeCondition(check.TagNumber)
	Boolean  = typeCondition(check.TagBoolean)
	Function = typeCondition(check.TagFunction)
	Object   = typeCondition(check.TagObject)
	Array    = typeCondition(check.TagArray)
	Null     = typeCondition(check.TagNull)
	NaN      = typeCondition(check.TagNaN)
	BigInt   = typeCondition(check.TagBigInt)
)
