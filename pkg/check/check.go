package check

// Require asserts value against the descriptor and returns a diagnostic
// *Error when it fails, nil otherwise. The Expected half is composed over
// the whole descriptor independent of the value; the Is half describes the
// value through the condition the relevance search blames.
func Require(value any, descriptor ...Group) error {
	if Assert(value, descriptor...) {
		return nil
	}
	return &Error{
		Expected: MessageExpected(descriptor...),
		Is:       MessageIs(value, descriptor...),
	}
}
