package check

// Error is the diagnostic produced when a value fails validation through
// Require. Expected describes the whole descriptor; Is describes the value
// through the single most relevant failing condition.
type Error struct {
	Expected string
	Is       string
}

func (e *Error) Error() string {
	return "Expected " + e.Expected + ", got " + e.Is
}
