package match

// Result is the outcome of a single matcher evaluation.
type Result struct {
	// Pass reports whether the value classified correctly and every
	// supplied expected field matched.
	Pass bool

	// Message renders the human-readable explanation. The host passes
	// its negation flag at render time, so the same Result serves both
	// the plain and the negated form of an assertion.
	Message func(negated bool) string

	// Diff is set only when a specific field failed comparison. It is
	// nil when classification itself failed: a wrong-variant value has
	// nothing meaningful to diff.
	Diff *FieldDiff
}

// FieldDiff names the single offending field of a failed comparison.
// Actual and Expected are always scalars, never whole signals, so the
// consumer can render a meaningful diff.
type FieldDiff struct {
	Field    string
	Actual   any
	Expected any
}

func passed(base func(bool) string) *Result {
	return &Result{Pass: true, Message: base}
}

func wrongVariant(base func(bool) string) *Result {
	return &Result{Pass: false, Message: base}
}

func fieldMismatch(field, msg string, actual, expected any) *Result {
	return &Result{
		Pass:    false,
		Message: func(bool) string { return msg },
		Diff: &FieldDiff{
			Field:    field,
			Actual:   actual,
			Expected: expected,
		},
	}
}

// baseMessage phrases the classification-level message for a signal
// variant, e.g. "Expected a redirect to be thrown" or, negated,
// "Expected a redirect to not be thrown".
func baseMessage(variant string) func(negated bool) string {
	return func(negated bool) string {
		if negated {
			return "Expected " + variant + " to not be thrown"
		}
		return "Expected " + variant + " to be thrown"
	}
}
