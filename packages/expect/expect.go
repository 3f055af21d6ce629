package expect

import (
	"fmt"

	"github.com/throwspec/throwspec/packages/match"
	"github.com/throwspec/throwspec/packages/signal"
)

// TestingT is the subset of *testing.T the assertions need. It is also
// satisfied by testify's TestingT-style fakes, which the tests use.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
}

var (
	redirectMatcher  = match.NewRedirectMatcher(signal.Classifier{})
	httpErrorMatcher = match.NewHTTPErrorMatcher(signal.Classifier{})
)

// Assertion holds a thrown value awaiting a matcher. Not returns a
// negated copy; Assertion values are never mutated in place.
type Assertion struct {
	t       TestingT
	actual  any
	negated bool
}

// That starts an assertion over the value a handler threw.
func That(t TestingT, actual any) *Assertion {
	return &Assertion{t: t, actual: actual}
}

// Not flips the assertion's polarity.
func (a *Assertion) Not() *Assertion {
	return &Assertion{t: a.t, actual: a.actual, negated: !a.negated}
}

// ToThrowRedirect asserts the value is a redirect signal, optionally
// matching the given expectation. At most one expectation is honored.
func (a *Assertion) ToThrowRedirect(expected ...match.RedirectExpectation) bool {
	a.t.Helper()
	var want *match.RedirectExpectation
	if len(expected) > 0 {
		want = &expected[0]
	}
	return a.report(redirectMatcher.Evaluate(a.actual, want))
}

// ToThrowHTTPError asserts the value is an HTTP error signal,
// optionally matching the given expectation.
func (a *Assertion) ToThrowHTTPError(expected ...match.ErrorExpectation) bool {
	a.t.Helper()
	var want *match.ErrorExpectation
	if len(expected) > 0 {
		want = &expected[0]
	}
	return a.report(httpErrorMatcher.Evaluate(a.actual, want))
}

func (a *Assertion) report(result *match.Result) bool {
	a.t.Helper()

	if result.Pass != a.negated {
		return true
	}

	msg := result.Message(a.negated)
	if result.Diff != nil {
		a.t.Errorf("%s\n  Expected: %v\n  Actual:   %v", msg, result.Diff.Expected, result.Diff.Actual)
	} else {
		a.t.Errorf("%s (got %s)", msg, describe(a.actual))
	}
	return false
}

func describe(v any) string {
	if v == nil {
		return "nil"
	}
	if err, ok := v.(error); ok {
		return fmt.Sprintf("%T: %v", v, err)
	}
	return fmt.Sprintf("%T", v)
}
