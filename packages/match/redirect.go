package match

// NameThrowRedirect is the public name the redirect matcher is
// registered under.
const NameThrowRedirect = "toThrowRedirect"

// RedirectExpectation lists the fields to check on a redirect signal.
// Both fields are optional; a zero value means "not supplied" and the
// field is skipped. A consequence carried over deliberately: a status
// of 0 or an empty location can never be asserted, because presence is
// keyed on the zero value.
type RedirectExpectation struct {
	Status   int
	Location string
}

// RedirectMatcher evaluates whether a thrown value is a redirect
// signal, optionally matching status and location.
type RedirectMatcher struct {
	classify Classifier
}

func NewRedirectMatcher(c Classifier) *RedirectMatcher {
	return &RedirectMatcher{classify: c}
}

// Evaluate classifies actual and, when classification succeeds,
// compares the supplied expected fields in a fixed order: status, then
// location. The first mismatching field short-circuits; later fields
// are not checked.
func (m *RedirectMatcher) Evaluate(actual any, expected *RedirectExpectation) *Result {
	base := baseMessage("a redirect")

	view, ok := m.classify.Redirect(actual)
	if !ok {
		return wrongVariant(base)
	}

	if expected != nil {
		if expected.Status != 0 && expected.Status != view.Status {
			return fieldMismatch("status", "Status code mismatch", view.Status, expected.Status)
		}
		if expected.Location != "" && expected.Location != view.Location {
			return fieldMismatch("location", "Location mismatch", view.Location, expected.Location)
		}
	}

	return passed(base)
}
