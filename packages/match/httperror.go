package match

// NameThrowHTTPError is the public name the HTTP error matcher is
// registered under.
const NameThrowHTTPError = "toThrowHttpError"

// ErrorExpectation lists the fields to check on an HTTP error signal.
// Both fields are optional; a zero value means "not supplied". As with
// RedirectExpectation, zero-valued expectations are skipped, not
// compared.
type ErrorExpectation struct {
	Status  int
	Message string
}

// HTTPErrorMatcher evaluates whether a thrown value is an HTTP error
// signal, optionally matching status and the body payload's message.
type HTTPErrorMatcher struct {
	classify Classifier
}

func NewHTTPErrorMatcher(c Classifier) *HTTPErrorMatcher {
	return &HTTPErrorMatcher{classify: c}
}

// Evaluate mirrors RedirectMatcher.Evaluate: classify first, then
// status before message, first mismatch wins.
func (m *HTTPErrorMatcher) Evaluate(actual any, expected *ErrorExpectation) *Result {
	base := baseMessage("an HTTP error")

	view, ok := m.classify.HTTPError(actual)
	if !ok {
		return wrongVariant(base)
	}

	if expected != nil {
		if expected.Status != 0 && expected.Status != view.Status {
			return fieldMismatch("status", "Status code mismatch", view.Status, expected.Status)
		}
		if expected.Message != "" && expected.Message != view.Message {
			return fieldMismatch("message", "Message mismatch", view.Message, expected.Message)
		}
	}

	return passed(base)
}
