package match

// RedirectView is the matcher's flattened view of a redirect signal.
type RedirectView struct {
	Status   int
	Location string
}

// ErrorView is the matcher's flattened view of an HTTP error signal.
// Message is the textual field of the signal's body payload, already
// extracted by the classifier.
type ErrorView struct {
	Status  int
	Message string
}

// Classifier decides which signal variant, if any, a value is. It is
// the sole authority on classification: the matchers never duck-type a
// value themselves. A classifier reports ok=false for anything that is
// not the asked-for variant, including nil and non-signal values.
type Classifier interface {
	Redirect(v any) (RedirectView, bool)
	HTTPError(v any) (ErrorView, bool)
}
