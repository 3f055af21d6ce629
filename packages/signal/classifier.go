package signal

import "github.com/throwspec/throwspec/packages/match"

// Classifier adapts this package's signal types to the match package's
// classifier capability. It is the default classifier the expect
// package wires into its matchers.
type Classifier struct{}

func (Classifier) Redirect(v any) (match.RedirectView, bool) {
	r, ok := asRedirect(v)
	if !ok {
		return match.RedirectView{}, false
	}
	return match.RedirectView{Status: r.Status, Location: r.Location}, true
}

func (Classifier) HTTPError(v any) (match.ErrorView, bool) {
	e, ok := asHTTPError(v)
	if !ok {
		return match.ErrorView{}, false
	}
	return match.ErrorView{Status: e.Status, Message: e.Message()}, true
}
