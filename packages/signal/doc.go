// Package signal implements the redirect and HTTP error values route
// handlers throw to short-circuit normal response flow.
//
// Both types implement error, so a handler throws by returning one:
//
//	func protected(w http.ResponseWriter, r *http.Request) error {
//		if !loggedIn(r) {
//			return signal.NewRedirect(302, "/login")
//		}
//		...
//	}
//
// IsRedirect and IsHTTPError are the definitive classification
// predicates, and Classifier adapts them for the match package. Wrap
// turns a throwing handler into a plain http.Handler that renders
// signals as real responses.
package signal
