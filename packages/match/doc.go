// Package match implements the matchers that decide whether a thrown
// value is a redirect or HTTP error signal and whether its fields meet
// the caller's expectations.
//
// Matchers never inspect value shape themselves; classification is
// delegated to an injected Classifier, so the package stays independent
// of how the signaling mechanism represents its values. Every
// evaluation returns a Result — failure is data, never a panic or an
// error return.
package match
