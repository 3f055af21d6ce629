// Package expect is the assertion surface tests use to check what a
// handler threw.
//
//	err := mock.Call(routes.Protected, mock.NewEvent("GET", "/account"))
//	expect.That(t, err).ToThrowRedirect(match.RedirectExpectation{Status: 302})
//	expect.That(t, err).Not().ToThrowHTTPError()
//
// The same matchers are reachable by their public names
// ("toThrowRedirect", "toThrowHttpError") through a Registry, which is
// how the suite runner resolves them from YAML.
package expect
