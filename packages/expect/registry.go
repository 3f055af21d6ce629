package expect

import (
	"sort"
	"strconv"

	"github.com/throwspec/throwspec/packages/match"
)

// Func evaluates a registered matcher against a thrown value. Args are
// the loosely-typed expectation fields a suite file supplies; keys the
// matcher does not recognize are ignored.
type Func func(actual any, args map[string]any) *match.Result

// Registry maps public matcher names to their evaluation funcs.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry returns a registry with the built-in matchers
// registered under their public names.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Func)}
	r.Register(match.NameThrowRedirect, evalThrowRedirect)
	r.Register(match.NameThrowHTTPError, evalThrowHTTPError)
	return r
}

func (r *Registry) Register(name string, fn Func) {
	r.funcs[name] = fn
}

// Lookup resolves a matcher by its public name.
func (r *Registry) Lookup(name string) (Func, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns the registered matcher names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func evalThrowRedirect(actual any, args map[string]any) *match.Result {
	var want *match.RedirectExpectation
	if len(args) > 0 {
		want = &match.RedirectExpectation{
			Status:   intArg(args, "status"),
			Location: stringArg(args, "location"),
		}
	}
	return redirectMatcher.Evaluate(actual, want)
}

func evalThrowHTTPError(actual any, args map[string]any) *match.Result {
	var want *match.ErrorExpectation
	if len(args) > 0 {
		want = &match.ErrorExpectation{
			Status:  intArg(args, "status"),
			Message: stringArg(args, "message"),
		}
	}
	return httpErrorMatcher.Evaluate(actual, want)
}

// intArg tolerates the numeric types YAML decoding produces.
func intArg(args map[string]any, key string) int {
	switch n := args[key].(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
	}
	return 0
}

func stringArg(args map[string]any, key string) string {
	if s, ok := args[key].(string); ok {
		return s
	}
	return ""
}
