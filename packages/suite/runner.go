package suite

import (
	"fmt"
	"time"

	"github.com/throwspec/throwspec/packages/expect"
	"github.com/throwspec/throwspec/packages/mock"
	"github.com/throwspec/throwspec/packages/routes"
	"github.com/throwspec/throwspec/packages/signal"
)

// HandlerResolver resolves a case's handler name. The default is the
// example routes table; tests inject their own.
type HandlerResolver func(name string) (signal.HandlerFunc, bool)

// Runner executes suites: one mock call plus one matcher evaluation
// per case.
type Runner struct {
	registry *expect.Registry
	resolve  HandlerResolver
	bail     bool
}

// Option is a functional option for NewRunner.
type Option func(*Runner)

// WithHandlerResolver overrides where handler names are looked up.
func WithHandlerResolver(r HandlerResolver) Option {
	return func(run *Runner) {
		run.resolve = r
	}
}

// WithBail stops a run at the first failed case.
func WithBail(bail bool) Option {
	return func(run *Runner) {
		run.bail = bail
	}
}

func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		registry: expect.NewRegistry(),
		resolve:  routes.Lookup,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunResult aggregates one suite execution.
type RunResult struct {
	File     string
	Suite    string
	Results  []*CaseResult
	Passed   int
	Failed   int
	Duration time.Duration
}

// CaseResult is the outcome of a single case. Expected and Actual are
// set only when a field-level mismatch occurred.
type CaseResult struct {
	Name     string
	Passed   bool
	Message  string
	HasDiff  bool
	Field    string
	Expected any
	Actual   any
	Duration time.Duration
}

// RunFile loads and runs one suite file.
func (r *Runner) RunFile(path string) (*RunResult, error) {
	s, err := Load(path)
	if err != nil {
		return nil, err
	}
	return r.Run(s), nil
}

// Run executes every case of a suite. Malformed cases (unknown handler
// or matcher) become failed results rather than errors, so one bad
// case cannot sink the rest of the file.
func (r *Runner) Run(s *Suite) *RunResult {
	start := time.Now()
	result := &RunResult{File: s.Path, Suite: s.Name}

	for _, c := range s.Cases {
		cr := r.runCase(c)
		result.Results = append(result.Results, cr)
		if cr.Passed {
			result.Passed++
		} else {
			result.Failed++
			if r.bail {
				break
			}
		}
	}

	result.Duration = time.Since(start)
	return result
}

func (r *Runner) runCase(c *Case) *CaseResult {
	start := time.Now()
	cr := &CaseResult{Name: c.Name}
	defer func() {
		cr.Duration = time.Since(start)
	}()

	handler, ok := r.resolve(c.Handler)
	if !ok {
		cr.Message = fmt.Sprintf("unknown handler: %q", c.Handler)
		return cr
	}

	fn, ok := r.registry.Lookup(c.Matcher)
	if !ok {
		cr.Message = fmt.Sprintf("unknown matcher: %q", c.Matcher)
		return cr
	}

	opts := []mock.Option{}
	for key, value := range c.Request.Headers {
		opts = append(opts, mock.WithHeader(key, value))
	}
	for name, value := range c.Request.Params {
		opts = append(opts, mock.WithParam(name, value))
	}
	ev := mock.NewEvent(c.Request.Method, c.Request.Path, opts...)

	thrown := mock.Call(handler, ev)
	res := fn(thrown, c.With)

	cr.Passed = res.Pass != c.Negated
	cr.Message = res.Message(c.Negated)
	if res.Diff != nil {
		cr.HasDiff = true
		cr.Field = res.Diff.Field
		cr.Expected = res.Diff.Expected
		cr.Actual = res.Diff.Actual
	}
	return cr
}
