package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSuite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "demo.suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeSuite(t, `
suite: auth
cases:
  - name: anonymous is redirected
    handler: protected
    request:
      method: GET
      path: /account
    matcher: toThrowRedirect
    with:
      status: 302
      location: /login
  - handler: boom
    matcher: toThrowHttpError
`)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "auth", s.Name)
	assert.Equal(t, path, s.Path)
	require.Len(t, s.Cases, 2)

	assert.Equal(t, "anonymous is redirected", s.Cases[0].Name)
	assert.Equal(t, 302, s.Cases[0].With["status"])
	assert.Equal(t, "/login", s.Cases[0].With["location"])

	// Defaults for the sparse second case.
	assert.Equal(t, "case 2", s.Cases[1].Name)
	assert.Equal(t, "GET", s.Cases[1].Request.Method)
	assert.Equal(t, "/", s.Cases[1].Request.Path)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeSuite(t, "cases: {not: [valid")
	_, err = Load(path)
	assert.Error(t, err)
}

func TestRunFile(t *testing.T) {
	path := writeSuite(t, `
suite: demo
cases:
  - name: anonymous is redirected
    handler: protected
    request:
      path: /account
    matcher: toThrowRedirect
    with:
      status: 302
      location: /login
  - name: boom throws a server error
    handler: boom
    request:
      path: /boom
    matcher: toThrowHttpError
    with:
      message: Server Error
  - name: healthz throws nothing
    handler: healthz
    request:
      path: /healthz
    matcher: toThrowRedirect
    negated: true
`)

	result, err := NewRunner().RunFile(path)
	require.NoError(t, err)

	assert.Equal(t, "demo", result.Suite)
	assert.Equal(t, 3, result.Passed)
	assert.Equal(t, 0, result.Failed)
	for _, cr := range result.Results {
		assert.True(t, cr.Passed, cr.Name)
	}
}

func TestRun_FieldMismatchCarriesDiff(t *testing.T) {
	path := writeSuite(t, `
cases:
  - name: wrong status expected
    handler: protected
    request:
      path: /account
    matcher: toThrowRedirect
    with:
      status: 303
`)

	result, err := NewRunner().RunFile(path)
	require.NoError(t, err)
	require.Len(t, result.Results, 1)

	cr := result.Results[0]
	assert.False(t, cr.Passed)
	assert.True(t, cr.HasDiff)
	assert.Equal(t, "status", cr.Field)
	assert.Equal(t, 302, cr.Actual)
	assert.Equal(t, 303, cr.Expected)
	assert.Equal(t, "Status code mismatch", cr.Message)
}

func TestRun_NegatedFailureMessage(t *testing.T) {
	path := writeSuite(t, `
cases:
  - name: should not redirect but does
    handler: protected
    request:
      path: /account
    matcher: toThrowRedirect
    negated: true
`)

	result, err := NewRunner().RunFile(path)
	require.NoError(t, err)

	cr := result.Results[0]
	assert.False(t, cr.Passed)
	assert.False(t, cr.HasDiff)
	assert.Equal(t, "Expected a redirect to not be thrown", cr.Message)
}

func TestRun_UnknownHandlerAndMatcher(t *testing.T) {
	path := writeSuite(t, `
cases:
  - name: bad handler
    handler: nope
    matcher: toThrowRedirect
  - name: bad matcher
    handler: boom
    matcher: toExplode
`)

	result, err := NewRunner().RunFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Failed)
	assert.Contains(t, result.Results[0].Message, "unknown handler")
	assert.Contains(t, result.Results[1].Message, "unknown matcher")
}

func TestRun_Bail(t *testing.T) {
	path := writeSuite(t, `
cases:
  - name: fails first
    handler: boom
    request:
      path: /boom
    matcher: toThrowRedirect
  - name: never reached
    handler: boom
    request:
      path: /boom
    matcher: toThrowHttpError
`)

	result, err := NewRunner(WithBail(true)).RunFile(path)
	require.NoError(t, err)
	assert.Len(t, result.Results, 1)
	assert.Equal(t, 1, result.Failed)
}

func TestRun_ParamsReachHandler(t *testing.T) {
	path := writeSuite(t, `
cases:
  - name: unknown user throws 404
    handler: user
    request:
      path: /users/7
      params:
        id: "7"
    matcher: toThrowHttpError
    with:
      status: 404
`)

	result, err := NewRunner().RunFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Passed)
}
