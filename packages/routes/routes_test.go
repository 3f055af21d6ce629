package routes

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/throwspec/throwspec/packages/expect"
	"github.com/throwspec/throwspec/packages/match"
	"github.com/throwspec/throwspec/packages/mock"
	"github.com/throwspec/throwspec/packages/signal"
)

// recordingT captures assertion failures for inspection.
type recordingT struct {
	failures []string
}

func (r *recordingT) Helper() {}

func (r *recordingT) Errorf(format string, args ...any) {
	r.failures = append(r.failures, format)
}

func TestProtected_RedirectsAnonymousToLogin(t *testing.T) {
	err := mock.Call(Protected, mock.NewEvent(http.MethodGet, "/account"))

	rt := &recordingT{}
	assert.True(t, expect.That(rt, err).ToThrowRedirect())
	assert.True(t, expect.That(rt, err).ToThrowRedirect(
		match.RedirectExpectation{Status: 302, Location: "/login"},
	))
	assert.Empty(t, rt.failures)

	// Wrong status fails with the offending scalars, not the signal.
	rt = &recordingT{}
	ok := expect.That(rt, err).ToThrowRedirect(match.RedirectExpectation{Status: 303})
	assert.False(t, ok)
	require.Len(t, rt.failures, 1)
}

func TestProtected_AuthorizedCompletesNormally(t *testing.T) {
	ev := mock.NewEvent(http.MethodGet, "/account", mock.WithHeader("Authorization", "Bearer t"))
	assert.NoError(t, mock.Call(Protected, ev))
}

func TestBoom_ThrowsServerError(t *testing.T) {
	err := mock.Call(Boom, mock.NewEvent(http.MethodGet, "/boom"))

	rt := &recordingT{}
	assert.True(t, expect.That(rt, err).ToThrowHTTPError(
		match.ErrorExpectation{Message: "Server Error"},
	))
	assert.Empty(t, rt.failures)

	ok := expect.That(rt, err).ToThrowHTTPError(match.ErrorExpectation{Message: "Wrong"})
	assert.False(t, ok)
	require.Len(t, rt.failures, 1)
}

func TestUser_NotFound(t *testing.T) {
	ev := mock.NewEvent(http.MethodGet, "/users/7", mock.WithParam("id", "7"))
	err := mock.Call(User, ev)

	rt := &recordingT{}
	assert.True(t, expect.That(rt, err).ToThrowHTTPError(match.ErrorExpectation{Status: 404}))

	ev = mock.NewEvent(http.MethodGet, "/users/1", mock.WithParam("id", "1"))
	assert.NoError(t, mock.Call(User, ev))
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"protected", "moved", "boom", "user", "healthz"} {
		_, ok := Lookup(name)
		assert.True(t, ok, name)
	}
	_, ok := Lookup("missing")
	assert.False(t, ok)
	assert.Len(t, Names(), 5)
}

func TestNewRouter_ServesSignals(t *testing.T) {
	router := NewRouter()

	rec := mock.Serve(router, mock.NewEvent(http.MethodGet, "/account"))
	assert.Equal(t, 302, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	rec = mock.Serve(router, mock.NewEvent(http.MethodGet, "/boom"))
	assert.Equal(t, 500, rec.Code)
	assert.JSONEq(t, `{"message": "Server Error"}`, rec.Body.String())

	rec = mock.Serve(router, mock.NewEvent(http.MethodGet, "/users/9"))
	assert.Equal(t, 404, rec.Code)
	assert.True(t, signal.IsHTTPError(signal.NewError(404, "")), "sanity")
}
