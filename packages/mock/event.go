// Package mock builds the request events handlers are invoked with in
// tests, and calls handlers to capture what they throw.
package mock

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/throwspec/throwspec/packages/signal"
)

// Event is a single simulated request to a handler. Params carries
// route variables the way a router would have extracted them.
type Event struct {
	ID      string
	Request *http.Request
	Params  map[string]string
}

// Option is a functional option for NewEvent.
type Option func(*Event)

// WithHeader sets a request header.
func WithHeader(key, value string) Option {
	return func(e *Event) {
		e.Request.Header.Set(key, value)
	}
}

// WithParam sets a route variable on the event's request.
func WithParam(name, value string) Option {
	return func(e *Event) {
		e.Params[name] = value
		e.Request = mux.SetURLVars(e.Request, e.Params)
	}
}

// WithBody sets the request body.
func WithBody(body io.Reader) Option {
	return func(e *Event) {
		rc, ok := body.(io.ReadCloser)
		if !ok {
			rc = io.NopCloser(body)
		}
		e.Request.Body = rc
	}
}

// WithJSON marshals v as the request body and sets the content type.
func WithJSON(v any) Option {
	return func(e *Event) {
		data, err := json.Marshal(v)
		if err != nil {
			panic("mock: cannot marshal JSON body: " + err.Error())
		}
		e.Request.Body = io.NopCloser(bytes.NewReader(data))
		e.Request.Header.Set("Content-Type", "application/json")
	}
}

// NewEvent builds an event for the given method and target. Each event
// gets a fresh request ID, mirrored into the X-Request-Id header.
func NewEvent(method, target string, opts ...Option) *Event {
	e := &Event{
		ID:      uuid.NewString(),
		Request: httptest.NewRequest(method, target, nil),
		Params:  make(map[string]string),
	}
	e.Request.Header.Set("X-Request-Id", e.ID)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Call invokes a handler with the event's request against a throwaway
// response recorder and returns whatever the handler threw. A nil
// return means the handler completed normally.
func Call(h signal.HandlerFunc, ev *Event) error {
	return h(httptest.NewRecorder(), ev.Request)
}

// Serve invokes a handler and returns the recorded response, for
// checking what a wrapped handler actually writes.
func Serve(h http.Handler, ev *Event) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, ev.Request)
	return rec
}
