package signal

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// Redirect asks the caller to send the client somewhere else. Status
// is conventionally a 3xx code; nothing here enforces that.
type Redirect struct {
	Status   int
	Location string
}

// NewRedirect creates a redirect signal to the given location.
func NewRedirect(status int, location string) *Redirect {
	return &Redirect{Status: status, Location: location}
}

func (r *Redirect) Error() string {
	return fmt.Sprintf("redirect %d to %s", r.Status, r.Location)
}

// HTTPError is an expected, user-facing failure. Its payload is a JSON
// body rather than a bare string: error signals may carry structured
// data beyond a message, and the message is just one field of it.
type HTTPError struct {
	Status int
	Body   []byte
}

// NewError creates an HTTP error signal whose body carries only a
// message field.
func NewError(status int, message string) *HTTPError {
	body, _ := json.Marshal(map[string]string{"message": message})
	return &HTTPError{Status: status, Body: body}
}

// NewErrorBody creates an HTTP error signal with an arbitrary JSON
// body payload.
func NewErrorBody(status int, body []byte) *HTTPError {
	return &HTTPError{Status: status, Body: body}
}

// Message returns the message field of the body payload, or "" when
// the payload has none.
func (e *HTTPError) Message() string {
	return gjson.GetBytes(e.Body, "message").String()
}

func (e *HTTPError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("http error %d: %s", e.Status, msg)
	}
	return fmt.Sprintf("http error %d", e.Status)
}

// IsRedirect reports whether v is a redirect signal, directly or
// wrapped inside an error chain.
func IsRedirect(v any) bool {
	_, ok := asRedirect(v)
	return ok
}

// IsHTTPError reports whether v is an HTTP error signal, directly or
// wrapped inside an error chain.
func IsHTTPError(v any) bool {
	_, ok := asHTTPError(v)
	return ok
}

func asRedirect(v any) (*Redirect, bool) {
	switch t := v.(type) {
	case *Redirect:
		return t, t != nil
	case error:
		var r *Redirect
		if errors.As(t, &r) {
			return r, true
		}
	}
	return nil, false
}

func asHTTPError(v any) (*HTTPError, bool) {
	switch t := v.(type) {
	case *HTTPError:
		return t, t != nil
	case error:
		var e *HTTPError
		if errors.As(t, &e) {
			return e, true
		}
	}
	return nil, false
}
