package signal

import "net/http"

// HandlerFunc is a route handler that may throw by returning a signal.
// A nil return means the handler wrote its own response.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Respond renders a thrown value as an HTTP response: redirects become
// a Location header plus status, HTTP errors become their status and
// JSON body. Anything else is a 500.
func Respond(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}
	if r, ok := asRedirect(err); ok {
		w.Header().Set("Location", r.Location)
		w.WriteHeader(r.Status)
		return
	}
	if e, ok := asHTTPError(err); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(e.Status)
		w.Write(e.Body)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// Wrap turns a throwing handler into a plain http.Handler.
func Wrap(h HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		Respond(w, h(w, r))
	})
}
