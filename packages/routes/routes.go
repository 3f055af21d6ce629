// Package routes holds the example handlers the demo suites and the
// serve command run against. Handlers throw signals instead of writing
// error responses themselves.
package routes

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/throwspec/throwspec/packages/signal"
)

// Protected redirects anonymous requests to the login page.
func Protected(w http.ResponseWriter, r *http.Request) error {
	if r.Header.Get("Authorization") == "" {
		return signal.NewRedirect(http.StatusFound, "/login")
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"page": "account"}`)
	return nil
}

// Moved permanently redirects an old path to its replacement.
func Moved(w http.ResponseWriter, r *http.Request) error {
	return signal.NewRedirect(http.StatusMovedPermanently, "/new-home")
}

// Boom always throws a server error.
func Boom(w http.ResponseWriter, r *http.Request) error {
	return signal.NewError(http.StatusInternalServerError, "Server Error")
}

// User looks up a user by route variable and throws a not-found error
// for unknown IDs.
func User(w http.ResponseWriter, r *http.Request) error {
	id := mux.Vars(r)["id"]
	if id != "1" {
		return signal.NewError(http.StatusNotFound, fmt.Sprintf("no user %s", id))
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"id": 1, "name": "Ada"}`)
	return nil
}

// Healthz completes normally, throwing nothing.
func Healthz(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "ok")
	return nil
}

var handlers = map[string]signal.HandlerFunc{
	"protected": Protected,
	"moved":     Moved,
	"boom":      Boom,
	"user":      User,
	"healthz":   Healthz,
}

// Lookup resolves a handler by the name suite files refer to it by.
func Lookup(name string) (signal.HandlerFunc, bool) {
	h, ok := handlers[name]
	return h, ok
}

// Names returns the available handler names.
func Names() []string {
	names := make([]string, 0, len(handlers))
	for name := range handlers {
		names = append(names, name)
	}
	return names
}

// NewRouter mounts every example handler for the serve command.
func NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.Handle("/account", signal.Wrap(Protected)).Methods(http.MethodGet)
	r.Handle("/old-home", signal.Wrap(Moved)).Methods(http.MethodGet)
	r.Handle("/boom", signal.Wrap(Boom)).Methods(http.MethodGet)
	r.Handle("/users/{id}", signal.Wrap(User)).Methods(http.MethodGet)
	r.Handle("/healthz", signal.Wrap(Healthz)).Methods(http.MethodGet)
	return r
}
