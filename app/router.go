/*
Package app assembles the pieces declared in the root package into a
runnable state machine: a path based message router and a decorator
chain resolver.
*/
package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/errors"
)

// isPath is the RegExp to ensure the routes make sense.
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_/]+$`).MatchString

// Router allows us to register many handlers with different paths and
// then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux.
type Router struct {
	routes map[string]treasury.Handler
}

var _ treasury.Registry = (*Router)(nil)
var _ treasury.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]treasury.Handler, 10),
	}
}

// Handle implements treasury.Registry. It panics on an invalid path or a
// duplicate registration, as both are programmer errors.
func (r *Router) Handle(path string, h treasury.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid route: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the registered Handler for this path. Always returns a
// non-nil Handler, defaulting to one that rejects every message.
func (r *Router) Handler(path string) treasury.Handler {
	h, ok := r.routes[path]
	if !ok {
		return notFoundHandler(path)
	}
	return h
}

// Check dispatches to the proper handler based on the message path.
func (r *Router) Check(ctx treasury.Context, store treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.Handler(msg.Path()).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on the message path.
func (r *Router) Deliver(ctx treasury.Context, store treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	return r.Handler(msg.Path()).Deliver(ctx, store, tx)
}

// notFoundHandler always returns ErrNotFound with the path it was created
// for.
type notFoundHandler string

var _ treasury.Handler = notFoundHandler("")

func (h notFoundHandler) Check(ctx treasury.Context, store treasury.KVStore, tx treasury.Tx) (*treasury.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(h))
}

func (h notFoundHandler) Deliver(ctx treasury.Context, store treasury.KVStore, tx treasury.Tx) (*treasury.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", string(h))
}
