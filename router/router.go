// Package router maps callback tokens to widget handlers.
//
// Routes are evaluated in registration order and the first matching route
// wins. The reserved placeholder token never reaches a handler.
package router

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lojasmm/inlinekb/keyboard"
)

// ErrNoRoute is returned by Dispatch when no route matches the token.
var ErrNoRoute = errors.New("router: no route for callback")

// Callback is an activated cell as delivered by the chat platform.
type Callback struct {
	ID        string
	ChatID    int64
	MessageID int64
	Data      string
}

// Outcome tells the caller what a handler did with the callback.
type Outcome int

const (
	// Ignored means nothing changed and nothing needs redrawing.
	Ignored Outcome = iota
	// Handled means the callback was consumed without touching widget state.
	Handled
	// Changed means widget state was mutated and must be redrawn and persisted.
	Changed
)

func (o Outcome) String() string {
	switch o {
	case Ignored:
		return "ignored"
	case Handled:
		return "handled"
	case Changed:
		return "changed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Matcher decides whether a token belongs to a route.
type Matcher func(data string) bool

// HandlerFunc processes a matched callback.
type HandlerFunc func(ctx context.Context, cb Callback) (Outcome, error)

// Route is one (predicate, handler) pair.
type Route struct {
	Name   string
	Match  Matcher
	Handle HandlerFunc
}

// Router is an ordered table of routes.
type Router struct {
	routes []Route
}

func New(routes ...Route) *Router {
	return &Router{routes: routes}
}

// Add appends routes after the ones already registered.
func (r *Router) Add(routes ...Route) *Router {
	r.routes = append(r.routes, routes...)
	return r
}

func (r *Router) Len() int { return len(r.routes) }

// Lookup returns the route Dispatch would pick for data.
func (r *Router) Lookup(data string) (Route, bool) {
	for _, rt := range r.routes {
		if rt.Match(data) {
			return rt, true
		}
	}
	return Route{}, false
}

// Dispatch runs the first route matching cb.Data. Placeholder tokens are
// ignored without consulting the table.
func (r *Router) Dispatch(ctx context.Context, cb Callback) (Outcome, error) {
	if cb.Data == keyboard.NoopToken {
		return Ignored, nil
	}
	rt, ok := r.Lookup(cb.Data)
	if !ok {
		return Ignored, fmt.Errorf("%w %q", ErrNoRoute, cb.Data)
	}
	out, err := rt.Handle(ctx, cb)
	if err != nil {
		return out, fmt.Errorf("route %s: %w", rt.Name, err)
	}
	return out, nil
}

// Exact matches a single token.
func Exact(token string) Matcher {
	return func(data string) bool { return data == token }
}

// OneOf matches any of the given tokens.
func OneOf(tokens ...string) Matcher {
	return func(data string) bool {
		for _, t := range tokens {
			if data == t {
				return true
			}
		}
		return false
	}
}

// Prefix matches tokens made of prefix followed by a non-negative integer.
func Prefix(prefix string) Matcher {
	return func(data string) bool {
		_, ok := Index(data, prefix)
		return ok
	}
}

// Index parses the numeric suffix of a prefix+index token.
func Index(data, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(data, prefix)
	if !ok || rest == "" {
		return 0, false
	}
	i, err := strconv.Atoi(rest)
	if err != nil || i < 0 {
		return 0, false
	}
	return i, true
}
