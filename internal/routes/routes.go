// Package routes provides HTTP route registration and handler building.
package routes

import (
	"net/http"
)

// Route represents an HTTP route with method, pattern, and handler.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// Group represents a collection of routes with a common prefix.
type Group struct {
	Prefix      string
	Description string
	Routes      []Route
}

// System collects routes and groups and builds the request multiplexer.
type System interface {
	RegisterRoute(route Route)
	RegisterGroup(group Group)
	Build(notFound http.HandlerFunc) http.Handler
}

type routes struct {
	routes []Route
	groups []Group
}

// New creates an empty route system.
func New() System {
	return &routes{
		routes: []Route{},
		groups: []Group{},
	}
}

// RegisterRoute adds a route to the route system.
func (r *routes) RegisterRoute(route Route) {
	r.routes = append(r.routes, route)
}

// RegisterGroup adds a route group to the route system.
func (r *routes) RegisterGroup(group Group) {
	r.groups = append(r.groups, group)
}

// Build constructs an http.Handler from all registered routes and groups.
// The notFound handler answers every request no registered pattern matches,
// so unmatched routes produce the same JSON envelope as everything else.
func (r *routes) Build(notFound http.HandlerFunc) http.Handler {
	mux := http.NewServeMux()

	for _, route := range r.routes {
		mux.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	for _, group := range r.groups {
		for _, route := range group.Routes {
			mux.HandleFunc(route.Method+" "+group.Prefix+route.Pattern, route.Handler)
		}
	}

	if notFound != nil {
		mux.HandleFunc("/", notFound)
	}

	return mux
}
