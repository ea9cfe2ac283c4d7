// Package module defines the feature contract used by web composition.
package module

import "net/http"

// Mount describes the route patterns a module serves. Patterns use the
// net/http ServeMux syntax, including an optional method and wildcards, and
// Handler must route every one of them.
type Mount struct {
	Patterns []string
	Handler  http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
