// Package registration serves the interest and workshop registration forms.
package registration

import (
	"net/http"

	module "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/module"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/publichandler"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/routepath"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/storage"
)

// Store is the persistence the registration forms append to.
type Store interface {
	storage.RegistrantStore
	storage.WorkshopRegistrantStore
}

// Module provides the public registration routes.
type Module struct {
	store Store
	base  publichandler.Base
}

// New returns a registration module writing to store.
func New(store Store, base publichandler.Base) Module {
	return Module{store: store, base: base}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "registration"
}

// Mount wires the form routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.store, m.store), m.base)
	patterns := registerRoutes(mux, h)
	return module.Mount{Patterns: patterns, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) []string {
	routes := []struct {
		pattern string
		handler http.HandlerFunc
	}{
		{pattern: http.MethodGet + " " + routepath.Register, handler: h.handleRegisterGet},
		{pattern: http.MethodPost + " " + routepath.Register, handler: h.handleRegisterPost},
		{pattern: http.MethodGet + " " + routepath.RegisterWorkshop, handler: h.handleWorkshopGet},
		{pattern: http.MethodPost + " " + routepath.RegisterWorkshop, handler: h.handleWorkshopPost},
	}
	patterns := make([]string, 0, len(routes))
	for _, route := range routes {
		mux.HandleFunc(route.pattern, route.handler)
		patterns = append(patterns, route.pattern)
	}
	return patterns
}
