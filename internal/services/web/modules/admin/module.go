// Package admin lists and deletes registrations. It is not gated by any
// authentication.
package admin

import (
	"net/http"

	module "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/module"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/publichandler"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/routepath"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/storage"
)

// Store is the persistence the admin pages read from and delete in.
type Store interface {
	storage.RegistrantStore
	storage.WorkshopRegistrantStore
}

// Module provides the admin listing, deletion and export routes.
type Module struct {
	store Store
	base  publichandler.Base
}

// New returns an admin module backed by store.
func New(store Store, base publichandler.Base) Module {
	return Module{store: store, base: base}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "admin"
}

// Mount wires the admin routes.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(m.store, m.base)
	routes := []struct {
		pattern string
		handler http.HandlerFunc
	}{
		{pattern: http.MethodGet + " " + routepath.Admin, handler: h.handleList},
		{pattern: http.MethodPost + " " + routepath.AdminDeleteUserPattern, handler: h.handleDeleteRegistrant},
		{pattern: http.MethodPost + " " + routepath.AdminDeleteWorkshopPattern, handler: h.handleDeleteWorkshopRegistrant},
		{pattern: http.MethodGet + " " + routepath.AdminExportRegistrants, handler: h.handleExportRegistrants},
		{pattern: http.MethodGet + " " + routepath.AdminExportWorkshops, handler: h.handleExportWorkshopRegistrants},
	}
	patterns := make([]string, 0, len(routes))
	for _, route := range routes {
		mux.HandleFunc(route.pattern, route.handler)
		patterns = append(patterns, route.pattern)
	}
	return module.Mount{Patterns: patterns, Handler: mux}, nil
}
