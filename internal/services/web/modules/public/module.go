// Package public serves the informational pages, the health check and the
// not-found fallback.
package public

import (
	"net/http"

	module "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/module"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/publichandler"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/routepath"
)

// Module provides unauthenticated informational routes.
type Module struct {
	base publichandler.Base
}

// New returns the public pages module.
func New(base publichandler.Base) Module {
	return Module{base: base}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "public"
}

// Mount wires every informational page plus the catch-all 404.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	patterns := registerRoutes(mux, newHandlers(m.base))
	return module.Mount{Patterns: patterns, Handler: mux}, nil
}

func registerRoutes(mux *http.ServeMux, h handlers) []string {
	patterns := make([]string, 0, len(pages)+2)
	for _, p := range pages {
		pattern := http.MethodGet + " " + p.path
		if p.path == routepath.Root {
			pattern = http.MethodGet + " /{$}"
		}
		mux.HandleFunc(pattern, h.handlePage(p))
		patterns = append(patterns, pattern)
	}

	health := http.MethodGet + " " + routepath.Health
	mux.HandleFunc(health, h.handleHealth)
	patterns = append(patterns, health)

	// Anything no other module claims lands here.
	mux.HandleFunc(routepath.Root, h.handleNotFound)
	patterns = append(patterns, routepath.Root)
	return patterns
}
