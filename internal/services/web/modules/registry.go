package modules

import (
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/modules/admin"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/modules/public"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/modules/registration"
)

// Default returns every web module in mount order. The public module owns
// the catch-all route, so it goes last.
func Default(deps Dependencies) []Module {
	return []Module{
		registration.New(deps.Store, deps.Base),
		admin.New(deps.Store, deps.Base),
		public.New(deps.Base),
	}
}
