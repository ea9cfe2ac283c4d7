package app

import (
	"net/http"

	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/modules"
)

// BuildRootHandler composes the default module set into one handler.
func BuildRootHandler(cfg Config) (http.Handler, error) {
	return Compose(ComposeInput{
		Modules:             modules.Default(cfg.Dependencies),
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	})
}
