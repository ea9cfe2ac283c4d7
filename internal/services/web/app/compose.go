package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/module"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/httpx"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/requestmeta"
)

// ComposeInput carries the feature modules and shared composition contracts.
type ComposeInput struct {
	Modules             []module.Module
	RequestSchemePolicy requestmeta.SchemePolicy
}

// Compose builds a root HTTP handler from modules. Every module pattern is
// registered on one mux so a known path with the wrong method answers 405.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		for _, pattern := range mount.Patterns {
			if err := mountPattern(root, feature, pattern, mount.Handler, seen); err != nil {
				return nil, err
			}
		}
	}

	return httpx.RejectCrossOrigin(input.RequestSchemePolicy)(root), nil
}

func resolveMount(feature module.Module) (module.Mount, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if mount.Handler == nil {
		return module.Mount{}, fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	if len(mount.Patterns) == 0 {
		return module.Mount{}, fmt.Errorf("mount module %q: at least one pattern is required", feature.ID())
	}
	for _, pattern := range mount.Patterns {
		if err := validatePattern(pattern); err != nil {
			return module.Mount{}, fmt.Errorf("mount module %q has invalid pattern %q: %w", feature.ID(), pattern, err)
		}
	}
	return mount, nil
}

func mountPattern(root *http.ServeMux, feature module.Module, pattern string, handler http.Handler, seen map[string]string) (err error) {
	if previous, ok := seen[pattern]; ok {
		return fmt.Errorf("module %q duplicates pattern %q owned by module %q", feature.ID(), pattern, previous)
	}
	// ServeMux panics on conflicting patterns; surface that as a startup error.
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("module %q pattern %q: %v", feature.ID(), pattern, recovered)
		}
	}()
	root.Handle(pattern, handler)
	seen[pattern] = feature.ID()
	return nil
}

func validatePattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("pattern is required")
	}
	if strings.TrimSpace(pattern) != pattern {
		return fmt.Errorf("pattern must not include surrounding whitespace")
	}
	path := pattern
	if method, rest, ok := strings.Cut(pattern, " "); ok {
		if method == "" || strings.ToUpper(method) != method {
			return fmt.Errorf("method must be upper case")
		}
		path = rest
	}
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("path must begin with /")
	}
	return nil
}
