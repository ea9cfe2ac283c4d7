package module

import (
	"net/http"
	"testing"
)

type staticModule struct {
	mount Mount
}

func (staticModule) ID() string { return "static" }

func (m staticModule) Mount() (Mount, error) { return m.mount, nil }

func TestModuleContractCarriesPatternsAndHandler(t *testing.T) {
	t.Parallel()

	var feature Module = staticModule{mount: Mount{
		Patterns: []string{"GET /about"},
		Handler:  http.NotFoundHandler(),
	}}
	mount, err := feature.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if len(mount.Patterns) != 1 || mount.Patterns[0] != "GET /about" {
		t.Fatalf("patterns = %v", mount.Patterns)
	}
	if mount.Handler == nil {
		t.Fatal("expected handler")
	}
}
