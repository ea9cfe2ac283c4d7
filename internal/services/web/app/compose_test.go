package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/module"
)

func statusHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
}

func TestComposeRejectsDuplicatePattern(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Patterns: []string{"GET /one"}, Handler: statusHandler(http.StatusOK)}},
			stubModule{id: "two", mount: module.Mount{Patterns: []string{"GET /one"}, Handler: statusHandler(http.StatusOK)}},
		},
	})
	if err == nil {
		t.Fatal("expected duplicate pattern error")
	}
	if got := err.Error(); !strings.Contains(got, `"two"`) || !strings.Contains(got, `"one"`) {
		t.Fatalf("unexpected error = %q", got)
	}
}

func TestComposeRejectsInvalidPatterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
	}{
		{name: "empty", pattern: ""},
		{name: "missing leading slash", pattern: "about"},
		{name: "method without slash", pattern: "GET about"},
		{name: "lower case method", pattern: "get /about"},
		{name: "surrounding whitespace", pattern: "/about "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compose(ComposeInput{
				Modules: []module.Module{
					stubModule{id: "bad", mount: module.Mount{Patterns: []string{tc.pattern}, Handler: statusHandler(http.StatusOK)}},
				},
			})
			if err == nil {
				t.Fatal("expected invalid pattern error")
			}
			if got := err.Error(); !strings.Contains(got, "invalid pattern") || !strings.Contains(got, "bad") {
				t.Fatalf("unexpected error = %q", got)
			}
		})
	}
}

func TestComposeRejectsConflictingPatterns(t *testing.T) {
	t.Parallel()

	_, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "one", mount: module.Mount{Patterns: []string{"GET /items/{id}"}, Handler: statusHandler(http.StatusOK)}},
			stubModule{id: "two", mount: module.Mount{Patterns: []string{"GET /items/{name}"}, Handler: statusHandler(http.StatusOK)}},
		},
	})
	if err == nil {
		t.Fatal("expected conflicting pattern error")
	}
}

func TestComposeRejectsNilModule(t *testing.T) {
	t.Parallel()

	if _, err := Compose(ComposeInput{Modules: []module.Module{nil}}); err == nil {
		t.Fatal("expected nil module error")
	}
}

func TestComposeRejectsMountFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		stub stubModule
	}{
		{name: "mount error", stub: stubModule{id: "broken", err: errors.New("boom")}},
		{name: "missing handler", stub: stubModule{id: "broken", mount: module.Mount{Patterns: []string{"/x"}}}},
		{name: "missing patterns", stub: stubModule{id: "broken", mount: module.Mount{Handler: statusHandler(http.StatusOK)}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compose(ComposeInput{Modules: []module.Module{tc.stub}})
			if err == nil || !strings.Contains(err.Error(), "broken") {
				t.Fatalf("Compose() error = %v, want module error", err)
			}
		})
	}
}

func TestComposeRoutesAcrossModules(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "forms", mount: module.Mount{Patterns: []string{"GET /register", "POST /register"}, Handler: statusHandler(http.StatusAccepted)}},
			stubModule{id: "pages", mount: module.Mount{Patterns: []string{"GET /{$}", "/"}, Handler: statusHandler(http.StatusTeapot)}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{method: http.MethodGet, path: "/register", want: http.StatusAccepted},
		{method: http.MethodPost, path: "/register", want: http.StatusAccepted},
		{method: http.MethodGet, path: "/", want: http.StatusTeapot},
		{method: http.MethodGet, path: "/unknown", want: http.StatusTeapot},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.path, nil))
		if rr.Code != tc.want {
			t.Fatalf("%s %s status = %d, want %d", tc.method, tc.path, rr.Code, tc.want)
		}
	}
}

func TestComposeAnswersMethodNotAllowedForKnownPath(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "admin", mount: module.Mount{Patterns: []string{"POST /admin/delete/user/{id}"}, Handler: statusHandler(http.StatusFound)}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/delete/user/1", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestComposeRejectsCrossOriginPosts(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		Modules: []module.Module{
			stubModule{id: "forms", mount: module.Mount{Patterns: []string{"POST /register"}, Handler: statusHandler(http.StatusFound)}},
		},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	crossOrigin := httptest.NewRequest(http.MethodPost, "http://example.com/register", nil)
	crossOrigin.Header.Set("Origin", "https://evil.test")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, crossOrigin)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("cross-origin status = %d, want %d", rr.Code, http.StatusForbidden)
	}

	sameOrigin := httptest.NewRequest(http.MethodPost, "http://example.com/register", nil)
	sameOrigin.Header.Set("Origin", "http://example.com")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, sameOrigin)
	if rr.Code != http.StatusFound {
		t.Fatalf("same-origin status = %d, want %d", rr.Code, http.StatusFound)
	}

	noHeaders := httptest.NewRequest(http.MethodPost, "http://example.com/register", nil)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, noHeaders)
	if rr.Code != http.StatusFound {
		t.Fatalf("header-less status = %d, want %d", rr.Code, http.StatusFound)
	}
}

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (s stubModule) ID() string {
	return s.id
}

func (s stubModule) Mount() (module.Mount, error) {
	return s.mount, s.err
}
