package public

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/publichandler"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/routepath"
)

func mountPublic(t *testing.T) http.Handler {
	t.Helper()
	mount, err := New(publichandler.NewBase()).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return mount.Handler
}

func TestModuleIDReturnsPublic(t *testing.T) {
	t.Parallel()

	if got := New(publichandler.NewBase()).ID(); got != "public" {
		t.Fatalf("ID() = %q, want %q", got, "public")
	}
}

func TestMountServesInformationalPages(t *testing.T) {
	t.Parallel()

	h := mountPublic(t)
	tests := []struct {
		path    string
		heading string
	}{
		{path: routepath.Root, heading: "Building wealth in Zimbabwe, one investment at a time"},
		{path: routepath.About, heading: "About Cyntas"},
		{path: routepath.Education, heading: "Financial education workshops"},
		{path: routepath.MicroInvesting, heading: "Start small, grow steadily"},
		{path: routepath.Diaspora, heading: "Invest back home from anywhere"},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
			}
			if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
				t.Fatalf("Content-Type = %q, want text/html", got)
			}
			if !strings.Contains(rr.Body.String(), "<h1>"+tc.heading+"</h1>") {
				t.Fatalf("body missing heading %q: %s", tc.heading, rr.Body.String())
			}
		})
	}
}

func TestEducationLinksToWorkshopForm(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountPublic(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Education, nil))
	if !strings.Contains(rr.Body.String(), `href="/register-workshop"`) {
		t.Fatalf("education page missing workshop link: %s", rr.Body.String())
	}
}

func TestHealthReturnsOK(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	mountPublic(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Health, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Body.String(); got != "ok" {
		t.Fatalf("body = %q, want %q", got, "ok")
	}
}

func TestUnknownPathRendersNotFoundPage(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/nope", "/about/extra", "/admin-panel"} {
		rr := httptest.NewRecorder()
		mountPublic(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusNotFound {
			t.Fatalf("path %q status = %d, want %d", path, rr.Code, http.StatusNotFound)
		}
		if !strings.Contains(rr.Body.String(), `id="error-state"`) {
			t.Fatalf("path %q missing error state: %s", path, rr.Body.String())
		}
	}
}

func TestMountPatternsIncludeCatchAll(t *testing.T) {
	t.Parallel()

	mount, err := New(publichandler.NewBase()).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if len(mount.Patterns) != len(pages)+2 {
		t.Fatalf("patterns = %v", mount.Patterns)
	}
	if got := mount.Patterns[0]; got != "GET /{$}" {
		t.Fatalf("first pattern = %q, want %q", got, "GET /{$}")
	}
	if got := mount.Patterns[len(mount.Patterns)-1]; got != routepath.Root {
		t.Fatalf("last pattern = %q, want %q", got, routepath.Root)
	}
}
