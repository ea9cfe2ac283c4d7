package publichandler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/errors"
	flashnotice "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/flash"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/requestmeta"
	"github.com/a-h/templ"
)

func TestRedirectWithNoticeWritesCookieAndLocation(t *testing.T) {
	t.Parallel()

	base := NewBase(WithFlash(newJar(t)))
	rr := httptest.NewRecorder()
	base.RedirectWithNotice(rr, httptest.NewRequest(http.MethodPost, "/register", nil), flashnotice.NoticeSuccess("flash.register.success"), "/")

	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got := rr.Header().Get("Location"); got != "/" {
		t.Fatalf("Location = %q, want %q", got, "/")
	}
	if !strings.Contains(rr.Header().Get("Set-Cookie"), flashnotice.CookieName+"=") {
		t.Fatalf("Set-Cookie = %q, want flash cookie", rr.Header().Get("Set-Cookie"))
	}
}

func TestRedirectWithNoticeWithoutFlashStillRedirects(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewBase().RedirectWithNotice(rr, httptest.NewRequest(http.MethodPost, "/register", nil), flashnotice.NoticeSuccess("k"), "/")
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if rr.Header().Get("Set-Cookie") != "" {
		t.Fatal("unexpected cookie without flash store")
	}
}

func TestWritePageLocalizesTitle(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	NewBase().WritePage(rr, httptest.NewRequest(http.MethodGet, "/about", nil), "about.title", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "<title>About | Cyntas Wealth Tech</title>") {
		t.Fatalf("body missing localized title: %q", rr.Body.String())
	}
}

func TestWritePageRenderFailureWrites500(t *testing.T) {
	t.Parallel()

	failing := templ.ComponentFunc(func(context.Context, io.Writer) error { return errors.New("boom") })
	rr := httptest.NewRecorder()
	NewBase().WritePage(rr, httptest.NewRequest(http.MethodGet, "/", nil), "home.title", failing)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestWriteNotFoundAndWriteError(t *testing.T) {
	t.Parallel()

	base := NewBase(WithFlash(newJar(t)))
	rr := httptest.NewRecorder()
	base.WriteNotFound(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}

	rr = httptest.NewRecorder()
	base.WriteError(rr, httptest.NewRequest(http.MethodGet, "/admin/delete/user/x", nil), apperrors.E(apperrors.KindNotFound, "bad id"))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}

	rr = httptest.NewRecorder()
	base.WriteError(rr, httptest.NewRequest(http.MethodGet, "/", nil), nil)
	if rr.Body.Len() != 0 {
		t.Fatalf("nil error wrote body %q", rr.Body.String())
	}
}

func newJar(t *testing.T) *flashnotice.Jar {
	t.Helper()
	jar, err := flashnotice.NewJar([]byte("secret"), requestmeta.SchemePolicy{})
	if err != nil {
		t.Fatalf("NewJar() error = %v", err)
	}
	return jar
}
