package pagerender

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	flashnotice "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/flash"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/requestmeta"
	"github.com/a-h/templ"
)

func TestWritePageRendersFullPageWithLayout(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	rr := httptest.NewRecorder()

	err := WritePage(rr, req, nil, Page{
		Title:      "About",
		StatusCode: http.StatusAccepted,
		Body:       textComponent(`<section id="body-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusAccepted)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q, want %q", got, "text/html; charset=utf-8")
	}
	body := rr.Body.String()
	for _, marker := range []string{"<!doctype html>", `id="body-root"`, "<title>About | Cyntas Wealth Tech</title>"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestWritePageDefaultsStatusAndBody(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WritePage(rr, httptest.NewRequest(http.MethodGet, "/", nil), nil, Page{Title: "Home"}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestWritePageRendersToastFromFlashNotice(t *testing.T) {
	t.Parallel()

	jar, err := flashnotice.NewJar([]byte("secret"), requestmeta.SchemePolicy{})
	if err != nil {
		t.Fatalf("NewJar() error = %v", err)
	}
	writeRR := httptest.NewRecorder()
	jar.Write(writeRR, httptest.NewRequest(http.MethodPost, "/admin/delete/user/5", nil), flashnotice.NoticeSuccess("flash.admin.registrant_deleted", "5"))
	cookie, err := http.ParseSetCookie(writeRR.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(cookie)
	rr := httptest.NewRecorder()
	if err := WritePage(rr, req, jar, Page{Title: "Admin"}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "User 5 deleted successfully") {
		t.Fatalf("body missing toast message: %q", body)
	}
	if !strings.Contains(body, "flash-success") {
		t.Fatalf("body missing toast kind: %q", body)
	}
	if rr.Header().Get("Set-Cookie") == "" {
		t.Fatal("expected flash cookie to be cleared")
	}
}

func TestWritePageReturnsRenderErrorWithoutWriting(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	failing := templ.ComponentFunc(func(context.Context, io.Writer) error {
		return errors.New("render failed")
	})
	if err := WritePage(rr, httptest.NewRequest(http.MethodGet, "/", nil), nil, Page{Title: "x", Body: failing}); err == nil {
		t.Fatal("expected render error")
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("body = %q, want empty", rr.Body.String())
	}
}

func TestWritePageNilWriter(t *testing.T) {
	t.Parallel()

	if err := WritePage(nil, nil, nil, Page{}); err != nil {
		t.Fatalf("WritePage(nil) error = %v", err)
	}
}

func textComponent(value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, value)
		return err
	})
}
