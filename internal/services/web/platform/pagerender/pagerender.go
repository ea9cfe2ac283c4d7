// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"
	"strings"

	webi18n "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/i18n"
	flashnotice "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/flash"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/httpx"
	webtemplates "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/templates"
	"github.com/a-h/templ"
)

// FlashReader consumes the pending flash notice for a request.
type FlashReader interface {
	ReadAndClear(w http.ResponseWriter, r *http.Request) (flashnotice.Notice, bool)
}

// Page describes one full-page response.
type Page struct {
	// Title is already localized.
	Title      string
	StatusCode int
	Body       templ.Component
}

// WritePage renders page inside the site layout, consuming any flash notice.
// Output is buffered so a render failure never leaves a partial document.
func WritePage(w http.ResponseWriter, r *http.Request, flash FlashReader, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = templ.NopComponent
	}

	loc := webi18n.ForRequest(r)
	tag := webi18n.ResolveTag(r)
	currentPath := ""
	if r != nil && r.URL != nil {
		currentPath = r.URL.Path
	}
	pageCtx := webtemplates.PageContext{
		Lang:        tag.String(),
		Loc:         loc,
		CurrentPath: currentPath,
		Toast:       resolveFlashToast(w, r, flash, loc),
	}

	var buf bytes.Buffer
	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	if err := webtemplates.Layout(page.Title, pageCtx).Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func resolveFlashToast(w http.ResponseWriter, r *http.Request, flash FlashReader, loc webi18n.Localizer) *webtemplates.Toast {
	if flash == nil {
		return nil
	}
	notice, ok := flash.ReadAndClear(w, r)
	if !ok {
		return nil
	}
	message := strings.TrimSpace(loc.TS(notice.Key, notice.Args...))
	if message == "" {
		return nil
	}
	return &webtemplates.Toast{
		Kind:    string(notice.Kind),
		Message: message,
	}
}
