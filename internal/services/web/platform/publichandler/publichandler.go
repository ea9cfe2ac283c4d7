// Package publichandler provides a shared base for web module handlers.
// It centralizes error handling, localization, flash notices, and page
// rendering that would otherwise be duplicated across modules.
package publichandler

import (
	"net/http"

	webi18n "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/i18n"
	apperrors "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/errors"
	flashnotice "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/flash"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/httpx"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/pagerender"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/weberror"
	"github.com/a-h/templ"
	"github.com/rs/zerolog"
)

// FlashStore writes and consumes one-time notices.
type FlashStore interface {
	pagerender.FlashReader
	Write(w http.ResponseWriter, r *http.Request, notice flashnotice.Notice)
}

// Base provides shared rendering for module handlers. Embed it in handler
// structs to get WritePage, WriteNotFound, WriteError and RedirectWithNotice.
type Base struct {
	flash FlashStore
}

// Option configures a Base.
type Option func(*Base)

// WithFlash attaches the flash notice store.
func WithFlash(store FlashStore) Option {
	return func(b *Base) { b.flash = store }
}

// NewBase builds a handler base with the given options.
func NewBase(opts ...Option) Base {
	var b Base
	for _, o := range opts {
		if o != nil {
			o(&b)
		}
	}
	return b
}

// Localizer returns the message localizer for the request.
func (Base) Localizer(r *http.Request) webi18n.Localizer {
	return webi18n.ForRequest(r)
}

// WritePage renders body inside the site layout with a localized title.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, titleKey string, body templ.Component) {
	b.WritePageStatus(w, r, titleKey, http.StatusOK, body)
}

// WritePageStatus is WritePage with an explicit status code.
func (b Base) WritePageStatus(w http.ResponseWriter, r *http.Request, titleKey string, statusCode int, body templ.Component) {
	err := pagerender.WritePage(w, r, b.flashReader(), pagerender.Page{
		Title:      b.Localizer(r).T(titleKey),
		StatusCode: statusCode,
		Body:       body,
	})
	if err != nil {
		zerolog.Ctx(httpx.RequestContext(r)).Error().Err(err).Str("title_key", titleKey).Msg("render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// WriteNotFound renders a localized 404 error page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.flashReader())
}

// WriteError maps err to a status and renders a safe response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		return
	}
	if apperrors.HTTPStatus(err) >= http.StatusInternalServerError {
		zerolog.Ctx(httpx.RequestContext(r)).Error().Err(err).Msg("request failed")
	}
	weberror.WriteModuleError(w, r, err, b.flashReader())
}

// RedirectWithNotice stores notice for the next page and redirects to location.
func (b Base) RedirectWithNotice(w http.ResponseWriter, r *http.Request, notice flashnotice.Notice, location string) {
	if b.flash != nil {
		b.flash.Write(w, r, notice)
	}
	httpx.WriteRedirect(w, r, location)
}

func (b Base) flashReader() pagerender.FlashReader {
	if b.flash == nil {
		return nil
	}
	return b.flash
}
