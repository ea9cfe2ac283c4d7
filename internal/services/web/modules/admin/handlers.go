package admin

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/errors"
	flashnotice "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/flash"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/publichandler"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/routepath"
	webtemplates "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/templates"
	"github.com/rs/zerolog"
)

const (
	keyLoadFailed                     = "flash.admin.load_failed"
	keyRegistrantDeleted              = "flash.admin.registrant_deleted"
	keyWorkshopRegistrantDeleted      = "flash.admin.workshop_registrant_deleted"
	keyRegistrantDeleteFailed         = "flash.admin.registrant_delete_failed"
	keyWorkshopRegistrantDeleteFailed = "flash.admin.workshop_registrant_delete_failed"
	keyExportFailed                   = "flash.admin.export_failed"
)

var errStoreMissing = apperrors.E(apperrors.KindUnavailable, "admin storage is not configured")

type handlers struct {
	publichandler.Base
	store Store
}

func newHandlers(store Store, base publichandler.Base) handlers {
	return handlers{Base: base, store: store}
}

func (h handlers) handleList(w http.ResponseWriter, r *http.Request) {
	view, err := h.loadView(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("load admin listings")
		h.RedirectWithNotice(w, r, flashnotice.NoticeError(keyLoadFailed), routepath.Root)
		return
	}
	h.WritePage(w, r, "admin.title", webtemplates.AdminPage(view, h.Localizer(r)))
}

func (h handlers) loadView(ctx context.Context) (webtemplates.AdminView, error) {
	if h.store == nil {
		return webtemplates.AdminView{}, errStoreMissing
	}
	registrants, err := h.store.ListRegistrants(ctx)
	if err != nil {
		return webtemplates.AdminView{}, apperrors.Wrap(apperrors.KindUnavailable, keyLoadFailed, err)
	}
	workshops, err := h.store.ListWorkshopRegistrants(ctx)
	if err != nil {
		return webtemplates.AdminView{}, apperrors.Wrap(apperrors.KindUnavailable, keyLoadFailed, err)
	}
	return webtemplates.AdminView{Registrants: registrants, WorkshopRegistrants: workshops}, nil
}

func (h handlers) handleDeleteRegistrant(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteTarget{
		kind:    "registrant",
		deleted: keyRegistrantDeleted,
		failed:  keyRegistrantDeleteFailed,
		remove: func(ctx context.Context, id int64) error {
			if h.store == nil {
				return errStoreMissing
			}
			return h.store.DeleteRegistrant(ctx, id)
		},
	})
}

func (h handlers) handleDeleteWorkshopRegistrant(w http.ResponseWriter, r *http.Request) {
	h.handleDelete(w, r, deleteTarget{
		kind:    "workshop_registrant",
		deleted: keyWorkshopRegistrantDeleted,
		failed:  keyWorkshopRegistrantDeleteFailed,
		remove: func(ctx context.Context, id int64) error {
			if h.store == nil {
				return errStoreMissing
			}
			return h.store.DeleteWorkshopRegistrant(ctx, id)
		},
	})
}

// deleteTarget parameterizes the shared delete flow for one table.
type deleteTarget struct {
	kind    string
	deleted string
	failed  string
	remove  func(context.Context, int64) error
}

// handleDelete removes one row by id. A missing row still reports success.
func (h handlers) handleDelete(w http.ResponseWriter, r *http.Request, target deleteTarget) {
	id, ok := parseID(r.PathValue(routepath.IDPathValue))
	if !ok {
		h.WriteError(w, r, apperrors.E(apperrors.KindNotFound, "registration id must be an integer"))
		return
	}
	logger := zerolog.Ctx(r.Context()).With().Str("kind", target.kind).Int64("id", id).Logger()
	if err := target.remove(r.Context(), id); err != nil {
		logger.Error().Err(err).Msg("delete registration")
		h.RedirectWithNotice(w, r, flashnotice.NoticeError(target.failed), routepath.Admin)
		return
	}
	logger.Info().Msg("registration deleted")
	h.RedirectWithNotice(w, r, flashnotice.NoticeSuccess(target.deleted, strconv.FormatInt(id, 10)), routepath.Admin)
}

// parseID accepts base-10 integers only.
func parseID(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
