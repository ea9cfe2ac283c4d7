package registration

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	apperrors "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/errors"
	flashnotice "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/flash"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/publichandler"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/routepath"
	webtemplates "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/templates"
	"github.com/rs/zerolog"
)

// maxFormMemory caps the multipart bytes held in memory per submission.
const maxFormMemory = 1 << 20

type handlers struct {
	publichandler.Base
	service service
}

func newHandlers(s service, base publichandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleRegisterGet(w http.ResponseWriter, r *http.Request) {
	view := registerFormView(routepath.Register, r.URL.Query())
	h.WritePage(w, r, "register.title", webtemplates.Form(view, h.Localizer(r)))
}

func (h handlers) handleRegisterPost(w http.ResponseWriter, r *http.Request) {
	values, err := postedValues(r)
	if err != nil {
		h.fail(w, r, apperrors.Wrap(apperrors.KindInvalidInput, keyFailed, err), routepath.Register)
		return
	}
	id, err := h.service.registerInterest(r.Context(), decodeRegistrantForm(values))
	if err != nil {
		h.fail(w, r, err, routepath.Register)
		return
	}
	zerolog.Ctx(r.Context()).Info().Int64("registrant_id", id).Msg("registrant created")
	h.RedirectWithNotice(w, r, flashnotice.NoticeSuccess("flash.register.success"), routepath.Root)
}

func (h handlers) handleWorkshopGet(w http.ResponseWriter, r *http.Request) {
	view := workshopFormView(routepath.RegisterWorkshop, r.URL.Query())
	h.WritePage(w, r, "register_workshop.title", webtemplates.Form(view, h.Localizer(r)))
}

func (h handlers) handleWorkshopPost(w http.ResponseWriter, r *http.Request) {
	values, err := postedValues(r)
	if err != nil {
		h.fail(w, r, apperrors.Wrap(apperrors.KindInvalidInput, keyFailed, err), routepath.RegisterWorkshop)
		return
	}
	id, err := h.service.registerWorkshop(r.Context(), decodeWorkshopForm(values))
	if err != nil {
		h.fail(w, r, err, routepath.RegisterWorkshop)
		return
	}
	zerolog.Ctx(r.Context()).Info().Int64("workshop_registrant_id", id).Msg("workshop registrant created")
	h.RedirectWithNotice(w, r, flashnotice.NoticeSuccess("flash.register_workshop.success"), routepath.Education)
}

// fail reports err as a flash notice and sends the visitor back to the form.
func (h handlers) fail(w http.ResponseWriter, r *http.Request, err error, formPath string) {
	logger := zerolog.Ctx(r.Context())
	if apperrors.KindOf(err) == apperrors.KindInvalidInput {
		logger.Info().Err(err).Msg("registration rejected")
	} else {
		logger.Error().Err(err).Msg("registration failed")
	}

	key := apperrors.LocalizationKey(err)
	if key == "" {
		key = keyFailed
	}
	args := apperrors.LocalizationArgs(err)
	noticeArgs := make([]string, 0, len(args))
	for _, arg := range args {
		noticeArgs = append(noticeArgs, fmt.Sprint(arg))
	}
	h.RedirectWithNotice(w, r, flashnotice.NoticeError(key, noticeArgs...), formPath)
}

// postedValues returns the body fields of a urlencoded or multipart form.
func postedValues(r *http.Request) (url.Values, error) {
	err := r.ParseMultipartForm(maxFormMemory)
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}
	return r.PostForm, nil
}
