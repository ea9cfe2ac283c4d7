package public

import (
	"net/http"

	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/httpx"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/publichandler"
	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/routepath"
	webtemplates "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/templates"
)

// page binds a fixed path to its copy.
type page struct {
	path     string
	titleKey string
	view     webtemplates.InfoView
}

var pages = []page{
	{
		path:     routepath.Root,
		titleKey: "home.title",
		view:     webtemplates.InfoView{HeadingKey: "home.heading", LeadKey: "home.lead", CTAKey: "home.cta", CTAHref: routepath.Register},
	},
	{
		path:     routepath.About,
		titleKey: "about.title",
		view:     webtemplates.InfoView{HeadingKey: "about.heading", LeadKey: "about.lead"},
	},
	{
		path:     routepath.Education,
		titleKey: "education.title",
		view:     webtemplates.InfoView{HeadingKey: "education.heading", LeadKey: "education.lead", CTAKey: "education.cta", CTAHref: routepath.RegisterWorkshop},
	},
	{
		path:     routepath.MicroInvesting,
		titleKey: "micro_investing.title",
		view:     webtemplates.InfoView{HeadingKey: "micro_investing.heading", LeadKey: "micro_investing.lead", CTAKey: "micro_investing.cta", CTAHref: routepath.Register},
	},
	{
		path:     routepath.Diaspora,
		titleKey: "diaspora.title",
		view:     webtemplates.InfoView{HeadingKey: "diaspora.heading", LeadKey: "diaspora.lead", CTAKey: "diaspora.cta", CTAHref: routepath.Register + "?type=diaspora"},
	},
}

type handlers struct {
	publichandler.Base
}

func newHandlers(base publichandler.Base) handlers {
	return handlers{Base: base}
}

func (h handlers) handlePage(p page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.WritePage(w, r, p.titleKey, webtemplates.InfoPage(p.view, h.Localizer(r)))
	}
}

func (handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteNotFound(w, r)
}
