package templates

import routepath "github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/routepath"

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang        string
	Loc         Localizer
	CurrentPath string
	Toast       *Toast
}

// Toast is a one-time notice shown at the top of a page.
type Toast struct {
	Kind    string
	Message string
}

type navLink struct {
	path string
	key  string
}

var navLinks = []navLink{
	{path: routepath.Root, key: "nav.home"},
	{path: routepath.About, key: "nav.about"},
	{path: routepath.Education, key: "nav.education"},
	{path: routepath.MicroInvesting, key: "nav.micro_investing"},
	{path: routepath.Diaspora, key: "nav.diaspora"},
	{path: routepath.Register, key: "nav.register"},
}

func pageLang(page PageContext) string {
	if page.Lang == "" {
		return "en"
	}
	return page.Lang
}
