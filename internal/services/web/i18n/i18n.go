// Package i18n provides locale resolution and message printing for the site.
package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supported = []language.Tag{language.English}

var matcher = language.NewMatcher(supported)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supported))
	copy(out, supported)
	return out
}

// Default returns the default language tag.
func Default() language.Tag {
	return supported[0]
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag picks the best supported tag from Accept-Language.
func ResolveTag(r *http.Request) language.Tag {
	if r == nil {
		return Default()
	}
	accept := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if accept == "" {
		return Default()
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return Default()
	}
	_, idx, _ := matcher.Match(tags...)
	return supported[idx]
}

// Localizer renders catalog keys for one resolved language.
type Localizer struct {
	printer *message.Printer
}

// NewLocalizer builds a Localizer for tag.
func NewLocalizer(tag language.Tag) Localizer {
	return Localizer{printer: Printer(tag)}
}

// ForRequest builds a Localizer for the request's preferred language.
func ForRequest(r *http.Request) Localizer {
	return NewLocalizer(ResolveTag(r))
}

// T renders key with args. Unknown keys render as the key itself.
func (l Localizer) T(key string, args ...any) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	printer := l.printer
	if printer == nil {
		printer = Printer(Default())
	}
	return printer.Sprintf(key, args...)
}

// TS renders key with string args, as carried by flash notices.
func (l Localizer) TS(key string, args ...string) string {
	values := make([]any, len(args))
	for i, arg := range args {
		values[i] = arg
	}
	return l.T(key, values...)
}
