package templates

import "fmt"

// Localizer provides translated strings for templ components.
type Localizer interface {
	T(key string, args ...any) string
}

// T returns a translated string or a key-derived fallback.
func T(loc Localizer, key string, args ...any) string {
	if loc != nil {
		return loc.T(key, args...)
	}
	if len(args) > 0 {
		return fmt.Sprintf(key, args...)
	}
	return key
}
