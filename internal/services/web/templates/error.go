package templates

import "net/http"

// ErrorPageTitle returns the localized title for an error status.
func ErrorPageTitle(statusCode int, loc Localizer) string {
	if statusCode == http.StatusNotFound {
		return T(loc, "error.not_found.title")
	}
	return T(loc, "error.generic.title")
}

func errorBodyKey(statusCode int) string {
	if statusCode == http.StatusNotFound {
		return "error.not_found.body"
	}
	return "error.generic.body"
}
