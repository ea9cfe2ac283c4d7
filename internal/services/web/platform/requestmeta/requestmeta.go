// Package requestmeta provides normalized request metadata helpers.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how request metadata resolves the request scheme
// and host.
//
// TrustForwardedProto must be explicitly enabled for X-Forwarded-Proto and
// X-Forwarded-Host to be considered.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// IsHTTPSWithPolicy reports whether a request should be treated as HTTPS using
// the provided scheme policy.
func IsHTTPSWithPolicy(r *http.Request, policy SchemePolicy) bool {
	scheme, _ := requestScheme(r, policy)
	return scheme == "https"
}

// IsStateChanging reports whether method can mutate server state.
func IsStateChanging(method string) bool {
	switch strings.ToUpper(strings.TrimSpace(method)) {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return false
	default:
		return true
	}
}

// IsCrossOrigin reports whether the request carries an Origin or Referer
// naming a different origin than the request itself. Requests with neither
// header are not cross-origin.
func IsCrossOrigin(r *http.Request, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	source := originSource(r)
	if source == "" {
		return false
	}
	return !sameOrigin(r, source, policy)
}

// originSource prefers Origin over Referer.
func originSource(r *http.Request) string {
	if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
		return origin
	}
	return strings.TrimSpace(r.Header.Get("Referer"))
}

// sameOrigin compares raw against the request origin. When the request scheme
// is only inferred, a TLS-terminating proxy may sit in front, so the scheme is
// not compared and a bare request host matches the source's default port.
func sameOrigin(r *http.Request, raw string, policy SchemePolicy) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	sourceScheme := strings.ToLower(strings.TrimSpace(parsed.Scheme))
	sourceHost := strings.ToLower(strings.TrimSpace(parsed.Hostname()))
	if sourceHost == "" || defaultPortForScheme(sourceScheme) == "" {
		return false
	}
	sourcePort := strings.TrimSpace(parsed.Port())
	if sourcePort == "" {
		sourcePort = defaultPortForScheme(sourceScheme)
	}

	host, port := requestHost(r, policy)
	if host == "" || host != sourceHost {
		return false
	}
	scheme, known := requestScheme(r, policy)
	if known {
		if port == "" {
			port = defaultPortForScheme(scheme)
		}
		return sourceScheme == scheme && sourcePort == port
	}
	if port == "" {
		return sourcePort == defaultPortForScheme(sourceScheme)
	}
	return sourcePort == port
}

func requestHost(r *http.Request, policy SchemePolicy) (string, string) {
	if policy.TrustForwardedProto {
		forwarded, _, _ := strings.Cut(r.Header.Get("X-Forwarded-Host"), ",")
		if host, port := requestHostParts(forwarded); host != "" {
			return host, port
		}
	}
	host, port := requestHostParts(r.Host)
	if host == "" && r.URL != nil {
		host, port = requestHostParts(r.URL.Host)
	}
	return host, port
}

// requestScheme resolves the scheme and whether it is known rather than
// defaulted to http.
func requestScheme(r *http.Request, policy SchemePolicy) (string, bool) {
	if r == nil {
		return "", false
	}
	if policy.TrustForwardedProto {
		if forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded == "http" || forwarded == "https" {
			return forwarded, true
		}
	}
	if r.URL != nil {
		if scheme := strings.ToLower(strings.TrimSpace(r.URL.Scheme)); scheme == "http" || scheme == "https" {
			return scheme, true
		}
	}
	if r.TLS != nil {
		return "https", true
	}
	return "http", false
}

func defaultPortForScheme(scheme string) string {
	switch scheme {
	case "https":
		return "443"
	case "http":
		return "80"
	default:
		return ""
	}
}

func requestHostParts(rawHost string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(rawHost))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(strings.TrimSpace(parsed.Hostname())), strings.TrimSpace(parsed.Port())
}
