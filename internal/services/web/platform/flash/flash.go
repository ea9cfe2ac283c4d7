// Package flash provides one-time web notices persisted across redirects.
//
// A notice travels in a single cookie holding an HS256-signed token, so a
// client can neither forge nor edit the message it is shown.
package flash

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/SethChishakwe/cyntas-wealth-tech/internal/services/web/platform/requestmeta"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the canonical cookie used for one-time web notices.
const CookieName = "cyntas_flash"

// DefaultTTL bounds how long an unread notice stays valid.
const DefaultTTL = 5 * time.Minute

const issuer = "cyntas-web"

// Kind classifies flash notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notice stores one flash message reference. Key names a message catalog
// entry and Args fill its placeholders.
type Notice struct {
	Kind Kind     `json:"kind"`
	Key  string   `json:"key"`
	Args []string `json:"args,omitempty"`
}

// NoticeSuccess creates a success notice for the provided localization key.
func NoticeSuccess(key string, args ...string) Notice {
	return Notice{Kind: KindSuccess, Key: key, Args: args}
}

// NoticeError creates an error notice for the provided localization key.
func NoticeError(key string, args ...string) Notice {
	return Notice{Kind: KindError, Key: key, Args: args}
}

type noticeClaims struct {
	Kind Kind     `json:"kind"`
	Key  string   `json:"key"`
	Args []string `json:"args,omitempty"`
	jwt.RegisteredClaims
}

// Jar signs, writes and consumes flash cookies.
type Jar struct {
	secret []byte
	policy requestmeta.SchemePolicy
	ttl    time.Duration
	now    func() time.Time
}

// NewJar builds a Jar signing with secret.
func NewJar(secret []byte, policy requestmeta.SchemePolicy) (*Jar, error) {
	if len(secret) == 0 {
		return nil, errors.New("flash secret is required")
	}
	key := make([]byte, len(secret))
	copy(key, secret)
	return &Jar{secret: key, policy: policy, ttl: DefaultTTL, now: time.Now}, nil
}

// Write stores a flash notice cookie for the next page render. Invalid
// notices are dropped.
func (j *Jar) Write(w http.ResponseWriter, r *http.Request, notice Notice) {
	if j == nil || w == nil {
		return
	}
	normalized, ok := normalizeNotice(notice)
	if !ok {
		return
	}
	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, noticeClaims{
		Kind: normalized.Kind,
		Key:  normalized.Key,
		Args: normalized.Args,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	})
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, j.policy),
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadAndClear reads and clears the flash notice cookie. A tampered or
// expired cookie is cleared and reported as absent.
func (j *Jar) ReadAndClear(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	if j == nil || r == nil {
		return Notice{}, false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie == nil {
		return Notice{}, false
	}
	j.Clear(w, r)
	return j.decode(cookie.Value)
}

// Clear expires any flash notice cookie.
func (j *Jar) Clear(w http.ResponseWriter, r *http.Request) {
	if j == nil || w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, j.policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func (j *Jar) decode(raw string) (Notice, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Notice{}, false
	}
	var claims noticeClaims
	_, err := jwt.ParseWithClaims(
		value,
		&claims,
		func(*jwt.Token) (any, error) { return j.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return Notice{}, false
	}
	return normalizeNotice(Notice{Kind: claims.Kind, Key: claims.Key, Args: claims.Args})
}

func normalizeNotice(notice Notice) (Notice, bool) {
	notice.Key = strings.TrimSpace(notice.Key)
	if notice.Key == "" {
		return Notice{}, false
	}
	notice.Kind = Kind(strings.ToLower(strings.TrimSpace(string(notice.Kind))))
	switch notice.Kind {
	case KindSuccess, KindError:
		return notice, true
	default:
		return Notice{}, false
	}
}
