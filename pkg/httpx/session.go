package httpx

import (
	"net/http"
	"time"
)

// DefaultSessionCookieName is used over plain HTTP. Over TLS the name gets
// the "__Secure-" prefix so browsers refuse it on insecure origins.
const DefaultSessionCookieName = "pokesort.session-token"

const securePrefix = "__Secure-"

// SessionCookie describes how the session token travels.
type SessionCookie struct {
	Name        string
	MaxAge      time.Duration
	ForceSecure bool
}

func (c SessionCookie) base() string {
	if c.Name == "" {
		return DefaultSessionCookieName
	}
	return c.Name
}

// NameFor returns the cookie name used for r.
func (c SessionCookie) NameFor(r *http.Request) string {
	if IsSecureRequest(r, c.ForceSecure) {
		return securePrefix + c.base()
	}
	return c.base()
}

// Read returns the session token carried by r. The name matching the
// request's transport wins; the other name is accepted as a fallback so a
// proxy change does not log everyone out.
func (c SessionCookie) Read(r *http.Request) (string, bool) {
	names := []string{c.base(), securePrefix + c.base()}
	if IsSecureRequest(r, c.ForceSecure) {
		names[0], names[1] = names[1], names[0]
	}
	for _, name := range names {
		if ck, err := r.Cookie(name); err == nil && ck.Value != "" {
			return ck.Value, true
		}
	}
	return "", false
}

// Write sets the session cookie on w.
func (c SessionCookie) Write(w http.ResponseWriter, r *http.Request, token string) {
	secure := IsSecureRequest(r, c.ForceSecure)
	http.SetCookie(w, &http.Cookie{
		Name:     c.NameFor(r),
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie under both names.
func (c SessionCookie) Clear(w http.ResponseWriter, r *http.Request) {
	for _, ck := range []*http.Cookie{
		{Name: c.base(), Secure: IsSecureRequest(r, c.ForceSecure)},
		{Name: securePrefix + c.base(), Secure: true},
	} {
		ck.Path = "/"
		ck.MaxAge = -1
		ck.HttpOnly = true
		ck.SameSite = http.SameSiteLaxMode
		http.SetCookie(w, ck)
	}
}
