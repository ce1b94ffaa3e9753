package httpx

import (
	"net/http"
	"strings"
)

const permissionsPolicy = "camera=(), microphone=(), geolocation=(), payment=(), " +
	"usb=(), screen-wake-lock=(), accelerometer=(), gyroscope=()"

// IsSecureRequest reports whether r reached us over TLS, either directly or
// through a proxy that set X-Forwarded-Proto. force short-circuits to true.
func IsSecureRequest(r *http.Request, force bool) bool {
	if force || r.TLS != nil {
		return true
	}
	return strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https")
}

// SecurityHeaders sets the baseline hardening headers on every response.
// HSTS is only sent when the request is secure.
func SecurityHeaders(forceSecure bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Frame-Options", "DENY")
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", permissionsPolicy)
			if IsSecureRequest(r, forceSecure) {
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}
