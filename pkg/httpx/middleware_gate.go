package httpx

import (
	"net/http"
	"net/url"
	"strings"
)

// GateConfig lists the path prefixes that need a session.
type GateConfig struct {
	// Prefixes are matched on segment boundaries: "/dashboard" covers
	// "/dashboard" and "/dashboard/decks" but not "/dashboards".
	Prefixes []string

	// SignInPath is where anonymous page requests are sent.
	SignInPath string

	// APIPrefix marks paths that get a 401 instead of a redirect.
	APIPrefix string
}

// AuthGate enforces a session on configured prefixes. It must run after
// SessionMiddleware.
func AuthGate(cfg GateConfig) Middleware {
	prefixes := make([]string, 0, len(cfg.Prefixes))
	for _, p := range cfg.Prefixes {
		if p = strings.TrimSuffix(strings.TrimSpace(p), "/"); p != "" {
			prefixes = append(prefixes, p)
		}
	}
	signIn := cfg.SignInPath
	if signIn == "" {
		signIn = "/auth/signin"
	}
	apiPrefix := strings.TrimSuffix(cfg.APIPrefix, "/")
	if apiPrefix == "" {
		apiPrefix = "/api"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !matchesAny(r.URL.Path, prefixes) {
				next.ServeHTTP(w, r)
				return
			}
			if _, ok := UserIDFromContext(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			if underPrefix(r.URL.Path, apiPrefix) {
				WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "You must be logged in")
				return
			}

			target := signIn + "?callbackUrl=" + url.QueryEscape(r.URL.RequestURI())
			NoCache(w)
			http.Redirect(w, r, target, http.StatusFound)
		})
	}
}

func matchesAny(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if underPrefix(path, p) {
			return true
		}
	}
	return false
}

func underPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}
