package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/pokesort/pkg/httpx"
	"github.com/aussiebroadwan/pokesort/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestAuthGate(t *testing.T) {
	gate := httpx.AuthGate(httpx.GateConfig{
		Prefixes:   []string{"/dashboard", "/api/protected"},
		SignInPath: "/auth/signin",
		APIPrefix:  "/api",
	})

	// Wrap with a session middleware so the signed-in case goes through the
	// same context plumbing as production.
	signedIn := httpx.SessionMiddleware(stubSessions{claims: jwtx.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	}}, httpx.SessionCookie{})

	handler := httpx.Chain(okHandler, signedIn, gate)

	tests := []struct {
		name     string
		target   string
		cookie   bool
		status   int
		location string
	}{
		{name: "public path", target: "/api/pokemon", status: http.StatusOK},
		{name: "segment boundary", target: "/dashboards", status: http.StatusOK},
		{name: "page redirects", target: "/dashboard/decks?tab=all", status: http.StatusFound,
			location: "/auth/signin?callbackUrl=%2Fdashboard%2Fdecks%3Ftab%3Dall"},
		{name: "exact prefix redirects", target: "/dashboard", status: http.StatusFound,
			location: "/auth/signin?callbackUrl=%2Fdashboard"},
		{name: "api gets 401", target: "/api/protected/me", status: http.StatusUnauthorized},
		{name: "signed in passes", target: "/api/protected/me", cookie: true, status: http.StatusOK},
		{name: "signed in page passes", target: "/dashboard", cookie: true, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie {
				req.AddCookie(&http.Cookie{Name: httpx.DefaultSessionCookieName, Value: "good"})
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			require.Equal(t, tt.status, rec.Code)
			if tt.location != "" {
				require.Equal(t, tt.location, rec.Header().Get("Location"))
			}
			if tt.status == http.StatusUnauthorized {
				var body httpx.ErrorBody
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				require.Equal(t, "UNAUTHORIZED", body.Error)
				require.Equal(t, "You must be logged in", body.Message)
			}
		})
	}
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	httpx.Chain(okHandler, mark("outer"), mark("inner")).
		ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner"}, order)
}
