package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	httpapi "github.com/aussiebroadwan/pokesort/internal/pokesort/http"
	"github.com/aussiebroadwan/pokesort/pkg/httpx"
	"github.com/aussiebroadwan/pokesort/pkg/pokesdk"
	"github.com/stretchr/testify/require"
)

func TestGate(t *testing.T) {
	env := newTestEnv(t).start(t)

	t.Run("page redirects to sign in", func(t *testing.T) {
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/decks", nil))

		require.Equal(t, http.StatusFound, rec.Code)
		require.Equal(t, "/auth/signin?callbackUrl=%2Fdashboard%2Fdecks", rec.Header().Get("Location"))
		require.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	})

	t.Run("api gets 401", func(t *testing.T) {
		_, err := env.client(t).Me(context.Background())
		apiErr := requireAPIError(t, err, http.StatusUnauthorized, pokesdk.CodeUnauthorized)
		require.Equal(t, "You must be logged in", apiErr.Message)
	})

	t.Run("forged cookie is anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/protected/me", nil)
		req.AddCookie(&http.Cookie{Name: httpx.DefaultSessionCookieName, Value: "forged.token.value"})
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	var healthy atomic.Bool
	healthy.Store(true)
	env.router.AddReadinessCheck("ratelimit", func(context.Context) error {
		if healthy.Load() {
			return nil
		}
		return errors.New("connection refused")
	})
	env.start(t)
	client := env.client(t)
	ctx := context.Background()

	live, err := client.GetLiveness(ctx)
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := client.GetReadiness(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"database": "ok", "ratelimit": "ok"}, ready.Checks)

	healthy.Store(false)
	_, err = client.GetReadiness(ctx)
	var apiErr *pokesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
}

func TestFixedWindowOnAPI(t *testing.T) {
	env := newTestEnv(t, func(o *httpapi.Options) {
		o.Window = httpx.WindowConfig{Max: 2, Window: time.Minute}
		o.WindowCounter = httpx.NewMemoryWindow()
	}).start(t)
	client := env.client(t)
	ctx := context.Background()

	for range 2 {
		_, err := client.ListPokemon(ctx, pokesdk.ListPokemonParams{})
		require.NoError(t, err)
	}

	_, err := client.ListPokemon(ctx, pokesdk.ListPokemonParams{})
	apiErr := requireAPIError(t, err, http.StatusTooManyRequests, pokesdk.CodeRateLimited)
	require.Positive(t, apiErr.RetryAfter)

	// Other routes keep their own window.
	_, err = client.Session(ctx)
	require.NoError(t, err)
}

func TestFixedWindowKeysByTrustedClientIP(t *testing.T) {
	env := newTestEnv(t, func(o *httpapi.Options) {
		o.Window = httpx.WindowConfig{Max: 1, Window: time.Minute}
		o.WindowCounter = httpx.NewMemoryWindow()
		o.TrustedProxies = httpx.MustParseTrustedProxies("198.51.100.1")
	})
	env.router.ApplyRoutes()

	list := func(remoteAddr, forwardedFor string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/pokemon", nil)
		req.RemoteAddr = remoteAddr
		req.Header.Set("X-Forwarded-For", forwardedFor)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)
		return rec.Code
	}

	t.Run("direct client cannot rotate its key", func(t *testing.T) {
		require.Equal(t, http.StatusOK, list("203.0.113.50:4000", "192.0.2.1"))
		require.Equal(t, http.StatusTooManyRequests, list("203.0.113.50:4000", "192.0.2.2"))
	})

	t.Run("clients behind the proxy are told apart", func(t *testing.T) {
		require.Equal(t, http.StatusOK, list("198.51.100.1:4000", "192.0.2.7"))
		require.Equal(t, http.StatusOK, list("198.51.100.1:4000", "192.0.2.8"))
		require.Equal(t, http.StatusTooManyRequests, list("198.51.100.1:4000", "spoofed, 192.0.2.8"))
	})
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t).start(t)
	ctx := context.Background()

	client := env.client(t)
	_, err := client.SignIn(ctx, pokesdk.SignInRequest{Username: "nobody", Password: "pikachu1"})
	require.Error(t, err)

	resp, err := http.Get(env.server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(body)
	require.Contains(t, text, `pokesort_http_requests_total{method="POST",route="POST /api/auth/signin",status="401"} 1`)
	require.Contains(t, text, `pokesort_auth_events_total{event="signin",outcome="USER_NOT_FOUND"} 1`)
}

func TestSwaggerIsServed(t *testing.T) {
	env := newTestEnv(t).start(t)

	resp, err := http.Get(env.server.URL + "/swagger/doc.json")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "/api/auth/signup")
}
