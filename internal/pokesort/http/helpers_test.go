package http_test

import (
	"net/http/httptest"
	"testing"

	httpapi "github.com/aussiebroadwan/pokesort/internal/pokesort/http"
	"github.com/aussiebroadwan/pokesort/internal/pokesort/metrics"
	"github.com/aussiebroadwan/pokesort/internal/pokesort/service"
	"github.com/aussiebroadwan/pokesort/internal/pokesort/store/drivers/sqlite"
	"github.com/aussiebroadwan/pokesort/pkg/cryptox"
	"github.com/aussiebroadwan/pokesort/pkg/httpx"
	"github.com/aussiebroadwan/pokesort/pkg/pokesdk"
	"github.com/aussiebroadwan/pokesort/pkg/slogx"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	router  *httpapi.Router
	server  *httptest.Server
	metrics *metrics.Metrics
}

// newTestEnv wires the router the way app.New does, over an in-memory store
// and a cheap hasher.
func newTestEnv(t *testing.T, configure ...func(*httpapi.Options)) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	m := metrics.New()
	v := service.NewValidator()
	hasher := &cryptox.Argon2Hasher{
		Pepper: "test-pepper",
		Params: cryptox.Argon2Params{Memory: 64, Iterations: 1, Parallelism: 1, KeyLength: 16, SaltLength: 8},
	}
	sessions, err := service.NewSessionService(service.SessionConfig{
		Secret: []byte("0123456789abcdef0123456789abcdef"),
		Issuer: "pokesort",
	}, m)
	require.NoError(t, err)

	opts := httpapi.Options{
		BuildVersion: "test",
		Cookie:       httpx.SessionCookie{MaxAge: sessions.TTL()},
		Gate:         httpx.GateConfig{Prefixes: []string{"/dashboard", "/api/protected"}},
	}
	for _, fn := range configure {
		fn(&opts)
	}

	router := httpapi.NewRouter(opts, st, m, slogx.Discard())
	router.AccountService = service.NewAccountService(st, hasher, v, m)
	router.SessionService = sessions
	router.PokemonService = service.NewPokemonService(st, v)

	return &testEnv{router: router, metrics: m}
}

// start applies the routes and serves them. Readiness checks must be added
// before this.
func (e *testEnv) start(t *testing.T) *testEnv {
	t.Helper()

	e.router.ApplyRoutes()
	e.server = httptest.NewServer(e.router)
	t.Cleanup(e.server.Close)
	return e
}

func (e *testEnv) client(t *testing.T) *pokesdk.Client {
	t.Helper()

	c, err := pokesdk.NewClient(e.server.URL)
	require.NoError(t, err)
	return c
}

func settingsRequest(username, email string) pokesdk.SettingsRequest {
	return pokesdk.SettingsRequest{
		Username: username,
		Email:    email,
		Notifications: pokesdk.Notifications{
			Email:       pokesdk.Bool(false),
			Push:        pokesdk.Bool(true),
			NewFeatures: pokesdk.Bool(true),
			DeckUpdates: pokesdk.Bool(false),
		},
		Preferences: pokesdk.Preferences{
			Theme:            "dark",
			CardDisplayStyle: "list",
			EnableAnimations: pokesdk.Bool(false),
			CompactMode:      pokesdk.Bool(true),
		},
	}
}

func requireAPIError(t *testing.T, err error, status int, code string) *pokesdk.APIError {
	t.Helper()

	var apiErr *pokesdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}
