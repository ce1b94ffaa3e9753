package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aussiebroadwan/pokesort/pkg/pokesdk"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()

	dir := t.TempDir()
	return Config{
		Env:                  "dev",
		LogLevel:             "error",
		LogFormat:            "text",
		Port:                 0,
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Minute,
		Auth: AuthConfig{
			Issuer:            "pokesort",
			SessionTTL:        720 * time.Hour,
			RefreshAfter:      24 * time.Hour,
			PepperFile:        filepath.Join(dir, "pepper"),
			SignInPath:        "/auth/signin",
			ProtectedPrefixes: []string{"/dashboard", "/api/protected"},
		},
		Database:  DatabaseConfig{Driver: DriverSQLite, File: filepath.Join(dir, "pokesort.db")},
		RateLimit: RateLimitConfig{Backend: BackendMemory, Max: 100, WindowMS: 900000},
		Redis:     RedisConfig{Addr: "localhost:6379"},
	}
}

func readiness(t *testing.T, app *Application) pokesdk.HealthResponse {
	t.Helper()

	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var health pokesdk.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	return health
}

func TestNew_SQLiteAndMemoryWindow(t *testing.T) {
	app, err := New(testConfig(t))
	require.NoError(t, err)

	health := readiness(t, app)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, map[string]string{"database": "ok"}, health.Checks)

	// The in-memory window is registered for sweeping.
	require.Equal(t, 0, app.housekeepingService.RunOnce())

	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pokemon", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "100", rec.Header().Get("X-RateLimit-Limit"))

	require.NoError(t, app.Shutdown())
}

func TestNew_RedisWindow(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := testConfig(t)
	cfg.RateLimit.Backend = BackendRedis
	cfg.RateLimit.Max = 1
	cfg.Redis.Addr = mr.Addr()

	app, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Shutdown() })

	health := readiness(t, app)
	require.Equal(t, "ok", health.Checks["ratelimit"])

	for _, want := range []int{http.StatusOK, http.StatusTooManyRequests} {
		rec := httptest.NewRecorder()
		app.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pokemon", nil))
		require.Equal(t, want, rec.Code)
	}

	keys := mr.Keys()
	require.Len(t, keys, 1)
	require.True(t, strings.HasPrefix(keys[0], redisKeyPrefix))
}

func TestNew_RedisUnreachable(t *testing.T) {
	cfg := testConfig(t)
	cfg.RateLimit.Backend = BackendRedis
	cfg.Redis.Addr = "127.0.0.1:1"

	_, err := New(cfg)
	require.ErrorContains(t, err, "redis")
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Env = "prod"

	_, err := New(cfg)
	require.ErrorContains(t, err, "AUTH_SESSION_SECRET")
}
