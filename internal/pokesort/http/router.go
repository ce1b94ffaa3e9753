package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/pokesort/internal/pokesort/metrics"
	"github.com/aussiebroadwan/pokesort/internal/pokesort/service"
	"github.com/aussiebroadwan/pokesort/internal/pokesort/store"
	"github.com/aussiebroadwan/pokesort/pkg/httpx"
	"github.com/aussiebroadwan/pokesort/pkg/slogx"

	_ "github.com/aussiebroadwan/pokesort/api/pokesort" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

// Options are the transport settings of the router.
type Options struct {
	BuildVersion string

	// Cookie carries the session token.
	Cookie httpx.SessionCookie

	// Gate lists the prefixes that need a session.
	Gate httpx.GateConfig

	// ForceSecure treats every request as TLS for HSTS and cookies.
	ForceSecure bool

	// Window caps requests per client and route under /api. A nil
	// WindowCounter disables it.
	Window        httpx.WindowConfig
	WindowCounter httpx.WindowCounter

	// TrustedProxies may set X-Forwarded-For. Nil means
	// httpx.DefaultTrustedProxies.
	TrustedProxies httpx.TrustedProxies
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	opts      Options
	startTime time.Time
	logger    *slog.Logger
	store     store.Store
	metrics   *metrics.Metrics
	checks    map[string]HealthCheck

	AccountService *service.AccountService
	SessionService *service.SessionService
	PokemonService *service.PokemonService
}

func NewRouter(opts Options, st store.Store, m *metrics.Metrics, logger *slog.Logger) *Router {
	if m == nil {
		m = metrics.New()
	}
	return &Router{
		Mux:       http.NewServeMux(),
		opts:      opts,
		startTime: time.Now(),
		logger:    logger,
		store:     st,
		metrics:   m,
		checks:    map[string]HealthCheck{"database": st.Ping},
	}
}

// AddReadinessCheck adds a dependency probed by /readyz. Call it before
// ApplyRoutes.
func (r *Router) AddReadinessCheck(name string, check HealthCheck) {
	r.checks[name] = check
}

func (r *Router) ApplyRoutes() {
	r.middlewares = []httpx.Middleware{
		httpx.SecurityHeaders(r.opts.ForceSecure),
		slogx.HTTPMiddleware(r.logger),
		httpx.SessionMiddleware(r.SessionService, r.opts.Cookie),
		httpx.AuthGate(r.opts.Gate),
	}

	r.registerAuth()
	r.registerSettings()
	r.registerPokemon()
	r.registerProtected()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			PokéSort API
//	@version		0.1.0
//	@description	Account, session and catalogue endpoints of the PokéSort collection tracker.
//	@description
//	@description	Sessions are HS256-signed tokens carried in an HttpOnly cookie.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/pokesort
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
//
//	@securityDefinitions.apikey	SessionCookie
//	@in							cookie
//	@name						pokesort.session-token
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// handle registers h under pattern, instrumented with the pattern as route
// label and wrapped with mws.
func (r *Router) handle(pattern string, h http.Handler, mws ...httpx.Middleware) {
	chain := append([]httpx.Middleware{r.metrics.Instrument(pattern)}, mws...)
	r.Mux.Handle(pattern, httpx.Chain(h, chain...))
}

// clientIP keys rate limits by the caller's address.
func (r *Router) clientIP(req *http.Request) string {
	if r.opts.TrustedProxies == nil {
		return httpx.IPKeyExtractor(req)
	}
	return r.opts.TrustedProxies.ClientIP(req)
}

func (r *Router) limitByIP(cfg httpx.RateLimitConfig) httpx.Middleware {
	return httpx.RateLimitMiddleware(cfg, r.clientIP)
}

// limitByUser falls back to the client address for anonymous requests.
func (r *Router) limitByUser(cfg httpx.RateLimitConfig) httpx.Middleware {
	return httpx.RateLimitMiddleware(cfg, httpx.CompositeKeyExtractor(":", httpx.UserIDKeyExtractor, r.clientIP))
}

// apiWindow is the shared fixed window applied to /api routes.
func (r *Router) apiWindow() []httpx.Middleware {
	if r.opts.WindowCounter == nil {
		return nil
	}
	cfg := r.opts.Window
	if cfg.Max <= 0 || cfg.Window <= 0 {
		cfg = httpx.DefaultWindow
	}
	key := httpx.CompositeKeyExtractor(":", r.clientIP, httpx.PathKeyExtractor)
	return []httpx.Middleware{httpx.FixedWindowMiddleware(cfg, r.opts.WindowCounter, key)}
}

func (r *Router) registerAuth() {
	signUp := &SignUpHandler{Accounts: r.AccountService}
	signIn := &SignInHandler{Accounts: r.AccountService, Sessions: r.SessionService, Cookie: r.opts.Cookie}
	signOut := &SignOutHandler{Cookie: r.opts.Cookie, Events: r.metrics}
	session := &SessionHandler{}

	// Credential endpoints - strict token bucket by IP on top of the window
	r.handle("POST /api/auth/signup", signUp,
		append(r.apiWindow(), r.limitByIP(httpx.StrictLimit))...)
	r.handle("POST /api/auth/signin", signIn,
		append(r.apiWindow(), r.limitByIP(httpx.StrictLimit))...)

	r.handle("POST /api/auth/signout", signOut, r.apiWindow()...)
	r.handle("GET /api/auth/session", session, r.apiWindow()...)
}

func (r *Router) registerSettings() {
	h := &SettingsHandler{Accounts: r.AccountService}

	r.handle("GET /api/settings", http.HandlerFunc(h.HandleGet), r.apiWindow()...)
	r.handle("PUT /api/settings", http.HandlerFunc(h.HandleUpdate),
		append(r.apiWindow(), r.limitByUser(httpx.ModerateLimit))...)
}

func (r *Router) registerPokemon() {
	h := &PokemonHandler{Pokemon: r.PokemonService}

	r.handle("GET /api/pokemon", http.HandlerFunc(h.HandleList), r.apiWindow()...)
	r.handle("POST /api/pokemon", http.HandlerFunc(h.HandleCreate),
		append(r.apiWindow(), r.limitByUser(httpx.ModerateLimit))...)
}

func (r *Router) registerProtected() {
	// The gate guarantees a session before this runs.
	r.handle("GET /api/protected/me", MeHandler(), r.apiWindow()...)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.handle("GET /livez", LivezHandler(r.startTime, r.opts.BuildVersion),
		r.limitByIP(httpx.LenientLimit))
	r.handle("GET /readyz", ReadyzHandler(r.startTime, r.opts.BuildVersion, r.checks),
		r.limitByIP(httpx.LenientLimit))

	r.Mux.Handle("GET /metrics", r.metrics.Handler())
}
