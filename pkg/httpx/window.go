package httpx

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/aussiebroadwan/pokesort/pkg/slogx"
)

// WindowHit is the state of a fixed window after counting one request.
type WindowHit struct {
	Count   int64
	ResetAt time.Time
}

// WindowCounter counts requests per key in fixed windows. The first hit on
// a key (or the first after its window lapsed) opens a new window of the
// given length.
type WindowCounter interface {
	Hit(ctx context.Context, key string, window time.Duration) (WindowHit, error)
}

// WindowConfig caps each key at Max requests per Window.
type WindowConfig struct {
	Max    int
	Window time.Duration
}

// DefaultWindow allows 100 requests per 15 minutes.
var DefaultWindow = WindowConfig{Max: 100, Window: 15 * time.Minute}

// FixedWindowMiddleware rejects requests once their key has used up the
// window. If the counter backend fails the request is allowed through.
func FixedWindowMiddleware(cfg WindowConfig, counter WindowCounter, keyExtractor KeyExtractor) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			key := keyExtractor(r)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			hit, err := counter.Hit(ctx, key, cfg.Window)
			if err != nil {
				log.Error("rate limit: counter unavailable, allowing request", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			remaining := max(int64(cfg.Max)-hit.Count, 0)
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Max))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(hit.ResetAt.Unix(), 10))

			if hit.Count > int64(cfg.Max) {
				log.Warn("rate limit exceeded", "key", key, "limiter", "fixed_window", "count", hit.Count)
				WriteRateLimited(w, time.Until(hit.ResetAt))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// MemoryWindow is a process-local WindowCounter. Counts are lost on restart.
type MemoryWindow struct {
	mu      sync.Mutex
	windows map[string]*windowEntry
	now     func() time.Time
}

type windowEntry struct {
	count   int64
	resetAt time.Time
}

func NewMemoryWindow() *MemoryWindow {
	return &MemoryWindow{windows: make(map[string]*windowEntry), now: time.Now}
}

// WithClock swaps the time source. Meant for tests.
func (m *MemoryWindow) WithClock(now func() time.Time) *MemoryWindow {
	m.now = now
	return m
}

func (m *MemoryWindow) Hit(_ context.Context, key string, window time.Duration) (WindowHit, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.windows[key]
	if !ok || !now.Before(e.resetAt) {
		e = &windowEntry{resetAt: now.Add(window)}
		m.windows[key] = e
	}
	e.count++

	return WindowHit{Count: e.count, ResetAt: e.resetAt}, nil
}

// Sweep drops windows that have lapsed by now and reports how many went.
func (m *MemoryWindow) Sweep(now time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for key, e := range m.windows {
		if !now.Before(e.resetAt) {
			delete(m.windows, key)
			removed++
		}
	}
	return removed
}

// Len reports how many keys are currently tracked.
func (m *MemoryWindow) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.windows)
}
