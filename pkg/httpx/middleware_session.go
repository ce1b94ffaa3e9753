package httpx

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/pokesort/pkg/jwtx"
	"github.com/aussiebroadwan/pokesort/pkg/slogx"
)

// SessionValidator checks session tokens and decides when to reissue them.
type SessionValidator interface {
	Validate(ctx context.Context, token string) (jwtx.Claims, error)

	// Refresh returns a replacement token when claims are old enough to be
	// reissued, and ok=false otherwise.
	Refresh(ctx context.Context, claims jwtx.Claims) (token string, ok bool, err error)
}

// SessionMiddleware resolves the session cookie into request context. It
// never rejects a request: an absent or invalid token just leaves the
// request anonymous, and enforcement is left to AuthGate or the handler.
func SessionMiddleware(sessions SessionValidator, cookie SessionCookie) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw, ok := cookie.Read(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := sessions.Validate(ctx, raw)
			if err != nil {
				slogx.FromContext(ctx).Debug("ignoring invalid session cookie", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			ctx = slogx.With(contextWithSession(ctx, claims), "user_id", claims.Subject)

			if token, refreshed, err := sessions.Refresh(ctx, claims); err != nil {
				slogx.FromContext(ctx).Error("session refresh failed", "error", err)
			} else if refreshed {
				cookie.Write(w, r, token)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
