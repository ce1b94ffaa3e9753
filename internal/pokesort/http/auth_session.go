package http

import (
	"net/http"

	"github.com/aussiebroadwan/pokesort/internal/pokesort/service"
	"github.com/aussiebroadwan/pokesort/pkg/httpx"
	"github.com/aussiebroadwan/pokesort/pkg/pokesdk"
	"github.com/aussiebroadwan/pokesort/pkg/slogx"
)

type SignOutHandler struct {
	Cookie httpx.SessionCookie
	Events service.AuthEvents
}

// ServeHTTP godoc
//
//	@Summary		Sign Out
//	@Description	Expire the session cookie. Tokens are not revoked server-side.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	object	"empty object"
//	@Router			/api/auth/signout [post].
func (h *SignOutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if userID, ok := httpx.UserIDFromContext(r.Context()); ok {
		slogx.FromContext(r.Context()).Info("user signed out", "user_id", userID)
		if h.Events != nil {
			h.Events.AuthEvent(service.EventSignOut, service.OutcomeOK)
		}
	}

	h.Cookie.Clear(w, r)
	httpx.WriteJSON(w, http.StatusOK, struct{}{})
}

type SessionHandler struct{}

// ServeHTTP godoc
//
//	@Summary		Current Session
//	@Description	Describe the caller's session. Anonymous callers get an empty object.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	pokesdk.SessionResponse	"user, expires"
//	@Router			/api/auth/session [get].
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	claims, ok := httpx.ClaimsFromContext(r.Context())
	if !ok {
		httpx.WriteJSON(w, http.StatusOK, pokesdk.SessionResponse{})
		return
	}

	resp := pokesdk.SessionResponse{
		User: &pokesdk.SessionUser{ID: claims.Subject, Username: claims.Username},
	}
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		resp.Expires = &exp
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// MeHandler godoc
//
//	@Summary		Protected Identity
//	@Description	Return the session identity. Sits behind the auth gate.
//	@Tags			Protected
//	@Produce		json
//	@Security		SessionCookie
//	@Success		200	{object}	pokesdk.MeResponse	"user"
//	@Failure		401	{object}	pokesdk.APIError	"UNAUTHORIZED"
//	@Router			/api/protected/me [get].
func MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := httpx.ClaimsFromContext(r.Context())
		if !ok {
			pokesdk.ErrUnauthorized.WriteError(w)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, pokesdk.MeResponse{
			User: pokesdk.SessionUser{ID: claims.Subject, Username: claims.Username},
		})
	}
}
