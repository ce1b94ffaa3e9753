package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/pokesort/internal/pokesort/service"
	"github.com/aussiebroadwan/pokesort/pkg/httpx"
	"github.com/aussiebroadwan/pokesort/pkg/pokesdk"
	"github.com/aussiebroadwan/pokesort/pkg/slogx"
)

type SignInHandler struct {
	Accounts *service.AccountService
	Sessions *service.SessionService
	Cookie   httpx.SessionCookie
}

// ServeHTTP godoc
//
//	@Summary		Sign In
//	@Description	Check username and password and start a session. The session token is set as an HttpOnly cookie.
//	@Description	Unknown users, wrong passwords and malformed input all get the same 401.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		pokesdk.SignInRequest	true	"Credentials"
//	@Success		200		{object}	pokesdk.SignInResponse	"user"
//	@Failure		400		{object}	pokesdk.APIError		"VALIDATION_ERROR (body is not JSON)"
//	@Failure		401		{object}	pokesdk.APIError		"INVALID_CREDENTIALS"
//	@Failure		429		{object}	pokesdk.APIError		"RATE_LIMIT_EXCEEDED"
//	@Failure		500		{object}	pokesdk.APIError		"SERVER_ERROR"
//	@Router			/api/auth/signin [post].
func (h *SignInHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req pokesdk.SignInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		pokesdk.ErrInvalidBody.WriteError(w)
		return
	}

	id, err := h.Accounts.SignIn(ctx, service.SignInInput{Username: req.Username, Password: req.Password})
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.Is(err, service.ErrUserNotFound),
			errors.Is(err, service.ErrInvalidPassword),
			errors.As(err, &verr):
			pokesdk.ErrInvalidCredentials.WriteError(w)
		default:
			log.Error("sign in failed", "error", err)
			pokesdk.ErrUnexpected.WriteError(w)
		}
		return
	}

	token, _, err := h.Sessions.Mint(id)
	if err != nil {
		log.Error("failed to mint session", "error", err, "user_id", id.ID)
		pokesdk.ErrUnexpected.WriteError(w)
		return
	}
	h.Cookie.Write(w, r, token)

	httpx.WriteJSON(w, http.StatusOK, pokesdk.SignInResponse{
		User: pokesdk.Identity{
			ID:       id.ID,
			Username: id.Username,
			Email:    id.Email,
			Name:     id.Name,
			Image:    id.Image,
		},
	})
}
