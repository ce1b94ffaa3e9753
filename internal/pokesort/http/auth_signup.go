package http

import (
	"net/http"

	"github.com/aussiebroadwan/pokesort/internal/pokesort/service"
	"github.com/aussiebroadwan/pokesort/pkg/httpx"
	"github.com/aussiebroadwan/pokesort/pkg/pokesdk"
	"github.com/aussiebroadwan/pokesort/pkg/slogx"
)

type SignUpHandler struct {
	Accounts *service.AccountService
}

// ServeHTTP godoc
//
//	@Summary		Sign Up
//	@Description	Create an account with a username, email and password. Every failing field is reported.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		pokesdk.SignUpRequest	true	"Account details"
//	@Success		201		{object}	pokesdk.SignUpResponse	"user"
//	@Failure		400		{object}	pokesdk.APIError		"VALIDATION_ERROR with details"
//	@Failure		409		{object}	pokesdk.APIError		"DUPLICATE_ERROR with field"
//	@Failure		429		{object}	pokesdk.APIError		"RATE_LIMIT_EXCEEDED"
//	@Failure		500		{object}	pokesdk.APIError		"SERVER_ERROR"
//	@Router			/api/auth/signup [post].
func (h *SignUpHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req pokesdk.SignUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		pokesdk.ErrInvalidBody.WriteError(w)
		return
	}

	user, err := h.Accounts.SignUp(ctx, service.SignUpInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		if apiErr, ok := inputError(err); ok {
			apiErr.WriteError(w)
			return
		}
		log.Error("sign up failed", "error", err)
		pokesdk.ErrSignUpFailed.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, pokesdk.SignUpResponse{
		User: pokesdk.UserSummary{ID: user.ID, Username: user.Username, Email: user.Email},
	})
}
