package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/pokesort/internal/pokesort/domain"
	"github.com/aussiebroadwan/pokesort/internal/pokesort/service"
	"github.com/aussiebroadwan/pokesort/pkg/httpx"
	"github.com/aussiebroadwan/pokesort/pkg/pokesdk"
	"github.com/aussiebroadwan/pokesort/pkg/slogx"
)

type SettingsHandler struct {
	Accounts *service.AccountService
}

func toSettings(u domain.User) pokesdk.Settings {
	n, p := u.Notifications, u.Preferences
	return pokesdk.Settings{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Notifications: pokesdk.Notifications{
			Email:       pokesdk.Bool(n.Email),
			Push:        pokesdk.Bool(n.Push),
			NewFeatures: pokesdk.Bool(n.NewFeatures),
			DeckUpdates: pokesdk.Bool(n.DeckUpdates),
		},
		Preferences: pokesdk.Preferences{
			Theme:            p.Theme,
			CardDisplayStyle: p.CardDisplayStyle,
			EnableAnimations: pokesdk.Bool(p.EnableAnimations),
			CompactMode:      pokesdk.Bool(p.CompactMode),
		},
	}
}

// HandleGet godoc
//
//	@Summary		Get Settings
//	@Description	Return the caller's account settings.
//	@Tags			Settings
//	@Produce		json
//	@Security		SessionCookie
//	@Success		200	{object}	pokesdk.SettingsResponse	"user"
//	@Failure		401	{object}	pokesdk.APIError			"UNAUTHORIZED"
//	@Failure		404	{object}	pokesdk.APIError			"NOT_FOUND"
//	@Failure		500	{object}	pokesdk.APIError			"SERVER_ERROR"
//	@Router			/api/settings [get].
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		pokesdk.ErrUnauthorized.WriteError(w)
		return
	}

	user, err := h.Accounts.GetSettings(ctx, userID)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, pokesdk.SettingsResponse{User: toSettings(user)})
	case errors.Is(err, service.ErrNotFound):
		pokesdk.ErrUserNotFound.WriteError(w)
	default:
		slogx.FromContext(ctx).Error("failed to load settings", "error", err)
		pokesdk.ErrUnexpected.WriteError(w)
	}
}

// HandleUpdate godoc
//
//	@Summary		Update Settings
//	@Description	Replace the caller's username, email, notifications and preferences. All fields are required.
//	@Tags			Settings
//	@Accept			json
//	@Produce		json
//	@Security		SessionCookie
//	@Param			request	body		pokesdk.SettingsRequest		true	"New settings"
//	@Success		200		{object}	pokesdk.SettingsResponse	"user"
//	@Failure		400		{object}	pokesdk.APIError			"VALIDATION_ERROR with dotted field paths"
//	@Failure		401		{object}	pokesdk.APIError			"UNAUTHORIZED"
//	@Failure		404		{object}	pokesdk.APIError			"NOT_FOUND"
//	@Failure		409		{object}	pokesdk.APIError			"DUPLICATE_ERROR"
//	@Failure		500		{object}	pokesdk.APIError			"SERVER_ERROR"
//	@Router			/api/settings [put].
func (h *SettingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		pokesdk.ErrUnauthorized.WriteError(w)
		return
	}

	var req pokesdk.SettingsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		pokesdk.ErrInvalidBody.WriteError(w)
		return
	}

	user, err := h.Accounts.UpdateSettings(ctx, userID, service.SettingsInput{
		Username: req.Username,
		Email:    req.Email,
		Notifications: service.NotificationsInput{
			Email:       req.Notifications.Email,
			Push:        req.Notifications.Push,
			NewFeatures: req.Notifications.NewFeatures,
			DeckUpdates: req.Notifications.DeckUpdates,
		},
		Preferences: service.PreferencesInput{
			Theme:            req.Preferences.Theme,
			CardDisplayStyle: req.Preferences.CardDisplayStyle,
			EnableAnimations: req.Preferences.EnableAnimations,
			CompactMode:      req.Preferences.CompactMode,
		},
	})
	if err != nil {
		if apiErr, ok := inputError(err); ok {
			apiErr.WriteError(w)
			return
		}
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			pokesdk.ErrUnauthorized.WriteError(w)
		case errors.Is(err, service.ErrNotFound):
			pokesdk.ErrUserNotFound.WriteError(w)
		default:
			slogx.FromContext(ctx).Error("failed to update settings", "error", err)
			pokesdk.ErrUnexpected.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, pokesdk.SettingsResponse{User: toSettings(user)})
}
