package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/pokesort/internal/pokesort/domain"
	"github.com/aussiebroadwan/pokesort/internal/pokesort/store"
	"github.com/aussiebroadwan/pokesort/pkg/cryptox"
	"github.com/aussiebroadwan/pokesort/pkg/idx"
	"github.com/aussiebroadwan/pokesort/pkg/slogx"
)

// PasswordHasher is satisfied by *cryptox.Argon2Hasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) error
}

type SignUpInput struct {
	Username        string `json:"username" validate:"min=3,max=20,username_chars"`
	Email           string `json:"email" validate:"email"`
	Password        string `json:"password" validate:"min=8"`
	ConfirmPassword string `json:"confirmPassword"`
}

type SignInInput struct {
	Username string `json:"username" validate:"min=3"`
	Password string `json:"password" validate:"min=8"`
}

type NotificationsInput struct {
	Email       *bool `json:"email" validate:"required"`
	Push        *bool `json:"push" validate:"required"`
	NewFeatures *bool `json:"newFeatures" validate:"required"`
	DeckUpdates *bool `json:"deckUpdates" validate:"required"`
}

type PreferencesInput struct {
	Theme            string `json:"theme" validate:"required,oneof=light dark system"`
	CardDisplayStyle string `json:"cardDisplayStyle" validate:"required,oneof=grid list"`
	EnableAnimations *bool  `json:"enableAnimations" validate:"required"`
	CompactMode      *bool  `json:"compactMode" validate:"required"`
}

type SettingsInput struct {
	Username      string             `json:"username" validate:"min=3,max=20,username_chars"`
	Email         string             `json:"email" validate:"email"`
	Notifications NotificationsInput `json:"notifications"`
	Preferences   PreferencesInput   `json:"preferences"`
}

func (in SettingsInput) update() domain.SettingsUpdate {
	return domain.SettingsUpdate{
		Username: in.Username,
		Email:    in.Email,
		Notifications: domain.Notifications{
			Email:       *in.Notifications.Email,
			Push:        *in.Notifications.Push,
			NewFeatures: *in.Notifications.NewFeatures,
			DeckUpdates: *in.Notifications.DeckUpdates,
		},
		Preferences: domain.Preferences{
			Theme:            in.Preferences.Theme,
			CardDisplayStyle: in.Preferences.CardDisplayStyle,
			EnableAnimations: *in.Preferences.EnableAnimations,
			CompactMode:      *in.Preferences.CompactMode,
		},
	}
}

// AccountService owns sign-up, sign-in and the settings of an account.
type AccountService struct {
	Store     store.Store
	Hasher    PasswordHasher
	Validator *Validator
	Events    AuthEvents
	Now       func() time.Time
}

func NewAccountService(s store.Store, hasher PasswordHasher, v *Validator, events AuthEvents) *AccountService {
	return &AccountService{
		Store:     s,
		Hasher:    hasher,
		Validator: v,
		Events:    eventsOrNoop(events),
		Now:       time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// conflictField names which of email or username u collides on. Email wins
// when both match.
func conflictField(u domain.User, email string) string {
	if u.Email == email {
		return "email"
	}
	return "username"
}

// SignUp validates the input, checks for an existing account and creates a
// new one with default settings.
func (s *AccountService) SignUp(ctx context.Context, in SignUpInput) (domain.User, error) {
	l := slogx.FromContext(ctx)

	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)

	if err := Validate(s.Validator, in, passwordsMatch); err != nil {
		s.Events.AuthEvent(EventSignUp, "VALIDATION_ERROR")
		return domain.User{}, err
	}

	existing, err := s.Store.Users().FindConflict(ctx, in.Email, in.Username, "")
	switch {
	case err == nil:
		field := conflictField(existing, in.Email)
		s.Events.AuthEvent(EventSignUp, "DUPLICATE_ERROR")
		return domain.User{}, &DuplicateError{Field: field, Message: fmt.Sprintf("This %s is already registered", field)}
	case !errors.Is(err, store.ErrNotFound):
		return domain.User{}, fmt.Errorf("sign up: conflict check: %w", err)
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("sign up: hash password: %w", err)
	}

	now := s.Now().UTC()
	user := domain.User{
		ID:            idx.NewAt(now).String(),
		Username:      in.Username,
		Email:         in.Email,
		PasswordHash:  hash,
		Notifications: domain.DefaultNotifications(),
		Preferences:   domain.DefaultPreferences(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		var conflict *store.ConflictError
		if errors.As(err, &conflict) {
			field := conflict.Field
			if field == "" {
				field = "username"
			}
			s.Events.AuthEvent(EventSignUp, "DUPLICATE_ERROR")
			return domain.User{}, &DuplicateError{Field: field, Message: fmt.Sprintf("This %s is already registered", field)}
		}
		return domain.User{}, fmt.Errorf("sign up: create user: %w", err)
	}

	s.Events.AuthEvent(EventSignUp, OutcomeOK)
	l.Info("user signed up", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// SignIn checks credentials. The failure kinds stay distinct here; the
// caller decides how much to reveal.
func (s *AccountService) SignIn(ctx context.Context, in SignInInput) (domain.Identity, error) {
	l := slogx.FromContext(ctx)

	in.Username = strings.TrimSpace(in.Username)
	if err := Validate(s.Validator, in); err != nil {
		s.Events.AuthEvent(EventSignIn, "VALIDATION_ERROR")
		return domain.Identity{}, err
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.Events.AuthEvent(EventSignIn, "USER_NOT_FOUND")
			l.Info("sign in failed", "reason", "user_not_found", "username", in.Username)
			return domain.Identity{}, ErrUserNotFound
		}
		return domain.Identity{}, fmt.Errorf("sign in: lookup: %w", err)
	}

	if err := s.Hasher.Verify(in.Password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			s.Events.AuthEvent(EventSignIn, "INVALID_PASSWORD")
			l.Info("sign in failed", "reason", "invalid_password", "user_id", user.ID)
			return domain.Identity{}, ErrInvalidPassword
		}
		return domain.Identity{}, fmt.Errorf("sign in: verify: %w", err)
	}

	s.Events.AuthEvent(EventSignIn, OutcomeOK)
	l.Info("user signed in", "user_id", user.ID)
	return user.Identity(), nil
}

// GetSettings returns the account behind userID.
func (s *AccountService) GetSettings(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, fmt.Errorf("get settings: %w", err)
	}
	return user, nil
}

// UpdateSettings replaces the caller's username, email, notifications and
// preferences. The collision check and the write share one transaction.
func (s *AccountService) UpdateSettings(ctx context.Context, userID string, in SettingsInput) (domain.User, error) {
	if userID == "" {
		return domain.User{}, ErrUnauthenticated
	}

	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)
	if err := Validate(s.Validator, in); err != nil {
		return domain.User{}, err
	}

	var updated domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := tx.Users().FindConflict(ctx, in.Email, in.Username, userID)
		switch {
		case err == nil:
			field := conflictField(existing, in.Email)
			return &DuplicateError{Field: field, Message: fmt.Sprintf("This %s is already taken", field)}
		case !errors.Is(err, store.ErrNotFound):
			return fmt.Errorf("conflict check: %w", err)
		}

		updated, err = tx.Users().UpdateSettings(ctx, userID, in.update())
		return err
	})

	var conflict *store.ConflictError
	switch {
	case err == nil:
		slogx.FromContext(ctx).Info("settings updated", "user_id", userID)
		return updated, nil
	case errors.As(err, &conflict):
		field := conflict.Field
		if field == "" {
			field = "username"
		}
		return domain.User{}, &DuplicateError{Field: field, Message: fmt.Sprintf("This %s is already taken", field)}
	case errors.Is(err, store.ErrNotFound):
		return domain.User{}, ErrNotFound
	default:
		var dup *DuplicateError
		if errors.As(err, &dup) {
			return domain.User{}, dup
		}
		return domain.User{}, fmt.Errorf("update settings: %w", err)
	}
}
