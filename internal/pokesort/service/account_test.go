package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aussiebroadwan/pokesort/internal/pokesort/domain"
	"github.com/aussiebroadwan/pokesort/internal/pokesort/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newAccounts(t *testing.T) (*AccountService, *recordedEvents) {
	t.Helper()

	events := &recordedEvents{}
	return NewAccountService(newTestStore(t), cheapHasher(), NewValidator(), events), events
}

func signUp(t *testing.T, svc *AccountService, username, email string) domain.User {
	t.Helper()

	u, err := svc.SignUp(context.Background(), SignUpInput{
		Username: username, Email: email, Password: "pikachu1", ConfirmPassword: "pikachu1",
	})
	require.NoError(t, err)
	return u
}

func settingsFor(username, email string) SettingsInput {
	f, tr := false, true
	return SettingsInput{
		Username:      username,
		Email:         email,
		Notifications: NotificationsInput{Email: &f, Push: &tr, NewFeatures: &f, DeckUpdates: &tr},
		Preferences:   PreferencesInput{Theme: domain.ThemeDark, CardDisplayStyle: domain.CardDisplayList, EnableAnimations: &f, CompactMode: &tr},
	}
}

func TestSignUp_CreatesUserWithDefaults(t *testing.T) {
	svc, events := newAccounts(t)

	u := signUp(t, svc, "ash01", " Ash@Example.com ")
	require.NotEmpty(t, u.ID)
	require.Equal(t, "ash01", u.Username)
	require.Equal(t, "ash@example.com", u.Email)
	require.NotEqual(t, "pikachu1", u.PasswordHash)
	require.Equal(t, domain.DefaultNotifications(), u.Notifications)
	require.Equal(t, domain.DefaultPreferences(), u.Preferences)
	require.Equal(t, []string{"signup:ok"}, events.All())

	stored, err := svc.Store.Users().GetUserByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.NoError(t, svc.Hasher.Verify("pikachu1", stored.PasswordHash))
}

func TestSignUp_Rejections(t *testing.T) {
	svc, _ := newAccounts(t)
	signUp(t, svc, "ash01", "ash@example.com")

	t.Run("confirmation mismatch", func(t *testing.T) {
		_, err := svc.SignUp(context.Background(), SignUpInput{
			Username: "misty", Email: "misty@example.com", Password: "pikachu1", ConfirmPassword: "pikachu2",
		})

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		require.True(t, verr.Has("confirmPassword"))
	})

	tests := []struct {
		name     string
		username string
		email    string
		field    string
	}{
		{name: "email taken", username: "misty", email: "ash@example.com", field: "email"},
		{name: "username taken", username: "ash01", email: "misty@example.com", field: "username"},
		{name: "both taken reports email", username: "ash01", email: "ASH@example.com", field: "email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignUp(context.Background(), SignUpInput{
				Username: tt.username, Email: tt.email, Password: "pikachu1", ConfirmPassword: "pikachu1",
			})

			var dup *DuplicateError
			require.True(t, errors.As(err, &dup))
			require.Equal(t, tt.field, dup.Field)
			require.Equal(t, "This "+tt.field+" is already registered", dup.Message)
		})
	}
}

func TestSignUp_ConstraintCatchesRace(t *testing.T) {
	base := newTestStore(t)
	svc := NewAccountService(racingStore{base}, cheapHasher(), NewValidator(), nil)
	signUp(t, svc, "ash01", "ash@example.com")

	_, err := svc.SignUp(context.Background(), SignUpInput{
		Username: "misty", Email: "ash@example.com", Password: "pikachu1", ConfirmPassword: "pikachu1",
	})

	var dup *DuplicateError
	require.True(t, errors.As(err, &dup))
	require.Equal(t, "email", dup.Field)
}

func TestSignUp_ConcurrentOnFileDatabase(t *testing.T) {
	db, err := sqlite.NewStore(sqlite.FileDSN(filepath.Join(t.TempDir(), "pokesort.db")))
	require.NoError(t, err)
	require.NoError(t, db.ApplyMigrations())
	t.Cleanup(func() { _ = db.Close() })

	svc := NewAccountService(db, cheapHasher(), NewValidator(), &recordedEvents{})

	const trainers = 30

	var wg sync.WaitGroup
	errs := make(chan error, trainers)
	for i := 0; i < trainers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := svc.SignUp(context.Background(), SignUpInput{
				Username:        fmt.Sprintf("trainer%02d", i),
				Email:           fmt.Sprintf("trainer%02d@example.com", i),
				Password:        "pikachu1",
				ConfirmPassword: "pikachu1",
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
}

func TestSignIn(t *testing.T) {
	svc, events := newAccounts(t)
	u := signUp(t, svc, "ash01", "ash@example.com")
	ctx := context.Background()

	id, err := svc.SignIn(ctx, SignInInput{Username: "ash01", Password: "pikachu1"})
	require.NoError(t, err)
	require.Equal(t, u.ID, id.ID)
	require.Equal(t, "ash@example.com", id.Email)

	_, err = svc.SignIn(ctx, SignInInput{Username: "ash01", Password: "charmander"})
	require.ErrorIs(t, err, ErrInvalidPassword)

	_, err = svc.SignIn(ctx, SignInInput{Username: "gary", Password: "pikachu1"})
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.SignIn(ctx, SignInInput{Username: "ga", Password: "x"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.True(t, verr.Has("username"))
	require.True(t, verr.Has("password"))

	require.Equal(t, []string{
		"signup:ok", "signin:ok", "signin:INVALID_PASSWORD", "signin:USER_NOT_FOUND", "signin:VALIDATION_ERROR",
	}, events.All())
}

func TestUpdateSettings(t *testing.T) {
	svc, _ := newAccounts(t)
	ctx := context.Background()
	ash := signUp(t, svc, "ash01", "ash@example.com")
	signUp(t, svc, "misty", "misty@example.com")

	t.Run("keeping own values is not a collision", func(t *testing.T) {
		got, err := svc.UpdateSettings(ctx, ash.ID, settingsFor("ash01", "ash@example.com"))
		require.NoError(t, err)
		require.Equal(t, domain.ThemeDark, got.Preferences.Theme)
		require.True(t, got.Preferences.CompactMode)
		require.False(t, got.Notifications.Email)
	})

	t.Run("another user's email", func(t *testing.T) {
		_, err := svc.UpdateSettings(ctx, ash.ID, settingsFor("ash01", "misty@example.com"))

		var dup *DuplicateError
		require.True(t, errors.As(err, &dup))
		require.Equal(t, "email", dup.Field)
		require.Equal(t, "This email is already taken", dup.Message)
	})

	t.Run("another user's username", func(t *testing.T) {
		_, err := svc.UpdateSettings(ctx, ash.ID, settingsFor("misty", "ash@example.com"))

		var dup *DuplicateError
		require.True(t, errors.As(err, &dup))
		require.Equal(t, "username", dup.Field)
		require.Equal(t, "This username is already taken", dup.Message)
	})

	t.Run("rename", func(t *testing.T) {
		got, err := svc.UpdateSettings(ctx, ash.ID, settingsFor("ash_ketchum", "ash@example.com"))
		require.NoError(t, err)
		require.Equal(t, "ash_ketchum", got.Username)

		_, err = svc.SignIn(ctx, SignInInput{Username: "ash_ketchum", Password: "pikachu1"})
		require.NoError(t, err)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := svc.UpdateSettings(ctx, "01J00000000000000000000000", settingsFor("brock", "brock@example.com"))
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := svc.UpdateSettings(ctx, "", settingsFor("brock", "brock@example.com"))
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("invalid nested field", func(t *testing.T) {
		in := settingsFor("ash01", "ash@example.com")
		in.Preferences.Theme = "neon"
		_, err := svc.UpdateSettings(ctx, ash.ID, in)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		require.True(t, verr.Has("preferences.theme"))
	})
}

func TestUpdateSettings_ConstraintCatchesRace(t *testing.T) {
	base := newTestStore(t)
	svc := NewAccountService(racingStore{base}, cheapHasher(), NewValidator(), nil)
	ash := signUp(t, svc, "ash01", "ash@example.com")
	signUp(t, svc, "misty", "misty@example.com")

	_, err := svc.UpdateSettings(context.Background(), ash.ID, settingsFor("misty", "ash@example.com"))

	var dup *DuplicateError
	require.True(t, errors.As(err, &dup))
	require.Equal(t, "username", dup.Field)
	require.Equal(t, "This username is already taken", dup.Message)
}

func TestGetSettings(t *testing.T) {
	svc, _ := newAccounts(t)
	ash := signUp(t, svc, "ash01", "ash@example.com")

	got, err := svc.GetSettings(context.Background(), ash.ID)
	require.NoError(t, err)
	require.Equal(t, "ash01", got.Username)

	_, err = svc.GetSettings(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}
