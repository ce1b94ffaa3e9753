package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/pokesort/internal/pokesort/domain"
	"github.com/aussiebroadwan/pokesort/internal/pokesort/store"
	"github.com/aussiebroadwan/pokesort/internal/pokesort/store/dbx"
)

const userColumns = `id, username, email, password_hash, name, image,
	notify_email, notify_push, notify_new_features, notify_deck_updates,
	theme, card_display_style, enable_animations, compact_mode,
	created_at, updated_at`

type usersRepo struct {
	db dbx.DBTX
}

func scanUser(row dbx.Scanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Name, &u.Image,
		&u.Notifications.Email, &u.Notifications.Push, &u.Notifications.NewFeatures, &u.Notifications.DeckUpdates,
		&u.Preferences.Theme, &u.Preferences.CardDisplayStyle, &u.Preferences.EnableAnimations, &u.Preferences.CompactMode,
		&u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ?`, username))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) FindConflict(ctx context.Context, email, username, excludeID string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE (email = ? OR username = ?) AND id <> ?
		 ORDER BY CASE WHEN email = ? THEN 0 ELSE 1 END
		 LIMIT 1`,
		email, username, excludeID, email))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.Name, u.Image,
		u.Notifications.Email, u.Notifications.Push, u.Notifications.NewFeatures, u.Notifications.DeckUpdates,
		u.Preferences.Theme, u.Preferences.CardDisplayStyle, u.Preferences.EnableAnimations, u.Preferences.CompactMode,
		u.CreatedAt.UTC(), u.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("create user: %w", mapConflict(err))
	}
	return nil
}

func (r *usersRepo) UpdateSettings(ctx context.Context, userID string, s domain.SettingsUpdate) (domain.User, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET
			username = ?, email = ?,
			notify_email = ?, notify_push = ?, notify_new_features = ?, notify_deck_updates = ?,
			theme = ?, card_display_style = ?, enable_animations = ?, compact_mode = ?,
			updated_at = ?
		 WHERE id = ?`,
		s.Username, s.Email,
		s.Notifications.Email, s.Notifications.Push, s.Notifications.NewFeatures, s.Notifications.DeckUpdates,
		s.Preferences.Theme, s.Preferences.CardDisplayStyle, s.Preferences.EnableAnimations, s.Preferences.CompactMode,
		time.Now().UTC(), userID,
	)
	if err != nil {
		return domain.User{}, fmt.Errorf("update settings: %w", mapConflict(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return domain.User{}, fmt.Errorf("update settings: %w", err)
	}
	if n == 0 {
		return domain.User{}, store.ErrNotFound
	}

	return r.GetUserByID(ctx, userID)
}
