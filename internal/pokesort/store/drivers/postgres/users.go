package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/pokesort/internal/pokesort/domain"
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
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) FindConflict(ctx context.Context, email, username, excludeID string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users
		 WHERE (email = $1 OR username = $2) AND id <> $3
		 ORDER BY (email = $1) DESC
		 LIMIT 1`,
		email, username, excludeID))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
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
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`UPDATE users SET
			username = $1, email = $2,
			notify_email = $3, notify_push = $4, notify_new_features = $5, notify_deck_updates = $6,
			theme = $7, card_display_style = $8, enable_animations = $9, compact_mode = $10,
			updated_at = $11
		 WHERE id = $12
		 RETURNING `+userColumns,
		s.Username, s.Email,
		s.Notifications.Email, s.Notifications.Push, s.Notifications.NewFeatures, s.Notifications.DeckUpdates,
		s.Preferences.Theme, s.Preferences.CardDisplayStyle, s.Preferences.EnableAnimations, s.Preferences.CompactMode,
		time.Now().UTC(), userID,
	))
	if err != nil {
		return domain.User{}, fmt.Errorf("update settings: %w", mapConflict(mapNotFound(err)))
	}
	return u, nil
}
