package postgres

import (
	"errors"

	"github.com/aussiebroadwan/pokesort/internal/pokesort/store"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

var constraintFields = map[string]string{
	"users_email_key":    "email",
	"users_username_key": "username",
	"pokemon_number_key": "number",
}

func mapConflict(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}
	return &store.ConflictError{Field: constraintFields[pgErr.ConstraintName]}
}
