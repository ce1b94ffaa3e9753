package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/pokesort/internal/pokesort/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// ConflictError reports which unique column a write collided on. It wraps
// ErrAlreadyExists.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: %s", ErrAlreadyExists, e.Field)
}

func (e *ConflictError) Unwrap() error { return ErrAlreadyExists }

// Store is the root data access interface, implemented by the sqlite and
// postgres drivers. Repositories hang off it so a Tx-scoped Store hands out
// repositories bound to the same transaction.
type Store interface {
	Users() Users
	Pokemon() Pokemon

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing if it returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store. Nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// FindConflict returns a user other than excludeID holding email or
	// username, preferring an email match. An empty excludeID excludes no one.
	FindConflict(ctx context.Context, email, username, excludeID string) (domain.User, error)

	// CreateUser inserts u. Unique violations come back as *ConflictError.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateSettings replaces the settings fields and bumps updated_at.
	// Returns ErrNotFound when no row matches.
	UpdateSettings(ctx context.Context, userID string, s domain.SettingsUpdate) (domain.User, error)
}

type Pokemon interface {
	// ListPokemon returns one page sorted by number plus the unpaged total.
	ListPokemon(ctx context.Context, f domain.PokemonFilter, p domain.Page) ([]domain.Pokemon, int, error)

	// CreatePokemon inserts p. A duplicate number is a *ConflictError on "number".
	CreatePokemon(ctx context.Context, p domain.Pokemon) error

	GetPokemonByNumber(ctx context.Context, number string) (domain.Pokemon, error)
}
