package service

import (
	"context"
	"sync"
	"testing"

	"github.com/aussiebroadwan/pokesort/internal/pokesort/domain"
	"github.com/aussiebroadwan/pokesort/internal/pokesort/store"
	"github.com/aussiebroadwan/pokesort/internal/pokesort/store/drivers/sqlite"
	"github.com/aussiebroadwan/pokesort/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// cheapHasher keeps argon2 fast enough for unit tests.
func cheapHasher() *cryptox.Argon2Hasher {
	return &cryptox.Argon2Hasher{
		Pepper: "test-pepper",
		Params: cryptox.Argon2Params{Memory: 64, Iterations: 1, Parallelism: 1, KeyLength: 16, SaltLength: 8},
	}
}

type recordedEvents struct {
	mu     sync.Mutex
	events []string
}

func (r *recordedEvents) AuthEvent(event, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event+":"+outcome)
}

func (r *recordedEvents) All() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.events...)
}

// racingStore hides existing accounts from the conflict pre-check so the
// unique constraint is what catches the duplicate.
type racingStore struct {
	store.Store
}

func (s racingStore) Users() store.Users { return racingUsers{s.Store.Users()} }

func (s racingStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error { return fn(racingTx{tx}) })
}

// innerTx names the embedded store.Tx so its Tx method is still promoted.
type innerTx = store.Tx

type racingTx struct {
	innerTx
}

func (t racingTx) Users() store.Users { return racingUsers{t.innerTx.Users()} }

type racingUsers struct {
	store.Users
}

func (racingUsers) FindConflict(context.Context, string, string, string) (domain.User, error) {
	return domain.User{}, store.ErrNotFound
}
