package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aussiebroadwan/pokesort/internal/pokesort/store"
	"github.com/stretchr/testify/require"
)

func TestConflictError(t *testing.T) {
	err := fmt.Errorf("create user: %w", &store.ConflictError{Field: "email"})

	require.ErrorIs(t, err, store.ErrAlreadyExists)

	var conflict *store.ConflictError
	require.True(t, errors.As(err, &conflict))
	require.Equal(t, "email", conflict.Field)
	require.Equal(t, "store: already exists: email", conflict.Error())
}
