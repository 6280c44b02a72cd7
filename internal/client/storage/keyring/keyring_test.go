package keyring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gokeyring "github.com/zalando/go-keyring"

	"github.com/iudanet/habittracker/internal/client/storage"
)

func TestStorage_SaveLoadDelete(t *testing.T) {
	gokeyring.MockInit()
	ctx := context.Background()
	s := New()

	_, err := s.LoadToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	require.NoError(t, s.SaveToken(ctx, "token-1"))
	got, err := s.LoadToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", got)

	// Повторное сохранение заменяет старый токен
	require.NoError(t, s.SaveToken(ctx, "token-2"))
	got, err = s.LoadToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-2", got)

	require.NoError(t, s.DeleteToken(ctx))
	_, err = s.LoadToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)

	assert.ErrorIs(t, s.DeleteToken(ctx), storage.ErrTokenNotFound)
}

func TestStorage_SaveEmptyToken(t *testing.T) {
	gokeyring.MockInit()

	err := New().SaveToken(context.Background(), "")
	assert.Error(t, err)
}

func TestStorage_SeparateAccounts(t *testing.T) {
	gokeyring.MockInit()
	ctx := context.Background()

	a := NewWithAccount(ServiceName, "a")
	b := NewWithAccount(ServiceName, "b")

	require.NoError(t, a.SaveToken(ctx, "token-a"))
	_, err := b.LoadToken(ctx)
	assert.ErrorIs(t, err, storage.ErrTokenNotFound)
}

func TestStorage_KeyringFailure(t *testing.T) {
	gokeyring.MockInitWithError(errors.New("dbus is down"))
	defer gokeyring.MockInit()
	ctx := context.Background()
	s := New()

	_, err := s.LoadToken(ctx)
	assert.ErrorIs(t, err, ErrKeyringUnavailable)

	assert.Error(t, s.SaveToken(ctx, "token"))
	assert.False(t, IsAvailable())
}

func TestIsAvailable(t *testing.T) {
	gokeyring.MockInit()
	assert.True(t, IsAvailable())
}
