package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/habittracker/internal/client/storage"
	"github.com/iudanet/habittracker/internal/models"
)

func TestHabits_SaveLoad(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, _, err := store.LoadHabits(ctx)
	assert.ErrorIs(t, err, storage.ErrCacheEmpty)

	deadline := int64(3600)
	habits := []models.Habit{
		{ID: uuid.New(), Name: "Read", Emoji: "📚", XPPoints: 10, Category: "General", DeadlineDuration: &deadline},
		{ID: uuid.New(), Name: "Run", XPPoints: 20, IsRecurring: true, Progress: 0.25},
	}
	syncedAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	require.NoError(t, store.SaveHabits(ctx, habits, syncedAt))

	got, gotAt, err := store.LoadHabits(ctx)
	require.NoError(t, err)
	assert.Equal(t, habits, got)
	assert.True(t, syncedAt.Equal(gotAt))

	last, err := store.LastSync(ctx)
	require.NoError(t, err)
	assert.True(t, syncedAt.Equal(last))
}

func TestHabits_SaveReplaces(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	first := []models.Habit{{ID: uuid.New(), Name: "Old"}}
	require.NoError(t, store.SaveHabits(ctx, first, time.Unix(100, 0)))
	require.NoError(t, store.SaveHabits(ctx, []models.Habit{}, time.Unix(200, 0)))

	got, at, err := store.LoadHabits(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, int64(200), at.Unix())
}

func TestHabits_PendingDeletionNotCached(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	h := models.Habit{ID: uuid.New(), Name: "Walk", IsCompleted: true, PendingDeletion: true}
	require.NoError(t, store.SaveHabits(ctx, []models.Habit{h}, time.Now()))

	got, _, err := store.LoadHabits(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.False(t, got[0].PendingDeletion)
}
