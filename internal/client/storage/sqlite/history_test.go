package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/habittracker/internal/models"
)

// setupTestStorage creates an in-memory storage with migrations applied
func setupTestStorage(t *testing.T) (*Storage, func()) {
	t.Helper()

	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		require.NoError(t, s.Close())
	}

	return s, cleanup
}

func TestHistory_RecordCompletion(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	tests := []struct {
		name       string
		completion models.Completion
		wantErr    bool
	}{
		{
			name: "valid completion",
			completion: models.Completion{
				HabitID:     "6f1c6a5e-3c1a-4c55-9d59-0c1b9e0c2d11",
				HabitName:   "Read",
				XPPoints:    10,
				CompletedAt: time.Now(),
			},
		},
		{
			name:       "empty habit id",
			completion: models.Completion{HabitName: "Read", XPPoints: 10, CompletedAt: time.Now()},
			wantErr:    true,
		},
		{
			name:       "negative xp",
			completion: models.Completion{HabitID: "x", XPPoints: -1, CompletedAt: time.Now()},
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.RecordCompletion(ctx, tt.completion)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestHistory_CompletionsBetween(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	base := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"a", "b", "c"} {
		require.NoError(t, s.RecordCompletion(ctx, models.Completion{
			HabitID:     name,
			HabitName:   name,
			XPPoints:    10 * (i + 1),
			CompletedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	got, err := s.CompletionsBetween(ctx, base, base.Add(2*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].HabitID)
	assert.Equal(t, "b", got[1].HabitID)
	assert.Equal(t, 20, got[1].XPPoints)
	assert.True(t, base.Add(time.Hour).Equal(got[1].CompletedAt))

	none, err := s.CompletionsBetween(ctx, base.Add(-48*time.Hour), base.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestHistory_CompletionDays(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	loc := time.FixedZone("UTC+3", 3*60*60)
	times := []time.Time{
		time.Date(2026, 5, 10, 8, 0, 0, 0, loc),
		time.Date(2026, 5, 10, 20, 0, 0, 0, loc),
		time.Date(2026, 5, 9, 23, 30, 0, 0, loc),
		time.Date(2026, 5, 7, 1, 0, 0, 0, loc),
	}
	for _, ts := range times {
		require.NoError(t, s.RecordCompletion(ctx, models.Completion{HabitID: "h", XPPoints: 5, CompletedAt: ts}))
	}

	days, err := s.CompletionDays(ctx, loc)
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.True(t, days[0].Equal(time.Date(2026, 5, 10, 0, 0, 0, 0, loc)))
	assert.True(t, days[1].Equal(time.Date(2026, 5, 9, 0, 0, 0, 0, loc)))
	assert.True(t, days[2].Equal(time.Date(2026, 5, 7, 0, 0, 0, 0, loc)))
}

func TestHistory_TotalXP(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	total, err := s.TotalXP(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	for _, xp := range []int{10, 15, 0} {
		require.NoError(t, s.RecordCompletion(ctx, models.Completion{HabitID: "h", XPPoints: xp, CompletedAt: time.Now()}))
	}

	total, err = s.TotalXP(ctx)
	require.NoError(t, err)
	assert.Equal(t, 25, total)
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("X", -5*60*60)
	got := StartOfDay(time.Date(2026, 1, 2, 23, 59, 59, 999, loc))
	assert.Equal(t, time.Date(2026, 1, 2, 0, 0, 0, 0, loc), got)
}
