package storage

import (
	"context"
	"time"

	"github.com/iudanet/habittracker/internal/models"
)

//go:generate moq -out habits_mock.go . HabitCache HistoryStorage

// HabitCache keeps the last habit list received from the server,
// so the client has something to show while offline.
type HabitCache interface {
	// SaveHabits replaces the cached snapshot and records when it was taken
	SaveHabits(ctx context.Context, habits []models.Habit, syncedAt time.Time) error

	// LoadHabits returns the cached snapshot and the time it was taken.
	// Returns ErrCacheEmpty if nothing was cached yet
	LoadHabits(ctx context.Context) ([]models.Habit, time.Time, error)
}

// HistoryStorage records confirmed completions for XP and streak statistics
type HistoryStorage interface {
	// RecordCompletion appends a completion event
	RecordCompletion(ctx context.Context, c models.Completion) error

	// CompletionsBetween returns completions in [from, to) ordered by time
	CompletionsBetween(ctx context.Context, from, to time.Time) ([]models.Completion, error)

	// CompletionDays returns distinct local days with at least one completion,
	// newest first
	CompletionDays(ctx context.Context, loc *time.Location) ([]time.Time, error)

	// TotalXP returns the sum of XP over all recorded completions
	TotalXP(ctx context.Context) (int, error)
}
