package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/habittracker/internal/client/storage"
	"github.com/iudanet/habittracker/internal/models"
)

// Compile-time check that Storage implements storage.HistoryStorage
var _ storage.HistoryStorage = (*Storage)(nil)

// RecordCompletion appends a completion event
func (s *Storage) RecordCompletion(ctx context.Context, c models.Completion) error {
	if c.HabitID == "" {
		return errors.New("habit id cannot be empty")
	}
	if c.XPPoints < 0 {
		return fmt.Errorf("xp points cannot be negative: %d", c.XPPoints)
	}

	query := `
		INSERT INTO completions (habit_id, habit_name, xp_points, completed_at)
		VALUES (?, ?, ?, ?)
	`

	if _, err := s.db.ExecContext(ctx, query,
		c.HabitID,
		c.HabitName,
		c.XPPoints,
		c.CompletedAt.UnixNano(),
	); err != nil {
		return fmt.Errorf("failed to record completion: %w", err)
	}

	return nil
}

// CompletionsBetween returns completions in [from, to) ordered by time
func (s *Storage) CompletionsBetween(ctx context.Context, from, to time.Time) ([]models.Completion, error) {
	query := `
		SELECT habit_id, habit_name, xp_points, completed_at
		FROM completions
		WHERE completed_at >= ? AND completed_at < ?
		ORDER BY completed_at ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, from.UnixNano(), to.UnixNano())
	if err != nil {
		return nil, fmt.Errorf("failed to query completions: %w", err)
	}
	defer rows.Close()

	var result []models.Completion
	for rows.Next() {
		var (
			c  models.Completion
			ts int64
		)
		if err := rows.Scan(&c.HabitID, &c.HabitName, &c.XPPoints, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan completion: %w", err)
		}
		c.CompletedAt = time.Unix(0, ts)
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate completions: %w", err)
	}

	return result, nil
}

// CompletionDays returns distinct days (midnight in loc) that have at least
// one completion, newest first. Day boundaries depend on the caller's zone,
// so grouping happens here rather than in SQL.
func (s *Storage) CompletionDays(ctx context.Context, loc *time.Location) ([]time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	rows, err := s.db.QueryContext(ctx, `SELECT completed_at FROM completions ORDER BY completed_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query completion days: %w", err)
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var ts int64
		if err := rows.Scan(&ts); err != nil {
			return nil, fmt.Errorf("failed to scan completion time: %w", err)
		}

		day := StartOfDay(time.Unix(0, ts).In(loc))
		if len(days) == 0 || !days[len(days)-1].Equal(day) {
			days = append(days, day)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate completion days: %w", err)
	}

	return days, nil
}

// TotalXP returns the sum of XP over all recorded completions
func (s *Storage) TotalXP(ctx context.Context) (int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(xp_points), 0) FROM completions`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum xp: %w", err)
	}
	return total, nil
}

// StartOfDay returns midnight of t's day in t's location
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
