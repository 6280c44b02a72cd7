package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/iudanet/habittracker/internal/client/storage"
	"github.com/iudanet/habittracker/internal/models"
)

// DefaultDays длина графика XP по умолчанию
const DefaultDays = 7

// Summary XP-сводка для заголовка и графика
type Summary struct {
	Days          []models.DayXP
	TotalXP       int
	Streak        int
	Level         int
	LevelProgress float64
}

// Service builds summaries from the completion history
type Service struct {
	history storage.HistoryStorage
	clock   clockwork.Clock
	loc     *time.Location
}

// NewService creates a stats service. loc defines day boundaries;
// nil means the local zone.
func NewService(history storage.HistoryStorage, clock clockwork.Clock, loc *time.Location) *Service {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if loc == nil {
		loc = time.Local
	}
	return &Service{history: history, clock: clock, loc: loc}
}

// Summary returns XP for the last days days (today included), the current
// streak, total XP and level
func (s *Service) Summary(ctx context.Context, days int) (*Summary, error) {
	if days <= 0 {
		days = DefaultDays
	}

	today := startOfDay(s.clock.Now().In(s.loc))
	from := today.AddDate(0, 0, -(days - 1))
	to := today.AddDate(0, 0, 1)

	completions, err := s.history.CompletionsBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load completions: %w", err)
	}

	completionDays, err := s.history.CompletionDays(ctx, s.loc)
	if err != nil {
		return nil, fmt.Errorf("failed to load completion days: %w", err)
	}

	total, err := s.history.TotalXP(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load total xp: %w", err)
	}

	level, progress := Level(total)

	return &Summary{
		Days:          DailyXP(completions, from, days),
		Streak:        Streak(completionDays, today),
		TotalXP:       total,
		Level:         level,
		LevelProgress: progress,
	}, nil
}
