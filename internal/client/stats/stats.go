// Package stats derives the dashboard numbers: XP per day, streak, level,
// progress per category and the active deadline countdown.
package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/iudanet/habittracker/internal/models"
)

const (
	// XPPerLevel количество XP на один уровень
	XPPerLevel = 100

	// DefaultCountdown показывается, когда нет привычки со сроком
	DefaultCountdown = time.Hour

	defaultEmoji = "⭐️"
)

// CategoryProgress средний прогресс привычек одной категории
type CategoryProgress struct {
	Name     string
	Emoji    string // эмодзи первой привычки категории
	Progress float64
}

// Categories groups habits by category and averages their progress.
// The result is sorted by category name; progress is clamped to [0,1].
func Categories(habits []models.Habit) []CategoryProgress {
	type acc struct {
		emoji string
		sum   float64
		count int
	}

	groups := make(map[string]*acc)
	for _, h := range habits {
		g, ok := groups[h.Category]
		if !ok {
			g = &acc{emoji: h.Emoji}
			groups[h.Category] = g
		}
		g.sum += h.Progress
		g.count++
	}

	result := make([]CategoryProgress, 0, len(groups))
	for name, g := range groups {
		emoji := g.emoji
		if emoji == "" {
			emoji = defaultEmoji
		}
		result = append(result, CategoryProgress{
			Name:     name,
			Emoji:    emoji,
			Progress: clamp(g.sum / float64(max(1, g.count))),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// Deadline привычка, для которой идёт обратный отсчёт
type Deadline struct {
	Habit     models.Habit
	Remaining time.Duration
}

// ActiveDeadline returns the first not completed habit that has a deadline
func ActiveDeadline(habits []models.Habit) (Deadline, bool) {
	for _, h := range habits {
		if h.IsCompleted || h.DeadlineDuration == nil {
			continue
		}
		remaining := time.Duration(max(0, *h.DeadlineDuration)) * time.Second
		return Deadline{Habit: h.Clone(), Remaining: remaining}, true
	}
	return Deadline{}, false
}

// FormatCountdown formats d as HH:MM:SS. Negative durations print as zero;
// hours are not wrapped at 24.
func FormatCountdown(d time.Duration) string {
	total := int64(max(0, d) / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// Streak counts consecutive days with a completion ending today. A streak
// that ended yesterday is still alive because today can still be completed.
// days must be local midnights, newest first, without duplicates.
func Streak(days []time.Time, today time.Time) int {
	if len(days) == 0 {
		return 0
	}

	expected := startOfDay(today)
	if days[0].Before(expected) {
		// Сегодня ещё ничего не выполнено: серия может продолжаться со вчера
		expected = expected.AddDate(0, 0, -1)
	}

	streak := 0
	for _, day := range days {
		if day.After(expected) {
			// дни из будущего (сдвиг часов) не считаются
			continue
		}
		if !day.Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}

// DailyXP sums XP per day for n days starting at from's day.
// Every day is present in the result, including days without XP.
func DailyXP(completions []models.Completion, from time.Time, n int) []models.DayXP {
	if n <= 0 {
		return nil
	}

	start := startOfDay(from)
	result := make([]models.DayXP, n)
	index := make(map[time.Time]int, n)
	for i := range n {
		day := start.AddDate(0, 0, i)
		result[i] = models.DayXP{Day: day}
		index[day] = i
	}

	for _, c := range completions {
		day := startOfDay(c.CompletedAt.In(start.Location()))
		if i, ok := index[day]; ok {
			result[i].XP += c.XPPoints
		}
	}
	return result
}

// Level returns the 1-based level for totalXP and the progress towards the next one
func Level(totalXP int) (int, float64) {
	if totalXP < 0 {
		totalXP = 0
	}
	return totalXP/XPPerLevel + 1, float64(totalXP%XPPerLevel) / XPPerLevel
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func clamp(v float64) float64 {
	return min(1, max(0, v))
}
