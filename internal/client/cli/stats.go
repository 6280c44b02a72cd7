package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/habittracker/internal/client/stats"
)

const barWidth = 20

// Stats prints the XP summary, progress per category and the active deadline
func (c *Cli) Stats(ctx context.Context, days int) error {
	if err := c.requireSignedIn(); err != nil {
		return err
	}

	summary, err := c.stats.Summary(ctx, days)
	if err != nil {
		return fmt.Errorf("failed to build summary: %w", err)
	}

	c.io.Println("=== Stats ===")
	c.io.Println()
	c.io.Printf("🔥 Streak: %d day(s)\n", summary.Streak)
	c.io.Printf("Level %d  %s %d%%\n", summary.Level, bar(summary.LevelProgress), int(summary.LevelProgress*100))
	c.io.Printf("Total XP: %d\n", summary.TotalXP)
	c.io.Println()

	maxXP := 0
	for _, d := range summary.Days {
		maxXP = max(maxXP, d.XP)
	}
	c.io.Println("XP per day:")
	for _, d := range summary.Days {
		ratio := 0.0
		if maxXP > 0 {
			ratio = float64(d.XP) / float64(maxXP)
		}
		c.io.Printf("  %s %s %d\n", d.Day.Format("Mon 02"), bar(ratio), d.XP)
	}

	state, err := c.load(ctx)
	if err != nil {
		// сводка уже выведена, список привычек необязателен
		c.io.Printf("\n⚠️  Habits unavailable: %v\n", err)
		return nil
	}

	if categories := stats.Categories(state.Habits); len(categories) > 0 {
		c.io.Println()
		c.io.Println("Categories:")
		for _, cat := range categories {
			c.io.Printf("  %s %-12s %s %d%%\n", cat.Emoji, cat.Name, bar(cat.Progress), int(cat.Progress*100))
		}
	}

	c.io.Println()
	if d, ok := stats.ActiveDeadline(state.Habits); ok {
		c.io.Printf("⏱ %s: %s left\n", d.Habit.Name, stats.FormatCountdown(d.Remaining))
	} else {
		c.io.Printf("⏱ No deadlines: %s\n", stats.FormatCountdown(stats.DefaultCountdown))
	}
	return nil
}

func bar(ratio float64) string {
	filled := int(min(1, max(0, ratio)) * barWidth)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("·", barWidth-filled) + "]"
}
