package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/habittracker/internal/models"
)

// List prints the current habits
func (c *Cli) List(ctx context.Context) error {
	if err := c.requireSignedIn(); err != nil {
		return err
	}

	state, err := c.load(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Habits ===")
	c.io.Println()

	if len(state.Habits) == 0 {
		c.io.Println("No habits yet.")
		c.io.Printf("Use '%s add <name>' to create one.\n", AppName)
		return nil
	}

	for _, h := range state.Habits {
		c.io.Println(formatHabit(h))
	}

	c.io.Println()
	c.io.Printf("Total: %d habit(s)\n", len(state.Habits))
	return nil
}

func formatHabit(h models.Habit) string {
	mark := "[ ]"
	if h.IsCompleted {
		mark = "[x]"
	}

	line := fmt.Sprintf("%s %s  %s %s  +%d XP", mark, shortID(h.ID), h.Emoji, h.Name, h.XPPoints)
	if h.IsRecurring {
		line += "  ↻"
	}
	if h.DeadlineDuration != nil {
		line += "  ⏱ " + (time.Duration(*h.DeadlineDuration) * time.Second).String()
	}
	if h.Category != "" {
		line += "  #" + h.Category
	}
	return line
}
