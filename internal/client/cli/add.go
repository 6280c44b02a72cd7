package cli

import (
	"context"
)

// Add creates a habit with the given name and optional deadline in hours
func (c *Cli) Add(ctx context.Context, name, deadlineHours string) error {
	if err := c.requireSignedIn(); err != nil {
		return err
	}

	c.habits.BeginAdding()
	c.habits.SetDraft(name, deadlineHours)

	if err := c.habits.AddDraft(ctx); err != nil {
		return err
	}

	state := c.habits.Snapshot()
	if len(state.Habits) > 0 {
		c.io.Println("✓ Habit created:")
		c.io.Println(formatHabit(state.Habits[0]))
	}
	return nil
}
