package cli

import (
	"context"
	"fmt"
	"os"
)

// Done toggles the completion of a habit. ref is an id, an id prefix or a name.
func (c *Cli) Done(ctx context.Context, ref string) error {
	if err := c.requireSignedIn(); err != nil {
		return err
	}

	state, err := c.load(ctx)
	if err != nil {
		return err
	}

	h, err := resolve(state, ref)
	if err != nil {
		return err
	}

	if err := c.habits.ToggleCompletion(ctx, h.ID); err != nil {
		return err
	}

	switch {
	case h.IsCompleted:
		c.io.Printf("↺ %s marked as not done\n", h.Name)
	case h.IsRecurring:
		c.io.Printf("✓ %s done! +%d XP\n", h.Name, h.XPPoints)
	default:
		c.io.Printf("✓ %s done! +%d XP (one-off habit removed)\n", h.Name, h.XPPoints)
	}
	return nil
}

// Recurring switches the recurring flag of a habit
func (c *Cli) Recurring(ctx context.Context, ref string, value bool) error {
	if err := c.requireSignedIn(); err != nil {
		return err
	}

	state, err := c.load(ctx)
	if err != nil {
		return err
	}

	h, err := resolve(state, ref)
	if err != nil {
		return err
	}

	if err := c.habits.SetRecurring(ctx, h.ID, value); err != nil {
		return err
	}

	if value {
		c.io.Printf("↻ %s is now recurring\n", h.Name)
	} else {
		c.io.Printf("%s is now a one-off habit\n", h.Name)
	}
	return nil
}

// Proof uploads a photo proof read from path
func (c *Cli) Proof(ctx context.Context, ref, path string) error {
	if err := c.requireSignedIn(); err != nil {
		return err
	}

	photo, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read photo: %w", err)
	}

	state, err := c.load(ctx)
	if err != nil {
		return err
	}

	h, err := resolve(state, ref)
	if err != nil {
		return err
	}

	if err := c.habits.UploadProof(ctx, h.ID, photo); err != nil {
		return err
	}

	if updated, ok := c.habits.Snapshot().Find(h.ID.String()); ok && !updated.PendingDeletion {
		c.io.Printf("✓ Proof accepted for %s\n", updated.Name)
		c.io.Println(formatHabit(updated))
		return nil
	}
	c.io.Printf("✓ Proof accepted, %s is complete and removed\n", h.Name)
	return nil
}
