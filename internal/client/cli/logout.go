package cli

import (
	"context"
	"fmt"
)

// Logout forgets the stored token
func (c *Cli) Logout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	if err := c.auth.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session has been deleted.")

	return nil
}
