package cli

import (
	"context"
	"fmt"
)

// Register prompts for the account data and signs up
func (c *Cli) Register(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	name, err := c.io.ReadInput("Name (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if password != confirm {
		return ErrPasswordMismatch
	}

	c.io.Println()
	c.io.Println("Registering user...")

	user, err := c.auth.SignUp(ctx, email, password, name)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.printUser(*user)
	c.io.Println()
	c.io.Println("You are signed in.")

	return nil
}
