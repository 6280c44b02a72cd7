package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/habittracker/internal/models"
)

// Login prompts for credentials and signs in
func (c *Cli) Login(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	user, err := c.auth.SignIn(ctx, email, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.printUser(*user)
	c.io.Println()
	c.io.Println("Your session has been saved securely.")

	return nil
}

func (c *Cli) printUser(u models.User) {
	if u.Name != "" {
		c.io.Printf("Name:  %s\n", u.Name)
	}
	c.io.Printf("Email: %s\n", u.Email)
	c.io.Printf("ID:    %s\n", u.ID)
}
