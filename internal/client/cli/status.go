package cli

import (
	"context"
	"time"
)

// Status prints the session state and the token expiry
func (c *Cli) Status(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	if err := c.requireSignedIn(); err != nil {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Printf("Run '%s login' to authenticate.\n", AppName)
		return nil
	}

	c.io.Println("Status: Authenticated")
	if user, ok := c.auth.User(); ok {
		c.printUser(user)
	}

	expiresAt, ok := c.auth.Expiry()
	if !ok {
		return nil
	}

	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
	if remaining := expiresAt.Sub(c.clock.Now()); remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		// сервер обновит токен при следующем запросе
		c.io.Println("⚠️  Token has expired, it will be refreshed on the next request.")
	}

	return nil
}
