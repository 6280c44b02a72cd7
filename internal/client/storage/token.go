package storage

import "context"

//go:generate moq -out token_mock.go . TokenStorage

// TokenStorage defines a single-slot store for the bearer token.
// This is the lowest layer - backends store the value as-is and
// don't decide anything about the session.
type TokenStorage interface {
	// SaveToken replaces any stored token with the given one.
	// Backends must not leave the old token readable next to the new one.
	SaveToken(ctx context.Context, token string) error

	// LoadToken returns the stored token.
	// Returns ErrTokenNotFound if nothing is stored
	LoadToken(ctx context.Context) (string, error)

	// DeleteToken removes the stored token.
	// Returns ErrTokenNotFound if nothing is stored
	DeleteToken(ctx context.Context) error
}
