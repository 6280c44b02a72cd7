// Package keyring stores the bearer token in the OS keyring
// (Keychain, Secret Service, Windows Credential Manager).
package keyring

import (
	"context"
	"errors"
	"fmt"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/iudanet/habittracker/internal/client/storage"
)

const (
	// ServiceName is the keyring service the token is filed under
	ServiceName = "habittracker"
	// AccountName is the fixed account slot; the client is single-user
	AccountName = "authToken"

	availabilityProbe = "availability-probe"
)

// ErrKeyringUnavailable is returned when the OS keyring cannot be reached
var ErrKeyringUnavailable = errors.New("OS keyring is not available")

// Storage implements storage.TokenStorage on top of the OS keyring
type Storage struct {
	service string
	account string
}

// Compile-time check that Storage implements storage.TokenStorage
var _ storage.TokenStorage = (*Storage)(nil)

// New creates keyring storage using the default service and account
func New() *Storage {
	return NewWithAccount(ServiceName, AccountName)
}

// NewWithAccount creates keyring storage for a custom service/account pair
func NewWithAccount(service, account string) *Storage {
	return &Storage{service: service, account: account}
}

// SaveToken deletes any previous token and then stores the new one,
// so an old token never survives next to a new one.
func (s *Storage) SaveToken(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}

	if err := gokeyring.Delete(s.service, s.account); err != nil && !errors.Is(err, gokeyring.ErrNotFound) {
		return fmt.Errorf("%w: failed to delete previous token: %v", ErrKeyringUnavailable, err)
	}

	if err := gokeyring.Set(s.service, s.account, token); err != nil {
		return fmt.Errorf("failed to store token in keyring: %w", err)
	}

	return nil
}

// LoadToken reads the token from the keyring
func (s *Storage) LoadToken(ctx context.Context) (string, error) {
	token, err := gokeyring.Get(s.service, s.account)
	if err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return "", storage.ErrTokenNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return token, nil
}

// DeleteToken removes the token from the keyring
func (s *Storage) DeleteToken(ctx context.Context) error {
	if err := gokeyring.Delete(s.service, s.account); err != nil {
		if errors.Is(err, gokeyring.ErrNotFound) {
			return storage.ErrTokenNotFound
		}
		return fmt.Errorf("failed to delete token from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring can be used on this system.
// ErrNotFound on the probe key means the keyring works but is empty.
func IsAvailable() bool {
	_, err := gokeyring.Get(ServiceName, availabilityProbe)
	return err == nil || errors.Is(err, gokeyring.ErrNotFound)
}
