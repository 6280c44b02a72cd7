package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/habittracker/internal/client/storage"
	"github.com/iudanet/habittracker/internal/crypto"
)

// TokenStore is the credential store. It sits between the session and a
// storage backend and optionally encrypts the token before it is written.
// Safe for concurrent use as long as the backend is.
type TokenStore struct {
	storage storage.TokenStorage
	logger  *slog.Logger
	key     []byte
}

// StoreOption настраивает TokenStore
type StoreOption func(*TokenStore)

// WithEncryptionKey enables AES-GCM encryption of the stored token.
// key must be crypto.KeySize bytes.
func WithEncryptionKey(key []byte) StoreOption {
	return func(s *TokenStore) {
		s.key = key
	}
}

// WithStoreLogger sets the logger used to report unreadable tokens
func WithStoreLogger(l *slog.Logger) StoreOption {
	return func(s *TokenStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewTokenStore creates a credential store over the given backend
func NewTokenStore(backend storage.TokenStorage, opts ...StoreOption) *TokenStore {
	s := &TokenStore{
		storage: backend,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save replaces the stored token
func (s *TokenStore) Save(ctx context.Context, token string) error {
	if token == "" {
		return &StorageError{Op: "save", Err: errors.New("token cannot be empty")}
	}

	value := token
	if s.key != nil {
		// Шифруем токен перед записью в хранилище
		encrypted, err := crypto.EncryptString(token, s.key)
		if err != nil {
			return &StorageError{Op: "save", Err: fmt.Errorf("failed to encrypt token: %w", err)}
		}
		value = encrypted
	}

	if err := s.storage.SaveToken(ctx, value); err != nil {
		return &StorageError{Op: "save", Err: err}
	}
	return nil
}

// Load returns the stored token. A missing or unreadable token is reported
// as absent.
func (s *TokenStore) Load(ctx context.Context) (string, bool) {
	value, err := s.storage.LoadToken(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrTokenNotFound) {
			s.logger.WarnContext(ctx, "stored token is unreadable", "error", err)
		}
		return "", false
	}

	if s.key == nil {
		return value, value != ""
	}

	token, err := crypto.DecryptString(value, s.key)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to decrypt stored token", "error", err)
		return "", false
	}
	return token, token != ""
}

// Clear removes the stored token. Clearing an empty store is not an error.
func (s *TokenStore) Clear(ctx context.Context) error {
	if err := s.storage.DeleteToken(ctx); err != nil && !errors.Is(err, storage.ErrTokenNotFound) {
		return &StorageError{Op: "clear", Err: err}
	}
	return nil
}
