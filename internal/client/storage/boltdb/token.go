package boltdb

import (
	"context"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/habittracker/internal/client/storage"
)

var keyToken = []byte("authToken")

// SaveToken replaces the stored token. Delete and put happen in one
// transaction, so readers never see both or neither.
func (s *Storage) SaveToken(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}

	return s.update(bucketAuth, func(b *bbolt.Bucket) error {
		if err := b.Delete(keyToken); err != nil {
			return fmt.Errorf("failed to delete previous token: %w", err)
		}
		if err := b.Put(keyToken, []byte(token)); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}
		return nil
	})
}

// LoadToken retrieves the stored token
func (s *Storage) LoadToken(ctx context.Context) (string, error) {
	var token string

	err := s.view(bucketAuth, func(b *bbolt.Bucket) error {
		data := b.Get(keyToken)
		if data == nil {
			return storage.ErrTokenNotFound
		}
		// bbolt отдает срез, валидный только внутри транзакции
		token = string(data)
		return nil
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

// DeleteToken removes the stored token
func (s *Storage) DeleteToken(ctx context.Context) error {
	return s.update(bucketAuth, func(b *bbolt.Bucket) error {
		if b.Get(keyToken) == nil {
			return storage.ErrTokenNotFound
		}
		if err := b.Delete(keyToken); err != nil {
			return fmt.Errorf("failed to delete token: %w", err)
		}
		return nil
	})
}
