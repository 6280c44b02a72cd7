package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/habittracker/internal/crypto"
)

var (
	keyLastSync = []byte("last_sync_timestamp")
	keySalt     = []byte("token_salt")
)

// LastSync returns the time of the last cached fetch.
// Returns zero time if no fetch has been cached yet
func (s *Storage) LastSync(ctx context.Context) (time.Time, error) {
	var ts time.Time

	err := s.view(bucketMetadata, func(b *bbolt.Bucket) error {
		raw := b.Get(keyLastSync)
		if raw == nil {
			return nil
		}
		if len(raw) != 8 {
			return fmt.Errorf("corrupted last sync timestamp")
		}
		// Конвертируем bytes в int64
		ts = time.Unix(0, int64(binary.BigEndian.Uint64(raw)))
		return nil
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get last sync timestamp: %w", err)
	}

	return ts, nil
}

// Salt returns the key-derivation salt for the file token store,
// generating and persisting one on first use.
func (s *Storage) Salt(ctx context.Context) ([]byte, error) {
	var salt []byte

	err := s.update(bucketMetadata, func(b *bbolt.Bucket) error {
		if existing := b.Get(keySalt); existing != nil {
			salt = append([]byte(nil), existing...)
			return nil
		}

		generated, err := crypto.GenerateSalt()
		if err != nil {
			return err
		}
		if err := b.Put(keySalt, generated); err != nil {
			return fmt.Errorf("failed to save salt: %w", err)
		}
		salt = generated
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get salt: %w", err)
	}

	return salt, nil
}

func putTime(b *bbolt.Bucket, key []byte, t time.Time) error {
	// Конвертируем время в bytes
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, uint64(t.UnixNano()))
	if err := b.Put(key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
