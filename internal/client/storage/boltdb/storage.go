package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/habittracker/internal/client/storage"
)

var (
	// BoltDB bucket names
	bucketAuth     = []byte("auth")
	bucketHabits   = []byte("habits")
	bucketMetadata = []byte("metadata")
)

// Storage represents BoltDB storage implementation for client.
// It backs the file token store, the offline habit cache and
// a little metadata (key-derivation salt, last sync time).
type Storage struct {
	db *bbolt.DB
}

// Compile-time checks
var (
	_ storage.TokenStorage = (*Storage)(nil)
	_ storage.HabitCache   = (*Storage)(nil)
)

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	// Инициализируем buckets
	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection. Safe to call twice.
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketAuth, bucketHabits, bucketMetadata} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// update runs fn in a read-write transaction against one bucket
func (s *Storage) update(name []byte, fn func(b *bbolt.Bucket) error) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", name)
		}
		return fn(bucket)
	})
}

// view runs fn in a read-only transaction against one bucket
func (s *Storage) view(name []byte, fn func(b *bbolt.Bucket) error) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	return s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(name)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", name)
		}
		return fn(bucket)
	})
}
