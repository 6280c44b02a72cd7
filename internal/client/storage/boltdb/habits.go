package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/habittracker/internal/client/storage"
	"github.com/iudanet/habittracker/internal/models"
)

var keyHabitList = []byte("list")

// SaveHabits replaces the cached habit list and stamps the sync time
func (s *Storage) SaveHabits(ctx context.Context, habits []models.Habit, syncedAt time.Time) error {
	data, err := json.Marshal(habits)
	if err != nil {
		return fmt.Errorf("failed to marshal habits: %w", err)
	}

	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Список и время синхронизации пишутся в одной транзакции
	return s.db.Update(func(tx *bbolt.Tx) error {
		hb := tx.Bucket(bucketHabits)
		mb := tx.Bucket(bucketMetadata)
		if hb == nil || mb == nil {
			return fmt.Errorf("habits or metadata bucket not found")
		}
		if err := hb.Put(keyHabitList, data); err != nil {
			return fmt.Errorf("failed to save habits: %w", err)
		}
		return putTime(mb, keyLastSync, syncedAt)
	})
}

// LoadHabits returns the cached habit list.
// Returns storage.ErrCacheEmpty if nothing was cached yet
func (s *Storage) LoadHabits(ctx context.Context) ([]models.Habit, time.Time, error) {
	var (
		habits   []models.Habit
		syncedAt time.Time
	)

	err := s.view(bucketHabits, func(b *bbolt.Bucket) error {
		data := b.Get(keyHabitList)
		if data == nil {
			return storage.ErrCacheEmpty
		}
		if err := json.Unmarshal(data, &habits); err != nil {
			return fmt.Errorf("failed to unmarshal habits: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, time.Time{}, err
	}

	syncedAt, err = s.LastSync(ctx)
	if err != nil {
		return nil, time.Time{}, err
	}

	return habits, syncedAt, nil
}
