package sync

import (
	gosync "sync"

	"github.com/google/uuid"
)

// keyedMutex сериализует операции над одной привычкой,
// не блокируя операции над другими
type keyedMutex struct {
	locks map[uuid.UUID]*keyedEntry
	mu    gosync.Mutex
}

type keyedEntry struct {
	refs int
	mu   gosync.Mutex
}

// Lock blocks until the lock for id is held and returns the unlock func
func (k *keyedMutex) Lock(id uuid.UUID) func() {
	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[uuid.UUID]*keyedEntry)
	}
	e, ok := k.locks[id]
	if !ok {
		e = &keyedEntry{}
		k.locks[id] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		k.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(k.locks, id)
		}
		k.mu.Unlock()
	}
}
