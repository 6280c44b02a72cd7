package sync

import (
	"time"

	"github.com/iudanet/habittracker/internal/models"
)

// State is an immutable snapshot of the synchronization state
type State struct {
	SyncedAt           time.Time      // SyncedAt время последнего списка с сервера (или из кэша)
	ErrorMessage       string         // ErrorMessage текст последней ошибки, пустой если ошибок нет
	DraftName          string         // DraftName название создаваемой привычки
	DraftDeadlineHours string         // DraftDeadlineHours срок в часах, как его ввёл пользователь
	Habits             []models.Habit // Habits текущий список, новые привычки в начале
	IsLoading          bool           // IsLoading хотя бы одна операция ждёт сервер
	IsAdding           bool           // IsAdding открыта форма добавления
	FromCache          bool           // FromCache список загружен из офлайн-кэша
}

// Find returns the habit with the given id from the snapshot
func (s State) Find(id string) (models.Habit, bool) {
	for _, h := range s.Habits {
		if h.ID.String() == id {
			return h, true
		}
	}
	return models.Habit{}, false
}

// snapshotLocked копирует состояние; вызывается под s.mu
func (s *Service) snapshotLocked() State {
	habits := make([]models.Habit, len(s.habits))
	for i, h := range s.habits {
		habits[i] = h.Clone()
	}

	return State{
		Habits:             habits,
		IsLoading:          s.inFlight > 0,
		ErrorMessage:       s.errorMessage,
		IsAdding:           s.isAdding,
		DraftName:          s.draftName,
		DraftDeadlineHours: s.draftHours,
		SyncedAt:           s.syncedAt,
		FromCache:          s.fromCache,
	}
}

// Snapshot returns a copy of the current state
func (s *Service) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe returns a channel that receives a snapshot after every state
// change. Slow readers only see the latest snapshot. The returned func
// unsubscribes and closes the channel.
func (s *Service) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan State, 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(sub)
		}
	}
}

// mutate applies fn under the state lock and publishes the result
func (s *Service) mutate(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
	s.publishLocked()
}

// publishLocked отправляет снимок подписчикам без блокировки:
// устаревший непрочитанный снимок заменяется новым
func (s *Service) publishLocked() {
	if len(s.subscribers) == 0 {
		return
	}
	state := s.snapshotLocked()
	for _, ch := range s.subscribers {
		select {
		case ch <- state:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- state
		}
	}
}
