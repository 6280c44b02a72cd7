// Package sync holds the client-side habit list and keeps it in step with
// the server: fetch, create, optimistic updates, deletion of finished
// one-off habits and proof uploads.
package sync

import (
	"context"
	"fmt"
	"log/slog"
	gosync "sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/iudanet/habittracker/internal/client/storage"
	"github.com/iudanet/habittracker/internal/models"
	"github.com/iudanet/habittracker/internal/validation"
	"github.com/iudanet/habittracker/pkg/api"
)

const (
	// DefaultGraceDelay время, в течение которого удалённая привычка
	// ещё видна с пометкой PendingDeletion
	DefaultGraceDelay = 500 * time.Millisecond

	// Значения по умолчанию для новой привычки
	DefaultXPPoints = 10
	DefaultEmoji    = "⭐️"
	DefaultCategory = "General"
)

//go:generate moq -out habit_api_mock.go . HabitAPI

// HabitAPI is the part of the API client the service needs
type HabitAPI interface {
	ListHabits(ctx context.Context) ([]api.Habit, error)
	CreateHabit(ctx context.Context, h api.HabitCreate) (*api.Habit, error)
	UpdateHabit(ctx context.Context, h api.Habit) (*api.Habit, error)
	DeleteHabit(ctx context.Context, id string) error
	UploadProof(ctx context.Context, id string, photo []byte) (*api.Habit, error)
}

// Option настраивает Service
type Option func(*Service)

// WithClock sets the clock used for the grace delay and timestamps
func WithClock(c clockwork.Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

// WithGraceDelay overrides how long a deleted habit stays visible.
// Non-positive values are ignored.
func WithGraceDelay(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.graceDelay = d
		}
	}
}

// WithCache enables the offline habit cache
func WithCache(c storage.HabitCache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithHistory enables recording of confirmed completions
func WithHistory(h storage.HistoryStorage) Option {
	return func(s *Service) {
		s.history = h
	}
}

// Service handles synchronization between the local habit list and the server
type Service struct {
	api     HabitAPI
	cache   storage.HabitCache
	history storage.HistoryStorage
	clock   clockwork.Clock
	logger  *slog.Logger

	subscribers map[int]chan State
	timers      map[uuid.UUID]clockwork.Timer
	locks       keyedMutex

	syncedAt     time.Time
	errorMessage string
	draftName    string
	draftHours   string
	habits       []models.Habit
	graceDelay   time.Duration
	inFlight     int
	nextSub      int
	mu           gosync.Mutex
	isAdding     bool
	fromCache    bool
	closed       bool
}

// NewService creates a new sync service
func NewService(habitAPI HabitAPI, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Service{
		api:         habitAPI,
		logger:      logger,
		clock:       clockwork.NewRealClock(),
		graceDelay:  DefaultGraceDelay,
		subscribers: make(map[int]chan State),
		timers:      make(map[uuid.UUID]clockwork.Timer),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// begin marks an operation as in flight and clears the previous error
func (s *Service) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.inFlight++
	s.errorMessage = ""
	s.publishLocked()
	return nil
}

// end finishes an operation started with begin. A failure lands in
// ErrorMessage. Loading is reset on every path.
func (s *Service) end(err error) {
	s.mutate(func() {
		s.inFlight--
		if err != nil {
			s.errorMessage = err.Error()
		}
	})
}

// Fetch replaces the list with the server's habits in server order.
// Finished one-off habits and records with invalid ids are skipped.
func (s *Service) Fetch(ctx context.Context) (err error) {
	if err := s.begin(); err != nil {
		return err
	}
	defer func() { s.end(err) }()

	records, err := s.api.ListHabits(ctx)
	if err != nil {
		return fmt.Errorf("fetch habits: %w", err)
	}

	habits := make([]models.Habit, 0, len(records))
	for _, rec := range records {
		h, err := models.HabitFromAPI(rec)
		if err != nil {
			s.logger.WarnContext(ctx, "skipping habit with invalid id", "id", rec.ID, "error", err)
			continue
		}
		if h.IsFinished() {
			continue
		}
		habits = append(habits, h)
	}

	now := s.clock.Now()
	s.mutate(func() {
		s.habits = habits
		s.syncedAt = now
		s.fromCache = false
	})

	s.logger.InfoContext(ctx, "habits fetched", "received", len(records), "kept", len(habits))

	if s.cache != nil {
		if err := s.cache.SaveHabits(ctx, habits, now); err != nil {
			s.logger.WarnContext(ctx, "failed to update habit cache", "error", err)
		}
	}

	return nil
}

// LoadCached fills the list from the offline cache. It does not touch the
// network and does not change the loading flag.
func (s *Service) LoadCached(ctx context.Context) error {
	if s.cache == nil {
		return storage.ErrCacheEmpty
	}

	cached, syncedAt, err := s.cache.LoadHabits(ctx)
	if err != nil {
		return fmt.Errorf("load cached habits: %w", err)
	}

	habits := make([]models.Habit, 0, len(cached))
	for _, h := range cached {
		if h.IsFinished() {
			continue
		}
		h.PendingDeletion = false
		habits = append(habits, h)
	}

	s.mutate(func() {
		s.habits = habits
		s.syncedAt = syncedAt
		s.fromCache = true
	})

	s.logger.DebugContext(ctx, "habits loaded from cache", "count", len(habits), "synced_at", syncedAt)
	return nil
}

// ToggleCompletion flips the completion flag optimistically and sends the
// flipped record to the server. A finished one-off habit is then deleted on
// the server and removed locally after the grace delay. On failure the
// local flip is rolled back.
func (s *Service) ToggleCompletion(ctx context.Context, id uuid.UUID) (err error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	if err := s.begin(); err != nil {
		return err
	}
	defer func() { s.end(err) }()

	original, ok := s.flip(id, func(h *models.Habit) { h.IsCompleted = !h.IsCompleted })
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	updated, err := s.confirm(ctx, id, original)
	if err != nil {
		return err
	}

	completed := updated.IsCompleted && !original.IsCompleted

	if !updated.IsFinished() {
		if completed {
			s.recordCompletion(ctx, updated)
		}
		return nil
	}

	// История пишется только после удаления, чтобы повтор не задвоил XP
	if err := s.api.DeleteHabit(ctx, id.String()); err != nil {
		return fmt.Errorf("delete finished habit: %w", err)
	}

	if completed {
		s.recordCompletion(ctx, updated)
	}
	s.scheduleRemoval(id)
	s.logger.InfoContext(ctx, "finished habit deleted", "id", id)
	return nil
}

// SetRecurring sets the recurring flag optimistically and sends the record
// to the server. On failure the local change is rolled back.
func (s *Service) SetRecurring(ctx context.Context, id uuid.UUID, value bool) (err error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	if err := s.begin(); err != nil {
		return err
	}
	defer func() { s.end(err) }()

	original, ok := s.flip(id, func(h *models.Habit) { h.IsRecurring = value })
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	_, err = s.confirm(ctx, id, original)
	return err
}

// UploadProof uploads a completion photo. If the server deleted the habit
// it is removed at once, otherwise it is replaced with the server record.
func (s *Service) UploadProof(ctx context.Context, id uuid.UUID, photo []byte) (err error) {
	unlock := s.locks.Lock(id)
	defer unlock()

	if err := s.begin(); err != nil {
		return err
	}
	defer func() { s.end(err) }()

	current, ok := s.find(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	rec, err := s.api.UploadProof(ctx, id.String(), photo)
	if err != nil {
		return fmt.Errorf("upload proof: %w", err)
	}

	if rec == nil {
		s.recordCompletion(ctx, current)
		s.remove(id)
		s.logger.InfoContext(ctx, "habit deleted by server after proof", "id", id)
		return nil
	}

	updated, err := parseServerRecord(*rec, id)
	if err != nil {
		return err
	}

	s.recordCompletion(ctx, updated)
	s.mutate(func() {
		if i := s.indexLocked(id); i >= 0 {
			s.habits[i] = updated
		}
	})
	return nil
}

// AddDraft creates a habit from the draft buffers. An empty name fails
// without a network call. On success the habit is inserted at the front
// and the draft is cleared.
func (s *Service) AddDraft(ctx context.Context) (err error) {
	if err := s.begin(); err != nil {
		return err
	}
	defer func() { s.end(err) }()

	s.mu.Lock()
	name, hours := s.draftName, s.draftHours
	s.mu.Unlock()

	if validation.ValidateHabitName(name) != nil {
		return ErrEmptyName
	}

	req := api.HabitCreate{
		Name:             name,
		Emoji:            DefaultEmoji,
		XPPoints:         DefaultXPPoints,
		Category:         DefaultCategory,
		DeadlineDuration: validation.ParseDeadlineHours(hours),
	}

	rec, err := s.api.CreateHabit(ctx, req)
	if err != nil {
		// Черновик остаётся, форма закрывается
		s.mutate(func() { s.isAdding = false })
		return fmt.Errorf("create habit: %w", err)
	}

	created, err := models.HabitFromAPI(*rec)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidServerID, err)
	}

	var duplicate bool
	s.mutate(func() {
		if s.indexLocked(created.ID) >= 0 {
			duplicate = true
			return
		}
		s.habits = append([]models.Habit{created}, s.habits...)
		s.draftName = ""
		s.draftHours = ""
		s.isAdding = false
	})
	if duplicate {
		return fmt.Errorf("%w: %s", ErrDuplicateID, created.ID)
	}

	s.logger.InfoContext(ctx, "habit created", "id", created.ID, "name", created.Name)
	return nil
}

// BeginAdding opens the add form
func (s *Service) BeginAdding() {
	s.mutate(func() { s.isAdding = true })
}

// CancelAdding closes the add form and drops the draft
func (s *Service) CancelAdding() {
	s.mutate(func() {
		s.isAdding = false
		s.draftName = ""
		s.draftHours = ""
	})
}

// SetDraft stores the draft name and deadline text as typed
func (s *Service) SetDraft(name, deadlineHours string) {
	s.mutate(func() {
		s.draftName = name
		s.draftHours = deadlineHours
	})
}

// ClearError resets the error message
func (s *Service) ClearError() {
	s.mutate(func() { s.errorMessage = "" })
}

// Close stops pending removals and closes subscriber channels.
// Operations started afterwards fail with ErrClosed.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	for id, ch := range s.subscribers {
		delete(s.subscribers, id)
		close(ch)
	}
	return nil
}

// flip applies change to the habit in place and returns the record as it
// was before the change
func (s *Service) flip(id uuid.UUID, change func(h *models.Habit)) (models.Habit, bool) {
	var (
		original models.Habit
		found    bool
	)
	s.mutate(func() {
		i := s.indexLocked(id)
		if i < 0 || s.habits[i].PendingDeletion {
			return
		}
		original = s.habits[i].Clone()
		change(&s.habits[i])
		found = true
	})
	return original, found
}

// confirm sends the locally changed record and installs the server copy.
// Any failure restores original.
func (s *Service) confirm(ctx context.Context, id uuid.UUID, original models.Habit) (models.Habit, error) {
	pending, ok := s.find(id)
	if !ok {
		return models.Habit{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	rec, err := s.api.UpdateHabit(ctx, pending.ToAPI())
	if err != nil {
		s.rollback(id, original)
		return models.Habit{}, fmt.Errorf("update habit: %w", err)
	}

	updated, err := parseServerRecord(*rec, id)
	if err != nil {
		s.rollback(id, original)
		return models.Habit{}, err
	}

	s.mutate(func() {
		if i := s.indexLocked(id); i >= 0 {
			s.habits[i] = updated
		}
	})
	return updated, nil
}

func (s *Service) rollback(id uuid.UUID, original models.Habit) {
	s.mutate(func() {
		if i := s.indexLocked(id); i >= 0 {
			s.habits[i] = original
		}
	})
	s.logger.Debug("optimistic change rolled back", "id", id)
}

// scheduleRemoval marks the habit and removes it after the grace delay.
// A later Fetch does not cancel the timer.
func (s *Service) scheduleRemoval(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 || s.closed {
		return
	}
	s.habits[i].PendingDeletion = true

	if t, ok := s.timers[id]; ok {
		t.Stop()
	}
	s.timers[id] = s.clock.AfterFunc(s.graceDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.timers, id)
		s.removeLocked(id)
		s.publishLocked()
	})

	s.publishLocked()
}

func (s *Service) remove(id uuid.UUID) {
	s.mutate(func() {
		if t, ok := s.timers[id]; ok {
			t.Stop()
			delete(s.timers, id)
		}
		s.removeLocked(id)
	})
}

func (s *Service) removeLocked(id uuid.UUID) {
	if i := s.indexLocked(id); i >= 0 {
		s.habits = append(s.habits[:i], s.habits[i+1:]...)
	}
}

// find returns a copy of the habit unless it is absent or already
// waiting for removal
func (s *Service) find(id uuid.UUID) (models.Habit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexLocked(id); i >= 0 && !s.habits[i].PendingDeletion {
		return s.habits[i].Clone(), true
	}
	return models.Habit{}, false
}

func (s *Service) indexLocked(id uuid.UUID) int {
	for i := range s.habits {
		if s.habits[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) recordCompletion(ctx context.Context, h models.Habit) {
	if s.history == nil {
		return
	}
	err := s.history.RecordCompletion(ctx, models.Completion{
		HabitID:     h.ID.String(),
		HabitName:   h.Name,
		XPPoints:    h.XPPoints,
		CompletedAt: s.clock.Now(),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to record completion", "id", h.ID, "error", err)
	}
}

// parseServerRecord converts a server record and checks it describes want
func parseServerRecord(rec api.Habit, want uuid.UUID) (models.Habit, error) {
	h, err := models.HabitFromAPI(rec)
	if err != nil {
		return models.Habit{}, fmt.Errorf("%w: %v", ErrInvalidServerID, err)
	}
	if h.ID != want {
		return models.Habit{}, fmt.Errorf("%w: expected %s, got %s", ErrInvalidServerID, want, h.ID)
	}
	return h, nil
}
