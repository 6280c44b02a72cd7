// Package cli implements the console commands over the session, the habit
// sync service and the stats service.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/iudanet/habittracker/internal/client/auth"
	"github.com/iudanet/habittracker/internal/client/iocli"
	"github.com/iudanet/habittracker/internal/client/stats"
	habitsync "github.com/iudanet/habittracker/internal/client/sync"
	"github.com/iudanet/habittracker/internal/models"
)

//go:generate moq -out services_mock.go . Authenticator Habits StatsProvider

// AppName имя бинаря в подсказках
const AppName = "habittracker"

var (
	// ErrNotAuthenticated команда требует входа
	ErrNotAuthenticated = errors.New("not signed in, run '" + AppName + " login' first")
	// ErrHabitNotFound ссылка не совпала ни с одной привычкой
	ErrHabitNotFound = errors.New("habit not found")
	// ErrAmbiguousHabit ссылка совпала с несколькими привычками
	ErrAmbiguousHabit = errors.New("habit reference is ambiguous")
	// ErrPasswordMismatch пароль и подтверждение различаются
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// Authenticator операции сессии, нужные командам
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (*models.User, error)
	SignUp(ctx context.Context, email, password, name string) (*models.User, error)
	Logout(ctx context.Context) error
	State() auth.State
	User() (models.User, bool)
	Expiry() (time.Time, bool)
}

// Habits операции синхронизации привычек
type Habits interface {
	Fetch(ctx context.Context) error
	LoadCached(ctx context.Context) error
	Snapshot() habitsync.State
	ToggleCompletion(ctx context.Context, id uuid.UUID) error
	SetRecurring(ctx context.Context, id uuid.UUID, value bool) error
	UploadProof(ctx context.Context, id uuid.UUID, photo []byte) error
	BeginAdding()
	SetDraft(name, deadlineHours string)
	AddDraft(ctx context.Context) error
}

// StatsProvider XP-сводка
type StatsProvider interface {
	Summary(ctx context.Context, days int) (*stats.Summary, error)
}

// Cli набор команд клиента
type Cli struct {
	io     iocli.IO
	auth   Authenticator
	habits Habits
	stats  StatsProvider
	clock  clockwork.Clock
}

// New creates the command set. habits and stats may be nil for commands
// that only touch the session.
func New(io iocli.IO, authenticator Authenticator, habits Habits, statsProvider StatsProvider) *Cli {
	return &Cli{
		io:     io,
		auth:   authenticator,
		habits: habits,
		stats:  statsProvider,
		clock:  clockwork.NewRealClock(),
	}
}

// WithClock подменяет часы (для тестов вывода статуса)
func (c *Cli) WithClock(clock clockwork.Clock) *Cli {
	c.clock = clock
	return c
}

func (c *Cli) requireSignedIn() error {
	if c.auth.State() != auth.SignedIn {
		return ErrNotAuthenticated
	}
	return nil
}

// load fetches the list from the server and falls back to the offline
// cache when the fetch fails
func (c *Cli) load(ctx context.Context) (habitsync.State, error) {
	fetchErr := c.habits.Fetch(ctx)
	if fetchErr == nil {
		return c.habits.Snapshot(), nil
	}
	if errors.Is(fetchErr, context.Canceled) {
		return habitsync.State{}, fetchErr
	}

	if err := c.habits.LoadCached(ctx); err != nil {
		return habitsync.State{}, fetchErr
	}

	state := c.habits.Snapshot()
	c.io.Printf("⚠️  Server unavailable (%v)\n", fetchErr)
	c.io.Printf("Showing cached habits from %s\n\n", state.SyncedAt.Local().Format(time.DateTime))
	return state, nil
}

// resolve finds a habit by full id, unique id prefix or case-insensitive name
func resolve(state habitsync.State, ref string) (models.Habit, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Habit{}, fmt.Errorf("%w: empty reference", ErrHabitNotFound)
	}

	if id, err := uuid.Parse(ref); err == nil {
		if h, ok := state.Find(id.String()); ok {
			return h, nil
		}
		return models.Habit{}, fmt.Errorf("%w: %s", ErrHabitNotFound, ref)
	}

	var matches []models.Habit
	lower := strings.ToLower(ref)
	for _, h := range state.Habits {
		if h.PendingDeletion {
			continue
		}
		if strings.EqualFold(h.Name, ref) {
			return h, nil
		}
		if strings.HasPrefix(h.ID.String(), lower) {
			matches = append(matches, h)
		}
	}

	switch len(matches) {
	case 0:
		return models.Habit{}, fmt.Errorf("%w: %s", ErrHabitNotFound, ref)
	case 1:
		return matches[0], nil
	default:
		return models.Habit{}, fmt.Errorf("%w: %q matches %d habits", ErrAmbiguousHabit, ref, len(matches))
	}
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
