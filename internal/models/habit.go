package models

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/iudanet/habittracker/pkg/api"
)

// Habit представляет привычку в локальном состоянии клиента.
// В отличие от api.Habit идентификатор уже разобран в UUID,
// а PendingDeletion существует только на клиенте и никогда не уходит на сервер.
type Habit struct {
	DeadlineDuration *int64    `json:"deadline_duration,omitempty"` // DeadlineDuration срок выполнения в секундах (опционально)
	Name             string    `json:"name"`                        // Name название привычки
	Emoji            string    `json:"emoji"`                       // Emoji иконка привычки
	Category         string    `json:"category"`                    // Category категория (для группировки в статистике)
	Progress         float64   `json:"progress"`                    // Progress прогресс в диапазоне [0,1]
	XPPoints         int       `json:"xp_points"`                   // XPPoints награда за выполнение
	ID               uuid.UUID `json:"id"`                          // ID серверный идентификатор
	IsCompleted      bool      `json:"isCompleted"`                 // IsCompleted отмечена ли привычка выполненной
	IsRecurring      bool      `json:"isRecurring"`                 // IsRecurring повторяющаяся привычка не удаляется после выполнения
	PendingDeletion  bool      `json:"-"`                           // PendingDeletion удаление подтверждено, запись ждёт grace delay
}

// HabitFromAPI converts a server record into a local habit.
// It fails when the server id is not a valid UUID.
func HabitFromAPI(h api.Habit) (Habit, error) {
	id, err := uuid.Parse(h.ID)
	if err != nil {
		return Habit{}, fmt.Errorf("invalid habit id %q: %w", h.ID, err)
	}

	return Habit{
		ID:               id,
		Name:             h.Name,
		Emoji:            h.Emoji,
		XPPoints:         h.XPPoints,
		IsCompleted:      h.IsCompleted,
		Progress:         h.Progress,
		IsRecurring:      h.IsRecurring,
		DeadlineDuration: cloneInt64(h.DeadlineDuration),
		Category:         h.Category,
	}, nil
}

// ToAPI converts the habit back to its wire shape. PendingDeletion is dropped.
func (h Habit) ToAPI() api.Habit {
	return api.Habit{
		ID:               h.ID.String(),
		Name:             h.Name,
		Emoji:            h.Emoji,
		XPPoints:         h.XPPoints,
		IsCompleted:      h.IsCompleted,
		Progress:         h.Progress,
		IsRecurring:      h.IsRecurring,
		DeadlineDuration: cloneInt64(h.DeadlineDuration),
		Category:         h.Category,
	}
}

// IsFinished сообщает, что разовая привычка выполнена: такая запись
// должна быть удалена на сервере и не показывается в списке.
func (h Habit) IsFinished() bool {
	return h.IsCompleted && !h.IsRecurring
}

// Clone создает копию привычки, не разделяющую указатель на deadline
func (h Habit) Clone() Habit {
	c := h
	c.DeadlineDuration = cloneInt64(h.DeadlineDuration)
	return c
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
