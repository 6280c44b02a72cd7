package models

import "time"

// Completion запись о подтверждённом сервером выполнении привычки.
// Используется для подсчёта XP по дням и серии (streak).
type Completion struct {
	CompletedAt time.Time `json:"completed_at"`
	HabitName   string    `json:"habit_name"`
	HabitID     string    `json:"habit_id"`
	XPPoints    int       `json:"xp_points"`
}

// DayXP сумма XP, заработанных за один календарный день
type DayXP struct {
	Day time.Time `json:"day"` // начало дня в локальной зоне
	XP  int       `json:"xp"`
}
