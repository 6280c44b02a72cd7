package api

// Habit is the server representation of a habit record.
// Field names follow the service's external naming: xp_points and
// deadline_duration are snake_case, everything else is camelCase.
type Habit struct {
	DeadlineDuration *int64  `json:"deadline_duration,omitempty"` // seconds
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Emoji            string  `json:"emoji"`
	Category         string  `json:"category"`
	Progress         float64 `json:"progress"`
	XPPoints         int     `json:"xp_points"`
	IsCompleted      bool    `json:"isCompleted"`
	IsRecurring      bool    `json:"isRecurring"`
}

// HabitCreate is the body of POST /habits. Emoji may be left empty,
// in which case the server picks a default.
type HabitCreate struct {
	DeadlineDuration *int64  `json:"deadline_duration,omitempty"`
	Name             string  `json:"name"`
	Emoji            string  `json:"emoji,omitempty"`
	Category         string  `json:"category"`
	Progress         float64 `json:"progress"`
	XPPoints         int     `json:"xp_points"`
	IsCompleted      bool    `json:"isCompleted"`
	IsRecurring      bool    `json:"isRecurring"`
}
