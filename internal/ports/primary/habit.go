package primary

import (
	"context"

	"github.com/wzbwan/ADHD-homeworks/internal/models"
)

// HabitService defines the primary port for the habit lifecycle.
type HabitService interface {
	// ListHabitsWithState joins all habits with their completion flag
	// for one date, in habit creation order.
	ListHabitsWithState(ctx context.Context, date string) ([]models.HabitWithState, error)

	// ToggleHabit upserts the (habit, date) log row. The habit id is
	// not validated against the habit table.
	ToggleHabit(ctx context.Context, req ToggleHabitRequest) error

	// AddHabit creates a habit. Names are not unique.
	AddHabit(ctx context.Context, req AddHabitRequest) (*models.Habit, error)

	// DeleteHabit removes a habit and all of its logs; unknown ids are
	// a no-op.
	DeleteHabit(ctx context.Context, habitID string) error
}

// ToggleHabitRequest contains parameters for toggling a habit.
type ToggleHabitRequest struct {
	HabitID   string
	Completed bool
	Date      string // optional; malformed input falls back to today
}

// AddHabitRequest contains parameters for creating a habit.
type AddHabitRequest struct {
	Name    string
	IconKey string
}
