// Package secondary defines the secondary ports (driven adapters) for
// the application. These are the interfaces through which the
// application drives the persistent store.
package secondary

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("not found")

// ErrInsufficientBalance is returned when a redemption exceeds the
// current derived score.
var ErrInsufficientBalance = errors.New("insufficient balance")

// TaskRepository defines the secondary port for task persistence.
type TaskRepository interface {
	// Create persists a new task.
	Create(ctx context.Context, task *TaskRecord) error

	// GetByID retrieves a task by its ID. Returns ErrNotFound when
	// absent.
	GetByID(ctx context.Context, id string) (*TaskRecord, error)

	// ListByDate retrieves all tasks for the exact date string,
	// mandatory before optional, creation order within each group.
	ListByDate(ctx context.Context, date string) ([]*TaskRecord, error)

	// MarkCompleted transitions a task to COMPLETED with the given
	// (already clamped) star rating and updated_at timestamp.
	MarkCompleted(ctx context.Context, id string, stars int, updatedAt string) error

	// Delete removes a task. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
}

// TaskRecord represents a task as stored in persistence.
type TaskRecord struct {
	ID          string
	Title       string
	Type        string // MANDATORY or OPTIONAL
	Date        string // YYYY-MM-DD
	Status      string // PENDING or COMPLETED
	StarsEarned int
	MaxStars    int
	IsCommon    bool
	CreatedAt   string
	UpdatedAt   string
}

// CommonTaskRepository defines the secondary port for the reusable
// task-title templates.
type CommonTaskRepository interface {
	// Add inserts a template title. Inserting an existing title is
	// ignored (idempotent templating).
	Add(ctx context.Context, rec *CommonTaskRecord) error

	// ListTitles retrieves all template titles, newest first.
	ListTitles(ctx context.Context) ([]string, error)

	// DeleteByTitle removes a template by exact title match. Deleting
	// an unknown title is a no-op.
	DeleteByTitle(ctx context.Context, title string) error
}

// CommonTaskRecord represents a common-task template as stored in
// persistence.
type CommonTaskRecord struct {
	ID        string
	Title     string
	CreatedAt string
}

// HabitRepository defines the secondary port for habit persistence.
type HabitRepository interface {
	// Create persists a new habit.
	Create(ctx context.Context, rec *HabitRecord) error

	// List retrieves all habits in creation order.
	List(ctx context.Context) ([]*HabitRecord, error)

	// Delete removes a habit. The caller removes its logs first.
	// Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
}

// HabitRecord represents a habit as stored in persistence.
type HabitRecord struct {
	ID        string
	Name      string
	IconKey   string
	CreatedAt string
	UpdatedAt string
}

// HabitLogRepository defines the secondary port for per-(habit, date)
// completion logs.
type HabitLogRepository interface {
	// Upsert atomically inserts or updates the log row keyed on
	// (habit_id, date). At most one row exists per habit per day.
	Upsert(ctx context.Context, rec *HabitLogRecord) error

	// CompletedByDate returns the completed flag per habit id for one
	// date. Habits without a row for the date are absent from the map.
	CompletedByDate(ctx context.Context, date string) (map[string]bool, error)

	// DeleteByHabit removes all logs for a habit.
	DeleteByHabit(ctx context.Context, habitID string) error
}

// HabitLogRecord represents a habit completion log as stored in
// persistence.
type HabitLogRecord struct {
	ID        string
	HabitID   string
	Date      string
	Completed bool
	CreatedAt string
}

// RedemptionRecord represents a reward-ledger entry as stored in
// persistence. Entries are append-only.
type RedemptionRecord struct {
	ID        string
	Reason    string
	Points    int
	CreatedAt string
}

// ScoreRepository defines the secondary port for the derived score and
// the redemption ledger.
type ScoreRepository interface {
	// CurrentScore derives the balance from the stored facts. The
	// three aggregates are read in a single transaction so the result
	// cannot observe interleaved writes.
	CurrentScore(ctx context.Context) (int, error)

	// Redeem re-derives the balance and appends the ledger entry in
	// one transaction. Returns ErrInsufficientBalance, appending
	// nothing, when rec.Points exceeds the balance.
	Redeem(ctx context.Context, rec *RedemptionRecord) error
}

// DashboardRepository defines the secondary port for the composed
// dashboard read.
type DashboardRepository interface {
	// Snapshot reads one date's tasks, the habit list, that date's
	// completion flags, and the current score inside a single
	// transaction.
	Snapshot(ctx context.Context, date string) (*DashboardSnapshot, error)
}

// DashboardSnapshot is a consistent cut of the store for one date.
type DashboardSnapshot struct {
	Tasks            []*TaskRecord
	Habits           []*HabitRecord
	CompletedByHabit map[string]bool
	CurrentScore     int
}
