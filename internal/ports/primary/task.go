// Package primary defines the primary ports (driving adapters) for the
// application: the service interfaces the HTTP and CLI layers consume.
package primary

import (
	"context"

	"github.com/wzbwan/ADHD-homeworks/internal/models"
)

// TaskService defines the primary port for the task lifecycle.
type TaskService interface {
	// CreateTask creates a PENDING task for a date, optionally adding
	// its title to the common-task templates.
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)

	// AddTasksFromCommon bulk-creates one mandatory task per title.
	// Duplicate same-day titles are allowed by design.
	AddTasksFromCommon(ctx context.Context, req AddFromCommonRequest) ([]models.Task, error)

	// CompleteTask transitions a task to COMPLETED with a clamped star
	// rating. Completing an already completed task returns the stored
	// record unchanged.
	CompleteTask(ctx context.Context, taskID string, stars int) (*models.Task, error)

	// DeleteTask hard-deletes a task; unknown ids are a no-op.
	DeleteTask(ctx context.Context, taskID string) error

	// TasksForDate lists tasks for the exact date string, mandatory
	// before optional.
	TasksForDate(ctx context.Context, date string) ([]models.Task, error)

	// CommonTaskTitles lists the template titles, newest first.
	CommonTaskTitles(ctx context.Context) ([]string, error)

	// DeleteCommonTask removes a template by title; unknown titles are
	// a no-op. Tasks already created from it are unaffected.
	DeleteCommonTask(ctx context.Context, title string) error
}

// CreateTaskRequest contains parameters for creating a task.
type CreateTaskRequest struct {
	Title       string
	Type        string // MANDATORY or OPTIONAL
	Date        string // optional; malformed input falls back to today
	AddToCommon bool
}

// AddFromCommonRequest contains parameters for bulk creation from
// template titles.
type AddFromCommonRequest struct {
	Titles []string
	Date   string // optional; malformed input falls back to today
}
