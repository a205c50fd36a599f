// Package app implements the primary ports over the repository
// interfaces in ports/secondary.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wzbwan/ADHD-homeworks/internal/core/dates"
	coretask "github.com/wzbwan/ADHD-homeworks/internal/core/task"
	"github.com/wzbwan/ADHD-homeworks/internal/models"
	"github.com/wzbwan/ADHD-homeworks/internal/ports/primary"
	"github.com/wzbwan/ADHD-homeworks/internal/ports/secondary"
)

// TaskServiceImpl implements the TaskService interface.
type TaskServiceImpl struct {
	taskRepo   secondary.TaskRepository
	commonRepo secondary.CommonTaskRepository
}

// NewTaskService creates a new TaskService with injected dependencies.
func NewTaskService(taskRepo secondary.TaskRepository, commonRepo secondary.CommonTaskRepository) *TaskServiceImpl {
	return &TaskServiceImpl{taskRepo: taskRepo, commonRepo: commonRepo}
}

func nowStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// CreateTask creates a new pending task, optionally registering its
// title as a common-task template.
func (s *TaskServiceImpl) CreateTask(ctx context.Context, req primary.CreateTaskRequest) (*models.Task, error) {
	if res := coretask.CanCreate(coretask.CreateContext{Title: req.Title, Type: req.Type}); !res.Allowed {
		return nil, fmt.Errorf("%s: %w", res.Reason, primary.ErrValidation)
	}

	now := nowStamp()
	record := &secondary.TaskRecord{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Type:        req.Type,
		Date:        dates.Ensure(req.Date),
		Status:      models.TaskStatusPending,
		StarsEarned: 0,
		MaxStars:    models.DefaultMaxStars,
		IsCommon:    req.AddToCommon,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	if req.AddToCommon {
		common := &secondary.CommonTaskRecord{
			ID:        uuid.NewString(),
			Title:     req.Title,
			CreatedAt: now,
		}
		if err := s.commonRepo.Add(ctx, common); err != nil {
			return nil, fmt.Errorf("failed to add common task: %w", err)
		}
	}

	return recordToTask(record), nil
}

// AddTasksFromCommon bulk-creates one mandatory task per title. It
// deliberately does not deduplicate against existing same-day tasks.
func (s *TaskServiceImpl) AddTasksFromCommon(ctx context.Context, req primary.AddFromCommonRequest) ([]models.Task, error) {
	if len(req.Titles) == 0 {
		return nil, fmt.Errorf("titles are required: %w", primary.ErrValidation)
	}

	date := dates.Ensure(req.Date)
	now := nowStamp()

	created := make([]models.Task, 0, len(req.Titles))
	for _, title := range req.Titles {
		record := &secondary.TaskRecord{
			ID:          uuid.NewString(),
			Title:       title,
			Type:        models.TaskTypeMandatory,
			Date:        date,
			Status:      models.TaskStatusPending,
			StarsEarned: 0,
			MaxStars:    models.DefaultMaxStars,
			IsCommon:    true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.taskRepo.Create(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to create task %q: %w", title, err)
		}
		created = append(created, *recordToTask(record))
	}

	return created, nil
}

// CompleteTask transitions a task to COMPLETED. Re-completing returns
// the stored record unchanged; stars cannot be re-rated.
func (s *TaskServiceImpl) CompleteTask(ctx context.Context, taskID string, stars int) (*models.Task, error) {
	record, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, secondary.ErrNotFound) {
			return nil, fmt.Errorf("task %s: %w", taskID, primary.ErrNotFound)
		}
		return nil, err
	}

	if coretask.IsCompleted(record.Status) {
		return recordToTask(record), nil
	}

	clamped := coretask.ClampStars(stars, record.MaxStars)
	now := nowStamp()
	if err := s.taskRepo.MarkCompleted(ctx, taskID, clamped, now); err != nil {
		return nil, err
	}

	record.Status = models.TaskStatusCompleted
	record.StarsEarned = clamped
	record.UpdatedAt = now
	return recordToTask(record), nil
}

// DeleteTask hard-deletes a task; unknown ids are a no-op.
func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID string) error {
	return s.taskRepo.Delete(ctx, taskID)
}

// TasksForDate lists tasks for the exact date string.
func (s *TaskServiceImpl) TasksForDate(ctx context.Context, date string) ([]models.Task, error) {
	records, err := s.taskRepo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return recordsToTasks(records), nil
}

// CommonTaskTitles lists the template titles, newest first.
func (s *TaskServiceImpl) CommonTaskTitles(ctx context.Context) ([]string, error) {
	return s.commonRepo.ListTitles(ctx)
}

// DeleteCommonTask removes a template by title. Tasks already created
// from it are unaffected.
func (s *TaskServiceImpl) DeleteCommonTask(ctx context.Context, title string) error {
	return s.commonRepo.DeleteByTitle(ctx, title)
}

func recordToTask(record *secondary.TaskRecord) *models.Task {
	return &models.Task{
		ID:          record.ID,
		Title:       record.Title,
		Type:        record.Type,
		Date:        record.Date,
		Status:      record.Status,
		StarsEarned: record.StarsEarned,
		MaxStars:    record.MaxStars,
		IsCommon:    record.IsCommon,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

func recordsToTasks(records []*secondary.TaskRecord) []models.Task {
	tasks := make([]models.Task, len(records))
	for i, r := range records {
		tasks[i] = *recordToTask(r)
	}
	return tasks
}
