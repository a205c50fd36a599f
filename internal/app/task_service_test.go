package app

import (
	"context"
	"errors"
	"testing"

	"github.com/wzbwan/ADHD-homeworks/internal/core/dates"
	"github.com/wzbwan/ADHD-homeworks/internal/models"
	"github.com/wzbwan/ADHD-homeworks/internal/ports/primary"
)

func TestCreateTask(t *testing.T) {
	taskRepo := newMockTaskRepository()
	commonRepo := newMockCommonTaskRepository()
	svc := NewTaskService(taskRepo, commonRepo)
	ctx := context.Background()

	task, err := svc.CreateTask(ctx, primary.CreateTaskRequest{
		Title: "Clean Room",
		Type:  models.TaskTypeMandatory,
		Date:  "2024-03-15",
	})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	if task.Status != models.TaskStatusPending {
		t.Errorf("expected PENDING, got %s", task.Status)
	}
	if task.StarsEarned != 0 {
		t.Errorf("expected 0 stars while pending, got %d", task.StarsEarned)
	}
	if task.MaxStars != models.DefaultMaxStars {
		t.Errorf("expected max stars %d, got %d", models.DefaultMaxStars, task.MaxStars)
	}
	if task.Date != "2024-03-15" {
		t.Errorf("expected date to pass through, got %s", task.Date)
	}
	titles, _ := commonRepo.ListTitles(ctx)
	if len(titles) != 0 {
		t.Errorf("expected no template without addToCommon, got %v", titles)
	}
}

func TestCreateTask_Validation(t *testing.T) {
	svc := NewTaskService(newMockTaskRepository(), newMockCommonTaskRepository())
	ctx := context.Background()

	cases := []primary.CreateTaskRequest{
		{Title: "", Type: models.TaskTypeMandatory},
		{Title: "Clean Room", Type: ""},
		{Title: "Clean Room", Type: "BONUS"},
	}
	for _, req := range cases {
		if _, err := svc.CreateTask(ctx, req); !errors.Is(err, primary.ErrValidation) {
			t.Errorf("CreateTask(%+v): expected ErrValidation, got %v", req, err)
		}
	}
}

func TestCreateTask_MalformedDateFallsBackToToday(t *testing.T) {
	svc := NewTaskService(newMockTaskRepository(), newMockCommonTaskRepository())

	task, err := svc.CreateTask(context.Background(), primary.CreateTaskRequest{
		Title: "Clean Room",
		Type:  models.TaskTypeMandatory,
		Date:  "not-a-date",
	})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if task.Date != dates.Today() {
		t.Errorf("expected malformed date to fall back to today, got %s", task.Date)
	}
}

func TestCreateTask_AddToCommon(t *testing.T) {
	taskRepo := newMockTaskRepository()
	commonRepo := newMockCommonTaskRepository()
	svc := NewTaskService(taskRepo, commonRepo)
	ctx := context.Background()

	req := primary.CreateTaskRequest{
		Title:       "Walk the Dog",
		Type:        models.TaskTypeOptional,
		AddToCommon: true,
	}
	if _, err := svc.CreateTask(ctx, req); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	// Creating again with the same title keeps the template list
	// deduplicated while still creating a second task instance.
	if _, err := svc.CreateTask(ctx, req); err != nil {
		t.Fatalf("second CreateTask failed: %v", err)
	}

	titles, _ := commonRepo.ListTitles(ctx)
	if len(titles) != 1 || titles[0] != "Walk the Dog" {
		t.Errorf("expected single template 'Walk the Dog', got %v", titles)
	}
	if len(taskRepo.tasks) != 2 {
		t.Errorf("expected 2 task instances, got %d", len(taskRepo.tasks))
	}
}

func TestAddTasksFromCommon(t *testing.T) {
	taskRepo := newMockTaskRepository()
	svc := NewTaskService(taskRepo, newMockCommonTaskRepository())
	ctx := context.Background()

	created, err := svc.AddTasksFromCommon(ctx, primary.AddFromCommonRequest{
		Titles: []string{"Fold Laundry", "Water Plants"},
		Date:   "2024-03-15",
	})
	if err != nil {
		t.Fatalf("AddTasksFromCommon failed: %v", err)
	}

	if len(created) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(created))
	}
	for _, task := range created {
		if task.Type != models.TaskTypeMandatory {
			t.Errorf("expected MANDATORY, got %s", task.Type)
		}
		if !task.IsCommon {
			t.Error("expected isCommon=true")
		}
		if task.MaxStars != models.DefaultMaxStars {
			t.Errorf("expected max stars %d, got %d", models.DefaultMaxStars, task.MaxStars)
		}
	}

	// No deduplication against existing same-day tasks.
	again, err := svc.AddTasksFromCommon(ctx, primary.AddFromCommonRequest{
		Titles: []string{"Fold Laundry"},
		Date:   "2024-03-15",
	})
	if err != nil {
		t.Fatalf("second AddTasksFromCommon failed: %v", err)
	}
	if len(again) != 1 {
		t.Fatalf("expected 1 task, got %d", len(again))
	}
	if len(taskRepo.tasks) != 3 {
		t.Errorf("expected 3 task instances after duplicate bulk add, got %d", len(taskRepo.tasks))
	}
}

func TestAddTasksFromCommon_EmptyTitles(t *testing.T) {
	svc := NewTaskService(newMockTaskRepository(), newMockCommonTaskRepository())

	if _, err := svc.AddTasksFromCommon(context.Background(), primary.AddFromCommonRequest{}); !errors.Is(err, primary.ErrValidation) {
		t.Errorf("expected ErrValidation for empty titles, got %v", err)
	}
}

func TestCompleteTask_ClampsStars(t *testing.T) {
	tests := []struct {
		name  string
		stars int
		want  int
	}{
		{"zero becomes one", 0, 1},
		{"negative becomes one", -3, 1},
		{"above max is capped", 9, models.DefaultMaxStars},
		{"in range passes", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taskRepo := newMockTaskRepository()
			svc := NewTaskService(taskRepo, newMockCommonTaskRepository())
			ctx := context.Background()

			created, err := svc.CreateTask(ctx, primary.CreateTaskRequest{
				Title: "Clean Room", Type: models.TaskTypeMandatory,
			})
			if err != nil {
				t.Fatalf("CreateTask failed: %v", err)
			}

			done, err := svc.CompleteTask(ctx, created.ID, tt.stars)
			if err != nil {
				t.Fatalf("CompleteTask failed: %v", err)
			}
			if done.StarsEarned != tt.want {
				t.Errorf("stars %d: expected %d stored, got %d", tt.stars, tt.want, done.StarsEarned)
			}
			if done.Status != models.TaskStatusCompleted {
				t.Errorf("expected COMPLETED, got %s", done.Status)
			}
		})
	}
}

func TestCompleteTask_Idempotent(t *testing.T) {
	taskRepo := newMockTaskRepository()
	svc := NewTaskService(taskRepo, newMockCommonTaskRepository())
	ctx := context.Background()

	created, err := svc.CreateTask(ctx, primary.CreateTaskRequest{
		Title: "Clean Room", Type: models.TaskTypeMandatory,
	})
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	first, err := svc.CompleteTask(ctx, created.ID, 2)
	if err != nil {
		t.Fatalf("CompleteTask failed: %v", err)
	}

	// A second completion with a different rating must not re-rate.
	second, err := svc.CompleteTask(ctx, created.ID, 3)
	if err != nil {
		t.Fatalf("repeat CompleteTask failed: %v", err)
	}
	if second.StarsEarned != first.StarsEarned {
		t.Errorf("expected frozen stars %d, got %d", first.StarsEarned, second.StarsEarned)
	}
}

func TestCompleteTask_NotFound(t *testing.T) {
	svc := NewTaskService(newMockTaskRepository(), newMockCommonTaskRepository())

	_, err := svc.CompleteTask(context.Background(), "missing", 2)
	if !errors.Is(err, primary.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteTask_MissingIsNoop(t *testing.T) {
	svc := NewTaskService(newMockTaskRepository(), newMockCommonTaskRepository())

	if err := svc.DeleteTask(context.Background(), "missing"); err != nil {
		t.Errorf("expected no error deleting unknown id, got %v", err)
	}
}
