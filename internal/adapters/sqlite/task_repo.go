package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wzbwan/ADHD-homeworks/internal/models"
	"github.com/wzbwan/ADHD-homeworks/internal/ports/secondary"
)

// TaskRepository implements secondary.TaskRepository with SQLite.
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new SQLite task repository.
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskSelectCols = "id, title, type, date, status, stars_earned, max_stars, is_common, created_at, updated_at"

// taskOrder puts mandatory tasks before optional, then creation order.
// The rowid tiebreaker keeps bulk inserts (which share one timestamp)
// in insertion order.
const taskOrder = " ORDER BY CASE type WHEN '" + models.TaskTypeMandatory + "' THEN 0 ELSE 1 END, created_at ASC, rowid ASC"

// scanTask scans a task row into a TaskRecord.
func scanTask(scanner interface {
	Scan(dest ...any) error
}) (*secondary.TaskRecord, error) {
	var isCommon int

	record := &secondary.TaskRecord{}
	err := scanner.Scan(
		&record.ID, &record.Title, &record.Type, &record.Date, &record.Status,
		&record.StarsEarned, &record.MaxStars, &isCommon,
		&record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.IsCommon = isCommon != 0
	return record, nil
}

// Create persists a new task.
func (r *TaskRepository) Create(ctx context.Context, task *secondary.TaskRecord) error {
	return createTask(ctx, r.db, task)
}

func createTask(ctx context.Context, q querier, task *secondary.TaskRecord) error {
	isCommon := 0
	if task.IsCommon {
		isCommon = 1
	}

	_, err := q.ExecContext(ctx,
		`INSERT INTO tasks (id, title, type, date, status, stars_earned, max_stars, is_common, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Title, task.Type, task.Date, task.Status,
		task.StarsEarned, task.MaxStars, isCommon, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// GetByID retrieves a task by its ID.
func (r *TaskRepository) GetByID(ctx context.Context, id string) (*secondary.TaskRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+taskSelectCols+" FROM tasks WHERE id = ?",
		id,
	)

	record, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("task %s: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return record, nil
}

// ListByDate retrieves all tasks for the exact date string.
func (r *TaskRepository) ListByDate(ctx context.Context, date string) ([]*secondary.TaskRecord, error) {
	return listTasksByDate(ctx, r.db, date)
}

func listTasksByDate(ctx context.Context, q querier, date string) ([]*secondary.TaskRecord, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT "+taskSelectCols+" FROM tasks WHERE date = ?"+taskOrder,
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*secondary.TaskRecord
	for rows.Next() {
		record, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, record)
	}

	return tasks, rows.Err()
}

// MarkCompleted transitions a task to COMPLETED with its star rating.
func (r *TaskRepository) MarkCompleted(ctx context.Context, id string, stars int, updatedAt string) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET status = ?, stars_earned = ?, updated_at = ? WHERE id = ?",
		models.TaskStatusCompleted, stars, updatedAt, id,
	)
	if err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}
	return nil
}

// Delete removes a task. Unknown ids are a silent no-op.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
