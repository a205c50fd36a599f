package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wzbwan/ADHD-homeworks/internal/ports/secondary"
)

// CommonTaskRepository implements secondary.CommonTaskRepository with
// SQLite.
type CommonTaskRepository struct {
	db *sql.DB
}

// NewCommonTaskRepository creates a new SQLite common-task repository.
func NewCommonTaskRepository(db *sql.DB) *CommonTaskRepository {
	return &CommonTaskRepository{db: db}
}

// Add inserts a template title. The title column is UNIQUE; an
// existing title is ignored rather than erroring.
func (r *CommonTaskRepository) Add(ctx context.Context, rec *secondary.CommonTaskRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO common_tasks (id, title, created_at) VALUES (?, ?, ?)",
		rec.ID, rec.Title, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to add common task: %w", err)
	}
	return nil
}

// ListTitles retrieves all template titles, newest first.
func (r *CommonTaskRepository) ListTitles(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT title FROM common_tasks ORDER BY created_at DESC, rowid DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list common tasks: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			return nil, fmt.Errorf("failed to scan common task: %w", err)
		}
		titles = append(titles, title)
	}

	return titles, rows.Err()
}

// DeleteByTitle removes a template by exact title match.
func (r *CommonTaskRepository) DeleteByTitle(ctx context.Context, title string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM common_tasks WHERE title = ?", title); err != nil {
		return fmt.Errorf("failed to delete common task: %w", err)
	}
	return nil
}
