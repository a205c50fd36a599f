package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wzbwan/ADHD-homeworks/internal/ports/secondary"
)

// HabitRepository implements secondary.HabitRepository with SQLite.
type HabitRepository struct {
	db *sql.DB
}

// NewHabitRepository creates a new SQLite habit repository.
func NewHabitRepository(db *sql.DB) *HabitRepository {
	return &HabitRepository{db: db}
}

// Create persists a new habit.
func (r *HabitRepository) Create(ctx context.Context, rec *secondary.HabitRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO habits (id, name, icon_key, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		rec.ID, rec.Name, rec.IconKey, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create habit: %w", err)
	}
	return nil
}

// List retrieves all habits in creation order.
func (r *HabitRepository) List(ctx context.Context) ([]*secondary.HabitRecord, error) {
	return listHabits(ctx, r.db)
}

func listHabits(ctx context.Context, q querier) ([]*secondary.HabitRecord, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT id, name, icon_key, created_at, updated_at FROM habits ORDER BY created_at ASC, rowid ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list habits: %w", err)
	}
	defer rows.Close()

	var habits []*secondary.HabitRecord
	for rows.Next() {
		record := &secondary.HabitRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.IconKey, &record.CreatedAt, &record.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		habits = append(habits, record)
	}

	return habits, rows.Err()
}

// Delete removes a habit. Unknown ids are a silent no-op.
func (r *HabitRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM habits WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	return nil
}
