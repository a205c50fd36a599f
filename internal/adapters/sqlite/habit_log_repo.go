package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wzbwan/ADHD-homeworks/internal/ports/secondary"
)

// HabitLogRepository implements secondary.HabitLogRepository with
// SQLite.
type HabitLogRepository struct {
	db *sql.DB
}

// NewHabitLogRepository creates a new SQLite habit-log repository.
func NewHabitLogRepository(db *sql.DB) *HabitLogRepository {
	return &HabitLogRepository{db: db}
}

// Upsert inserts or updates the log row for (habit_id, date) in one
// statement, so concurrent toggles cannot produce duplicate rows.
func (r *HabitLogRepository) Upsert(ctx context.Context, rec *secondary.HabitLogRecord) error {
	completed := 0
	if rec.Completed {
		completed = 1
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO habit_logs (id, habit_id, date, completed, created_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(habit_id, date) DO UPDATE SET
			completed = excluded.completed,
			created_at = excluded.created_at`,
		rec.ID, rec.HabitID, rec.Date, completed, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert habit log: %w", err)
	}
	return nil
}

// CompletedByDate returns the completed flag per habit id for one date.
func (r *HabitLogRepository) CompletedByDate(ctx context.Context, date string) (map[string]bool, error) {
	return completedByDate(ctx, r.db, date)
}

func completedByDate(ctx context.Context, q querier, date string) (map[string]bool, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT habit_id, completed FROM habit_logs WHERE date = ?",
		date,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query habit logs: %w", err)
	}
	defer rows.Close()

	completed := make(map[string]bool)
	for rows.Next() {
		var habitID string
		var flag int
		if err := rows.Scan(&habitID, &flag); err != nil {
			return nil, fmt.Errorf("failed to scan habit log: %w", err)
		}
		completed[habitID] = flag != 0
	}

	return completed, rows.Err()
}

// DeleteByHabit removes all logs for a habit.
func (r *HabitLogRepository) DeleteByHabit(ctx context.Context, habitID string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM habit_logs WHERE habit_id = ?", habitID); err != nil {
		return fmt.Errorf("failed to delete habit logs: %w", err)
	}
	return nil
}
