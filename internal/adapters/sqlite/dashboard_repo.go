package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wzbwan/ADHD-homeworks/internal/ports/secondary"
)

// DashboardRepository implements secondary.DashboardRepository with
// SQLite. The snapshot's sub-reads share one transaction so a write
// landing between them cannot produce a torn dashboard.
type DashboardRepository struct {
	db *sql.DB
}

// NewDashboardRepository creates a new SQLite dashboard repository.
func NewDashboardRepository(db *sql.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

// Snapshot reads tasks, habits, completion flags, and the score for
// one date in a single transaction.
func (r *DashboardRepository) Snapshot(ctx context.Context, date string) (*secondary.DashboardSnapshot, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	snap, err := snapshotTx(ctx, tx, date)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return snap, nil
}

func snapshotTx(ctx context.Context, tx *sql.Tx, date string) (*secondary.DashboardSnapshot, error) {
	tasks, err := listTasksByDate(ctx, tx, date)
	if err != nil {
		return nil, err
	}

	habits, err := listHabits(ctx, tx)
	if err != nil {
		return nil, err
	}

	completed, err := completedByDate(ctx, tx, date)
	if err != nil {
		return nil, err
	}

	total, err := currentScore(ctx, tx)
	if err != nil {
		return nil, err
	}

	return &secondary.DashboardSnapshot{
		Tasks:            tasks,
		Habits:           habits,
		CompletedByHabit: completed,
		CurrentScore:     total,
	}, nil
}
