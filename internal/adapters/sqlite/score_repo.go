package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/wzbwan/ADHD-homeworks/internal/core/score"
	"github.com/wzbwan/ADHD-homeworks/internal/models"
	"github.com/wzbwan/ADHD-homeworks/internal/ports/secondary"
)

// ScoreRepository implements secondary.ScoreRepository with SQLite.
//
// The original design ran the three aggregates and the redeem
// check-then-insert as independent statements, leaving a window where
// two concurrent redemptions could both pass the balance check. Both
// paths run inside a transaction here.
type ScoreRepository struct {
	db *sql.DB
}

// NewScoreRepository creates a new SQLite score repository.
func NewScoreRepository(db *sql.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// currentScore derives the balance from the three stored aggregates
// using the given querier, which may be a transaction.
func currentScore(ctx context.Context, q querier) (int, error) {
	var stars sql.NullInt64
	err := q.QueryRowContext(ctx,
		"SELECT SUM(stars_earned) FROM tasks WHERE status = ?",
		models.TaskStatusCompleted,
	).Scan(&stars)
	if err != nil {
		return 0, fmt.Errorf("failed to sum task stars: %w", err)
	}

	var habits int
	err = q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM habit_logs WHERE completed = 1",
	).Scan(&habits)
	if err != nil {
		return 0, fmt.Errorf("failed to count habit logs: %w", err)
	}

	var redeemed sql.NullInt64
	err = q.QueryRowContext(ctx,
		"SELECT SUM(points) FROM redemptions",
	).Scan(&redeemed)
	if err != nil {
		return 0, fmt.Errorf("failed to sum redemptions: %w", err)
	}

	return score.Compute(int(stars.Int64), habits, int(redeemed.Int64)), nil
}

// CurrentScore derives the balance inside a single transaction.
func (r *ScoreRepository) CurrentScore(ctx context.Context) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	total, err := currentScore(ctx, tx)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return total, nil
}

// Redeem re-derives the balance and appends the ledger entry in the
// same transaction. Nothing is written when the balance is too low.
func (r *ScoreRepository) Redeem(ctx context.Context, rec *secondary.RedemptionRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	current, err := currentScore(ctx, tx)
	if err != nil {
		return err
	}

	if res := score.CanRedeem(score.RedeemContext{Points: rec.Points, CurrentScore: current}); !res.Allowed {
		return fmt.Errorf("%s: %w", res.Reason, secondary.ErrInsufficientBalance)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO redemptions (id, reason, points, created_at) VALUES (?, ?, ?, ?)",
		rec.ID, rec.Reason, rec.Points, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append redemption: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit redemption: %w", err)
	}
	return nil
}
