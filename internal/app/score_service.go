package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/wzbwan/ADHD-homeworks/internal/core/score"
	"github.com/wzbwan/ADHD-homeworks/internal/ports/primary"
	"github.com/wzbwan/ADHD-homeworks/internal/ports/secondary"
)

// ScoreServiceImpl implements the ScoreService interface.
type ScoreServiceImpl struct {
	scoreRepo secondary.ScoreRepository
}

// NewScoreService creates a new ScoreService with injected
// dependencies.
func NewScoreService(scoreRepo secondary.ScoreRepository) *ScoreServiceImpl {
	return &ScoreServiceImpl{scoreRepo: scoreRepo}
}

// CurrentScore derives the point balance from the stored facts.
func (s *ScoreServiceImpl) CurrentScore(ctx context.Context) (int, error) {
	return s.scoreRepo.CurrentScore(ctx)
}

// RedeemPoints validates the request and appends a ledger entry. The
// balance check and the append happen atomically in the repository.
func (s *ScoreServiceImpl) RedeemPoints(ctx context.Context, reason string, points int) error {
	if res := score.ValidateRedemption(score.RedeemContext{Reason: reason, Points: points}); !res.Allowed {
		return fmt.Errorf("%s: %w", res.Reason, primary.ErrValidation)
	}

	record := &secondary.RedemptionRecord{
		ID:        uuid.NewString(),
		Reason:    reason,
		Points:    points,
		CreatedAt: nowStamp(),
	}

	err := s.scoreRepo.Redeem(ctx, record)
	if errors.Is(err, secondary.ErrInsufficientBalance) {
		return fmt.Errorf("cannot redeem %d points: %w", points, primary.ErrInsufficientBalance)
	}
	return err
}
