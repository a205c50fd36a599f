package app

import (
	"context"

	"github.com/wzbwan/ADHD-homeworks/internal/core/dates"
	"github.com/wzbwan/ADHD-homeworks/internal/models"
	"github.com/wzbwan/ADHD-homeworks/internal/ports/secondary"
)

// DashboardServiceImpl implements the DashboardService interface.
type DashboardServiceImpl struct {
	dashRepo secondary.DashboardRepository
}

// NewDashboardService creates a new DashboardService with injected
// dependencies.
func NewDashboardService(dashRepo secondary.DashboardRepository) *DashboardServiceImpl {
	return &DashboardServiceImpl{dashRepo: dashRepo}
}

// GetDashboard resolves the date and composes one consistent snapshot
// of tasks, habit state, and the current score.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, date string) (*models.Dashboard, error) {
	resolved := dates.Ensure(date)

	snap, err := s.dashRepo.Snapshot(ctx, resolved)
	if err != nil {
		return nil, err
	}

	return &models.Dashboard{
		Date:         resolved,
		Tasks:        recordsToTasks(snap.Tasks),
		Habits:       joinHabitState(snap.Habits, snap.CompletedByHabit),
		CurrentScore: snap.CurrentScore,
	}, nil
}
