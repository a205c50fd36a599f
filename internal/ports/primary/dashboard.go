package primary

import (
	"context"

	"github.com/wzbwan/ADHD-homeworks/internal/models"
)

// DashboardService defines the primary port for the composed read both
// front ends poll.
type DashboardService interface {
	// GetDashboard resolves the date (falling back to today) and
	// composes tasks, habit state, and the current score from one
	// consistent snapshot.
	GetDashboard(ctx context.Context, date string) (*models.Dashboard, error)
}
