package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wzbwan/ADHD-homeworks/internal/core/dates"
	"github.com/wzbwan/ADHD-homeworks/internal/models"
	"github.com/wzbwan/ADHD-homeworks/internal/ports/primary"
	"github.com/wzbwan/ADHD-homeworks/internal/ports/secondary"
)

// HabitServiceImpl implements the HabitService interface.
type HabitServiceImpl struct {
	habitRepo secondary.HabitRepository
	logRepo   secondary.HabitLogRepository
}

// NewHabitService creates a new HabitService with injected
// dependencies.
func NewHabitService(habitRepo secondary.HabitRepository, logRepo secondary.HabitLogRepository) *HabitServiceImpl {
	return &HabitServiceImpl{habitRepo: habitRepo, logRepo: logRepo}
}

// ListHabitsWithState joins all habits with their completion flag for
// one date. A habit with no log row reads as not completed.
func (s *HabitServiceImpl) ListHabitsWithState(ctx context.Context, date string) ([]models.HabitWithState, error) {
	resolved := dates.Ensure(date)

	habits, err := s.habitRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	completed, err := s.logRepo.CompletedByDate(ctx, resolved)
	if err != nil {
		return nil, err
	}

	return joinHabitState(habits, completed), nil
}

// ToggleHabit upserts the (habit, date) log row. The habit id is not
// validated; the single-household trust model accepts orphan logs.
func (s *HabitServiceImpl) ToggleHabit(ctx context.Context, req primary.ToggleHabitRequest) error {
	if req.HabitID == "" {
		return fmt.Errorf("habit id is required: %w", primary.ErrValidation)
	}

	record := &secondary.HabitLogRecord{
		ID:        uuid.NewString(),
		HabitID:   req.HabitID,
		Date:      dates.Ensure(req.Date),
		Completed: req.Completed,
		CreatedAt: nowStamp(),
	}
	return s.logRepo.Upsert(ctx, record)
}

// AddHabit creates a habit. Names are not unique by design.
func (s *HabitServiceImpl) AddHabit(ctx context.Context, req primary.AddHabitRequest) (*models.Habit, error) {
	if req.Name == "" || req.IconKey == "" {
		return nil, fmt.Errorf("name and iconKey are required: %w", primary.ErrValidation)
	}

	now := nowStamp()
	record := &secondary.HabitRecord{
		ID:        uuid.NewString(),
		Name:      req.Name,
		IconKey:   req.IconKey,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.habitRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return recordToHabit(record), nil
}

// DeleteHabit removes the habit's logs before the habit itself, so a
// failure cannot leave orphaned logs behind.
func (s *HabitServiceImpl) DeleteHabit(ctx context.Context, habitID string) error {
	if err := s.logRepo.DeleteByHabit(ctx, habitID); err != nil {
		return err
	}
	return s.habitRepo.Delete(ctx, habitID)
}

func recordToHabit(record *secondary.HabitRecord) *models.Habit {
	return &models.Habit{
		ID:        record.ID,
		Name:      record.Name,
		IconKey:   record.IconKey,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}

func joinHabitState(habits []*secondary.HabitRecord, completed map[string]bool) []models.HabitWithState {
	out := make([]models.HabitWithState, len(habits))
	for i, h := range habits {
		out[i] = models.HabitWithState{
			Habit:     *recordToHabit(h),
			Completed: completed[h.ID],
		}
	}
	return out
}
