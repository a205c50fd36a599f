package app

import (
	"context"
	"fmt"

	"github.com/wzbwan/ADHD-homeworks/internal/ports/secondary"
)

// Ensure mocks implement their interfaces
var (
	_ secondary.TaskRepository       = (*mockTaskRepository)(nil)
	_ secondary.CommonTaskRepository = (*mockCommonTaskRepository)(nil)
	_ secondary.HabitRepository      = (*mockHabitRepository)(nil)
	_ secondary.HabitLogRepository   = (*mockHabitLogRepository)(nil)
	_ secondary.ScoreRepository      = (*mockScoreRepository)(nil)
	_ secondary.DashboardRepository  = (*mockDashboardRepository)(nil)
)

// mockTaskRepository implements secondary.TaskRepository for testing.
type mockTaskRepository struct {
	tasks     map[string]*secondary.TaskRecord
	order     []string
	createErr error
}

func newMockTaskRepository() *mockTaskRepository {
	return &mockTaskRepository{tasks: make(map[string]*secondary.TaskRecord)}
}

func (m *mockTaskRepository) Create(ctx context.Context, task *secondary.TaskRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	copied := *task
	m.tasks[task.ID] = &copied
	m.order = append(m.order, task.ID)
	return nil
}

func (m *mockTaskRepository) GetByID(ctx context.Context, id string) (*secondary.TaskRecord, error) {
	if task, ok := m.tasks[id]; ok {
		copied := *task
		return &copied, nil
	}
	return nil, fmt.Errorf("task %s: %w", id, secondary.ErrNotFound)
}

func (m *mockTaskRepository) ListByDate(ctx context.Context, date string) ([]*secondary.TaskRecord, error) {
	var out []*secondary.TaskRecord
	for _, id := range m.order {
		if task, ok := m.tasks[id]; ok && task.Date == date {
			copied := *task
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *mockTaskRepository) MarkCompleted(ctx context.Context, id string, stars int, updatedAt string) error {
	task, ok := m.tasks[id]
	if !ok {
		return fmt.Errorf("task %s: %w", id, secondary.ErrNotFound)
	}
	task.Status = "COMPLETED"
	task.StarsEarned = stars
	task.UpdatedAt = updatedAt
	return nil
}

func (m *mockTaskRepository) Delete(ctx context.Context, id string) error {
	delete(m.tasks, id)
	return nil
}

// mockCommonTaskRepository implements secondary.CommonTaskRepository
// for testing. Titles are kept newest first.
type mockCommonTaskRepository struct {
	titles []string
}

func newMockCommonTaskRepository() *mockCommonTaskRepository {
	return &mockCommonTaskRepository{}
}

func (m *mockCommonTaskRepository) Add(ctx context.Context, rec *secondary.CommonTaskRecord) error {
	for _, t := range m.titles {
		if t == rec.Title {
			return nil
		}
	}
	m.titles = append([]string{rec.Title}, m.titles...)
	return nil
}

func (m *mockCommonTaskRepository) ListTitles(ctx context.Context) ([]string, error) {
	return append([]string(nil), m.titles...), nil
}

func (m *mockCommonTaskRepository) DeleteByTitle(ctx context.Context, title string) error {
	for i, t := range m.titles {
		if t == title {
			m.titles = append(m.titles[:i], m.titles[i+1:]...)
			return nil
		}
	}
	return nil
}

// mockHabitRepository implements secondary.HabitRepository for testing.
type mockHabitRepository struct {
	habits []*secondary.HabitRecord
}

func newMockHabitRepository() *mockHabitRepository {
	return &mockHabitRepository{}
}

func (m *mockHabitRepository) Create(ctx context.Context, rec *secondary.HabitRecord) error {
	copied := *rec
	m.habits = append(m.habits, &copied)
	return nil
}

func (m *mockHabitRepository) List(ctx context.Context) ([]*secondary.HabitRecord, error) {
	return append([]*secondary.HabitRecord(nil), m.habits...), nil
}

func (m *mockHabitRepository) Delete(ctx context.Context, id string) error {
	for i, h := range m.habits {
		if h.ID == id {
			m.habits = append(m.habits[:i], m.habits[i+1:]...)
			return nil
		}
	}
	return nil
}

// mockHabitLogRepository implements secondary.HabitLogRepository for
// testing, keyed on habitID+date like the unique constraint.
type mockHabitLogRepository struct {
	logs map[string]*secondary.HabitLogRecord
}

func newMockHabitLogRepository() *mockHabitLogRepository {
	return &mockHabitLogRepository{logs: make(map[string]*secondary.HabitLogRecord)}
}

func logKey(habitID, date string) string {
	return habitID + "|" + date
}

func (m *mockHabitLogRepository) Upsert(ctx context.Context, rec *secondary.HabitLogRecord) error {
	key := logKey(rec.HabitID, rec.Date)
	if existing, ok := m.logs[key]; ok {
		existing.Completed = rec.Completed
		existing.CreatedAt = rec.CreatedAt
		return nil
	}
	copied := *rec
	m.logs[key] = &copied
	return nil
}

func (m *mockHabitLogRepository) CompletedByDate(ctx context.Context, date string) (map[string]bool, error) {
	out := make(map[string]bool)
	for _, rec := range m.logs {
		if rec.Date == date {
			out[rec.HabitID] = rec.Completed
		}
	}
	return out, nil
}

func (m *mockHabitLogRepository) DeleteByHabit(ctx context.Context, habitID string) error {
	for key, rec := range m.logs {
		if rec.HabitID == habitID {
			delete(m.logs, key)
		}
	}
	return nil
}

// mockScoreRepository implements secondary.ScoreRepository for testing.
type mockScoreRepository struct {
	score       int
	redemptions []*secondary.RedemptionRecord
	scoreErr    error
}

func newMockScoreRepository(score int) *mockScoreRepository {
	return &mockScoreRepository{score: score}
}

func (m *mockScoreRepository) CurrentScore(ctx context.Context) (int, error) {
	if m.scoreErr != nil {
		return 0, m.scoreErr
	}
	return m.score, nil
}

func (m *mockScoreRepository) Redeem(ctx context.Context, rec *secondary.RedemptionRecord) error {
	if rec.Points > m.score {
		return secondary.ErrInsufficientBalance
	}
	m.score -= rec.Points
	copied := *rec
	m.redemptions = append(m.redemptions, &copied)
	return nil
}

// mockDashboardRepository implements secondary.DashboardRepository for
// testing.
type mockDashboardRepository struct {
	snapshot *secondary.DashboardSnapshot
	lastDate string
}

func (m *mockDashboardRepository) Snapshot(ctx context.Context, date string) (*secondary.DashboardSnapshot, error) {
	m.lastDate = date
	if m.snapshot != nil {
		return m.snapshot, nil
	}
	return &secondary.DashboardSnapshot{CompletedByHabit: map[string]bool{}}, nil
}
