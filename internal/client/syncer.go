package client

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wzbwan/ADHD-homeworks/internal/core/score"
	"github.com/wzbwan/ADHD-homeworks/internal/core/task"
	"github.com/wzbwan/ADHD-homeworks/internal/models"
)

// DefaultPollInterval is how often the syncer refetches the dashboard.
const DefaultPollInterval = 2 * time.Second

// State is the sync state machine position.
type State int

const (
	// StateInitialLoad means the first foreground fetch has not
	// resolved yet.
	StateInitialLoad State = iota

	// StateReady means a snapshot is available.
	StateReady

	// StateBackgroundRefresh means a snapshot is available and a
	// background fetch is in flight.
	StateBackgroundRefresh
)

// Syncer polls the dashboard on a fixed interval and reconciles
// optimistic local mutations against server truth. Writes always
// trigger an immediate refetch; the optimistic patch is never final.
type Syncer struct {
	client   *Client
	interval time.Duration
	onUpdate func(*models.Dashboard)

	// fetchSeq orders fetches so a slow response cannot overwrite a
	// newer snapshot.
	fetchSeq  atomic.Int64
	refreshCh chan struct{}

	mu         sync.Mutex
	snapshot   *models.Dashboard
	state      State
	appliedSeq int64
}

// NewSyncer creates a syncer polling with the given interval. onUpdate
// is invoked with the new snapshot after every applied change,
// optimistic or fetched; it may be nil.
func NewSyncer(c *Client, interval time.Duration, onUpdate func(*models.Dashboard)) *Syncer {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Syncer{
		client:    c,
		interval:  interval,
		onUpdate:  onUpdate,
		refreshCh: make(chan struct{}, 1),
	}
}

// Run performs the initial foreground fetch, then polls until the
// context is cancelled. An initial fetch failure leaves the syncer in
// INITIAL_LOAD; the next tick retries.
func (s *Syncer) Run(ctx context.Context) error {
	s.fetch(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.fetch(ctx)
		case <-s.refreshCh:
			s.fetch(ctx)
		}
	}
}

// Refresh requests an immediate refetch without blocking. A refresh
// already pending is enough; extra requests coalesce.
func (s *Syncer) Refresh() {
	select {
	case s.refreshCh <- struct{}{}:
	default:
	}
}

// Snapshot returns the current snapshot, or nil before the first
// successful fetch.
func (s *Syncer) Snapshot() *models.Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// State returns the sync state machine position.
func (s *Syncer) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// fetch pulls the dashboard and applies it unless a newer fetch
// already landed. Failures are logged and swallowed; the next tick
// recovers.
func (s *Syncer) fetch(ctx context.Context) {
	seq := s.fetchSeq.Add(1)

	s.mu.Lock()
	if s.state == StateReady {
		s.state = StateBackgroundRefresh
	}
	s.mu.Unlock()

	dash, err := s.client.Dashboard(ctx, "")
	if err != nil {
		log.Printf("dashboard fetch failed: %v", err)
		s.mu.Lock()
		if s.state == StateBackgroundRefresh {
			s.state = StateReady
		}
		s.mu.Unlock()
		return
	}

	s.apply(seq, dash)
}

// apply installs a fetched snapshot, discarding it when a later fetch
// has already been applied.
func (s *Syncer) apply(seq int64, dash *models.Dashboard) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.appliedSeq {
		return
	}

	s.appliedSeq = seq
	s.snapshot = dash
	s.state = StateReady
	s.notifyLocked()
}

// ToggleHabit flips a habit's completion flag optimistically, issues
// the write, and refetches to reconcile.
func (s *Syncer) ToggleHabit(ctx context.Context, habitID string, completed bool) error {
	s.patch(func(dash *models.Dashboard) {
		for i := range dash.Habits {
			if dash.Habits[i].ID != habitID || dash.Habits[i].Completed == completed {
				continue
			}
			dash.Habits[i].Completed = completed
			if completed {
				dash.CurrentScore += score.PointsPerHabit
			} else {
				dash.CurrentScore -= score.PointsPerHabit
			}
		}
	})

	_, err := s.client.ToggleHabit(ctx, habitID, completed, "")
	s.Refresh()
	return err
}

// CompleteTask marks a task completed optimistically with the clamped
// star rating, issues the write, and refetches to reconcile.
func (s *Syncer) CompleteTask(ctx context.Context, taskID string, stars int) error {
	s.patch(func(dash *models.Dashboard) {
		for i := range dash.Tasks {
			t := &dash.Tasks[i]
			if t.ID != taskID || task.IsCompleted(t.Status) {
				continue
			}
			t.Status = models.TaskStatusCompleted
			t.StarsEarned = task.ClampStars(stars, t.MaxStars)
			dash.CurrentScore += score.PointsPerStar * t.StarsEarned
		}
	})

	_, err := s.client.CompleteTask(ctx, taskID, stars)
	s.Refresh()
	return err
}

// CreateTask issues the write and refetches; new ids come from the
// server, so there is no optimistic patch.
func (s *Syncer) CreateTask(ctx context.Context, title, taskType string, addToCommon bool) error {
	_, err := s.client.CreateTask(ctx, title, taskType, "", addToCommon)
	s.Refresh()
	return err
}

// AddTasksFromCommon issues the bulk write and refetches.
func (s *Syncer) AddTasksFromCommon(ctx context.Context, titles []string) error {
	_, err := s.client.AddTasksFromCommon(ctx, titles, "")
	s.Refresh()
	return err
}

// DeleteTask removes the task optimistically, issues the write, and
// refetches.
func (s *Syncer) DeleteTask(ctx context.Context, taskID string) error {
	s.patch(func(dash *models.Dashboard) {
		for i := range dash.Tasks {
			if dash.Tasks[i].ID == taskID {
				dash.Tasks = append(dash.Tasks[:i], dash.Tasks[i+1:]...)
				break
			}
		}
	})

	_, err := s.client.DeleteTask(ctx, taskID)
	s.Refresh()
	return err
}

// AddHabit issues the write and refetches.
func (s *Syncer) AddHabit(ctx context.Context, name, iconKey string) error {
	_, err := s.client.AddHabit(ctx, name, iconKey)
	s.Refresh()
	return err
}

// DeleteHabit removes the habit optimistically, issues the write, and
// refetches.
func (s *Syncer) DeleteHabit(ctx context.Context, habitID string) error {
	s.patch(func(dash *models.Dashboard) {
		for i := range dash.Habits {
			if dash.Habits[i].ID == habitID {
				dash.Habits = append(dash.Habits[:i], dash.Habits[i+1:]...)
				break
			}
		}
	})

	err := s.client.DeleteHabit(ctx, habitID)
	s.Refresh()
	return err
}

// Redeem issues the write and patches the score only on explicit
// success, so callers can gate UI transitions on the returned error.
func (s *Syncer) Redeem(ctx context.Context, reason string, points int) error {
	_, err := s.client.Redeem(ctx, reason, points)
	if err == nil {
		s.patch(func(dash *models.Dashboard) {
			dash.CurrentScore -= points
		})
	}
	s.Refresh()
	return err
}

// patch applies an optimistic mutation to the in-memory snapshot. A
// nil snapshot (before the first fetch) is left alone.
func (s *Syncer) patch(fn func(*models.Dashboard)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot == nil {
		return
	}
	fn(s.snapshot)
	s.notifyLocked()
}

func (s *Syncer) notifyLocked() {
	if s.onUpdate != nil {
		s.onUpdate(s.snapshot)
	}
}
