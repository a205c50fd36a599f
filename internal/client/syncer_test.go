package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wzbwan/ADHD-homeworks/internal/models"
)

func testSnapshot() *models.Dashboard {
	return &models.Dashboard{
		Date: "2024-03-15",
		Tasks: []models.Task{
			{ID: "task-1", Title: "Clean Room", Type: models.TaskTypeMandatory, Status: models.TaskStatusPending, MaxStars: 3},
		},
		Habits: []models.HabitWithState{
			{Habit: models.Habit{ID: "habit-1", Name: "Brush Teeth"}, Completed: false},
		},
		CurrentScore: 0,
	}
}

func TestSyncerApply(t *testing.T) {
	var updates int
	s := NewSyncer(NewClient("http://localhost:0"), 0, func(*models.Dashboard) { updates++ })

	if s.State() != StateInitialLoad {
		t.Fatalf("expected INITIAL_LOAD before first fetch, got %d", s.State())
	}

	s.apply(1, testSnapshot())

	if s.State() != StateReady {
		t.Errorf("expected READY after apply, got %d", s.State())
	}
	if s.Snapshot() == nil || s.Snapshot().Date != "2024-03-15" {
		t.Errorf("unexpected snapshot: %+v", s.Snapshot())
	}
	if updates != 1 {
		t.Errorf("expected 1 update callback, got %d", updates)
	}
}

func TestSyncerApply_DiscardsStaleResponse(t *testing.T) {
	s := NewSyncer(NewClient("http://localhost:0"), 0, nil)

	fresh := testSnapshot()
	fresh.CurrentScore = 25
	s.apply(2, fresh)

	stale := testSnapshot()
	stale.CurrentScore = 0
	s.apply(1, stale)

	if s.Snapshot().CurrentScore != 25 {
		t.Errorf("stale response overwrote newer snapshot: score %d", s.Snapshot().CurrentScore)
	}
}

func TestSyncerFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"date": "2024-03-15", "tasks": [], "habits": [], "currentScore": 5}`))
	}))
	defer srv.Close()

	s := NewSyncer(NewClient(srv.URL), 0, nil)
	s.fetch(context.Background())

	if s.State() != StateReady {
		t.Errorf("expected READY after fetch, got %d", s.State())
	}
	if s.Snapshot().CurrentScore != 5 {
		t.Errorf("unexpected score %d", s.Snapshot().CurrentScore)
	}
}

func TestSyncerFetch_FailureLeavesState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	s := NewSyncer(NewClient(srv.URL), 0, nil)
	s.fetch(context.Background())

	if s.State() != StateInitialLoad {
		t.Errorf("expected INITIAL_LOAD after failed first fetch, got %d", s.State())
	}
	if s.Snapshot() != nil {
		t.Errorf("expected nil snapshot after failed fetch, got %+v", s.Snapshot())
	}
}

func TestToggleHabit_OptimisticPatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": true, "currentScore": 5}`))
	}))
	defer srv.Close()

	s := NewSyncer(NewClient(srv.URL), 0, nil)
	s.apply(1, testSnapshot())

	if err := s.ToggleHabit(context.Background(), "habit-1", true); err != nil {
		t.Fatalf("ToggleHabit failed: %v", err)
	}

	snap := s.Snapshot()
	if !snap.Habits[0].Completed {
		t.Error("expected optimistic completed flag")
	}
	if snap.CurrentScore != 5 {
		t.Errorf("expected optimistic score bump to 5, got %d", snap.CurrentScore)
	}
	select {
	case <-s.refreshCh:
	default:
		t.Error("expected a pending refresh after the write")
	}
}

func TestToggleHabit_SameValueDoesNotDoubleCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": true, "currentScore": 5}`))
	}))
	defer srv.Close()

	s := NewSyncer(NewClient(srv.URL), 0, nil)
	snap := testSnapshot()
	snap.Habits[0].Completed = true
	snap.CurrentScore = 5
	s.apply(1, snap)

	if err := s.ToggleHabit(context.Background(), "habit-1", true); err != nil {
		t.Fatalf("ToggleHabit failed: %v", err)
	}

	if s.Snapshot().CurrentScore != 5 {
		t.Errorf("re-toggling to the same value changed the score: %d", s.Snapshot().CurrentScore)
	}
}

func TestCompleteTask_OptimisticPatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"task": {"id": "task-1"}, "currentScore": 30}`))
	}))
	defer srv.Close()

	s := NewSyncer(NewClient(srv.URL), 0, nil)
	s.apply(1, testSnapshot())

	// Stars above maxStars are clamped in the optimistic patch the
	// same way the server clamps them.
	if err := s.CompleteTask(context.Background(), "task-1", 9); err != nil {
		t.Fatalf("CompleteTask failed: %v", err)
	}

	snap := s.Snapshot()
	if snap.Tasks[0].Status != models.TaskStatusCompleted {
		t.Error("expected optimistic COMPLETED status")
	}
	if snap.Tasks[0].StarsEarned != 3 {
		t.Errorf("expected clamped stars 3, got %d", snap.Tasks[0].StarsEarned)
	}
	if snap.CurrentScore != 30 {
		t.Errorf("expected optimistic score 30, got %d", snap.CurrentScore)
	}
}

func TestRedeem_PatchesOnlyOnSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "insufficient balance"}`))
	}))
	defer srv.Close()

	s := NewSyncer(NewClient(srv.URL), 0, nil)
	snap := testSnapshot()
	snap.CurrentScore = 5
	s.apply(1, snap)

	if err := s.Redeem(context.Background(), "movie night", 10); err == nil {
		t.Fatal("expected redeem to fail")
	}

	if s.Snapshot().CurrentScore != 5 {
		t.Errorf("failed redeem changed the score: %d", s.Snapshot().CurrentScore)
	}
}

func TestRefreshCoalesces(t *testing.T) {
	s := NewSyncer(NewClient("http://localhost:0"), 0, nil)

	s.Refresh()
	s.Refresh()
	s.Refresh()

	<-s.refreshCh
	select {
	case <-s.refreshCh:
		t.Error("expected refresh requests to coalesce into one")
	default:
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"date": "2024-03-15", "tasks": [], "habits": [], "currentScore": 0}`))
	}))
	defer srv.Close()

	s := NewSyncer(NewClient(srv.URL), 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}

	if s.State() != StateReady {
		t.Errorf("expected READY after polling, got %d", s.State())
	}
}
