// Package wire provides dependency injection for the tracker.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/wzbwan/ADHD-homeworks/internal/adapters/sqlite"
	"github.com/wzbwan/ADHD-homeworks/internal/app"
	"github.com/wzbwan/ADHD-homeworks/internal/client"
	"github.com/wzbwan/ADHD-homeworks/internal/config"
	"github.com/wzbwan/ADHD-homeworks/internal/db"
	"github.com/wzbwan/ADHD-homeworks/internal/ports/primary"
)

var (
	taskService      primary.TaskService
	habitService     primary.HabitService
	scoreService     primary.ScoreService
	dashboardService primary.DashboardService
	once             sync.Once
)

// TaskService returns the singleton TaskService instance.
func TaskService() primary.TaskService {
	once.Do(initServices)
	return taskService
}

// HabitService returns the singleton HabitService instance.
func HabitService() primary.HabitService {
	once.Do(initServices)
	return habitService
}

// ScoreService returns the singleton ScoreService instance.
func ScoreService() primary.ScoreService {
	once.Do(initServices)
	return scoreService
}

// DashboardService returns the singleton DashboardService instance.
func DashboardService() primary.DashboardService {
	once.Do(initServices)
	return dashboardService
}

// Client returns an API client configured from the resolved config.
// Each call creates a new client (clients are stateless).
func Client() *client.Client {
	return client.NewClient(config.Resolve().APIBase)
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cfg := config.Resolve()
	path := cfg.DatabasePath
	if path == "" {
		var err error
		path, err = db.DefaultPath()
		if err != nil {
			log.Fatalf("failed to resolve database path: %v", err)
		}
	}

	database, err := db.Open(path)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := db.SeedDefaults(database); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	// Create repository adapters (secondary ports)
	taskRepo := sqlite.NewTaskRepository(database)
	commonRepo := sqlite.NewCommonTaskRepository(database)
	habitRepo := sqlite.NewHabitRepository(database)
	logRepo := sqlite.NewHabitLogRepository(database)
	scoreRepo := sqlite.NewScoreRepository(database)
	dashRepo := sqlite.NewDashboardRepository(database)

	// Create services (primary ports implementation)
	taskService = app.NewTaskService(taskRepo, commonRepo)
	habitService = app.NewHabitService(habitRepo, logRepo)
	scoreService = app.NewScoreService(scoreRepo)
	dashboardService = app.NewDashboardService(dashRepo)
}
