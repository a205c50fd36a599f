package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wzbwan/ADHD-homeworks/internal/core/dates"
	"github.com/wzbwan/ADHD-homeworks/internal/models"
)

// SeedDefaults populates a default task, habit, and common-task set on
// first run. Each table is seeded only while it is empty, so reruns
// are harmless.
func SeedDefaults(database *sql.DB) error {
	now := time.Now().UTC().Format(time.RFC3339)
	today := dates.Today()

	var taskCount int
	if err := database.QueryRow("SELECT COUNT(*) FROM tasks").Scan(&taskCount); err != nil {
		return fmt.Errorf("seed tasks: %w", err)
	}
	if taskCount == 0 {
		seedTasks := []struct {
			title    string
			taskType string
			maxStars int
		}{
			{"Finish Math Homework", models.TaskTypeMandatory, 3},
			{"Clean Room", models.TaskTypeMandatory, 3},
			{"Practice Piano (30m)", models.TaskTypeMandatory, 3},
			{"Read a Book", models.TaskTypeOptional, 2},
			{"Help with Dishes", models.TaskTypeOptional, 2},
			{"Draw a Picture", models.TaskTypeOptional, 1},
		}
		for _, t := range seedTasks {
			if _, err := database.Exec(
				`INSERT INTO tasks (id, title, type, date, status, stars_earned, max_stars, is_common, created_at, updated_at)
				 VALUES (?, ?, ?, ?, ?, 0, ?, 0, ?, ?)`,
				uuid.NewString(), t.title, t.taskType, today, models.TaskStatusPending, t.maxStars, now, now,
			); err != nil {
				return fmt.Errorf("seed tasks: %w", err)
			}
		}
	}

	var commonCount int
	if err := database.QueryRow("SELECT COUNT(*) FROM common_tasks").Scan(&commonCount); err != nil {
		return fmt.Errorf("seed common tasks: %w", err)
	}
	if commonCount == 0 {
		commons := []string{
			"Fold Laundry",
			"Walk the Dog",
			"Empty Dishwasher",
			"Water Plants",
			"Tidy Desk",
			"Read 20 Pages",
		}
		for _, title := range commons {
			if _, err := database.Exec(
				"INSERT INTO common_tasks (id, title, created_at) VALUES (?, ?, ?)",
				uuid.NewString(), title, now,
			); err != nil {
				return fmt.Errorf("seed common tasks: %w", err)
			}
		}
	}

	var habitCount int
	if err := database.QueryRow("SELECT COUNT(*) FROM habits").Scan(&habitCount); err != nil {
		return fmt.Errorf("seed habits: %w", err)
	}
	if habitCount == 0 {
		habits := []struct{ name, iconKey string }{
			{"Brush Teeth", "smile"},
			{"Drink Water", "droplet"},
			{"Exercise", "activity"},
			{"Sleep Early", "moon"},
			{"Eat Veggies", "carrot"},
			{"No TV", "tv-off"},
			{"Tidy Desk", "monitor"},
			{"Kindness", "heart"},
		}
		for _, h := range habits {
			if _, err := database.Exec(
				"INSERT INTO habits (id, name, icon_key, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
				uuid.NewString(), h.name, h.iconKey, now, now,
			); err != nil {
				return fmt.Errorf("seed habits: %w", err)
			}
		}
	}

	return nil
}
