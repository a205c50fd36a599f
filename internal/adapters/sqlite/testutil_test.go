// Package sqlite_test contains integration tests for SQLite
// repositories.
//
// This file is the single point where the database schema is loaded
// for tests. All test setup uses db.GetSchemaSQL() so tests run
// against the authoritative schema; do not hardcode CREATE TABLE
// statements in test files.
package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/wzbwan/ADHD-homeworks/internal/db"
	"github.com/wzbwan/ADHD-homeworks/internal/models"
	"github.com/wzbwan/ADHD-homeworks/internal/ports/secondary"
)

// setupTestDB creates an in-memory database with the authoritative
// schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

func testStamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// seedTask builds a pending task record with sensible defaults.
func seedTask(id, title, taskType, date string) *secondary.TaskRecord {
	now := testStamp()
	return &secondary.TaskRecord{
		ID:          id,
		Title:       title,
		Type:        taskType,
		Date:        date,
		Status:      models.TaskStatusPending,
		StarsEarned: 0,
		MaxStars:    models.DefaultMaxStars,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// seedHabit inserts a habit row directly and returns its id.
func seedHabit(t *testing.T, database *sql.DB, id, name string) string {
	t.Helper()
	now := testStamp()
	_, err := database.Exec(
		"INSERT INTO habits (id, name, icon_key, created_at, updated_at) VALUES (?, ?, 'star', ?, ?)",
		id, name, now, now,
	)
	if err != nil {
		t.Fatalf("failed to seed habit: %v", err)
	}
	return id
}

func testCtx() context.Context {
	return context.Background()
}
