// Package task contains the pure business logic for task operations.
// Guards are pure functions that evaluate preconditions without side
// effects.
package task

import (
	"fmt"

	"github.com/wzbwan/ADHD-homeworks/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CreateContext provides context for task creation guards.
type CreateContext struct {
	Title string
	Type  string
}

// CanCreate evaluates whether a task can be created.
// Rules:
// - Title must be non-empty
// - Type must be MANDATORY or OPTIONAL
func CanCreate(ctx CreateContext) GuardResult {
	if ctx.Title == "" {
		return GuardResult{Allowed: false, Reason: "title is required"}
	}
	if !models.ValidTaskType(ctx.Type) {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("invalid task type: %q", ctx.Type),
		}
	}
	return GuardResult{Allowed: true}
}

// ClampStars forces a star rating into [1, maxStars]. Zero and negative
// input become 1; input above the ceiling is capped.
func ClampStars(stars, maxStars int) int {
	if stars < 1 {
		return 1
	}
	if stars > maxStars {
		return maxStars
	}
	return stars
}

// IsCompleted reports whether a task status is terminal. Completion is
// idempotent: a completed task keeps its stored stars.
func IsCompleted(status string) bool {
	return status == models.TaskStatusCompleted
}
