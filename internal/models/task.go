// Package models contains domain types for the household tracker.
// SQL persistence lives in internal/adapters/sqlite/*.go
package models

// Task represents a single-day actionable item. A task is created
// PENDING with zero stars; completing it freezes starsEarned in
// [1, maxStars].
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	StarsEarned int    `json:"starsEarned"`
	MaxStars    int    `json:"maxStars"`
	IsCommon    bool   `json:"isCommon"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// Task type constants
const (
	TaskTypeMandatory = "MANDATORY"
	TaskTypeOptional  = "OPTIONAL"
)

// Task status constants
const (
	TaskStatusPending   = "PENDING"
	TaskStatusCompleted = "COMPLETED"
)

// DefaultMaxStars is the star ceiling for tasks created through the API.
const DefaultMaxStars = 3

// ValidTaskType reports whether t is a known task type.
func ValidTaskType(t string) bool {
	return t == TaskTypeMandatory || t == TaskTypeOptional
}
