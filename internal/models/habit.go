package models

// Habit is a standing daily goal, independent of any date.
type Habit struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IconKey   string `json:"iconKey"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// HabitWithState is a habit joined with its completion flag for one
// date. No log row for that date means not completed.
type HabitWithState struct {
	Habit
	Completed bool `json:"completed"`
}
