package models

// Dashboard is the single read contract both front ends depend on:
// one date's tasks and habit state plus the current derived score.
type Dashboard struct {
	Date         string           `json:"date"`
	Tasks        []Task           `json:"tasks"`
	Habits       []HabitWithState `json:"habits"`
	CurrentScore int              `json:"currentScore"`
}
