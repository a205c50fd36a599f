// Package score contains the pure point arithmetic for the tracker.
// The score is never stored; it is derived from stored facts on every
// read.
package score

// Point values per scoring fact.
const (
	// PointsPerStar is awarded for each star earned on a completed task.
	PointsPerStar = 10

	// PointsPerHabit is awarded for each completed habit log.
	PointsPerHabit = 5
)

// Compute derives the current balance from the three stored aggregates:
// total stars on completed tasks, count of completed habit logs, and
// total redeemed points.
func Compute(starsEarned, completedHabitLogs, redeemedPoints int) int {
	return starsEarned*PointsPerStar + completedHabitLogs*PointsPerHabit - redeemedPoints
}
