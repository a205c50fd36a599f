package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/wzbwan/ADHD-homeworks/internal/models"
)

// renderDashboard formats a snapshot for the terminal.
func renderDashboard(dash *models.Dashboard) string {
	var b strings.Builder

	header := color.New(color.FgHiWhite, color.Bold)
	fmt.Fprintf(&b, "%s  %s\n", header.Sprint("Homeworks"), dash.Date)
	fmt.Fprintf(&b, "Score: %s\n\n", renderScore(dash.CurrentScore))

	b.WriteString(header.Sprint("Tasks"))
	b.WriteString("\n")
	if len(dash.Tasks) == 0 {
		b.WriteString("  (no tasks for this date)\n")
	}
	for _, t := range dash.Tasks {
		fmt.Fprintf(&b, "  %s %s %s%s\n", renderStatus(t.Status), t.Title, renderType(t.Type), renderStars(t))
	}
	b.WriteString("\n")

	b.WriteString(header.Sprint("Habits"))
	b.WriteString("\n")
	if len(dash.Habits) == 0 {
		b.WriteString("  (no habits yet)\n")
	}
	for _, h := range dash.Habits {
		mark := color.New(color.FgHiBlack).Sprint("·")
		if h.Completed {
			mark = color.New(color.FgHiGreen).Sprint("✓")
		}
		fmt.Fprintf(&b, "  %s %s\n", mark, h.Name)
	}

	return b.String()
}

func renderScore(score int) string {
	if score < 0 {
		return color.New(color.FgRed).Sprintf("%d", score)
	}
	return color.New(color.FgHiYellow).Sprintf("%d ★", score)
}

func renderStatus(status string) string {
	if status == models.TaskStatusCompleted {
		return color.New(color.FgHiGreen).Sprint("✓")
	}
	return color.New(color.FgHiBlack).Sprint("·")
}

func renderType(taskType string) string {
	if taskType == models.TaskTypeMandatory {
		return color.New(color.FgHiRed).Sprint("[mandatory]")
	}
	return color.New(color.FgCyan).Sprint("[optional]")
}

func renderStars(t models.Task) string {
	if t.Status != models.TaskStatusCompleted {
		return ""
	}
	return color.New(color.FgHiYellow).Sprintf(" %s", strings.Repeat("★", t.StarsEarned))
}
