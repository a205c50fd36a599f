package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wzbwan/ADHD-homeworks/internal/models"
	"github.com/wzbwan/ADHD-homeworks/internal/wire"
)

// TaskCmd returns the task command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage daily tasks",
		Long:  "Create, complete, list, and delete per-date tasks.",
	}

	cmd.AddCommand(taskAddCmd())
	cmd.AddCommand(taskCompleteCmd())
	cmd.AddCommand(taskListCmd())
	cmd.AddCommand(taskDeleteCmd())

	return cmd
}

func taskAddCmd() *cobra.Command {
	var taskType string
	var date string
	var addToCommon bool

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Create a new task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")

			resp, err := wire.Client().CreateTask(context.Background(), title, strings.ToUpper(taskType), date, addToCommon)
			if err != nil {
				return fmt.Errorf("failed to create task: %w", err)
			}

			task := resp.Task
			fmt.Printf("✓ Created task %s: %s (%s, %s)\n", task.ID, task.Title, task.Type, task.Date)
			if addToCommon {
				fmt.Println("  Added to common tasks")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&taskType, "type", "t", models.TaskTypeMandatory, "task type (MANDATORY or OPTIONAL)")
	cmd.Flags().StringVar(&date, "date", "", "date in YYYY-MM-DD format (defaults to today)")
	cmd.Flags().BoolVar(&addToCommon, "common", false, "also save the title as a common task")

	return cmd
}

func taskCompleteCmd() *cobra.Command {
	var stars int

	cmd := &cobra.Command{
		Use:   "complete [id]",
		Short: "Complete a task with a star rating",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.Client().CompleteTask(context.Background(), args[0], stars)
			if err != nil {
				return fmt.Errorf("failed to complete task: %w", err)
			}

			task := resp.Task
			fmt.Printf("✓ Completed %s: %s (%d star(s))\n", task.ID, task.Title, task.StarsEarned)
			fmt.Printf("  Score: %d\n", resp.CurrentScore)
			return nil
		},
	}

	cmd.Flags().IntVarP(&stars, "stars", "s", 1, "stars earned (clamped to the task's maximum)")

	return cmd
}

func taskListCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := wire.Client().Dashboard(context.Background(), date)
			if err != nil {
				return fmt.Errorf("failed to fetch tasks: %w", err)
			}

			if len(dash.Tasks) == 0 {
				fmt.Printf("No tasks for %s\n", dash.Date)
				return nil
			}

			fmt.Printf("Tasks for %s:\n", dash.Date)
			for _, t := range dash.Tasks {
				fmt.Printf("  %s %s %s%s  (%s)\n", renderStatus(t.Status), t.Title, renderType(t.Type), renderStars(t), t.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date in YYYY-MM-DD format (defaults to today)")

	return cmd
}

func taskDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.Client().DeleteTask(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete task: %w", err)
			}

			fmt.Printf("✓ Deleted task %s (score: %d)\n", args[0], resp.CurrentScore)
			return nil
		},
	}

	return cmd
}
