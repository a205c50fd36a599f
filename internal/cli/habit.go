package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wzbwan/ADHD-homeworks/internal/wire"
)

// HabitCmd returns the habit command
func HabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Manage daily habits",
		Long:  "Create, toggle, list, and delete standing daily habits.",
	}

	cmd.AddCommand(habitAddCmd())
	cmd.AddCommand(habitToggleCmd())
	cmd.AddCommand(habitListCmd())
	cmd.AddCommand(habitDeleteCmd())

	return cmd
}

func habitAddCmd() *cobra.Command {
	var iconKey string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a new habit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")

			habit, err := wire.Client().AddHabit(context.Background(), name, iconKey)
			if err != nil {
				return fmt.Errorf("failed to create habit: %w", err)
			}

			fmt.Printf("✓ Created habit %s: %s\n", habit.ID, habit.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&iconKey, "icon", "star", "icon key for the habit")

	return cmd
}

func habitToggleCmd() *cobra.Command {
	var date string
	var off bool

	cmd := &cobra.Command{
		Use:   "toggle [id]",
		Short: "Mark a habit done (or not) for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.Client().ToggleHabit(context.Background(), args[0], !off, date)
			if err != nil {
				return fmt.Errorf("failed to toggle habit: %w", err)
			}

			state := "done"
			if off {
				state = "not done"
			}
			fmt.Printf("✓ Habit %s marked %s (score: %d)\n", args[0], state, resp.CurrentScore)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date in YYYY-MM-DD format (defaults to today)")
	cmd.Flags().BoolVar(&off, "off", false, "mark the habit as not done")

	return cmd
}

func habitListCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits with their completion state",
		RunE: func(cmd *cobra.Command, args []string) error {
			habits, err := wire.Client().Habits(context.Background(), date)
			if err != nil {
				return fmt.Errorf("failed to fetch habits: %w", err)
			}

			if len(habits) == 0 {
				fmt.Println("No habits yet")
				return nil
			}

			for _, h := range habits {
				mark := "·"
				if h.Completed {
					mark = "✓"
				}
				fmt.Printf("  %s %s  (%s)\n", mark, h.Name, h.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date in YYYY-MM-DD format (defaults to today)")

	return cmd
}

func habitDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a habit and its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Client().DeleteHabit(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete habit: %w", err)
			}

			fmt.Printf("✓ Deleted habit %s\n", args[0])
			return nil
		},
	}

	return cmd
}
