package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wzbwan/ADHD-homeworks/internal/wire"
)

// CommonCmd returns the common command
func CommonCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "common",
		Short: "Manage common task templates",
		Long:  "List, delete, and apply the reusable task title templates.",
	}

	cmd.AddCommand(commonListCmd())
	cmd.AddCommand(commonDeleteCmd())
	cmd.AddCommand(commonApplyCmd())

	return cmd
}

func commonListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List common task titles, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			titles, err := wire.Client().CommonTasks(context.Background())
			if err != nil {
				return fmt.Errorf("failed to fetch common tasks: %w", err)
			}

			if len(titles) == 0 {
				fmt.Println("No common tasks yet")
				return nil
			}

			for _, title := range titles {
				fmt.Printf("  - %s\n", title)
			}
			return nil
		},
	}

	return cmd
}

func commonDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm [title]",
		Short: "Delete a common task template by title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.Client().DeleteCommonTask(context.Background(), args[0]); err != nil {
				return fmt.Errorf("failed to delete common task: %w", err)
			}

			fmt.Printf("✓ Deleted common task %q\n", args[0])
			return nil
		},
	}

	return cmd
}

func commonApplyCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "apply [title]...",
		Short: "Create mandatory tasks from common titles",
		Long: `Create one mandatory task per given title. With no arguments,
applies every common task title.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			titles := args
			if len(titles) == 0 {
				var err error
				titles, err = wire.Client().CommonTasks(ctx)
				if err != nil {
					return fmt.Errorf("failed to fetch common tasks: %w", err)
				}
				if len(titles) == 0 {
					return fmt.Errorf("no common tasks to apply")
				}
			}

			resp, err := wire.Client().AddTasksFromCommon(ctx, titles, date)
			if err != nil {
				return fmt.Errorf("failed to apply common tasks: %w", err)
			}

			fmt.Printf("✓ Created %d task(s):\n", len(resp.Tasks))
			for _, t := range resp.Tasks {
				fmt.Printf("  - %s (%s)\n", t.Title, t.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date in YYYY-MM-DD format (defaults to today)")

	return cmd
}
