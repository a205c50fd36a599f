package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wzbwan/ADHD-homeworks/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the dashboard for a date",
		Long:  "Fetch and print one dashboard snapshot. The date defaults to today.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := wire.Client().Dashboard(context.Background(), date)
			if err != nil {
				return fmt.Errorf("failed to fetch dashboard: %w", err)
			}

			fmt.Println(renderDashboard(dash))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date in YYYY-MM-DD format (defaults to today)")

	return cmd
}
