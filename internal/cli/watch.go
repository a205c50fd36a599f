package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wzbwan/ADHD-homeworks/internal/client"
	"github.com/wzbwan/ADHD-homeworks/internal/config"
	"github.com/wzbwan/ADHD-homeworks/internal/models"
	"github.com/wzbwan/ADHD-homeworks/internal/wire"
)

// WatchCmd returns the watch command
func WatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the dashboard, refreshing every poll tick",
		Long: `Poll the dashboard and redraw it on every change.
The first fetch is foreground; later fetches run in the background
and silently retry on failure.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Resolve()

			syncer := client.NewSyncer(wire.Client(), cfg.PollInterval(), func(dash *models.Dashboard) {
				// Clear and redraw on every snapshot change.
				fmt.Print("\033[H\033[2J")
				fmt.Println(renderDashboard(dash))
			})

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			fmt.Println("Loading...")
			if err := syncer.Run(ctx); err != context.Canceled {
				return err
			}
			return nil
		},
	}

	return cmd
}
