package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/wzbwan/ADHD-homeworks/internal/config"
	"github.com/wzbwan/ADHD-homeworks/internal/httpapi"
	"github.com/wzbwan/ADHD-homeworks/internal/wire"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the tracker API server",
		Long:  "Start the HTTP/JSON API server both front ends poll.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = config.Resolve().ListenAddr
			}

			server := httpapi.NewServer(
				wire.TaskService(),
				wire.HabitService(),
				wire.ScoreService(),
				wire.DashboardService(),
			)

			log.Printf("API server running on %s", addr)
			return server.Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to config)")

	return cmd
}
