package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/wzbwan/ADHD-homeworks/internal/cli"
	"github.com/wzbwan/ADHD-homeworks/internal/version"
)

func main() {
	// A missing .env is fine; environment overrides are optional.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "homeworks",
		Short:   "Homeworks - household task, habit, and reward tracker",
		Version: version.String(),
		Long: `Homeworks tracks daily tasks, standing habits, and the point
balance they earn, with rewards redeemed against the score.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.WatchCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.TaskCmd())
	rootCmd.AddCommand(cli.HabitCmd())
	rootCmd.AddCommand(cli.CommonCmd())
	rootCmd.AddCommand(cli.RedeemCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
