package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wzbwan/ADHD-homeworks/internal/client"
	"github.com/wzbwan/ADHD-homeworks/internal/wire"
)

// RedeemCmd returns the redeem command
func RedeemCmd() *cobra.Command {
	var points int

	cmd := &cobra.Command{
		Use:   "redeem [reason]",
		Short: "Spend points on a reward",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reason := strings.Join(args, " ")

			resp, err := wire.Client().Redeem(context.Background(), reason, points)
			if err != nil {
				var apiErr *client.APIError
				if errors.As(err, &apiErr) {
					return fmt.Errorf("redeem rejected: %s", apiErr.Message)
				}
				return fmt.Errorf("failed to redeem: %w", err)
			}

			fmt.Printf("✓ Redeemed %d points for %q (score: %d)\n", points, reason, resp.CurrentScore)
			return nil
		},
	}

	cmd.Flags().IntVarP(&points, "points", "p", 0, "points to spend (required)")
	_ = cmd.MarkFlagRequired("points")

	return cmd
}
