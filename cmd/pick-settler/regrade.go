package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var regradeCmd = &cobra.Command{
	Use:   "regrade <pick-id>",
	Short: "Re-grade one pick against fresh scores, overwriting any stored result",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		deps, err := setupDependencies(ctx, nil)
		if err != nil {
			return err
		}
		defer deps.Close()

		pick, err := deps.settlement.Regrade(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %s (%s)\n%s\n", pick.ID, pick.Result, pick.PnL.StringFixed(2), pick.SegmentScore, pick.GradeNote)
		return nil
	},
}
