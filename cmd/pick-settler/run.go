package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yourusername/pick-settler/internal/repository"
)

var (
	dryRun    bool
	seedFile  string
	printJSON bool
)

func init() {
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Grade picks from --seed in memory without touching the database, caches or webhooks")
	runCmd.Flags().StringVar(&seedFile, "seed", "", "JSON array of picks to load for --dry-run")
	runCmd.Flags().BoolVar(&printJSON, "json", false, "Print the run summary (and settled picks on --dry-run) as JSON")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single settlement sweep",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if dryRun && seedFile == "" {
			return fmt.Errorf("--dry-run requires --seed")
		}
		return loadConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var memory *repository.MemoryPickRepository
		var picks repository.PickRepository
		if dryRun {
			memory = repository.NewMemoryPickRepository()
			f, err := os.Open(seedFile)
			if err != nil {
				return fmt.Errorf("failed to open seed file: %w", err)
			}
			n, err := memory.LoadJSON(f)
			f.Close()
			if err != nil {
				return err
			}
			logger.WithField("picks", n).Info("Loaded seed picks")
			picks = memory
		}

		deps, err := setupDependencies(ctx, picks)
		if err != nil {
			return err
		}
		defer deps.Close()

		stats, err := deps.settlement.Run(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !printJSON {
			fmt.Fprintln(out, stats.String())
			return nil
		}

		report := map[string]interface{}{"summary": stats.Summary()}
		if memory != nil {
			report["picks"] = memory.All()
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}
