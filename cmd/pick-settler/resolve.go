package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yourusername/pick-settler/internal/models"
	"github.com/yourusername/pick-settler/internal/teams"
)

var resolveSport string

func init() {
	resolveCmd.Flags().StringVar(&resolveSport, "sport", "", "Restrict suggestions to a sport (NBA, NFL, NCAAB, NCAAF, NHL, MLB)")
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <team name>",
	Short: "Show how a team name resolves to its canonical form",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw := strings.Join(args, " ")
		out := cmd.OutOrStdout()

		if resolveSport == "" {
			fmt.Fprintf(out, "%q -> %q\n", raw, teams.Resolve(raw))
			return nil
		}

		sport, ok := models.ParseSport(resolveSport)
		if !ok {
			return fmt.Errorf("unknown sport %q", resolveSport)
		}
		resolved := teams.ResolveForSport(sport, raw)
		fmt.Fprintf(out, "%q -> %q\n", raw, resolved)
		if suggestions := teams.Suggest(sport, raw, 5); len(suggestions) > 0 {
			fmt.Fprintf(out, "closest: %s\n", strings.Join(suggestions, ", "))
		}
		return nil
	},
}
