package cli

import (
	"fmt"

	"github.com/felixgeelhaar/fitsmart/pkg/observability"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:     "health",
	Short:   "Check the store and event broker",
	Aliases: []string{"doctor"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.Health == nil {
			return ErrNotInitialized
		}

		results := app.Health.Check(cmd.Context())
		out := cmd.OutOrStdout()
		for _, r := range results {
			fmt.Fprintf(out, "%-8s %-10s %s (%dms)\n", r.Component, r.Status, r.Message, r.Duration.Milliseconds())
		}

		overall := observability.OverallStatus(results)
		fmt.Fprintf(out, "overall: %s\n", overall)
		if overall == observability.HealthStatusUnhealthy {
			return fmt.Errorf("fitsmart is unhealthy")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
