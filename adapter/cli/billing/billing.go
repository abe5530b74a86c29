package billing

import "github.com/spf13/cobra"

// Cmd is the billing command group.
var Cmd = &cobra.Command{
	Use:   "billing",
	Short: "Plans, subscription and trial status",
	Long:  `List the premium plans, subscribe to one, and inspect your subscription.`,
}

func init() {
	Cmd.AddCommand(plansCmd)
	Cmd.AddCommand(subscribeCmd)
	Cmd.AddCommand(statusCmd)
}
