package account

import (
	"fmt"

	"github.com/felixgeelhaar/fitsmart/adapter/cli"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		_, account, err := app.RequireSession(cmd.Context())
		if err != nil {
			return err
		}

		now := app.Clock.Now()
		sub := account.Subscription()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s <%s>\n", account.Name(), account.Email())
		fmt.Fprintf(out, "  ID:           %s\n", account.ID())
		fmt.Fprintf(out, "  Member since: %s\n", account.CreatedAt().Format("2006-01-02"))
		fmt.Fprintf(out, "  Quiz:         %s\n", doneOrPending(account.HasCompletedQuiz()))
		fmt.Fprintf(out, "  Plan:         %s (%s)\n", sub.Plan, sub.Status)
		if days := account.TrialDaysRemaining(now); days > 0 {
			fmt.Fprintf(out, "  Trial:        %d day(s) left\n", days)
		}
		return nil
	},
}

func doneOrPending(done bool) string {
	if done {
		return "completed"
	}
	return "pending"
}
