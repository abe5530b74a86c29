package billing

import (
	"fmt"

	"github.com/felixgeelhaar/fitsmart/adapter/cli"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show subscription and trial status",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		ctx, account, err := app.RequireSession(cmd.Context())
		if err != nil {
			return err
		}
		if app.GetSubscriptionStatusHandler == nil {
			return cli.ErrNotInitialized
		}

		s, err := app.GetSubscriptionStatusHandler.Handle(ctx, account.ID())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Plan:    %s\n", s.Plan)
		fmt.Fprintf(out, "Status:  %s\n", s.Status)
		fmt.Fprintf(out, "Started: %s\n", s.StartDate.Format("2006-01-02"))
		fmt.Fprintf(out, "Expires: %s\n", s.ExpiryDate.Format("2006-01-02 15:04 MST"))
		if s.TrialEndsAt != nil {
			if s.TrialExpired {
				fmt.Fprintln(out, "Trial:   expired")
			} else {
				fmt.Fprintf(out, "Trial:   %d day(s) left\n", s.DaysRemaining)
			}
		}
		if s.CanAccessApp {
			fmt.Fprintln(out, "Access:  yes")
		} else if !s.QuizCompleted {
			fmt.Fprintln(out, "Access:  finish the quiz first")
		} else {
			fmt.Fprintln(out, "Access:  no, subscribe with `fitsmart billing subscribe`")
		}
		return nil
	},
}
