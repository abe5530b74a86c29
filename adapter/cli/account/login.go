package account

import (
	"fmt"

	"github.com/felixgeelhaar/fitsmart/adapter/cli"
	"github.com/felixgeelhaar/fitsmart/internal/identity/application/commands"
	"github.com/felixgeelhaar/fitsmart/internal/identity/domain"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in",
	Long: `Sign in and tell you what to do next.

Examples:
  fitsmart account login --email ana@example.com --password secret`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.LoginHandler == nil {
			return cli.ErrNotInitialized
		}

		account, err := app.LoginHandler.Handle(cmd.Context(), commands.LoginCommand{
			Email:    email,
			Password: password,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Signed in as %s.\n", account.Email())
		switch domain.StageFor(account, app.Clock.Now()) {
		case domain.StageQuiz:
			fmt.Fprintln(out, "Next: fitsmart quiz")
		case domain.StageSubscription:
			fmt.Fprintln(out, "Your trial has ended. Next: fitsmart billing subscribe")
		default:
			fmt.Fprintln(out, "Next: fitsmart dashboard")
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.LogoutHandler == nil {
			return cli.ErrNotInitialized
		}
		if err := app.LogoutHandler.Handle(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Signed out.")
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&email, "email", "e", "", "account email (required)")
	loginCmd.Flags().StringVarP(&password, "password", "p", "", "password (required)")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}
