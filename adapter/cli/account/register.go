package account

import (
	"fmt"

	"github.com/felixgeelhaar/fitsmart/adapter/cli"
	"github.com/felixgeelhaar/fitsmart/internal/identity/application/commands"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account with a 3-day free trial",
	Long: `Create an account. Registration does not sign you in.

Examples:
  fitsmart account register --email ana@example.com --password secret --name "Ana Souza"`,
	Aliases: []string{"signup"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.RegisterHandler == nil {
			return cli.ErrNotInitialized
		}

		account, err := app.RegisterHandler.Handle(cmd.Context(), commands.RegisterCommand{
			Email:    email,
			Password: password,
			Name:     name,
		})
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		sub := account.Subscription()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Welcome, %s! Your account is ready.\n", account.Name().FirstName())
		fmt.Fprintf(out, "  Free trial until: %s\n", sub.ExpiryDate.Format("2006-01-02 15:04 MST"))
		fmt.Fprintln(out, "Next: fitsmart account login")
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVarP(&email, "email", "e", "", "account email (required)")
	registerCmd.Flags().StringVarP(&password, "password", "p", "", "password, at least 6 characters (required)")
	registerCmd.Flags().StringVarP(&name, "name", "n", "", "display name (required)")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	_ = registerCmd.MarkFlagRequired("name")
}
