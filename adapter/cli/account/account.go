package account

import (
	"github.com/spf13/cobra"
)

// Cmd is the account command group
var Cmd = &cobra.Command{
	Use:   "account",
	Short: "Register, sign in and sign out",
	Long:  `Create a FitSmart account and manage the session used by the other commands.`,
}

var (
	email    string
	password string
	name     string
)

func init() {
	Cmd.AddCommand(registerCmd)
	Cmd.AddCommand(loginCmd)
	Cmd.AddCommand(logoutCmd)
	Cmd.AddCommand(whoamiCmd)
}
