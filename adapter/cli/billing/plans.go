package billing

import (
	"fmt"

	"github.com/felixgeelhaar/fitsmart/adapter/cli"
	"github.com/spf13/cobra"
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List the premium plans",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListOffersHandler == nil {
			return cli.ErrNotInitialized
		}

		out := cmd.OutOrStdout()
		for _, o := range app.ListOffersHandler.Handle(cmd.Context()) {
			fmt.Fprintf(out, "%s (%s): %s %s", o.Name, o.Plan, o.Price(), o.Period)
			if o.Badge != "" {
				fmt.Fprintf(out, "  [%s]", o.Badge)
			}
			fmt.Fprintln(out)
			for _, f := range o.Features {
				fmt.Fprintf(out, "  - %s\n", f)
			}
		}
		return nil
	},
}
