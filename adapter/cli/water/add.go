package water

import (
	"fmt"

	"github.com/felixgeelhaar/fitsmart/adapter/cli"
	"github.com/felixgeelhaar/fitsmart/internal/tracking/application/commands"
	"github.com/felixgeelhaar/fitsmart/internal/tracking/domain"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [ml]",
	Short: "Log a drink (default one 250 ml glass)",
	Long: `Log water in milliliters.

Examples:
  fitsmart water add          # one glass
  fitsmart water add 500`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, accountID, err := cli.GetApp().EnterApp(cmd.Context())
		if err != nil {
			return err
		}
		ml, err := amountArg(args)
		if err != nil {
			return err
		}

		record, err := cli.GetApp().AddWaterHandler.Handle(ctx, commands.AddWaterCommand{AccountID: accountID, Amount: ml})
		if err != nil {
			return fmt.Errorf("failed to log water: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Added %d ml. Total: %d ml (%s)\n",
			ml, record.Hydration.Consumed, glasses(domain.Glasses(record.Hydration.Consumed)))
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove [ml]",
	Short: "Subtract water logged by mistake",
	Long: `Lower today's counter. It never goes below zero and the drink log
is left untouched.`,
	Aliases: []string{"rm"},
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, accountID, err := cli.GetApp().EnterApp(cmd.Context())
		if err != nil {
			return err
		}
		ml, err := amountArg(args)
		if err != nil {
			return err
		}

		record, err := cli.GetApp().RemoveWaterHandler.Handle(ctx, commands.RemoveWaterCommand{AccountID: accountID, Amount: ml})
		if err != nil {
			return fmt.Errorf("failed to remove water: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d ml. Total: %d ml\n", ml, record.Hydration.Consumed)
		return nil
	},
}
