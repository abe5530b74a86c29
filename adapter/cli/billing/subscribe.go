package billing

import (
	"fmt"

	"github.com/felixgeelhaar/fitsmart/adapter/cli"
	"github.com/felixgeelhaar/fitsmart/internal/billing/application/commands"
	"github.com/felixgeelhaar/fitsmart/internal/billing/domain"
	"github.com/spf13/cobra"
)

var (
	plan    string
	payment domain.PaymentInfo
)

var subscribeCmd = &cobra.Command{
	Use:   "subscribe",
	Short: "Subscribe to a premium plan",
	Long: `Activate a monthly or annual plan. Payment is simulated: the card is
validated and stored, but nothing is charged.

Examples:
  fitsmart billing subscribe --plan annual --card "4111 1111 1111 1111" \
    --card-name "Ana Souza" --expiry 12/29 --cvv 123`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		ctx, account, err := app.RequireSession(cmd.Context())
		if err != nil {
			return err
		}
		if app.ActivateSubscriptionHandler == nil {
			return cli.ErrNotInitialized
		}

		result, err := app.ActivateSubscriptionHandler.Handle(ctx, commands.ActivateSubscriptionCommand{
			AccountID: account.ID(),
			Plan:      plan,
			Payment:   payment,
		})
		if err != nil {
			return fmt.Errorf("subscription failed: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Subscribed to %s (%s %s).\n", result.Offer.Name, result.Offer.Price(), result.Offer.Period)
		fmt.Fprintf(out, "  Card:    %s\n", result.MaskedCard)
		fmt.Fprintf(out, "  Renews:  %s\n", result.Subscription.ExpiryDate.Format("2006-01-02"))
		return nil
	},
}

func init() {
	f := subscribeCmd.Flags()
	f.StringVar(&plan, "plan", "", "monthly or annual (required)")
	f.StringVar(&payment.CardNumber, "card", "", "16-digit card number (required)")
	f.StringVar(&payment.CardName, "card-name", "", "name on the card (required)")
	f.StringVar(&payment.ExpiryDate, "expiry", "", "card expiry as MM/YY (required)")
	f.StringVar(&payment.CVV, "cvv", "", "3-digit security code (required)")
	for _, name := range []string{"plan", "card", "card-name", "expiry", "cvv"} {
		_ = subscribeCmd.MarkFlagRequired(name)
	}
}
