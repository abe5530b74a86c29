package meal

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/fitsmart/adapter/cli"
	mealCommands "github.com/felixgeelhaar/fitsmart/internal/meals/application/commands"
	"github.com/felixgeelhaar/fitsmart/internal/meals/domain"
	"github.com/spf13/cobra"
)

var (
	logTime     string
	catalogSlot string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Show today's meal suggestions",
	Long: `Show today's breakfast, lunch and dinner picks, filtered by the
dietary restrictions and allergies from your quiz. The picks rotate daily.

Examples:
  fitsmart meal suggest
  fitsmart meal log lunch-4`,
	Aliases: []string{"suggestions"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, accountID, err := cli.GetApp().EnterApp(cmd.Context())
		if err != nil {
			return err
		}

		dto, err := cli.GetApp().GetDailySuggestionsHandler.Handle(ctx, accountID)
		if err != nil {
			return fmt.Errorf("failed to load suggestions: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Suggestions for %s\n", dto.Date)
		var slot domain.Slot
		for _, s := range dto.Suggestions {
			if s.Slot != slot {
				slot = s.Slot
				fmt.Fprintf(out, "\n%s\n", slot)
			}
			printSuggestion(out, s)
		}
		return nil
	},
}

var logCmd = &cobra.Command{
	Use:   "log <suggestion-id>",
	Short: "Log a catalog suggestion as a meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, accountID, err := cli.GetApp().EnterApp(cmd.Context())
		if err != nil {
			return err
		}

		entry, err := cli.GetApp().LogSuggestionHandler.Handle(ctx, mealCommands.LogSuggestionCommand{
			AccountID:    accountID,
			SuggestionID: args[0],
			Time:         logTime,
		})
		if errors.Is(err, domain.ErrSuggestionNotFound) {
			return fmt.Errorf("no suggestion %q, see `fitsmart meal catalog`", args[0])
		}
		if err != nil {
			return fmt.Errorf("failed to log meal: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Logged %s at %s (%d kcal)\n", entry.Name, entry.Time, entry.Calories)
		return nil
	},
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse the meal catalog",
	Long: `List every meal in the catalog, or one slot with --slot
(breakfast, lunch, dinner, snack).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CatalogHandler == nil {
			return cli.ErrNotInitialized
		}

		slots := []domain.Slot{domain.SlotBreakfast, domain.SlotLunch, domain.SlotDinner, domain.SlotSnack}
		if catalogSlot != "" {
			slots = []domain.Slot{domain.Slot(catalogSlot)}
		}

		out := cmd.OutOrStdout()
		for _, slot := range slots {
			items, err := app.CatalogHandler.BySlot(cmd.Context(), slot)
			if err != nil {
				return fmt.Errorf("%w: %q", err, slot)
			}
			fmt.Fprintf(out, "%s\n", slot)
			for _, s := range items {
				printSuggestion(out, s)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <suggestion-id>",
	Short: "Show a catalog meal with its recipe",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CatalogHandler == nil {
			return cli.ErrNotInitialized
		}

		s, err := app.CatalogHandler.ByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printDetails(cmd.OutOrStdout(), *s)
		return nil
	},
}

func init() {
	logCmd.Flags().StringVar(&logTime, "time", "", "time eaten as HH:MM (default now)")
	catalogCmd.Flags().StringVar(&catalogSlot, "slot", "", "only list one slot")
}
