package water

import (
	"fmt"

	"github.com/felixgeelhaar/fitsmart/adapter/cli"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's water progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, accountID, err := cli.GetApp().EnterApp(cmd.Context())
		if err != nil {
			return err
		}

		h, err := cli.GetApp().GetHydrationHandler.Handle(ctx, accountID)
		if err != nil {
			return fmt.Errorf("failed to load hydration: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Water:     %d/%d ml (%.0f%%)\n", h.Consumed, h.Goal, h.Progress)
		fmt.Fprintf(out, "Glasses:   %d/%d\n", h.Glasses, h.GoalGlasses)
		fmt.Fprintf(out, "Status:    %s\n", h.Status)
		if h.RemindersEnabled {
			fmt.Fprintln(out, "Reminders: on")
		} else {
			fmt.Fprintln(out, "Reminders: off")
		}
		fmt.Fprintf(out, "Tip:       %s\n", h.Tip)
		if len(h.Log) > 0 {
			fmt.Fprintln(out, "\nToday:")
			for _, e := range h.Log {
				fmt.Fprintf(out, "  %s  %d ml\n", e.Time, e.Amount)
			}
		}
		return nil
	},
}

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Toggle hydration reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, accountID, err := cli.GetApp().EnterApp(cmd.Context())
		if err != nil {
			return err
		}

		enabled, err := cli.GetApp().ToggleRemindersHandler.Handle(ctx, accountID)
		if err != nil {
			return fmt.Errorf("failed to toggle reminders: %w", err)
		}
		if enabled {
			fmt.Fprintln(cmd.OutOrStdout(), "Hydration reminders enabled.")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Hydration reminders disabled.")
		}
		return nil
	},
}
