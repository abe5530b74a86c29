package workout

import (
	"fmt"

	"github.com/felixgeelhaar/fitsmart/adapter/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List workouts for your location",
	Long: `List the workouts offered for the location chosen in the quiz,
with your weekly progress.

Examples:
  fitsmart workout list`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, accountID, err := cli.GetApp().EnterApp(cmd.Context())
		if err != nil {
			return err
		}

		plan, err := cli.GetApp().ListWorkoutsHandler.Handle(ctx, accountID)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Workouts (%s): %d/%d this week (%.0f%%)\n\n",
			plan.Location, plan.CompletedCount, plan.WeeklyGoal, plan.WeeklyProgress)
		for _, w := range plan.Workouts {
			mark := "[ ]"
			if w.Completed {
				mark = "[x]"
			}
			fmt.Fprintf(out, "  %s %2d  %-24s %3d min  %3d kcal  %s\n",
				mark, w.ID, w.Name, w.Duration, w.Calories, w.Level)
		}
		if plan.CaloriesBurned > 0 {
			fmt.Fprintf(out, "\nBurned today: %d kcal\n", plan.CaloriesBurned)
		}
		return nil
	},
}
