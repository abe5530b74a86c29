package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show today's summary",
	Long: `Display today's calories, water, macros and weekly workout progress
against your targets, plus your activity streak.

Examples:
  fitsmart dashboard`,
	Aliases: []string{"today", "dash"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, accountID, err := GetApp().EnterApp(cmd.Context())
		if err != nil {
			return err
		}

		d, err := GetApp().GetDashboardHandler.Handle(ctx, accountID)
		if err != nil {
			return fmt.Errorf("failed to load dashboard: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\n  Hi, %s! Today is %s\n", d.Name, d.Date)
		fmt.Fprintln(out, strings.Repeat("═", 50))
		progressLine(out, "Calories", d.CaloriesConsumed, d.Goals.DailyCalories, "kcal", d.CalorieProgress)
		progressLine(out, "Water", d.WaterConsumed, d.Goals.DailyWater, "ml", d.WaterProgress)
		progressLine(out, "Workouts", d.WorkoutsDone, d.Goals.WeeklyWorkouts, "this week", d.WorkoutProgress)
		fmt.Fprintf(out, "  Burned:   %d kcal\n", d.CaloriesBurned)
		fmt.Fprintf(out, "  Glasses:  %d\n", d.WaterGlasses)
		fmt.Fprintf(out, "  Macros:   P %d/%dg  C %d/%dg  F %d/%dg\n",
			d.Macros.Protein, d.Goals.ProteinGoal,
			d.Macros.Carbs, d.Goals.CarbsGoal,
			d.Macros.Fats, d.Goals.FatsGoal,
		)
		fmt.Fprintf(out, "  Meals:    %d logged today\n", d.MealsToday)
		fmt.Fprintf(out, "  Streak:   %d day(s)\n\n", d.Streak)
		return nil
	},
}

// progressLine prints "value/goal unit" with a bar capped at 100%.
func progressLine(out io.Writer, label string, value, goal int, unit string, progress float64) {
	const width = 20
	filled := int(progress / 100 * width)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	fmt.Fprintf(out, "  %-9s %s%s %d/%d %s (%.0f%%)\n",
		label+":", strings.Repeat("█", filled), strings.Repeat("░", width-filled), value, goal, unit, progress)
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
