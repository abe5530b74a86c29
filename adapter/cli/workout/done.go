package workout

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/felixgeelhaar/fitsmart/adapter/cli"
	"github.com/felixgeelhaar/fitsmart/internal/tracking/application/commands"
	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a workout as completed",
	Long: `Record a completed workout. Its calories count toward today's burn
and it counts once toward the weekly goal.

Examples:
  fitsmart workout done 6`,
	Aliases: []string{"complete"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, accountID, err := cli.GetApp().EnterApp(cmd.Context())
		if err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid workout id %q", args[0])
		}

		result, err := cli.GetApp().CompleteWorkoutHandler.Handle(ctx, commands.CompleteWorkoutCommand{
			AccountID: accountID,
			WorkoutID: id,
		})
		if errors.Is(err, commands.ErrUnknownWorkout) {
			return fmt.Errorf("workout %d not found, see `fitsmart workout list`", id)
		}
		if err != nil {
			return fmt.Errorf("failed to complete workout: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Completed %s (+%d kcal burned). %d workout(s) done this week.\n",
			result.Workout.Name, result.Entry.CaloriesBurned, result.CompletedCount)
		return nil
	},
}
