package workout

import (
	"fmt"
	"strconv"

	"github.com/felixgeelhaar/fitsmart/adapter/cli"
	"github.com/felixgeelhaar/fitsmart/internal/tracking/domain"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the exercises of a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, _, err := cli.GetApp().EnterApp(cmd.Context()); err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid workout id %q", args[0])
		}
		w, ok := domain.WorkoutByID(id)
		if !ok {
			return fmt.Errorf("workout %d not found", id)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s (%d min, %d kcal, %s)\n\n", w.Name, w.Duration, w.Calories, w.Level)
		for i, e := range w.Exercises {
			fmt.Fprintf(out, "  %d. %-28s %d x %s\n", i+1, e.Name, e.Sets, e.Reps)
			if e.VideoURL != "" {
				fmt.Fprintf(out, "     %s\n", e.VideoURL)
			}
		}
		return nil
	},
}
