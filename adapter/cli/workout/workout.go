package workout

import "github.com/spf13/cobra"

// Cmd is the workout command group.
var Cmd = &cobra.Command{
	Use:     "workout",
	Short:   "Browse and complete workouts",
	Long:    `List the workouts for your training location and mark them as done.`,
	Aliases: []string{"workouts", "w"},
}

func init() {
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(doneCmd)
}
