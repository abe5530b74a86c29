package water

import (
	"fmt"
	"strconv"

	"github.com/felixgeelhaar/fitsmart/internal/tracking/domain"
	"github.com/spf13/cobra"
)

// Cmd is the water command group.
var Cmd = &cobra.Command{
	Use:     "water",
	Short:   "Track water intake",
	Long:    `Log drinks, correct mistakes and check progress against your daily water goal.`,
	Aliases: []string{"hydration"},
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(removeCmd)
	Cmd.AddCommand(statusCmd)
	Cmd.AddCommand(remindersCmd)
}

// amountArg parses an optional ml argument, defaulting to one glass.
func amountArg(args []string) (int, error) {
	if len(args) == 0 {
		return domain.GlassSize, nil
	}
	ml, err := strconv.Atoi(args[0])
	if err != nil || ml <= 0 {
		return 0, fmt.Errorf("invalid amount %q, expected a positive number of ml", args[0])
	}
	return ml, nil
}

func glasses(n int) string {
	if n == 1 {
		return "1 glass"
	}
	return fmt.Sprintf("%d glasses", n)
}
