package meal

import (
	"fmt"
	"io"
	"strings"

	"github.com/felixgeelhaar/fitsmart/internal/meals/domain"
	"github.com/spf13/cobra"
)

// Cmd is the meal command group.
var Cmd = &cobra.Command{
	Use:     "meal",
	Short:   "Log meals and browse suggestions",
	Long:    `Log what you eat, get today's meal suggestions and browse the catalog.`,
	Aliases: []string{"meals", "m"},
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(suggestCmd)
	Cmd.AddCommand(logCmd)
	Cmd.AddCommand(catalogCmd)
	Cmd.AddCommand(showCmd)
}

func printSuggestion(out io.Writer, s domain.Suggestion) {
	fmt.Fprintf(out, "  %-12s %-40s %4d kcal  P%d C%d F%d  %d min  R$ %.2f\n",
		s.ID, s.Name, s.Calories, s.Protein, s.Carbs, s.Fats, s.PrepMinutes, float64(s.CostCents)/100)
}

func printDetails(out io.Writer, s domain.Suggestion) {
	fmt.Fprintf(out, "%s (%s, %s)\n", s.Name, s.ID, s.Slot)
	fmt.Fprintf(out, "%d kcal  protein %dg  carbs %dg  fats %dg\n", s.Calories, s.Protein, s.Carbs, s.Fats)
	fmt.Fprintf(out, "Prep %d min, about R$ %.2f\n", s.PrepMinutes, float64(s.CostCents)/100)
	if len(s.Tags) > 0 {
		tags := make([]string, len(s.Tags))
		for i, t := range s.Tags {
			tags[i] = string(t)
		}
		fmt.Fprintf(out, "Tags: %s\n", strings.Join(tags, ", "))
	}
	fmt.Fprintln(out, "\nIngredients:")
	for _, i := range s.Ingredients {
		fmt.Fprintf(out, "  - %s\n", i)
	}
	fmt.Fprintln(out, "\nPreparation:")
	for n, step := range s.Preparation {
		fmt.Fprintf(out, "  %d. %s\n", n+1, step)
	}
}
