package meal

import (
	"fmt"

	"github.com/felixgeelhaar/fitsmart/adapter/cli"
	"github.com/felixgeelhaar/fitsmart/internal/tracking/application/commands"
	"github.com/felixgeelhaar/fitsmart/internal/tracking/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	mealName     string
	mealTime     string
	mealCalories int
	mealProtein  int
	mealCarbs    int
	mealFats     int
	mealItems    []string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal",
	Long: `Log a meal for today. The time defaults to now.

Examples:
  fitsmart meal add --name "Omelette" --calories 320 --protein 22 --carbs 4 --fats 24
  fitsmart meal add --name "Salad" --time 12:30 --calories 250 --item lettuce --item tomato`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, accountID, err := cli.GetApp().EnterApp(cmd.Context())
		if err != nil {
			return err
		}

		entry, err := cli.GetApp().AddMealHandler.Handle(ctx, commands.AddMealCommand{
			AccountID: accountID,
			Meal: domain.MealInput{
				Name:     mealName,
				Time:     mealTime,
				Calories: mealCalories,
				Protein:  mealProtein,
				Carbs:    mealCarbs,
				Fats:     mealFats,
				Items:    mealItems,
			},
		})
		if err != nil {
			return fmt.Errorf("failed to log meal: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Logged %s at %s (%d kcal)\n", entry.Name, entry.Time, entry.Calories)
		fmt.Fprintf(cmd.OutOrStdout(), "  ID: %s\n", entry.ID)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List today's meals",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, accountID, err := cli.GetApp().EnterApp(cmd.Context())
		if err != nil {
			return err
		}

		today, err := cli.GetApp().TodayMealsHandler.Handle(ctx, accountID)
		if err != nil {
			return fmt.Errorf("failed to list meals: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(today.Meals) == 0 {
			fmt.Fprintln(out, "No meals logged today. Add one with: fitsmart meal add --name ...")
			return nil
		}
		fmt.Fprintf(out, "Meals on %s:\n\n", today.Date)
		for _, m := range today.Meals {
			fmt.Fprintf(out, "  %s  %-30s %4d kcal  %s\n", m.Time, m.Name, m.Calories, m.ID)
		}
		fmt.Fprintf(out, "\nTotal: %d kcal  P%dg C%dg F%dg\n",
			today.Calories, today.Macros.Protein, today.Macros.Carbs, today.Macros.Fats)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Short:   "Delete a logged meal",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, accountID, err := cli.GetApp().EnterApp(cmd.Context())
		if err != nil {
			return err
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid meal id: %w", err)
		}

		if err := cli.GetApp().DeleteMealHandler.Handle(ctx, commands.DeleteMealCommand{AccountID: accountID, MealID: id}); err != nil {
			return fmt.Errorf("failed to delete meal: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Meal deleted.")
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&mealName, "name", "", "meal name (required)")
	addCmd.Flags().StringVar(&mealTime, "time", "", "time eaten as HH:MM (default now)")
	addCmd.Flags().IntVar(&mealCalories, "calories", 0, "calories in kcal")
	addCmd.Flags().IntVar(&mealProtein, "protein", 0, "protein in grams")
	addCmd.Flags().IntVar(&mealCarbs, "carbs", 0, "carbohydrates in grams")
	addCmd.Flags().IntVar(&mealFats, "fats", 0, "fats in grams")
	addCmd.Flags().StringArrayVar(&mealItems, "item", nil, "food item (repeatable)")
	_ = addCmd.MarkFlagRequired("name")
}
