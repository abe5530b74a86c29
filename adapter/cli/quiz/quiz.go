package quiz

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/fitsmart/adapter/cli"
	"github.com/felixgeelhaar/fitsmart/internal/onboarding/application/commands"
	"github.com/felixgeelhaar/fitsmart/internal/onboarding/domain"
	"github.com/spf13/cobra"
)

var answers domain.QuizAnswers

// Cmd runs the onboarding questionnaire.
var Cmd = &cobra.Command{
	Use:   "quiz",
	Short: "Answer the onboarding quiz and compute your daily targets",
	Long: `Answer the onboarding questionnaire. Your calorie, water, workout and
macro targets are derived from the answers and cannot be changed later.

Examples:
  fitsmart quiz --age 25 --weight 70 --height 170 --gender male \
    --goal maintain --activity moderate --location gym
  fitsmart quiz --age 30 --weight 60 --height 165 --gender female \
    --goal lose --activity light --location home \
    --restrictions vegetarian --allergies peanut --meal-times 08:00,12:30,19:00`,
	Aliases: []string{"onboarding"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		ctx, account, err := app.RequireSession(cmd.Context())
		if err != nil {
			return err
		}
		if app.CompleteQuizHandler == nil {
			return cli.ErrNotInitialized
		}

		result, err := app.CompleteQuizHandler.Handle(ctx, commands.CompleteQuizCommand{
			AccountID: account.ID(),
			Answers:   answers,
		})
		if errors.Is(err, commands.ErrQuizAlreadyCompleted) {
			return fmt.Errorf("%w: your targets are already set, see `fitsmart dashboard`", err)
		}
		if err != nil {
			return err
		}

		t := result.Profile.Targets
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "All set, %s! Your daily targets:\n", result.Profile.Name)
		fmt.Fprintf(out, "  Calories: %d kcal\n", t.DailyCalories)
		fmt.Fprintf(out, "  Water:    %d ml\n", t.DailyWater)
		fmt.Fprintf(out, "  Workouts: %d per week\n", t.WeeklyWorkouts)
		fmt.Fprintf(out, "  Protein:  %d g\n", t.ProteinGoal)
		fmt.Fprintf(out, "  Carbs:    %d g\n", t.CarbsGoal)
		fmt.Fprintf(out, "  Fats:     %d g\n", t.FatsGoal)
		return nil
	},
}

func init() {
	f := Cmd.Flags()
	f.StringVar(&answers.Name, "name", "", "name shown on the dashboard (defaults to your first name)")
	f.StringVar(&answers.Age, "age", "", "age in years (required)")
	f.StringVar(&answers.Weight, "weight", "", "weight in kg (required)")
	f.StringVar(&answers.Height, "height", "", "height in cm (required)")
	f.StringVar(&answers.Gender, "gender", "", "male or female (required)")
	f.StringVar(&answers.Goal, "goal", "", "lose, maintain, gain or tone (required)")
	f.StringVar(&answers.ActivityLevel, "activity", "", "sedentary, light, moderate, active or veryActive (required)")
	f.StringVar(&answers.WorkoutLocation, "location", "", "home, gym or both (required)")
	f.StringSliceVar(&answers.DietaryRestrictions, "restrictions", nil, "dietary restrictions, comma separated")
	f.StringSliceVar(&answers.Allergies, "allergies", nil, "allergies, comma separated")
	f.StringVar(&answers.MealsPerDay, "meals-per-day", "", "3, 4, 5 or 6")
	f.StringSliceVar(&answers.PreferredMealTimes, "meal-times", nil, "preferred meal times as HH:MM, comma separated")

	for _, name := range []string{"age", "weight", "height", "gender", "goal", "activity", "location"} {
		_ = Cmd.MarkFlagRequired(name)
	}
}
