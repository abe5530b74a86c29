package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidAnswers is returned when questionnaire answers fail validation.
var ErrInvalidAnswers = errors.New("invalid quiz answers")

var validate = validator.New(validator.WithRequiredStructEnabled())

// QuizAnswers are the raw questionnaire inputs. Measurements arrive as
// numeric strings.
type QuizAnswers struct {
	Name                string   `validate:"omitempty,max=255"`
	Age                 string   `validate:"required,numeric"`
	Weight              string   `validate:"required,numeric"`
	Height              string   `validate:"required,numeric"`
	Gender              string   `validate:"required,oneof=male female"`
	Goal                string   `validate:"required,oneof=lose maintain gain tone"`
	ActivityLevel       string   `validate:"required,oneof=sedentary light moderate active veryActive"`
	WorkoutLocation     string   `validate:"required,oneof=home gym both"`
	DietaryRestrictions []string `validate:"dive,oneof=lactose_intolerance gluten_intolerance celiac vegetarian vegan diabetes hypertension high_cholesterol none"`
	Allergies           []string `validate:"dive,oneof=peanut shellfish eggs soy tree_nuts fish dairy wheat none"`
	MealsPerDay         string   `validate:"omitempty,oneof=3 4 5 6"`
	PreferredMealTimes  []string `validate:"dive,datetime=15:04"`
}

// ParseQuizAnswers validates the answers and builds a profile with its
// targets computed.
func ParseQuizAnswers(a QuizAnswers) (Profile, error) {
	a.trim()
	if err := validate.Struct(a); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return Profile{}, fmt.Errorf("%w: %v", ErrInvalidAnswers, err)
		}
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return Profile{}, fmt.Errorf("%w: %s", ErrInvalidAnswers, strings.Join(fields, ", "))
	}

	age, err := parseMeasurement("age", a.Age)
	if err != nil {
		return Profile{}, err
	}
	weight, err := parseMeasurement("weight", a.Weight)
	if err != nil {
		return Profile{}, err
	}
	height, err := parseMeasurement("height", a.Height)
	if err != nil {
		return Profile{}, err
	}

	p := Profile{
		Name:                a.Name,
		Age:                 age,
		Weight:              weight,
		Height:              height,
		Gender:              Gender(a.Gender),
		Goal:                Goal(a.Goal),
		ActivityLevel:       ActivityLevel(a.ActivityLevel),
		WorkoutLocation:     WorkoutLocation(a.WorkoutLocation),
		DietaryRestrictions: make([]Restriction, 0, len(a.DietaryRestrictions)),
		Allergies:           make([]Allergy, 0, len(a.Allergies)),
		PreferredMealTimes:  a.PreferredMealTimes,
	}
	for _, r := range a.DietaryRestrictions {
		p.DietaryRestrictions = append(p.DietaryRestrictions, Restriction(r))
	}
	for _, al := range a.Allergies {
		p.Allergies = append(p.Allergies, Allergy(al))
	}
	if a.MealsPerDay != "" {
		p.MealsPerDay, _ = strconv.Atoi(a.MealsPerDay)
	}

	p.Targets = ComputeTargets(p)
	return p, nil
}

func (a *QuizAnswers) trim() {
	a.Name = strings.TrimSpace(a.Name)
	a.Age = strings.TrimSpace(a.Age)
	a.Weight = strings.TrimSpace(a.Weight)
	a.Height = strings.TrimSpace(a.Height)
	a.MealsPerDay = strings.TrimSpace(a.MealsPerDay)
}

func parseMeasurement(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidAnswers, field, s)
	}
	return v, nil
}
