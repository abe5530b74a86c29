package domain

import (
	"strings"
	"time"

	onboardingDomain "github.com/felixgeelhaar/fitsmart/internal/onboarding/domain"
)

// MinFilteredSuggestions is the smallest filtered catalog worth rotating
// through; below it the whole catalog is used.
const MinFilteredSuggestions = 6

// suggestionSlots are rotated daily. Snacks are never suggested.
var suggestionSlots = []Slot{SlotBreakfast, SlotLunch, SlotDinner}

var (
	glutenKeywords  = []string{"bread", "pasta", "wheat flour"}
	lactoseKeywords = []string{"milk", "cheese", "yogurt"}
	eggKeywords     = []string{"egg"}
	peanutKeywords  = []string{"peanut"}
	fishKeywords    = []string{"fish", "tuna", "salmon"}
)

// DailySuggestions picks two breakfasts, two lunches and two dinners for the
// day of now. The choice is stable for a calendar day and rotates daily.
func DailySuggestions(restrictions []onboardingDomain.Restriction, allergies []onboardingDomain.Allergy, now time.Time) []Suggestion {
	day := now.UTC().YearDay()

	pool := Filter(catalog, restrictions, allergies)
	if len(pool) < MinFilteredSuggestions {
		pool = catalog
	}

	out := make([]Suggestion, 0, 2*len(suggestionSlots))
	for _, slot := range suggestionSlots {
		items := bySlot(pool, slot)
		n := len(items)
		if n == 0 {
			continue
		}
		out = append(out, items[day%n], items[(day+1)%n])
	}
	return out
}

// Filter drops suggestions that conflict with the restrictions or allergies.
// Only gluten intolerance triggers the gluten check; celiac is not matched.
func Filter(items []Suggestion, restrictions []onboardingDomain.Restriction, allergies []onboardingDomain.Allergy) []Suggestion {
	has := func(r onboardingDomain.Restriction) bool {
		for _, x := range restrictions {
			if x == r {
				return true
			}
		}
		return false
	}
	allergic := func(a onboardingDomain.Allergy) bool {
		for _, x := range allergies {
			if x == a {
				return true
			}
		}
		return false
	}

	out := make([]Suggestion, 0, len(items))
	for _, s := range items {
		if has(onboardingDomain.RestrictionVegan) && !s.HasTag(TagVegan) {
			continue
		}
		if has(onboardingDomain.RestrictionVegetarian) && !s.HasTag(TagVegetarian) && !s.HasTag(TagVegan) {
			continue
		}
		if has(onboardingDomain.RestrictionGlutenIntolerance) && !s.HasTag(TagGlutenFree) && s.contains(glutenKeywords) {
			continue
		}
		if has(onboardingDomain.RestrictionLactoseIntolerance) && s.contains(lactoseKeywords) {
			continue
		}
		if allergic(onboardingDomain.AllergyEggs) && s.contains(eggKeywords) {
			continue
		}
		if allergic(onboardingDomain.AllergyPeanut) && s.contains(peanutKeywords) {
			continue
		}
		if allergic(onboardingDomain.AllergyFish) && s.contains(fishKeywords) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// contains reports whether any ingredient mentions any keyword.
func (s Suggestion) contains(keywords []string) bool {
	for _, ing := range s.Ingredients {
		ing = strings.ToLower(ing)
		for _, k := range keywords {
			if strings.Contains(ing, k) {
				return true
			}
		}
	}
	return false
}
