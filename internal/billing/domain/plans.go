package domain

import "fmt"

// Offer describes a purchasable plan.
type Offer struct {
	Plan       Plan
	Name       string
	PriceCents int64
	Period     string
	Badge      string
	Features   []string
}

// Price formats the price in reais.
func (o Offer) Price() string {
	return fmt.Sprintf("R$ %d.%02d", o.PriceCents/100, o.PriceCents%100)
}

var offers = []Offer{
	{
		Plan:       PlanMonthly,
		Name:       "Monthly",
		PriceCents: 1990,
		Period:     "month",
		Features: []string{
			"Personalized workouts",
			"Meal plan and daily suggestions",
			"Hydration tracking",
			"Progress dashboard",
		},
	},
	{
		Plan:       PlanAnnual,
		Name:       "Annual",
		PriceCents: 11990,
		Period:     "year",
		Badge:      "best value",
		Features: []string{
			"Everything in monthly",
			"Save 50% over monthly billing",
		},
	},
}

// Offers returns the purchasable plans.
func Offers() []Offer {
	out := make([]Offer, len(offers))
	copy(out, offers)
	return out
}

// OfferFor returns the offer for plan.
func OfferFor(plan Plan) (Offer, bool) {
	for _, o := range offers {
		if o.Plan == plan {
			return o, true
		}
	}
	return Offer{}, false
}
