// Package domain holds the static meal catalog and the daily suggestion
// engine. Everything here is pure.
package domain

// Slot is the meal of the day a suggestion belongs to.
type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
	SlotSnack     Slot = "snack"
)

// IsValid reports whether s is a known slot.
func (s Slot) IsValid() bool {
	switch s {
	case SlotBreakfast, SlotLunch, SlotDinner, SlotSnack:
		return true
	}
	return false
}

// Tag describes a suggestion.
type Tag string

const (
	TagVegetarian  Tag = "vegetarian"
	TagVegan       Tag = "vegan"
	TagGlutenFree  Tag = "gluten-free"
	TagBudget      Tag = "budget"
	TagQuick       Tag = "quick"
	TagProtein     Tag = "high-protein"
	TagEnergy      Tag = "energizing"
	TagComplete    Tag = "complete"
	TagTraditional Tag = "traditional"
	TagEasy        Tag = "easy"
	TagLowCarb     Tag = "low-carb"
	TagWholeGrain  Tag = "whole-grain"
	TagNutritious  Tag = "nutritious"
	TagLight       Tag = "light"
	TagComfort     Tag = "comforting"
	TagCreative    Tag = "creative"
	TagHealthy     Tag = "healthy"
	TagDetox       Tag = "detox"
	TagRefreshing  Tag = "refreshing"
)

// Suggestion is a read-only catalog entry.
type Suggestion struct {
	ID          string
	Slot        Slot
	Name        string
	Calories    int
	Protein     int
	Carbs       int
	Fats        int
	CostCents   int // estimated cost in centavos
	PrepMinutes int
	Ingredients []string
	Preparation []string
	Tags        []Tag
}

// HasTag reports whether the suggestion carries t.
func (s Suggestion) HasTag(t Tag) bool {
	for _, x := range s.Tags {
		if x == t {
			return true
		}
	}
	return false
}

var catalog = []Suggestion{
	{
		ID: "breakfast-1", Slot: SlotBreakfast, Name: "Oatmeal with Banana and Cinnamon",
		Calories: 320, Protein: 12, Carbs: 58, Fats: 6, CostCents: 250, PrepMinutes: 10,
		Ingredients: []string{
			"50g rolled oats",
			"1 medium banana",
			"200ml milk (or plant milk)",
			"1 teaspoon cinnamon",
			"1 tablespoon honey (optional)",
		},
		Preparation: []string{
			"Put the oats in a bowl",
			"Heat the milk and pour it over the oats",
			"Let it rest for 3 minutes",
			"Slice the banana",
			"Top with banana, cinnamon and honey",
			"Stir well and serve",
		},
		Tags: []Tag{TagVegetarian, TagBudget, TagQuick},
	},
	{
		ID: "breakfast-2", Slot: SlotBreakfast, Name: "Scrambled Eggs on Whole Wheat Toast",
		Calories: 380, Protein: 22, Carbs: 42, Fats: 14, CostCents: 300, PrepMinutes: 15,
		Ingredients: []string{
			"2 eggs",
			"2 slices whole wheat bread",
			"1 small tomato",
			"Salt and pepper to taste",
			"1 teaspoon olive oil",
		},
		Preparation: []string{
			"Crack the eggs into a bowl and beat lightly",
			"Season with salt and pepper",
			"Heat the olive oil in a pan",
			"Pour in the eggs and stir until cooked",
			"Slice the tomato",
			"Toast the bread and serve with the eggs and tomato",
		},
		Tags: []Tag{TagProtein, TagBudget},
	},
	{
		ID: "breakfast-3", Slot: SlotBreakfast, Name: "Tapioca Crepe with Cheese",
		Calories: 290, Protein: 15, Carbs: 45, Fats: 8, CostCents: 280, PrepMinutes: 10,
		Ingredients: []string{
			"3 tablespoons tapioca starch",
			"30g minas cheese",
			"1 pinch of salt",
		},
		Preparation: []string{
			"Heat a non-stick pan",
			"Spread the tapioca evenly",
			"When it starts to bind, add the cheese",
			"Fold in half and let it brown",
			"Serve hot",
		},
		Tags: []Tag{TagGlutenFree, TagQuick, TagBudget},
	},
	{
		ID: "breakfast-4", Slot: SlotBreakfast, Name: "Banana Oat Smoothie",
		Calories: 340, Protein: 14, Carbs: 62, Fats: 7, CostCents: 220, PrepMinutes: 5,
		Ingredients: []string{
			"1 large banana",
			"200ml milk",
			"2 tablespoons oats",
			"1 tablespoon honey",
			"Ice to taste",
		},
		Preparation: []string{
			"Put all ingredients in the blender",
			"Blend until smooth",
			"Add ice if you like",
			"Serve immediately",
		},
		Tags: []Tag{TagVegetarian, TagQuick, TagEnergy},
	},
	{
		ID: "lunch-1", Slot: SlotLunch, Name: "Rice, Beans and Shredded Chicken",
		Calories: 580, Protein: 42, Carbs: 68, Fats: 12, CostCents: 550, PrepMinutes: 30,
		Ingredients: []string{
			"100g chicken breast",
			"3 spoons cooked rice",
			"1 ladle of beans",
			"1 garlic clove",
			"Salt and seasoning to taste",
			"Green salad (lettuce and tomato)",
		},
		Preparation: []string{
			"Cook the chicken with salt and garlic",
			"Shred the chicken once cooked",
			"Sauté the shredded chicken with seasoning",
			"Serve with rice and beans",
			"Add a green salad on the side",
		},
		Tags: []Tag{TagProtein, TagComplete, TagTraditional},
	},
	{
		ID: "lunch-2", Slot: SlotLunch, Name: "Pasta with Tomato Sauce and Egg",
		Calories: 520, Protein: 24, Carbs: 78, Fats: 14, CostCents: 400, PrepMinutes: 25,
		Ingredients: []string{
			"100g pasta",
			"2 eggs",
			"2 ripe tomatoes",
			"1 small onion",
			"2 garlic cloves",
			"Salt, oregano and basil",
		},
		Preparation: []string{
			"Cook the pasta in salted water",
			"Chop the onion, garlic and tomatoes",
			"Sauté the onion and garlic in olive oil",
			"Add the tomatoes and herbs",
			"Cook the eggs separately",
			"Toss the pasta in the sauce",
			"Serve with the eggs on top",
		},
		Tags: []Tag{TagVegetarian, TagBudget, TagEasy},
	},
	{
		ID: "lunch-3", Slot: SlotLunch, Name: "Vegetable Omelette with Salad",
		Calories: 420, Protein: 28, Carbs: 32, Fats: 20, CostCents: 450, PrepMinutes: 20,
		Ingredients: []string{
			"3 eggs",
			"1/2 zucchini",
			"1/2 carrot",
			"1 tomato",
			"Lettuce and arugula",
			"Salt and pepper",
		},
		Preparation: []string{
			"Grate the zucchini and carrot",
			"Beat the eggs with salt and pepper",
			"Fold the vegetables into the eggs",
			"Pour into a hot pan",
			"Cook until golden on both sides",
			"Serve with fresh salad",
		},
		Tags: []Tag{TagVegetarian, TagLowCarb, TagProtein},
	},
	{
		ID: "lunch-4", Slot: SlotLunch, Name: "Brown Rice with Lentils and Vegetables",
		Calories: 480, Protein: 22, Carbs: 72, Fats: 10, CostCents: 380, PrepMinutes: 35,
		Ingredients: []string{
			"3 spoons brown rice",
			"1/2 cup lentils",
			"1 carrot",
			"1 zucchini",
			"Natural seasoning",
		},
		Preparation: []string{
			"Cook the brown rice",
			"Cook the lentils separately",
			"Dice the vegetables",
			"Sauté the vegetables",
			"Mix everything and season",
			"Serve hot",
		},
		Tags: []Tag{TagVegan, TagWholeGrain, TagNutritious},
	},
	{
		ID: "dinner-1", Slot: SlotDinner, Name: "Chicken and Vegetable Soup",
		Calories: 380, Protein: 32, Carbs: 42, Fats: 8, CostCents: 420, PrepMinutes: 30,
		Ingredients: []string{
			"100g chicken breast",
			"1 medium potato",
			"1 carrot",
			"1/2 chayote",
			"1 tomato",
			"Seasoning and salt",
		},
		Preparation: []string{
			"Dice all the ingredients",
			"Boil the chicken in salted water",
			"Add the vegetables",
			"Cook until the vegetables are tender",
			"Season to taste",
			"Serve hot",
		},
		Tags: []Tag{TagLight, TagNutritious, TagComfort},
	},
	{
		ID: "dinner-2", Slot: SlotDinner, Name: "Oat Pancakes with Chicken Filling",
		Calories: 450, Protein: 38, Carbs: 48, Fats: 12, CostCents: 480, PrepMinutes: 25,
		Ingredients: []string{
			"2 eggs",
			"3 spoons oats",
			"100g shredded chicken",
			"1 tomato",
			"Seasoning",
		},
		Preparation: []string{
			"Beat the eggs with the oats",
			"Make thin pancakes in the pan",
			"Sauté the chicken with tomato",
			"Fill the pancakes",
			"Serve hot",
		},
		Tags: []Tag{TagProtein, TagCreative, TagHealthy},
	},
	{
		ID: "dinner-3", Slot: SlotDinner, Name: "Tuna Salad Bowl",
		Calories: 360, Protein: 28, Carbs: 35, Fats: 14, CostCents: 500, PrepMinutes: 15,
		Ingredients: []string{
			"1 can of tuna",
			"Lettuce, tomato, cucumber",
			"1 boiled egg",
			"2 spoons chickpeas",
			"Olive oil and lemon",
		},
		Preparation: []string{
			"Wash and cut the vegetables",
			"Drain the tuna",
			"Boil the egg",
			"Assemble the salad on a plate",
			"Dress with olive oil and lemon",
			"Serve fresh",
		},
		Tags: []Tag{TagLight, TagProtein, TagQuick},
	},
	{
		ID: "dinner-4", Slot: SlotDinner, Name: "Caldo Verde with Potato",
		Calories: 320, Protein: 12, Carbs: 52, Fats: 8, CostCents: 350, PrepMinutes: 25,
		Ingredients: []string{
			"2 medium potatoes",
			"1 bunch of collard greens",
			"1 onion",
			"2 garlic cloves",
			"Salt and olive oil",
		},
		Preparation: []string{
			"Boil the potatoes with onion and garlic",
			"Blend until smooth",
			"Return to the heat",
			"Add the shredded greens",
			"Cook for 5 minutes",
			"Finish with olive oil",
		},
		Tags: []Tag{TagVegan, TagBudget, TagTraditional},
	},
	{
		ID: "snack-1", Slot: SlotSnack, Name: "Plain Yogurt with Granola",
		Calories: 280, Protein: 14, Carbs: 42, Fats: 8, CostCents: 320, PrepMinutes: 5,
		Ingredients: []string{
			"200ml plain yogurt",
			"3 spoons granola",
			"1 spoon honey",
			"Chopped fruit (optional)",
		},
		Preparation: []string{
			"Put the yogurt in a bowl",
			"Add the granola",
			"Drizzle with honey",
			"Add fruit if you like",
			"Serve immediately",
		},
		Tags: []Tag{TagVegetarian, TagQuick, TagNutritious},
	},
	{
		ID: "snack-2", Slot: SlotSnack, Name: "Whole Wheat Toast with Peanut Butter",
		Calories: 320, Protein: 16, Carbs: 38, Fats: 14, CostCents: 280, PrepMinutes: 5,
		Ingredients: []string{
			"2 slices whole wheat bread",
			"2 spoons peanut butter",
			"1 sliced banana",
		},
		Preparation: []string{
			"Lightly toast the bread",
			"Spread the peanut butter",
			"Add the banana slices",
			"Serve",
		},
		Tags: []Tag{TagVegetarian, TagEnergy, TagQuick},
	},
	{
		ID: "snack-3", Slot: SlotSnack, Name: "Green Detox Smoothie",
		Calories: 220, Protein: 8, Carbs: 42, Fats: 4, CostCents: 350, PrepMinutes: 10,
		Ingredients: []string{
			"1 apple",
			"1/2 cucumber",
			"Collard green leaves",
			"Juice of 1 lemon",
			"200ml water",
			"Ice",
		},
		Preparation: []string{
			"Wash all the ingredients",
			"Cut into pieces",
			"Blend everything",
			"Add ice",
			"Strain if you prefer",
			"Serve cold",
		},
		Tags: []Tag{TagVegan, TagDetox, TagRefreshing},
	},
	{
		ID: "snack-4", Slot: SlotSnack, Name: "Crepioca with Cheese",
		Calories: 260, Protein: 18, Carbs: 32, Fats: 8, CostCents: 250, PrepMinutes: 10,
		Ingredients: []string{
			"1 egg",
			"2 spoons tapioca",
			"30g cheese",
			"Salt to taste",
		},
		Preparation: []string{
			"Beat the egg with the tapioca",
			"Pour into a hot pan",
			"Add the cheese",
			"Fold in half",
			"Let it brown",
			"Serve hot",
		},
		Tags: []Tag{TagGlutenFree, TagProtein, TagQuick},
	},
}

// Catalog returns every suggestion in catalog order.
func Catalog() []Suggestion {
	out := make([]Suggestion, len(catalog))
	copy(out, catalog)
	return out
}

// SuggestionByID looks a suggestion up by id.
func SuggestionByID(id string) (Suggestion, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}
	return Suggestion{}, false
}

// MealsBySlot returns the catalog entries for one slot.
func MealsBySlot(slot Slot) []Suggestion {
	return bySlot(catalog, slot)
}

func bySlot(items []Suggestion, slot Slot) []Suggestion {
	out := make([]Suggestion, 0, len(items))
	for _, s := range items {
		if s.Slot == slot {
			out = append(out, s)
		}
	}
	return out
}
