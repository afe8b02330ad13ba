package diet

import (
	"strings"

	"github.com/platefit/platefit/internal/catalog"
)

// Diet names the closed set of supported dietary patterns. The set is
// declared statically so filtering never depends on catalog load order.
type Diet string

const (
	DietAll           Diet = "all"
	DietVegetarian    Diet = "vegetarian"
	DietVegan         Diet = "vegan"
	DietPescatarian   Diet = "pescatarian"
	DietFlexitarian   Diet = "flexitarian"
	DietMediterranean Diet = "mediterranean"
	DietNordic        Diet = "nordic"
	DietDASH          Diet = "dash"
	DietPaleo         Diet = "paleo"
	DietKeto          Diet = "keto"
	DietCarnivore     Diet = "carnivore"
)

// AllDiets lists every supported diet, "all" first.
var AllDiets = []Diet{
	DietAll,
	DietVegetarian,
	DietVegan,
	DietPescatarian,
	DietFlexitarian,
	DietMediterranean,
	DietNordic,
	DietDASH,
	DietPaleo,
	DietKeto,
	DietCarnivore,
}

// Valid reports whether d is a member of the closed diet set.
func (d Diet) Valid() bool {
	for _, known := range AllDiets {
		if d == known {
			return true
		}
	}
	return false
}

// rule declares a diet's category allow/deny lists plus optional secondary
// overlays and a final special-case predicate. Membership checks walk the
// category hierarchy, so denying "meat" also denies red_meat, poultry,
// fish, seafood and shellfish.
type rule struct {
	deny           []catalog.Category
	allow          []catalog.Category
	denySecondary  []catalog.Category
	allowSecondary []catalog.Category
	// special runs last and may veto or rescue the decision so far.
	special func(f catalog.Food, compatible bool) bool
}

var plantCategories = []catalog.Category{
	catalog.CategoryGrain, catalog.CategoryLegume, catalog.CategoryVegetable,
	catalog.CategoryFruit, catalog.CategoryNut, catalog.CategorySeed,
	catalog.CategoryOil, catalog.CategoryHerb, catalog.CategorySpice,
}

func withCategories(base []catalog.Category, extra ...catalog.Category) []catalog.Category {
	out := make([]catalog.Category, 0, len(base)+len(extra))
	out = append(out, base...)
	out = append(out, extra...)
	return out
}

var dietRules = map[Diet]rule{
	DietVegetarian: {
		deny:          []catalog.Category{catalog.CategoryMeat},
		allow:         withCategories(plantCategories, catalog.CategoryDairy, catalog.CategoryEgg, catalog.CategorySweetener, catalog.CategoryProcessed, catalog.CategoryOther),
		denySecondary: []catalog.Category{catalog.CategoryMeat},
	},
	DietVegan: {
		deny:          []catalog.Category{catalog.CategoryMeat, catalog.CategoryDairy, catalog.CategoryEgg},
		allow:         withCategories(plantCategories, catalog.CategorySweetener, catalog.CategoryProcessed, catalog.CategoryOther),
		denySecondary: []catalog.Category{catalog.CategoryMeat, catalog.CategoryDairy, catalog.CategoryEgg},
		// Honey is animal-derived even though it is categorized as a sweetener.
		special: func(f catalog.Food, compatible bool) bool {
			if strings.Contains(strings.ToLower(f.Name), "honey") {
				return false
			}
			return compatible
		},
	},
	DietPescatarian: {
		deny:           []catalog.Category{catalog.CategoryRedMeat, catalog.CategoryPoultry},
		allow:          withCategories(plantCategories, catalog.CategoryFish, catalog.CategorySeafood, catalog.CategoryDairy, catalog.CategoryEgg, catalog.CategorySweetener, catalog.CategoryProcessed, catalog.CategoryOther),
		denySecondary:  []catalog.Category{catalog.CategoryRedMeat, catalog.CategoryPoultry},
		allowSecondary: []catalog.Category{catalog.CategoryFish, catalog.CategorySeafood},
	},
	DietFlexitarian: {
		deny:  []catalog.Category{catalog.CategoryRedMeat},
		allow: withCategories(plantCategories, catalog.CategoryPoultry, catalog.CategoryFish, catalog.CategorySeafood, catalog.CategoryDairy, catalog.CategoryEgg, catalog.CategorySweetener, catalog.CategoryProcessed, catalog.CategoryOther),
	},
	DietMediterranean: {
		deny:  []catalog.Category{catalog.CategoryProcessed},
		allow: withCategories(plantCategories, catalog.CategoryRedMeat, catalog.CategoryPoultry, catalog.CategoryFish, catalog.CategorySeafood, catalog.CategoryDairy, catalog.CategoryEgg, catalog.CategorySweetener, catalog.CategoryOther),
		// Red meat stays on the menu only in its unprocessed form.
		special: func(f catalog.Food, compatible bool) bool {
			if f.PrimaryCategory.IsA(catalog.CategoryRedMeat) && strings.Contains(strings.ToLower(f.Name), "processed") {
				return false
			}
			return compatible
		},
	},
	DietNordic: {
		deny:          []catalog.Category{catalog.CategoryProcessed, catalog.CategoryRedMeat},
		allow:         withCategories(plantCategories, catalog.CategoryPoultry, catalog.CategoryFish, catalog.CategorySeafood, catalog.CategoryDairy, catalog.CategoryEgg, catalog.CategoryOther),
		denySecondary: []catalog.Category{catalog.CategoryRedMeat},
	},
	DietDASH: {
		deny:          []catalog.Category{catalog.CategoryProcessed, catalog.CategorySweetener},
		allow:         withCategories(plantCategories, catalog.CategoryPoultry, catalog.CategoryFish, catalog.CategorySeafood, catalog.CategoryDairy, catalog.CategoryEgg, catalog.CategoryOther),
		denySecondary: []catalog.Category{catalog.CategoryProcessed},
	},
	DietPaleo: {
		// Sweeteners stay off the deny-list so the honey override below
		// can still rescue them; they are simply never allowed.
		deny:          []catalog.Category{catalog.CategoryDairy, catalog.CategoryGrain, catalog.CategoryLegume, catalog.CategoryProcessed},
		allow:         []catalog.Category{catalog.CategoryMeat, catalog.CategoryEgg, catalog.CategoryVegetable, catalog.CategoryFruit, catalog.CategoryNut, catalog.CategorySeed, catalog.CategoryOil, catalog.CategoryHerb, catalog.CategorySpice},
		denySecondary: []catalog.Category{catalog.CategoryDairy, catalog.CategoryGrain, catalog.CategoryLegume},
		// Honey is the one sweetener paleo tolerates.
		special: func(f catalog.Food, compatible bool) bool {
			if f.PrimaryCategory == catalog.CategorySweetener && strings.Contains(strings.ToLower(f.Name), "honey") {
				return true
			}
			return compatible
		},
	},
	DietKeto: {
		deny:  []catalog.Category{catalog.CategoryGrain, catalog.CategorySweetener},
		allow: []catalog.Category{catalog.CategoryMeat, catalog.CategoryDairy, catalog.CategoryEgg, catalog.CategoryVegetable, catalog.CategoryNut, catalog.CategorySeed, catalog.CategoryOil, catalog.CategoryHerb, catalog.CategorySpice, catalog.CategoryOther},
		// Category membership is not enough for keto: anything over
		// 10 g carbs per 100 g is out regardless of what it is.
		special: func(f catalog.Food, compatible bool) bool {
			if f.CarbsPer100g() > 10 {
				return false
			}
			return compatible
		},
	},
	DietCarnivore: {
		deny:  withCategories(plantCategories, catalog.CategorySweetener, catalog.CategoryProcessed),
		allow: []catalog.Category{catalog.CategoryMeat, catalog.CategoryEgg, catalog.CategoryDairy},
	},
}
