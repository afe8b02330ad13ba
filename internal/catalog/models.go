package catalog

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Category is a food's primary classification. The set is closed and
// partially hierarchical: red_meat, poultry, fish and seafood are children
// of meat, and shellfish is a child of seafood.
type Category string

const (
	CategoryMeat      Category = "meat"
	CategoryRedMeat   Category = "red_meat"
	CategoryPoultry   Category = "poultry"
	CategoryFish      Category = "fish"
	CategorySeafood   Category = "seafood"
	CategoryShellfish Category = "shellfish"
	CategoryDairy     Category = "dairy"
	CategoryEgg       Category = "egg"
	CategoryGrain     Category = "grain"
	CategoryLegume    Category = "legume"
	CategoryVegetable Category = "vegetable"
	CategoryFruit     Category = "fruit"
	CategoryNut       Category = "nut"
	CategorySeed      Category = "seed"
	CategoryOil       Category = "oil"
	CategorySweetener Category = "sweetener"
	CategoryHerb      Category = "herb"
	CategorySpice     Category = "spice"
	CategoryProcessed Category = "processed"
	CategoryOther     Category = "other"
)

// categoryParent maps each category to its single optional parent.
// Ancestry queries walk parent pointers; parents never point downward,
// so no cycle is possible.
var categoryParent = map[Category]Category{
	CategoryRedMeat:   CategoryMeat,
	CategoryPoultry:   CategoryMeat,
	CategoryFish:      CategoryMeat,
	CategorySeafood:   CategoryMeat,
	CategoryShellfish: CategorySeafood,
}

// IsA reports whether c equals ancestor or descends from it.
func (c Category) IsA(ancestor Category) bool {
	for cur := c; cur != ""; {
		if cur == ancestor {
			return true
		}
		cur = categoryParent[cur]
	}
	return false
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryMeat, CategoryRedMeat, CategoryPoultry, CategoryFish,
		CategorySeafood, CategoryShellfish, CategoryDairy, CategoryEgg,
		CategoryGrain, CategoryLegume, CategoryVegetable, CategoryFruit,
		CategoryNut, CategorySeed, CategoryOil, CategorySweetener,
		CategoryHerb, CategorySpice, CategoryProcessed, CategoryOther:
		return true
	}
	return false
}

// Food is an immutable catalog entry. Macros are per serving.
type Food struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	ServingLabel        string     `json:"serving_label"`
	ServingGrams        float64    `json:"serving_grams"`
	CaloriesKcal        float64    `json:"calories_kcal"`
	ProteinG            float64    `json:"protein_g"`
	CarbsG              float64    `json:"carbs_g"`
	FatG                float64    `json:"fat_g"`
	PrimaryCategory     Category   `json:"primary_category"`
	SecondaryCategories []Category `json:"secondary_categories,omitempty"`
	DietTags            []string   `json:"diet_tags,omitempty"`
}

// CarbsPer100g converts per-serving carbs to a per-100g figure.
// Returns 0 when the serving weight is unknown.
func (f Food) CarbsPer100g() float64 {
	if f.ServingGrams <= 0 {
		return 0
	}
	return f.CarbsG / f.ServingGrams * 100
}

// Validate checks the fields required before a food can enter the catalog.
func (f *Food) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if f.ServingGrams <= 0 {
		return fmt.Errorf("serving_grams must be positive")
	}
	if f.CaloriesKcal < 0 || f.ProteinG < 0 || f.CarbsG < 0 || f.FatG < 0 {
		return fmt.Errorf("macros must not be negative")
	}
	if f.PrimaryCategory != "" && !f.PrimaryCategory.Valid() {
		return fmt.Errorf("unknown primary_category %q", f.PrimaryCategory)
	}
	for _, c := range f.SecondaryCategories {
		if !c.Valid() {
			return fmt.Errorf("unknown secondary category %q", c)
		}
	}
	return nil
}

// inferenceRule maps name keywords to a category. Rules are checked in
// order; the first keyword hit wins.
type inferenceRule struct {
	category Category
	keywords []string
}

var inferenceRules = []inferenceRule{
	{CategoryRedMeat, []string{"beef", "steak", "pork", "lamb", "veal", "bison", "venison"}},
	{CategoryPoultry, []string{"chicken", "turkey", "duck", "quail"}},
	{CategoryFish, []string{"salmon", "tuna", "cod", "trout", "sardine", "mackerel", "tilapia", "halibut", "fish"}},
	{CategorySeafood, []string{"shrimp", "prawn", "crab", "lobster", "mussel", "oyster", "clam", "scallop", "squid", "octopus"}},
	{CategoryDairy, []string{"milk", "cheese", "yogurt", "yoghurt", "kefir", "cottage", "cream", "butter", "whey"}},
	{CategoryEgg, []string{"egg"}},
	{CategoryGrain, []string{"rice", "oat", "bread", "pasta", "quinoa", "barley", "buckwheat", "wheat", "couscous", "tortilla", "cereal"}},
	{CategoryLegume, []string{"bean", "lentil", "chickpea", "pea", "tofu", "tempeh", "edamame", "soy"}},
	{CategoryVegetable, []string{"broccoli", "spinach", "kale", "carrot", "pepper", "tomato", "cucumber", "zucchini", "cauliflower", "cabbage", "lettuce", "asparagus", "onion", "mushroom", "potato", "salad", "vegetable"}},
	{CategoryFruit, []string{"apple", "banana", "orange", "berry", "berries", "grape", "mango", "peach", "pear", "melon", "kiwi", "pineapple", "avocado", "fruit"}},
	{CategoryNut, []string{"almond", "walnut", "cashew", "pecan", "pistachio", "hazelnut", "peanut", "nut"}},
	{CategorySeed, []string{"chia", "flax", "pumpkin seed", "sunflower", "sesame", "hemp", "seed"}},
	{CategoryOil, []string{"olive oil", "coconut oil", "oil"}},
	{CategorySweetener, []string{"honey", "sugar", "syrup", "stevia", "sweetener"}},
	{CategoryHerb, []string{"basil", "parsley", "cilantro", "mint", "oregano", "thyme", "rosemary", "herb"}},
	{CategorySpice, []string{"pepper powder", "cinnamon", "cumin", "paprika", "turmeric", "ginger", "spice"}},
	{CategoryProcessed, []string{"sausage", "bacon", "ham", "nugget", "bar", "shake", "pizza", "burger", "fries", "chips", "processed"}},
}

// InferCategory derives a category from the food name via ordered keyword
// matching. Unknown names fall through to "other".
func InferCategory(name string) Category {
	lower := strings.ToLower(name)
	for _, rule := range inferenceRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return CategoryOther
}

// MigrateCategory assigns a primary category to legacy foods that lack one.
// Already-categorized foods pass through unchanged, so the migration is
// idempotent and safe to run on every catalog load.
func MigrateCategory(f Food) Food {
	if f.PrimaryCategory != "" {
		return f
	}
	f.PrimaryCategory = InferCategory(f.Name)
	return f
}
