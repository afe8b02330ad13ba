package diet

import (
	"errors"
	"testing"

	"github.com/platefit/platefit/internal/catalog"
)

func food(name string, primary catalog.Category, secondary ...catalog.Category) catalog.Food {
	return catalog.Food{Name: name, ServingGrams: 100, PrimaryCategory: primary, SecondaryCategories: secondary}
}

func TestCompatibleAllAcceptsEverything(t *testing.T) {
	foods := []catalog.Food{
		food("Ribeye Steak", catalog.CategoryRedMeat),
		food("Honey", catalog.CategorySweetener),
		food("Mystery Paste", catalog.CategoryOther),
	}
	for _, f := range foods {
		if !Compatible(f, DietAll) {
			t.Errorf("%q should be compatible with all", f.Name)
		}
	}
}

func TestVegetarianDeniesMeatHierarchy(t *testing.T) {
	// Denying "meat" must take out every descendant via the hierarchy.
	meats := []catalog.Category{
		catalog.CategoryMeat, catalog.CategoryRedMeat, catalog.CategoryPoultry,
		catalog.CategoryFish, catalog.CategorySeafood, catalog.CategoryShellfish,
	}
	for _, c := range meats {
		if Compatible(food("Test Item", c), DietVegetarian) {
			t.Errorf("vegetarian should deny %s", c)
		}
	}
	if !Compatible(food("Greek Yogurt", catalog.CategoryDairy), DietVegetarian) {
		t.Error("vegetarian should allow dairy")
	}
	if !Compatible(food("Whole Eggs", catalog.CategoryEgg), DietVegetarian) {
		t.Error("vegetarian should allow eggs")
	}
}

func TestVeganSubsetOfVegetarian(t *testing.T) {
	// Anything vegan-compatible must also be vegetarian-compatible.
	for _, f := range catalog.SeedFoods() {
		if Compatible(f, DietVegan) && !Compatible(f, DietVegetarian) {
			t.Errorf("%q passes vegan but fails vegetarian", f.Name)
		}
	}
}

func TestVeganHoneyVeto(t *testing.T) {
	honey := catalog.Food{Name: "Honey", ServingGrams: 21, CarbsG: 17.3, PrimaryCategory: catalog.CategorySweetener}
	if Compatible(honey, DietVegan) {
		t.Error("vegan should veto honey despite the sweetener category")
	}
	if !Compatible(honey, DietVegetarian) {
		t.Error("vegetarian should allow honey")
	}
}

func TestPescatarianSecondaryRescue(t *testing.T) {
	if Compatible(food("Chicken Breast", catalog.CategoryPoultry), DietPescatarian) {
		t.Error("pescatarian should deny poultry")
	}
	if !Compatible(food("Salmon Fillet", catalog.CategoryFish), DietPescatarian) {
		t.Error("pescatarian should allow fish")
	}
	// A processed item with a fish secondary category is rescued by the
	// explicit secondary allow-list.
	fishCake := food("Fish Cake", catalog.CategoryProcessed, catalog.CategoryFish)
	if !Compatible(fishCake, DietPescatarian) {
		t.Error("pescatarian should rescue processed food with a fish secondary")
	}
}

func TestSecondaryDenyVetoes(t *testing.T) {
	// A vegetarian-looking item with a meat secondary is out.
	brothCube := food("Vegetable Stock Cube", catalog.CategoryProcessed, catalog.CategoryPoultry)
	if Compatible(brothCube, DietVegetarian) {
		t.Error("vegetarian should deny items with a meat secondary category")
	}
}

func TestMediterraneanProcessedRedMeatVeto(t *testing.T) {
	fresh := food("Lamb Chop", catalog.CategoryRedMeat)
	if !Compatible(fresh, DietMediterranean) {
		t.Error("mediterranean should allow unprocessed red meat")
	}
	processed := food("Processed Beef Slices", catalog.CategoryRedMeat)
	if Compatible(processed, DietMediterranean) {
		t.Error("mediterranean should veto processed red meat")
	}
}

func TestKetoCarbDensityVeto(t *testing.T) {
	// Banana: right category family for nothing, but the carb density rule
	// is what matters; even an allowed category fails above 10 g/100 g.
	cauliflower := catalog.Food{Name: "Cauliflower", ServingGrams: 107, CarbsG: 5.3, PrimaryCategory: catalog.CategoryVegetable}
	if !Compatible(cauliflower, DietKeto) {
		t.Error("keto should allow low-carb vegetables")
	}
	sweetPotato := catalog.Food{Name: "Sweet Potato", ServingGrams: 130, CarbsG: 26, PrimaryCategory: catalog.CategoryVegetable}
	if Compatible(sweetPotato, DietKeto) {
		t.Error("keto should veto vegetables above 10 g carbs per 100 g")
	}
}

func TestPaleoHoneyRescue(t *testing.T) {
	honey := food("Honey", catalog.CategorySweetener)
	if !Compatible(honey, DietPaleo) {
		t.Error("paleo should rescue honey from the sweetener deny-list")
	}
	sugar := food("White Sugar", catalog.CategorySweetener)
	if Compatible(sugar, DietPaleo) {
		t.Error("paleo should deny other sweeteners")
	}
}

func TestCarnivore(t *testing.T) {
	if !Compatible(food("Ribeye Steak", catalog.CategoryRedMeat), DietCarnivore) {
		t.Error("carnivore should allow red meat")
	}
	if Compatible(food("Broccoli", catalog.CategoryVegetable), DietCarnivore) {
		t.Error("carnivore should deny vegetables")
	}
}

func TestFilterFoodsByDiet(t *testing.T) {
	foods := catalog.SeedFoods()

	vegan, err := FilterFoodsByDiet(foods, DietVegan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vegan) == 0 || len(vegan) >= len(foods) {
		t.Errorf("vegan filter should be a strict non-empty subset, got %d of %d", len(vegan), len(foods))
	}

	if _, err := FilterFoodsByDiet(foods, Diet("fruitarian")); !errors.Is(err, ErrUnknownDiet) {
		t.Errorf("expected ErrUnknownDiet, got %v", err)
	}
}

func TestFilterFoodsByDietZeroMatches(t *testing.T) {
	meatOnly := []catalog.Food{
		food("Ribeye Steak", catalog.CategoryRedMeat),
		food("Chicken Breast", catalog.CategoryPoultry),
	}
	if _, err := FilterFoodsByDiet(meatOnly, DietVegan); !errors.Is(err, ErrNoCompatibleFoods) {
		t.Errorf("expected ErrNoCompatibleFoods, got %v", err)
	}

	// An empty input is not a zero-match refusal.
	out, err := FilterFoodsByDiet(nil, DietVegan)
	if err != nil {
		t.Errorf("unexpected error for empty input: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty result, got %d", len(out))
	}
}

func TestCompatibleDiets(t *testing.T) {
	diets := CompatibleDiets(food("Broccoli", catalog.CategoryVegetable))
	if len(diets) == 0 || diets[0] != DietAll {
		t.Fatalf("expected all first, got %v", diets)
	}
	found := map[Diet]bool{}
	for _, d := range diets {
		found[d] = true
	}
	if !found[DietVegan] || !found[DietVegetarian] || found[DietCarnivore] {
		t.Errorf("unexpected diet set for broccoli: %v", diets)
	}
}
