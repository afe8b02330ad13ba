package mealplans

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func testDayTargets(kcal float64) DayTargets {
	return DayTargets{
		CaloriesKcal: kcal,
		ProteinG:     kcal * 0.30 / 4,
		CarbsG:       kcal * 0.40 / 4,
		FatG:         kcal * 0.30 / 9,
	}
}

func TestGenerateDayPlanThreeMeals(t *testing.T) {
	plan, err := GenerateDayPlan(testPool(), testDayTargets(1700), 0, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Meals) != 3 {
		t.Fatalf("expected 3 meals for 1700 kcal day, got %d", len(plan.Meals))
	}
	names := []string{"Breakfast", "Lunch", "Dinner"}
	for i, m := range plan.Meals {
		if m.Name != names[i] {
			t.Errorf("meal %d: expected name %q, got %q", i, names[i], m.Name)
		}
	}
}

func TestGenerateDayPlanFourMeals(t *testing.T) {
	plan, err := GenerateDayPlan(testPool(), testDayTargets(2400), 0, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(plan.Meals) != 4 {
		t.Fatalf("expected 4 meals for 2400 kcal day, got %d", len(plan.Meals))
	}
}

func TestGenerateDayPlanEqualMealTargets(t *testing.T) {
	day := testDayTargets(2100)
	plan, err := GenerateDayPlan(testPool(), day, 0, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := day.CaloriesKcal / float64(len(plan.Meals))
	for i, m := range plan.Meals {
		if math.Abs(m.Target.CaloriesKcal-want) > 1e-9 {
			t.Errorf("meal %d: expected target %.1f kcal, got %.1f", i, want, m.Target.CaloriesKcal)
		}
	}
}

func TestGenerateDayPlanFreeMealCap(t *testing.T) {
	day := testDayTargets(2000)
	plan, err := GenerateDayPlan(testPool(), day, 1000, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	free := plan.Meals[len(plan.Meals)-1]
	if !free.IsFree {
		t.Fatal("expected last meal to be the free meal")
	}
	if free.Target.CaloriesKcal != 400 {
		t.Errorf("expected free meal capped at 400 kcal (20%% of 2000), got %.1f", free.Target.CaloriesKcal)
	}
	if len(free.Entries) != 0 {
		t.Errorf("free meal should have no food entries, got %d", len(free.Entries))
	}

	// 20/50/30 macro assumption for the reserved calories
	if free.Target.ProteinG != 20 {
		t.Errorf("expected 20 g protein for 400 kcal free meal, got %.1f", free.Target.ProteinG)
	}
	if free.Target.CarbsG != 50 {
		t.Errorf("expected 50 g carbs for 400 kcal free meal, got %.1f", free.Target.CarbsG)
	}
	if math.Abs(free.Target.FatG-13.3) > 0.05 {
		t.Errorf("expected ~13.3 g fat for 400 kcal free meal, got %.1f", free.Target.FatG)
	}

	// 2000 minus the 400 reserved leaves 1600, which fits in three meals.
	structured := 0
	for _, m := range plan.Meals {
		if !m.IsFree {
			structured++
		}
	}
	if structured != 3 {
		t.Errorf("expected 3 structured meals after free meal reservation, got %d", structured)
	}
}

func TestGenerateDayPlanTotalsSumMeals(t *testing.T) {
	plan, err := GenerateDayPlan(testPool(), testDayTargets(2200), 300, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var sum float64
	for _, m := range plan.Meals {
		sum += m.CaloriesKcal
	}
	if math.Abs(plan.CaloriesKcal-round1(sum)) > 0.11 {
		t.Errorf("day total %.1f does not match meal sum %.1f", plan.CaloriesKcal, sum)
	}
}

func TestGenerateDayPlanPoolTooSmall(t *testing.T) {
	_, err := GenerateDayPlan(testPool()[:5], testDayTargets(2000), 0, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrInsufficientVariety) {
		t.Errorf("expected ErrInsufficientVariety, got %v", err)
	}
}

func TestRegenerateMealKeepsTarget(t *testing.T) {
	pool := testPool()
	plan, err := GenerateDayPlan(pool, testDayTargets(2000), 0, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before := plan.Meals[1].Target
	if err := RegenerateMeal(&plan, 1, pool, rand.New(rand.NewSource(99))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Meals[1].Target != before {
		t.Errorf("regeneration changed the meal target: %+v vs %+v", plan.Meals[1].Target, before)
	}
}

func TestRegenerateMealIndexErrors(t *testing.T) {
	pool := testPool()
	plan, err := GenerateDayPlan(pool, testDayTargets(2000), 300, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := RegenerateMeal(&plan, len(plan.Meals), pool, rand.New(rand.NewSource(1))); !errors.Is(err, ErrMealIndex) {
		t.Errorf("expected ErrMealIndex for out-of-range index, got %v", err)
	}
	if err := RegenerateMeal(&plan, -1, pool, rand.New(rand.NewSource(1))); !errors.Is(err, ErrMealIndex) {
		t.Errorf("expected ErrMealIndex for negative index, got %v", err)
	}

	// Last meal is the free reservation; it has no foods to reshuffle.
	if err := RegenerateMeal(&plan, len(plan.Meals)-1, pool, rand.New(rand.NewSource(1))); !errors.Is(err, ErrMealIndex) {
		t.Errorf("expected ErrMealIndex for free meal, got %v", err)
	}
}
