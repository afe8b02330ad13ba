package mealplans

import (
	"math"
	"math/rand"

	"github.com/platefit/platefit/internal/catalog"
)

const (
	// FreeMealMaxShare caps the free meal's calorie reservation at a
	// fifth of the daily budget.
	FreeMealMaxShare = 0.20

	// FourMealThreshold is the remaining-calorie level above which the
	// day is split into four structured meals instead of three.
	FourMealThreshold = 1800.0
)

var threeMealNames = []string{"Breakfast", "Lunch", "Dinner"}
var fourMealNames = []string{"Breakfast", "Lunch", "Snack", "Dinner"}

// GenerateDayPlan builds a full day of meals against the daily targets.
// A non-zero freeMealKcal reserves a discretionary meal (capped at 20%
// of the day's calories) with a fixed 20/50/30 macro assumption; the
// structured meals split whatever remains into equal per-meal targets.
func GenerateDayPlan(pool []catalog.Food, day DayTargets, freeMealKcal float64, rng *rand.Rand) (DayPlan, error) {
	if len(pool) < MinPoolSize {
		return DayPlan{}, ErrInsufficientVariety
	}

	remaining := day
	var freeMeal *Meal
	if freeMealKcal > 0 {
		kcal := math.Min(freeMealKcal, day.CaloriesKcal*FreeMealMaxShare)
		freeMeal = newFreeMeal(kcal)
		remaining.CaloriesKcal -= freeMeal.Target.CaloriesKcal
		remaining.ProteinG -= freeMeal.Target.ProteinG
		remaining.CarbsG -= freeMeal.Target.CarbsG
		remaining.FatG -= freeMeal.Target.FatG
	}

	names := threeMealNames
	if remaining.CaloriesKcal > FourMealThreshold {
		names = fourMealNames
	}

	n := float64(len(names))
	perMeal := MealTarget{
		CaloriesKcal: remaining.CaloriesKcal / n,
		ProteinG:     remaining.ProteinG / n,
		CarbsG:       remaining.CarbsG / n,
		FatG:         remaining.FatG / n,
	}

	plan := DayPlan{Meals: make([]Meal, 0, len(names)+1)}
	for _, name := range names {
		meal, err := BuildMeal(pool, name, perMeal, rng)
		if err != nil {
			return DayPlan{}, err
		}
		plan.Meals = append(plan.Meals, meal)
	}
	if freeMeal != nil {
		plan.Meals = append(plan.Meals, *freeMeal)
	}

	plan.recalcTotals()
	return plan, nil
}

// newFreeMeal reserves calories for an unplanned meal. No foods are
// attached; macros assume a typical 20% protein, 50% carb, 30% fat meal.
func newFreeMeal(kcal float64) *Meal {
	target := MealTarget{
		CaloriesKcal: kcal,
		ProteinG:     round1(kcal * 0.20 / 4),
		CarbsG:       round1(kcal * 0.50 / 4),
		FatG:         round1(kcal * 0.30 / 9),
	}
	return &Meal{
		Name:         "Free meal",
		IsFree:       true,
		Target:       target,
		CaloriesKcal: math.Round(target.CaloriesKcal),
		ProteinG:     target.ProteinG,
		CarbsG:       target.CarbsG,
		FatG:         target.FatG,
		Converged:    true,
	}
}

// RegenerateMeal rebuilds a single meal in place against its stored
// target, leaving the rest of the day untouched. Free meals have no
// foods to reshuffle and cannot be regenerated.
func RegenerateMeal(plan *DayPlan, index int, pool []catalog.Food, rng *rand.Rand) error {
	if index < 0 || index >= len(plan.Meals) {
		return ErrMealIndex
	}
	old := plan.Meals[index]
	if old.IsFree {
		return ErrMealIndex
	}

	meal, err := BuildMeal(pool, old.Name, old.Target, rng)
	if err != nil {
		return err
	}
	plan.Meals[index] = meal
	plan.recalcTotals()
	return nil
}
