package mealplans

import (
	"errors"
	"math"

	"github.com/google/uuid"
)

var (
	// ErrInsufficientVariety is the hard precondition failure for meal
	// generation: fewer than MinPoolSize distinct eligible foods.
	ErrInsufficientVariety = errors.New("insufficient food variety for meal generation")

	ErrPlanNotFound = errors.New("meal plan not found")
	ErrMealIndex    = errors.New("meal index out of range")
)

// MealTarget is the calorie/macro budget one meal is balanced against.
type MealTarget struct {
	CaloriesKcal float64 `json:"calories_kcal"`
	ProteinG     float64 `json:"protein_g"`
	CarbsG       float64 `json:"carbs_g"`
	FatG         float64 `json:"fat_g"`
}

// DayTargets is the full day's budget the orchestrator divides into meals.
type DayTargets struct {
	CaloriesKcal float64 `json:"calories_kcal"`
	ProteinG     float64 `json:"protein_g"`
	CarbsG       float64 `json:"carbs_g"`
	FatG         float64 `json:"fat_g"`
}

// MealFoodEntry is one selected food with its continuous serving
// multiplier and the resulting scaled macros.
type MealFoodEntry struct {
	FoodID       uuid.UUID `json:"food_id"`
	Name         string    `json:"name"`
	ServingLabel string    `json:"serving_label"`
	Servings     float64   `json:"servings"`
	CaloriesKcal float64   `json:"calories_kcal"`
	ProteinG     float64   `json:"protein_g"`
	CarbsG       float64   `json:"carbs_g"`
	FatG         float64   `json:"fat_g"`
}

// Meal is one constructed meal. Converged reports whether the correction
// loop reached tolerance; Clamped reports whether the final proportional
// shrink had to run. A free meal carries totals but no entries.
type Meal struct {
	Name         string          `json:"name"`
	IsFree       bool            `json:"is_free,omitempty"`
	Entries      []MealFoodEntry `json:"entries,omitempty"`
	Target       MealTarget      `json:"target"`
	CaloriesKcal float64         `json:"calories_kcal"`
	ProteinG     float64         `json:"protein_g"`
	CarbsG       float64         `json:"carbs_g"`
	FatG         float64         `json:"fat_g"`
	Converged    bool            `json:"converged"`
	Clamped      bool            `json:"clamped,omitempty"`
}

// DayPlan is a full day's worth of meals. It has no identity beyond the
// session: regenerable on demand and fully replaced on regeneration.
type DayPlan struct {
	Meals        []Meal  `json:"meals"`
	CaloriesKcal float64 `json:"calories_kcal"`
	ProteinG     float64 `json:"protein_g"`
	CarbsG       float64 `json:"carbs_g"`
	FatG         float64 `json:"fat_g"`
}

// recalcTotals refreshes the plan's aggregate figures from its meals.
func (p *DayPlan) recalcTotals() {
	p.CaloriesKcal, p.ProteinG, p.CarbsG, p.FatG = 0, 0, 0, 0
	for _, m := range p.Meals {
		p.CaloriesKcal += m.CaloriesKcal
		p.ProteinG += m.ProteinG
		p.CarbsG += m.CarbsG
		p.FatG += m.FatG
	}
	p.CaloriesKcal = math.Round(p.CaloriesKcal)
	p.ProteinG = round1(p.ProteinG)
	p.CarbsG = round1(p.CarbsG)
	p.FatG = round1(p.FatG)
}

// round1 rounds to one decimal place, the display precision for grams.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
