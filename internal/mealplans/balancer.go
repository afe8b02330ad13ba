package mealplans

import (
	"math"
	"math/rand"
	"strings"

	"github.com/platefit/platefit/internal/catalog"
)

const (
	// Tolerance is the allowed relative deviation between a meal's actual
	// and target calories/protein.
	Tolerance = 0.05

	// ServingFloor is the smallest serving multiplier any entry may have.
	ServingFloor = 0.25

	// MaxCorrectionIterations bounds the post-construction correction loop.
	MaxCorrectionIterations = 10

	// MinPoolSize is the hard variety precondition for meal generation.
	MinPoolSize = 10
)

// vegetableAllowList names the foods eligible for the volume-filler phase.
// These are picked for plate plausibility, not macro math.
var vegetableAllowList = []string{
	"Broccoli",
	"Spinach",
	"Kale",
	"Carrots",
	"Bell Pepper",
	"Cauliflower",
	"Zucchini",
	"Asparagus",
	"Mixed Green Salad",
	"Tomato",
	"Cucumber",
	"Green Beans",
	"Cabbage",
}

// builderEntry keeps full-precision servings during construction.
// Rounding happens once, at meal assembly.
type builderEntry struct {
	food     catalog.Food
	servings float64
}

func (e builderEntry) calories() float64 { return e.food.CaloriesKcal * e.servings }
func (e builderEntry) protein() float64  { return e.food.ProteinG * e.servings }
func (e builderEntry) carbs() float64    { return e.food.CarbsG * e.servings }
func (e builderEntry) fat() float64      { return e.food.FatG * e.servings }

// proteinDensity ranks foods by how protein-dominant their calories are.
// Calorie correction walks this ranking from the bottom so carb/fat-heavy
// items absorb the adjustment and protein sources stay untouched.
func proteinDensity(f catalog.Food) float64 {
	if f.CaloriesKcal <= 0 {
		return 0
	}
	return f.ProteinG / f.CaloriesKcal
}

// BuildMeal selects foods and continuous serving multipliers that bring
// one meal within tolerance of the target. Construction runs in ordered
// phases (protein anchor, carb anchor, vegetable filler, fat top-up),
// then a bounded correction loop, then an unconditional safety clamp that
// guarantees the meal never overshoots even without convergence.
func BuildMeal(pool []catalog.Food, name string, target MealTarget, rng *rand.Rand) (Meal, error) {
	if len(pool) < MinPoolSize {
		return Meal{}, ErrInsufficientVariety
	}

	used := make(map[string]bool, 6)
	entries := make([]builderEntry, 0, 5)

	pick := func(candidates []catalog.Food) catalog.Food {
		return candidates[rng.Intn(len(candidates))]
	}
	available := func(filter func(catalog.Food) bool) []catalog.Food {
		out := make([]catalog.Food, 0, len(pool))
		for _, f := range pool {
			if !used[f.ID.String()] && filter(f) {
				out = append(out, f)
			}
		}
		return out
	}
	add := func(f catalog.Food, servings float64) {
		used[f.ID.String()] = true
		entries = append(entries, builderEntry{food: f, servings: servings})
	}

	// Phase 1: protein anchor. One or two high-protein foods split the
	// meal's protein target between them.
	proteinFoods := available(func(f catalog.Food) bool { return f.ProteinG > 10 })
	anchors := 1 + rng.Intn(2)
	if anchors > len(proteinFoods) {
		anchors = len(proteinFoods)
	}
	if anchors > 0 {
		share := target.ProteinG / float64(anchors)
		for i := 0; i < anchors; i++ {
			candidates := available(func(f catalog.Food) bool { return f.ProteinG > 10 })
			if len(candidates) == 0 {
				break
			}
			f := pick(candidates)
			add(f, clamp(share/f.ProteinG, 0.5, 2.0))
		}
	}

	// Phase 2: carb anchor.
	if carbFoods := available(func(f catalog.Food) bool { return f.CarbsG > 15 }); len(carbFoods) > 0 {
		f := pick(carbFoods)
		add(f, clamp(target.CarbsG/f.CarbsG, 0.5, 1.5))
	}

	// Phase 3: vegetable filler, unconstrained by macro math.
	if veg := available(isAllowedVegetable); len(veg) > 0 {
		servings := 1.0
		if rng.Intn(2) == 1 {
			servings = 1.5
		}
		add(pick(veg), servings)
	}

	// Phase 4: fat top-up, only when fat is meaningfully short.
	if currentFat := totalFat(entries); currentFat < 0.7*target.FatG {
		if fatFoods := available(func(f catalog.Food) bool { return f.FatG > 5 }); len(fatFoods) > 0 {
			f := pick(fatFoods)
			add(f, clamp((target.FatG-currentFat)/f.FatG, ServingFloor, 1.0))
		}
	}

	converged := correct(entries, target)

	clamped := clampOvershoot(entries, target)

	return assembleMeal(name, target, entries, converged, clamped), nil
}

// correct runs the bounded iterative correction pass. Protein is corrected
// first via the highest/lowest protein-density entries; once protein sits
// inside the band, calories are corrected through the least protein-dense
// entries. Returns true when both measures are within tolerance.
func correct(entries []builderEntry, target MealTarget) bool {
	for iter := 0; iter < MaxCorrectionIterations; iter++ {
		cal, prot := totals(entries)

		protLow, protHigh := target.ProteinG*(1-Tolerance), target.ProteinG*(1+Tolerance)
		calLow, calHigh := target.CaloriesKcal*(1-Tolerance), target.CaloriesKcal*(1+Tolerance)

		switch {
		case prot < protLow:
			nudge(entries, densest(entries), (target.ProteinG-prot), func(f catalog.Food) float64 { return f.ProteinG })
		case prot > protHigh:
			shrink(entries, leanest(entries), (prot-target.ProteinG), func(f catalog.Food) float64 { return f.ProteinG })
		case cal > calHigh:
			shrink(entries, leanest(entries), (cal-target.CaloriesKcal), func(f catalog.Food) float64 { return f.CaloriesKcal })
		case cal < calLow:
			nudge(entries, leanestAny(entries), (target.CaloriesKcal-cal), func(f catalog.Food) float64 { return f.CaloriesKcal })
		default:
			return true
		}
	}

	cal, prot := totals(entries)
	return withinBand(cal, target.CaloriesKcal) && withinBand(prot, target.ProteinG)
}

// nudge grows an entry's serving by the amount needed, capped at +0.25.
func nudge(entries []builderEntry, i int, missing float64, per func(catalog.Food) float64) {
	if i < 0 {
		return
	}
	perServing := per(entries[i].food)
	if perServing <= 0 {
		return
	}
	entries[i].servings += math.Min(0.25, missing/perServing)
}

// shrink reduces an entry's serving by the amount needed, capped at -0.25
// and floored at the minimum serving.
func shrink(entries []builderEntry, i int, excess float64, per func(catalog.Food) float64) {
	if i < 0 {
		return
	}
	perServing := per(entries[i].food)
	if perServing <= 0 {
		return
	}
	delta := math.Min(0.25, excess/perServing)
	delta = math.Min(delta, entries[i].servings-ServingFloor)
	if delta > 0 {
		entries[i].servings -= delta
	}
}

// densest returns the index of the most protein-dense entry.
func densest(entries []builderEntry) int {
	best, bestDensity := -1, -1.0
	for i, e := range entries {
		if d := proteinDensity(e.food); d > bestDensity {
			best, bestDensity = i, d
		}
	}
	return best
}

// leanest returns the index of the least protein-dense entry that still
// has room above the serving floor.
func leanest(entries []builderEntry) int {
	best := -1
	bestDensity := math.Inf(1)
	for i, e := range entries {
		if e.servings <= ServingFloor {
			continue
		}
		if d := proteinDensity(e.food); d < bestDensity {
			best, bestDensity = i, d
		}
	}
	return best
}

// leanestAny is the growth-direction counterpart: the serving floor only
// limits shrinking, so an at-floor entry is still a valid target when the
// meal needs more calories.
func leanestAny(entries []builderEntry) int {
	best := -1
	bestDensity := math.Inf(1)
	for i, e := range entries {
		if d := proteinDensity(e.food); d < bestDensity {
			best, bestDensity = i, d
		}
	}
	return best
}

// clampOvershoot applies a single proportional shrink when calories or
// protein still exceed the upper tolerance bound, guaranteeing the meal
// never overshoots at the cost of possibly undershooting. Individual
// servings never drop below the floor.
func clampOvershoot(entries []builderEntry, target MealTarget) bool {
	cal, prot := totals(entries)
	calMax := target.CaloriesKcal * (1 + Tolerance)
	protMax := target.ProteinG * (1 + Tolerance)

	if cal <= calMax && prot <= protMax {
		return false
	}

	factor := 1.0
	if cal > calMax && cal > 0 {
		factor = math.Min(factor, calMax/cal)
	}
	if prot > protMax && prot > 0 {
		factor = math.Min(factor, protMax/prot)
	}

	for i := range entries {
		entries[i].servings = math.Max(ServingFloor, entries[i].servings*factor)
	}
	return true
}

// assembleMeal converts builder state into the presentation form: grams
// to one decimal, calories to whole kcal, servings to quarter precision.
func assembleMeal(name string, target MealTarget, entries []builderEntry, converged, clamped bool) Meal {
	meal := Meal{
		Name:      name,
		Target:    target,
		Converged: converged,
		Clamped:   clamped,
		Entries:   make([]MealFoodEntry, 0, len(entries)),
	}

	var cal, prot, carbs, fat float64
	for _, e := range entries {
		cal += e.calories()
		prot += e.protein()
		carbs += e.carbs()
		fat += e.fat()

		meal.Entries = append(meal.Entries, MealFoodEntry{
			FoodID:       e.food.ID,
			Name:         e.food.Name,
			ServingLabel: e.food.ServingLabel,
			Servings:     math.Round(e.servings*100) / 100,
			CaloriesKcal: math.Round(e.calories()),
			ProteinG:     round1(e.protein()),
			CarbsG:       round1(e.carbs()),
			FatG:         round1(e.fat()),
		})
	}

	meal.CaloriesKcal = math.Round(cal)
	meal.ProteinG = round1(prot)
	meal.CarbsG = round1(carbs)
	meal.FatG = round1(fat)
	return meal
}

func totals(entries []builderEntry) (calories, protein float64) {
	for _, e := range entries {
		calories += e.calories()
		protein += e.protein()
	}
	return calories, protein
}

func totalFat(entries []builderEntry) float64 {
	var fat float64
	for _, e := range entries {
		fat += e.fat()
	}
	return fat
}

func withinBand(actual, target float64) bool {
	if target <= 0 {
		return true
	}
	return math.Abs(actual-target)/target <= Tolerance
}

func isAllowedVegetable(f catalog.Food) bool {
	for _, name := range vegetableAllowList {
		if strings.EqualFold(f.Name, name) {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
