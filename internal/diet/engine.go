package diet

import (
	"errors"

	"github.com/platefit/platefit/internal/catalog"
)

var (
	ErrUnknownDiet = errors.New("unknown diet")
	// ErrNoCompatibleFoods is returned when a diet filter yields zero
	// matches. Callers must surface this instead of falling back to the
	// unfiltered catalog.
	ErrNoCompatibleFoods = errors.New("no foods compatible with diet")
)

// categoryInSet reports whether c descends from (or equals) any set member.
func categoryInSet(c catalog.Category, set []catalog.Category) bool {
	for _, member := range set {
		if c.IsA(member) {
			return true
		}
	}
	return false
}

// Compatible evaluates one food against one diet:
//
//  1. primary category on the deny-list → incompatible
//  2. compute whether the primary category is allowed
//  3. any secondary category on the secondary deny-list → incompatible
//  4. a disallowed primary can be rescued by an explicitly allowed secondary
//  5. the diet's special-case predicate gets the final word
//
// Every food is compatible with "all".
func Compatible(f catalog.Food, d Diet) bool {
	if d == DietAll {
		return true
	}

	r, ok := dietRules[d]
	if !ok {
		return false
	}

	if categoryInSet(f.PrimaryCategory, r.deny) {
		return false
	}

	compatible := categoryInSet(f.PrimaryCategory, r.allow)

	for _, sec := range f.SecondaryCategories {
		if categoryInSet(sec, r.denySecondary) {
			return false
		}
		if !compatible && categoryInSet(sec, r.allowSecondary) {
			compatible = true
		}
	}

	if r.special != nil {
		compatible = r.special(f, compatible)
	}

	return compatible
}

// FilterFoodsByDiet returns the subset of foods admissible under the diet.
// A filter that matches nothing is reported as ErrNoCompatibleFoods so the
// caller can prompt the user rather than silently widen the pool.
func FilterFoodsByDiet(foods []catalog.Food, d Diet) ([]catalog.Food, error) {
	if !d.Valid() {
		return nil, ErrUnknownDiet
	}

	out := make([]catalog.Food, 0, len(foods))
	for _, f := range foods {
		if Compatible(f, d) {
			out = append(out, f)
		}
	}
	if len(out) == 0 && len(foods) > 0 {
		return nil, ErrNoCompatibleFoods
	}
	return out, nil
}

// CompatibleDiets returns every diet the food satisfies, "all" included.
func CompatibleDiets(f catalog.Food) []Diet {
	out := make([]Diet, 0, len(AllDiets))
	for _, d := range AllDiets {
		if Compatible(f, d) {
			out = append(out, d)
		}
	}
	return out
}
