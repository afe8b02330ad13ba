package targets

import (
	"fmt"
	"math"
	"time"
)

// ComputeTargets runs the full derivation chain for one profile and goal:
// BMR → TDEE → goal-paced daily calories → macro grams. It is a pure
// function of its inputs; today fixes the reference date for the timeline.
func ComputeTargets(profile BodyProfile, goal GoalSpec, today time.Time) (NutritionTargets, error) {
	if err := profile.Validate(); err != nil {
		return NutritionTargets{}, fmt.Errorf("invalid profile: %w", err)
	}
	if err := goal.Validate(); err != nil {
		return NutritionTargets{}, fmt.Errorf("invalid goal: %w", err)
	}

	weightKg, heightCm := profile.Normalized()
	bmr := ComputeBMR(weightKg, heightCm, profile.Age, profile.Sex, profile.BodyFatPct)
	tdee := ComputeTDEE(bmr, profile.ActivityLevel)
	leanMass := LeanBodyMassKg(weightKg, profile.Sex, profile.BodyFatPct)

	targetWeightKg, err := resolveTargetWeightKg(profile, goal, weightKg, leanMass)
	if err != nil {
		return NutritionTargets{}, err
	}

	days := daysUntil(today, goal.TargetDate)
	if days <= 0 {
		return NutritionTargets{}, ErrDegenerateTimeline
	}

	out := NutritionTargets{TDEEKcal: tdee}

	switch {
	case targetWeightKg > weightKg:
		res, err := ComputeGainCalories(tdee, weightKg, targetWeightKg, days, goal.Pace, profile.BodyFatPct, profile.Sex, profile.Units, goal.TimelineFixed)
		if err != nil {
			return NutritionTargets{}, err
		}
		out.IsGain = true
		out.CaloriesKcal = res.CaloriesKcal
		out.AdjustmentPct = res.AdjustmentPct
		out.TimelineDriven = res.TimelineDriven
		out.DaysAtStandardPace = res.DaysAtStandardPace

	case targetWeightKg < weightKg:
		res := ComputeLossCalories(tdee, weightKg, targetWeightKg, days, goal.Pace, profile.BodyFatPct, profile.Sex, profile.Units)
		out.CaloriesKcal = res.CaloriesKcal
		out.AdjustmentPct = -res.AdjustmentPct

	default:
		// Already at the target: maintenance.
		out.CaloriesKcal = tdee
	}

	macros, err := ComputeMacros(out.CaloriesKcal, leanMass, profile.BodyFatPct, out.IsGain, profile.Sex, goal.Pace)
	if err != nil {
		return NutritionTargets{}, err
	}
	out.ProteinG = macros.ProteinG
	out.CarbsG = macros.CarbsG
	out.FatG = macros.FatG

	return out, nil
}

// resolveTargetWeightKg converts the goal's target value into kilograms.
// Body-fat goals assume lean mass is preserved while fat mass changes.
func resolveTargetWeightKg(profile BodyProfile, goal GoalSpec, weightKg, leanMassKg float64) (float64, error) {
	switch goal.Type {
	case GoalBodyFat:
		if profile.BodyFatPct == nil {
			return 0, fmt.Errorf("invalid goal: body_fat_pct is required for body_fat goals")
		}
		return leanMassKg / (1 - goal.TargetValue/100), nil
	default:
		if profile.Units == UnitsImperial {
			return goal.TargetValue / lbPerKg, nil
		}
		return goal.TargetValue, nil
	}
}

// daysUntil counts whole days from today to the goal date, both at UTC
// midnight so the count does not wobble with the time of day.
func daysUntil(today time.Time, targetDate string) int {
	target, err := time.Parse("2006-01-02", targetDate)
	if err != nil {
		return 0
	}
	y, m, d := today.UTC().Date()
	todayMidnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(math.Round(target.Sub(todayMidnight).Hours() / 24))
}
