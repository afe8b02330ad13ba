package targets

import "math"

// activityMultipliers maps activity levels to their TDEE multiplier.
// This is the single source of truth for valid activity levels.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityActive:    1.725,
	ActivityExtreme:   1.9,
}

// ComputeBMR computes basal metabolic rate in kcal/day.
// With a known body-fat percentage it uses Katch-McArdle on lean mass;
// otherwise Mifflin-St Jeor with the sex-specific constant.
// Inputs are assumed pre-validated.
func ComputeBMR(weightKg, heightCm float64, age int, sex Sex, bodyFatPct *float64) float64 {
	if bodyFatPct != nil {
		leanMass := weightKg * (1 - *bodyFatPct/100)
		return 370 + 21.6*leanMass
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if sex == SexMale {
		return bmr + 5
	}
	return bmr - 161
}

// ComputeTDEE multiplies BMR by the activity multiplier, rounded to the
// nearest kcal. Unknown activity levels fall back to sedentary.
func ComputeTDEE(bmr float64, level ActivityLevel) int {
	mult, ok := activityMultipliers[level]
	if !ok {
		mult = activityMultipliers[ActivitySedentary]
	}
	return int(math.Round(bmr * mult))
}

// LeanBodyMassKg estimates lean mass from weight and body-fat percentage.
// When body fat is unknown a sex-typical default is assumed (20% male,
// 28% female) so macro math still has a lean-mass basis.
func LeanBodyMassKg(weightKg float64, sex Sex, bodyFatPct *float64) float64 {
	bf := 20.0
	if sex == SexFemale {
		bf = 28.0
	}
	if bodyFatPct != nil {
		bf = *bodyFatPct
	}
	return weightKg * (1 - bf/100)
}
