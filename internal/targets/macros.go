package targets

import "math"

const (
	kcalPerGramProtein = 4
	kcalPerGramCarb    = 4
	kcalPerGramFat     = 9
)

// MacroSplit is the macro-gram breakdown of a daily calorie target.
type MacroSplit struct {
	ProteinG int
	CarbsG   int
	FatG     int
}

// ComputeMacros distributes a daily calorie target into macro grams.
// Protein scales with lean mass (banded by body fat), fat is a fixed
// fraction of calories (30% gain, 25% loss), carbs absorb the remainder.
// A negative carb remainder is surfaced as ErrInfeasibleMacros, never
// clamped: clamping would hide an unreachable calorie/protein combination.
func ComputeMacros(dailyCalories int, leanMassKg float64, bodyFatPct *float64, isGain bool, sex Sex, pace Pace) (MacroSplit, error) {
	tables := proteinPerKgLean[sex]
	bands := tables.loss
	if isGain {
		bands = tables.gain
	}

	// Unknown body fat lands in the most conservative (highest) band.
	bf := bands[len(bands)-1].limit
	if bodyFatPct != nil {
		bf = *bodyFatPct
	}
	gPerKg := lookupAtMost(bands, bf)

	// Aggressive bulks get extra substrate on top of the band value.
	if isGain && pace == PaceAggressive {
		gPerKg += 0.2
	}

	proteinG := leanMassKg * gPerKg
	proteinCal := proteinG * kcalPerGramProtein

	fatFraction := 0.25
	if isGain {
		fatFraction = 0.30
	}
	fatCal := float64(dailyCalories) * fatFraction
	fatG := fatCal / kcalPerGramFat

	carbCal := float64(dailyCalories) - proteinCal - fatCal
	if carbCal < 0 {
		return MacroSplit{}, ErrInfeasibleMacros
	}

	return MacroSplit{
		ProteinG: int(math.Round(proteinG)),
		CarbsG:   int(math.Round(carbCal / kcalPerGramCarb)),
		FatG:     int(math.Round(fatG)),
	}, nil
}
