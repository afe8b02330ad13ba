package targets

import "math"

// Energy cost of one unit of body mass, in the goal's unit system.
const (
	kcalPerKg = 7700
	kcalPerLb = 3500
)

// PaceResult is the outcome of one goal-pace calculation.
// AdjustmentPct is the realized (post-clamp, post-floor) percentage as a
// positive magnitude; the caller applies the sign for the direction.
type PaceResult struct {
	CaloriesKcal       int
	AdjustmentPct      float64
	TimelineDriven     bool
	DaysAtStandardPace int
}

// weightDeltaEnergy converts a weight difference (kg) into the kcal that
// difference represents, using the unit system's conventional constant.
func weightDeltaEnergy(deltaKg float64, units UnitSystem) float64 {
	if units == UnitsImperial {
		return deltaKg * lbPerKg * kcalPerLb
	}
	return deltaKg * kcalPerKg
}

// ComputeLossCalories converts a weight-loss goal into a daily calorie
// target. The deficit the literal timeline asks for is clamped between the
// pace's committed minimum and a body-fat-dependent safety cap, and the
// result never drops below an absolute floor of 1200 kcal/day.
func ComputeLossCalories(tdee int, weightKg, targetWeightKg float64, daysUntilGoal int, pace Pace, bodyFatPct *float64, sex Sex, units UnitSystem) PaceResult {
	if daysUntilGoal <= 0 {
		daysUntilGoal = 1
	}

	baseCap := capBand(lossDeficitCaps, sex, bodyFatPct)

	var paceCap float64
	switch pace {
	case PaceAggressive:
		paceCap = math.Min(baseCap+5, 35)
	case PaceConservative:
		paceCap = math.Max(baseCap-10, 15)
	default:
		paceCap = baseCap
	}

	energy := weightDeltaEnergy(weightKg-targetWeightKg, units)
	requiredPct := energy / float64(daysUntilGoal) / float64(tdee) * 100

	pct := clampFloat(requiredPct, paceMinimums[pace], paceCap)

	calories := float64(tdee) * (1 - pct/100)
	if calories < 1200 {
		calories = 1200
	}
	kcal := int(math.Round(calories))

	// Realized percentage is recomputed from the floored figure so the
	// display never claims a deficit the floor did not allow.
	realized := (1 - float64(kcal)/float64(tdee)) * 100

	return PaceResult{
		CaloriesKcal:  kcal,
		AdjustmentPct: math.Round(realized*10) / 10,
	}
}

// ComputeGainCalories converts a weight-gain goal into a daily calorie
// target. The asymmetry with the loss side is deliberate: an aggressive
// pace defaults to a fixed 20% surplus rather than chasing the timeline,
// unless the caller marked the target date authoritative, in which case
// the literal timeline wins (capped at 50%) and a high-surplus warning is
// raised when it exceeds the standard amount. Moderate and conservative
// paces follow the timeline, clamped to the body-fat-dependent cap.
func ComputeGainCalories(tdee int, weightKg, targetWeightKg float64, daysUntilGoal int, pace Pace, bodyFatPct *float64, sex Sex, units UnitSystem, timelineFixed bool) (PaceResult, error) {
	if daysUntilGoal <= 0 {
		return PaceResult{}, ErrDegenerateTimeline
	}

	energy := weightDeltaEnergy(targetWeightKg-weightKg, units)
	requiredPct := energy / float64(daysUntilGoal) / float64(tdee) * 100

	const standardAggressiveSurplus = 20.0

	var res PaceResult
	switch {
	case pace == PaceAggressive && !timelineFixed:
		res.AdjustmentPct = standardAggressiveSurplus
		// How long the goal would take at exactly the standard surplus,
		// so the caller can offer to move the date instead of overshooting.
		res.DaysAtStandardPace = int(math.Ceil(energy / (float64(tdee) * standardAggressiveSurplus / 100)))

	case pace == PaceAggressive && timelineFixed:
		res.AdjustmentPct = math.Min(requiredPct, 50)
		if res.AdjustmentPct > standardAggressiveSurplus {
			res.TimelineDriven = true
		}

	default:
		cap := capBand(gainSurplusCaps, sex, bodyFatPct)
		res.AdjustmentPct = clampFloat(requiredPct, 0, cap)
	}

	res.AdjustmentPct = math.Round(res.AdjustmentPct*10) / 10
	res.CaloriesKcal = int(math.Round(float64(tdee) * (1 + res.AdjustmentPct/100)))
	return res, nil
}
