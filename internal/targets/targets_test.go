package targets

import (
	"errors"
	"math"
	"testing"
	"time"
)

func fptr(v float64) *float64 { return &v }

func TestComputeBMRMifflin(t *testing.T) {
	got := ComputeBMR(70, 175, 30, SexMale, nil)
	if got != 1648.75 {
		t.Errorf("expected male BMR 1648.75, got %v", got)
	}

	got = ComputeBMR(70, 175, 30, SexFemale, nil)
	if got != 1482.75 {
		t.Errorf("expected female BMR 1482.75, got %v", got)
	}
}

func TestComputeBMRKatchMcArdle(t *testing.T) {
	// Known body fat switches the formula to lean-mass based; sex no
	// longer matters.
	male := ComputeBMR(70, 175, 30, SexMale, fptr(20))
	female := ComputeBMR(70, 175, 30, SexFemale, fptr(20))
	if math.Abs(male-1579.6) > 1e-9 {
		t.Errorf("expected Katch-McArdle BMR 1579.6, got %v", male)
	}
	if male != female {
		t.Errorf("lean-mass BMR should not depend on sex: %v vs %v", male, female)
	}
}

func TestComputeTDEE(t *testing.T) {
	if got := ComputeTDEE(1648.75, ActivityModerate); got != 2556 {
		t.Errorf("expected moderate TDEE 2556, got %d", got)
	}
	if got := ComputeTDEE(1648.75, ActivitySedentary); got != 1979 {
		t.Errorf("expected sedentary TDEE 1979, got %d", got)
	}
	// Unknown level falls back to the sedentary multiplier.
	if got := ComputeTDEE(1648.75, ActivityLevel("couch")); got != 1979 {
		t.Errorf("expected fallback TDEE 1979, got %d", got)
	}
}

func TestComputeTDEEMonotonic(t *testing.T) {
	levels := []ActivityLevel{ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityExtreme}
	prev := 0
	for _, level := range levels {
		got := ComputeTDEE(1650, level)
		if got <= prev {
			t.Errorf("TDEE at %s (%d) not above previous level (%d)", level, got, prev)
		}
		prev = got
	}
}

func TestComputeLossCaloriesClampsToMinimum(t *testing.T) {
	// 5 kg over 200 days asks for ~9.6%; moderate pace commits to 15%.
	res := ComputeLossCalories(2000, 90, 85, 200, PaceModerate, nil, SexMale, UnitsMetric)
	if res.AdjustmentPct != 15.0 {
		t.Errorf("expected deficit clamped up to 15%%, got %v", res.AdjustmentPct)
	}
	if res.CaloriesKcal != 1700 {
		t.Errorf("expected 1700 kcal, got %d", res.CaloriesKcal)
	}
}

func TestComputeLossCaloriesClampsToCap(t *testing.T) {
	// 40 kg in 30 days asks for an absurd deficit; aggressive pace with
	// unknown body fat caps at min(30+5, 35) = 35%.
	res := ComputeLossCalories(2000, 120, 80, 30, PaceAggressive, nil, SexMale, UnitsMetric)
	if res.AdjustmentPct != 35.0 {
		t.Errorf("expected deficit capped at 35%%, got %v", res.AdjustmentPct)
	}
	if res.CaloriesKcal != 1300 {
		t.Errorf("expected 1300 kcal, got %d", res.CaloriesKcal)
	}
}

func TestComputeLossCaloriesLeanCapTightens(t *testing.T) {
	// A lean male (<10% body fat) gets a 20% cap instead of 30%.
	res := ComputeLossCalories(2000, 120, 80, 30, PaceModerate, fptr(9), SexMale, UnitsMetric)
	if res.AdjustmentPct != 20.0 {
		t.Errorf("expected lean cap 20%%, got %v", res.AdjustmentPct)
	}
}

func TestComputeLossCaloriesFloor(t *testing.T) {
	// 35% of a 1400 TDEE lands at 910 kcal; the absolute floor lifts it
	// to 1200 and the realized percentage is recomputed from that.
	res := ComputeLossCalories(1400, 120, 80, 30, PaceAggressive, nil, SexMale, UnitsMetric)
	if res.CaloriesKcal != 1200 {
		t.Errorf("expected floor at 1200 kcal, got %d", res.CaloriesKcal)
	}
	if res.AdjustmentPct != 14.3 {
		t.Errorf("expected realized deficit 14.3%%, got %v", res.AdjustmentPct)
	}
}

func TestComputeGainCaloriesAggressiveStandardSurplus(t *testing.T) {
	res, err := ComputeGainCalories(2500, 70, 75, 100, PaceAggressive, nil, SexMale, UnitsMetric, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AdjustmentPct != 20.0 {
		t.Errorf("expected fixed 20%% surplus, got %v", res.AdjustmentPct)
	}
	if res.CaloriesKcal != 3000 {
		t.Errorf("expected 3000 kcal, got %d", res.CaloriesKcal)
	}
	// 38500 kcal of gain at 500 surplus kcal/day takes 77 days.
	if res.DaysAtStandardPace != 77 {
		t.Errorf("expected 77 days at standard pace, got %d", res.DaysAtStandardPace)
	}
	if res.TimelineDriven {
		t.Error("standard-surplus result should not be timeline driven")
	}
}

func TestComputeGainCaloriesAggressiveFixedTimeline(t *testing.T) {
	// 5 kg in 30 days needs ~51%; a fixed timeline honors it up to 50%
	// and flags the overshoot.
	res, err := ComputeGainCalories(2500, 70, 75, 30, PaceAggressive, nil, SexMale, UnitsMetric, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AdjustmentPct != 50.0 {
		t.Errorf("expected surplus capped at 50%%, got %v", res.AdjustmentPct)
	}
	if !res.TimelineDriven {
		t.Error("expected timeline-driven flag above the standard surplus")
	}
	if res.CaloriesKcal != 3750 {
		t.Errorf("expected 3750 kcal, got %d", res.CaloriesKcal)
	}
}

func TestComputeGainCaloriesModerateClampsToCap(t *testing.T) {
	// Unknown body fat on the gain side gets the widest band (25% male).
	res, err := ComputeGainCalories(2500, 70, 75, 30, PaceModerate, nil, SexMale, UnitsMetric, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AdjustmentPct != 25.0 {
		t.Errorf("expected surplus clamped to 25%%, got %v", res.AdjustmentPct)
	}
}

func TestComputeGainCaloriesDegenerateTimeline(t *testing.T) {
	_, err := ComputeGainCalories(2500, 70, 75, 0, PaceModerate, nil, SexMale, UnitsMetric, false)
	if !errors.Is(err, ErrDegenerateTimeline) {
		t.Errorf("expected ErrDegenerateTimeline, got %v", err)
	}
}

func TestComputeMacrosLoss(t *testing.T) {
	// 2000 kcal, 56 kg lean at 20% body fat: 2.0 g/kg protein,
	// 25% of calories as fat, carbs take the rest.
	split, err := ComputeMacros(2000, 56, fptr(20), false, SexMale, PaceModerate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if split.ProteinG != 112 {
		t.Errorf("expected 112 g protein, got %d", split.ProteinG)
	}
	if split.FatG != 56 {
		t.Errorf("expected 56 g fat, got %d", split.FatG)
	}
	if split.CarbsG != 263 {
		t.Errorf("expected 263 g carbs, got %d", split.CarbsG)
	}
}

func TestComputeMacrosAggressiveGainBonus(t *testing.T) {
	moderate, err := ComputeMacros(3000, 60, fptr(15), true, SexMale, PaceModerate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	aggressive, err := ComputeMacros(3000, 60, fptr(15), true, SexMale, PaceAggressive)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if aggressive.ProteinG-moderate.ProteinG != 12 {
		t.Errorf("expected +0.2 g/kg (12 g) on aggressive gain, got %d vs %d",
			aggressive.ProteinG, moderate.ProteinG)
	}
}

func TestComputeMacrosInfeasible(t *testing.T) {
	// 700 kcal cannot hold 162 g protein plus a 25% fat allowance.
	_, err := ComputeMacros(700, 90, nil, false, SexMale, PaceModerate)
	if !errors.Is(err, ErrInfeasibleMacros) {
		t.Errorf("expected ErrInfeasibleMacros, got %v", err)
	}
}

func TestComputeTargetsEndToEnd(t *testing.T) {
	today := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	profile := BodyProfile{
		Sex:           SexMale,
		Age:           30,
		Units:         UnitsMetric,
		WeightKg:      70,
		HeightCm:      175,
		ActivityLevel: ActivityModerate,
	}
	goal := GoalSpec{
		Type:        GoalWeight,
		TargetValue: 65,
		TargetDate:  "2026-04-11", // 100 days out
		Pace:        PaceModerate,
	}

	got, err := ComputeTargets(profile, goal, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.TDEEKcal != 2556 {
		t.Errorf("expected TDEE 2556, got %d", got.TDEEKcal)
	}
	// 5 kg over 100 days is 385 kcal/day below TDEE.
	if got.CaloriesKcal != 2171 {
		t.Errorf("expected 2171 kcal, got %d", got.CaloriesKcal)
	}
	if got.AdjustmentPct != -15.1 {
		t.Errorf("expected adjustment -15.1%%, got %v", got.AdjustmentPct)
	}
	if got.IsGain {
		t.Error("5 kg loss should not be flagged as gain")
	}
	if got.ProteinG != 101 {
		t.Errorf("expected 101 g protein, got %d", got.ProteinG)
	}
	if got.FatG != 60 {
		t.Errorf("expected 60 g fat, got %d", got.FatG)
	}
	if got.CarbsG != 306 {
		t.Errorf("expected 306 g carbs, got %d", got.CarbsG)
	}
}

func TestComputeTargetsEndToEndGain(t *testing.T) {
	today := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	bodyFat := 15.0
	profile := BodyProfile{
		Sex:           SexMale,
		Age:           30,
		Units:         UnitsMetric,
		WeightKg:      80,
		HeightCm:      180,
		BodyFatPct:    &bodyFat,
		ActivityLevel: ActivityModerate,
	}
	goal := GoalSpec{
		Type:        GoalWeight,
		TargetValue: 85,
		TargetDate:  "2026-07-20", // 200 days out
		Pace:        PaceModerate,
	}

	got, err := ComputeTargets(profile, goal, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Katch-McArdle: 370 + 21.6*68 = 1838.8, times 1.55 for moderate.
	if got.TDEEKcal != 2850 {
		t.Errorf("expected TDEE 2850, got %d", got.TDEEKcal)
	}
	if !got.IsGain {
		t.Fatal("5 kg gain should be flagged as gain")
	}
	if got.CaloriesKcal <= got.TDEEKcal {
		t.Errorf("gain calories %d should exceed TDEE %d", got.CaloriesKcal, got.TDEEKcal)
	}
	// 5 kg over 200 days needs a 192.5 kcal/day surplus, 6.8% of TDEE.
	if got.AdjustmentPct != 6.8 {
		t.Errorf("expected adjustment 6.8%%, got %v", got.AdjustmentPct)
	}
	if got.CaloriesKcal != 3044 {
		t.Errorf("expected 3044 kcal, got %d", got.CaloriesKcal)
	}
	if got.ProteinG != 163 {
		t.Errorf("expected 163 g protein, got %d", got.ProteinG)
	}
	if got.FatG != 101 {
		t.Errorf("expected 101 g fat, got %d", got.FatG)
	}
	if got.CarbsG != 370 {
		t.Errorf("expected 370 g carbs, got %d", got.CarbsG)
	}

	// The macro grams must re-sum to the calorie target, give or take the
	// per-macro rounding to whole grams.
	identity := got.ProteinG*4 + got.CarbsG*4 + got.FatG*9
	if diff := math.Abs(float64(identity - got.CaloriesKcal)); diff > 9 {
		t.Errorf("macro calories %d deviate %v kcal from target %d", identity, diff, got.CaloriesKcal)
	}
}

func TestComputeTargetsImperialUnits(t *testing.T) {
	today := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	profile := BodyProfile{
		Sex:           SexFemale,
		Age:           28,
		Units:         UnitsImperial,
		WeightLb:      154,
		HeightFt:      5,
		HeightIn:      5,
		ActivityLevel: ActivityLight,
	}
	goal := GoalSpec{
		Type:        GoalWeight,
		TargetValue: 140, // lb
		TargetDate:  "2026-06-01",
		Pace:        PaceConservative,
	}

	got, err := ComputeTargets(profile, goal, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.IsGain {
		t.Error("154 lb to 140 lb is a loss")
	}
	if got.CaloriesKcal >= got.TDEEKcal {
		t.Errorf("loss calories %d should sit below TDEE %d", got.CaloriesKcal, got.TDEEKcal)
	}
	if got.CaloriesKcal < 1200 {
		t.Errorf("calories %d below absolute floor", got.CaloriesKcal)
	}
}

func TestComputeTargetsBodyFatGoal(t *testing.T) {
	today := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	profile := BodyProfile{
		Sex:           SexMale,
		Age:           35,
		Units:         UnitsMetric,
		WeightKg:      90,
		HeightCm:      180,
		BodyFatPct:    fptr(25),
		ActivityLevel: ActivityModerate,
	}
	goal := GoalSpec{
		Type:        GoalBodyFat,
		TargetValue: 15,
		TargetDate:  "2026-12-01",
		Pace:        PaceModerate,
	}

	got, err := ComputeTargets(profile, goal, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Dropping from 25% to 15% at preserved lean mass is a weight loss.
	if got.IsGain {
		t.Error("body-fat reduction should be a loss")
	}
	if got.AdjustmentPct >= 0 {
		t.Errorf("expected negative adjustment, got %v", got.AdjustmentPct)
	}
}

func TestComputeTargetsBodyFatGoalRequiresBodyFat(t *testing.T) {
	today := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	profile := BodyProfile{
		Sex:           SexMale,
		Age:           35,
		Units:         UnitsMetric,
		WeightKg:      90,
		HeightCm:      180,
		ActivityLevel: ActivityModerate,
	}
	goal := GoalSpec{
		Type:        GoalBodyFat,
		TargetValue: 15,
		TargetDate:  "2026-12-01",
	}

	if _, err := ComputeTargets(profile, goal, today); err == nil {
		t.Error("expected error for body_fat goal without body_fat_pct")
	}
}

func TestComputeTargetsMaintenance(t *testing.T) {
	today := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	profile := BodyProfile{
		Sex:           SexMale,
		Age:           30,
		Units:         UnitsMetric,
		WeightKg:      70,
		HeightCm:      175,
		ActivityLevel: ActivityModerate,
	}
	goal := GoalSpec{
		Type:        GoalWeight,
		TargetValue: 70,
		TargetDate:  "2026-03-01",
	}

	got, err := ComputeTargets(profile, goal, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CaloriesKcal != got.TDEEKcal {
		t.Errorf("maintenance calories %d should equal TDEE %d", got.CaloriesKcal, got.TDEEKcal)
	}
	if got.AdjustmentPct != 0 {
		t.Errorf("expected zero adjustment, got %v", got.AdjustmentPct)
	}
}

func TestComputeTargetsPastDate(t *testing.T) {
	today := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	profile := BodyProfile{
		Sex:           SexMale,
		Age:           30,
		Units:         UnitsMetric,
		WeightKg:      70,
		HeightCm:      175,
		ActivityLevel: ActivityModerate,
	}
	goal := GoalSpec{
		Type:        GoalWeight,
		TargetValue: 65,
		TargetDate:  "2025-12-01",
	}

	if _, err := ComputeTargets(profile, goal, today); !errors.Is(err, ErrDegenerateTimeline) {
		t.Errorf("expected ErrDegenerateTimeline, got %v", err)
	}
}
