package targets

import (
	"errors"
	"fmt"
	"time"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
	ActivityExtreme   ActivityLevel = "extreme"
)

type Pace string

const (
	PaceConservative Pace = "conservative"
	PaceModerate     Pace = "moderate"
	PaceAggressive   Pace = "aggressive"
)

type GoalType string

const (
	GoalWeight  GoalType = "weight"
	GoalBodyFat GoalType = "body_fat"
)

type UnitSystem string

const (
	UnitsMetric   UnitSystem = "metric"
	UnitsImperial UnitSystem = "imperial"
)

const lbPerKg = 2.20462

var (
	// ErrDegenerateTimeline marks a goal date that is not strictly in the
	// future. Coercing such a date to "1 day" would produce a misleadingly
	// extreme calorie adjustment, so it is surfaced instead.
	ErrDegenerateTimeline = errors.New("goal date is not in the future")

	// ErrInfeasibleMacros marks a calorie/protein combination whose carb
	// remainder is negative. It is reported rather than clamped to zero.
	ErrInfeasibleMacros = errors.New("macro targets infeasible: negative carb remainder")
)

// BodyProfile carries the caller-supplied body metrics for one calculation.
// Metric profiles fill weight_kg/height_cm; imperial profiles fill
// weight_lb and height_ft/height_in.
type BodyProfile struct {
	Sex           Sex           `json:"sex"`
	Age           int           `json:"age"`
	Units         UnitSystem    `json:"units"`
	WeightKg      float64       `json:"weight_kg,omitempty"`
	HeightCm      float64       `json:"height_cm,omitempty"`
	WeightLb      float64       `json:"weight_lb,omitempty"`
	HeightFt      int           `json:"height_ft,omitempty"`
	HeightIn      float64       `json:"height_in,omitempty"`
	BodyFatPct    *float64      `json:"body_fat_pct,omitempty"`
	ActivityLevel ActivityLevel `json:"activity_level"`
}

// Validate reports the first missing or out-of-range required field.
// Activity level is not checked here: unknown levels have a defined
// fallback multiplier, unlike the hard metrics below.
func (p *BodyProfile) Validate() error {
	if p.Sex != SexMale && p.Sex != SexFemale {
		return fmt.Errorf("sex is required (male or female)")
	}
	if p.Age <= 0 {
		return fmt.Errorf("age is required and must be positive")
	}
	if p.Units == "" {
		p.Units = UnitsMetric
	}
	if p.Units != UnitsMetric && p.Units != UnitsImperial {
		return fmt.Errorf("units must be metric or imperial")
	}
	switch p.Units {
	case UnitsMetric:
		if p.WeightKg <= 0 {
			return fmt.Errorf("weight_kg is required and must be positive")
		}
		if p.HeightCm <= 0 {
			return fmt.Errorf("height_cm is required and must be positive")
		}
	case UnitsImperial:
		if p.WeightLb <= 0 {
			return fmt.Errorf("weight_lb is required and must be positive")
		}
		if p.HeightFt <= 0 && p.HeightIn <= 0 {
			return fmt.Errorf("height_ft/height_in is required and must be positive")
		}
	}
	if p.BodyFatPct != nil && (*p.BodyFatPct <= 0 || *p.BodyFatPct >= 100) {
		return fmt.Errorf("body_fat_pct must be between 0 and 100")
	}
	return nil
}

// Normalized returns weight in kg and height in cm regardless of the
// profile's unit system. Every formula downstream runs on these.
func (p BodyProfile) Normalized() (weightKg, heightCm float64) {
	if p.Units == UnitsImperial {
		return p.WeightLb / lbPerKg, (float64(p.HeightFt)*12 + p.HeightIn) * 2.54
	}
	return p.WeightKg, p.HeightCm
}

// GoalSpec describes the weight goal. TargetValue is a weight in the
// profile's units for type "weight", or a percentage for type "body_fat".
// TimelineFixed marks the target date as user-authoritative.
type GoalSpec struct {
	Type          GoalType `json:"type"`
	TargetValue   float64  `json:"target_value"`
	TargetDate    string   `json:"target_date"` // YYYY-MM-DD
	Pace          Pace     `json:"pace"`
	TimelineFixed bool     `json:"timeline_fixed,omitempty"`
}

// Validate checks the goal fields that have no defined fallback.
// Pace defaults to moderate when absent.
func (g *GoalSpec) Validate() error {
	if g.Type != GoalWeight && g.Type != GoalBodyFat {
		return fmt.Errorf("goal type is required (weight or body_fat)")
	}
	if g.TargetValue <= 0 {
		return fmt.Errorf("target_value is required and must be positive")
	}
	if g.Type == GoalBodyFat && g.TargetValue >= 100 {
		return fmt.Errorf("target_value must be below 100 for body_fat goals")
	}
	if _, err := time.Parse("2006-01-02", g.TargetDate); err != nil {
		return fmt.Errorf("target_date must be YYYY-MM-DD")
	}
	if g.Pace == "" {
		g.Pace = PaceModerate
	}
	if g.Pace != PaceConservative && g.Pace != PaceModerate && g.Pace != PaceAggressive {
		return fmt.Errorf("pace must be conservative, moderate or aggressive")
	}
	return nil
}

// NutritionTargets is the fully derived output of one calculation.
// AdjustmentPct is signed: positive surplus, negative deficit.
// TimelineDriven is set when the adjustment exceeded the pace-recommended
// cap because the caller fixed the goal date.
type NutritionTargets struct {
	TDEEKcal           int     `json:"tdee_kcal"`
	CaloriesKcal       int     `json:"calories_kcal"`
	ProteinG           int     `json:"protein_g"`
	CarbsG             int     `json:"carbs_g"`
	FatG               int     `json:"fat_g"`
	AdjustmentPct      float64 `json:"adjustment_pct"`
	TimelineDriven     bool    `json:"timeline_driven"`
	IsGain             bool    `json:"is_gain"`
	DaysAtStandardPace int     `json:"days_at_standard_pace,omitempty"`
}
