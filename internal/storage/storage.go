package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/platefit/platefit/internal/catalog"
)

// Profile is a stored body profile. Weight/height fields follow the
// profile's unit system; normalization to kg/cm happens in the calculators.
type Profile struct {
	ID            uuid.UUID
	OwnerUserID   string
	Name          string
	Sex           string // "male" or "female"
	Age           int
	Units         string // "metric" or "imperial"
	WeightKg      float64
	HeightCm      float64
	WeightLb      float64
	HeightFt      int
	HeightIn      float64
	BodyFatPct    *float64
	ActivityLevel string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Storage is the profile store.
type Storage interface {
	ListProfiles(ctx context.Context, ownerUserID string) ([]Profile, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*Profile, error)
	CreateProfile(ctx context.Context, profile *Profile) error
	UpdateProfile(ctx context.Context, profile *Profile) error
	DeleteProfile(ctx context.Context, id uuid.UUID) error

	// Close releases the underlying connection (Postgres).
	Close() error
}

// NutritionTarget is the last computed target set for a profile.
// Recomputed and fully replaced whenever metrics or goal change.
type NutritionTarget struct {
	ID             uuid.UUID
	OwnerUserID    string
	ProfileID      uuid.UUID
	TDEEKcal       int
	CaloriesKcal   int
	ProteinG       int
	CarbsG         int
	FatG           int
	AdjustmentPct  float64
	TimelineDriven bool
	IsGain         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NutritionTargetUpsert carries the recomputed values for an upsert.
type NutritionTargetUpsert struct {
	TDEEKcal       int
	CaloriesKcal   int
	ProteinG       int
	CarbsG         int
	FatG           int
	AdjustmentPct  float64
	TimelineDriven bool
	IsGain         bool
}

// NutritionTargetsStorage stores one target set per (owner, profile).
type NutritionTargetsStorage interface {
	Get(ctx context.Context, ownerUserID string, profileID uuid.UUID) (*NutritionTarget, error)
	Upsert(ctx context.Context, ownerUserID string, profileID uuid.UUID, upsert NutritionTargetUpsert) (*NutritionTarget, error)
}

// MealPlan is a generated day plan's header row.
type MealPlan struct {
	ID          uuid.UUID
	OwnerUserID string
	ProfileID   uuid.UUID
	Diet        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MealPlanMeal is one meal slot of a plan. Entries holds the meal's food
// entries as a JSON payload; targets and flags live in columns so they
// survive regeneration.
type MealPlanMeal struct {
	ID                 uuid.UUID
	PlanID             uuid.UUID
	Index              int
	Name               string
	IsFree             bool
	TargetCaloriesKcal float64
	TargetProteinG     float64
	TargetCarbsG       float64
	TargetFatG         float64
	CaloriesKcal       float64
	ProteinG           float64
	CarbsG             float64
	FatG               float64
	Converged          bool
	Clamped            bool
	Entries            []byte
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// MealPlanMealUpsert is the write form of one meal slot.
type MealPlanMealUpsert struct {
	Index              int
	Name               string
	IsFree             bool
	TargetCaloriesKcal float64
	TargetProteinG     float64
	TargetCarbsG       float64
	TargetFatG         float64
	CaloriesKcal       float64
	ProteinG           float64
	CarbsG             float64
	FatG               float64
	Converged          bool
	Clamped            bool
	Entries            []byte
}

// MealPlansStorage stores the single active day plan per (owner, profile).
// A plan is always replaced whole: regeneration rewrites every slot.
type MealPlansStorage interface {
	GetActive(ctx context.Context, ownerUserID string, profileID uuid.UUID) (*MealPlan, []MealPlanMeal, bool, error)
	ReplaceActive(ctx context.Context, ownerUserID string, profileID uuid.UUID, diet string, meals []MealPlanMealUpsert) (*MealPlan, []MealPlanMeal, error)
	DeleteActive(ctx context.Context, ownerUserID string, profileID uuid.UUID) error
}

// FoodsStorage holds the food catalog. The catalog is reference data:
// loaded (or reloaded) whole, read-only to everything downstream.
type FoodsStorage interface {
	ListFoods(ctx context.Context) ([]catalog.Food, error)
	GetFood(ctx context.Context, id uuid.UUID) (*catalog.Food, error)
	ReplaceFoods(ctx context.Context, foods []catalog.Food) error
	CountFoods(ctx context.Context) (int, error)
}
