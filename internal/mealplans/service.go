package mealplans

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/platefit/platefit/internal/catalog"
	"github.com/platefit/platefit/internal/diet"
	"github.com/platefit/platefit/internal/storage"
	"github.com/platefit/platefit/internal/userctx"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrTargetsNotFound = errors.New("nutrition targets not computed for profile")
	ErrInvalidDiet     = errors.New("unknown diet")
)

// Storage defines the interface for meal plan persistence
type Storage interface {
	GetActive(ctx context.Context, ownerUserID string, profileID uuid.UUID) (*storage.MealPlan, []storage.MealPlanMeal, bool, error)
	ReplaceActive(ctx context.Context, ownerUserID string, profileID uuid.UUID, dietName string, meals []storage.MealPlanMealUpsert) (*storage.MealPlan, []storage.MealPlanMeal, error)
	DeleteActive(ctx context.Context, ownerUserID string, profileID uuid.UUID) error
}

// FoodsStorage provides the food catalog the generator draws from
type FoodsStorage interface {
	ListFoods(ctx context.Context) ([]catalog.Food, error)
}

// TargetsStorage provides the computed daily targets for a profile
type TargetsStorage interface {
	Get(ctx context.Context, ownerUserID string, profileID uuid.UUID) (*storage.NutritionTarget, error)
}

// ProfileStorage defines the interface for profile operations
type ProfileStorage interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*storage.Profile, error)
}

// Service handles meal plan generation and persistence
type Service struct {
	storage  Storage
	foods    FoodsStorage
	targets  TargetsStorage
	profiles ProfileStorage

	// newRand yields a fresh source per generation; swapped in tests
	// for deterministic plans.
	newRand func() *rand.Rand
}

// NewService creates a new meal plan service
func NewService(st Storage, foods FoodsStorage, targets TargetsStorage, profiles ProfileStorage) *Service {
	return &Service{
		storage:  st,
		foods:    foods,
		targets:  targets,
		profiles: profiles,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// GeneratePlan builds a fresh day plan against the profile's stored
// targets, filtered to the requested diet, and replaces any existing
// active plan for the profile.
func (s *Service) GeneratePlan(ctx context.Context, req GeneratePlanRequest) (*PlanDTO, error) {
	if err := s.ensureProfileAccess(ctx, req.ProfileID); err != nil {
		return nil, ErrProfileNotFound
	}

	d := diet.Diet(req.Diet)
	if req.Diet == "" {
		d = diet.DietAll
	}
	if !d.Valid() {
		return nil, ErrInvalidDiet
	}

	ownerID, _ := userctx.GetUserID(ctx)
	target, err := s.targets.Get(ctx, ownerID, req.ProfileID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrTargetsNotFound
	}

	pool, err := s.loadPool(ctx, d)
	if err != nil {
		return nil, err
	}

	day := DayTargets{
		CaloriesKcal: float64(target.CaloriesKcal),
		ProteinG:     float64(target.ProteinG),
		CarbsG:       float64(target.CarbsG),
		FatG:         float64(target.FatG),
	}

	plan, err := GenerateDayPlan(pool, day, req.FreeMealKcal, s.newRand())
	if err != nil {
		return nil, err
	}

	return s.persist(ctx, ownerID, req.ProfileID, string(d), plan)
}

// GetActivePlan returns the profile's current plan, if one exists.
func (s *Service) GetActivePlan(ctx context.Context, profileID uuid.UUID) (*PlanDTO, error) {
	if err := s.ensureProfileAccess(ctx, profileID); err != nil {
		return nil, ErrProfileNotFound
	}

	ownerID, _ := userctx.GetUserID(ctx)
	header, stored, found, err := s.storage.GetActive(ctx, ownerID, profileID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrPlanNotFound
	}

	return planDTO(header, stored)
}

// RegenerateMeal reshuffles one structured meal of the active plan
// against its stored per-meal target and rewrites the plan.
func (s *Service) RegenerateMeal(ctx context.Context, profileID uuid.UUID, index int) (*PlanDTO, error) {
	if err := s.ensureProfileAccess(ctx, profileID); err != nil {
		return nil, ErrProfileNotFound
	}

	ownerID, _ := userctx.GetUserID(ctx)
	header, stored, found, err := s.storage.GetActive(ctx, ownerID, profileID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrPlanNotFound
	}

	plan, err := planFromStored(stored)
	if err != nil {
		return nil, err
	}

	pool, err := s.loadPool(ctx, diet.Diet(header.Diet))
	if err != nil {
		return nil, err
	}

	if err := RegenerateMeal(plan, index, pool, s.newRand()); err != nil {
		return nil, err
	}

	return s.persist(ctx, ownerID, profileID, header.Diet, *plan)
}

// DeletePlan removes the profile's active plan.
func (s *Service) DeletePlan(ctx context.Context, profileID uuid.UUID) error {
	if err := s.ensureProfileAccess(ctx, profileID); err != nil {
		return ErrProfileNotFound
	}

	ownerID, _ := userctx.GetUserID(ctx)
	return s.storage.DeleteActive(ctx, ownerID, profileID)
}

func (s *Service) loadPool(ctx context.Context, d diet.Diet) ([]catalog.Food, error) {
	foods, err := s.foods.ListFoods(ctx)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	return diet.FilterFoodsByDiet(foods, d)
}

func (s *Service) persist(ctx context.Context, ownerID string, profileID uuid.UUID, dietName string, plan DayPlan) (*PlanDTO, error) {
	upserts := make([]storage.MealPlanMealUpsert, 0, len(plan.Meals))
	for i, m := range plan.Meals {
		entries, err := json.Marshal(m.Entries)
		if err != nil {
			return nil, fmt.Errorf("encode meal entries: %w", err)
		}
		upserts = append(upserts, storage.MealPlanMealUpsert{
			Index:              i,
			Name:               m.Name,
			IsFree:             m.IsFree,
			TargetCaloriesKcal: m.Target.CaloriesKcal,
			TargetProteinG:     m.Target.ProteinG,
			TargetCarbsG:       m.Target.CarbsG,
			TargetFatG:         m.Target.FatG,
			CaloriesKcal:       m.CaloriesKcal,
			ProteinG:           m.ProteinG,
			CarbsG:             m.CarbsG,
			FatG:               m.FatG,
			Converged:          m.Converged,
			Clamped:            m.Clamped,
			Entries:            entries,
		})
	}

	header, stored, err := s.storage.ReplaceActive(ctx, ownerID, profileID, dietName, upserts)
	if err != nil {
		return nil, err
	}
	return planDTO(header, stored)
}

func planFromStored(stored []storage.MealPlanMeal) (*DayPlan, error) {
	plan := &DayPlan{Meals: make([]Meal, len(stored))}
	for _, sm := range stored {
		if sm.Index < 0 || sm.Index >= len(stored) {
			return nil, fmt.Errorf("stored meal index %d out of range", sm.Index)
		}
		meal := Meal{
			Name:   sm.Name,
			IsFree: sm.IsFree,
			Target: MealTarget{
				CaloriesKcal: sm.TargetCaloriesKcal,
				ProteinG:     sm.TargetProteinG,
				CarbsG:       sm.TargetCarbsG,
				FatG:         sm.TargetFatG,
			},
			CaloriesKcal: sm.CaloriesKcal,
			ProteinG:     sm.ProteinG,
			CarbsG:       sm.CarbsG,
			FatG:         sm.FatG,
			Converged:    sm.Converged,
			Clamped:      sm.Clamped,
		}
		if len(sm.Entries) > 0 {
			if err := json.Unmarshal(sm.Entries, &meal.Entries); err != nil {
				return nil, fmt.Errorf("decode meal entries: %w", err)
			}
		}
		plan.Meals[sm.Index] = meal
	}
	plan.recalcTotals()
	return plan, nil
}

func planDTO(header *storage.MealPlan, stored []storage.MealPlanMeal) (*PlanDTO, error) {
	plan, err := planFromStored(stored)
	if err != nil {
		return nil, err
	}
	return &PlanDTO{
		ID:           header.ID,
		ProfileID:    header.ProfileID,
		Diet:         header.Diet,
		Meals:        plan.Meals,
		CaloriesKcal: plan.CaloriesKcal,
		ProteinG:     plan.ProteinG,
		CarbsG:       plan.CarbsG,
		FatG:         plan.FatG,
		CreatedAt:    header.CreatedAt,
		UpdatedAt:    header.UpdatedAt,
	}, nil
}

func (s *Service) ensureProfileAccess(ctx context.Context, profileID uuid.UUID) error {
	profile, err := s.profiles.GetProfile(ctx, profileID)
	if err != nil || profile == nil {
		return ErrProfileNotFound
	}

	if userID, ok := userctx.GetUserID(ctx); ok && strings.TrimSpace(userID) != "" && profile.OwnerUserID != userID {
		return ErrProfileNotFound
	}

	return nil
}
