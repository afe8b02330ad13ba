package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/platefit/platefit/internal/storage"
)

type mealPlansStorage struct {
	mu sync.RWMutex
	// key: "ownerUserID:profileID" -> one active plan with its meal slots
	plans map[string]*storedPlan
}

type storedPlan struct {
	header storage.MealPlan
	meals  []storage.MealPlanMeal
}

func newMealPlansStorage() *mealPlansStorage {
	return &mealPlansStorage{
		plans: make(map[string]*storedPlan),
	}
}

func planKey(ownerUserID string, profileID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", ownerUserID, profileID.String())
}

func (s *mealPlansStorage) GetActive(ctx context.Context, ownerUserID string, profileID uuid.UUID) (*storage.MealPlan, []storage.MealPlanMeal, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.plans[planKey(ownerUserID, profileID)]
	if !ok {
		return nil, nil, false, nil
	}

	header := stored.header
	meals := make([]storage.MealPlanMeal, len(stored.meals))
	copy(meals, stored.meals)

	return &header, meals, true, nil
}

func (s *mealPlansStorage) ReplaceActive(ctx context.Context, ownerUserID string, profileID uuid.UUID, diet string, meals []storage.MealPlanMealUpsert) (*storage.MealPlan, []storage.MealPlanMeal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	planID := uuid.New()

	header := storage.MealPlan{
		ID:          planID,
		OwnerUserID: ownerUserID,
		ProfileID:   profileID,
		Diet:        diet,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	rows := make([]storage.MealPlanMeal, 0, len(meals))
	for _, m := range meals {
		entries := make([]byte, len(m.Entries))
		copy(entries, m.Entries)

		rows = append(rows, storage.MealPlanMeal{
			ID:                 uuid.New(),
			PlanID:             planID,
			Index:              m.Index,
			Name:               m.Name,
			IsFree:             m.IsFree,
			TargetCaloriesKcal: m.TargetCaloriesKcal,
			TargetProteinG:     m.TargetProteinG,
			TargetCarbsG:       m.TargetCarbsG,
			TargetFatG:         m.TargetFatG,
			CaloriesKcal:       m.CaloriesKcal,
			ProteinG:           m.ProteinG,
			CarbsG:             m.CarbsG,
			FatG:               m.FatG,
			Converged:          m.Converged,
			Clamped:            m.Clamped,
			Entries:            entries,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Index < rows[j].Index })

	s.plans[planKey(ownerUserID, profileID)] = &storedPlan{header: header, meals: rows}

	out := make([]storage.MealPlanMeal, len(rows))
	copy(out, rows)

	return &header, out, nil
}

func (s *mealPlansStorage) DeleteActive(ctx context.Context, ownerUserID string, profileID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.plans, planKey(ownerUserID, profileID))

	return nil
}
