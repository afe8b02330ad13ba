package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/platefit/platefit/internal/storage"
)

type nutritionTargetsStorage struct {
	mu      sync.RWMutex
	targets map[string]*storage.NutritionTarget // key: "ownerUserID:profileID"
}

func newNutritionTargetsStorage() *nutritionTargetsStorage {
	return &nutritionTargetsStorage{
		targets: make(map[string]*storage.NutritionTarget),
	}
}

func (s *nutritionTargetsStorage) Get(ctx context.Context, ownerUserID string, profileID uuid.UUID) (*storage.NutritionTarget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := fmt.Sprintf("%s:%s", ownerUserID, profileID.String())
	target, ok := s.targets[key]
	if !ok {
		return nil, nil // not found, return nil without error
	}

	// Return a copy
	copied := *target
	return &copied, nil
}

func (s *nutritionTargetsStorage) Upsert(ctx context.Context, ownerUserID string, profileID uuid.UUID, upsert storage.NutritionTargetUpsert) (*storage.NutritionTarget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := fmt.Sprintf("%s:%s", ownerUserID, profileID.String())
	now := time.Now().UTC()

	existing, ok := s.targets[key]
	if ok {
		// Update existing
		existing.TDEEKcal = upsert.TDEEKcal
		existing.CaloriesKcal = upsert.CaloriesKcal
		existing.ProteinG = upsert.ProteinG
		existing.CarbsG = upsert.CarbsG
		existing.FatG = upsert.FatG
		existing.AdjustmentPct = upsert.AdjustmentPct
		existing.TimelineDriven = upsert.TimelineDriven
		existing.IsGain = upsert.IsGain
		existing.UpdatedAt = now

		copied := *existing
		return &copied, nil
	}

	// Create new
	target := &storage.NutritionTarget{
		ID:             uuid.New(),
		OwnerUserID:    ownerUserID,
		ProfileID:      profileID,
		TDEEKcal:       upsert.TDEEKcal,
		CaloriesKcal:   upsert.CaloriesKcal,
		ProteinG:       upsert.ProteinG,
		CarbsG:         upsert.CarbsG,
		FatG:           upsert.FatG,
		AdjustmentPct:  upsert.AdjustmentPct,
		TimelineDriven: upsert.TimelineDriven,
		IsGain:         upsert.IsGain,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	s.targets[key] = target

	copied := *target
	return &copied, nil
}
