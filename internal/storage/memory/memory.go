package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/platefit/platefit/internal/storage"
)

var (
	ErrNotFound = errors.New("profile not found")
)

// MemoryStorage is the in-memory implementation of Storage. Used when no
// DATABASE_URL is configured; everything lives for the process lifetime.
type MemoryStorage struct {
	mu               sync.RWMutex
	profiles         map[uuid.UUID]storage.Profile
	nutritionTargets *nutritionTargetsStorage
	mealPlans        *mealPlansStorage
	foods            *foodsStorage
}

// New creates an empty MemoryStorage.
func New() *MemoryStorage {
	return &MemoryStorage{
		profiles:         make(map[uuid.UUID]storage.Profile),
		nutritionTargets: newNutritionTargetsStorage(),
		mealPlans:        newMealPlansStorage(),
		foods:            newFoodsStorage(),
	}
}

func (m *MemoryStorage) ListProfiles(ctx context.Context, ownerUserID string) ([]storage.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	profiles := make([]storage.Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		if p.OwnerUserID == ownerUserID {
			profiles = append(profiles, p)
		}
	}

	return profiles, nil
}

func (m *MemoryStorage) GetProfile(ctx context.Context, id uuid.UUID) (*storage.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.profiles[id]
	if !ok {
		return nil, ErrNotFound
	}

	return &p, nil
}

func (m *MemoryStorage) CreateProfile(ctx context.Context, profile *storage.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}

	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()

	m.profiles[profile.ID] = *profile

	return nil
}

func (m *MemoryStorage) UpdateProfile(ctx context.Context, profile *storage.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.profiles[profile.ID]; !ok {
		return ErrNotFound
	}

	profile.UpdatedAt = time.Now()
	m.profiles[profile.ID] = *profile

	return nil
}

func (m *MemoryStorage) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.profiles[id]; !ok {
		return ErrNotFound
	}

	delete(m.profiles, id)

	return nil
}

func (m *MemoryStorage) Close() error {
	// no-op for memory
	return nil
}

// GetNutritionTargetsStorage returns nutrition targets storage.
func (m *MemoryStorage) GetNutritionTargetsStorage() storage.NutritionTargetsStorage {
	return m.nutritionTargets
}

// GetMealPlansStorage returns meal plans storage.
func (m *MemoryStorage) GetMealPlansStorage() storage.MealPlansStorage {
	return m.mealPlans
}

// GetFoodsStorage returns the food catalog storage.
func (m *MemoryStorage) GetFoodsStorage() storage.FoodsStorage {
	return m.foods
}
