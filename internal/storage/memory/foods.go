package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/platefit/platefit/internal/catalog"
)

type foodsStorage struct {
	mu    sync.RWMutex
	foods map[uuid.UUID]catalog.Food
	order []uuid.UUID // sorted by name, stable across ListFoods calls
}

func newFoodsStorage() *foodsStorage {
	return &foodsStorage{
		foods: make(map[uuid.UUID]catalog.Food),
	}
}

func (s *foodsStorage) ListFoods(ctx context.Context) ([]catalog.Food, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	foods := make([]catalog.Food, 0, len(s.order))
	for _, id := range s.order {
		if f, ok := s.foods[id]; ok {
			foods = append(foods, f)
		}
	}

	return foods, nil
}

func (s *foodsStorage) GetFood(ctx context.Context, id uuid.UUID) (*catalog.Food, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.foods[id]
	if !ok {
		return nil, nil // not found, return nil without error
	}

	copied := f
	return &copied, nil
}

func (s *foodsStorage) ReplaceFoods(ctx context.Context, foods []catalog.Food) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.foods = make(map[uuid.UUID]catalog.Food, len(foods))
	s.order = make([]uuid.UUID, 0, len(foods))
	for _, f := range foods {
		if f.ID == uuid.Nil {
			f.ID = uuid.New()
		}
		s.foods[f.ID] = f
		s.order = append(s.order, f.ID)
	}
	sort.Slice(s.order, func(i, j int) bool {
		return s.foods[s.order[i]].Name < s.foods[s.order[j]].Name
	})

	return nil
}

func (s *foodsStorage) CountFoods(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.foods), nil
}
