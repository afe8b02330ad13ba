package diet

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/platefit/platefit/internal/catalog"
)

var ErrFoodNotFound = errors.New("food not found")

// FoodsStorage provides read access to the food catalog
type FoodsStorage interface {
	ListFoods(ctx context.Context) ([]catalog.Food, error)
	GetFood(ctx context.Context, id uuid.UUID) (*catalog.Food, error)
}

// Service answers catalog queries through the diet rule engine
type Service struct {
	foods FoodsStorage
}

// NewService creates a new diet service
func NewService(foods FoodsStorage) *Service {
	return &Service{foods: foods}
}

// ListFoods returns catalog foods, filtered to a diet when one is named.
// Pagination applies after filtering. An empty diet means no filter.
func (s *Service) ListFoods(ctx context.Context, dietName string, limit, offset int) ([]catalog.Food, int, error) {
	d := Diet(dietName)
	if dietName == "" {
		d = DietAll
	}
	if !d.Valid() {
		return nil, 0, ErrUnknownDiet
	}

	foods, err := s.foods.ListFoods(ctx)
	if err != nil {
		return nil, 0, err
	}

	matched, err := FilterFoodsByDiet(foods, d)
	if err != nil {
		return nil, 0, err
	}
	total := len(matched)

	if offset < 0 {
		offset = 0
	}
	if offset >= total {
		return []catalog.Food{}, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

// CompatibleDietsFor returns every diet one food passes.
func (s *Service) CompatibleDietsFor(ctx context.Context, foodID uuid.UUID) (*catalog.Food, []Diet, error) {
	food, err := s.foods.GetFood(ctx, foodID)
	if err != nil {
		return nil, nil, err
	}
	if food == nil {
		return nil, nil, ErrFoodNotFound
	}
	return food, CompatibleDiets(*food), nil
}
