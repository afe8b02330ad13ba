package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/platefit/platefit/internal/catalog"
)

type foodsStorage struct {
	pool *pgxpool.Pool
}

func newFoodsStorage(pool *pgxpool.Pool) *foodsStorage {
	return &foodsStorage{pool: pool}
}

const foodColumns = `id, name, serving_label, serving_grams, calories_kcal, protein_g, carbs_g, fat_g,
	       primary_category, secondary_categories, diet_tags`

func scanFood(row pgx.Row) (catalog.Food, error) {
	var f catalog.Food
	var primary string
	var secondary []string

	err := row.Scan(
		&f.ID,
		&f.Name,
		&f.ServingLabel,
		&f.ServingGrams,
		&f.CaloriesKcal,
		&f.ProteinG,
		&f.CarbsG,
		&f.FatG,
		&primary,
		&secondary,
		&f.DietTags,
	)
	if err != nil {
		return catalog.Food{}, err
	}

	f.PrimaryCategory = catalog.Category(primary)
	f.SecondaryCategories = make([]catalog.Category, 0, len(secondary))
	for _, c := range secondary {
		f.SecondaryCategories = append(f.SecondaryCategories, catalog.Category(c))
	}
	if len(f.SecondaryCategories) == 0 {
		f.SecondaryCategories = nil
	}

	return f, nil
}

func (s *foodsStorage) ListFoods(ctx context.Context) ([]catalog.Food, error) {
	query := `
		SELECT ` + foodColumns + `
		FROM foods
		ORDER BY name ASC
	`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	defer rows.Close()

	var foods []catalog.Food
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan food: %w", err)
		}
		foods = append(foods, f)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating foods: %w", rows.Err())
	}

	return foods, nil
}

func (s *foodsStorage) GetFood(ctx context.Context, id uuid.UUID) (*catalog.Food, error) {
	query := `
		SELECT ` + foodColumns + `
		FROM foods
		WHERE id = $1
	`

	f, err := scanFood(s.pool.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil // not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get food: %w", err)
	}

	return &f, nil
}

func (s *foodsStorage) ReplaceFoods(ctx context.Context, foods []catalog.Food) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM foods`); err != nil {
		return fmt.Errorf("failed to clear foods: %w", err)
	}

	insertQuery := `
		INSERT INTO foods (id, name, serving_label, serving_grams, calories_kcal, protein_g, carbs_g, fat_g,
		                   primary_category, secondary_categories, diet_tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	for _, f := range foods {
		if f.ID == uuid.Nil {
			f.ID = uuid.New()
		}

		secondary := make([]string, 0, len(f.SecondaryCategories))
		for _, c := range f.SecondaryCategories {
			secondary = append(secondary, string(c))
		}
		tags := f.DietTags
		if tags == nil {
			tags = []string{}
		}

		_, err := tx.Exec(ctx, insertQuery,
			f.ID,
			f.Name,
			f.ServingLabel,
			f.ServingGrams,
			f.CaloriesKcal,
			f.ProteinG,
			f.CarbsG,
			f.FatG,
			string(f.PrimaryCategory),
			secondary,
			tags,
		)
		if err != nil {
			return fmt.Errorf("failed to insert food %q: %w", f.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *foodsStorage) CountFoods(ctx context.Context) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx, `SELECT count(*) FROM foods`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count foods: %w", err)
	}

	return count, nil
}
