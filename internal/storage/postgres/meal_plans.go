package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/platefit/platefit/internal/storage"
)

type mealPlansStorage struct {
	pool *pgxpool.Pool
}

func newMealPlansStorage(pool *pgxpool.Pool) *mealPlansStorage {
	return &mealPlansStorage{pool: pool}
}

func (s *mealPlansStorage) GetActive(ctx context.Context, ownerUserID string, profileID uuid.UUID) (*storage.MealPlan, []storage.MealPlanMeal, bool, error) {
	planQuery := `
		SELECT id, owner_user_id, profile_id, diet, created_at, updated_at
		FROM meal_plans
		WHERE owner_user_id = $1 AND profile_id = $2
	`

	var plan storage.MealPlan
	err := s.pool.QueryRow(ctx, planQuery, ownerUserID, profileID).Scan(
		&plan.ID,
		&plan.OwnerUserID,
		&plan.ProfileID,
		&plan.Diet,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil, false, nil
	}
	if err != nil {
		return nil, nil, false, fmt.Errorf("failed to get active meal plan: %w", err)
	}

	mealsQuery := `
		SELECT id, plan_id, slot_index, name, is_free,
		       target_calories_kcal, target_protein_g, target_carbs_g, target_fat_g,
		       calories_kcal, protein_g, carbs_g, fat_g,
		       converged, clamped, entries, created_at, updated_at
		FROM meal_plan_meals
		WHERE plan_id = $1
		ORDER BY slot_index
	`

	rows, err := s.pool.Query(ctx, mealsQuery, plan.ID)
	if err != nil {
		return nil, nil, false, fmt.Errorf("failed to get meal plan meals: %w", err)
	}
	defer rows.Close()

	var meals []storage.MealPlanMeal
	for rows.Next() {
		var meal storage.MealPlanMeal
		err := rows.Scan(
			&meal.ID,
			&meal.PlanID,
			&meal.Index,
			&meal.Name,
			&meal.IsFree,
			&meal.TargetCaloriesKcal,
			&meal.TargetProteinG,
			&meal.TargetCarbsG,
			&meal.TargetFatG,
			&meal.CaloriesKcal,
			&meal.ProteinG,
			&meal.CarbsG,
			&meal.FatG,
			&meal.Converged,
			&meal.Clamped,
			&meal.Entries,
			&meal.CreatedAt,
			&meal.UpdatedAt,
		)
		if err != nil {
			return nil, nil, false, fmt.Errorf("failed to scan meal plan meal: %w", err)
		}
		meals = append(meals, meal)
	}

	if rows.Err() != nil {
		return nil, nil, false, fmt.Errorf("error iterating meal plan meals: %w", rows.Err())
	}

	return &plan, meals, true, nil
}

func (s *mealPlansStorage) ReplaceActive(ctx context.Context, ownerUserID string, profileID uuid.UUID, diet string, meals []storage.MealPlanMealUpsert) (*storage.MealPlan, []storage.MealPlanMeal, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Delete existing plan; meal rows go with it via CASCADE
	deleteQuery := `
		DELETE FROM meal_plans
		WHERE owner_user_id = $1 AND profile_id = $2
	`
	_, err = tx.Exec(ctx, deleteQuery, ownerUserID, profileID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to delete existing meal plan: %w", err)
	}

	planQuery := `
		INSERT INTO meal_plans (owner_user_id, profile_id, diet)
		VALUES ($1, $2, $3)
		RETURNING id, owner_user_id, profile_id, diet, created_at, updated_at
	`

	var plan storage.MealPlan
	err = tx.QueryRow(ctx, planQuery, ownerUserID, profileID, diet).Scan(
		&plan.ID,
		&plan.OwnerUserID,
		&plan.ProfileID,
		&plan.Diet,
		&plan.CreatedAt,
		&plan.UpdatedAt,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create meal plan: %w", err)
	}

	mealQuery := `
		INSERT INTO meal_plan_meals (plan_id, slot_index, name, is_free,
		                             target_calories_kcal, target_protein_g, target_carbs_g, target_fat_g,
		                             calories_kcal, protein_g, carbs_g, fat_g,
		                             converged, clamped, entries)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, plan_id, slot_index, name, is_free,
		          target_calories_kcal, target_protein_g, target_carbs_g, target_fat_g,
		          calories_kcal, protein_g, carbs_g, fat_g,
		          converged, clamped, entries, created_at, updated_at
	`

	var inserted []storage.MealPlanMeal
	for _, m := range meals {
		var meal storage.MealPlanMeal
		err = tx.QueryRow(
			ctx,
			mealQuery,
			plan.ID,
			m.Index,
			m.Name,
			m.IsFree,
			m.TargetCaloriesKcal,
			m.TargetProteinG,
			m.TargetCarbsG,
			m.TargetFatG,
			m.CaloriesKcal,
			m.ProteinG,
			m.CarbsG,
			m.FatG,
			m.Converged,
			m.Clamped,
			m.Entries,
		).Scan(
			&meal.ID,
			&meal.PlanID,
			&meal.Index,
			&meal.Name,
			&meal.IsFree,
			&meal.TargetCaloriesKcal,
			&meal.TargetProteinG,
			&meal.TargetCarbsG,
			&meal.TargetFatG,
			&meal.CaloriesKcal,
			&meal.ProteinG,
			&meal.CarbsG,
			&meal.FatG,
			&meal.Converged,
			&meal.Clamped,
			&meal.Entries,
			&meal.CreatedAt,
			&meal.UpdatedAt,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to insert meal plan meal: %w", err)
		}
		inserted = append(inserted, meal)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &plan, inserted, nil
}

func (s *mealPlansStorage) DeleteActive(ctx context.Context, ownerUserID string, profileID uuid.UUID) error {
	query := `
		DELETE FROM meal_plans
		WHERE owner_user_id = $1 AND profile_id = $2
	`

	if _, err := s.pool.Exec(ctx, query, ownerUserID, profileID); err != nil {
		return fmt.Errorf("failed to delete active meal plan: %w", err)
	}

	// No error if nothing was deleted (no active plan)
	return nil
}
