package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/platefit/platefit/internal/storage"
)

var (
	ErrNotFound = errors.New("profile not found")
)

// PostgresStorage is the Postgres implementation of Storage.
type PostgresStorage struct {
	pool             *pgxpool.Pool
	nutritionTargets *nutritionTargetsStorage
	mealPlans        *mealPlansStorage
	foods            *foodsStorage
}

// New connects to Postgres and pings it.
func New(ctx context.Context, databaseURL string) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &PostgresStorage{
		pool:             pool,
		nutritionTargets: newNutritionTargetsStorage(pool),
		mealPlans:        newMealPlansStorage(pool),
		foods:            newFoodsStorage(pool),
	}, nil
}

func (p *PostgresStorage) ListProfiles(ctx context.Context, ownerUserID string) ([]storage.Profile, error) {
	query := `
		SELECT id, owner_user_id, name, sex, age, units,
		       weight_kg, height_cm, weight_lb, height_ft, height_in,
		       body_fat_pct, activity_level, created_at, updated_at
		FROM profiles
		WHERE owner_user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := p.pool.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []storage.Profile{}
	for rows.Next() {
		var prof storage.Profile
		err := rows.Scan(
			&prof.ID,
			&prof.OwnerUserID,
			&prof.Name,
			&prof.Sex,
			&prof.Age,
			&prof.Units,
			&prof.WeightKg,
			&prof.HeightCm,
			&prof.WeightLb,
			&prof.HeightFt,
			&prof.HeightIn,
			&prof.BodyFatPct,
			&prof.ActivityLevel,
			&prof.CreatedAt,
			&prof.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, prof)
	}

	return profiles, rows.Err()
}

func (p *PostgresStorage) GetProfile(ctx context.Context, id uuid.UUID) (*storage.Profile, error) {
	query := `
		SELECT id, owner_user_id, name, sex, age, units,
		       weight_kg, height_cm, weight_lb, height_ft, height_in,
		       body_fat_pct, activity_level, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	var prof storage.Profile
	err := p.pool.QueryRow(ctx, query, id).Scan(
		&prof.ID,
		&prof.OwnerUserID,
		&prof.Name,
		&prof.Sex,
		&prof.Age,
		&prof.Units,
		&prof.WeightKg,
		&prof.HeightCm,
		&prof.WeightLb,
		&prof.HeightFt,
		&prof.HeightIn,
		&prof.BodyFatPct,
		&prof.ActivityLevel,
		&prof.CreatedAt,
		&prof.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return &prof, nil
}

func (p *PostgresStorage) CreateProfile(ctx context.Context, profile *storage.Profile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	query := `
		INSERT INTO profiles (id, owner_user_id, name, sex, age, units,
		                      weight_kg, height_cm, weight_lb, height_ft, height_in,
		                      body_fat_pct, activity_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := p.pool.Exec(ctx, query,
		profile.ID,
		profile.OwnerUserID,
		profile.Name,
		profile.Sex,
		profile.Age,
		profile.Units,
		profile.WeightKg,
		profile.HeightCm,
		profile.WeightLb,
		profile.HeightFt,
		profile.HeightIn,
		profile.BodyFatPct,
		profile.ActivityLevel,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	return err
}

func (p *PostgresStorage) UpdateProfile(ctx context.Context, profile *storage.Profile) error {
	profile.UpdatedAt = time.Now()

	query := `
		UPDATE profiles
		SET name = $2, sex = $3, age = $4, units = $5,
		    weight_kg = $6, height_cm = $7, weight_lb = $8, height_ft = $9, height_in = $10,
		    body_fat_pct = $11, activity_level = $12, updated_at = $13
		WHERE id = $1
	`

	result, err := p.pool.Exec(ctx, query,
		profile.ID,
		profile.Name,
		profile.Sex,
		profile.Age,
		profile.Units,
		profile.WeightKg,
		profile.HeightCm,
		profile.WeightLb,
		profile.HeightFt,
		profile.HeightIn,
		profile.BodyFatPct,
		profile.ActivityLevel,
		profile.UpdatedAt,
	)

	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (p *PostgresStorage) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM profiles WHERE id = $1`

	result, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// GetNutritionTargetsStorage returns nutrition targets storage.
func (p *PostgresStorage) GetNutritionTargetsStorage() storage.NutritionTargetsStorage {
	return p.nutritionTargets
}

// GetMealPlansStorage returns meal plans storage.
func (p *PostgresStorage) GetMealPlansStorage() storage.MealPlansStorage {
	return p.mealPlans
}

// GetFoodsStorage returns the food catalog storage.
func (p *PostgresStorage) GetFoodsStorage() storage.FoodsStorage {
	return p.foods
}
