package targets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/platefit/platefit/internal/storage"
	"github.com/platefit/platefit/internal/userctx"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrTargetsNotFound = errors.New("no targets computed for profile")
	ErrMissingProfile  = errors.New("either inline profile metrics or profile_id is required")
	ErrInvalidInput    = errors.New("invalid input")
)

// TargetsStorage persists one computed target set per (owner, profile)
type TargetsStorage interface {
	Get(ctx context.Context, ownerUserID string, profileID uuid.UUID) (*storage.NutritionTarget, error)
	Upsert(ctx context.Context, ownerUserID string, profileID uuid.UUID, upsert storage.NutritionTargetUpsert) (*storage.NutritionTarget, error)
}

// ProfileStorage defines the interface for profile operations
type ProfileStorage interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*storage.Profile, error)
}

// Service runs target calculations and persists results per profile
type Service struct {
	targets  TargetsStorage
	profiles ProfileStorage

	// now is swapped in tests for a fixed calculation date.
	now func() time.Time
}

// NewService creates a new targets service
func NewService(targets TargetsStorage, profiles ProfileStorage) *Service {
	return &Service{
		targets:  targets,
		profiles: profiles,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// ComputeRequest is the request body for POST /v1/targets/compute.
// Profile metrics come inline or, when omitted, from the stored profile
// named by ProfileID. A non-nil ProfileID also persists the result.
type ComputeRequest struct {
	ProfileID uuid.UUID    `json:"profile_id,omitempty"`
	Profile   *BodyProfile `json:"profile,omitempty"`
	Goal      GoalSpec     `json:"goal"`
}

// Compute derives nutrition targets for the request and, when a profile
// id is present, replaces that profile's stored target set.
func (s *Service) Compute(ctx context.Context, req ComputeRequest) (*NutritionTargets, error) {
	profile, err := s.resolveProfile(ctx, req)
	if err != nil {
		return nil, err
	}

	result, err := ComputeTargets(profile, req.Goal, s.now())
	if err != nil {
		if errors.Is(err, ErrDegenerateTimeline) || errors.Is(err, ErrInfeasibleMacros) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.ProfileID != uuid.Nil {
		ownerID, _ := userctx.GetUserID(ctx)
		_, err := s.targets.Upsert(ctx, ownerID, req.ProfileID, storage.NutritionTargetUpsert{
			TDEEKcal:       result.TDEEKcal,
			CaloriesKcal:   result.CaloriesKcal,
			ProteinG:       result.ProteinG,
			CarbsG:         result.CarbsG,
			FatG:           result.FatG,
			AdjustmentPct:  result.AdjustmentPct,
			TimelineDriven: result.TimelineDriven,
			IsGain:         result.IsGain,
		})
		if err != nil {
			return nil, fmt.Errorf("persist targets: %w", err)
		}
	}

	return &result, nil
}

// GetStored returns the last computed target set for a profile.
func (s *Service) GetStored(ctx context.Context, profileID uuid.UUID) (*StoredTargetsDTO, error) {
	if err := s.ensureProfileAccess(ctx, profileID); err != nil {
		return nil, ErrProfileNotFound
	}

	ownerID, _ := userctx.GetUserID(ctx)
	target, err := s.targets.Get(ctx, ownerID, profileID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrTargetsNotFound
	}

	dto := storedTargetsDTO(target)
	return &dto, nil
}

func (s *Service) resolveProfile(ctx context.Context, req ComputeRequest) (BodyProfile, error) {
	if req.Profile != nil {
		if req.ProfileID != uuid.Nil {
			if err := s.ensureProfileAccess(ctx, req.ProfileID); err != nil {
				return BodyProfile{}, ErrProfileNotFound
			}
		}
		return *req.Profile, nil
	}
	if req.ProfileID == uuid.Nil {
		return BodyProfile{}, ErrMissingProfile
	}

	if err := s.ensureProfileAccess(ctx, req.ProfileID); err != nil {
		return BodyProfile{}, ErrProfileNotFound
	}
	stored, err := s.profiles.GetProfile(ctx, req.ProfileID)
	if err != nil || stored == nil {
		return BodyProfile{}, ErrProfileNotFound
	}
	return profileFromStored(stored), nil
}

func profileFromStored(p *storage.Profile) BodyProfile {
	return BodyProfile{
		Sex:           Sex(p.Sex),
		Age:           p.Age,
		Units:         UnitSystem(p.Units),
		WeightKg:      p.WeightKg,
		HeightCm:      p.HeightCm,
		WeightLb:      p.WeightLb,
		HeightFt:      p.HeightFt,
		HeightIn:      p.HeightIn,
		BodyFatPct:    p.BodyFatPct,
		ActivityLevel: ActivityLevel(p.ActivityLevel),
	}
}

// StoredTargetsDTO is the API representation of a persisted target set
type StoredTargetsDTO struct {
	ID             uuid.UUID `json:"id"`
	ProfileID      uuid.UUID `json:"profile_id"`
	TDEEKcal       int       `json:"tdee_kcal"`
	CaloriesKcal   int       `json:"calories_kcal"`
	ProteinG       int       `json:"protein_g"`
	CarbsG         int       `json:"carbs_g"`
	FatG           int       `json:"fat_g"`
	AdjustmentPct  float64   `json:"adjustment_pct"`
	TimelineDriven bool      `json:"timeline_driven"`
	IsGain         bool      `json:"is_gain"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func storedTargetsDTO(t *storage.NutritionTarget) StoredTargetsDTO {
	return StoredTargetsDTO{
		ID:             t.ID,
		ProfileID:      t.ProfileID,
		TDEEKcal:       t.TDEEKcal,
		CaloriesKcal:   t.CaloriesKcal,
		ProteinG:       t.ProteinG,
		CarbsG:         t.CarbsG,
		FatG:           t.FatG,
		AdjustmentPct:  t.AdjustmentPct,
		TimelineDriven: t.TimelineDriven,
		IsGain:         t.IsGain,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
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
