package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/platefit/platefit/internal/storage"
	"github.com/platefit/platefit/internal/targets"
	"github.com/platefit/platefit/internal/userctx"
)

var (
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrNotFound       = errors.New("profile not found")
	ErrInvalidMetrics = errors.New("invalid body metrics")
)

// Service handles body profile CRUD
type Service struct {
	storage storage.Storage
}

// NewService creates a new profile service
func NewService(st storage.Storage) *Service {
	return &Service{storage: st}
}

// ListProfiles returns the caller's profiles
func (s *Service) ListProfiles(ctx context.Context) ([]ProfileDTO, error) {
	userID := userIDFromContext(ctx)

	profiles, err := s.storage.ListProfiles(ctx, userID)
	if err != nil {
		return nil, err
	}

	dtos := make([]ProfileDTO, 0, len(profiles))
	for _, p := range profiles {
		dtos = append(dtos, toDTO(p))
	}

	return dtos, nil
}

// GetProfile returns one profile by ID
func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) (*ProfileDTO, error) {
	profile, err := s.ownedProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := toDTO(*profile)
	return &dto, nil
}

// CreateProfile creates a new body profile
func (s *Service) CreateProfile(ctx context.Context, req CreateProfileRequest) (*ProfileDTO, error) {
	userID := userIDFromContext(ctx)

	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}

	profile := &storage.Profile{
		OwnerUserID:   userID,
		Name:          strings.TrimSpace(req.Name),
		Sex:           req.Sex,
		Age:           req.Age,
		Units:         req.Units,
		WeightKg:      req.WeightKg,
		HeightCm:      req.HeightCm,
		WeightLb:      req.WeightLb,
		HeightFt:      req.HeightFt,
		HeightIn:      req.HeightIn,
		BodyFatPct:    req.BodyFatPct,
		ActivityLevel: req.ActivityLevel,
	}
	if err := validateMetrics(profile); err != nil {
		return nil, err
	}

	if err := s.storage.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}

	dto := toDTO(*profile)
	return &dto, nil
}

// UpdateProfile applies a partial update to a profile's metrics
func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, req UpdateProfileRequest) (*ProfileDTO, error) {
	profile, err := s.ownedProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		profile.Name = strings.TrimSpace(*req.Name)
	}
	if req.Sex != nil {
		profile.Sex = *req.Sex
	}
	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.Units != nil {
		profile.Units = *req.Units
	}
	if req.WeightKg != nil {
		profile.WeightKg = *req.WeightKg
	}
	if req.HeightCm != nil {
		profile.HeightCm = *req.HeightCm
	}
	if req.WeightLb != nil {
		profile.WeightLb = *req.WeightLb
	}
	if req.HeightFt != nil {
		profile.HeightFt = *req.HeightFt
	}
	if req.HeightIn != nil {
		profile.HeightIn = *req.HeightIn
	}
	if req.BodyFatPct != nil {
		profile.BodyFatPct = req.BodyFatPct
	}
	if req.ActivityLevel != nil {
		profile.ActivityLevel = *req.ActivityLevel
	}

	if err := validateMetrics(profile); err != nil {
		return nil, err
	}

	if err := s.storage.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}

	dto := toDTO(*profile)
	return &dto, nil
}

// DeleteProfile deletes a profile by ID
func (s *Service) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	if _, err := s.ownedProfile(ctx, id); err != nil {
		return err
	}
	return s.storage.DeleteProfile(ctx, id)
}

// validateMetrics runs the stored metrics through the calculator's own
// validation, so a profile that saves is a profile that computes.
func validateMetrics(p *storage.Profile) error {
	body := targets.BodyProfile{
		Sex:           targets.Sex(p.Sex),
		Age:           p.Age,
		Units:         targets.UnitSystem(p.Units),
		WeightKg:      p.WeightKg,
		HeightCm:      p.HeightCm,
		WeightLb:      p.WeightLb,
		HeightFt:      p.HeightFt,
		HeightIn:      p.HeightIn,
		BodyFatPct:    p.BodyFatPct,
		ActivityLevel: targets.ActivityLevel(p.ActivityLevel),
	}
	if err := body.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMetrics, err)
	}
	// Validate may have defaulted the unit system.
	p.Units = string(body.Units)
	return nil
}

func (s *Service) ownedProfile(ctx context.Context, id uuid.UUID) (*storage.Profile, error) {
	userID := userIDFromContext(ctx)

	profile, err := s.storage.GetProfile(ctx, id)
	if err != nil || profile == nil {
		return nil, ErrNotFound
	}
	if profile.OwnerUserID != userID {
		return nil, ErrNotFound
	}
	return profile, nil
}

func toDTO(p storage.Profile) ProfileDTO {
	return ProfileDTO{
		ID:            p.ID,
		OwnerUserID:   p.OwnerUserID,
		Name:          p.Name,
		Sex:           p.Sex,
		Age:           p.Age,
		Units:         p.Units,
		WeightKg:      p.WeightKg,
		HeightCm:      p.HeightCm,
		WeightLb:      p.WeightLb,
		HeightFt:      p.HeightFt,
		HeightIn:      p.HeightIn,
		BodyFatPct:    p.BodyFatPct,
		ActivityLevel: p.ActivityLevel,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func userIDFromContext(ctx context.Context) string {
	if userID, ok := userctx.GetUserID(ctx); ok && strings.TrimSpace(userID) != "" {
		return userID
	}
	return "default"
}
