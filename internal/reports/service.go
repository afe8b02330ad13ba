package reports

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/platefit/platefit/internal/blob"
	"github.com/platefit/platefit/internal/mealplans"
	"github.com/platefit/platefit/internal/storage"
	"github.com/platefit/platefit/internal/userctx"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrPlanNotFound    = errors.New("no active plan to report on")
	ErrReportNotFound  = errors.New("report not found")
)

// PlanSource provides the active plan to render. Implemented by the
// meal plans service.
type PlanSource interface {
	GetActivePlan(ctx context.Context, profileID uuid.UUID) (*mealplans.PlanDTO, error)
}

// ProfileStorage is the narrow profile lookup the service needs.
type ProfileStorage interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*storage.Profile, error)
}

// Service renders and stores plan reports. Reports are ephemeral: without
// a blob store the bytes live in memory until the process exits, with one
// they go to the bucket and the metadata stays here.
type Service struct {
	plans           PlanSource
	profiles        ProfileStorage
	generator       *Generator
	blobStore       blob.Store
	presignTTL      int
	publicBaseURL   string
	preferPublicURL bool

	mu      sync.RWMutex
	reports map[uuid.UUID]*Report
}

func NewService(plans PlanSource, profiles ProfileStorage, blobStore blob.Store, presignTTL int, publicBaseURL string, preferPublicURL bool) *Service {
	return &Service{
		plans:           plans,
		profiles:        profiles,
		generator:       NewGenerator(),
		blobStore:       blobStore,
		presignTTL:      presignTTL,
		publicBaseURL:   publicBaseURL,
		preferPublicURL: preferPublicURL,
		reports:         make(map[uuid.UUID]*Report),
	}
}

func (s *Service) localMode() bool {
	return s.blobStore == nil
}

// CreatePlanReport renders the profile's active plan to PDF.
func (s *Service) CreatePlanReport(ctx context.Context, req CreatePlanReportRequest) (*Report, error) {
	profile, err := s.ensureProfileAccess(ctx, req.ProfileID)
	if err != nil {
		return nil, err
	}

	plan, err := s.plans.GetActivePlan(ctx, req.ProfileID)
	if err != nil {
		if errors.Is(err, mealplans.ErrPlanNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to load active plan: %w", err)
	}

	data, err := s.generator.GeneratePlanPDF(profile.Name, plan)
	if err != nil {
		return nil, fmt.Errorf("failed to render plan report: %w", err)
	}

	report := &Report{
		ID:        uuid.New(),
		ProfileID: req.ProfileID,
		SizeBytes: int64(len(data)),
		CreatedAt: time.Now().UTC(),
	}

	if s.localMode() {
		report.Data = data
	} else {
		objectKey := blob.ReportObjectKey(req.ProfileID, report.ID)
		if _, err := s.blobStore.PutObject(ctx, objectKey, data, "application/pdf"); err != nil {
			return nil, fmt.Errorf("failed to upload report: %w", err)
		}
		report.ObjectKey = &objectKey
	}

	s.mu.Lock()
	s.reports[report.ID] = report
	s.mu.Unlock()

	return report, nil
}

// GetReportDownloadURL builds the download URL for a stored report.
func (s *Service) GetReportDownloadURL(ctx context.Context, id uuid.UUID, baseURL string) (string, error) {
	report, err := s.getOwnedReport(ctx, id)
	if err != nil {
		return "", err
	}

	if s.localMode() {
		return fmt.Sprintf("%s/v1/reports/%s/download", strings.TrimSuffix(baseURL, "/"), id.String()), nil
	}

	if report.ObjectKey == nil {
		return "", fmt.Errorf("object key is missing")
	}

	if s.preferPublicURL && s.publicBaseURL != "" {
		return strings.TrimSuffix(s.publicBaseURL, "/") + "/" + *report.ObjectKey, nil
	}

	presignedURL, err := s.blobStore.PresignGet(ctx, *report.ObjectKey, s.presignTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return presignedURL, nil
}

// GetReportData returns the raw PDF bytes for the local download endpoint.
func (s *Service) GetReportData(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	report, err := s.getOwnedReport(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if s.localMode() {
		return report.Data, "application/pdf", nil
	}

	if report.ObjectKey == nil {
		return nil, "", fmt.Errorf("object key is missing")
	}

	data, err := s.blobStore.GetObject(ctx, *report.ObjectKey)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch report object: %w", err)
	}

	return data, "application/pdf", nil
}

func (s *Service) getOwnedReport(ctx context.Context, id uuid.UUID) (*Report, error) {
	s.mu.RLock()
	report, ok := s.reports[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrReportNotFound
	}

	if _, err := s.ensureProfileAccess(ctx, report.ProfileID); err != nil {
		return nil, ErrReportNotFound
	}

	return report, nil
}

func (s *Service) ensureProfileAccess(ctx context.Context, profileID uuid.UUID) (*storage.Profile, error) {
	profile, err := s.profiles.GetProfile(ctx, profileID)
	if err != nil || profile == nil {
		return nil, ErrProfileNotFound
	}

	if userID, ok := userctx.GetUserID(ctx); ok && strings.TrimSpace(userID) != "" && profile.OwnerUserID != userID {
		return nil, ErrProfileNotFound
	}

	return profile, nil
}
