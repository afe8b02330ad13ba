package profiles

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/platefit/platefit/internal/storage"
)

// mockStorage implements storage.Storage for testing
type mockStorage struct {
	profiles map[uuid.UUID]storage.Profile
}

func newMockStorage() *mockStorage {
	return &mockStorage{profiles: make(map[uuid.UUID]storage.Profile)}
}

func (m *mockStorage) ListProfiles(ctx context.Context, ownerUserID string) ([]storage.Profile, error) {
	var out []storage.Profile
	for _, p := range m.profiles {
		if p.OwnerUserID == ownerUserID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockStorage) GetProfile(ctx context.Context, id uuid.UUID) (*storage.Profile, error) {
	p, exists := m.profiles[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *mockStorage) CreateProfile(ctx context.Context, profile *storage.Profile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	now := time.Now().UTC()
	profile.CreatedAt = now
	profile.UpdatedAt = now
	m.profiles[profile.ID] = *profile
	return nil
}

func (m *mockStorage) UpdateProfile(ctx context.Context, profile *storage.Profile) error {
	profile.UpdatedAt = time.Now().UTC()
	m.profiles[profile.ID] = *profile
	return nil
}

func (m *mockStorage) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	delete(m.profiles, id)
	return nil
}

func (m *mockStorage) Close() error { return nil }

func validCreateRequest() CreateProfileRequest {
	return CreateProfileRequest{
		Name:          "Me",
		Sex:           "male",
		Age:           30,
		Units:         "metric",
		WeightKg:      70,
		HeightCm:      175,
		ActivityLevel: "moderate",
	}
}

func TestHandleCreateAndGet(t *testing.T) {
	service := NewService(newMockStorage())

	body, _ := json.Marshal(validCreateRequest())
	req := httptest.NewRequest("POST", "/v1/profiles", bytes.NewReader(body))
	w := httptest.NewRecorder()
	HandleCreate(service)(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var created ProfileDTO
	json.NewDecoder(w.Body).Decode(&created)
	if created.ID == uuid.Nil {
		t.Fatal("expected an id on the created profile")
	}
	if created.Units != "metric" || created.WeightKg != 70 {
		t.Errorf("unexpected profile payload: %+v", created)
	}

	req = httptest.NewRequest("GET", "/v1/profiles/"+created.ID.String(), nil)
	req.SetPathValue("id", created.ID.String())
	w = httptest.NewRecorder()
	HandleGet(service)(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestHandleCreateInvalidMetrics(t *testing.T) {
	service := NewService(newMockStorage())

	reqBody := validCreateRequest()
	reqBody.WeightKg = 0
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/v1/profiles", bytes.NewReader(body))
	w := httptest.NewRecorder()
	HandleCreate(service)(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var resp ErrorResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if resp.Error.Code != "invalid_metrics" {
		t.Errorf("expected invalid_metrics code, got %q", resp.Error.Code)
	}
}

func TestHandleCreateEmptyName(t *testing.T) {
	service := NewService(newMockStorage())

	reqBody := validCreateRequest()
	reqBody.Name = "   "
	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/v1/profiles", bytes.NewReader(body))
	w := httptest.NewRecorder()
	HandleCreate(service)(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", w.Code)
	}
}

func TestHandleUpdatePartial(t *testing.T) {
	service := NewService(newMockStorage())

	created, err := service.CreateProfile(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newWeight := 68.5
	bodyFat := 18.0
	body, _ := json.Marshal(UpdateProfileRequest{WeightKg: &newWeight, BodyFatPct: &bodyFat})
	req := httptest.NewRequest("PATCH", "/v1/profiles/"+created.ID.String(), bytes.NewReader(body))
	req.SetPathValue("id", created.ID.String())
	w := httptest.NewRecorder()
	HandleUpdate(service)(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var updated ProfileDTO
	json.NewDecoder(w.Body).Decode(&updated)
	if updated.WeightKg != 68.5 {
		t.Errorf("expected weight 68.5, got %v", updated.WeightKg)
	}
	if updated.BodyFatPct == nil || *updated.BodyFatPct != 18.0 {
		t.Errorf("expected body fat 18.0, got %v", updated.BodyFatPct)
	}
	// Untouched fields survive the patch.
	if updated.HeightCm != 175 || updated.Sex != "male" {
		t.Errorf("partial update clobbered other fields: %+v", updated)
	}
}

func TestHandleDeleteProfile(t *testing.T) {
	st := newMockStorage()
	service := NewService(st)

	created, err := service.CreateProfile(context.Background(), validCreateRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := httptest.NewRequest("DELETE", "/v1/profiles/"+created.ID.String(), nil)
	req.SetPathValue("id", created.ID.String())
	w := httptest.NewRecorder()
	HandleDelete(service)(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", w.Code)
	}
	if len(st.profiles) != 0 {
		t.Error("expected profile to be removed from storage")
	}
}

func TestGetProfileForeignOwner(t *testing.T) {
	st := newMockStorage()
	service := NewService(st)

	id := uuid.New()
	st.profiles[id] = storage.Profile{ID: id, OwnerUserID: "someone-else", Name: "Other"}

	if _, err := service.GetProfile(context.Background(), id); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for foreign profile, got %v", err)
	}
}
