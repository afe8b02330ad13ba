package profiles

import (
	"time"

	"github.com/google/uuid"
)

// ProfileDTO is the API representation of a body profile
type ProfileDTO struct {
	ID            uuid.UUID `json:"id"`
	OwnerUserID   string    `json:"owner_user_id"`
	Name          string    `json:"name"`
	Sex           string    `json:"sex"`
	Age           int       `json:"age"`
	Units         string    `json:"units"`
	WeightKg      float64   `json:"weight_kg,omitempty"`
	HeightCm      float64   `json:"height_cm,omitempty"`
	WeightLb      float64   `json:"weight_lb,omitempty"`
	HeightFt      int       `json:"height_ft,omitempty"`
	HeightIn      float64   `json:"height_in,omitempty"`
	BodyFatPct    *float64  `json:"body_fat_pct,omitempty"`
	ActivityLevel string    `json:"activity_level"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ProfilesResponse is the response for GET /v1/profiles
type ProfilesResponse struct {
	Profiles []ProfileDTO `json:"profiles"`
}

// CreateProfileRequest is the request body for POST /v1/profiles
type CreateProfileRequest struct {
	Name          string   `json:"name"`
	Sex           string   `json:"sex"`
	Age           int      `json:"age"`
	Units         string   `json:"units"`
	WeightKg      float64  `json:"weight_kg,omitempty"`
	HeightCm      float64  `json:"height_cm,omitempty"`
	WeightLb      float64  `json:"weight_lb,omitempty"`
	HeightFt      int      `json:"height_ft,omitempty"`
	HeightIn      float64  `json:"height_in,omitempty"`
	BodyFatPct    *float64 `json:"body_fat_pct,omitempty"`
	ActivityLevel string   `json:"activity_level"`
}

// UpdateProfileRequest is the request body for PATCH /v1/profiles/{id}.
// Only non-nil fields are applied.
type UpdateProfileRequest struct {
	Name          *string  `json:"name,omitempty"`
	Sex           *string  `json:"sex,omitempty"`
	Age           *int     `json:"age,omitempty"`
	Units         *string  `json:"units,omitempty"`
	WeightKg      *float64 `json:"weight_kg,omitempty"`
	HeightCm      *float64 `json:"height_cm,omitempty"`
	WeightLb      *float64 `json:"weight_lb,omitempty"`
	HeightFt      *int     `json:"height_ft,omitempty"`
	HeightIn      *float64 `json:"height_in,omitempty"`
	BodyFatPct    *float64 `json:"body_fat_pct,omitempty"`
	ActivityLevel *string  `json:"activity_level,omitempty"`
}

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
