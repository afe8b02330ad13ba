package mealplans

import (
	"time"

	"github.com/google/uuid"
)

// GeneratePlanRequest is the request body for POST /v1/plans/generate
type GeneratePlanRequest struct {
	ProfileID    uuid.UUID `json:"profile_id"`
	Diet         string    `json:"diet"`
	FreeMealKcal float64   `json:"free_meal_kcal"`
}

// RegenerateMealRequest is the request body for POST /v1/plans/regenerate-meal
type RegenerateMealRequest struct {
	ProfileID uuid.UUID `json:"profile_id"`
	Index     int       `json:"index"`
}

// PlanDTO is the API representation of an active day plan
type PlanDTO struct {
	ID           uuid.UUID `json:"id"`
	ProfileID    uuid.UUID `json:"profile_id"`
	Diet         string    `json:"diet"`
	Meals        []Meal    `json:"meals"`
	CaloriesKcal float64   `json:"calories_kcal"`
	ProteinG     float64   `json:"protein_g"`
	CarbsG       float64   `json:"carbs_g"`
	FatG         float64   `json:"fat_g"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
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
