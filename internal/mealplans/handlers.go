package mealplans

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/platefit/platefit/internal/diet"
)

// HandleGenerate handles POST /v1/plans/generate
func HandleGenerate(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GeneratePlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
			return
		}
		if req.ProfileID == uuid.Nil {
			writeError(w, http.StatusBadRequest, "missing_profile_id", "profile_id is required")
			return
		}

		plan, err := service.GeneratePlan(r.Context(), req)
		if err != nil {
			writePlanError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(plan)
	}
}

// HandleGetActive handles GET /v1/plans/active?profile_id=
func HandleGetActive(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, ok := queryProfileID(w, r)
		if !ok {
			return
		}

		plan, err := service.GetActivePlan(r.Context(), profileID)
		if err != nil {
			writePlanError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(plan)
	}
}

// HandleRegenerateMeal handles POST /v1/plans/regenerate-meal
func HandleRegenerateMeal(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegenerateMealRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
			return
		}
		if req.ProfileID == uuid.Nil {
			writeError(w, http.StatusBadRequest, "missing_profile_id", "profile_id is required")
			return
		}

		plan, err := service.RegenerateMeal(r.Context(), req.ProfileID, req.Index)
		if err != nil {
			writePlanError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(plan)
	}
}

// HandleDeleteActive handles DELETE /v1/plans/active?profile_id=
func HandleDeleteActive(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profileID, ok := queryProfileID(w, r)
		if !ok {
			return
		}

		if err := service.DeletePlan(r.Context(), profileID); err != nil {
			writePlanError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func queryProfileID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := r.URL.Query().Get("profile_id")
	if idStr == "" {
		writeError(w, http.StatusBadRequest, "missing_profile_id", "profile_id is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_profile_id", "invalid profile_id format")
		return uuid.Nil, false
	}
	return id, true
}

func writePlanError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrProfileNotFound):
		writeError(w, http.StatusNotFound, "profile_not_found", err.Error())
	case errors.Is(err, ErrPlanNotFound):
		writeError(w, http.StatusNotFound, "plan_not_found", err.Error())
	case errors.Is(err, ErrTargetsNotFound):
		writeError(w, http.StatusConflict, "targets_not_computed", err.Error())
	case errors.Is(err, ErrInvalidDiet):
		writeError(w, http.StatusBadRequest, "invalid_diet", err.Error())
	case errors.Is(err, diet.ErrNoCompatibleFoods):
		writeError(w, http.StatusUnprocessableEntity, "zero_matches", err.Error())
	case errors.Is(err, ErrInsufficientVariety):
		writeError(w, http.StatusUnprocessableEntity, "insufficient_variety", err.Error())
	case errors.Is(err, ErrMealIndex):
		writeError(w, http.StatusBadRequest, "invalid_meal_index", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}
