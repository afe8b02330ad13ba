package targets

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// ErrorResponse is the standard error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HandleCompute handles POST /v1/targets/compute
func HandleCompute(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ComputeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
			return
		}

		result, err := service.Compute(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, ErrProfileNotFound):
				writeError(w, http.StatusNotFound, "profile_not_found", err.Error())
			case errors.Is(err, ErrMissingProfile):
				writeError(w, http.StatusBadRequest, "missing_profile", err.Error())
			case errors.Is(err, ErrInvalidInput):
				writeError(w, http.StatusBadRequest, "invalid_input", err.Error())
			case errors.Is(err, ErrDegenerateTimeline):
				writeError(w, http.StatusUnprocessableEntity, "degenerate_timeline", err.Error())
			case errors.Is(err, ErrInfeasibleMacros):
				writeError(w, http.StatusUnprocessableEntity, "infeasible_macros", err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(result)
	}
}

// HandleGet handles GET /v1/targets?profile_id=
func HandleGet(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := r.URL.Query().Get("profile_id")
		if idStr == "" {
			writeError(w, http.StatusBadRequest, "missing_profile_id", "profile_id is required")
			return
		}
		profileID, err := uuid.Parse(idStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_profile_id", "invalid profile_id format")
			return
		}

		stored, err := service.GetStored(r.Context(), profileID)
		if err != nil {
			switch {
			case errors.Is(err, ErrProfileNotFound):
				writeError(w, http.StatusNotFound, "profile_not_found", err.Error())
			case errors.Is(err, ErrTargetsNotFound):
				writeError(w, http.StatusNotFound, "targets_not_found", err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(stored)
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
