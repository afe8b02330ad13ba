package diet

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/platefit/platefit/internal/catalog"
)

// FoodsResponse is the response for GET /v1/foods
type FoodsResponse struct {
	Foods  []catalog.Food `json:"foods"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit,omitempty"`
	Offset int            `json:"offset,omitempty"`
}

// FoodDietsResponse is the response for GET /v1/foods/{id}/diets
type FoodDietsResponse struct {
	FoodID uuid.UUID `json:"food_id"`
	Name   string    `json:"name"`
	Diets  []Diet    `json:"diets"`
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

// HandleListFoods handles GET /v1/foods?diet=&limit=&offset=
func HandleListFoods(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dietName := r.URL.Query().Get("diet")
		limit := queryInt(r, "limit", 0)
		offset := queryInt(r, "offset", 0)

		foods, total, err := service.ListFoods(r.Context(), dietName, limit, offset)
		if err != nil {
			switch {
			case errors.Is(err, ErrUnknownDiet):
				writeError(w, http.StatusBadRequest, "unknown_diet", err.Error())
			case errors.Is(err, ErrNoCompatibleFoods):
				writeError(w, http.StatusUnprocessableEntity, "zero_matches", err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FoodsResponse{Foods: foods, Total: total, Limit: limit, Offset: offset})
	}
}

// HandleFoodDiets handles GET /v1/foods/{id}/diets
func HandleFoodDiets(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := r.PathValue("id")
		if idStr == "" {
			writeError(w, http.StatusBadRequest, "missing_id", "food id is required")
			return
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_id", "invalid food id format")
			return
		}

		food, diets, err := service.CompatibleDietsFor(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrFoodNotFound) {
				writeError(w, http.StatusNotFound, "food_not_found", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FoodDietsResponse{FoodID: food.ID, Name: food.Name, Diets: diets})
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
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
