package reports

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// Handlers handles HTTP requests for plan reports
type Handlers struct {
	service *Service
}

func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleCreatePlanReport handles POST /v1/reports/plan
func (h *Handlers) HandleCreatePlanReport(w http.ResponseWriter, r *http.Request) {
	var req CreatePlanReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON")
		return
	}
	if req.ProfileID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "missing_profile_id", "profile_id is required")
		return
	}

	report, err := h.service.CreatePlanReport(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrProfileNotFound):
			writeError(w, http.StatusNotFound, "profile_not_found", "Profile not found")
		case errors.Is(err, ErrPlanNotFound):
			writeError(w, http.StatusNotFound, "plan_not_found", "No active plan to report on")
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		}
		return
	}

	downloadURL, err := h.service.GetReportDownloadURL(r.Context(), report.ID, getBaseURL(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to generate download URL")
		return
	}

	dto := ReportDTO{
		ID:          report.ID,
		ProfileID:   report.ProfileID,
		Format:      "pdf",
		DownloadURL: downloadURL,
		SizeBytes:   report.SizeBytes,
		CreatedAt:   report.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(dto)
}

// HandleDownload handles GET /v1/reports/{id}/download
func (h *Handlers) HandleDownload(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_id", "Invalid report id")
		return
	}

	data, contentType, err := h.service.GetReportData(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrReportNotFound) {
			writeError(w, http.StatusNotFound, "report_not_found", "Report not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="meal-plan.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func getBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
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
