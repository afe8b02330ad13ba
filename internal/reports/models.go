package reports

import (
	"time"

	"github.com/google/uuid"
)

// Report is the metadata of a rendered plan report.
type Report struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	ObjectKey *string
	SizeBytes int64
	CreatedAt time.Time
	Data      []byte // only kept in local mode
}

// CreatePlanReportRequest is the request to render the active plan to PDF
type CreatePlanReportRequest struct {
	ProfileID uuid.UUID `json:"profile_id"`
}

// ReportDTO is the response representation of a report
type ReportDTO struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profile_id"`
	Format      string    `json:"format"`
	DownloadURL string    `json:"download_url"`
	SizeBytes   int64     `json:"size_bytes"`
	CreatedAt   time.Time `json:"created_at"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
