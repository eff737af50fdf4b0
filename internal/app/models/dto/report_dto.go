package dto

import (
	"time"

	"github.com/napat/courselens/internal/app/models"
)

// CreateReportRequest represents the request to report a review
type CreateReportRequest struct {
	Reason string `json:"reason" binding:"required,min=4,max=2000"`
}

// ResolveReportRequest represents an admin's moderation decision. Resolving
// with deleteReview=true removes the reported review as part of the decision.
type ResolveReportRequest struct {
	Status         models.ReportStatus `json:"status" binding:"required,oneof=RESOLVED DISMISSED"`
	ResolutionNote string              `json:"resolutionNote"`
	DeleteReview   bool                `json:"deleteReview"`
}

// ReportResponse represents a report in moderation listings
type ReportResponse struct {
	ID             int64               `json:"id"`
	ReviewID       int64               `json:"reviewId"`
	ReporterID     int64               `json:"reporterId"`
	Reason         string              `json:"reason"`
	Status         models.ReportStatus `json:"status"`
	ResolvedBy     *int64              `json:"resolvedBy,omitempty"`
	ResolutionNote string              `json:"resolutionNote,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	ResolvedAt     *time.Time          `json:"resolvedAt,omitempty"`
}

// ReportListResponse represents a paginated report listing
type ReportListResponse struct {
	Reports    []ReportResponse `json:"reports"`
	Pagination PaginationInfo   `json:"pagination"`
}
