package models

import "time"

// Report represents an abuse report filed against a review.
type Report struct {
	ID             int64        `json:"id" db:"id"`
	ReviewID       int64        `json:"reviewId" db:"review_id"`
	ReporterID     int64        `json:"reporterId" db:"reporter_id"`
	Reason         string       `json:"reason" db:"reason"`
	Status         ReportStatus `json:"status" db:"status"`
	ResolvedBy     *int64       `json:"resolvedBy,omitempty" db:"resolved_by"`
	ResolutionNote string       `json:"resolutionNote,omitempty" db:"resolution_note"`
	CreatedAt      time.Time    `json:"createdAt" db:"created_at"`
	ResolvedAt     *time.Time   `json:"resolvedAt,omitempty" db:"resolved_at"`
}
