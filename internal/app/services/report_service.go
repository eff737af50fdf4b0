package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/napat/courselens/internal/app/models"
	"github.com/napat/courselens/internal/app/models/dto"
	"github.com/napat/courselens/internal/pkg/apperrors"
)

// ReportService defines the interface for abuse report and moderation operations
type ReportService interface {
	ReportReview(ctx context.Context, reviewID, reporterID int64, reason string) (int64, error)
	GetReports(ctx context.Context, offset, limit uint64, status models.ReportStatus) ([]models.Report, int64, error)
	ResolveReport(ctx context.Context, reportID, adminID int64, req *dto.ResolveReportRequest) error
}

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	reportStore ReportStore
	reviewStore ReviewStore
	logger      zerolog.Logger
}

// NewReportService creates a new report service instance
func NewReportService(reportStore ReportStore, reviewStore ReviewStore, logger zerolog.Logger) ReportService {
	return &reportServiceImpl{
		reportStore: reportStore,
		reviewStore: reviewStore,
		logger:      logger,
	}
}

// ReportReview files an abuse report against a review. Users cannot report
// their own reviews.
func (s *reportServiceImpl) ReportReview(ctx context.Context, reviewID, reporterID int64, reason string) (int64, error) {
	if reason == "" {
		return 0, fmt.Errorf("%w: reason is required", apperrors.ErrValidationFailed)
	}

	review, err := s.reviewStore.GetReviewByID(ctx, reviewID)
	if err != nil {
		return 0, err
	}

	if review.UserID == reporterID {
		return 0, apperrors.ErrSelfReportForbidden
	}

	return s.reportStore.CreateReport(ctx, &models.Report{
		ReviewID:   reviewID,
		ReporterID: reporterID,
		Reason:     reason,
	})
}

// GetReports lists reports for moderation, optionally filtered by status.
func (s *reportServiceImpl) GetReports(ctx context.Context, offset, limit uint64, status models.ReportStatus) ([]models.Report, int64, error) {
	switch status {
	case "", models.ReportStatusOpen, models.ReportStatusResolved, models.ReportStatusDismissed:
	default:
		return nil, 0, apperrors.ErrInvalidReportStatus
	}
	return s.reportStore.GetReports(ctx, offset, limit, status)
}

// ResolveReport records an admin's moderation decision on an open report.
// Resolving with DeleteReview removes the reported review as part of the
// decision.
func (s *reportServiceImpl) ResolveReport(ctx context.Context, reportID, adminID int64, req *dto.ResolveReportRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", apperrors.ErrValidationFailed)
	}
	if req.Status != models.ReportStatusResolved && req.Status != models.ReportStatusDismissed {
		return apperrors.ErrInvalidReportStatus
	}

	report, err := s.reportStore.GetReportByID(ctx, reportID)
	if err != nil {
		return err
	}
	if report.Status != models.ReportStatusOpen {
		return apperrors.ErrReportAlreadyClosed
	}

	if err := s.reportStore.CloseReport(ctx, reportID, req.Status, adminID, req.ResolutionNote); err != nil {
		return err
	}

	if req.Status == models.ReportStatusResolved && req.DeleteReview {
		if err := s.reviewStore.DeleteReview(ctx, report.ReviewID); err != nil {
			// The review may already be gone from an earlier decision.
			s.logger.Warn().Err(err).Int64("reviewID", report.ReviewID).Msg("Reported review could not be deleted")
		} else {
			s.logger.Info().Int64("reviewID", report.ReviewID).Int64("adminID", adminID).Msg("Reported review deleted by moderation")
		}
	}

	return nil
}
