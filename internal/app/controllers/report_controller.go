package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/napat/courselens/internal/app/models"
	"github.com/napat/courselens/internal/app/models/dto"
	"github.com/napat/courselens/internal/app/services"
	"github.com/napat/courselens/internal/middleware"
	"github.com/napat/courselens/internal/pkg/helpers"
)

// ReportController handles abuse report and moderation endpoints
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// ReportReview files an abuse report against a review
// @Summary Report a review
// @Description Files an abuse report against a review. Users cannot report their own reviews.
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID" Format(int64) minimum(1)
// @Param request body dto.CreateReportRequest true "Report reason"
// @Success 201 {object} dto.APIResponse "Report filed"
// @Failure 400 {object} dto.ErrorResponse "Invalid report data"
// @Failure 403 {object} dto.ErrorResponse "Cannot report own review"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews/{id}/reports [post]
func (c *ReportController) ReportReview(ctx *gin.Context) {
	reviewID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CreateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid report data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	id, err := c.reportService.ReportReview(ctx, reviewID, userID, req.Reason)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(gin.H{"id": id}))
}

// GetReports lists reports for moderation
// @Summary List reports
// @Description Retrieves a paginated report listing for moderation, optionally filtered by status (admin only)
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Param status query string false "Filter by status" Enums(OPEN, RESOLVED, DISMISSED)
// @Success 200 {object} dto.APIResponse{data=dto.ReportListResponse} "Reports"
// @Failure 400 {object} dto.ErrorResponse "Invalid status filter"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports [get]
func (c *ReportController) GetReports(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	offset, limit := helpers.OffsetLimit(page, size)
	status := models.ReportStatus(ctx.Query("status"))

	reports, total, err := c.reportService.GetReports(ctx, offset, limit, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	views := make([]dto.ReportResponse, 0, len(reports))
	for _, report := range reports {
		views = append(views, dto.ReportResponse{
			ID:             report.ID,
			ReviewID:       report.ReviewID,
			ReporterID:     report.ReporterID,
			Reason:         report.Reason,
			Status:         report.Status,
			ResolvedBy:     report.ResolvedBy,
			ResolutionNote: report.ResolutionNote,
			CreatedAt:      report.CreatedAt,
			ResolvedAt:     report.ResolvedAt,
		})
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ReportListResponse{
		Reports:    views,
		Pagination: helpers.NewPaginationInfo(total, page, size),
	}))
}

// ResolveReport records a moderation decision on a report
// @Summary Resolve a report
// @Description Records an admin's moderation decision on an open report. Resolving with deleteReview=true removes the reported review.
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID" Format(int64) minimum(1)
// @Param request body dto.ResolveReportRequest true "Moderation decision"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Report resolved"
// @Failure 400 {object} dto.ErrorResponse "Invalid decision data"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Failure 409 {object} dto.ErrorResponse "Report already closed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/{id} [patch]
func (c *ReportController) ResolveReport(ctx *gin.Context) {
	reportID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	adminID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.ResolveReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid decision data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.reportService.ResolveReport(ctx, reportID, adminID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Report resolved"}))
}
