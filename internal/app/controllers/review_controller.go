package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/napat/courselens/internal/app/models"
	"github.com/napat/courselens/internal/app/models/dto"
	"github.com/napat/courselens/internal/app/services"
	"github.com/napat/courselens/internal/middleware"
)

// ReviewController handles review and instructor reply endpoints
type ReviewController struct {
	reviewService services.ReviewService
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviewService services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// CreateReview posts a review for a course
// @Summary Post a review
// @Description Posts a structured review for a course. Each user may review a course once.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Course ID" Format(int64) minimum(1)
// @Param request body dto.CreateReviewRequest true "Review data"
// @Success 201 {object} dto.APIResponse "Review created"
// @Failure 400 {object} dto.ErrorResponse "Invalid review data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Review already exists for this course"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id}/reviews [post]
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid review data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	review := models.Review{
		CourseID:          courseID,
		UserID:            userID,
		Satisfaction:      req.Satisfaction,
		Difficulty:        req.Difficulty,
		Workload:          req.Workload,
		PrerequisiteNotes: req.PrerequisiteNotes,
		ProsCons:          req.ProsCons,
		Tips:              req.Tips,
	}

	id, err := c.reviewService.CreateReview(ctx, &review)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(gin.H{"id": id}))
}

// DeleteReview removes a review
// @Summary Delete a review
// @Description Deletes a review. Only the author or an admin may delete it.
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Review deleted"
// @Failure 403 {object} dto.ErrorResponse "Not the review author"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews/{id} [delete]
func (c *ReviewController) DeleteReview(ctx *gin.Context) {
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

	if err := c.reviewService.DeleteReview(ctx, reviewID, userID, middleware.CurrentUserRole(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Review deleted"}))
}

// GetMyReviews lists the requesting user's reviews
// @Summary List my reviews
// @Description Retrieves the requesting user's reviews, newest first, each with a trimmed course reference
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MyReviewEntry} "Reviews"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/reviews [get]
func (c *ReviewController) GetMyReviews(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	entries, err := c.reviewService.GetMyReviews(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(entries))
}

// CreateReply attaches an instructor reply to a review
// @Summary Reply to a review
// @Description Posts an instructor reply to a review (instructor only). A review may accumulate several replies; the course detail surfaces the latest.
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Review ID" Format(int64) minimum(1)
// @Param request body dto.CreateReplyRequest true "Reply data"
// @Success 201 {object} dto.APIResponse "Reply created"
// @Failure 400 {object} dto.ErrorResponse "Invalid reply data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Review not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reviews/{id}/replies [post]
func (c *ReviewController) CreateReply(ctx *gin.Context) {
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

	var req dto.CreateReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid reply data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	reply := models.InstructorReply{
		ReviewID:     reviewID,
		InstructorID: userID,
		Content:      req.Content,
	}

	id, err := c.reviewService.CreateReply(ctx, &reply, middleware.CurrentUserRole(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(gin.H{"id": id}))
}
