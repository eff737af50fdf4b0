package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/napat/courselens/internal/app/models/dto"
	"github.com/napat/courselens/internal/app/services"
	"github.com/napat/courselens/internal/middleware"
)

// WishlistController handles wishlist endpoints
type WishlistController struct {
	wishlistService services.WishlistService
}

// NewWishlistController creates a new WishlistController
func NewWishlistController(wishlistService services.WishlistService) *WishlistController {
	return &WishlistController{wishlistService: wishlistService}
}

// AddToWishlist bookmarks a course
// @Summary Add course to wishlist
// @Description Bookmarks a course for the requesting user
// @Tags wishlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddWishlistRequest true "Course to bookmark"
// @Success 201 {object} dto.APIResponse "Course bookmarked"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 409 {object} dto.ErrorResponse "Course already wishlisted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/wishlist [post]
func (c *WishlistController) AddToWishlist(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	var req dto.AddWishlistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid wishlist data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	id, err := c.wishlistService.AddToWishlist(ctx, userID, req.CourseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(gin.H{"id": id}))
}

// RemoveFromWishlist removes a bookmarked course
// @Summary Remove course from wishlist
// @Description Removes a course from the requesting user's wishlist
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Param courseId path int true "Course ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Course removed"
// @Failure 404 {object} dto.ErrorResponse "Wishlist entry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/wishlist/{courseId} [delete]
func (c *WishlistController) RemoveFromWishlist(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "courseId")
	if !ok {
		return
	}

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	if err := c.wishlistService.RemoveFromWishlist(ctx, userID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Course removed from wishlist"}))
}

// GetWishlist lists the requesting user's bookmarked courses
// @Summary Get my wishlist
// @Description Retrieves all courses bookmarked by the requesting user
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.WishlistEntry} "Wishlist"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /me/wishlist [get]
func (c *WishlistController) GetWishlist(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")))
		return
	}

	entries, err := c.wishlistService.GetWishlist(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(entries))
}
