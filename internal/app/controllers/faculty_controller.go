package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/napat/courselens/internal/app/models/dto"
	"github.com/napat/courselens/internal/app/services"
	"github.com/napat/courselens/internal/middleware"
)

// FacultyController handles faculty endpoints
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{facultyService: facultyService}
}

// GetAllFaculties lists all faculties
// @Summary List faculties
// @Description Retrieves all faculties for registration and profile display
// @Tags faculties
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Faculty} "Faculties"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /faculties [get]
func (c *FacultyController) GetAllFaculties(ctx *gin.Context) {
	faculties, err := c.facultyService.GetAllFaculties(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(faculties))
}
