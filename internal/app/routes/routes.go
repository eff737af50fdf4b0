package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/napat/courselens/internal/app/controllers"
	"github.com/napat/courselens/internal/app/models"
	"github.com/napat/courselens/internal/app/models/dto"
	"github.com/napat/courselens/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	facultyController *controllers.FacultyController,
	courseController *controllers.CourseController,
	reviewController *controllers.ReviewController,
	wishlistController *controllers.WishlistController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	faculties := v1.Group("/faculties")
	{
		faculties.GET("", facultyController.GetAllFaculties)
	}

	// Course browsing is public; the aggregated detail view resolves author
	// names and latest instructor replies without requiring a session.
	v1.GET("/courses", courseController.GetAllCourses)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.GetProfile)

		// Ranking is registered before /courses/:id so gin does not treat
		// "ranking" as a course ID.
		authenticated.GET("/courses/ranking", courseController.GetFacultyRanking)

		authenticated.POST("/courses/:id/reviews", reviewController.CreateReview)

		reviews := authenticated.Group("/reviews")
		{
			reviews.DELETE("/:id", reviewController.DeleteReview)
			reviews.POST("/:id/reports", reportController.ReportReview)

			reviewsInstructorProtected := reviews.Group("")
			reviewsInstructorProtected.Use(authMiddleware.RoleRequired(models.RoleInstructor))
			{
				reviewsInstructorProtected.POST("/:id/replies", reviewController.CreateReply)
			}
		}

		me := authenticated.Group("/me")
		{
			me.GET("/reviews", reviewController.GetMyReviews)
			me.GET("/wishlist", wishlistController.GetWishlist)
			me.POST("/wishlist", wishlistController.AddToWishlist)
			me.DELETE("/wishlist/:courseId", wishlistController.RemoveFromWishlist)
		}

		// Admin-only course management and moderation
		adminProtected := authenticated.Group("")
		adminProtected.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			adminProtected.POST("/courses", courseController.CreateCourse)
			adminProtected.PUT("/courses/:id", courseController.UpdateCourse)
			adminProtected.DELETE("/courses/:id", courseController.DeleteCourse)

			adminProtected.GET("/reports", reportController.GetReports)
			adminProtected.PATCH("/reports/:id", reportController.ResolveReport)
		}
	}

	v1.GET("/courses/:id", courseController.GetCourseDetail)

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})

	// Swagger routes are set up in bootstrap.go already
}
