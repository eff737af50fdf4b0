package services

import (
	"context"
	"time"

	"github.com/napat/courselens/internal/app/models"
)

// Store interfaces consumed by the services in this package. The pgx-backed
// implementations live in the repositories package; tests substitute
// in-memory fakes.

// UserStore provides user and refresh token persistence.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) (int64, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserFaculty(ctx context.Context, userID int64) (*int64, error)
	StoreRefreshToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error
	GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error)
	RevokeRefreshToken(ctx context.Context, token string) error
}

// FacultyStore provides faculty lookups.
type FacultyStore interface {
	GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error)
	GetAllFaculties(ctx context.Context) ([]models.Faculty, error)
}

// CourseStore provides course persistence and the ranking projection.
type CourseStore interface {
	CreateCourse(ctx context.Context, course *models.Course) (int64, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context, offset, limit uint64, search string) ([]models.Course, int64, error)
	GetCourseSummaries(ctx context.Context) ([]models.CourseSummary, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id int64) error
}

// ReviewStore provides review, reply, and review statistic persistence.
type ReviewStore interface {
	CreateReview(ctx context.Context, review *models.Review) (int64, error)
	GetReviewByID(ctx context.Context, id int64) (*models.Review, error)
	GetReviewsByCourse(ctx context.Context, courseID int64) ([]models.Review, error)
	GetReviewsByUser(ctx context.Context, userID int64) ([]models.UserReview, error)
	DeleteReview(ctx context.Context, id int64) error
	GetLatestReplies(ctx context.Context, reviewIDs []int64) (map[int64]models.InstructorReply, error)
	CreateReply(ctx context.Context, reply *models.InstructorReply) (int64, error)
	GetReviewStats(ctx context.Context) ([]models.ReviewStat, error)
}

// WishlistStore provides wishlist persistence.
type WishlistStore interface {
	AddItem(ctx context.Context, userID, courseID int64) (int64, error)
	RemoveItem(ctx context.Context, userID, courseID int64) error
	GetItemsByUser(ctx context.Context, userID int64) ([]models.WishlistItem, error)
}

// ReportStore provides report persistence.
type ReportStore interface {
	CreateReport(ctx context.Context, report *models.Report) (int64, error)
	GetReportByID(ctx context.Context, id int64) (*models.Report, error)
	GetReports(ctx context.Context, offset, limit uint64, status models.ReportStatus) ([]models.Report, int64, error)
	CloseReport(ctx context.Context, id int64, status models.ReportStatus, resolvedBy int64, note string) error
}
