package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository     *UserRepository
	FacultyRepository  *FacultyRepository
	CourseRepository   *CourseRepository
	ReviewRepository   *ReviewRepository
	WishlistRepository *WishlistRepository
	ReportRepository   *ReportRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db),
		FacultyRepository:  NewFacultyRepository(db),
		CourseRepository:   NewCourseRepository(db),
		ReviewRepository:   NewReviewRepository(db),
		WishlistRepository: NewWishlistRepository(db),
		ReportRepository:   NewReportRepository(db),
	}
}
