package services

import (
	"context"
	"time"

	"github.com/napat/courselens/internal/app/models"
	"github.com/napat/courselens/internal/pkg/apperrors"
)

// In-memory store fakes backing the service tests. Each fake keeps rows in
// slices and mimics the error contract of the pgx repositories.

type fakeCourseStore struct {
	courses []models.Course
	nextID  int64
}

func newFakeCourseStore(courses ...models.Course) *fakeCourseStore {
	s := &fakeCourseStore{nextID: 1}
	for _, c := range courses {
		if c.ID >= s.nextID {
			s.nextID = c.ID + 1
		}
		s.courses = append(s.courses, c)
	}
	return s
}

func (s *fakeCourseStore) CreateCourse(_ context.Context, course *models.Course) (int64, error) {
	for _, c := range s.courses {
		if c.Code == course.Code {
			return 0, apperrors.ErrCourseAlreadyExists
		}
	}
	course.ID = s.nextID
	s.nextID++
	s.courses = append(s.courses, *course)
	return course.ID, nil
}

func (s *fakeCourseStore) GetCourseByID(_ context.Context, id int64) (*models.Course, error) {
	for i := range s.courses {
		if s.courses[i].ID == id {
			c := s.courses[i]
			return &c, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (s *fakeCourseStore) GetAllCourses(_ context.Context, offset, limit uint64, _ string) ([]models.Course, int64, error) {
	total := int64(len(s.courses))
	start := int(offset)
	if start > len(s.courses) {
		return nil, total, nil
	}
	end := start + int(limit)
	if end > len(s.courses) {
		end = len(s.courses)
	}
	return s.courses[start:end], total, nil
}

func (s *fakeCourseStore) GetCourseSummaries(_ context.Context) ([]models.CourseSummary, error) {
	summaries := make([]models.CourseSummary, 0, len(s.courses))
	for _, c := range s.courses {
		summaries = append(summaries, models.CourseSummary{
			ID:     c.ID,
			Code:   c.Code,
			NameTH: c.NameTH,
			NameEN: c.NameEN,
		})
	}
	return summaries, nil
}

func (s *fakeCourseStore) UpdateCourse(_ context.Context, course *models.Course) error {
	for i := range s.courses {
		if s.courses[i].ID == course.ID {
			s.courses[i] = *course
			return nil
		}
	}
	return apperrors.ErrCourseNotFound
}

func (s *fakeCourseStore) DeleteCourse(_ context.Context, id int64) error {
	for i := range s.courses {
		if s.courses[i].ID == id {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrCourseNotFound
}

type fakeReviewStore struct {
	reviews []models.Review
	replies []models.InstructorReply
	stats   []models.ReviewStat
	nextID  int64

	reviewsQueried bool
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{nextID: 1}
}

func (s *fakeReviewStore) CreateReview(_ context.Context, review *models.Review) (int64, error) {
	for _, r := range s.reviews {
		if r.CourseID == review.CourseID && r.UserID == review.UserID {
			return 0, apperrors.ErrDuplicateReview
		}
	}
	review.ID = s.nextID
	s.nextID++
	s.reviews = append(s.reviews, *review)
	return review.ID, nil
}

func (s *fakeReviewStore) GetReviewByID(_ context.Context, id int64) (*models.Review, error) {
	for i := range s.reviews {
		if s.reviews[i].ID == id {
			r := s.reviews[i]
			return &r, nil
		}
	}
	return nil, apperrors.ErrReviewNotFound
}

func (s *fakeReviewStore) GetReviewsByCourse(_ context.Context, courseID int64) ([]models.Review, error) {
	s.reviewsQueried = true
	var out []models.Review
	for _, r := range s.reviews {
		if r.CourseID == courseID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeReviewStore) GetReviewsByUser(_ context.Context, userID int64) ([]models.UserReview, error) {
	var out []models.UserReview
	for _, r := range s.reviews {
		if r.UserID == userID {
			out = append(out, models.UserReview{Review: r})
		}
	}
	return out, nil
}

func (s *fakeReviewStore) DeleteReview(_ context.Context, id int64) error {
	for i := range s.reviews {
		if s.reviews[i].ID == id {
			s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrReviewNotFound
}

func (s *fakeReviewStore) GetLatestReplies(_ context.Context, reviewIDs []int64) (map[int64]models.InstructorReply, error) {
	wanted := make(map[int64]bool, len(reviewIDs))
	for _, id := range reviewIDs {
		wanted[id] = true
	}

	latest := make(map[int64]models.InstructorReply)
	for _, reply := range s.replies {
		if !wanted[reply.ReviewID] {
			continue
		}
		current, ok := latest[reply.ReviewID]
		if !ok || reply.CreatedAt.After(current.CreatedAt) {
			latest[reply.ReviewID] = reply
		}
	}
	return latest, nil
}

func (s *fakeReviewStore) CreateReply(_ context.Context, reply *models.InstructorReply) (int64, error) {
	reply.ID = s.nextID
	s.nextID++
	s.replies = append(s.replies, *reply)
	return reply.ID, nil
}

func (s *fakeReviewStore) GetReviewStats(_ context.Context) ([]models.ReviewStat, error) {
	return s.stats, nil
}

type fakeUserStore struct {
	users  []models.User
	tokens []models.RefreshToken
	nextID int64
}

func newFakeUserStore(users ...models.User) *fakeUserStore {
	s := &fakeUserStore{nextID: 1}
	for _, u := range users {
		if u.ID >= s.nextID {
			s.nextID = u.ID + 1
		}
		s.users = append(s.users, u)
	}
	return s
}

func (s *fakeUserStore) CreateUser(_ context.Context, user *models.User) (int64, error) {
	for _, u := range s.users {
		if u.Email == user.Email {
			return 0, apperrors.ErrEmailAlreadyExists
		}
	}
	user.ID = s.nextID
	s.nextID++
	s.users = append(s.users, *user)
	return user.ID, nil
}

func (s *fakeUserStore) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *fakeUserStore) GetUserFaculty(_ context.Context, userID int64) (*int64, error) {
	for i := range s.users {
		if s.users[i].ID == userID {
			return s.users[i].FacultyID, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *fakeUserStore) StoreRefreshToken(_ context.Context, userID int64, token string, expiresAt time.Time) error {
	s.tokens = append(s.tokens, models.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	})
	return nil
}

func (s *fakeUserStore) GetRefreshToken(_ context.Context, token string) (*models.RefreshToken, error) {
	for i := range s.tokens {
		if s.tokens[i].Token == token {
			t := s.tokens[i]
			return &t, nil
		}
	}
	return nil, apperrors.ErrTokenInvalid
}

func (s *fakeUserStore) RevokeRefreshToken(_ context.Context, token string) error {
	for i := range s.tokens {
		if s.tokens[i].Token == token {
			s.tokens[i].Revoked = true
			return nil
		}
	}
	return apperrors.ErrTokenInvalid
}

type fakeFacultyStore struct {
	faculties []models.Faculty
}

func (s *fakeFacultyStore) GetFacultyByID(_ context.Context, id int64) (*models.Faculty, error) {
	for i := range s.faculties {
		if s.faculties[i].ID == id {
			f := s.faculties[i]
			return &f, nil
		}
	}
	return nil, apperrors.ErrFacultyNotFound
}

func (s *fakeFacultyStore) GetAllFaculties(_ context.Context) ([]models.Faculty, error) {
	return s.faculties, nil
}

type fakeWishlistStore struct {
	items  []models.WishlistItem
	nextID int64
}

func (s *fakeWishlistStore) AddItem(_ context.Context, userID, courseID int64) (int64, error) {
	for _, item := range s.items {
		if item.UserID == userID && item.CourseID == courseID {
			return 0, apperrors.ErrAlreadyWishlisted
		}
	}
	s.nextID++
	s.items = append(s.items, models.WishlistItem{ID: s.nextID, UserID: userID, CourseID: courseID})
	return s.nextID, nil
}

func (s *fakeWishlistStore) RemoveItem(_ context.Context, userID, courseID int64) error {
	for i, item := range s.items {
		if item.UserID == userID && item.CourseID == courseID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrWishlistNotFound
}

func (s *fakeWishlistStore) GetItemsByUser(_ context.Context, userID int64) ([]models.WishlistItem, error) {
	var out []models.WishlistItem
	for _, item := range s.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

type fakeReportStore struct {
	reports []models.Report
	nextID  int64
}

func (s *fakeReportStore) CreateReport(_ context.Context, report *models.Report) (int64, error) {
	s.nextID++
	report.ID = s.nextID
	report.Status = models.ReportStatusOpen
	s.reports = append(s.reports, *report)
	return report.ID, nil
}

func (s *fakeReportStore) GetReportByID(_ context.Context, id int64) (*models.Report, error) {
	for i := range s.reports {
		if s.reports[i].ID == id {
			r := s.reports[i]
			return &r, nil
		}
	}
	return nil, apperrors.ErrReportNotFound
}

func (s *fakeReportStore) GetReports(_ context.Context, offset, limit uint64, status models.ReportStatus) ([]models.Report, int64, error) {
	var filtered []models.Report
	for _, r := range s.reports {
		if status == "" || r.Status == status {
			filtered = append(filtered, r)
		}
	}
	total := int64(len(filtered))
	start := int(offset)
	if start > len(filtered) {
		return nil, total, nil
	}
	end := start + int(limit)
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], total, nil
}

func (s *fakeReportStore) CloseReport(_ context.Context, id int64, status models.ReportStatus, resolvedBy int64, note string) error {
	for i := range s.reports {
		if s.reports[i].ID == id {
			if s.reports[i].Status != models.ReportStatusOpen {
				return apperrors.ErrReportAlreadyClosed
			}
			now := time.Now()
			s.reports[i].Status = status
			s.reports[i].ResolvedBy = &resolvedBy
			s.reports[i].ResolutionNote = note
			s.reports[i].ResolvedAt = &now
			return nil
		}
	}
	return apperrors.ErrReportNotFound
}
