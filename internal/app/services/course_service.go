package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/napat/courselens/internal/app/models"
	"github.com/napat/courselens/internal/app/models/dto"
	"github.com/napat/courselens/internal/pkg/apperrors"
)

// UnknownAuthorName is substituted when a review's author row no longer
// exists; the aggregated view never fails on a missing author.
const UnknownAuthorName = "Unknown Student"

// CourseService defines the interface for course-related operations,
// including the aggregated detail view and the faculty-relative ranking.
type CourseService interface {
	CreateCourse(ctx context.Context, course *models.Course) (int64, error)
	GetAllCourses(ctx context.Context, offset, limit uint64, search string) ([]models.Course, int64, error)
	UpdateCourse(ctx context.Context, course *models.Course) error
	DeleteCourse(ctx context.Context, id int64) error

	GetCourseDetail(ctx context.Context, courseID int64) (*dto.CourseDetailResponse, error)
	GetFacultyRanking(ctx context.Context, userID int64) ([]dto.CourseRankingEntry, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseStore CourseStore
	reviewStore ReviewStore
	userStore   UserStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseStore CourseStore, reviewStore ReviewStore, userStore UserStore) CourseService {
	return &courseServiceImpl{
		courseStore: courseStore,
		reviewStore: reviewStore,
		userStore:   userStore,
	}
}

func validateCourse(course *models.Course) error {
	if course == nil {
		return fmt.Errorf("%w: course is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.Code) == "" {
		return fmt.Errorf("%w: code cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(course.NameTH) == "" && strings.TrimSpace(course.NameEN) == "" {
		return fmt.Errorf("%w: at least one course name is required", apperrors.ErrValidationFailed)
	}
	if course.Credits <= 0 {
		return fmt.Errorf("%w: credits must be positive", apperrors.ErrValidationFailed)
	}
	return nil
}

// CreateCourse creates a new course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	if err := validateCourse(course); err != nil {
		return 0, err
	}

	id, err := s.courseStore.CreateCourse(ctx, course)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetAllCourses retrieves a page of courses with an optional search term
func (s *courseServiceImpl) GetAllCourses(ctx context.Context, offset, limit uint64, search string) ([]models.Course, int64, error) {
	return s.courseStore.GetAllCourses(ctx, offset, limit, search)
}

// UpdateCourse updates an existing course
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, course *models.Course) error {
	if err := validateCourse(course); err != nil {
		return err
	}
	if course.ID <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}
	return s.courseStore.UpdateCourse(ctx, course)
}

// DeleteCourse deletes a course without reviews
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}
	return s.courseStore.DeleteCourse(ctx, id)
}

// GetCourseDetail assembles the denormalized course view: the course's own
// fields plus its reviews newest-first, each reshaped with nested ratings and
// content blocks, the resolved author name, and at most one instructor reply
// (the most recent). A missing course short-circuits before any review
// fetch; any later sub-fetch failure aborts the whole request.
func (s *courseServiceImpl) GetCourseDetail(ctx context.Context, courseID int64) (*dto.CourseDetailResponse, error) {
	if courseID <= 0 {
		return nil, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	course, err := s.courseStore.GetCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewStore.GetReviewsByCourse(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("error fetching course reviews: %w", err)
	}

	reviewIDs := make([]int64, len(reviews))
	for i, review := range reviews {
		reviewIDs[i] = review.ID
	}

	latestReplies, err := s.reviewStore.GetLatestReplies(ctx, reviewIDs)
	if err != nil {
		return nil, fmt.Errorf("error fetching instructor replies: %w", err)
	}

	courseRef := course.Ref()
	views := make([]dto.ReviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, reshapeReview(review, courseRef, latestReplies))
	}

	return &dto.CourseDetailResponse{
		Course:  *course,
		Reviews: views,
	}, nil
}

func reshapeReview(review models.Review, courseRef models.CourseRef, latestReplies map[int64]models.InstructorReply) dto.ReviewView {
	authorName := review.AuthorUsername
	if authorName == "" {
		authorName = UnknownAuthorName
	}

	view := dto.ReviewView{
		ID:             review.ID,
		AuthorID:       review.UserID,
		AuthorUsername: authorName,
		Ratings: dto.RatingsBlock{
			Satisfaction: review.Satisfaction,
			Difficulty:   review.Difficulty,
			Workload:     review.Workload,
		},
		Content: dto.ContentBlock{
			PrerequisiteNotes: review.PrerequisiteNotes,
			ProsCons:          review.ProsCons,
			Tips:              review.Tips,
		},
		Course:    courseRef,
		CreatedAt: review.CreatedAt,
	}

	if reply, ok := latestReplies[review.ID]; ok {
		view.InstructorReply = &dto.InstructorReplyView{
			ID:                 reply.ID,
			InstructorID:       reply.InstructorID,
			InstructorUsername: reply.InstructorUsername,
			InstructorRole:     string(reply.InstructorRole),
			Content:            reply.Content,
			CreatedAt:          reply.CreatedAt,
		}
	}

	return view
}

// courseAccumulator carries per-course running statistics during ranking.
type courseAccumulator struct {
	reviewCount   int
	difficultySum int
	sameFaculty   int
}

// GetFacultyRanking produces every course annotated with review-derived
// statistics, ranked descending by review count. Ties keep encounter order
// (stable sort). Same-faculty counts are only accumulated when the
// requesting user has a faculty affiliation.
func (s *courseServiceImpl) GetFacultyRanking(ctx context.Context, userID int64) ([]dto.CourseRankingEntry, error) {
	if userID <= 0 {
		return nil, apperrors.ErrUnauthorized
	}

	requesterFaculty, err := s.userStore.GetUserFaculty(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries, err := s.courseStore.GetCourseSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching course summaries: %w", err)
	}

	stats, err := s.reviewStore.GetReviewStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching review stats: %w", err)
	}

	accumulators := make(map[int64]*courseAccumulator, len(summaries))
	for _, stat := range stats {
		acc, ok := accumulators[stat.CourseID]
		if !ok {
			acc = &courseAccumulator{}
			accumulators[stat.CourseID] = acc
		}
		acc.reviewCount++
		acc.difficultySum += stat.Difficulty
		if requesterFaculty != nil && stat.AuthorFacultyID != nil && *stat.AuthorFacultyID == *requesterFaculty {
			acc.sameFaculty++
		}
	}

	entries := make([]dto.CourseRankingEntry, 0, len(summaries))
	for _, summary := range summaries {
		entry := dto.CourseRankingEntry{
			ID:         summary.ID,
			CourseCode: summary.Code,
			NameTH:     summary.NameTH,
			NameEN:     summary.NameEN,
		}
		if acc, ok := accumulators[summary.ID]; ok {
			entry.ReviewCount = acc.reviewCount
			entry.Difficulty = float64(acc.difficultySum) / float64(acc.reviewCount)
			entry.SameFacultyReviewers = acc.sameFaculty
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].ReviewCount > entries[j].ReviewCount
	})

	return entries, nil
}
