package services

import (
	"context"
	"fmt"

	"github.com/napat/courselens/internal/app/models"
	"github.com/napat/courselens/internal/app/models/dto"
	"github.com/napat/courselens/internal/pkg/apperrors"
)

// ReviewService defines the interface for review and reply operations
type ReviewService interface {
	CreateReview(ctx context.Context, review *models.Review) (int64, error)
	DeleteReview(ctx context.Context, reviewID, requesterID int64, requesterRole models.RoleType) error
	GetMyReviews(ctx context.Context, userID int64) ([]dto.MyReviewEntry, error)
	CreateReply(ctx context.Context, reply *models.InstructorReply, authorRole models.RoleType) (int64, error)
}

// reviewServiceImpl implements the ReviewService interface
type reviewServiceImpl struct {
	reviewStore ReviewStore
	courseStore CourseStore
}

// NewReviewService creates a new review service instance
func NewReviewService(reviewStore ReviewStore, courseStore CourseStore) ReviewService {
	return &reviewServiceImpl{
		reviewStore: reviewStore,
		courseStore: courseStore,
	}
}

func validRating(value int) bool {
	return value >= 1 && value <= 5
}

// CreateReview posts a review for a course. One review per user per course is
// enforced; a second submission is rejected as a duplicate.
func (s *reviewServiceImpl) CreateReview(ctx context.Context, review *models.Review) (int64, error) {
	if review == nil {
		return 0, fmt.Errorf("%w: review is nil", apperrors.ErrValidationFailed)
	}
	if !validRating(review.Satisfaction) || !validRating(review.Difficulty) || !validRating(review.Workload) {
		return 0, apperrors.ErrInvalidRatingSpan
	}

	// The course must exist before a review can reference it.
	if _, err := s.courseStore.GetCourseByID(ctx, review.CourseID); err != nil {
		return 0, err
	}

	id, err := s.reviewStore.CreateReview(ctx, review)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// DeleteReview removes a review. Only the author or an admin may delete it.
func (s *reviewServiceImpl) DeleteReview(ctx context.Context, reviewID, requesterID int64, requesterRole models.RoleType) error {
	review, err := s.reviewStore.GetReviewByID(ctx, reviewID)
	if err != nil {
		return err
	}

	if review.UserID != requesterID && requesterRole != models.RoleAdmin {
		return apperrors.ErrNotReviewAuthor
	}

	return s.reviewStore.DeleteReview(ctx, reviewID)
}

// GetMyReviews lists the requesting user's reviews, newest-first.
func (s *reviewServiceImpl) GetMyReviews(ctx context.Context, userID int64) ([]dto.MyReviewEntry, error) {
	reviews, err := s.reviewStore.GetReviewsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching user reviews: %w", err)
	}

	entries := make([]dto.MyReviewEntry, 0, len(reviews))
	for _, review := range reviews {
		entries = append(entries, dto.MyReviewEntry{
			ID: review.ID,
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
			Course:    review.Course,
			CreatedAt: review.CreatedAt,
		})
	}

	return entries, nil
}

// CreateReply attaches an instructor reply to a review. Only instructor-role
// users may reply.
func (s *reviewServiceImpl) CreateReply(ctx context.Context, reply *models.InstructorReply, authorRole models.RoleType) (int64, error) {
	if reply == nil {
		return 0, fmt.Errorf("%w: reply is nil", apperrors.ErrValidationFailed)
	}
	if authorRole != models.RoleInstructor {
		return 0, apperrors.NewForbiddenError("only instructors can reply to reviews")
	}
	if reply.Content == "" {
		return 0, fmt.Errorf("%w: reply content cannot be empty", apperrors.ErrValidationFailed)
	}

	if _, err := s.reviewStore.GetReviewByID(ctx, reply.ReviewID); err != nil {
		return 0, err
	}

	id, err := s.reviewStore.CreateReply(ctx, reply)
	if err != nil {
		return 0, err
	}
	return id, nil
}
