package services

import (
	"context"
	"fmt"

	"github.com/napat/courselens/internal/app/models/dto"
	"github.com/napat/courselens/internal/pkg/apperrors"
)

// WishlistService defines the interface for wishlist operations
type WishlistService interface {
	AddToWishlist(ctx context.Context, userID, courseID int64) (int64, error)
	RemoveFromWishlist(ctx context.Context, userID, courseID int64) error
	GetWishlist(ctx context.Context, userID int64) ([]dto.WishlistEntry, error)
}

// wishlistServiceImpl implements the WishlistService interface
type wishlistServiceImpl struct {
	wishlistStore WishlistStore
	courseStore   CourseStore
}

// NewWishlistService creates a new wishlist service instance
func NewWishlistService(wishlistStore WishlistStore, courseStore CourseStore) WishlistService {
	return &wishlistServiceImpl{
		wishlistStore: wishlistStore,
		courseStore:   courseStore,
	}
}

// AddToWishlist bookmarks a course for a user.
func (s *wishlistServiceImpl) AddToWishlist(ctx context.Context, userID, courseID int64) (int64, error) {
	if courseID <= 0 {
		return 0, fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	if _, err := s.courseStore.GetCourseByID(ctx, courseID); err != nil {
		return 0, err
	}

	return s.wishlistStore.AddItem(ctx, userID, courseID)
}

// RemoveFromWishlist removes a bookmarked course.
func (s *wishlistServiceImpl) RemoveFromWishlist(ctx context.Context, userID, courseID int64) error {
	return s.wishlistStore.RemoveItem(ctx, userID, courseID)
}

// GetWishlist lists a user's bookmarked courses.
func (s *wishlistServiceImpl) GetWishlist(ctx context.Context, userID int64) ([]dto.WishlistEntry, error) {
	items, err := s.wishlistStore.GetItemsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching wishlist: %w", err)
	}

	entries := make([]dto.WishlistEntry, 0, len(items))
	for _, item := range items {
		entry := dto.WishlistEntry{
			ID:        item.ID,
			CreatedAt: item.CreatedAt,
		}
		if item.Course != nil {
			entry.Course = *item.Course
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
