package dto

import (
	"time"

	"github.com/napat/courselens/internal/app/models"
)

// AddWishlistRequest represents the request to bookmark a course
type AddWishlistRequest struct {
	CourseID int64 `json:"courseId" binding:"required,min=1"`
}

// WishlistEntry is one bookmarked course in the wishlist listing
type WishlistEntry struct {
	ID        int64         `json:"id"`
	Course    models.Course `json:"course"`
	CreatedAt time.Time     `json:"createdAt"`
}
