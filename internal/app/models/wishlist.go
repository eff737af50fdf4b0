package models

import "time"

// WishlistItem represents a bookmarked course.
type WishlistItem struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	CourseID  int64     `json:"courseId" db:"course_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// Relation (populated on listing)
	Course *Course `json:"course,omitempty"`
}
