package dto

import (
	"time"

	"github.com/napat/courselens/internal/app/models"
)

// CreateReviewRequest represents the request to post a review for a course.
// Each rating is conventionally 1-5.
type CreateReviewRequest struct {
	Satisfaction      int    `json:"satisfaction" binding:"required,min=1,max=5"`
	Difficulty        int    `json:"difficulty" binding:"required,min=1,max=5"`
	Workload          int    `json:"workload" binding:"required,min=1,max=5"`
	PrerequisiteNotes string `json:"prerequisiteNotes"`
	ProsCons          string `json:"prosCons"`
	Tips              string `json:"tips"`
}

// CreateReplyRequest represents an instructor's reply to a review
type CreateReplyRequest struct {
	Content string `json:"content" binding:"required"`
}

// MyReviewEntry is one review in the requesting user's review listing.
type MyReviewEntry struct {
	ID        int64            `json:"id"`
	Ratings   RatingsBlock     `json:"ratings"`
	Content   ContentBlock     `json:"content"`
	Course    models.CourseRef `json:"course"`
	CreatedAt time.Time        `json:"createdAt"`
}
