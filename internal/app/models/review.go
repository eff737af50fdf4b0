package models

import "time"

// Review represents a structured course review. Each rating is an integer
// between 1 and 5.
type Review struct {
	ID                int64     `json:"id" db:"id"`
	CourseID          int64     `json:"courseId" db:"course_id"`
	UserID            int64     `json:"userId" db:"user_id"`
	Satisfaction      int       `json:"satisfaction" db:"satisfaction"`
	Difficulty        int       `json:"difficulty" db:"difficulty"`
	Workload          int       `json:"workload" db:"workload"`
	PrerequisiteNotes string    `json:"prerequisiteNotes" db:"prerequisite_notes"`
	ProsCons          string    `json:"prosCons" db:"pros_cons"`
	Tips              string    `json:"tips" db:"tips"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`

	// AuthorUsername is resolved via join; empty when the author row is gone.
	AuthorUsername string `json:"authorUsername,omitempty"`
}

// UserReview pairs a review with the trimmed reference of its course, for
// "my reviews" listings.
type UserReview struct {
	Review
	Course CourseRef `json:"course"`
}

// ReviewStat is the per-review projection consumed by the ranking
// accumulator: the owning course, the difficulty rating, and the author's
// faculty affiliation (nil when the author has none or no longer exists).
type ReviewStat struct {
	CourseID        int64  `db:"course_id"`
	Difficulty      int    `db:"difficulty"`
	AuthorFacultyID *int64 `db:"faculty_id"`
}

// InstructorReply represents an instructor's response attached to a review.
type InstructorReply struct {
	ID           int64     `json:"id" db:"id"`
	ReviewID     int64     `json:"reviewId" db:"review_id"`
	InstructorID int64     `json:"instructorId" db:"instructor_id"`
	Content      string    `json:"content" db:"content"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	// Resolved via join when aggregating
	InstructorUsername string   `json:"instructorUsername,omitempty"`
	InstructorRole     RoleType `json:"instructorRole,omitempty"`
}
