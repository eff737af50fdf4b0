package dto

import (
	"time"

	"github.com/napat/courselens/internal/app/models"
)

// CreateCourseRequest represents the request to create a course
type CreateCourseRequest struct {
	Code              string `json:"code" binding:"required,coursecode"`
	NameTH            string `json:"nameTh" binding:"required"`
	NameEN            string `json:"nameEn" binding:"required"`
	Credits           int    `json:"credits" binding:"required,min=1,max=12"`
	Description       string `json:"description"`
	InstructorSummary string `json:"instructorSummary"`
}

// UpdateCourseRequest represents the request to update a course
type UpdateCourseRequest struct {
	Code              string `json:"code" binding:"required,coursecode"`
	NameTH            string `json:"nameTh" binding:"required"`
	NameEN            string `json:"nameEn" binding:"required"`
	Credits           int    `json:"credits" binding:"required,min=1,max=12"`
	Description       string `json:"description"`
	InstructorSummary string `json:"instructorSummary"`
}

// CourseListResponse represents a paginated course listing
type CourseListResponse struct {
	Courses    []models.Course `json:"courses"`
	Pagination PaginationInfo  `json:"pagination"`
}

// RatingsBlock groups the three integer ratings of a review.
type RatingsBlock struct {
	Satisfaction int `json:"satisfaction" example:"4"`
	Difficulty   int `json:"difficulty" example:"3"`
	Workload     int `json:"workload" example:"5"`
}

// ContentBlock groups the free-text fields of a review.
type ContentBlock struct {
	PrerequisiteNotes string `json:"prerequisiteNotes"`
	ProsCons          string `json:"prosCons"`
	Tips              string `json:"tips"`
}

// InstructorReplyView is the single surfaced reply on a reshaped review.
type InstructorReplyView struct {
	ID                 int64     `json:"id"`
	InstructorID       int64     `json:"instructorId"`
	InstructorUsername string    `json:"instructorUsername"`
	InstructorRole     string    `json:"instructorRole" example:"INSTRUCTOR"`
	Content            string    `json:"content"`
	CreatedAt          time.Time `json:"createdAt"`
}

// ReviewView is the reshaped review embedded in a course detail response.
// InstructorReply is null when the review has no replies; otherwise it holds
// exactly the most recent one.
type ReviewView struct {
	ID              int64                `json:"id"`
	AuthorID        int64                `json:"authorId"`
	AuthorUsername  string               `json:"authorUsername"`
	Ratings         RatingsBlock         `json:"ratings"`
	Content         ContentBlock         `json:"content"`
	InstructorReply *InstructorReplyView `json:"instructorReply"`
	Course          models.CourseRef     `json:"course"`
	CreatedAt       time.Time            `json:"createdAt"`
}

// CourseDetailResponse combines a course with its reshaped reviews.
type CourseDetailResponse struct {
	Course  models.Course `json:"course"`
	Reviews []ReviewView  `json:"reviews"`
}

// CourseRankingEntry is one row of the faculty-relative ranking output.
// Difficulty is the arithmetic mean of review difficulty ratings, 0 when the
// course has no reviews.
type CourseRankingEntry struct {
	ID                   int64   `json:"id"`
	CourseCode           string  `json:"courseCode"`
	NameTH               string  `json:"nameTh"`
	NameEN               string  `json:"nameEn"`
	Difficulty           float64 `json:"difficulty"`
	ReviewCount          int     `json:"reviewCount"`
	SameFacultyReviewers int     `json:"sameFacultyReviewers"`
}
