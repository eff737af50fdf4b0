package models

import "time"

// Course represents a reviewable course.
type Course struct {
	ID                int64     `json:"id" db:"id"`
	Code              string    `json:"code" db:"code" example:"2110201"`
	NameTH            string    `json:"nameTh" db:"name_th"`
	NameEN            string    `json:"nameEn" db:"name_en"`
	Credits           int       `json:"credits" db:"credits"`
	Description       string    `json:"description" db:"description"`
	InstructorSummary string    `json:"instructorSummary" db:"instructor_summary"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}

// CourseRef is the trimmed course reference embedded into reshaped reviews.
type CourseRef struct {
	ID     int64  `json:"id"`
	Code   string `json:"code"`
	NameTH string `json:"nameTh"`
}

// Ref returns the trimmed reference for this course.
func (c *Course) Ref() CourseRef {
	return CourseRef{ID: c.ID, Code: c.Code, NameTH: c.NameTH}
}

// CourseSummary is the projection used by the ranking listing.
type CourseSummary struct {
	ID     int64  `json:"id" db:"id"`
	Code   string `json:"code" db:"code"`
	NameTH string `json:"nameTh" db:"name_th"`
	NameEN string `json:"nameEn" db:"name_en"`
}
