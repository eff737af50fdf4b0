package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrUnauthorized       = errors.New("authentication required")
	ErrAccountDisabled    = errors.New("account is disabled")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Course errors
var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrCourseAlreadyExists = errors.New("course with this code already exists")
	ErrCourseHasReviews    = errors.New("course has reviews and cannot be deleted")
)

// Review errors
var (
	ErrReviewNotFound    = errors.New("review not found")
	ErrDuplicateReview   = errors.New("user already reviewed this course")
	ErrReplyNotFound     = errors.New("instructor reply not found")
	ErrNotReviewAuthor   = errors.New("review belongs to another user")
	ErrInvalidRatingSpan = errors.New("rating must be between 1 and 5")
)

// Wishlist errors
var (
	ErrAlreadyWishlisted = errors.New("course already in wishlist")
	ErrWishlistNotFound  = errors.New("wishlist entry not found")
)

// Report errors
var (
	ErrReportNotFound      = errors.New("report not found")
	ErrReportAlreadyClosed = errors.New("report has already been resolved or dismissed")
	ErrInvalidReportStatus = errors.New("invalid report status")
	ErrSelfReportForbidden = errors.New("users cannot report their own reviews")
)

// Faculty errors
var (
	ErrFacultyNotFound      = errors.New("faculty not found")
	ErrFacultyAlreadyExists = errors.New("faculty with this code already exists")
)

// CustomError carries an underlying sentinel plus a request-specific message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes the sentinel for errors.Is checks.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewNotFoundError wraps ErrResourceNotFound with a message.
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewValidationError wraps ErrValidationFailed with a message.
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewForbiddenError wraps ErrPermissionDenied with a message.
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}
