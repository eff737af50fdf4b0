package services

import (
	"context"
	"fmt"

	"github.com/napat/courselens/internal/app/models"
	"github.com/napat/courselens/internal/pkg/apperrors"
)

// FacultyService defines the interface for faculty lookups
type FacultyService interface {
	GetAllFaculties(ctx context.Context) ([]models.Faculty, error)
	GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error)
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	facultyStore FacultyStore
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyStore FacultyStore) FacultyService {
	return &facultyServiceImpl{facultyStore: facultyStore}
}

// GetAllFaculties retrieves all faculties
func (s *facultyServiceImpl) GetAllFaculties(ctx context.Context) ([]models.Faculty, error) {
	faculties, err := s.facultyStore.GetAllFaculties(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculties: %w", err)
	}
	return faculties, nil
}

// GetFacultyByID retrieves a faculty by ID
func (s *facultyServiceImpl) GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid faculty ID", apperrors.ErrValidationFailed)
	}
	return s.facultyStore.GetFacultyByID(ctx, id)
}
