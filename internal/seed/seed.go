package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/napat/courselens/internal/app/models"
	appRepos "github.com/napat/courselens/internal/app/repositories"
	"github.com/napat/courselens/internal/pkg/apperrors"
	"github.com/napat/courselens/internal/pkg/auth"
)

const defaultAdminEmail = "admin@courselens.app"

// CreateDefaultData seeds faculties and a bootstrap admin account on startup.
// Existing rows are left alone; individual failures are collected rather than
// aborting the whole seed.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	facultyRepo := appRepos.NewFacultyRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	defaultFaculties := []appModels.Faculty{
		{Name: "Faculty of Engineering", Code: "ENG"},
		{Name: "Faculty of Science", Code: "SCI"},
		{Name: "Faculty of Arts", Code: "ARTS"},
		{Name: "Faculty of Business Administration", Code: "BBA"},
	}

	for _, faculty := range defaultFaculties {
		f := faculty
		if _, err := facultyRepo.CreateFaculty(ctx, &f); err != nil {
			if errors.Is(err, apperrors.ErrFacultyAlreadyExists) {
				continue
			}
			lgr.Error().Err(err).Str("code", f.Code).Msg("Error creating default faculty")
			finalErr = errors.Join(finalErr, err)
		}
	}

	// Bootstrap admin account
	_, err := userRepo.GetUserByEmail(ctx, defaultAdminEmail)
	switch {
	case err == nil:
		lgr.Debug().Msg("Admin user already exists, skipping creation")
	case errors.Is(err, apperrors.ErrUserNotFound):
		lgr.Info().Msg("Creating default admin user...")

		hashedPassword, hashErr := auth.HashPassword("Admin123!")
		if hashErr != nil {
			lgr.Error().Err(hashErr).Msg("Error hashing admin password")
			return errors.Join(finalErr, hashErr)
		}

		admin := &appModels.User{
			Email:    defaultAdminEmail,
			Password: hashedPassword,
			Username: "admin",
			RoleType: appModels.RoleAdmin,
			IsActive: true,
		}

		adminID, createErr := userRepo.CreateUser(ctx, admin)
		if createErr != nil {
			lgr.Error().Err(createErr).Msg("Error creating admin user")
			finalErr = errors.Join(finalErr, createErr)
		} else {
			lgr.Info().Int64("adminID", adminID).Msg("Default admin user created")
		}
	default:
		lgr.Error().Err(err).Msg("Error checking for admin user")
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}
