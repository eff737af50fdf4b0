package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/napat/courselens/internal/app/models"
	"github.com/napat/courselens/internal/pkg/apperrors"
	"github.com/napat/courselens/internal/pkg/dberrors"
	"github.com/napat/courselens/internal/pkg/logger"
)

// WishlistRepository handles wishlist database operations
type WishlistRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewWishlistRepository creates a new WishlistRepository
func NewWishlistRepository(db *pgxpool.Pool) *WishlistRepository {
	return &WishlistRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// AddItem bookmarks a course for a user and returns the entry id.
func (r *WishlistRepository) AddItem(ctx context.Context, userID, courseID int64) (int64, error) {
	sql, args, err := r.sb.Insert("wishlist_items").
		Columns("user_id", "course_id").
		Values(userID, courseID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build add wishlist item query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrAlreadyWishlisted
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Int64("courseID", courseID).Msg("Error adding wishlist item")
		return 0, fmt.Errorf("error adding wishlist item: %w", err)
	}

	return id, nil
}

// RemoveItem removes a bookmarked course for a user.
func (r *WishlistRepository) RemoveItem(ctx context.Context, userID, courseID int64) error {
	sql, args, err := r.sb.Delete("wishlist_items").
		Where(squirrel.Eq{"user_id": userID, "course_id": courseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build remove wishlist item query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Int64("courseID", courseID).Msg("Error removing wishlist item")
		return fmt.Errorf("error removing wishlist item: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrWishlistNotFound
	}

	return nil
}

// GetItemsByUser retrieves a user's bookmarked courses, newest bookmark first.
func (r *WishlistRepository) GetItemsByUser(ctx context.Context, userID int64) ([]models.WishlistItem, error) {
	sql, args, err := r.sb.Select(
		"w.id", "w.user_id", "w.course_id", "w.created_at",
		"c.id", "c.code", "c.name_th", "c.name_en", "c.credits",
		"c.description", "c.instructor_summary", "c.created_at", "c.updated_at",
	).
		From("wishlist_items w").
		Join("courses c ON w.course_id = c.id").
		Where(squirrel.Eq{"w.user_id": userID}).
		OrderBy("w.created_at DESC", "w.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get wishlist query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing get wishlist query")
		return nil, fmt.Errorf("error querying wishlist: %w", err)
	}
	defer rows.Close()

	items := []models.WishlistItem{}
	for rows.Next() {
		var item models.WishlistItem
		course := &models.Course{}
		err := rows.Scan(
			&item.ID, &item.UserID, &item.CourseID, &item.CreatedAt,
			&course.ID, &course.Code, &course.NameTH, &course.NameEN, &course.Credits,
			&course.Description, &course.InstructorSummary, &course.CreatedAt, &course.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning wishlist row: %w", err)
		}
		item.Course = course
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating wishlist rows: %w", err)
	}

	return items, nil
}
