package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/napat/courselens/internal/app/models"
	"github.com/napat/courselens/internal/pkg/apperrors"
	"github.com/napat/courselens/internal/pkg/dberrors"
	"github.com/napat/courselens/internal/pkg/logger"
)

// ReviewRepository handles review and instructor reply database operations
type ReviewRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateReview inserts a new review and returns its id. A second review by
// the same user for the same course violates the unique constraint and is
// reported as a duplicate.
func (r *ReviewRepository) CreateReview(ctx context.Context, review *models.Review) (int64, error) {
	sql, args, err := r.sb.Insert("reviews").
		Columns("course_id", "user_id", "satisfaction", "difficulty", "workload",
			"prerequisite_notes", "pros_cons", "tips").
		Values(review.CourseID, review.UserID, review.Satisfaction, review.Difficulty, review.Workload,
			review.PrerequisiteNotes, review.ProsCons, review.Tips).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create review query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolationOn(err, "reviews_course_id_user_id_key") {
			return 0, apperrors.ErrDuplicateReview
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Msg("Error executing create review query")
		return 0, fmt.Errorf("error creating review: %w", err)
	}

	return id, nil
}

// GetReviewByID retrieves a review by id.
func (r *ReviewRepository) GetReviewByID(ctx context.Context, id int64) (*models.Review, error) {
	sql, args, err := r.sb.Select(
		"id", "course_id", "user_id", "satisfaction", "difficulty", "workload",
		"prerequisite_notes", "pros_cons", "tips", "created_at",
	).
		From("reviews").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get review query: %w", err)
	}

	review := &models.Review{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&review.ID, &review.CourseID, &review.UserID,
		&review.Satisfaction, &review.Difficulty, &review.Workload,
		&review.PrerequisiteNotes, &review.ProsCons, &review.Tips, &review.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReviewNotFound
		}
		logger.Error().Err(err).Int64("reviewID", id).Msg("Error scanning review row")
		return nil, fmt.Errorf("error getting review by ID: %w", err)
	}

	return review, nil
}

// GetReviewsByCourse retrieves all reviews of a course newest-first, each
// joined with its author's username. The username is empty when the author
// row no longer exists.
func (r *ReviewRepository) GetReviewsByCourse(ctx context.Context, courseID int64) ([]models.Review, error) {
	sql, args, err := r.sb.Select(
		"rv.id", "rv.course_id", "rv.user_id",
		"rv.satisfaction", "rv.difficulty", "rv.workload",
		"rv.prerequisite_notes", "rv.pros_cons", "rv.tips", "rv.created_at",
		"COALESCE(u.username, '') AS author_username",
	).
		From("reviews rv").
		LeftJoin("users u ON rv.user_id = u.id").
		Where(squirrel.Eq{"rv.course_id": courseID}).
		OrderBy("rv.created_at DESC", "rv.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course reviews query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", courseID).Msg("Error executing get course reviews query")
		return nil, fmt.Errorf("error querying course reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var review models.Review
		err := rows.Scan(
			&review.ID, &review.CourseID, &review.UserID,
			&review.Satisfaction, &review.Difficulty, &review.Workload,
			&review.PrerequisiteNotes, &review.ProsCons, &review.Tips, &review.CreatedAt,
			&review.AuthorUsername,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning review row: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}

	return reviews, nil
}

// GetReviewsByUser retrieves all reviews written by a user, newest-first,
// each carrying the trimmed reference of its course.
func (r *ReviewRepository) GetReviewsByUser(ctx context.Context, userID int64) ([]models.UserReview, error) {
	sql, args, err := r.sb.Select(
		"rv.id", "rv.course_id", "rv.user_id",
		"rv.satisfaction", "rv.difficulty", "rv.workload",
		"rv.prerequisite_notes", "rv.pros_cons", "rv.tips", "rv.created_at",
		"c.id", "c.code", "c.name_th",
	).
		From("reviews rv").
		Join("courses c ON rv.course_id = c.id").
		Where(squirrel.Eq{"rv.user_id": userID}).
		OrderBy("rv.created_at DESC", "rv.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user reviews query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing get user reviews query")
		return nil, fmt.Errorf("error querying user reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.UserReview{}
	for rows.Next() {
		var ur models.UserReview
		err := rows.Scan(
			&ur.ID, &ur.CourseID, &ur.UserID,
			&ur.Satisfaction, &ur.Difficulty, &ur.Workload,
			&ur.PrerequisiteNotes, &ur.ProsCons, &ur.Tips, &ur.CreatedAt,
			&ur.Course.ID, &ur.Course.Code, &ur.Course.NameTH,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning user review row: %w", err)
		}
		reviews = append(reviews, ur)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user review rows: %w", err)
	}

	return reviews, nil
}

// DeleteReview deletes a review by id.
func (r *ReviewRepository) DeleteReview(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("reviews").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete review query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("reviewID", id).Msg("Error executing delete review query")
		return fmt.Errorf("error deleting review: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrReviewNotFound
	}

	return nil
}

// GetLatestReplies resolves the most recent instructor reply for each review
// in reviewIDs in a single batched query, keyed by review id. Reviews with no
// replies are simply absent from the result.
func (r *ReviewRepository) GetLatestReplies(ctx context.Context, reviewIDs []int64) (map[int64]models.InstructorReply, error) {
	replies := map[int64]models.InstructorReply{}
	if len(reviewIDs) == 0 {
		return replies, nil
	}

	sql, args, err := r.sb.Select(
		"DISTINCT ON (ir.review_id) ir.id", "ir.review_id", "ir.instructor_id",
		"ir.content", "ir.created_at",
		"COALESCE(u.username, '') AS instructor_username",
		"COALESCE(u.role, '') AS instructor_role",
	).
		From("instructor_replies ir").
		LeftJoin("users u ON ir.instructor_id = u.id").
		Where(squirrel.Eq{"ir.review_id": reviewIDs}).
		OrderBy("ir.review_id", "ir.created_at DESC", "ir.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build latest replies query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing latest replies query")
		return nil, fmt.Errorf("error querying latest replies: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var reply models.InstructorReply
		err := rows.Scan(
			&reply.ID, &reply.ReviewID, &reply.InstructorID,
			&reply.Content, &reply.CreatedAt,
			&reply.InstructorUsername, &reply.InstructorRole,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning reply row: %w", err)
		}
		replies[reply.ReviewID] = reply
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reply rows: %w", err)
	}

	return replies, nil
}

// CreateReply inserts an instructor reply and returns its id.
func (r *ReviewRepository) CreateReply(ctx context.Context, reply *models.InstructorReply) (int64, error) {
	sql, args, err := r.sb.Insert("instructor_replies").
		Columns("review_id", "instructor_id", "content").
		Values(reply.ReviewID, reply.InstructorID, reply.Content).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create reply query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrReviewNotFound
		}
		logger.Error().Err(err).Msg("Error executing create reply query")
		return 0, fmt.Errorf("error creating reply: %w", err)
	}

	return id, nil
}

// GetReviewStats retrieves the per-review ranking projection for every
// review: owning course, difficulty rating, and the author's faculty via
// join (nil when the author has no affiliation or no longer exists).
func (r *ReviewRepository) GetReviewStats(ctx context.Context) ([]models.ReviewStat, error) {
	sql, args, err := r.sb.Select("rv.course_id", "rv.difficulty", "u.faculty_id").
		From("reviews rv").
		LeftJoin("users u ON rv.user_id = u.id").
		OrderBy("rv.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build review stats query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing review stats query")
		return nil, fmt.Errorf("error querying review stats: %w", err)
	}
	defer rows.Close()

	stats := []models.ReviewStat{}
	for rows.Next() {
		var stat models.ReviewStat
		if err := rows.Scan(&stat.CourseID, &stat.Difficulty, &stat.AuthorFacultyID); err != nil {
			return nil, fmt.Errorf("error scanning review stat row: %w", err)
		}
		stats = append(stats, stat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review stat rows: %w", err)
	}

	return stats, nil
}
