package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/napat/courselens/internal/app/models"
	"github.com/napat/courselens/internal/pkg/apperrors"
	"github.com/napat/courselens/internal/pkg/dberrors"
	"github.com/napat/courselens/internal/pkg/logger"
)

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const courseColumns = "id, code, name_th, name_en, credits, description, instructor_summary, created_at, updated_at"

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	err := row.Scan(
		&course.ID, &course.Code, &course.NameTH, &course.NameEN, &course.Credits,
		&course.Description, &course.InstructorSummary, &course.CreatedAt, &course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return course, nil
}

// CreateCourse inserts a new course and returns its id.
func (r *CourseRepository) CreateCourse(ctx context.Context, course *models.Course) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("code", "name_th", "name_en", "credits", "description", "instructor_summary").
		Values(course.Code, course.NameTH, course.NameEN, course.Credits, course.Description, course.InstructorSummary).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create course query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create course query")
		return 0, fmt.Errorf("error creating course: %w", err)
	}

	return id, nil
}

// GetCourseByID retrieves a course by id.
func (r *CourseRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select(courseColumns).
		From("courses").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("courseID", id).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course by ID: %w", err)
	}

	return course, nil
}

// GetAllCourses retrieves courses with pagination and an optional search term
// matched against the code and both names.
func (r *CourseRepository) GetAllCourses(ctx context.Context, offset, limit uint64, search string) ([]models.Course, int64, error) {
	baseSelect := r.sb.Select(courseColumns).From("courses")
	countSelect := r.sb.Select("COUNT(*)").From("courses")

	if search = strings.TrimSpace(search); search != "" {
		pattern := "%" + search + "%"
		cond := squirrel.Or{
			squirrel.ILike{"code": pattern},
			squirrel.ILike{"name_th": pattern},
			squirrel.ILike{"name_en": pattern},
		}
		baseSelect = baseSelect.Where(cond)
		countSelect = countSelect.Where(cond)
	}

	countSql, countArgs, err := countSelect.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count courses query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count courses query")
		return nil, 0, fmt.Errorf("failed to count courses: %w", err)
	}

	if totalItems == 0 {
		return []models.Course{}, 0, nil
	}

	querySql, queryArgs, err := baseSelect.
		OrderBy("code ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build get courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get courses query")
		return nil, 0, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, *course)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, totalItems, nil
}

// GetCourseSummaries retrieves the trimmed projection of every course for the
// ranking listing, in stable code order.
func (r *CourseRepository) GetCourseSummaries(ctx context.Context) ([]models.CourseSummary, error) {
	sql, args, err := r.sb.Select("id", "code", "name_th", "name_en").
		From("courses").
		OrderBy("code ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course summaries query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing course summaries query")
		return nil, fmt.Errorf("error querying course summaries: %w", err)
	}
	defer rows.Close()

	summaries := []models.CourseSummary{}
	for rows.Next() {
		var s models.CourseSummary
		if err := rows.Scan(&s.ID, &s.Code, &s.NameTH, &s.NameEN); err != nil {
			return nil, fmt.Errorf("error scanning course summary row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course summary rows: %w", err)
	}

	return summaries, nil
}

// UpdateCourse updates an existing course.
func (r *CourseRepository) UpdateCourse(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		SetMap(map[string]interface{}{
			"code":               course.Code,
			"name_th":            course.NameTH,
			"name_en":            course.NameEN,
			"credits":            course.Credits,
			"description":        course.Description,
			"instructor_summary": course.InstructorSummary,
			"updated_at":         squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"id": course.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		logger.Error().Err(err).Int64("courseID", course.ID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// DeleteCourse deletes a course. Deletion is refused while reviews exist.
func (r *CourseRepository) DeleteCourse(ctx context.Context, id int64) error {
	var hasReviews bool
	checkSql, checkArgs, err := r.sb.Select("1").
		From("reviews").
		Where(squirrel.Eq{"course_id": id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build check reviews query: %w", err)
	}

	if err := r.db.QueryRow(ctx, checkSql, checkArgs...).Scan(&hasReviews); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error checking course reviews")
		return fmt.Errorf("error checking course reviews: %w", err)
	}

	if hasReviews {
		return apperrors.ErrCourseHasReviews
	}

	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("courseID", id).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
