package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/napat/courselens/internal/app/models"
	"github.com/napat/courselens/internal/pkg/apperrors"
	"github.com/napat/courselens/internal/pkg/dberrors"
	"github.com/napat/courselens/internal/pkg/logger"
)

// ReportRepository handles abuse report database operations
type ReportRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const reportColumns = "id, review_id, reporter_id, reason, status, resolved_by, COALESCE(resolution_note, ''), created_at, resolved_at"

func scanReport(row pgx.Row) (*models.Report, error) {
	report := &models.Report{}
	err := row.Scan(
		&report.ID, &report.ReviewID, &report.ReporterID, &report.Reason, &report.Status,
		&report.ResolvedBy, &report.ResolutionNote, &report.CreatedAt, &report.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return report, nil
}

// CreateReport files a report against a review and returns its id.
func (r *ReportRepository) CreateReport(ctx context.Context, report *models.Report) (int64, error) {
	sql, args, err := r.sb.Insert("reports").
		Columns("review_id", "reporter_id", "reason", "status").
		Values(report.ReviewID, report.ReporterID, report.Reason, models.ReportStatusOpen).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create report query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrReviewNotFound
		}
		logger.Error().Err(err).Msg("Error executing create report query")
		return 0, fmt.Errorf("error creating report: %w", err)
	}

	return id, nil
}

// GetReportByID retrieves a report by id.
func (r *ReportRepository) GetReportByID(ctx context.Context, id int64) (*models.Report, error) {
	sql, args, err := r.sb.Select(reportColumns).
		From("reports").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get report query: %w", err)
	}

	report, err := scanReport(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrReportNotFound
		}
		logger.Error().Err(err).Int64("reportID", id).Msg("Error scanning report row")
		return nil, fmt.Errorf("error getting report by ID: %w", err)
	}

	return report, nil
}

// GetReports retrieves reports with pagination, optionally filtered by status,
// oldest open reports first.
func (r *ReportRepository) GetReports(ctx context.Context, offset, limit uint64, status models.ReportStatus) ([]models.Report, int64, error) {
	baseSelect := r.sb.Select(reportColumns).From("reports")
	countSelect := r.sb.Select("COUNT(*)").From("reports")

	if status != "" {
		baseSelect = baseSelect.Where(squirrel.Eq{"status": status})
		countSelect = countSelect.Where(squirrel.Eq{"status": status})
	}

	countSql, countArgs, err := countSelect.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count reports query: %w", err)
	}

	var totalItems int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems); err != nil {
		logger.Error().Err(err).Msg("Error executing count reports query")
		return nil, 0, fmt.Errorf("failed to count reports: %w", err)
	}

	if totalItems == 0 {
		return []models.Report{}, 0, nil
	}

	querySql, queryArgs, err := baseSelect.
		OrderBy("created_at ASC", "id ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build get reports query: %w", err)
	}

	rows, err := r.db.Query(ctx, querySql, queryArgs...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get reports query")
		return nil, 0, fmt.Errorf("error querying reports: %w", err)
	}
	defer rows.Close()

	reports := []models.Report{}
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning report row: %w", err)
		}
		reports = append(reports, *report)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating report rows: %w", err)
	}

	return reports, totalItems, nil
}

// CloseReport records a moderation decision on an open report.
func (r *ReportRepository) CloseReport(ctx context.Context, id int64, status models.ReportStatus, resolvedBy int64, note string) error {
	sql, args, err := r.sb.Update("reports").
		SetMap(map[string]interface{}{
			"status":          status,
			"resolved_by":     resolvedBy,
			"resolution_note": note,
			"resolved_at":     time.Now(),
		}).
		Where(squirrel.Eq{"id": id, "status": models.ReportStatusOpen}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build close report query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("reportID", id).Msg("Error executing close report query")
		return fmt.Errorf("error closing report: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Either the report does not exist or it was already closed.
		if _, getErr := r.GetReportByID(ctx, id); getErr != nil {
			return getErr
		}
		return apperrors.ErrReportAlreadyClosed
	}

	return nil
}
