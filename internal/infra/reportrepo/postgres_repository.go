package reportrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/moderation"
)

const defaultListLimit = 100

// PostgresRepository appends to the content_reports table.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Save implements moderation.ReportRepository.
func (r *PostgresRepository) Save(ctx context.Context, report moderation.Report) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO content_reports (id, content_id, reason, reporter_id, created_at)
		VALUES ($1::uuid, $2, $3, NULLIF($4, ''), $5)
	`, report.ID, report.ContentID, report.Reason, report.ReporterID, report.CreatedAt)
	return err
}

// List implements moderation.ReportRepository.
func (r *PostgresRepository) List(ctx context.Context, limit int) ([]moderation.Report, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, content_id, reason, COALESCE(reporter_id, ''), created_at
		FROM content_reports
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (moderation.Report, error) {
		var rep moderation.Report
		err := row.Scan(&rep.ID, &rep.ContentID, &rep.Reason, &rep.ReporterID, &rep.CreatedAt)
		return rep, err
	})
}

var _ moderation.ReportRepository = (*PostgresRepository)(nil)
