package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smebooks/sme_ledger_app/internal/apperrors"
	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	portsrepo "github.com/smebooks/sme_ledger_app/internal/core/ports/repositories"
	"github.com/smebooks/sme_ledger_app/internal/models"
	"github.com/smebooks/sme_ledger_app/internal/utils/mapping"
)

type PgxFiscalRepository struct {
	BaseRepository
}

// newPgxFiscalRepository creates a new repository for fiscal year and period data.
func newPgxFiscalRepository(pool *pgxpool.Pool) portsrepo.FiscalRepository {
	return &PgxFiscalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FiscalRepository = (*PgxFiscalRepository)(nil)

// SaveFiscalYear persists a new fiscal year.
func (r *PgxFiscalRepository) SaveFiscalYear(ctx context.Context, year domain.FiscalYear) error {
	m := mapping.ToModelFiscalYear(year)
	query := `
		INSERT INTO fiscal_years (
			fiscal_year_id, name, start_date, end_date, is_closed, closed_at,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.FiscalYearID, m.Name, m.StartDate, m.EndDate, m.IsClosed, m.ClosedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert fiscal year "+m.FiscalYearID, err)
	}
	return nil
}

const fiscalYearColumns = `
	fiscal_year_id, name, start_date, end_date, is_closed, closed_at,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanFiscalYear(row pgx.Row) (models.FiscalYear, error) {
	var m models.FiscalYear
	err := row.Scan(
		&m.FiscalYearID, &m.Name, &m.StartDate, &m.EndDate, &m.IsClosed, &m.ClosedAt,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// FindFiscalYearByID retrieves a fiscal year by its ID.
func (r *PgxFiscalRepository) FindFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error) {
	query := `SELECT ` + fiscalYearColumns + ` FROM fiscal_years WHERE fiscal_year_id = $1;`

	m, err := scanFiscalYear(r.Pool.QueryRow(ctx, query, fiscalYearID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find fiscal year by ID "+fiscalYearID, err)
	}

	year := mapping.ToDomainFiscalYear(m)
	return &year, nil
}

// ListFiscalYears returns all fiscal years, newest span first.
func (r *PgxFiscalRepository) ListFiscalYears(ctx context.Context) ([]domain.FiscalYear, error) {
	query := `SELECT ` + fiscalYearColumns + ` FROM fiscal_years ORDER BY start_date DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query fiscal years", err)
	}
	defer rows.Close()

	years := []domain.FiscalYear{}
	for rows.Next() {
		m, err := scanFiscalYear(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan fiscal year row", err)
		}
		years = append(years, mapping.ToDomainFiscalYear(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating fiscal year rows", err)
	}
	return years, nil
}

// MarkYearClosed sets the closed flag and timestamp. The open guard in the
// WHERE clause keeps a double close from rewriting closed_at.
func (r *PgxFiscalRepository) MarkYearClosed(ctx context.Context, fiscalYearID string, userID string, closedAt time.Time) error {
	query := `
		UPDATE fiscal_years
		SET is_closed = TRUE, closed_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE fiscal_year_id = $1 AND is_closed = FALSE;
	`
	tag, err := r.Pool.Exec(ctx, query, fiscalYearID, closedAt, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark fiscal year closed "+fiscalYearID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

// SavePeriods inserts the full period set of a year in one batch.
func (r *PgxFiscalRepository) SavePeriods(ctx context.Context, periods []domain.FiscalPeriod) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		INSERT INTO fiscal_periods (
			period_id, fiscal_year_id, period_type, sequence, name, start_date, end_date, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	batch := &pgx.Batch{}
	for _, period := range periods {
		m := mapping.ToModelFiscalPeriod(period)
		batch.Queue(query,
			m.PeriodID, m.FiscalYearID, m.PeriodType, m.Sequence, m.Name, m.StartDate, m.EndDate, m.Status,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert fiscal periods", err)
	}

	return r.Commit(ctx, tx)
}

const fiscalPeriodColumns = `
	period_id, fiscal_year_id, period_type, sequence, name, start_date, end_date, status,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanFiscalPeriod(row pgx.Row) (models.FiscalPeriod, error) {
	var m models.FiscalPeriod
	err := row.Scan(
		&m.PeriodID, &m.FiscalYearID, &m.PeriodType, &m.Sequence, &m.Name, &m.StartDate, &m.EndDate, &m.Status,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// FindPeriodByID retrieves a period by its ID.
func (r *PgxFiscalRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.FiscalPeriod, error) {
	query := `SELECT ` + fiscalPeriodColumns + ` FROM fiscal_periods WHERE period_id = $1;`

	m, err := scanFiscalPeriod(r.Pool.QueryRow(ctx, query, periodID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find period by ID "+periodID, err)
	}

	period := mapping.ToDomainFiscalPeriod(m)
	return &period, nil
}

// FindPeriodForDate returns the period whose inclusive date span covers the
// given date. Period spans never overlap, so at most one row matches.
func (r *PgxFiscalRepository) FindPeriodForDate(ctx context.Context, date time.Time) (*domain.FiscalPeriod, error) {
	query := `SELECT ` + fiscalPeriodColumns + ` FROM fiscal_periods WHERE start_date <= $1 AND end_date >= $1;`

	m, err := scanFiscalPeriod(r.Pool.QueryRow(ctx, query, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find period for date", err)
	}

	period := mapping.ToDomainFiscalPeriod(m)
	return &period, nil
}

// ListPeriodsByYear returns the periods of a year in sequence order.
func (r *PgxFiscalRepository) ListPeriodsByYear(ctx context.Context, fiscalYearID string) ([]domain.FiscalPeriod, error) {
	query := `SELECT ` + fiscalPeriodColumns + ` FROM fiscal_periods WHERE fiscal_year_id = $1 ORDER BY sequence;`

	rows, err := r.Pool.Query(ctx, query, fiscalYearID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query periods for year "+fiscalYearID, err)
	}
	defer rows.Close()

	periods := []domain.FiscalPeriod{}
	for rows.Next() {
		m, err := scanFiscalPeriod(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan period row", err)
		}
		periods = append(periods, mapping.ToDomainFiscalPeriod(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating period rows", err)
	}
	return periods, nil
}

// CountPeriodsByYear counts the periods already generated for a year.
func (r *PgxFiscalRepository) CountPeriodsByYear(ctx context.Context, fiscalYearID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM fiscal_periods WHERE fiscal_year_id = $1;`, fiscalYearID).Scan(&count)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count periods for year "+fiscalYearID, err)
	}
	return count, nil
}

// UpdatePeriodStatus flips a period between Open and Closed.
func (r *PgxFiscalRepository) UpdatePeriodStatus(ctx context.Context, periodID string, status domain.PeriodStatus, userID string, updatedAt time.Time) error {
	query := `
		UPDATE fiscal_periods
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE period_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, periodID, string(status), updatedAt, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update period status "+periodID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
