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

type PgxRecurringRepository struct {
	BaseRepository
}

// newPgxRecurringRepository creates a new repository for recurring pattern data.
func newPgxRecurringRepository(pool *pgxpool.Pool) portsrepo.RecurringRepository {
	return &PgxRecurringRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RecurringRepository = (*PgxRecurringRepository)(nil)

// SavePattern persists a pattern and its template lines within a DB transaction.
func (r *PgxRecurringRepository) SavePattern(ctx context.Context, pattern domain.RecurringPattern, lines []domain.PatternLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelRecurringPattern(pattern)
	patternQuery := `
		INSERT INTO recurring_patterns (
			pattern_id, name, description, currency_code, recurrence_interval,
			next_run_date, end_date, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, patternQuery,
		m.PatternID, m.Name, m.Description, m.CurrencyCode, m.Interval,
		m.NextRunDate, m.EndDate, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert pattern "+m.PatternID, err)
	}

	lineQuery := `
		INSERT INTO recurring_pattern_lines (pattern_line_id, pattern_id, account_id, debit, credit, tax_code, tax_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		lm := mapping.ToModelPatternLine(line)
		batch.Queue(lineQuery, lm.PatternLineID, lm.PatternID, lm.AccountID, lm.Debit, lm.Credit, lm.TaxCode, lm.TaxAmount)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for pattern "+m.PatternID, err)
	}

	return r.Commit(ctx, tx)
}

const patternColumns = `
	pattern_id, name, description, currency_code, recurrence_interval,
	next_run_date, end_date, is_active,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanPattern(row pgx.Row) (models.RecurringPattern, error) {
	var m models.RecurringPattern
	err := row.Scan(
		&m.PatternID, &m.Name, &m.Description, &m.CurrencyCode, &m.Interval,
		&m.NextRunDate, &m.EndDate, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// FindPatternByID retrieves a pattern by its ID, without lines.
func (r *PgxRecurringRepository) FindPatternByID(ctx context.Context, patternID string) (*domain.RecurringPattern, error) {
	query := `SELECT ` + patternColumns + ` FROM recurring_patterns WHERE pattern_id = $1;`

	m, err := scanPattern(r.Pool.QueryRow(ctx, query, patternID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find pattern by ID "+patternID, err)
	}

	pattern := mapping.ToDomainRecurringPattern(m)
	return &pattern, nil
}

// FindPatternLines retrieves the template lines of one pattern.
func (r *PgxRecurringRepository) FindPatternLines(ctx context.Context, patternID string) ([]domain.PatternLine, error) {
	query := `
		SELECT pattern_line_id, pattern_id, account_id, debit, credit, tax_code, tax_amount
		FROM recurring_pattern_lines
		WHERE pattern_id = $1
		ORDER BY pattern_line_id;
	`
	rows, err := r.Pool.Query(ctx, query, patternID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for pattern "+patternID, err)
	}
	defer rows.Close()

	lines := []domain.PatternLine{}
	for rows.Next() {
		var m models.PatternLine
		if err := rows.Scan(&m.PatternLineID, &m.PatternID, &m.AccountID, &m.Debit, &m.Credit, &m.TaxCode, &m.TaxAmount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan line row for pattern "+patternID, err)
		}
		lines = append(lines, mapping.ToDomainPatternLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating line rows for pattern "+patternID, err)
	}
	return lines, nil
}

// ListPatterns returns all patterns.
func (r *PgxRecurringRepository) ListPatterns(ctx context.Context) ([]domain.RecurringPattern, error) {
	query := `SELECT ` + patternColumns + ` FROM recurring_patterns ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query patterns", err)
	}
	defer rows.Close()

	patterns := []domain.RecurringPattern{}
	for rows.Next() {
		m, err := scanPattern(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan pattern row", err)
		}
		patterns = append(patterns, mapping.ToDomainRecurringPattern(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating pattern rows", err)
	}
	return patterns, nil
}

// ListDuePatterns returns active patterns due as of the given date, oldest
// next run first, so catch-up generation starts with the most overdue.
func (r *PgxRecurringRepository) ListDuePatterns(ctx context.Context, asOf time.Time) ([]domain.RecurringPattern, error) {
	query := `
		SELECT ` + patternColumns + `
		FROM recurring_patterns
		WHERE is_active = TRUE
		  AND next_run_date <= $1
		  AND (end_date IS NULL OR next_run_date <= end_date)
		ORDER BY next_run_date;
	`
	rows, err := r.Pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query due patterns", err)
	}
	defer rows.Close()

	patterns := []domain.RecurringPattern{}
	for rows.Next() {
		m, err := scanPattern(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan due pattern row", err)
		}
		patterns = append(patterns, mapping.ToDomainRecurringPattern(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating due pattern rows", err)
	}
	return patterns, nil
}

// AdvancePattern moves the next run date forward, optionally deactivating the
// pattern once its end date has passed.
func (r *PgxRecurringRepository) AdvancePattern(ctx context.Context, patternID string, nextRunDate time.Time, isActive bool, userID string, updatedAt time.Time) error {
	query := `
		UPDATE recurring_patterns
		SET next_run_date = $2, is_active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE pattern_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, patternID, nextRunDate, isActive, updatedAt, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to advance pattern "+patternID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeactivatePattern stops future generation for a pattern.
func (r *PgxRecurringRepository) DeactivatePattern(ctx context.Context, patternID string, userID string, updatedAt time.Time) error {
	query := `
		UPDATE recurring_patterns
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE pattern_id = $1 AND is_active = TRUE;
	`
	tag, err := r.Pool.Exec(ctx, query, patternID, updatedAt, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to deactivate pattern "+patternID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}
