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

type PgxGSTRepository struct {
	BaseRepository
}

// newPgxGSTRepository creates a new repository for GST return data.
func newPgxGSTRepository(pool *pgxpool.Pool) portsrepo.GSTReturnRepository {
	return &PgxGSTRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.GSTReturnRepository = (*PgxGSTRepository)(nil)

const gstReturnColumns = `
	return_id, period_start, period_end, filing_due_date,
	standard_rated_supplies, zero_rated_supplies, exempt_supplies, total_supplies,
	taxable_purchases, output_tax, input_tax, adjustments, net_payable,
	status, submission_reference, submission_date, settlement_entry_id,
	created_at, created_by, last_updated_at, last_updated_by
`

// SaveReturn persists a new GST return.
func (r *PgxGSTRepository) SaveReturn(ctx context.Context, ret domain.GSTReturn) error {
	m := mapping.ToModelGSTReturn(ret)
	query := `
		INSERT INTO gst_returns (` + gstReturnColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReturnID, m.PeriodStart, m.PeriodEnd, m.FilingDueDate,
		m.StandardRatedSupplies, m.ZeroRatedSupplies, m.ExemptSupplies, m.TotalSupplies,
		m.TaxablePurchases, m.OutputTax, m.InputTax, m.Adjustments, m.NetPayable,
		m.Status, m.SubmissionReference, m.SubmissionDate, m.SettlementEntryID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert GST return "+m.ReturnID, err)
	}
	return nil
}

// UpdateDraftReturn replaces the box amounts and due date of a Draft return.
// The Draft guard lives in the WHERE clause.
func (r *PgxGSTRepository) UpdateDraftReturn(ctx context.Context, ret domain.GSTReturn) error {
	m := mapping.ToModelGSTReturn(ret)
	query := `
		UPDATE gst_returns
		SET filing_due_date = $2,
		    standard_rated_supplies = $3, zero_rated_supplies = $4, exempt_supplies = $5, total_supplies = $6,
		    taxable_purchases = $7, output_tax = $8, input_tax = $9, adjustments = $10, net_payable = $11,
		    last_updated_at = $12, last_updated_by = $13
		WHERE return_id = $1 AND status = 'DRAFT';
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ReturnID, m.FilingDueDate,
		m.StandardRatedSupplies, m.ZeroRatedSupplies, m.ExemptSupplies, m.TotalSupplies,
		m.TaxablePurchases, m.OutputTax, m.InputTax, m.Adjustments, m.NetPayable,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update GST return "+m.ReturnID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

func scanGSTReturn(row pgx.Row) (models.GSTReturn, error) {
	var m models.GSTReturn
	err := row.Scan(
		&m.ReturnID, &m.PeriodStart, &m.PeriodEnd, &m.FilingDueDate,
		&m.StandardRatedSupplies, &m.ZeroRatedSupplies, &m.ExemptSupplies, &m.TotalSupplies,
		&m.TaxablePurchases, &m.OutputTax, &m.InputTax, &m.Adjustments, &m.NetPayable,
		&m.Status, &m.SubmissionReference, &m.SubmissionDate, &m.SettlementEntryID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// FindReturnByID retrieves a GST return by its ID.
func (r *PgxGSTRepository) FindReturnByID(ctx context.Context, returnID string) (*domain.GSTReturn, error) {
	query := `SELECT ` + gstReturnColumns + ` FROM gst_returns WHERE return_id = $1;`

	m, err := scanGSTReturn(r.Pool.QueryRow(ctx, query, returnID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find GST return by ID "+returnID, err)
	}

	ret := mapping.ToDomainGSTReturn(m)
	return &ret, nil
}

// FindReturnByPeriod retrieves the return covering exactly the given span.
func (r *PgxGSTRepository) FindReturnByPeriod(ctx context.Context, periodStart, periodEnd time.Time) (*domain.GSTReturn, error) {
	query := `SELECT ` + gstReturnColumns + ` FROM gst_returns WHERE period_start = $1 AND period_end = $2;`

	m, err := scanGSTReturn(r.Pool.QueryRow(ctx, query, periodStart, periodEnd))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find GST return for period", err)
	}

	ret := mapping.ToDomainGSTReturn(m)
	return &ret, nil
}

// ListReturns returns all GST returns, newest period first.
func (r *PgxGSTRepository) ListReturns(ctx context.Context) ([]domain.GSTReturn, error) {
	query := `SELECT ` + gstReturnColumns + ` FROM gst_returns ORDER BY period_end DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query GST returns", err)
	}
	defer rows.Close()

	returns := []domain.GSTReturn{}
	for rows.Next() {
		m, err := scanGSTReturn(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan GST return row", err)
		}
		returns = append(returns, mapping.ToDomainGSTReturn(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating GST return rows", err)
	}
	return returns, nil
}

// MarkReturnSubmitted seals a Draft return. The status guard in the WHERE
// clause makes two concurrent finalizations serialize: the loser matches zero
// rows and gets ErrConflict. An empty settlementEntryID stores NULL.
func (r *PgxGSTRepository) MarkReturnSubmitted(ctx context.Context, returnID string, submissionRef string, submissionDate time.Time, settlementEntryID string, userID string, updatedAt time.Time) error {
	var settlementID *string
	if settlementEntryID != "" {
		settlementID = &settlementEntryID
	}

	query := `
		UPDATE gst_returns
		SET status = 'SUBMITTED', submission_reference = $2, submission_date = $3, settlement_entry_id = $4,
		    last_updated_at = $5, last_updated_by = $6
		WHERE return_id = $1 AND status = 'DRAFT';
	`
	tag, err := r.Pool.Exec(ctx, query, returnID, submissionRef, submissionDate, settlementID, updatedAt, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark GST return submitted "+returnID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}
