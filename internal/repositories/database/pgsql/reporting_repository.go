package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/smebooks/sme_ledger_app/internal/apperrors"
	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	portsrepo "github.com/smebooks/sme_ledger_app/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for the aggregation
// queries behind balances and statements.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// Aggregations include entries in both POSTED and REVERSED status. Reversing
// an entry flips its header to REVERSED but its lines stay in the ledger; the
// reversal entry's swapped lines offset them, so both legs must be counted or
// every touched balance drifts by the original amount.

const accountTotalsAsOfQuery = `
	SELECT COALESCE(SUM(l.debit), 0), COALESCE(SUM(l.credit), 0)
	FROM journal_lines l
	JOIN journal_entries e ON e.entry_id = l.entry_id
	WHERE l.account_id = $1
	  AND e.status IN ('POSTED', 'REVERSED')
	  AND e.entry_date <= $2;
`

const postedLinesForAccountQuery = `
	SELECT e.entry_id, e.entry_number, e.entry_date, e.description, l.debit, l.credit
	FROM journal_lines l
	JOIN journal_entries e ON e.entry_id = l.entry_id
	WHERE l.account_id = $1
	  AND e.status IN ('POSTED', 'REVERSED')
	  AND e.entry_date >= $2 AND e.entry_date <= $3
	ORDER BY e.entry_date, e.created_at, l.line_id;
`

const postedTaxLinesQuery = `
	SELECT e.entry_id, e.entry_date, l.account_id, l.tax_code, l.debit, l.credit, l.tax_amount
	FROM journal_lines l
	JOIN journal_entries e ON e.entry_id = l.entry_id
	WHERE l.tax_code IS NOT NULL
	  AND e.status IN ('POSTED', 'REVERSED')
	  AND e.entry_date >= $1 AND e.entry_date <= $2
	ORDER BY e.entry_date, l.line_id;
`

// GetAccountTotalsAsOf sums the debit and credit sides of all posted lines for
// the account dated on or before asOf. Aggregation happens in SQL; only two
// numbers cross the wire.
func (r *PgxReportingRepository) GetAccountTotalsAsOf(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, decimal.Decimal, error) {
	var debit, credit decimal.Decimal
	if err := r.Pool.QueryRow(ctx, accountTotalsAsOfQuery, accountID, asOf).Scan(&debit, &credit); err != nil {
		return decimal.Zero, decimal.Zero, apperrors.NewAppError(500, "failed to aggregate totals for account "+accountID, err)
	}
	return debit, credit, nil
}

// GetPostedLinesForAccount returns the account's posted lines in [from, to]
// with their entry headers, chronologically ordered. The running balance
// column is filled by the caller.
func (r *PgxReportingRepository) GetPostedLinesForAccount(ctx context.Context, accountID string, from, to time.Time) ([]domain.LedgerLine, error) {
	rows, err := r.Pool.Query(ctx, postedLinesForAccountQuery, accountID, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query posted lines for account "+accountID, err)
	}
	defer rows.Close()

	lines := []domain.LedgerLine{}
	for rows.Next() {
		var line domain.LedgerLine
		if err := rows.Scan(&line.EntryID, &line.EntryNumber, &line.EntryDate, &line.Description, &line.Debit, &line.Credit); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan posted line row for account "+accountID, err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating posted line rows for account "+accountID, err)
	}
	return lines, nil
}

// GetPostedTaxLines returns every posted line carrying a tax code dated in
// [from, to], for GST return preparation.
func (r *PgxReportingRepository) GetPostedTaxLines(ctx context.Context, from, to time.Time) ([]domain.TaxLine, error) {
	rows, err := r.Pool.Query(ctx, postedTaxLinesQuery, from, to)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query posted tax lines", err)
	}
	defer rows.Close()

	lines := []domain.TaxLine{}
	for rows.Next() {
		var line domain.TaxLine
		if err := rows.Scan(&line.EntryID, &line.EntryDate, &line.AccountID, &line.TaxCode, &line.Debit, &line.Credit, &line.TaxAmount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan posted tax line row", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating posted tax line rows", err)
	}
	return lines, nil
}
