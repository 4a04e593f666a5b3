package repositories

import (
	"context"
	"time"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingRepository defines the indexed read queries balance aggregation and
// statement building are based on. Drafts never contribute. Entries whose
// status is Reversed still do: their lines stay in the ledger and are offset
// by the reversal entry's lines, so every aggregation counts both legs.
type ReportingRepository interface {
	// GetAccountTotalsAsOf sums the debit and credit sides of all posted
	// lines for the account with entry date on or before asOf.
	GetAccountTotalsAsOf(ctx context.Context, accountID string, asOf time.Time) (debit, credit decimal.Decimal, err error)

	// GetPostedLinesForAccount returns the account's posted lines with entry
	// date in [from, to], chronologically ordered. RunningBalance is left for
	// the caller to fill in.
	GetPostedLinesForAccount(ctx context.Context, accountID string, from, to time.Time) ([]domain.LedgerLine, error)

	// GetPostedTaxLines returns all posted lines carrying a tax code with
	// entry date in [from, to].
	GetPostedTaxLines(ctx context.Context, from, to time.Time) ([]domain.TaxLine, error)
}
