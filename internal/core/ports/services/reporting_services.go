package services

import (
	"context"
	"time"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
)

// ReportingSvc composes balance aggregation results into statements.
type ReportingSvc interface {
	TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error)
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error)
	ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.PAndLReport, error)
	GeneralLedger(ctx context.Context, accountID string, from, to time.Time) (*domain.GeneralLedgerReport, error)
}
