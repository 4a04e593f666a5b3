package services

import (
	"context"
	"time"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceSvc computes per-account balances over arbitrary date windows from
// Posted entries only.
type BalanceSvc interface {
	// BalanceAsOf returns the signed balance of the account over all Posted
	// lines dated on or before asOf, signed by the account's normal side.
	BalanceAsOf(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error)

	// BalanceForPeriod returns the opening/activity/closing triple for the
	// window [from, to].
	BalanceForPeriod(ctx context.Context, accountID string, from, to time.Time) (*domain.PeriodBalance, error)

	// LedgerLines returns the opening balance at from and the account's
	// chronologically ordered Posted lines in [from, to] with running
	// balances seeded from the opening.
	LedgerLines(ctx context.Context, accountID string, from, to time.Time) (decimal.Decimal, []domain.LedgerLine, error)
}
