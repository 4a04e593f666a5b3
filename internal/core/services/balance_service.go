package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	portsrepo "github.com/smebooks/sme_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/smebooks/sme_ledger_app/internal/core/ports/services"
	"github.com/smebooks/sme_ledger_app/internal/utils/accounting"
)

// balanceService aggregates posted lines into signed account balances. Drafts
// never contribute. A reversed entry's lines remain in the ledger and are
// cancelled by the reversal entry's offsetting lines, so its net effect on
// every touched account is zero.
type balanceService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
	accountRepo   portsrepo.AccountRepository
}

// NewBalanceService creates the balance aggregator.
func NewBalanceService(reportingRepo portsrepo.ReportingRepository, accountRepo portsrepo.AccountRepository) portssvc.BalanceSvc {
	return &balanceService{
		reportingRepo: reportingRepo,
		accountRepo:   accountRepo,
	}
}

var _ portssvc.BalanceSvc = (*balanceService)(nil)

// normalSide resolves the account and its normal balance side.
func (s *balanceService) normalSide(ctx context.Context, accountID string) (*domain.Account, domain.NormalSide, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, "", err
	}
	side, ok := account.AccountType.NormalBalance()
	if !ok {
		return nil, "", fmt.Errorf("account %s has unknown type %s", accountID, account.AccountType)
	}
	return account, side, nil
}

// BalanceAsOf returns the account balance over all Posted lines dated on or
// before asOf, signed by the account's normal side.
func (s *balanceService) BalanceAsOf(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error) {
	_, side, err := s.normalSide(ctx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	debit, credit, err := s.reportingRepo.GetAccountTotalsAsOf(ctx, accountID, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate account totals")
		return decimal.Zero, fmt.Errorf("failed to aggregate totals for account %s: %w", accountID, err)
	}

	return accounting.SignedAmount(debit, credit, side), nil
}

// BalanceForPeriod returns the opening, in-window activity and closing
// balances for [from, to]. Closing always equals opening plus activity since
// the three are derived from the same cumulative sums.
func (s *balanceService) BalanceForPeriod(ctx context.Context, accountID string, from, to time.Time) (*domain.PeriodBalance, error) {
	_, side, err := s.normalSide(ctx, accountID)
	if err != nil {
		return nil, err
	}

	openDebit, openCredit, err := s.reportingRepo.GetAccountTotalsAsOf(ctx, accountID, from.AddDate(0, 0, -1))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate opening totals for account %s: %w", accountID, err)
	}
	closeDebit, closeCredit, err := s.reportingRepo.GetAccountTotalsAsOf(ctx, accountID, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate closing totals for account %s: %w", accountID, err)
	}

	opening := accounting.SignedAmount(openDebit, openCredit, side)
	closing := accounting.SignedAmount(closeDebit, closeCredit, side)

	return &domain.PeriodBalance{
		AccountID: accountID,
		StartDate: from,
		EndDate:   to,
		Opening:   opening,
		Activity:  closing.Sub(opening),
		Closing:   closing,
	}, nil
}

// LedgerLines returns the opening balance at from and the account's Posted
// lines in [from, to] with running balances seeded from the opening.
func (s *balanceService) LedgerLines(ctx context.Context, accountID string, from, to time.Time) (decimal.Decimal, []domain.LedgerLine, error) {
	_, side, err := s.normalSide(ctx, accountID)
	if err != nil {
		return decimal.Zero, nil, err
	}

	openDebit, openCredit, err := s.reportingRepo.GetAccountTotalsAsOf(ctx, accountID, from.AddDate(0, 0, -1))
	if err != nil {
		return decimal.Zero, nil, fmt.Errorf("failed to aggregate opening totals for account %s: %w", accountID, err)
	}
	opening := accounting.SignedAmount(openDebit, openCredit, side)

	lines, err := s.reportingRepo.GetPostedLinesForAccount(ctx, accountID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to load posted lines")
		return decimal.Zero, nil, fmt.Errorf("failed to load posted lines for account %s: %w", accountID, err)
	}

	running := opening
	for i := range lines {
		running = running.Add(accounting.SignedAmount(lines[i].Debit, lines[i].Credit, side))
		lines[i].RunningBalance = running
	}

	return opening, lines, nil
}
