package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	portsrepo "github.com/smebooks/sme_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/smebooks/sme_ledger_app/internal/core/ports/services"
)

// reportingService builds statements by composing balance aggregation over the
// chart of accounts. Reports observe the ledger; they never mutate it.
type reportingService struct {
	BaseService
	balanceSvc  portssvc.BalanceSvc
	accountRepo portsrepo.AccountRepository
	policy      PostingPolicy
}

// NewReportingService creates the statement builder.
func NewReportingService(balanceSvc portssvc.BalanceSvc, accountRepo portsrepo.AccountRepository, policy PostingPolicy) portssvc.ReportingSvc {
	return &reportingService{
		balanceSvc:  balanceSvc,
		accountRepo: accountRepo,
		policy:      policy,
	}
}

var _ portssvc.ReportingSvc = (*reportingService)(nil)

// TrialBalance lists every active account's balance as of a date, split into
// debit and credit columns. Zero-balance accounts are skipped.
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalanceReport, error) {
	accounts, err := s.accountRepo.ListActiveAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	report := &domain.TrialBalanceReport{
		AsOf:         asOf,
		Rows:         make([]domain.TrialBalanceRow, 0, len(accounts)),
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
	}

	for _, account := range accounts {
		balance, err := s.balanceSvc.BalanceAsOf(ctx, account.AccountID, asOf)
		if err != nil {
			return nil, fmt.Errorf("failed to compute balance for account %s: %w", account.Code, err)
		}
		if balance.IsZero() {
			continue
		}

		side, _ := account.AccountType.NormalBalance()
		row := domain.TrialBalanceRow{
			AccountID:   account.AccountID,
			AccountCode: account.Code,
			AccountName: account.Name,
			AccountType: account.AccountType,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		// A positive balance sits on the account's normal side; a negative one
		// flips to the opposite column.
		onNormalSide := balance.IsPositive()
		if (side == domain.NormalDebit) == onNormalSide {
			row.Debit = balance.Abs()
		} else {
			row.Credit = balance.Abs()
		}

		report.Rows = append(report.Rows, row)
		report.TotalDebits = report.TotalDebits.Add(row.Debit)
		report.TotalCredits = report.TotalCredits.Add(row.Credit)
	}

	sort.Slice(report.Rows, func(i, j int) bool {
		return report.Rows[i].AccountCode < report.Rows[j].AccountCode
	})
	report.IsBalanced = report.TotalDebits.Sub(report.TotalCredits).Abs().LessThanOrEqual(s.policy.BalanceTolerance)
	return report, nil
}

// accountAmounts computes nonzero signed balances for the accounts of one type.
func (s *reportingService) accountAmounts(ctx context.Context, accounts []domain.Account, accountType domain.AccountType, balanceOf func(accountID string) (decimal.Decimal, error)) ([]domain.AccountAmount, decimal.Decimal, error) {
	amounts := make([]domain.AccountAmount, 0)
	total := decimal.Zero
	for _, account := range accounts {
		if account.AccountType != accountType {
			continue
		}
		balance, err := balanceOf(account.AccountID)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("failed to compute balance for account %s: %w", account.Code, err)
		}
		if balance.IsZero() {
			continue
		}
		amounts = append(amounts, domain.AccountAmount{
			AccountID:   account.AccountID,
			AccountCode: account.Code,
			Name:        account.Name,
			NetAmount:   balance,
		})
		total = total.Add(balance)
	}
	sort.Slice(amounts, func(i, j int) bool { return amounts[i].AccountCode < amounts[j].AccountCode })
	return amounts, total, nil
}

// BalanceSheet groups balances as of a date into assets, liabilities and
// equity. Retained earnings are folded into equity as the cumulative net of
// revenue and expense balances, so the statement balances without a formal
// year-end closing entry.
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheetReport, error) {
	accounts, err := s.accountRepo.ListActiveAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	balanceOf := func(accountID string) (decimal.Decimal, error) {
		return s.balanceSvc.BalanceAsOf(ctx, accountID, asOf)
	}

	assets, totalAssets, err := s.accountAmounts(ctx, accounts, domain.Asset, balanceOf)
	if err != nil {
		return nil, err
	}
	liabilities, totalLiabilities, err := s.accountAmounts(ctx, accounts, domain.Liability, balanceOf)
	if err != nil {
		return nil, err
	}
	equity, totalEquity, err := s.accountAmounts(ctx, accounts, domain.Equity, balanceOf)
	if err != nil {
		return nil, err
	}

	retained := decimal.Zero
	for _, account := range accounts {
		if account.AccountType != domain.Revenue && account.AccountType != domain.Expense {
			continue
		}
		balance, err := balanceOf(account.AccountID)
		if err != nil {
			return nil, fmt.Errorf("failed to compute balance for account %s: %w", account.Code, err)
		}
		if account.AccountType == domain.Revenue {
			retained = retained.Add(balance)
		} else {
			retained = retained.Sub(balance)
		}
	}
	if !retained.IsZero() {
		equity = append(equity, domain.AccountAmount{
			AccountID:   "",
			AccountCode: "",
			Name:        "Current Year Earnings",
			NetAmount:   retained,
		})
		totalEquity = totalEquity.Add(retained)
	}

	report := &domain.BalanceSheetReport{
		AsOf:                   asOf,
		Assets:                 assets,
		Liabilities:            liabilities,
		Equity:                 equity,
		TotalAssets:            totalAssets,
		TotalLiabilities:       totalLiabilities,
		TotalEquity:            totalEquity,
		TotalLiabilitiesEquity: totalLiabilities.Add(totalEquity),
	}
	report.IsBalanced = report.TotalAssets.Sub(report.TotalLiabilitiesEquity).Abs().LessThanOrEqual(s.policy.BalanceTolerance)
	return report, nil
}

// ProfitAndLoss sums revenue and expense activity over [from, to].
func (s *reportingService) ProfitAndLoss(ctx context.Context, from, to time.Time) (*domain.PAndLReport, error) {
	accounts, err := s.accountRepo.ListActiveAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	activityOf := func(accountID string) (decimal.Decimal, error) {
		pb, err := s.balanceSvc.BalanceForPeriod(ctx, accountID, from, to)
		if err != nil {
			return decimal.Zero, err
		}
		return pb.Activity, nil
	}

	revenue, totalRevenue, err := s.accountAmounts(ctx, accounts, domain.Revenue, activityOf)
	if err != nil {
		return nil, err
	}
	expenses, totalExpenses, err := s.accountAmounts(ctx, accounts, domain.Expense, activityOf)
	if err != nil {
		return nil, err
	}

	return &domain.PAndLReport{
		StartDate:     from,
		EndDate:       to,
		Revenue:       revenue,
		Expenses:      expenses,
		TotalRevenue:  totalRevenue,
		TotalExpenses: totalExpenses,
		NetProfit:     totalRevenue.Sub(totalExpenses),
	}, nil
}

// GeneralLedger returns one account's chronological history over [from, to]
// with running balances seeded from the opening balance.
func (s *reportingService) GeneralLedger(ctx context.Context, accountID string, from, to time.Time) (*domain.GeneralLedgerReport, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	opening, lines, err := s.balanceSvc.LedgerLines(ctx, accountID, from, to)
	if err != nil {
		return nil, err
	}

	closing := opening
	if len(lines) > 0 {
		closing = lines[len(lines)-1].RunningBalance
	}

	return &domain.GeneralLedgerReport{
		AccountID:      account.AccountID,
		AccountCode:    account.Code,
		AccountName:    account.Name,
		StartDate:      from,
		EndDate:        to,
		OpeningBalance: opening,
		Lines:          lines,
		ClosingBalance: closing,
	}, nil
}
