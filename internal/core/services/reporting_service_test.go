package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	portssvc "github.com/smebooks/sme_ledger_app/internal/core/ports/services"
	"github.com/smebooks/sme_ledger_app/internal/core/services"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	mockBalanceSvc  *MockBalanceSvc
	mockAccountRepo *MockAccountRepository
	service         portssvc.ReportingSvc
	cash            domain.Account
	loan            domain.Account
	capital         domain.Account
	sales           domain.Account
	rent            domain.Account
	accounts        []domain.Account
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockBalanceSvc = new(MockBalanceSvc)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewReportingService(suite.mockBalanceSvc, suite.mockAccountRepo, services.DefaultPostingPolicy())

	suite.cash = domain.Account{AccountID: uuid.NewString(), Code: "1000", Name: "Cash at Bank", AccountType: domain.Asset, IsActive: true}
	suite.loan = domain.Account{AccountID: uuid.NewString(), Code: "2100", Name: "Bank Loan", AccountType: domain.Liability, IsActive: true}
	suite.capital = domain.Account{AccountID: uuid.NewString(), Code: "3000", Name: "Share Capital", AccountType: domain.Equity, IsActive: true}
	suite.sales = domain.Account{AccountID: uuid.NewString(), Code: "4000", Name: "Sales Revenue", AccountType: domain.Revenue, IsActive: true}
	suite.rent = domain.Account{AccountID: uuid.NewString(), Code: "6000", Name: "Rent Expense", AccountType: domain.Expense, IsActive: true}
	suite.accounts = []domain.Account{suite.cash, suite.loan, suite.capital, suite.sales, suite.rent}
}

func (suite *ReportingServiceTestSuite) stubBalance(accountID string, asOf time.Time, balance int64) {
	suite.mockBalanceSvc.On("BalanceAsOf", context.Background(), accountID, asOf).
		Return(decimal.NewFromInt(balance), nil)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_ColumnsAndTotals() {
	ctx := context.Background()
	asOf := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("ListActiveAccounts", ctx).Return(suite.accounts, nil).Once()
	suite.stubBalance(suite.cash.AccountID, asOf, 900)
	suite.stubBalance(suite.loan.AccountID, asOf, 300)
	suite.stubBalance(suite.capital.AccountID, asOf, 500)
	suite.stubBalance(suite.sales.AccountID, asOf, 200)
	suite.stubBalance(suite.rent.AccountID, asOf, 100)

	report, err := suite.service.TrialBalance(ctx, asOf)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 5)

	// Rows sort by account code; debit-normal positives land in the debit
	// column, credit-normal positives in the credit column.
	suite.Equal("1000", report.Rows[0].AccountCode)
	suite.True(report.Rows[0].Debit.Equal(decimal.NewFromInt(900)))
	suite.True(report.Rows[0].Credit.IsZero())
	suite.True(report.Rows[1].Credit.Equal(decimal.NewFromInt(300)))
	suite.True(report.Rows[3].Credit.Equal(decimal.NewFromInt(200)))
	suite.True(report.Rows[4].Debit.Equal(decimal.NewFromInt(100)))

	suite.True(report.TotalDebits.Equal(decimal.NewFromInt(1000)))
	suite.True(report.TotalCredits.Equal(decimal.NewFromInt(1000)))
	suite.True(report.IsBalanced)
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_NegativeBalanceFlipsColumn() {
	ctx := context.Background()
	asOf := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("ListActiveAccounts", ctx).Return([]domain.Account{suite.cash}, nil).Once()
	// An overdrawn asset account shows in the credit column.
	suite.stubBalance(suite.cash.AccountID, asOf, -150)

	report, err := suite.service.TrialBalance(ctx, asOf)

	suite.Require().NoError(err)
	suite.Require().Len(report.Rows, 1)
	suite.True(report.Rows[0].Debit.IsZero())
	suite.True(report.Rows[0].Credit.Equal(decimal.NewFromInt(150)))
}

func (suite *ReportingServiceTestSuite) TestTrialBalance_SkipsZeroBalances() {
	ctx := context.Background()
	asOf := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("ListActiveAccounts", ctx).Return([]domain.Account{suite.cash, suite.loan}, nil).Once()
	suite.stubBalance(suite.cash.AccountID, asOf, 100)
	suite.stubBalance(suite.loan.AccountID, asOf, 0)

	report, err := suite.service.TrialBalance(ctx, asOf)

	suite.Require().NoError(err)
	suite.Len(report.Rows, 1)
}

func (suite *ReportingServiceTestSuite) TestBalanceSheet_RetainedEarningsBalanceTheStatement() {
	ctx := context.Background()
	asOf := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("ListActiveAccounts", ctx).Return(suite.accounts, nil).Once()
	suite.stubBalance(suite.cash.AccountID, asOf, 900)
	suite.stubBalance(suite.loan.AccountID, asOf, 300)
	suite.stubBalance(suite.capital.AccountID, asOf, 500)
	suite.stubBalance(suite.sales.AccountID, asOf, 200)
	suite.stubBalance(suite.rent.AccountID, asOf, 100)

	report, err := suite.service.BalanceSheet(ctx, asOf)

	suite.Require().NoError(err)
	suite.True(report.TotalAssets.Equal(decimal.NewFromInt(900)))
	suite.True(report.TotalLiabilities.Equal(decimal.NewFromInt(300)))
	// Equity picks up 500 capital plus 100 current year earnings (200 - 100).
	suite.True(report.TotalEquity.Equal(decimal.NewFromInt(600)))
	suite.True(report.TotalLiabilitiesEquity.Equal(decimal.NewFromInt(900)))
	suite.True(report.IsBalanced)

	suite.Require().Len(report.Equity, 2)
	suite.Equal("Current Year Earnings", report.Equity[1].Name)
	suite.True(report.Equity[1].NetAmount.Equal(decimal.NewFromInt(100)))
}

func (suite *ReportingServiceTestSuite) TestProfitAndLoss_NetProfit() {
	ctx := context.Background()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("ListActiveAccounts", ctx).Return(suite.accounts, nil).Once()
	suite.mockBalanceSvc.On("BalanceForPeriod", ctx, suite.sales.AccountID, from, to).
		Return(&domain.PeriodBalance{Activity: decimal.NewFromInt(800)}, nil).Once()
	suite.mockBalanceSvc.On("BalanceForPeriod", ctx, suite.rent.AccountID, from, to).
		Return(&domain.PeriodBalance{Activity: decimal.NewFromInt(250)}, nil).Once()

	report, err := suite.service.ProfitAndLoss(ctx, from, to)

	suite.Require().NoError(err)
	suite.True(report.TotalRevenue.Equal(decimal.NewFromInt(800)))
	suite.True(report.TotalExpenses.Equal(decimal.NewFromInt(250)))
	suite.True(report.NetProfit.Equal(decimal.NewFromInt(550)))
	suite.Len(report.Revenue, 1)
	suite.Len(report.Expenses, 1)
}

func (suite *ReportingServiceTestSuite) TestGeneralLedger_ClosingFromLastRunningBalance() {
	ctx := context.Background()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	lines := []domain.LedgerLine{
		{EntryNumber: "JE-000001", RunningBalance: decimal.NewFromInt(300)},
		{EntryNumber: "JE-000002", RunningBalance: decimal.NewFromInt(280)},
	}

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.cash.AccountID).Return(&suite.cash, nil).Once()
	suite.mockBalanceSvc.On("LedgerLines", ctx, suite.cash.AccountID, from, to).
		Return(decimal.NewFromInt(100), lines, nil).Once()

	report, err := suite.service.GeneralLedger(ctx, suite.cash.AccountID, from, to)

	suite.Require().NoError(err)
	suite.Equal("1000", report.AccountCode)
	suite.True(report.OpeningBalance.Equal(decimal.NewFromInt(100)))
	suite.True(report.ClosingBalance.Equal(decimal.NewFromInt(280)))
	suite.Len(report.Lines, 2)
}

func (suite *ReportingServiceTestSuite) TestGeneralLedger_EmptyWindowClosingEqualsOpening() {
	ctx := context.Background()
	from := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)

	suite.mockAccountRepo.On("FindAccountByID", ctx, suite.cash.AccountID).Return(&suite.cash, nil).Once()
	suite.mockBalanceSvc.On("LedgerLines", ctx, suite.cash.AccountID, from, to).
		Return(decimal.NewFromInt(100), []domain.LedgerLine{}, nil).Once()

	report, err := suite.service.GeneralLedger(ctx, suite.cash.AccountID, from, to)

	suite.Require().NoError(err)
	suite.True(report.ClosingBalance.Equal(report.OpeningBalance))
}

func TestReportingService(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
