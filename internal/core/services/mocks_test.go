package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	portsrepo "github.com/smebooks/sme_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/smebooks/sme_ledger_app/internal/core/ports/services"
	"github.com/smebooks/sme_ledger_app/internal/dto"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepository = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntry), returnedToken, args.Error(2)
}

func (m *MockJournalRepository) CountDraftEntriesInRange(ctx context.Context, from, to time.Time) (int, error) {
	args := m.Called(ctx, from, to)
	return args.Int(0), args.Error(1)
}

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	args := m.Called(ctx, entry, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateDraftEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	args := m.Called(ctx, entry, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) DeleteDraftEntry(ctx context.Context, entryID string) error {
	args := m.Called(ctx, entryID)
	return args.Error(0)
}

func (m *MockJournalRepository) MarkEntryPosted(ctx context.Context, entryID string, postedBy string, postedAt time.Time) error {
	args := m.Called(ctx, entryID, postedBy, postedAt)
	return args.Error(0)
}

func (m *MockJournalRepository) SaveReversal(ctx context.Context, reversal domain.JournalEntry, lines []domain.JournalLine, originalEntryID string, userID string, now time.Time) error {
	args := m.Called(ctx, reversal, lines, originalEntryID, userID, now)
	return args.Error(0)
}

// --- Mock FiscalRepository ---
type MockFiscalRepository struct {
	mock.Mock
}

var _ portsrepo.FiscalRepository = (*MockFiscalRepository)(nil)

func (m *MockFiscalRepository) SaveFiscalYear(ctx context.Context, year domain.FiscalYear) error {
	args := m.Called(ctx, year)
	return args.Error(0)
}

func (m *MockFiscalRepository) FindFiscalYearByID(ctx context.Context, fiscalYearID string) (*domain.FiscalYear, error) {
	args := m.Called(ctx, fiscalYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}

func (m *MockFiscalRepository) ListFiscalYears(ctx context.Context) ([]domain.FiscalYear, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalYear), args.Error(1)
}

func (m *MockFiscalRepository) MarkYearClosed(ctx context.Context, fiscalYearID string, userID string, closedAt time.Time) error {
	args := m.Called(ctx, fiscalYearID, userID, closedAt)
	return args.Error(0)
}

func (m *MockFiscalRepository) SavePeriods(ctx context.Context, periods []domain.FiscalPeriod) error {
	args := m.Called(ctx, periods)
	return args.Error(0)
}

func (m *MockFiscalRepository) FindPeriodByID(ctx context.Context, periodID string) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, periodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalRepository) FindPeriodForDate(ctx context.Context, date time.Time) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalRepository) ListPeriodsByYear(ctx context.Context, fiscalYearID string) ([]domain.FiscalPeriod, error) {
	args := m.Called(ctx, fiscalYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalRepository) CountPeriodsByYear(ctx context.Context, fiscalYearID string) (int, error) {
	args := m.Called(ctx, fiscalYearID)
	return args.Int(0), args.Error(1)
}

func (m *MockFiscalRepository) UpdatePeriodStatus(ctx context.Context, periodID string, status domain.PeriodStatus, userID string, updatedAt time.Time) error {
	args := m.Called(ctx, periodID, status, userID, updatedAt)
	return args.Error(0)
}

// --- Mock RecurringRepository ---
type MockRecurringRepository struct {
	mock.Mock
}

var _ portsrepo.RecurringRepository = (*MockRecurringRepository)(nil)

func (m *MockRecurringRepository) SavePattern(ctx context.Context, pattern domain.RecurringPattern, lines []domain.PatternLine) error {
	args := m.Called(ctx, pattern, lines)
	return args.Error(0)
}

func (m *MockRecurringRepository) FindPatternByID(ctx context.Context, patternID string) (*domain.RecurringPattern, error) {
	args := m.Called(ctx, patternID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecurringPattern), args.Error(1)
}

func (m *MockRecurringRepository) FindPatternLines(ctx context.Context, patternID string) ([]domain.PatternLine, error) {
	args := m.Called(ctx, patternID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PatternLine), args.Error(1)
}

func (m *MockRecurringRepository) ListPatterns(ctx context.Context) ([]domain.RecurringPattern, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringPattern), args.Error(1)
}

func (m *MockRecurringRepository) ListDuePatterns(ctx context.Context, asOf time.Time) ([]domain.RecurringPattern, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecurringPattern), args.Error(1)
}

func (m *MockRecurringRepository) AdvancePattern(ctx context.Context, patternID string, nextRunDate time.Time, isActive bool, userID string, updatedAt time.Time) error {
	args := m.Called(ctx, patternID, nextRunDate, isActive, userID, updatedAt)
	return args.Error(0)
}

func (m *MockRecurringRepository) DeactivatePattern(ctx context.Context, patternID string, userID string, updatedAt time.Time) error {
	args := m.Called(ctx, patternID, userID, updatedAt)
	return args.Error(0)
}

// --- Mock GSTReturnRepository ---
type MockGSTReturnRepository struct {
	mock.Mock
}

var _ portsrepo.GSTReturnRepository = (*MockGSTReturnRepository)(nil)

func (m *MockGSTReturnRepository) SaveReturn(ctx context.Context, ret domain.GSTReturn) error {
	args := m.Called(ctx, ret)
	return args.Error(0)
}

func (m *MockGSTReturnRepository) UpdateDraftReturn(ctx context.Context, ret domain.GSTReturn) error {
	args := m.Called(ctx, ret)
	return args.Error(0)
}

func (m *MockGSTReturnRepository) FindReturnByID(ctx context.Context, returnID string) (*domain.GSTReturn, error) {
	args := m.Called(ctx, returnID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GSTReturn), args.Error(1)
}

func (m *MockGSTReturnRepository) FindReturnByPeriod(ctx context.Context, periodStart, periodEnd time.Time) (*domain.GSTReturn, error) {
	args := m.Called(ctx, periodStart, periodEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GSTReturn), args.Error(1)
}

func (m *MockGSTReturnRepository) ListReturns(ctx context.Context) ([]domain.GSTReturn, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GSTReturn), args.Error(1)
}

func (m *MockGSTReturnRepository) MarkReturnSubmitted(ctx context.Context, returnID string, submissionRef string, submissionDate time.Time, settlementEntryID string, userID string, updatedAt time.Time) error {
	args := m.Called(ctx, returnID, submissionRef, submissionDate, settlementEntryID, userID, updatedAt)
	return args.Error(0)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetAccountTotalsAsOf(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, decimal.Decimal, error) {
	args := m.Called(ctx, accountID, asOf)
	return args.Get(0).(decimal.Decimal), args.Get(1).(decimal.Decimal), args.Error(2)
}

func (m *MockReportingRepository) GetPostedLinesForAccount(ctx context.Context, accountID string, from, to time.Time) ([]domain.LedgerLine, error) {
	args := m.Called(ctx, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerLine), args.Error(1)
}

func (m *MockReportingRepository) GetPostedTaxLines(ctx context.Context, from, to time.Time) ([]domain.TaxLine, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxLine), args.Error(1)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepository = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListActiveAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Mock TaxCodeRepository ---
type MockTaxCodeRepository struct {
	mock.Mock
}

var _ portsrepo.TaxCodeRepository = (*MockTaxCodeRepository)(nil)

func (m *MockTaxCodeRepository) SaveTaxCode(ctx context.Context, taxCode domain.TaxCode) error {
	args := m.Called(ctx, taxCode)
	return args.Error(0)
}

func (m *MockTaxCodeRepository) FindTaxCodeByCode(ctx context.Context, code string) (*domain.TaxCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaxCode), args.Error(1)
}

func (m *MockTaxCodeRepository) FindTaxCodesByCodes(ctx context.Context, codes []string) (map[string]domain.TaxCode, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.TaxCode), args.Error(1)
}

func (m *MockTaxCodeRepository) ListTaxCodes(ctx context.Context) ([]domain.TaxCode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaxCode), args.Error(1)
}

// --- Mock SequenceRepository ---
type MockSequenceRepository struct {
	mock.Mock
}

var _ portsrepo.SequenceRepository = (*MockSequenceRepository)(nil)

func (m *MockSequenceRepository) NextNumber(ctx context.Context, series string) (string, error) {
	args := m.Called(ctx, series)
	return args.String(0), args.Error(1)
}

// --- Mock FiscalCalendarSvc ---
type MockFiscalCalendarSvc struct {
	mock.Mock
}

var _ portssvc.FiscalCalendarSvc = (*MockFiscalCalendarSvc)(nil)

func (m *MockFiscalCalendarSvc) CreateFiscalYear(ctx context.Context, req dto.CreateFiscalYearRequest, userID string) (*domain.FiscalYear, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}

func (m *MockFiscalCalendarSvc) ListFiscalYears(ctx context.Context) ([]domain.FiscalYear, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalYear), args.Error(1)
}

func (m *MockFiscalCalendarSvc) GeneratePeriods(ctx context.Context, fiscalYearID string, periodType domain.PeriodType, userID string) ([]domain.FiscalPeriod, error) {
	args := m.Called(ctx, fiscalYearID, periodType, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalCalendarSvc) ListPeriods(ctx context.Context, fiscalYearID string) ([]domain.FiscalPeriod, error) {
	args := m.Called(ctx, fiscalYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalCalendarSvc) PeriodForDate(ctx context.Context, date time.Time) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalCalendarSvc) ClosePeriod(ctx context.Context, periodID string, userID string) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, periodID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalCalendarSvc) ReopenPeriod(ctx context.Context, periodID string, userID string) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, periodID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalCalendarSvc) CloseFiscalYear(ctx context.Context, fiscalYearID string, userID string) (*domain.FiscalYear, error) {
	args := m.Called(ctx, fiscalYearID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalYear), args.Error(1)
}

// --- Mock LedgerPostingSvc ---
type MockLedgerPostingSvc struct {
	mock.Mock
}

var _ portssvc.LedgerPostingSvc = (*MockLedgerPostingSvc)(nil)

func (m *MockLedgerPostingSvc) CreateDraftEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockLedgerPostingSvc) UpdateDraftEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockLedgerPostingSvc) DeleteDraftEntry(ctx context.Context, entryID string, userID string) error {
	args := m.Called(ctx, entryID, userID)
	return args.Error(0)
}

func (m *MockLedgerPostingSvc) PostEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockLedgerPostingSvc) ReverseEntry(ctx context.Context, entryID string, reversalDate time.Time, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, reversalDate, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockLedgerPostingSvc) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockLedgerPostingSvc) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}

// --- Mock BalanceSvc ---
type MockBalanceSvc struct {
	mock.Mock
}

var _ portssvc.BalanceSvc = (*MockBalanceSvc)(nil)

func (m *MockBalanceSvc) BalanceAsOf(ctx context.Context, accountID string, asOf time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID, asOf)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockBalanceSvc) BalanceForPeriod(ctx context.Context, accountID string, from, to time.Time) (*domain.PeriodBalance, error) {
	args := m.Called(ctx, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodBalance), args.Error(1)
}

func (m *MockBalanceSvc) LedgerLines(ctx context.Context, accountID string, from, to time.Time) (decimal.Decimal, []domain.LedgerLine, error) {
	args := m.Called(ctx, accountID, from, to)
	var lines []domain.LedgerLine
	if args.Get(1) != nil {
		lines = args.Get(1).([]domain.LedgerLine)
	}
	return args.Get(0).(decimal.Decimal), lines, args.Error(2)
}
