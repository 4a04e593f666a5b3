package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/smebooks/sme_ledger_app/internal/apperrors"
	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	portssvc "github.com/smebooks/sme_ledger_app/internal/core/ports/services"
	"github.com/smebooks/sme_ledger_app/internal/core/services"
	"github.com/smebooks/sme_ledger_app/internal/dto"
)

type FiscalServiceTestSuite struct {
	suite.Suite
	mockFiscalRepo  *MockFiscalRepository
	mockJournalRepo *MockJournalRepository
	service         portssvc.FiscalCalendarSvc
	year            domain.FiscalYear
	userID          string
}

func (suite *FiscalServiceTestSuite) SetupTest() {
	suite.mockFiscalRepo = new(MockFiscalRepository)
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.service = services.NewFiscalService(suite.mockFiscalRepo, suite.mockJournalRepo, services.DefaultPostingPolicy())

	suite.userID = uuid.NewString()
	suite.year = domain.FiscalYear{
		FiscalYearID: uuid.NewString(),
		Name:         "FY2026",
		StartDate:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *FiscalServiceTestSuite) TestCreateFiscalYear_Success() {
	ctx := context.Background()
	req := dto.CreateFiscalYearRequest{
		Name:      "FY2027",
		StartDate: time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2027, 12, 31, 0, 0, 0, 0, time.UTC),
	}

	suite.mockFiscalRepo.On("SaveFiscalYear", ctx, mock.AnythingOfType("domain.FiscalYear")).Return(nil).Once()

	year, err := suite.service.CreateFiscalYear(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("FY2027", year.Name)
	suite.False(year.IsClosed)
	suite.mockFiscalRepo.AssertExpectations(suite.T())
}

func (suite *FiscalServiceTestSuite) TestCreateFiscalYear_EndBeforeStart() {
	ctx := context.Background()
	req := dto.CreateFiscalYearRequest{
		Name:      "Backwards",
		StartDate: time.Date(2027, 12, 31, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	_, err := suite.service.CreateFiscalYear(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockFiscalRepo.AssertNotCalled(suite.T(), "SaveFiscalYear", mock.Anything, mock.Anything)
}

func (suite *FiscalServiceTestSuite) TestGeneratePeriods_MonthlyCoversYearContiguously() {
	ctx := context.Background()

	suite.mockFiscalRepo.On("FindFiscalYearByID", ctx, suite.year.FiscalYearID).Return(&suite.year, nil).Once()
	suite.mockFiscalRepo.On("CountPeriodsByYear", ctx, suite.year.FiscalYearID).Return(0, nil).Once()
	suite.mockFiscalRepo.On("SavePeriods", ctx, mock.AnythingOfType("[]domain.FiscalPeriod")).Return(nil).Once()

	periods, err := suite.service.GeneratePeriods(ctx, suite.year.FiscalYearID, domain.PeriodMonthly, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(periods, 12)
	suite.Equal(suite.year.StartDate, periods[0].StartDate)
	suite.Equal(suite.year.EndDate, periods[len(periods)-1].EndDate)
	for i := 1; i < len(periods); i++ {
		suite.Equal(periods[i-1].EndDate.AddDate(0, 0, 1), periods[i].StartDate, "periods must be contiguous")
		suite.Equal(i+1, periods[i].Sequence)
	}
	for _, p := range periods {
		suite.Equal(domain.PeriodOpen, p.Status)
	}
}

func (suite *FiscalServiceTestSuite) TestGeneratePeriods_Quarterly() {
	ctx := context.Background()

	suite.mockFiscalRepo.On("FindFiscalYearByID", ctx, suite.year.FiscalYearID).Return(&suite.year, nil).Once()
	suite.mockFiscalRepo.On("CountPeriodsByYear", ctx, suite.year.FiscalYearID).Return(0, nil).Once()
	suite.mockFiscalRepo.On("SavePeriods", ctx, mock.Anything).Return(nil).Once()

	periods, err := suite.service.GeneratePeriods(ctx, suite.year.FiscalYearID, domain.PeriodQuarterly, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(periods, 4)
	suite.Equal(time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), periods[0].EndDate)
	suite.Equal(suite.year.EndDate, periods[3].EndDate)
}

func (suite *FiscalServiceTestSuite) TestGeneratePeriods_AlreadyGenerated() {
	ctx := context.Background()

	suite.mockFiscalRepo.On("FindFiscalYearByID", ctx, suite.year.FiscalYearID).Return(&suite.year, nil).Once()
	suite.mockFiscalRepo.On("CountPeriodsByYear", ctx, suite.year.FiscalYearID).Return(12, nil).Once()

	_, err := suite.service.GeneratePeriods(ctx, suite.year.FiscalYearID, domain.PeriodMonthly, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPeriodsAlreadyExist)
	suite.mockFiscalRepo.AssertNotCalled(suite.T(), "SavePeriods", mock.Anything, mock.Anything)
}

func (suite *FiscalServiceTestSuite) TestClosePeriod_RefusedOverDrafts() {
	ctx := context.Background()
	period := &domain.FiscalPeriod{
		PeriodID:  uuid.NewString(),
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Status:    domain.PeriodOpen,
	}

	suite.mockFiscalRepo.On("FindPeriodByID", ctx, period.PeriodID).Return(period, nil).Once()
	suite.mockJournalRepo.On("CountDraftEntriesInRange", ctx, period.StartDate, period.EndDate).Return(3, nil).Once()

	_, err := suite.service.ClosePeriod(ctx, period.PeriodID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPeriodHasDrafts)
	suite.mockFiscalRepo.AssertNotCalled(suite.T(), "UpdatePeriodStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FiscalServiceTestSuite) TestClosePeriod_PolicyAllowsDrafts() {
	ctx := context.Background()
	policy := services.DefaultPostingPolicy()
	policy.AllowCloseWithDrafts = true
	service := services.NewFiscalService(suite.mockFiscalRepo, suite.mockJournalRepo, policy)

	period := &domain.FiscalPeriod{
		PeriodID:  uuid.NewString(),
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Status:    domain.PeriodOpen,
	}

	suite.mockFiscalRepo.On("FindPeriodByID", ctx, period.PeriodID).Return(period, nil).Once()
	suite.mockFiscalRepo.On("UpdatePeriodStatus", ctx, period.PeriodID, domain.PeriodClosed, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	closed, err := service.ClosePeriod(ctx, period.PeriodID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodClosed, closed.Status)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "CountDraftEntriesInRange", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FiscalServiceTestSuite) TestClosePeriod_CleanPeriodCloses() {
	ctx := context.Background()
	period := &domain.FiscalPeriod{
		PeriodID:  uuid.NewString(),
		StartDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
		Status:    domain.PeriodOpen,
	}

	suite.mockFiscalRepo.On("FindPeriodByID", ctx, period.PeriodID).Return(period, nil).Once()
	suite.mockJournalRepo.On("CountDraftEntriesInRange", ctx, period.StartDate, period.EndDate).Return(0, nil).Once()
	suite.mockFiscalRepo.On("UpdatePeriodStatus", ctx, period.PeriodID, domain.PeriodClosed, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	closed, err := suite.service.ClosePeriod(ctx, period.PeriodID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodClosed, closed.Status)
}

func (suite *FiscalServiceTestSuite) TestReopenPeriod_Success() {
	ctx := context.Background()
	period := &domain.FiscalPeriod{
		PeriodID:     uuid.NewString(),
		FiscalYearID: suite.year.FiscalYearID,
		Status:       domain.PeriodClosed,
	}

	suite.mockFiscalRepo.On("FindPeriodByID", ctx, period.PeriodID).Return(period, nil).Once()
	suite.mockFiscalRepo.On("FindFiscalYearByID", ctx, suite.year.FiscalYearID).Return(&suite.year, nil).Once()
	suite.mockFiscalRepo.On("UpdatePeriodStatus", ctx, period.PeriodID, domain.PeriodOpen, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	reopened, err := suite.service.ReopenPeriod(ctx, period.PeriodID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodOpen, reopened.Status)
}

func (suite *FiscalServiceTestSuite) TestReopenPeriod_ClosedYearRejected() {
	ctx := context.Background()
	closedYear := suite.year
	closedYear.IsClosed = true
	period := &domain.FiscalPeriod{
		PeriodID:     uuid.NewString(),
		FiscalYearID: closedYear.FiscalYearID,
		Status:       domain.PeriodClosed,
	}

	suite.mockFiscalRepo.On("FindPeriodByID", ctx, period.PeriodID).Return(period, nil).Once()
	suite.mockFiscalRepo.On("FindFiscalYearByID", ctx, closedYear.FiscalYearID).Return(&closedYear, nil).Once()

	_, err := suite.service.ReopenPeriod(ctx, period.PeriodID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrYearClosed)
	suite.mockFiscalRepo.AssertNotCalled(suite.T(), "UpdatePeriodStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FiscalServiceTestSuite) TestCloseFiscalYear_OpenPeriodRejected() {
	ctx := context.Background()
	periods := []domain.FiscalPeriod{
		{PeriodID: uuid.NewString(), Name: "FY2026 M01", Status: domain.PeriodClosed},
		{PeriodID: uuid.NewString(), Name: "FY2026 M02", Status: domain.PeriodOpen},
	}

	suite.mockFiscalRepo.On("FindFiscalYearByID", ctx, suite.year.FiscalYearID).Return(&suite.year, nil).Once()
	suite.mockFiscalRepo.On("ListPeriodsByYear", ctx, suite.year.FiscalYearID).Return(periods, nil).Once()

	_, err := suite.service.CloseFiscalYear(ctx, suite.year.FiscalYearID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPeriodsStillOpen)
	suite.mockFiscalRepo.AssertNotCalled(suite.T(), "MarkYearClosed", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FiscalServiceTestSuite) TestCloseFiscalYear_Success() {
	ctx := context.Background()
	periods := []domain.FiscalPeriod{
		{PeriodID: uuid.NewString(), Status: domain.PeriodClosed},
		{PeriodID: uuid.NewString(), Status: domain.PeriodClosed},
	}

	suite.mockFiscalRepo.On("FindFiscalYearByID", ctx, suite.year.FiscalYearID).Return(&suite.year, nil).Once()
	suite.mockFiscalRepo.On("ListPeriodsByYear", ctx, suite.year.FiscalYearID).Return(periods, nil).Once()
	suite.mockFiscalRepo.On("MarkYearClosed", ctx, suite.year.FiscalYearID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	closed, err := suite.service.CloseFiscalYear(ctx, suite.year.FiscalYearID, suite.userID)

	suite.Require().NoError(err)
	suite.True(closed.IsClosed)
	suite.NotNil(closed.ClosedAt)
}

func TestFiscalService(t *testing.T) {
	suite.Run(t, new(FiscalServiceTestSuite))
}
