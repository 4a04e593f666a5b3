package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/smebooks/sme_ledger_app/internal/apperrors"
	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	portsrepo "github.com/smebooks/sme_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/smebooks/sme_ledger_app/internal/core/ports/services"
	"github.com/smebooks/sme_ledger_app/internal/dto"
	"github.com/smebooks/sme_ledger_app/internal/handlers"
)

// --- Mock LedgerPostingSvc ---
type MockLedgerPostingService struct {
	mock.Mock
}

func (m *MockLedgerPostingService) CreateDraftEntry(ctx context.Context, req dto.CreateEntryRequest, creatorUserID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockLedgerPostingService) UpdateDraftEntry(ctx context.Context, entryID string, req dto.UpdateEntryRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockLedgerPostingService) DeleteDraftEntry(ctx context.Context, entryID string, userID string) error {
	args := m.Called(ctx, entryID, userID)
	return args.Error(0)
}

func (m *MockLedgerPostingService) PostEntry(ctx context.Context, entryID string, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockLedgerPostingService) ReverseEntry(ctx context.Context, entryID string, reversalDate time.Time, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID, reversalDate, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockLedgerPostingService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockLedgerPostingService) ListEntries(ctx context.Context, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}

var _ portssvc.LedgerPostingSvc = (*MockLedgerPostingService)(nil)

// --- Test Suite ---
type JournalHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockJournalService *MockLedgerPostingService
	userID             string
}

func (suite *JournalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockJournalService = new(MockLedgerPostingService)
	suite.userID = uuid.NewString()

	suite.router = gin.New()
	// Only the journal service is exercised here; the other slots stay nil and
	// are never dereferenced at registration time.
	services := &portssvc.ServiceContainer{Journal: suite.mockJournalService}
	handlers.RegisterRoutes(suite.router, services, &portsrepo.RepositoryProvider{})
}

func (suite *JournalHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", suite.userID)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_Success() {
	createReq := dto.CreateEntryRequest{
		Date:         time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Description:  "Office rent March",
		CurrencyCode: "SGD",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: uuid.NewString(), Debit: decimal.NewFromInt(2500)},
			{AccountID: uuid.NewString(), Credit: decimal.NewFromInt(2500)},
		},
	}

	entry := &domain.JournalEntry{
		EntryID:     uuid.NewString(),
		EntryNumber: "JE-000007",
		EntryType:   domain.EntryGeneral,
		EntryDate:   createReq.Date,
		Description: createReq.Description,
		Status:      domain.Draft,
	}

	suite.mockJournalService.On("CreateDraftEntry",
		mock.Anything,
		mock.MatchedBy(func(r dto.CreateEntryRequest) bool {
			return r.Description == createReq.Description && len(r.Lines) == 2
		}),
		suite.userID,
	).Return(entry, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/entries", createReq)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.EntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(entry.EntryID, resp.EntryID)
	suite.Equal("JE-000007", resp.EntryNumber)
	suite.Equal(string(domain.Draft), resp.Status)

	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_ValidationErrors() {
	createReq := dto.CreateEntryRequest{
		Date:         time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Description:  "Unbalanced",
		CurrencyCode: "SGD",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: uuid.NewString(), Debit: decimal.NewFromInt(100)},
			{AccountID: uuid.NewString(), Credit: decimal.NewFromInt(90)},
		},
	}

	validationErrs := &apperrors.ValidationErrors{}
	validationErrs.Add("entry is unbalanced: debits 100, credits 90")

	suite.mockJournalService.On("CreateDraftEntry", mock.Anything, mock.Anything, suite.userID).
		Return(nil, validationErrs).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/entries", createReq)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "unbalanced")
	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestCreateEntry_MissingIdentityHeader() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/entries", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "X-User-ID")
	suite.mockJournalService.AssertNotCalled(suite.T(), "CreateDraftEntry")
}

func (suite *JournalHandlerTestSuite) TestGetEntry_NotFound() {
	entryID := uuid.NewString()
	suite.mockJournalService.On("GetEntryByID", mock.Anything, entryID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/entries/"+entryID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestPostEntry_Conflict() {
	entryID := uuid.NewString()
	suite.mockJournalService.On("PostEntry", mock.Anything, entryID, suite.userID).
		Return(nil, fmt.Errorf("%w: only draft entries can be posted", apperrors.ErrConflict)).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/entries/%s/post", entryID), nil)

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "draft")
	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestReverseEntry_Success() {
	entryID := uuid.NewString()
	reversalDate := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	reversal := &domain.JournalEntry{
		EntryID:         uuid.NewString(),
		EntryNumber:     "RV-000001",
		EntryType:       domain.EntryReversal,
		EntryDate:       reversalDate,
		Status:          domain.Posted,
		ReversedEntryID: &entryID,
	}

	suite.mockJournalService.On("ReverseEntry", mock.Anything, entryID, reversalDate, suite.userID).
		Return(reversal, nil).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/entries/%s/reverse", entryID), dto.ReverseEntryRequest{ReversalDate: reversalDate})

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.EntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("RV-000001", resp.EntryNumber)
	suite.Require().NotNil(resp.ReversedEntryID)
	suite.Equal(entryID, *resp.ReversedEntryID)

	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestListEntries_PassesPagination() {
	token := "b2Zmc2V0LXRva2Vu"
	suite.mockJournalService.On("ListEntries",
		mock.Anything,
		mock.MatchedBy(func(p dto.ListEntriesParams) bool {
			return p.Limit == 5 && p.NextToken != nil && *p.NextToken == token
		}),
	).Return(&dto.ListEntriesResponse{Entries: []dto.EntryResponse{}}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/entries?limit=5&nextToken="+token, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockJournalService.AssertExpectations(suite.T())
}

func TestJournalHandler(t *testing.T) {
	suite.Run(t, new(JournalHandlerTestSuite))
}
