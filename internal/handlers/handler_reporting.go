package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/smebooks/sme_ledger_app/internal/core/ports/services"
	"github.com/smebooks/sme_ledger_app/internal/dto"
	"github.com/smebooks/sme_ledger_app/internal/middleware"
)

// reportingHandler handles HTTP requests for statements and balances.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
	balanceService   portssvc.BalanceSvc
}

func newReportingHandler(reportingService portssvc.ReportingSvc, balanceService portssvc.BalanceSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: reportingService,
		balanceService:   balanceService,
	}
}

// trialBalance returns the trial balance as of a date.
func (h *reportingHandler) trialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	query := dto.AsOfQuery{}
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Error("Failed to bind query for TrialBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters, asOf (YYYY-MM-DD) is required"})
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), query.AsOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build trial balance")
		return
	}

	c.JSON(http.StatusOK, report)
}

// balanceSheet returns the balance sheet as of a date.
func (h *reportingHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	query := dto.AsOfQuery{}
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Error("Failed to bind query for BalanceSheet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters, asOf (YYYY-MM-DD) is required"})
		return
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), query.AsOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build balance sheet")
		return
	}

	c.JSON(http.StatusOK, report)
}

// profitAndLoss returns the P&L statement over a date window.
func (h *reportingHandler) profitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	query := dto.DateRangeQuery{}
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Error("Failed to bind query for ProfitAndLoss", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters, from and to (YYYY-MM-DD) are required"})
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), query.From, query.To)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build profit and loss statement")
		return
	}

	c.JSON(http.StatusOK, report)
}

// generalLedger returns one account's ledger with running balances.
func (h *reportingHandler) generalLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	query := dto.DateRangeQuery{}
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Error("Failed to bind query for GeneralLedger", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters, from and to (YYYY-MM-DD) are required"})
		return
	}

	report, err := h.reportingService.GeneralLedger(c.Request.Context(), accountID, query.From, query.To)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to build general ledger")
		return
	}

	c.JSON(http.StatusOK, report)
}

// accountBalance returns one account's signed balance as of a date.
func (h *reportingHandler) accountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	query := dto.AsOfQuery{}
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Error("Failed to bind query for AccountBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters, asOf (YYYY-MM-DD) is required"})
		return
	}

	balance, err := h.balanceService.BalanceAsOf(c.Request.Context(), accountID, query.AsOf)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute account balance")
		return
	}

	c.JSON(http.StatusOK, gin.H{"accountID": accountID, "asOf": query.AsOf, "balance": balance.Round(2)})
}

// accountPeriodBalance returns one account's opening/activity/closing triple
// over a date window.
func (h *reportingHandler) accountPeriodBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	query := dto.DateRangeQuery{}
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Error("Failed to bind query for AccountPeriodBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters, from and to (YYYY-MM-DD) are required"})
		return
	}

	periodBalance, err := h.balanceService.BalanceForPeriod(c.Request.Context(), accountID, query.From, query.To)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute period balance")
		return
	}

	c.JSON(http.StatusOK, periodBalance)
}

// registerReportingRoutes registers statement and balance routes.
func registerReportingRoutes(group *gin.RouterGroup, reportingService portssvc.ReportingSvc, balanceService portssvc.BalanceSvc) {
	h := newReportingHandler(reportingService, balanceService)

	reports := group.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/balance-sheet", h.balanceSheet)
		reports.GET("/profit-and-loss", h.profitAndLoss)
		reports.GET("/general-ledger/:accountID", h.generalLedger)
	}

	balances := group.Group("/balances")
	{
		balances.GET("/:accountID", h.accountBalance)
		balances.GET("/:accountID/period", h.accountPeriodBalance)
	}
}
