package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	portssvc "github.com/smebooks/sme_ledger_app/internal/core/ports/services"
	"github.com/smebooks/sme_ledger_app/internal/dto"
	"github.com/smebooks/sme_ledger_app/internal/middleware"
)

// fiscalHandler handles HTTP requests for fiscal years and periods.
type fiscalHandler struct {
	fiscalService portssvc.FiscalCalendarSvc
}

func newFiscalHandler(fiscalService portssvc.FiscalCalendarSvc) *fiscalHandler {
	return &fiscalHandler{
		fiscalService: fiscalService,
	}
}

// createFiscalYear creates a fiscal year.
func (h *fiscalHandler) createFiscalYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	createReq := dto.CreateFiscalYearRequest{}
	if err := c.ShouldBindJSON(&createReq); err != nil {
		logger.Error("Failed to bind JSON for CreateFiscalYear", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	year, err := h.fiscalService.CreateFiscalYear(c.Request.Context(), createReq, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create fiscal year")
		return
	}

	logger.Info("Fiscal year created", slog.String("fiscal_year_id", year.FiscalYearID), slog.String("name", year.Name))
	c.JSON(http.StatusCreated, dto.ToFiscalYearResponse(year))
}

// listFiscalYears returns all fiscal years.
func (h *fiscalHandler) listFiscalYears(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	years, err := h.fiscalService.ListFiscalYears(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list fiscal years")
		return
	}

	responses := make([]dto.FiscalYearResponse, len(years))
	for i := range years {
		responses[i] = dto.ToFiscalYearResponse(&years[i])
	}
	c.JSON(http.StatusOK, responses)
}

// generatePeriods generates the period set of a fiscal year.
func (h *fiscalHandler) generatePeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fiscalYearID := c.Param("fiscalYearID")

	genReq := dto.GeneratePeriodsRequest{}
	if err := c.ShouldBindJSON(&genReq); err != nil {
		logger.Error("Failed to bind JSON for GeneratePeriods", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	periods, err := h.fiscalService.GeneratePeriods(c.Request.Context(), fiscalYearID, domain.PeriodType(genReq.PeriodType), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to generate periods")
		return
	}

	logger.Info("Periods generated", slog.String("fiscal_year_id", fiscalYearID), slog.Int("count", len(periods)))
	c.JSON(http.StatusCreated, dto.ToFiscalPeriodResponses(periods))
}

// listPeriods returns the periods of a fiscal year in sequence order.
func (h *fiscalHandler) listPeriods(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fiscalYearID := c.Param("fiscalYearID")

	periods, err := h.fiscalService.ListPeriods(c.Request.Context(), fiscalYearID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list periods")
		return
	}

	c.JSON(http.StatusOK, dto.ToFiscalPeriodResponses(periods))
}

// closeFiscalYear seals a year whose periods are all closed.
func (h *fiscalHandler) closeFiscalYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fiscalYearID := c.Param("fiscalYearID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	year, err := h.fiscalService.CloseFiscalYear(c.Request.Context(), fiscalYearID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to close fiscal year")
		return
	}

	logger.Info("Fiscal year closed", slog.String("fiscal_year_id", fiscalYearID))
	c.JSON(http.StatusOK, dto.ToFiscalYearResponse(year))
}

// closePeriod closes a period against further posting.
func (h *fiscalHandler) closePeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("periodID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	period, err := h.fiscalService.ClosePeriod(c.Request.Context(), periodID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to close period")
		return
	}

	logger.Info("Period closed", slog.String("period_id", periodID))
	c.JSON(http.StatusOK, dto.ToFiscalPeriodResponse(period))
}

// reopenPeriod reopens a closed period while its year is still open.
func (h *fiscalHandler) reopenPeriod(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	periodID := c.Param("periodID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	period, err := h.fiscalService.ReopenPeriod(c.Request.Context(), periodID, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reopen period")
		return
	}

	logger.Info("Period reopened", slog.String("period_id", periodID))
	c.JSON(http.StatusOK, dto.ToFiscalPeriodResponse(period))
}

// registerFiscalRoutes registers fiscal calendar routes.
func registerFiscalRoutes(group *gin.RouterGroup, fiscalService portssvc.FiscalCalendarSvc) {
	h := newFiscalHandler(fiscalService)

	years := group.Group("/fiscal-years")
	{
		years.POST("", h.createFiscalYear)
		years.GET("", h.listFiscalYears)
		years.POST("/:fiscalYearID/periods", h.generatePeriods)
		years.GET("/:fiscalYearID/periods", h.listPeriods)
		years.POST("/:fiscalYearID/close", h.closeFiscalYear)
	}

	periods := group.Group("/periods")
	{
		periods.POST("/:periodID/close", h.closePeriod)
		periods.POST("/:periodID/reopen", h.reopenPeriod)
	}
}
