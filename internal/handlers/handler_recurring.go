package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/smebooks/sme_ledger_app/internal/core/ports/services"
	"github.com/smebooks/sme_ledger_app/internal/dto"
	"github.com/smebooks/sme_ledger_app/internal/middleware"
)

// recurringHandler handles HTTP requests for recurring entry patterns.
type recurringHandler struct {
	recurringService portssvc.RecurrenceSvc
}

func newRecurringHandler(recurringService portssvc.RecurrenceSvc) *recurringHandler {
	return &recurringHandler{
		recurringService: recurringService,
	}
}

// createPattern creates a recurring pattern with its template lines.
func (h *recurringHandler) createPattern(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	createReq := dto.CreatePatternRequest{}
	if err := c.ShouldBindJSON(&createReq); err != nil {
		logger.Error("Failed to bind JSON for CreatePattern", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	pattern, err := h.recurringService.CreatePattern(c.Request.Context(), createReq, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create pattern")
		return
	}

	logger.Info("Recurring pattern created", slog.String("pattern_id", pattern.PatternID), slog.String("name", pattern.Name))
	c.JSON(http.StatusCreated, dto.ToPatternResponse(pattern))
}

// getPattern retrieves a pattern by id.
func (h *recurringHandler) getPattern(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	patternID := c.Param("patternID")

	pattern, err := h.recurringService.GetPatternByID(c.Request.Context(), patternID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve pattern")
		return
	}

	c.JSON(http.StatusOK, dto.ToPatternResponse(pattern))
}

// listPatterns returns all patterns.
func (h *recurringHandler) listPatterns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	patterns, err := h.recurringService.ListPatterns(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list patterns")
		return
	}

	responses := make([]dto.PatternResponse, len(patterns))
	for i := range patterns {
		responses[i] = dto.ToPatternResponse(&patterns[i])
	}
	c.JSON(http.StatusOK, responses)
}

// deactivatePattern stops future generation for a pattern.
func (h *recurringHandler) deactivatePattern(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	patternID := c.Param("patternID")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	if err := h.recurringService.DeactivatePattern(c.Request.Context(), patternID, userID); err != nil {
		respondServiceError(c, logger, err, "Failed to deactivate pattern")
		return
	}

	logger.Info("Recurring pattern deactivated", slog.String("pattern_id", patternID))
	c.Status(http.StatusNoContent)
}

// runScheduler materializes every due pattern into a draft entry.
func (h *recurringHandler) runScheduler(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	runReq := dto.RunRecurrenceRequest{}
	if err := c.ShouldBindJSON(&runReq); err != nil {
		logger.Error("Failed to bind JSON for RunScheduler", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	result, err := h.recurringService.Run(c.Request.Context(), runReq.AsOf, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to run scheduler")
		return
	}

	logger.Info("Scheduler run completed",
		slog.Int("generated", len(result.GeneratedEntries)),
		slog.Int("failures", len(result.Failures)),
	)
	c.JSON(http.StatusOK, result)
}

// registerRecurringRoutes registers recurring pattern routes.
func registerRecurringRoutes(group *gin.RouterGroup, recurringService portssvc.RecurrenceSvc) {
	h := newRecurringHandler(recurringService)

	patterns := group.Group("/patterns")
	{
		patterns.POST("", h.createPattern)
		patterns.GET("", h.listPatterns)
		patterns.GET("/:patternID", h.getPattern)
		patterns.POST("/:patternID/deactivate", h.deactivatePattern)
		patterns.POST("/run", h.runScheduler)
	}
}
