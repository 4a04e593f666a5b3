package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/smebooks/sme_ledger_app/internal/core/ports/services"
	"github.com/smebooks/sme_ledger_app/internal/dto"
	"github.com/smebooks/sme_ledger_app/internal/middleware"
)

// gstHandler handles HTTP requests for GST F5 returns.
type gstHandler struct {
	gstService portssvc.GSTSvc
}

func newGSTHandler(gstService portssvc.GSTSvc) *gstHandler {
	return &gstHandler{
		gstService: gstService,
	}
}

// prepareReturn computes the F5 box amounts for a filing period without
// persisting anything.
func (h *gstHandler) prepareReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	prepareReq := dto.PrepareGSTReturnRequest{}
	if err := c.ShouldBindJSON(&prepareReq); err != nil {
		logger.Error("Failed to bind JSON for PrepareReturn", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	ret, err := h.gstService.PrepareReturn(c.Request.Context(), prepareReq.PeriodStart, prepareReq.PeriodEnd, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to prepare GST return")
		return
	}

	c.JSON(http.StatusOK, dto.ToGSTReturnResponse(ret))
}

// saveDraftReturn upserts the draft return for its filing period.
func (h *gstHandler) saveDraftReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	saveReq := dto.SaveGSTReturnRequest{}
	if err := c.ShouldBindJSON(&saveReq); err != nil {
		logger.Error("Failed to bind JSON for SaveDraftReturn", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	ret, err := h.gstService.SaveDraftReturn(c.Request.Context(), saveReq, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to save GST return")
		return
	}

	logger.Info("Draft GST return saved", slog.String("return_id", ret.ReturnID))
	c.JSON(http.StatusOK, dto.ToGSTReturnResponse(ret))
}

// finalizeReturn seals a draft return and posts its settlement entry.
func (h *gstHandler) finalizeReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	returnID := c.Param("returnID")

	finalizeReq := dto.FinalizeGSTReturnRequest{}
	if err := c.ShouldBindJSON(&finalizeReq); err != nil {
		logger.Error("Failed to bind JSON for FinalizeReturn", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	ret, err := h.gstService.FinalizeReturn(c.Request.Context(), returnID, finalizeReq.SubmissionReference, finalizeReq.SubmissionDate, userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to finalize GST return")
		return
	}

	logger.Info("GST return finalized", slog.String("return_id", returnID), slog.String("submission_ref", finalizeReq.SubmissionReference))
	c.JSON(http.StatusOK, dto.ToGSTReturnResponse(ret))
}

// getReturn retrieves a GST return by id.
func (h *gstHandler) getReturn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	returnID := c.Param("returnID")

	ret, err := h.gstService.GetReturnByID(c.Request.Context(), returnID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve GST return")
		return
	}

	c.JSON(http.StatusOK, dto.ToGSTReturnResponse(ret))
}

// listReturns returns all GST returns, newest period first.
func (h *gstHandler) listReturns(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	returns, err := h.gstService.ListReturns(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list GST returns")
		return
	}

	responses := make([]dto.GSTReturnResponse, len(returns))
	for i := range returns {
		responses[i] = dto.ToGSTReturnResponse(&returns[i])
	}
	c.JSON(http.StatusOK, responses)
}

// registerGSTRoutes registers GST return routes.
func registerGSTRoutes(group *gin.RouterGroup, gstService portssvc.GSTSvc) {
	h := newGSTHandler(gstService)

	returns := group.Group("/gst/returns")
	{
		returns.POST("/prepare", h.prepareReturn)
		returns.POST("", h.saveDraftReturn)
		returns.GET("", h.listReturns)
		returns.GET("/:returnID", h.getReturn)
		returns.POST("/:returnID/finalize", h.finalizeReturn)
	}
}
