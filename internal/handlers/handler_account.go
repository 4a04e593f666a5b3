package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	portsrepo "github.com/smebooks/sme_ledger_app/internal/core/ports/repositories"
	"github.com/smebooks/sme_ledger_app/internal/dto"
	"github.com/smebooks/sme_ledger_app/internal/middleware"
)

// accountHandler handles HTTP requests for the chart of accounts and the tax
// code registry. Both are thin directories without posting logic, so the
// handler works against the repositories directly.
type accountHandler struct {
	accountRepo portsrepo.AccountRepository
	taxCodeRepo portsrepo.TaxCodeRepository
}

func newAccountHandler(accountRepo portsrepo.AccountRepository, taxCodeRepo portsrepo.TaxCodeRepository) *accountHandler {
	return &accountHandler{
		accountRepo: accountRepo,
		taxCodeRepo: taxCodeRepo,
	}
}

// createAccount registers a chart account.
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	createReq := dto.CreateAccountRequest{}
	if err := c.ShouldBindJSON(&createReq); err != nil {
		logger.Error("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Code:        createReq.Code,
		Name:        createReq.Name,
		AccountType: domain.AccountType(createReq.AccountType),
		Description: createReq.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := h.accountRepo.SaveAccount(c.Request.Context(), account); err != nil {
		respondServiceError(c, logger, err, "Failed to create account")
		return
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	c.JSON(http.StatusCreated, account)
}

// getAccount retrieves an account by id.
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("accountID")

	account, err := h.accountRepo.FindAccountByID(c.Request.Context(), accountID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve account")
		return
	}

	c.JSON(http.StatusOK, account)
}

// listAccounts returns all active accounts in chart code order.
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.accountRepo.ListActiveAccounts(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, accounts)
}

// createTaxCode registers a tax code.
func (h *accountHandler) createTaxCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	createReq := dto.CreateTaxCodeRequest{}
	if err := c.ShouldBindJSON(&createReq); err != nil {
		logger.Error("Failed to bind JSON for CreateTaxCode", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	now := time.Now()
	taxCode := domain.TaxCode{
		Code:        createReq.Code,
		Description: createReq.Description,
		Rate:        createReq.Rate,
		BoxMapping:  domain.GSTBoxMapping(createReq.BoxMapping),
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := h.taxCodeRepo.SaveTaxCode(c.Request.Context(), taxCode); err != nil {
		respondServiceError(c, logger, err, "Failed to create tax code")
		return
	}

	logger.Info("Tax code created", slog.String("code", taxCode.Code), slog.String("box_mapping", string(taxCode.BoxMapping)))
	c.JSON(http.StatusCreated, taxCode)
}

// listTaxCodes returns all tax codes.
func (h *accountHandler) listTaxCodes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	taxCodes, err := h.taxCodeRepo.ListTaxCodes(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list tax codes")
		return
	}

	c.JSON(http.StatusOK, taxCodes)
}

// registerAccountRoutes registers chart-of-accounts and tax code routes.
func registerAccountRoutes(group *gin.RouterGroup, accountRepo portsrepo.AccountRepository, taxCodeRepo portsrepo.TaxCodeRepository) {
	h := newAccountHandler(accountRepo, taxCodeRepo)

	accounts := group.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
	}

	taxCodes := group.Group("/tax-codes")
	{
		taxCodes.POST("", h.createTaxCode)
		taxCodes.GET("", h.listTaxCodes)
	}
}
