package handlers

import (
	"github.com/gin-gonic/gin"

	portsrepo "github.com/smebooks/sme_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/smebooks/sme_ledger_app/internal/core/ports/services"
	"github.com/smebooks/sme_ledger_app/internal/middleware"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	repos *portsrepo.RepositoryProvider,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services, repos)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the specific
// entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	repos *portsrepo.RepositoryProvider,
) {
	// Every v1 route mutates or reads on behalf of a caller, so the identity
	// header is required across the group.
	v1 := r.Group("/api/v1", middleware.IdentityMiddleware())

	registerAccountRoutes(v1, repos.AccountRepo, repos.TaxCodeRepo)
	registerJournalRoutes(v1, services.Journal)
	registerFiscalRoutes(v1, services.Fiscal)
	registerRecurringRoutes(v1, services.Recurring)
	registerGSTRoutes(v1, services.GST)
	registerReportingRoutes(v1, services.Reporting, services.Balance)
}
