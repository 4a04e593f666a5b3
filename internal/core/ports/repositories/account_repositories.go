package repositories

import (
	"context"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
)

// AccountRepository is the chart-of-accounts directory contract the ledger
// core consumes. Account management beyond lookups lives outside the core.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// FindAccountsByIDs returns the found accounts keyed by id; missing ids
	// are simply absent from the map.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	ListActiveAccounts(ctx context.Context) ([]domain.Account, error)
}

// TaxCodeRepository is the tax-code registry contract.
type TaxCodeRepository interface {
	SaveTaxCode(ctx context.Context, taxCode domain.TaxCode) error
	FindTaxCodeByCode(ctx context.Context, code string) (*domain.TaxCode, error)

	// FindTaxCodesByCodes returns the found tax codes keyed by code; missing
	// codes are simply absent from the map.
	FindTaxCodesByCodes(ctx context.Context, codes []string) (map[string]domain.TaxCode, error)

	ListTaxCodes(ctx context.Context) ([]domain.TaxCode, error)
}

// SequenceRepository issues unique, monotonically increasing entry numbers
// per series.
type SequenceRepository interface {
	// NextNumber returns the next formatted number for the series,
	// e.g. "JE-000042".
	NextNumber(ctx context.Context, series string) (string, error)
}
