package services

import (
	"context"
	"time"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	"github.com/smebooks/sme_ledger_app/internal/dto"
)

// RecurrenceSvc materializes due recurring patterns into draft entries.
type RecurrenceSvc interface {
	CreatePattern(ctx context.Context, req dto.CreatePatternRequest, userID string) (*domain.RecurringPattern, error)
	GetPatternByID(ctx context.Context, patternID string) (*domain.RecurringPattern, error)
	ListPatterns(ctx context.Context) ([]domain.RecurringPattern, error)
	DeactivatePattern(ctx context.Context, patternID string, userID string) error

	// Run generates a draft entry for every pattern due as of asOf, advancing
	// a pattern's next run date only after its draft was created successfully,
	// so a failed pattern is retried on the next run.
	Run(ctx context.Context, asOf time.Time, userID string) (*dto.RecurrenceRunResult, error)
}
