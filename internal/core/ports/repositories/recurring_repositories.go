package repositories

import (
	"context"
	"time"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
)

// RecurringRepository defines persistence operations for recurring patterns.
type RecurringRepository interface {
	// SavePattern persists a pattern and its template lines atomically.
	SavePattern(ctx context.Context, pattern domain.RecurringPattern, lines []domain.PatternLine) error

	FindPatternByID(ctx context.Context, patternID string) (*domain.RecurringPattern, error)
	FindPatternLines(ctx context.Context, patternID string) ([]domain.PatternLine, error)
	ListPatterns(ctx context.Context) ([]domain.RecurringPattern, error)

	// ListDuePatterns returns active patterns whose next run date is on or
	// before asOf, ordered by next run date.
	ListDuePatterns(ctx context.Context, asOf time.Time) ([]domain.RecurringPattern, error)

	// AdvancePattern moves the pattern's next run date forward after a
	// successful generation, optionally deactivating it.
	AdvancePattern(ctx context.Context, patternID string, nextRunDate time.Time, isActive bool, userID string, updatedAt time.Time) error

	DeactivatePattern(ctx context.Context, patternID string, userID string, updatedAt time.Time) error
}
