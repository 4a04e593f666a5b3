package repositories

import (
	"context"
	"time"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
)

// GSTReturnRepository defines persistence operations for GST returns.
type GSTReturnRepository interface {
	SaveReturn(ctx context.Context, ret domain.GSTReturn) error

	// UpdateDraftReturn replaces the box amounts and due date of a Draft
	// return. Returns apperrors.ErrConflict if the return is no longer Draft.
	UpdateDraftReturn(ctx context.Context, ret domain.GSTReturn) error

	FindReturnByID(ctx context.Context, returnID string) (*domain.GSTReturn, error)

	// FindReturnByPeriod returns the return covering exactly [start, end], or
	// apperrors.ErrNotFound. Used to keep the id stable across repeated draft
	// saves of the same period.
	FindReturnByPeriod(ctx context.Context, periodStart, periodEnd time.Time) (*domain.GSTReturn, error)

	ListReturns(ctx context.Context) ([]domain.GSTReturn, error)

	// MarkReturnSubmitted seals a Draft return: sets Submitted status, the
	// submission reference/date and the settlement entry link. The Draft
	// guard is enforced in SQL; a non-Draft return yields apperrors.ErrConflict.
	MarkReturnSubmitted(ctx context.Context, returnID string, submissionRef string, submissionDate time.Time, settlementEntryID string, userID string, updatedAt time.Time) error
}
