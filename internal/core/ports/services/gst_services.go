package services

import (
	"context"
	"time"

	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	"github.com/smebooks/sme_ledger_app/internal/dto"
)

// GSTSvc computes GST returns from posted activity and manages their
// draft/finalize lifecycle.
type GSTSvc interface {
	// PrepareReturn classifies Posted tax lines in [from, to] into the F5
	// boxes and returns a transient Draft return. Nothing is persisted.
	PrepareReturn(ctx context.Context, from, to time.Time, userID string) (*domain.GSTReturn, error)

	// SaveDraftReturn upserts the return for its period, keeping the id
	// stable across repeated saves.
	SaveDraftReturn(ctx context.Context, req dto.SaveGSTReturnRequest, userID string) (*domain.GSTReturn, error)

	// FinalizeReturn seals a Draft return: generates the settlement entry
	// through the posting engine, links it and sets Submitted. Finalizing an
	// already-Submitted return fails with ErrReturnAlreadyFinalized.
	FinalizeReturn(ctx context.Context, returnID string, submissionRef string, submissionDate time.Time, userID string) (*domain.GSTReturn, error)

	GetReturnByID(ctx context.Context, returnID string) (*domain.GSTReturn, error)
	ListReturns(ctx context.Context) ([]domain.GSTReturn, error)
}
