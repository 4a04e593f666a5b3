package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smebooks/sme_ledger_app/internal/apperrors"
	portsrepo "github.com/smebooks/sme_ledger_app/internal/core/ports/repositories"
)

type PgxSequenceRepository struct {
	BaseRepository
}

// newPgxSequenceRepository creates a new repository for entry number series.
func newPgxSequenceRepository(pool *pgxpool.Pool) portsrepo.SequenceRepository {
	return &PgxSequenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.SequenceRepository = (*PgxSequenceRepository)(nil)

// NextNumber claims the next value of a series atomically via an upsert. Two
// concurrent callers serialize on the series row, so numbers never repeat.
func (r *PgxSequenceRepository) NextNumber(ctx context.Context, series string) (string, error) {
	query := `
		INSERT INTO sequences (series, last_value)
		VALUES ($1, 1)
		ON CONFLICT (series) DO UPDATE SET last_value = sequences.last_value + 1
		RETURNING last_value;
	`
	var value int64
	if err := r.Pool.QueryRow(ctx, query, series).Scan(&value); err != nil {
		return "", apperrors.NewAppError(500, "failed to claim next number for series "+series, err)
	}
	return fmt.Sprintf("%s-%06d", series, value), nil
}
