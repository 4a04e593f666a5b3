package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smebooks/sme_ledger_app/internal/apperrors"
	"github.com/smebooks/sme_ledger_app/internal/core/domain"
	portsrepo "github.com/smebooks/sme_ledger_app/internal/core/ports/repositories"
	"github.com/smebooks/sme_ledger_app/internal/models"
	"github.com/smebooks/sme_ledger_app/internal/utils/mapping"
)

type PgxTaxCodeRepository struct {
	BaseRepository
}

// newPgxTaxCodeRepository creates a new repository for tax code data.
func newPgxTaxCodeRepository(pool *pgxpool.Pool) portsrepo.TaxCodeRepository {
	return &PgxTaxCodeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TaxCodeRepository = (*PgxTaxCodeRepository)(nil)

const taxCodeColumns = `
	code, description, rate, box_mapping, is_active,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanTaxCode(row pgx.Row) (models.TaxCode, error) {
	var m models.TaxCode
	err := row.Scan(
		&m.Code, &m.Description, &m.Rate, &m.BoxMapping, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveTaxCode persists a new tax code.
func (r *PgxTaxCodeRepository) SaveTaxCode(ctx context.Context, taxCode domain.TaxCode) error {
	m := mapping.ToModelTaxCode(taxCode)
	query := `
		INSERT INTO tax_codes (` + taxCodeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.Code, m.Description, m.Rate, m.BoxMapping, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert tax code "+m.Code, err)
	}
	return nil
}

// FindTaxCodeByCode retrieves a tax code by its code.
func (r *PgxTaxCodeRepository) FindTaxCodeByCode(ctx context.Context, code string) (*domain.TaxCode, error) {
	query := `SELECT ` + taxCodeColumns + ` FROM tax_codes WHERE code = $1;`

	m, err := scanTaxCode(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find tax code "+code, err)
	}

	taxCode := mapping.ToDomainTaxCode(m)
	return &taxCode, nil
}

// FindTaxCodesByCodes retrieves a batch of tax codes keyed by code. Missing
// codes are absent from the map, not an error.
func (r *PgxTaxCodeRepository) FindTaxCodesByCodes(ctx context.Context, codes []string) (map[string]domain.TaxCode, error) {
	if len(codes) == 0 {
		return map[string]domain.TaxCode{}, nil
	}

	query := `SELECT ` + taxCodeColumns + ` FROM tax_codes WHERE code = ANY($1);`

	rows, err := r.Pool.Query(ctx, query, codes)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tax codes by codes", err)
	}
	defer rows.Close()

	taxCodes := make(map[string]domain.TaxCode, len(codes))
	for rows.Next() {
		m, err := scanTaxCode(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tax code row", err)
		}
		taxCodes[m.Code] = mapping.ToDomainTaxCode(m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating tax code rows", err)
	}
	return taxCodes, nil
}

// ListTaxCodes returns all tax codes in code order.
func (r *PgxTaxCodeRepository) ListTaxCodes(ctx context.Context) ([]domain.TaxCode, error) {
	query := `SELECT ` + taxCodeColumns + ` FROM tax_codes ORDER BY code;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query tax codes", err)
	}
	defer rows.Close()

	taxCodes := []domain.TaxCode{}
	for rows.Next() {
		m, err := scanTaxCode(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan tax code row", err)
		}
		taxCodes = append(taxCodes, mapping.ToDomainTaxCode(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating tax code rows", err)
	}
	return taxCodes, nil
}
