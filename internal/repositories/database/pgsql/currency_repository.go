package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bitcoin_price_app/internal/apperrors"
	"github.com/SscSPs/bitcoin_price_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bitcoin_price_app/internal/core/ports/repositories"
	"github.com/SscSPs/bitcoin_price_app/internal/models"
	"github.com/SscSPs/bitcoin_price_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const currencyColumns = `id, code, name, created_at, updated_at`

type PgxCurrencyRepository struct {
	BaseRepository
}

// NewCurrencyRepository creates a new repository for currency data.
func NewCurrencyRepository(db DBTX) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var c models.Currency
	err := row.Scan(&c.ID, &c.Code, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// SaveCurrency inserts a new currency and returns it with the generated ID.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currency (code, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + currencyColumns + `;
	`
	saved, err := scanCurrency(r.DB.QueryRow(ctx, query,
		modelCurr.Code,
		modelCurr.Name,
		modelCurr.CreatedAt,
		modelCurr.UpdatedAt,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: currency code %s", apperrors.ErrDuplicate, modelCurr.Code)
		}
		return nil, fmt.Errorf("failed to save currency %s: %w", modelCurr.Code, err)
	}

	domainCurr := mapping.ToDomainCurrency(saved)
	return &domainCurr, nil
}

// UpdateCurrency overwrites code, name and updated_at of the row with currency.ID.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error) {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		UPDATE currency
		SET code = $1, name = $2, updated_at = $3
		WHERE id = $4
		RETURNING ` + currencyColumns + `;
	`
	updated, err := scanCurrency(r.DB.QueryRow(ctx, query,
		modelCurr.Code,
		modelCurr.Name,
		modelCurr.UpdatedAt,
		modelCurr.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: currency code %s", apperrors.ErrDuplicate, modelCurr.Code)
		}
		return nil, fmt.Errorf("failed to update currency %d: %w", modelCurr.ID, err)
	}

	domainCurr := mapping.ToDomainCurrency(updated)
	return &domainCurr, nil
}

// DeleteCurrency removes the row with the given ID.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM currency WHERE id = $1;`, id)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete currency", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindCurrencyByID retrieves a currency by its numeric ID.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currency WHERE id = $1;`

	modelCurr, err := scanCurrency(r.DB.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find currency by id", err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currency WHERE code = $1;`

	modelCurr, err := scanCurrency(r.DB.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find currency by code", err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currency ORDER BY code;`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query currencies", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan currencies", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
