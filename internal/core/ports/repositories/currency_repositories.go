package repositories

import (
	"context"

	"github.com/SscSPs/bitcoin_price_app/internal/core/domain"
)

// CurrencyReader defines read operations for the currency Reference Store.
// It is the only view of the store the price feed pipeline gets.
type CurrencyReader interface {
	// FindCurrencyByID retrieves a currency by its numeric identifier.
	FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error)

	// FindCurrencyByCode retrieves a specific currency by its code.
	// Returns apperrors.ErrNotFound when the code is unknown.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies ordered by code.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency persists a new currency and returns it with its assigned ID.
	// Returns apperrors.ErrDuplicate if the code is taken.
	SaveCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error)

	// UpdateCurrency replaces code and name of an existing currency.
	UpdateCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, error)

	// DeleteCurrency removes a currency by ID.
	DeleteCurrency(ctx context.Context, id int64) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
// This is a facade for clients that need access to all operations
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
