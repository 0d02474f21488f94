package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/bitcoin_price_app/internal/apperrors"
	"github.com/SscSPs/bitcoin_price_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bitcoin_price_app/internal/core/ports/repositories"
)

// CurrencyRepository is an in-memory Reference Store. It is safe for
// concurrent use and backs local runs without PGSQL_URL as well as tests.
type CurrencyRepository struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]domain.Currency
}

var _ portsrepo.CurrencyRepositoryFacade = (*CurrencyRepository)(nil)

// NewCurrencyRepository creates an empty store.
func NewCurrencyRepository() *CurrencyRepository {
	return &CurrencyRepository{
		nextID: 1,
		byID:   make(map[int64]domain.Currency),
	}
}

func (r *CurrencyRepository) codeTakenLocked(code string, exceptID int64) bool {
	for id, c := range r.byID {
		if c.Code == code && id != exceptID {
			return true
		}
	}
	return false
}

func (r *CurrencyRepository) SaveCurrency(_ context.Context, currency domain.Currency) (*domain.Currency, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.codeTakenLocked(currency.Code, 0) {
		return nil, fmt.Errorf("%w: currency code %s", apperrors.ErrDuplicate, currency.Code)
	}
	currency.ID = r.nextID
	r.nextID++
	r.byID[currency.ID] = currency
	return &currency, nil
}

func (r *CurrencyRepository) UpdateCurrency(_ context.Context, currency domain.Currency) (*domain.Currency, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[currency.ID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if r.codeTakenLocked(currency.Code, currency.ID) {
		return nil, fmt.Errorf("%w: currency code %s", apperrors.ErrDuplicate, currency.Code)
	}
	existing.Code = currency.Code
	existing.Name = currency.Name
	existing.UpdatedAt = currency.UpdatedAt
	r.byID[currency.ID] = existing
	return &existing, nil
}

func (r *CurrencyRepository) DeleteCurrency(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *CurrencyRepository) FindCurrencyByID(_ context.Context, id int64) (*domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (r *CurrencyRepository) FindCurrencyByCode(_ context.Context, code string) (*domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.byID {
		if c.Code == code {
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// ListCurrencies returns all currencies ordered by code, like the SQL store.
func (r *CurrencyRepository) ListCurrencies(_ context.Context) ([]domain.Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Currency, 0, len(r.byID))
	for _, c := range r.byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}
