package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/bitcoin_price_app/internal/apperrors"
	"github.com/SscSPs/bitcoin_price_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bitcoin_price_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bitcoin_price_app/internal/core/ports/services"
)

// SeedCurrencies is the reference data ensured at startup.
var SeedCurrencies = []domain.Currency{
	{Code: "USD", Name: "US Dollar"},
	{Code: "EUR", Name: "Euro"},
	{Code: "JPY", Name: "Japanese Yen"},
	{Code: "GBP", Name: "British Pound"},
	{Code: "CNY", Name: "Chinese Yuan"},
	{Code: "HKD", Name: "Hong Kong Dollar"},
	{Code: "AUD", Name: "Australian Dollar"},
	{Code: "CAD", Name: "Canadian Dollar"},
	{Code: "SGD", Name: "Singapore Dollar"},
	{Code: "CHF", Name: "Swiss Franc"},
}

type staticDataService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewStaticDataService creates the seeder for reference currencies.
func NewStaticDataService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.StaticDataService {
	return &staticDataService{currencyRepo: currencyRepo}
}

// InitializeStaticData inserts every seed currency whose code is absent.
// Existing rows are left untouched, so running it again is a no-op.
func (s *staticDataService) InitializeStaticData(ctx context.Context) error {
	inserted := 0
	for _, seed := range SeedCurrencies {
		_, err := s.currencyRepo.FindCurrencyByCode(ctx, seed.Code)
		if err == nil {
			continue
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to check seed currency %s: %w", seed.Code, err)
		}

		now := time.Now().UTC()
		seed.AuditFields = domain.AuditFields{CreatedAt: now, UpdatedAt: now}
		if _, err := s.currencyRepo.SaveCurrency(ctx, seed); err != nil {
			// Lost a race with a concurrent writer; the row exists now.
			if errors.Is(err, apperrors.ErrDuplicate) {
				continue
			}
			return fmt.Errorf("failed to seed currency %s: %w", seed.Code, err)
		}
		inserted++
	}

	s.LogInfo(ctx, "Reference currencies initialized", slog.Int("inserted", inserted), slog.Int("total", len(SeedCurrencies)))
	return nil
}
