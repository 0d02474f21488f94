package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/bitcoin_price_app/internal/apperrors"
	"github.com/SscSPs/bitcoin_price_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bitcoin_price_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bitcoin_price_app/internal/core/ports/services"
	"github.com/SscSPs/bitcoin_price_app/internal/dto"
	"github.com/go-playground/validator/v10"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
	validate     *validator.Validate
	now          func() time.Time
}

// NewCurrencyService creates the Reference Store service. Requests are
// validated against the same binding tags gin uses for the DTOs, so callers
// outside HTTP get identical rules.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	v := validator.New()
	v.SetTagName("binding")
	return &currencyService{
		currencyRepo: currencyRepo,
		validate:     v,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *currencyService) validateRequest(req any) error {
	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: field %s failed on %s", apperrors.ErrValidation, strings.ToLower(fe.Field()), fe.Tag())
		}
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	req.Code = strings.TrimSpace(req.Code)
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	now := s.now()
	saved, err := s.currencyRepo.SaveCurrency(ctx, domain.Currency{
		Code: req.Code,
		Name: req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create currency", slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to create currency in service: %w", err)
	}

	s.LogInfo(ctx, "Currency created", slog.Int64("id", saved.ID), slog.String("code", saved.Code))
	return saved, nil
}

func (s *currencyService) UpdateCurrency(ctx context.Context, id int64, req dto.UpdateCurrencyRequest) (*domain.Currency, error) {
	req.Code = strings.TrimSpace(req.Code)
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	updated, err := s.currencyRepo.UpdateCurrency(ctx, domain.Currency{
		ID:          id,
		Code:        req.Code,
		Name:        req.Name,
		AuditFields: domain.AuditFields{UpdatedAt: s.now()},
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update currency", slog.Int64("id", id))
		}
		return nil, fmt.Errorf("failed to update currency %d in service: %w", id, err)
	}
	return updated, nil
}

func (s *currencyService) DeleteCurrency(ctx context.Context, id int64) error {
	if err := s.currencyRepo.DeleteCurrency(ctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete currency", slog.Int64("id", id))
		}
		return fmt.Errorf("failed to delete currency %d in service: %w", id, err)
	}
	s.LogInfo(ctx, "Currency deleted", slog.Int64("id", id))
	return nil
}

func (s *currencyService) GetCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by id in service: %w", err)
	}
	return currency, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
