package dto

import (
	"time"

	"github.com/SscSPs/bitcoin_price_app/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	Code string `json:"code" binding:"required,alpha,uppercase,len=3"`
	Name string `json:"name" binding:"required,max=50"`
}

// UpdateCurrencyRequest defines the replacement code and name of a currency.
type UpdateCurrencyRequest struct {
	Code string `json:"code" binding:"required,alpha,uppercase,len=3"`
	Name string `json:"name" binding:"required,max=50"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:        curr.ID,
		Code:      curr.Code,
		Name:      curr.Name,
		CreatedAt: curr.CreatedAt,
		UpdatedAt: curr.UpdatedAt,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
