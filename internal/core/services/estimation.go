package services

import (
	"math"

	"github.com/SscSPs/bitcoin_price_app/internal/core/domain"
)

// DefaultUSDRate is the reference price used for estimation when the
// currencies carry no USD entry.
const DefaultUSDRate = 50000.0

// defaultUSDRatio applies to codes without a known ratio.
const defaultUSDRatio = 0.5

// usdRatios approximates the value of one unit of each currency in USD.
var usdRatios = map[string]float64{
	"JPY": 0.009,
	"CNY": 0.155,
	"HKD": 0.128,
	"TWD": 0.036,
	"AUD": 0.75,
	"CAD": 0.80,
	"SGD": 0.74,
	"CHF": 1.09,
}

// USDRatio returns the fixed ratio used to estimate code from the USD rate.
func USDRatio(code string) float64 {
	if r, ok := usdRatios[code]; ok {
		return r
	}
	return defaultUSDRatio
}

// USDRate returns the USD rate of currencies, or DefaultUSDRate.
func USDRate(currencies domain.CurrencyRates) float64 {
	if usd, ok := currencies.Get("USD"); ok {
		return usd.Rate
	}
	return DefaultUSDRate
}

// FillMissing appends an estimated entry for every reference currency whose
// code is not already present, in reference order. Existing entries are never
// modified. The number of appended entries is returned with the result.
func FillMissing(currencies domain.CurrencyRates, reference []domain.Currency, usdRate float64) (domain.CurrencyRates, int) {
	added := 0
	for _, ref := range reference {
		if ref.Code == "" || currencies.Has(ref.Code) {
			continue
		}
		rate := usdRate * USDRatio(ref.Code)
		if math.IsInf(rate, 0) || math.IsNaN(rate) {
			rate = 0
		}
		currencies = append(currencies, domain.CurrencyRate{
			Code:        ref.Code,
			DisplayName: ref.Name,
			Rate:        rate,
			Estimated:   true,
		})
		added++
	}
	return currencies, added
}
