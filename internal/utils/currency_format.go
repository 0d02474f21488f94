package utils

import (
	"fmt"
	"math"
	"regexp"

	"github.com/SscSPs/bitcoin_price_app/internal/apperrors"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var nonRateChars = regexp.MustCompile(`[^0-9.]`)

var ratePrinter = message.NewPrinter(language.English)

// ParseRate converts a locale formatted rate string such as "57,231.4983"
// to a float64. Everything except digits and '.' is dropped first.
// On failure it returns 0 together with an error wrapping apperrors.ErrRateParse;
// callers treat that error as non-fatal.
func ParseRate(s string) (float64, error) {
	cleaned := nonRateChars.ReplaceAllString(s, "")
	if cleaned == "" {
		return 0, fmt.Errorf("%w: %q has no digits", apperrors.ErrRateParse, s)
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", apperrors.ErrRateParse, s, err)
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("%w: %q is out of range", apperrors.ErrRateParse, s)
	}
	return f, nil
}

// FormatRate renders a rate the way the upstream index does: four decimals
// with English thousands grouping, e.g. 57231.4983 -> "57,231.4983".
func FormatRate(rate float64) string {
	return ratePrinter.Sprintf("%.4f", rate)
}
