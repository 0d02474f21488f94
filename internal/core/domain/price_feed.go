package domain

import (
	"bytes"
	"encoding/json"
)

// RawFeed is the upstream Bitcoin Price Index payload (CoinDesk BPI shape).
// It is decoded once at the HTTP boundary and validated with IsValid.
type RawFeed struct {
	Time       *FeedTime           `json:"time,omitempty"`
	Disclaimer string              `json:"disclaimer,omitempty"`
	ChartName  string              `json:"chartName,omitempty"`
	BPI        map[string]BPIEntry `json:"bpi,omitempty"`
}

// FeedTime carries the three representations the upstream uses for the
// moment the index was last updated.
type FeedTime struct {
	Updated    string `json:"updated"`              // "Mar 29, 2025 11:53:00 UTC"
	UpdatedISO string `json:"updatedISO,omitempty"` // "2025-03-29T11:53:00+00:00"
	UpdatedUK  string `json:"updateduk,omitempty"`  // "Mar 29, 2025 at 11:53 GMT"
}

// BPIEntry is one currency of the price index. RateFloat is optional; when
// absent the locale formatted Rate string is authoritative.
type BPIEntry struct {
	Code        string   `json:"code"`
	Symbol      string   `json:"symbol,omitempty"`
	Rate        string   `json:"rate"`
	Description string   `json:"description,omitempty"`
	RateFloat   *float64 `json:"rate_float,omitempty"`
}

// IsValid reports whether the feed is structurally usable: non-nil, with a
// time block and at least one bpi entry.
func (f *RawFeed) IsValid() bool {
	return f != nil && f.Time != nil && len(f.BPI) > 0
}

// IsValidFeed is the validity gate applied to every fetched payload.
func IsValidFeed(f *RawFeed) bool {
	return f.IsValid()
}

// CurrencyRate is one currency of a TransformedFeed.
type CurrencyRate struct {
	Code        string  `json:"code"`
	DisplayName string  `json:"displayName"`
	Rate        float64 `json:"rate"`
	Estimated   bool    `json:"estimated"`
}

// CurrencyRates keeps currencies in discovery order and renders as a JSON
// object keyed by code.
type CurrencyRates []CurrencyRate

// Get returns the entry for code.
func (c CurrencyRates) Get(code string) (CurrencyRate, bool) {
	for _, r := range c {
		if r.Code == code {
			return r, true
		}
	}
	return CurrencyRate{}, false
}

// Has reports whether code is present.
func (c CurrencyRates) Has(code string) bool {
	_, ok := c.Get(code)
	return ok
}

// Codes returns the currency codes in order.
func (c CurrencyRates) Codes() []string {
	codes := make([]string, len(c))
	for i, r := range c {
		codes[i] = r.Code
	}
	return codes
}

// MarshalJSON renders {"USD": {...}, "EUR": {...}} preserving order.
func (c CurrencyRates) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(r.Code)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// TransformedFeed is the normalized, enriched view of a RawFeed.
type TransformedFeed struct {
	UpdateTime string        `json:"updateTime"` // yyyy/MM/dd HH:mm:ss
	Currencies CurrencyRates `json:"currencies"`
}
