package services

import (
	"time"

	"github.com/SscSPs/bitcoin_price_app/internal/core/domain"
	"github.com/SscSPs/bitcoin_price_app/internal/utils"
)

const (
	syntheticChartName  = "Bitcoin"
	syntheticDisclaimer = "This data was produced from the CoinDesk Bitcoin Price Index (USD). Non-USD currency data converted using hourly conversion rate from openexchangerates.org"
)

type syntheticQuote struct {
	code        string
	symbol      string
	description string
	rate        float64
}

var syntheticQuotes = []syntheticQuote{
	{code: "USD", symbol: "&dollar;", description: "United States Dollar", rate: 57231.4983},
	{code: "GBP", symbol: "&pound;", description: "British Pound Sterling", rate: 42345.8722},
	{code: "EUR", symbol: "&euro;", description: "Euro", rate: 49876.1232},
}

var ukLocation = loadUKLocation()

func loadUKLocation() *time.Location {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		return time.UTC
	}
	return loc
}

// SyntheticFeed builds the fallback price index served when the upstream is
// unreachable or returns an unusable payload. It always passes
// domain.IsValidFeed and always contains USD.
func SyntheticFeed(now time.Time) *domain.RawFeed {
	utc := now.UTC()
	bpi := make(map[string]domain.BPIEntry, len(syntheticQuotes))
	for _, q := range syntheticQuotes {
		rate := q.rate
		bpi[q.code] = domain.BPIEntry{
			Code:        q.code,
			Symbol:      q.symbol,
			Rate:        utils.FormatRate(q.rate),
			Description: q.description,
			RateFloat:   &rate,
		}
	}

	return &domain.RawFeed{
		Time: &domain.FeedTime{
			Updated:    utc.Format(utils.UpstreamTimeLayout),
			UpdatedISO: utc.Format("2006-01-02T15:04:05+00:00"),
			UpdatedUK:  utc.In(ukLocation).Format(utils.UpstreamUKLayout),
		},
		Disclaimer: syntheticDisclaimer,
		ChartName:  syntheticChartName,
		BPI:        bpi,
	}
}
