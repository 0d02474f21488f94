package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/bitcoin_price_app/internal/apperrors"
	"github.com/SscSPs/bitcoin_price_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bitcoin_price_app/internal/core/ports/repositories"
	"github.com/SscSPs/bitcoin_price_app/internal/core/services"
	"github.com/SscSPs/bitcoin_price_app/internal/platform/metrics"
	"github.com/SscSPs/bitcoin_price_app/internal/repositories/database/memory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func floatPtr(f float64) *float64 { return &f }

func usdOnlyFeed(rate float64) *domain.RawFeed {
	return &domain.RawFeed{
		Time: &domain.FeedTime{Updated: "Mar 29, 2025 11:53:00 UTC"},
		BPI: map[string]domain.BPIEntry{
			"USD": {Code: "USD", Rate: "50,000.0000", RateFloat: floatPtr(rate)},
		},
	}
}

type PriceFeedServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memory.CurrencyRepository
	registry *prometheus.Registry
	metrics  *metrics.FeedMetrics
	fixedNow time.Time
}

func (suite *PriceFeedServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = memory.NewCurrencyRepository()
	for _, c := range []domain.Currency{
		{Code: "USD", Name: "US Dollar"},
		{Code: "JPY", Name: "Japanese Yen"},
		{Code: "CNY", Name: "Chinese Yuan"},
	} {
		_, err := suite.store.SaveCurrency(suite.ctx, c)
		suite.Require().NoError(err)
	}
	suite.registry = prometheus.NewRegistry()
	suite.metrics = metrics.NewFeedMetrics(suite.registry)
	suite.fixedNow = time.Date(2025, 3, 29, 11, 53, 0, 0, time.UTC)
}

func (suite *PriceFeedServiceTestSuite) newService(fetch portsrepo.FeedFetcherFunc) *services.PriceFeedService {
	return services.NewPriceFeedService(fetch, suite.store,
		services.WithFeedMetrics(suite.metrics),
		services.WithClock(func() time.Time { return suite.fixedNow }),
	)
}

func (suite *PriceFeedServiceTestSuite) TestTransformedFeed_BackFillsReferenceCurrencies() {
	svc := suite.newService(func(context.Context) (*domain.RawFeed, error) {
		return usdOnlyFeed(50000.0), nil
	})

	out := svc.TransformedFeed(suite.ctx)

	suite.Equal("2025/03/29 11:53:00", out.UpdateTime)
	suite.Equal([]string{"USD", "CNY", "JPY"}, out.Currencies.Codes())

	usd, _ := out.Currencies.Get("USD")
	suite.Equal(domain.CurrencyRate{Code: "USD", DisplayName: "US Dollar", Rate: 50000.0, Estimated: false}, usd)

	for _, code := range []string{"JPY", "CNY"} {
		got, ok := out.Currencies.Get(code)
		suite.Require().True(ok, code)
		suite.True(got.Estimated, code)
		suite.Equal(50000.0*services.USDRatio(code), got.Rate, code)
	}
	jpy, _ := out.Currencies.Get("JPY")
	suite.Equal("Japanese Yen", jpy.DisplayName)
	suite.NoError(testutil.GatherAndCompare(suite.registry, strings.NewReader(`
# HELP price_feed_estimated_currencies Currencies back-filled with estimated rates in the last transformed feed.
# TYPE price_feed_estimated_currencies gauge
price_feed_estimated_currencies 2
`), "price_feed_estimated_currencies"))
}

func (suite *PriceFeedServiceTestSuite) TestTransformedFeed_FetchErrorFallsBackToSynthetic() {
	svc := suite.newService(func(context.Context) (*domain.RawFeed, error) {
		return nil, fmt.Errorf("%w: connection refused", apperrors.ErrFetch)
	})

	out := svc.TransformedFeed(suite.ctx)

	suite.Require().NotNil(out)
	suite.NotEmpty(out.Currencies)
	usd, ok := out.Currencies.Get("USD")
	suite.Require().True(ok)
	suite.Equal(57231.4983, usd.Rate)
	suite.False(usd.Estimated)
	suite.Equal("2025/03/29 11:53:00", out.UpdateTime)

	gbp, _ := out.Currencies.Get("GBP")
	suite.Equal("GBP (no display name)", gbp.DisplayName)

	jpy, ok := out.Currencies.Get("JPY")
	suite.Require().True(ok)
	suite.True(jpy.Estimated)
	suite.Equal(57231.4983*0.009, jpy.Rate)
}

func (suite *PriceFeedServiceTestSuite) TestOriginalFeed_RecordsOutcomes() {
	calls := 0
	svc := suite.newService(func(context.Context) (*domain.RawFeed, error) {
		calls++
		switch calls {
		case 1:
			return usdOnlyFeed(1), nil
		case 2:
			return &domain.RawFeed{Time: &domain.FeedTime{}, BPI: map[string]domain.BPIEntry{}}, nil
		default:
			return nil, errors.New("dial tcp: timeout")
		}
	})

	suite.Equal(usdOnlyFeed(1), svc.OriginalFeed(suite.ctx))
	invalid := svc.OriginalFeed(suite.ctx)
	failed := svc.OriginalFeed(suite.ctx)

	suite.True(domain.IsValidFeed(invalid))
	suite.Contains(invalid.BPI, "USD")
	suite.True(domain.IsValidFeed(failed))
	suite.Equal(3, calls)

	suite.NoError(testutil.GatherAndCompare(suite.registry, strings.NewReader(`
# HELP price_feed_fetch_total Upstream price index fetches by outcome.
# TYPE price_feed_fetch_total counter
price_feed_fetch_total{outcome="fetch_error"} 1
price_feed_fetch_total{outcome="invalid"} 1
price_feed_fetch_total{outcome="ok"} 1
`), "price_feed_fetch_total"))
}

func (suite *PriceFeedServiceTestSuite) TestTransformedFeed_InvalidFeedFallsBack() {
	for name, feed := range map[string]*domain.RawFeed{
		"nil feed":  nil,
		"no time":   {BPI: map[string]domain.BPIEntry{"USD": {Code: "USD", Rate: "1"}}},
		"empty bpi": {Time: &domain.FeedTime{Updated: "Mar 29, 2025 11:53:00 UTC"}, BPI: map[string]domain.BPIEntry{}},
	} {
		suite.Run(name, func() {
			svc := suite.newService(func(context.Context) (*domain.RawFeed, error) { return feed, nil })
			out := svc.TransformedFeed(suite.ctx)
			suite.True(out.Currencies.Has("USD"))
			suite.True(out.Currencies.Has("GBP"))
			suite.True(out.Currencies.Has("EUR"))
		})
	}
}

func (suite *PriceFeedServiceTestSuite) TestTransformedFeed_RateStringAndParseFailures() {
	svc := suite.newService(func(context.Context) (*domain.RawFeed, error) {
		return &domain.RawFeed{
			Time: &domain.FeedTime{Updated: "yesterday-ish"},
			BPI: map[string]domain.BPIEntry{
				"USD": {Code: "USD", Rate: "57,231.4983"},
				"EUR": {Code: "EUR", Rate: "n/a"},
			},
		}, nil
	})

	before := time.Now().Add(-time.Second)
	out := svc.TransformedFeed(suite.ctx)

	usd, _ := out.Currencies.Get("USD")
	suite.Equal(57231.4983, usd.Rate)
	eur, _ := out.Currencies.Get("EUR")
	suite.Equal(0.0, eur.Rate)
	suite.False(eur.Estimated)

	parsed, err := time.ParseInLocation("2006/01/02 15:04:05", out.UpdateTime, time.Local)
	suite.Require().NoError(err)
	suite.False(parsed.Before(before.Truncate(time.Second)))
}

func (suite *PriceFeedServiceTestSuite) TestTransformedFeed_UsesISOWhenPlainMissing() {
	svc := suite.newService(func(context.Context) (*domain.RawFeed, error) {
		feed := usdOnlyFeed(50000)
		feed.Time = &domain.FeedTime{UpdatedISO: "2024-12-31T23:59:58+00:00"}
		return feed, nil
	})

	suite.Equal("2024/12/31 23:59:58", svc.TransformedFeed(suite.ctx).UpdateTime)
}

func (suite *PriceFeedServiceTestSuite) TestTransformedFeed_Idempotent() {
	svc := suite.newService(func(context.Context) (*domain.RawFeed, error) {
		return usdOnlyFeed(61000.25), nil
	})

	first := svc.TransformedFeed(suite.ctx)
	second := svc.TransformedFeed(suite.ctx)

	suite.Equal(first.Currencies, second.Currencies)
}

func (suite *PriceFeedServiceTestSuite) TestTransformedFeed_NoUSDUsesDefaultRate() {
	svc := suite.newService(func(context.Context) (*domain.RawFeed, error) {
		return &domain.RawFeed{
			Time: &domain.FeedTime{Updated: "Mar 29, 2025 11:53:00 UTC"},
			BPI:  map[string]domain.BPIEntry{"EUR": {Code: "EUR", RateFloat: floatPtr(49876.1232)}},
		}, nil
	})

	out := svc.TransformedFeed(suite.ctx)

	usd, ok := out.Currencies.Get("USD")
	suite.Require().True(ok)
	suite.True(usd.Estimated)
	suite.Equal(services.DefaultUSDRate*0.5, usd.Rate)
	jpy, _ := out.Currencies.Get("JPY")
	suite.Equal(services.DefaultUSDRate*0.009, jpy.Rate)
}

func TestPriceFeedService(t *testing.T) {
	suite.Run(t, new(PriceFeedServiceTestSuite))
}

// Reference Store failures degrade to defaults and never escape the pipeline.
func TestPriceFeedService_StoreFailuresDegrade(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCurrencyRepository)
	fetcher := new(MockFeedFetcher)

	fetcher.On("FetchFeed", ctx).Return(usdOnlyFeed(50000), nil).Once()
	repo.On("FindCurrencyByCode", ctx, "USD").Return(nil, errors.New("db down")).Once()
	repo.On("ListCurrencies", ctx).Return(nil, errors.New("db down")).Once()

	svc := services.NewPriceFeedService(fetcher, repo)
	out := svc.TransformedFeed(ctx)

	require.Len(t, out.Currencies, 1)
	assert.Equal(t, domain.CurrencyRate{Code: "USD", DisplayName: "USD (no display name)", Rate: 50000}, out.Currencies[0])
	assert.Equal(t, "2025/03/29 11:53:00", out.UpdateTime)
	repo.AssertExpectations(t)
	fetcher.AssertExpectations(t)
}

// A nil *FeedMetrics is accepted; the pipeline then records nothing.
func TestPriceFeedService_WithoutMetrics(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCurrencyRepository)
	repo.On("FindCurrencyByCode", ctx, mock.AnythingOfType("string")).Return(nil, apperrors.ErrNotFound)
	repo.On("ListCurrencies", ctx).Return([]domain.Currency{}, nil).Once()

	svc := services.NewPriceFeedService(portsrepo.FeedFetcherFunc(func(context.Context) (*domain.RawFeed, error) {
		return nil, apperrors.ErrFetch
	}), repo)

	out := svc.TransformedFeed(ctx)
	assert.Equal(t, []string{"EUR", "GBP", "USD"}, out.Currencies.Codes())
}
