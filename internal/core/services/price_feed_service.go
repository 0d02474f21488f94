package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/SscSPs/bitcoin_price_app/internal/apperrors"
	"github.com/SscSPs/bitcoin_price_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bitcoin_price_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bitcoin_price_app/internal/core/ports/services"
	"github.com/SscSPs/bitcoin_price_app/internal/platform/metrics"
	"github.com/SscSPs/bitcoin_price_app/internal/utils"
)

// PriceFeedService runs the normalization pipeline. It keeps no state between
// calls; the fetcher and the reference reader are the only collaborators.
type PriceFeedService struct {
	BaseService
	fetcher  portsrepo.FeedFetcher
	currency portsrepo.CurrencyReader
	metrics  *metrics.FeedMetrics
	now      func() time.Time
}

// PriceFeedOption configures a PriceFeedService.
type PriceFeedOption func(*PriceFeedService)

// WithFeedMetrics records pipeline outcomes on m.
func WithFeedMetrics(m *metrics.FeedMetrics) PriceFeedOption {
	return func(s *PriceFeedService) {
		s.metrics = m
	}
}

// WithClock overrides the time source used for synthetic feeds.
func WithClock(now func() time.Time) PriceFeedOption {
	return func(s *PriceFeedService) {
		s.now = now
	}
}

// NewPriceFeedService creates the pipeline around an upstream fetcher and the
// Reference Store reader.
func NewPriceFeedService(fetcher portsrepo.FeedFetcher, currency portsrepo.CurrencyReader, opts ...PriceFeedOption) *PriceFeedService {
	s := &PriceFeedService{
		fetcher:  fetcher,
		currency: currency,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.PriceFeedSvc = (*PriceFeedService)(nil)

// OriginalFeed fetches the upstream feed once and substitutes the synthetic
// feed when the fetch fails or the payload does not pass the validity gate.
// The result is always valid.
func (s *PriceFeedService) OriginalFeed(ctx context.Context) *domain.RawFeed {
	feed, err := s.fetcher.FetchFeed(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrFetch) {
			err = fmt.Errorf("%w: %v", apperrors.ErrFetch, err)
		}
		s.metrics.ObserveFetch(metrics.OutcomeFetchError)
		s.LogWarn(ctx, err, "Price index fetch failed, serving synthetic feed")
		return SyntheticFeed(s.now())
	}

	if !domain.IsValidFeed(feed) {
		s.metrics.ObserveFetch(metrics.OutcomeInvalid)
		s.LogWarn(ctx, fmt.Errorf("%w: missing time or bpi", apperrors.ErrFeedValidation),
			"Price index payload rejected, serving synthetic feed")
		return SyntheticFeed(s.now())
	}

	s.metrics.ObserveFetch(metrics.OutcomeOK)
	return feed
}

// TransformedFeed normalizes the feed returned by OriginalFeed: the update
// time is reformatted, rates become numbers, each currency gets its display
// name and every reference currency missing from the feed is back-filled
// with an estimated rate.
func (s *PriceFeedService) TransformedFeed(ctx context.Context) *domain.TransformedFeed {
	feed := s.OriginalFeed(ctx)

	updateTime := s.updateTime(ctx, feed.Time)

	codes := make([]string, 0, len(feed.BPI))
	for code := range feed.BPI {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	currencies := make(domain.CurrencyRates, 0, len(codes))
	for _, code := range codes {
		entry := feed.BPI[code]
		currencies = append(currencies, domain.CurrencyRate{
			Code:        code,
			DisplayName: s.displayName(ctx, code),
			Rate:        s.rate(ctx, code, entry),
			Estimated:   false,
		})
	}

	reference, err := s.currency.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reference currencies, skipping estimation")
		reference = nil
	}

	currencies, added := FillMissing(currencies, reference, USDRate(currencies))
	s.metrics.SetEstimated(added)
	if added > 0 {
		s.LogDebug(ctx, "Back-filled currencies with estimated rates", slog.Int("count", added))
	}

	return &domain.TransformedFeed{
		UpdateTime: updateTime,
		Currencies: currencies,
	}
}

func (s *PriceFeedService) updateTime(ctx context.Context, t *domain.FeedTime) string {
	text := t.Updated
	if text == "" {
		text = t.UpdatedISO
	}
	out, err := utils.NormalizeUpdateTime(text)
	if err != nil {
		s.metrics.ObserveParseError(metrics.KindTime)
		s.LogWarn(ctx, err, "Using current time as update time")
	}
	return out
}

func (s *PriceFeedService) rate(ctx context.Context, code string, entry domain.BPIEntry) float64 {
	if entry.RateFloat != nil && !math.IsInf(*entry.RateFloat, 0) && !math.IsNaN(*entry.RateFloat) {
		return *entry.RateFloat
	}
	r, err := utils.ParseRate(entry.Rate)
	if err != nil {
		s.metrics.ObserveParseError(metrics.KindRate)
		s.LogWarn(ctx, err, "Using zero rate", slog.String("code", code))
	}
	return r
}

func (s *PriceFeedService) displayName(ctx context.Context, code string) string {
	c, err := s.currency.FindCurrencyByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Currency lookup failed", slog.String("code", code))
		}
		return DefaultDisplayName(code)
	}
	if c == nil || c.Name == "" {
		return DefaultDisplayName(code)
	}
	return c.Name
}

// DefaultDisplayName is used for feed currencies unknown to the Reference Store.
func DefaultDisplayName(code string) string {
	return code + " (no display name)"
}
