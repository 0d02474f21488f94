package repositories

import (
	"context"

	"github.com/SscSPs/bitcoin_price_app/internal/core/domain"
)

// FeedFetcher retrieves the upstream price index. Implementations make a
// single attempt and report transport or decoding problems as errors
// wrapping apperrors.ErrFetch.
type FeedFetcher interface {
	FetchFeed(ctx context.Context) (*domain.RawFeed, error)
}

// FeedFetcherFunc adapts a function to the FeedFetcher interface.
type FeedFetcherFunc func(ctx context.Context) (*domain.RawFeed, error)

func (f FeedFetcherFunc) FetchFeed(ctx context.Context) (*domain.RawFeed, error) {
	return f(ctx)
}
