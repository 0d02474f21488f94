package services

import (
	"context"

	"github.com/SscSPs/bitcoin_price_app/internal/core/domain"
)

// PriceFeedSvc exposes the Bitcoin price index, raw and normalized.
// Neither method fails: upstream problems degrade to synthetic or
// estimated data.
type PriceFeedSvc interface {
	// OriginalFeed returns the upstream feed, or a synthetic one when the
	// upstream is unreachable or invalid.
	OriginalFeed(ctx context.Context) *domain.RawFeed

	// TransformedFeed returns the normalized feed enriched with display
	// names and back-filled estimated currencies.
	TransformedFeed(ctx context.Context) *domain.TransformedFeed
}
