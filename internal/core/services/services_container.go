package services

import (
	portsrepo "github.com/SscSPs/bitcoin_price_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bitcoin_price_app/internal/core/ports/services"
	"github.com/SscSPs/bitcoin_price_app/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, fetcher portsrepo.FeedFetcher, feedMetrics *metrics.FeedMetrics) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency:   NewCurrencyService(repos.CurrencyRepo),
		PriceFeed:  NewPriceFeedService(fetcher, repos.CurrencyRepo, WithFeedMetrics(feedMetrics)),
		StaticData: NewStaticDataService(repos.CurrencyRepo),
	}
}
