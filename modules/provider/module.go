package provider

import (
	"fmt"

	"localxp-api/core/cache"
	"localxp-api/core/clock"
	"localxp-api/core/config"
	"localxp-api/core/constants"
	"localxp-api/core/logger"
	"localxp-api/core/metrics"
	"localxp-api/core/storage"
	"localxp-api/modules/provider/repository"
	"localxp-api/modules/provider/service"
)

// Deps are the shared handles the sources are built on. Nil handles disable
// the sources that need them.
type Deps struct {
	Config  *config.Config
	Clock   clock.Clock
	Cache   cache.Cache
	DB      repository.Selector
	S3      storage.ObjectReader
	Metrics *metrics.Metrics
}

// Init builds the base catalog source and the aggregator over every enabled provider
func Init(d Deps) (service.Source, *service.Aggregator, error) {
	cfg := d.Config

	var base service.Source = service.NewStaticSource(d.Clock)
	if cfg.S3.Enabled && d.S3 != nil {
		base = service.NewSnapshotSource(repository.NewSnapshotRepository(d.S3, cfg.S3.Bucket, cfg.S3.Key))
	}

	wrap := func(src service.Source) service.Source {
		return service.WithCache(service.WithBreaker(src, service.DefaultBreakerSettings), d.Cache, cfg.Cache.ProviderTTL)
	}

	var sources []service.Source
	if p := cfg.Providers.Viator; p.Enabled {
		sources = append(sources, wrap(service.NewViatorSource(p.BaseURL, p.APIKey, constants.ProviderHTTPTimeout)))
	}
	if p := cfg.Providers.GetYourGuide; p.Enabled {
		sources = append(sources, wrap(service.NewGetYourGuideSource(p.BaseURL, p.APIKey, constants.ProviderHTTPTimeout)))
	}
	if p := cfg.Providers.Fever; p.Enabled {
		fever, err := service.NewFeverSource(p.BaseURL, constants.ProviderHTTPTimeout, d.Clock)
		if err != nil {
			return nil, nil, fmt.Errorf("fever source: %w", err)
		}
		sources = append(sources, wrap(fever))
	}
	if cfg.Database.Enabled && d.DB != nil {
		partner := service.NewPartnerSource(repository.NewPartnerRepository(d.DB), d.Clock)
		sources = append(sources, service.WithBreaker(partner, service.DefaultBreakerSettings))
	}

	agg := service.NewAggregator(d.Metrics, sources...)
	logger.Info("Provider:Init", "base", base.Name(), "sources", agg.Sources())
	return base, agg, nil
}
