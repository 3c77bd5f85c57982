package service

import (
	"context"
	"time"

	"localxp-api/core/logger"
	"localxp-api/core/metrics"
	"localxp-api/modules/experience/entity"

	"golang.org/x/sync/errgroup"
)

// SourceResult is the outcome of one source in a fan-out.
type SourceResult struct {
	Source   string
	Records  []entity.Experience
	Err      error
	Duration time.Duration
}

// Aggregator queries every source in parallel. A failing source contributes
// nothing and never cancels the others.
type Aggregator struct {
	sources []Source
	metrics *metrics.Metrics
}

func NewAggregator(m *metrics.Metrics, sources ...Source) *Aggregator {
	return &Aggregator{sources: sources, metrics: m}
}

func (a *Aggregator) Sources() []string {
	names := make([]string, len(a.sources))
	for i, s := range a.sources {
		names[i] = s.Name()
	}
	return names
}

// FetchAll returns one result per source, in registration order.
func (a *Aggregator) FetchAll(ctx context.Context, location string) []SourceResult {
	results := make([]SourceResult, len(a.sources))

	var g errgroup.Group
	for i, src := range a.sources {
		g.Go(func() error {
			start := time.Now()
			records, err := src.Fetch(ctx, location)
			results[i] = SourceResult{
				Source:   src.Name(),
				Records:  records,
				Err:      err,
				Duration: time.Since(start),
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, r := range results {
		if r.Err != nil {
			a.metrics.ObserveProviderFetch(r.Source, "error")
			logger.Warn("Aggregator:FetchAll:SourceFailed", "source", r.Source, "location", location, "duration", r.Duration, "error", r.Err)
			continue
		}
		a.metrics.ObserveProviderFetch(r.Source, "success")
		logger.Info("Aggregator:FetchAll:SourceDone", "source", r.Source, "location", location, "records", len(r.Records), "duration", r.Duration)
	}
	return results
}
