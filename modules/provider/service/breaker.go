package service

import (
	"context"
	"errors"
	"time"

	"localxp-api/core/logger"
	"localxp-api/modules/experience/entity"

	gobreaker "github.com/sony/gobreaker/v2"
)

type BreakerSettings struct {
	// consecutive failures that open the circuit
	MaxFailures uint32
	// how long the circuit stays open before a trial request
	OpenTimeout time.Duration
}

var DefaultBreakerSettings = BreakerSettings{MaxFailures: 3, OpenTimeout: 2 * time.Minute}

// breakerSource fails fast while the upstream's circuit is open.
type breakerSource struct {
	next Source
	cb   *gobreaker.CircuitBreaker[[]entity.Experience]
}

func WithBreaker(next Source, settings BreakerSettings) Source {
	if settings.MaxFailures == 0 {
		settings.MaxFailures = DefaultBreakerSettings.MaxFailures
	}
	cb := gobreaker.NewCircuitBreaker[[]entity.Experience](gobreaker.Settings{
		Name:        next.Name(),
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     settings.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= settings.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Provider:Breaker:StateChange", "source", name, "from", from.String(), "to", to.String())
		},
	})
	return &breakerSource{next: next, cb: cb}
}

func (s *breakerSource) Name() string { return s.next.Name() }

func (s *breakerSource) Fetch(ctx context.Context, location string) ([]entity.Experience, error) {
	return s.cb.Execute(func() ([]entity.Experience, error) {
		return s.next.Fetch(ctx, location)
	})
}
