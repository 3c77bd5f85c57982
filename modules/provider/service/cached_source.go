package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"localxp-api/core/cache"
	"localxp-api/core/constants"
	"localxp-api/core/logger"
	"localxp-api/core/utils"
	"localxp-api/modules/experience/entity"

	"github.com/goccy/go-json"
)

// cachedSource serves the last answer per location until ttl expires.
type cachedSource struct {
	next  Source
	cache cache.Cache
	ttl   time.Duration
}

func WithCache(next Source, c cache.Cache, ttl time.Duration) Source {
	if c == nil || ttl <= 0 {
		return next
	}
	return &cachedSource{next: next, cache: c, ttl: ttl}
}

// CacheKey is provider:<name>:<location-slug>.
func CacheKey(source, location string) string {
	return fmt.Sprintf("%s:%s:%s", constants.RedisKeyProviderPrefix, source, utils.Slug(location))
}

func (s *cachedSource) Name() string { return s.next.Name() }

func (s *cachedSource) Fetch(ctx context.Context, location string) ([]entity.Experience, error) {
	key := CacheKey(s.next.Name(), location)

	raw, err := s.cache.Get(ctx, key)
	switch {
	case err == nil:
		var records []entity.Experience
		if decodeErr := json.Unmarshal(raw, &records); decodeErr == nil {
			logger.Debug("Provider:Cache:Hit", "key", key, "records", len(records))
			return records, nil
		}
		logger.Warn("Provider:Cache:Decode", "key", key)
	case !errors.Is(err, cache.ErrMiss):
		logger.Warn("Provider:Cache:Get", "key", key, "error", err)
	}

	records, err := s.next.Fetch(ctx, location)
	if err != nil {
		return nil, err
	}

	if encoded, encErr := json.Marshal(records); encErr == nil {
		if setErr := s.cache.Set(ctx, key, encoded, s.ttl); setErr != nil {
			logger.Warn("Provider:Cache:Set", "key", key, "error", setErr)
		}
	}
	return records, nil
}
