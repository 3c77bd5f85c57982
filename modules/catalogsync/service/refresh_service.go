package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync/atomic"
	"time"

	"localxp-api/core/errors"
	"localxp-api/core/logger"
	"localxp-api/core/metrics"
	"localxp-api/modules/experience/entity"
	"localxp-api/modules/experience/repository"
	providerService "localxp-api/modules/provider/service"
)

var (
	ErrRefreshInProgress = stderrors.New("catalog refresh already in progress")
	ErrAllSourcesFailed  = stderrors.New("every listing source failed")
)

// Fetcher fans a location out to the listing sources.
type Fetcher interface {
	FetchAll(ctx context.Context, location string) []providerService.SourceResult
}

// SourceReport summarises one source's contribution to a refresh.
type SourceReport struct {
	Source   string
	Records  int
	Dropped  int
	Err      error
	Duration time.Duration
}

// Result describes the catalog installed by a successful refresh.
type Result struct {
	Location  string
	Size      int
	Version   int64
	UpdatedAt time.Time
	Sources   []SourceReport
}

type RefreshServiceInterface interface {
	Refresh(ctx context.Context, location string) (*Result, *errors.AppError)
	InProgress() bool
}

// RefreshService rebuilds the catalog from the base source plus every
// provider and swaps it in. Only one refresh runs at a time; others are
// rejected rather than queued.
type RefreshService struct {
	repo            repository.CatalogRepositoryInterface
	base            providerService.Source
	fetcher         Fetcher
	metrics         *metrics.Metrics
	defaultLocation string
	running         atomic.Bool
}

func NewRefreshService(
	repo repository.CatalogRepositoryInterface,
	base providerService.Source,
	fetcher Fetcher,
	m *metrics.Metrics,
	defaultLocation string,
) *RefreshService {
	return &RefreshService{
		repo:            repo,
		base:            base,
		fetcher:         fetcher,
		metrics:         m,
		defaultLocation: defaultLocation,
	}
}

func (s *RefreshService) InProgress() bool {
	return s.running.Load()
}

// Refresh replaces the catalog. On any failure the previous catalog stays in place.
func (s *RefreshService) Refresh(ctx context.Context, location string) (*Result, *errors.AppError) {
	if !s.running.CompareAndSwap(false, true) {
		logger.Warn("RefreshService:Refresh:Rejected", "location", location)
		s.metrics.ObserveRefresh("rejected")
		return nil, errors.NewAppError(errors.ErrRefreshInProgress, "A catalog refresh is already running", ErrRefreshInProgress)
	}
	defer s.running.Store(false)

	if location == "" {
		location = s.defaultLocation
	}
	logger.Info("RefreshService:Refresh:Start", "location", location)

	result, err := s.refresh(ctx, location)
	if err != nil {
		logger.Error("RefreshService:Refresh:Error", "location", location, "error", err)
		s.metrics.ObserveRefresh("error")
		return nil, errors.NewAppError(errors.ErrUpstreamFailed, "Catalog refresh failed, previous catalog kept", err)
	}

	s.metrics.ObserveRefresh("success")
	s.metrics.SetCatalogSize(result.Size)
	logger.Info("RefreshService:Refresh:Success", "location", location, "size", result.Size, "version", result.Version)
	return result, nil
}

func (s *RefreshService) refresh(ctx context.Context, location string) (*Result, error) {
	start := time.Now()
	base, err := s.base.Fetch(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("base catalog %s: %w", s.base.Name(), err)
	}
	reports := []SourceReport{{Source: s.base.Name(), Records: len(base), Duration: time.Since(start)}}

	results := s.fetcher.FetchAll(ctx, location)
	if len(results) > 0 && allFailed(results) {
		return nil, fmt.Errorf("%w: %w", ErrAllSourcesFailed, stderrors.Join(sourceErrors(results)...))
	}

	merged, providerReports := merge(base, results)
	reports = append(reports, providerReports...)

	if err := s.repo.ReplaceAll(merged); err != nil {
		return nil, fmt.Errorf("install catalog: %w", err)
	}

	return &Result{
		Location:  location,
		Size:      s.repo.Len(),
		Version:   s.repo.Version(),
		UpdatedAt: s.repo.UpdatedAt(),
		Sources:   reports,
	}, nil
}

// merge keeps the base records as they are and appends valid provider records
// whose id has not been seen yet.
func merge(base []entity.Experience, results []providerService.SourceResult) ([]entity.Experience, []SourceReport) {
	seen := make(map[string]bool, len(base))
	merged := make([]entity.Experience, 0, len(base))
	for _, exp := range base {
		seen[exp.ID] = true
		merged = append(merged, exp)
	}

	reports := make([]SourceReport, 0, len(results))
	for _, res := range results {
		report := SourceReport{Source: res.Source, Err: res.Err, Duration: res.Duration}
		for _, exp := range res.Records {
			if seen[exp.ID] {
				report.Dropped++
				logger.Warn("RefreshService:Merge:DuplicateID", "source", res.Source, "id", exp.ID)
				continue
			}
			if err := exp.Validate(); err != nil {
				report.Dropped++
				logger.Warn("RefreshService:Merge:Invalid", "source", res.Source, "id", exp.ID, "error", err)
				continue
			}
			seen[exp.ID] = true
			merged = append(merged, exp)
			report.Records++
		}
		reports = append(reports, report)
	}
	return merged, reports
}

func allFailed(results []providerService.SourceResult) bool {
	for _, r := range results {
		if r.Err == nil {
			return false
		}
	}
	return true
}

func sourceErrors(results []providerService.SourceResult) []error {
	errs := make([]error, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Source, r.Err))
		}
	}
	return errs
}
