package service

import (
	"context"
	"time"

	"localxp-api/core/clock"
	"localxp-api/core/errors"
	"localxp-api/core/logger"
	"localxp-api/modules/experience/entity"
	"localxp-api/modules/experience/repository"
)

type Facets struct {
	Cities        []string
	Languages     []string
	ActivityTypes []string
	Accessibility AccessibilityFeatures
}

type CatalogInfo struct {
	Size      int
	Version   int64
	UpdatedAt time.Time
}

// ExperienceService answers catalog queries against the current snapshot
type ExperienceService struct {
	repo  repository.CatalogRepositoryInterface
	clock clock.Clock
}

// ExperienceServiceInterface defines the query contract
type ExperienceServiceInterface interface {
	Search(ctx context.Context, criteria FilterCriteria, sortBy SortOption) []entity.Experience
	GetByID(ctx context.Context, id string) (*entity.Experience, *errors.AppError)
	Trending(ctx context.Context) []entity.Experience
	HiddenGems(ctx context.Context) []entity.Experience
	FlashDeals(ctx context.Context) []entity.Experience
	Personalized(ctx context.Context, interests []string, location string) []entity.Experience
	Facets(ctx context.Context) Facets
	Interests(ctx context.Context) []entity.Interest
	CatalogInfo(ctx context.Context) CatalogInfo
	Now() time.Time
}

var _ ExperienceServiceInterface = (*ExperienceService)(nil)

// NewExperienceService creates a new experience service
func NewExperienceService(repo repository.CatalogRepositoryInterface, clk clock.Clock) *ExperienceService {
	return &ExperienceService{repo: repo, clock: clk}
}

// Now is the reference instant for one query. Callers capture it once and
// pass it down so every predicate sees the same time.
func (s *ExperienceService) Now() time.Time {
	return s.clock.Now()
}

// Search filters then sorts the catalog.
func (s *ExperienceService) Search(ctx context.Context, criteria FilterCriteria, sortBy SortOption) []entity.Experience {
	now := s.Now()
	all := s.repo.GetAll()
	results := SortExperiences(Filter(all, criteria, now), sortBy)

	logger.Debug("ExperienceService:Search",
		"catalog", len(all),
		"results", len(results),
		"time_frame", string(criteria.TimeFrame),
		"sort", string(sortBy),
	)
	return results
}

func (s *ExperienceService) GetByID(ctx context.Context, id string) (*entity.Experience, *errors.AppError) {
	exp, ok := s.repo.GetByID(id)
	if !ok {
		return nil, errors.NewAppError(errors.ErrNotFound, "Experience not found", nil)
	}
	return &exp, nil
}

func (s *ExperienceService) Trending(ctx context.Context) []entity.Experience {
	return Trending(s.repo.GetAll(), s.Now())
}

func (s *ExperienceService) HiddenGems(ctx context.Context) []entity.Experience {
	return HiddenGems(s.repo.GetAll(), s.Now())
}

func (s *ExperienceService) FlashDeals(ctx context.Context) []entity.Experience {
	return FlashDeals(s.repo.GetAll(), s.Now())
}

func (s *ExperienceService) Personalized(ctx context.Context, interests []string, location string) []entity.Experience {
	return Personalized(s.repo.GetAll(), interests, location)
}

func (s *ExperienceService) Facets(ctx context.Context) Facets {
	all := s.repo.GetAll()
	return Facets{
		Cities:        AllCities(all),
		Languages:     AllLanguages(all),
		ActivityTypes: AllActivityTypes(all),
		Accessibility: AllAccessibilityFeatures(all),
	}
}

func (s *ExperienceService) Interests(ctx context.Context) []entity.Interest {
	return entity.Interests()
}

func (s *ExperienceService) CatalogInfo(ctx context.Context) CatalogInfo {
	return CatalogInfo{
		Size:      s.repo.Len(),
		Version:   s.repo.Version(),
		UpdatedAt: s.repo.UpdatedAt(),
	}
}
