package service

import (
	"context"

	"localxp-api/core/clock"
	"localxp-api/modules/experience/entity"
	"localxp-api/modules/provider/mapper"
	"localxp-api/modules/provider/repository"
)

type PartnerSource struct {
	repo  repository.PartnerRepositoryInterface
	clock clock.Clock
}

func NewPartnerSource(repo repository.PartnerRepositoryInterface, clk clock.Clock) *PartnerSource {
	return &PartnerSource{repo: repo, clock: clk}
}

func (s *PartnerSource) Name() string { return SourcePartner }

// Fetch reads listings that have not ended in the location's city or region.
func (s *PartnerSource) Fetch(ctx context.Context, location string) ([]entity.Experience, error) {
	rows, err := s.repo.ListUpcoming(ctx, location, s.clock.Now())
	if err != nil {
		return nil, err
	}
	return mapper.FromPartner(rows), nil
}
