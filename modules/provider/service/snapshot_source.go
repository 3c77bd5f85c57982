package service

import (
	"context"

	"localxp-api/modules/experience/entity"
)

type SnapshotLoader interface {
	Load(ctx context.Context) ([]entity.Experience, error)
}

// SnapshotSource serves the curated catalog snapshot; location does not apply.
type SnapshotSource struct {
	repo SnapshotLoader
}

func NewSnapshotSource(repo SnapshotLoader) *SnapshotSource {
	return &SnapshotSource{repo: repo}
}

func (s *SnapshotSource) Name() string { return SourceSnapshot }

func (s *SnapshotSource) Fetch(ctx context.Context, location string) ([]entity.Experience, error) {
	return s.repo.Load(ctx)
}
