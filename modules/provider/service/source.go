package service

import (
	"context"

	"localxp-api/modules/experience/entity"
)

const (
	SourceViator       = "viator"
	SourceGetYourGuide = "getyourguide"
	SourceFever        = "fever"
	SourcePartner      = "partner"
	SourceSnapshot     = "snapshot"
	SourceStatic       = "static"
)

// Source produces experience records for a location.
type Source interface {
	Name() string
	Fetch(ctx context.Context, location string) ([]entity.Experience, error)
}
