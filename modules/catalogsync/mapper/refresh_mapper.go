package mapper

import (
	"localxp-api/modules/catalogsync/dto"
	"localxp-api/modules/catalogsync/service"
)

func ToRefreshResponse(result *service.Result) *dto.RefreshResponse {
	if result == nil {
		return nil
	}

	sources := make([]dto.SourceReportResponse, 0, len(result.Sources))
	for _, r := range result.Sources {
		item := dto.SourceReportResponse{
			Source:     r.Source,
			Records:    r.Records,
			Dropped:    r.Dropped,
			DurationMs: r.Duration.Milliseconds(),
		}
		if r.Err != nil {
			item.Error = r.Err.Error()
		}
		sources = append(sources, item)
	}

	return &dto.RefreshResponse{
		Location:  result.Location,
		Size:      result.Size,
		Version:   result.Version,
		UpdatedAt: result.UpdatedAt,
		Sources:   sources,
	}
}
