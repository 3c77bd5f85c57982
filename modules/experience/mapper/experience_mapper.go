package mapper

import (
	"math"
	"time"

	"localxp-api/core/entity"
	"localxp-api/core/utils"
	"localxp-api/modules/experience/dto"
	expEntity "localxp-api/modules/experience/entity"
	"localxp-api/modules/experience/service"
)

// RoundCents rounds an amount for presentation. The engine never rounds.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

func ToExperienceResponse(exp expEntity.Experience, loc *time.Location) dto.ExperienceResponse {
	response := dto.ExperienceResponse{
		Experience:   exp,
		DisplayPrice: RoundCents(service.DisplayPrice(exp)),
		TimeOfDay:    string(service.TimeOfDayOf(exp.StartDate, loc)),
	}
	if service.HasActiveDiscount(exp) {
		original := RoundCents(exp.Price)
		response.OriginalPrice = &original
	}
	return response
}

func ToExperienceResponses(records []expEntity.Experience, loc *time.Location) []dto.ExperienceResponse {
	responses := make([]dto.ExperienceResponse, len(records))
	for i, exp := range records {
		responses[i] = ToExperienceResponse(exp, loc)
	}
	return responses
}

func ToPaginatedExperienceResponse(page entity.Pagination[expEntity.Experience], loc *time.Location) *dto.PaginatedExperienceResponse {
	return &dto.PaginatedExperienceResponse{
		Items:      ToExperienceResponses(page.Items, loc),
		TotalItems: page.TotalItems,
		TotalPages: page.TotalPages,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}
}

func toFacetValues(values []string) []dto.FacetValue {
	out := make([]dto.FacetValue, len(values))
	for i, v := range values {
		out[i] = dto.FacetValue{Value: v, Key: utils.Slug(v)}
	}
	return out
}

func ToFacetsResponse(f service.Facets) *dto.FacetsResponse {
	return &dto.FacetsResponse{
		Cities:        toFacetValues(f.Cities),
		Languages:     toFacetValues(f.Languages),
		ActivityTypes: toFacetValues(f.ActivityTypes),
		Accessibility: dto.AccessibilityFacets{
			Mobility:      toFacetValues(f.Accessibility.Mobility),
			Communication: toFacetValues(f.Accessibility.Communication),
			Sensory:       toFacetValues(f.Accessibility.Sensory),
		},
	}
}

func ToCatalogInfoResponse(info service.CatalogInfo) *dto.CatalogInfoResponse {
	return &dto.CatalogInfoResponse{
		Size:      info.Size,
		Version:   info.Version,
		UpdatedAt: info.UpdatedAt,
	}
}
