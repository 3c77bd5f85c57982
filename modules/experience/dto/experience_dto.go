package dto

import (
	"time"

	"localxp-api/modules/experience/entity"
)

// ===================== Response DTOs =====================

// ExperienceResponse is a listing with its user-facing prices
type ExperienceResponse struct {
	entity.Experience
	DisplayPrice  float64  `json:"displayPrice"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	TimeOfDay     string   `json:"timeOfDay"`
}

type PaginatedExperienceResponse struct {
	Items      []ExperienceResponse `json:"items"`
	TotalItems int                  `json:"total_items"`
	TotalPages int                  `json:"total_pages"`
	PageNumber int                  `json:"page_number"`
	PageSize   int                  `json:"page_size"`
}

// FacetValue pairs a display value with its URL-safe key
type FacetValue struct {
	Value string `json:"value"`
	Key   string `json:"key"`
}

type AccessibilityFacets struct {
	Mobility      []FacetValue `json:"mobility"`
	Communication []FacetValue `json:"communication"`
	Sensory       []FacetValue `json:"sensory"`
}

type FacetsResponse struct {
	Cities        []FacetValue        `json:"cities"`
	Languages     []FacetValue        `json:"languages"`
	ActivityTypes []FacetValue        `json:"activity_types"`
	Accessibility AccessibilityFacets `json:"accessibility"`
}

type CatalogInfoResponse struct {
	Size      int       `json:"size"`
	Version   int64     `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}
