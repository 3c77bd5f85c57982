package entity

import (
	"fmt"
	"time"

	"localxp-api/core/validator"
)

const (
	SourceStatic       = "static"
	SourceSnapshot     = "snapshot"
	SourceViator       = "viator"
	SourceGetYourGuide = "getyourguide"
	SourceFever        = "fever"
	SourcePartner      = "partner"
)

type Coordinates struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

type Accessibility struct {
	Mobility          []string `json:"mobility"`
	Communication     []string `json:"communication"`
	Sensory           []string `json:"sensory"`
	FreeForAssistants bool     `json:"freeForAssistants"`
}

// Experience is one bookable listing.
type Experience struct {
	ID                    string         `json:"id" validate:"required"`
	Title                 string         `json:"title" validate:"required"`
	Description           string         `json:"description"`
	Image                 string         `json:"image"`
	Price                 float64        `json:"price" validate:"gte=0"`
	Duration              string         `json:"duration"`
	Location              string         `json:"location"`
	City                  string         `json:"city" validate:"required"`
	Region                string         `json:"region,omitempty"`
	Country               string         `json:"country,omitempty"`
	Coordinates           *Coordinates   `json:"coordinates,omitempty" validate:"omitempty"`
	Rating                float64        `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount           int            `json:"reviewCount" validate:"gte=0"`
	Categories            []string       `json:"categories" validate:"min=1,dive,required"`
	Provider              string         `json:"provider"`
	AvailableTimes        []string       `json:"availableTimes"`
	StartDate             time.Time      `json:"startDate" validate:"required"`
	EndDate               time.Time      `json:"endDate" validate:"required,gtefield=StartDate"`
	Trending              bool           `json:"trending"`
	HiddenGem             bool           `json:"hiddenGem"`
	FlashDeal             bool           `json:"flashDeal"`
	FlashDealEndTime      *time.Time     `json:"flashDealEndTime,omitempty"`
	DiscountPercentage    *float64       `json:"discountPercentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	SoldOut               bool           `json:"soldOut"`
	Languages             []string       `json:"languages,omitempty"`
	ActivityType          []string       `json:"activityType,omitempty"`
	AccessibilityFeatures *Accessibility `json:"accessibilityFeatures,omitempty"`
	RecommendationScore   *float64       `json:"recommendationScore,omitempty"`
	Source                string         `json:"source,omitempty"`
}

// Validate checks the record invariants: field ranges, non-empty categories,
// endDate >= startDate, and flash deal fields present iff FlashDeal.
func (e Experience) Validate() error {
	if err := validator.Get().Struct(e); err != nil {
		return fmt.Errorf("experience %q: %w", e.ID, err)
	}
	hasDealFields := e.FlashDealEndTime != nil && e.DiscountPercentage != nil
	hasAnyDealField := e.FlashDealEndTime != nil || e.DiscountPercentage != nil
	if e.FlashDeal && !hasDealFields {
		return fmt.Errorf("experience %q: flash deal requires flashDealEndTime and discountPercentage", e.ID)
	}
	if !e.FlashDeal && hasAnyDealField {
		return fmt.Errorf("experience %q: flashDealEndTime/discountPercentage set without flash deal", e.ID)
	}
	return nil
}
