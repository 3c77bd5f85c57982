package dto

import "time"

// FeverExperience is one plan embedded in the city page's fever-data script
type FeverExperience struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Media       struct {
		Images []string `json:"images"`
	} `json:"media"`
	Price struct {
		Value    float64 `json:"value"`
		Currency string  `json:"currency"`
	} `json:"price"`
	Duration struct {
		Value float64 `json:"value"`
		Unit  string  `json:"unit"`
	} `json:"duration"`
	Venue struct {
		Name     string `json:"name"`
		City     string `json:"city"`
		Region   string `json:"region,omitempty"`
		Country  string `json:"country,omitempty"`
		Location *struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"location,omitempty"`
	} `json:"venue"`
	Reviews struct {
		Average float64 `json:"average"`
		Count   int     `json:"count"`
	} `json:"reviews"`
	Tags      []string       `json:"tags"`
	Organizer string         `json:"organizer"`
	Sessions  []FeverSession `json:"sessions"`
	Trending  bool           `json:"trending,omitempty"`
	// highlighted plans are promoted as hidden gems
	Highlighted bool `json:"highlighted,omitempty"`
	Flash       *struct {
		Discount float64   `json:"discount"`
		EndsAt   time.Time `json:"endsAt"`
	} `json:"flash,omitempty"`
	SoldOut   bool     `json:"soldOut,omitempty"`
	Languages []string `json:"languages,omitempty"`
}

type FeverSession struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}
