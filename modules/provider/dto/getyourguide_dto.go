package dto

import "time"

// GetYourGuideSearchResponse is the body of GET /activities
type GetYourGuideSearchResponse struct {
	Activities []GetYourGuideExperience `json:"activities"`
}

type GetYourGuideExperience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Price       struct {
		Original float64 `json:"original"`
		Current  float64 `json:"current"`
		Currency string  `json:"currency"`
	} `json:"price"`
	Duration    string `json:"duration"`
	Location    string `json:"location"`
	City        string `json:"city"`
	Region      string `json:"region,omitempty"`
	Country     string `json:"country,omitempty"`
	Coordinates *struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"coordinates,omitempty"`
	Rating         float64   `json:"rating"`
	ReviewCount    int       `json:"reviewCount"`
	Categories     []string  `json:"categories"`
	Provider       string    `json:"provider"`
	AvailableTimes []string  `json:"availableTimes"`
	AvailableFrom  time.Time `json:"availableFrom"`
	AvailableTo    time.Time `json:"availableTo"`
	IsBestseller   bool      `json:"isBestseller,omitempty"`
	IsHiddenGem    bool      `json:"isHiddenGem,omitempty"`
	Discount       *struct {
		Percentage float64   `json:"percentage"`
		ValidUntil time.Time `json:"validUntil"`
	} `json:"discount,omitempty"`
	IsSoldOut bool `json:"isSoldOut,omitempty"`
}
