package dto

import "time"

// ViatorSearchResponse is the body of GET /products/search
type ViatorSearchResponse struct {
	Products []ViatorExperience `json:"products"`
}

type ViatorExperience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	Price       struct {
		Amount       float64 `json:"amount"`
		CurrencyCode string  `json:"currencyCode"`
	} `json:"price"`
	Duration struct {
		FixedDuration struct {
			Duration float64 `json:"duration"`
			Unit     string  `json:"unit"`
		} `json:"fixedDuration"`
	} `json:"duration"`
	Location struct {
		Name        string `json:"name"`
		CityName    string `json:"cityName"`
		RegionName  string `json:"regionName,omitempty"`
		CountryName string `json:"countryName,omitempty"`
		Coordinates *struct {
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
		} `json:"coordinates,omitempty"`
	} `json:"location"`
	ReviewStats *struct {
		AverageRating float64 `json:"averageRating"`
		TotalReviews  int     `json:"totalReviews"`
	} `json:"reviewStats,omitempty"`
	Categories        []string  `json:"categories"`
	SupplierName      string    `json:"supplierName"`
	AvailableTimes    []string  `json:"availableTimes"`
	StartDate         time.Time `json:"startDate"`
	EndDate           time.Time `json:"endDate"`
	IsBestSeller      bool      `json:"isBestSeller,omitempty"`
	IsLowAvailability bool      `json:"isLowAvailability,omitempty"`
}
