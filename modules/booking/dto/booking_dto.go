package dto

import "time"

// CreateBookingRequest represents the checkout form
type CreateBookingRequest struct {
	ExperienceID  string `json:"experience_id" validate:"required"`
	SelectedTime  string `json:"selected_time" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=card apple"`
	// PaymentToken is an opaque token from the payment sheet
	PaymentToken string `json:"payment_token,omitempty"`
	Guests       int    `json:"guests" validate:"omitempty,min=1,max=20"`
}

type QuoteResponse struct {
	ExperienceID      string   `json:"experience_id"`
	Guests            int      `json:"guests"`
	UnitPrice         float64  `json:"unit_price"`
	OriginalUnitPrice *float64 `json:"original_unit_price,omitempty"`
	Subtotal          float64  `json:"subtotal"`
	ServiceFee        float64  `json:"service_fee"`
	Total             float64  `json:"total"`
	SoldOut           bool     `json:"sold_out"`
	AvailableTimes    []string `json:"available_times"`
}

// BookingResponse is the ticket shown after checkout
type BookingResponse struct {
	ID               string    `json:"id"`
	TicketID         string    `json:"ticket_id"`
	ExperienceID     string    `json:"experience_id"`
	ExperienceTitle  string    `json:"experience_title"`
	Location         string    `json:"location"`
	StartDate        time.Time `json:"start_date"`
	SelectedTime     string    `json:"selected_time"`
	Guests           int       `json:"guests"`
	PaymentMethod    string    `json:"payment_method"`
	PaymentReference string    `json:"payment_reference"`
	Subtotal         float64   `json:"subtotal"`
	ServiceFee       float64   `json:"service_fee"`
	Total            float64   `json:"total"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}
