package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
)

type PaymentMethod string

const (
	PaymentMethodCard  PaymentMethod = "card"
	PaymentMethodApple PaymentMethod = "apple"
)

// Booking is a confirmed, simulated reservation of an experience.
type Booking struct {
	ID               uuid.UUID
	TicketID         string
	IdempotencyKey   string
	ExperienceID     string
	ExperienceTitle  string
	Location         string
	StartDate        time.Time
	SelectedTime     string
	Guests           int
	PaymentMethod    PaymentMethod
	PaymentReference string
	UnitPrice        float64
	Subtotal         float64
	ServiceFee       float64
	Total            float64
	Status           BookingStatus
	CreatedAt        time.Time
}
