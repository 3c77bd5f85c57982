package mapper

import (
	"localxp-api/modules/booking/dto"
	"localxp-api/modules/booking/entity"
	"localxp-api/modules/booking/service"
)

func ToBookingResponse(b *entity.Booking) *dto.BookingResponse {
	if b == nil {
		return nil
	}
	return &dto.BookingResponse{
		ID:               b.ID.String(),
		TicketID:         b.TicketID,
		ExperienceID:     b.ExperienceID,
		ExperienceTitle:  b.ExperienceTitle,
		Location:         b.Location,
		StartDate:        b.StartDate,
		SelectedTime:     b.SelectedTime,
		Guests:           b.Guests,
		PaymentMethod:    string(b.PaymentMethod),
		PaymentReference: b.PaymentReference,
		Subtotal:         b.Subtotal,
		ServiceFee:       b.ServiceFee,
		Total:            b.Total,
		Status:           string(b.Status),
		CreatedAt:        b.CreatedAt,
	}
}

func ToBookingResponses(bookings []entity.Booking) []dto.BookingResponse {
	out := make([]dto.BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, *ToBookingResponse(&bookings[i]))
	}
	return out
}

func ToQuoteResponse(q *service.Quote) *dto.QuoteResponse {
	if q == nil {
		return nil
	}
	times := q.AvailableTimes
	if times == nil {
		times = []string{}
	}
	return &dto.QuoteResponse{
		ExperienceID:      q.ExperienceID,
		Guests:            q.Guests,
		UnitPrice:         q.UnitPrice,
		OriginalUnitPrice: q.OriginalUnitPrice,
		Subtotal:          q.Subtotal,
		ServiceFee:        q.ServiceFee,
		Total:             q.Total,
		SoldOut:           q.SoldOut,
		AvailableTimes:    times,
	}
}
