package controller

import (
	"localxp-api/core/controller"
	"localxp-api/core/errors"
	"localxp-api/core/logger"
	"localxp-api/core/params"
	"localxp-api/modules/booking/dto"
	"localxp-api/modules/booking/mapper"
	"localxp-api/modules/booking/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const headerIdempotencyKey = "Idempotency-Key"

// BookingController handles simulated checkout requests
type BookingController struct {
	controller.BaseController
	BookingService service.BookingServiceInterface
}

func NewBookingController(svc service.BookingServiceInterface) *BookingController {
	return &BookingController{
		BaseController: controller.NewBaseController(),
		BookingService: svc,
	}
}

// CreateBooking handles POST /bookings
// @Summary Book an experience
// @Tags Booking
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Replays return the first booking"
// @Param request body dto.CreateBookingRequest true "Checkout form"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} controller.ErrorResponse
// @Failure 402 {object} controller.ErrorResponse
// @Failure 404 {object} controller.ErrorResponse
// @Failure 409 {object} controller.ErrorResponse
// @Router /public/bookings [post]
func (c *BookingController) CreateBooking(ctx echo.Context) error {
	var req dto.CreateBookingRequest
	if err := ctx.Bind(&req); err != nil {
		logger.Warn("BookingController:CreateBooking:Bind", "error", err)
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}

	key := ctx.Request().Header.Get(headerIdempotencyKey)
	booking, appErr := c.BookingService.Create(ctx.Request().Context(), &req, key)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, mapper.ToBookingResponse(booking), "Booking confirmed")
}

// Quote handles GET /bookings/quote
// @Summary Price breakdown for a booking
// @Tags Booking
// @Produce json
// @Param experience_id query string true "Experience ID"
// @Param guests query int false "Number of guests"
// @Success 200 {object} dto.QuoteResponse
// @Router /public/bookings/quote [get]
func (c *BookingController) Quote(ctx echo.Context) error {
	experienceID := ctx.QueryParam("experience_id")
	if experienceID == "" {
		return c.BadRequest(errors.ErrInvalidInput, "experience_id is required")
	}
	guests, err := params.Int(ctx, "guests", 1)
	if err != nil || guests < 1 {
		return c.BadRequest(errors.ErrInvalidInput, "guests must be a positive number")
	}

	quote, appErr := c.BookingService.Quote(ctx.Request().Context(), experienceID, guests)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToQuoteResponse(quote), "Quote retrieved successfully")
}

// GetBooking handles GET /bookings/:id
func (c *BookingController) GetBooking(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid booking id")
	}

	booking, appErr := c.BookingService.GetByID(ctx.Request().Context(), id)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToBookingResponse(booking), "Booking retrieved successfully")
}

// ListBookings handles GET /bookings
func (c *BookingController) ListBookings(ctx echo.Context) error {
	bookings, appErr := c.BookingService.List(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, mapper.ToBookingResponses(bookings), "Bookings retrieved successfully")
}
