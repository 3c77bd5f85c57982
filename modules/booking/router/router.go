package router

import (
	"localxp-api/modules/booking/controller"

	"github.com/labstack/echo/v4"
)

type BookingRouter struct {
	Controller *controller.BookingController
}

func NewBookingRouter(ctrl *controller.BookingController) *BookingRouter {
	return &BookingRouter{Controller: ctrl}
}

func (r *BookingRouter) Setup(e *echo.Echo) {
	bookings := e.Group("/api/v1/public/bookings")
	bookings.POST("", r.Controller.CreateBooking)
	bookings.GET("", r.Controller.ListBookings)
	bookings.GET("/quote", r.Controller.Quote)
	bookings.GET("/:id", r.Controller.GetBooking)
}
