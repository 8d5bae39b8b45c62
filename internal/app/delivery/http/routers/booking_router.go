package routers

import (
	"labtrack-service/internal/app/delivery/http/controllers"
	"labtrack-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *controllers.BookingController) {
	router.Use(middlewares.Authenticate)

	router.Post("/", bookingController.CreateBooking)
	router.Get("/", bookingController.GetAllBookings)
	router.Get("/stats", bookingController.GetBookingStats)
	router.Get("/{orderID}", bookingController.GetBookingByOrderID)
	router.Patch("/{orderID}/status", bookingController.TransitionBooking)
	router.Get("/{orderID}/report", bookingController.GetReport)
}
