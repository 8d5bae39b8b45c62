package routers

import (
	"fmt"
	"time"

	"labtrack-service/internal/app/config"
	"labtrack-service/internal/app/delivery/http/controllers"
	"labtrack-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	bookingController *controllers.BookingController,
	catalogController *controllers.CatalogController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	prefix := fmt.Sprintf("%s/%s", internalConfig.App.EndpointPrefix, internalConfig.App.Version)

	router.Route(prefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/bookings", func(r chi.Router) {
			attachBookingRoutes(r, middlewares, bookingController)
		})

		r.Route("/tests", func(r chi.Router) {
			attachCatalogRoutes(r, middlewares, catalogController)
		})
	})
}
